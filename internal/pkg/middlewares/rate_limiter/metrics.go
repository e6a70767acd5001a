package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RejectedRequestsTotal запросы календаря, выпусков и биллинга, отклонённые с 429.
// route шаблон маршрута mux, чтобы номера контейнеров не раздували кардинальность.
var RejectedRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "depot",
		Subsystem: "http",
		Name:      "rate_limited_requests_total",
		Help:      "Requests rejected with 429 by the API rate limiter",
	},
	[]string{"method", "route"},
)
