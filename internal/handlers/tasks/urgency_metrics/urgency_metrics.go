package urgency_metrics

import (
	"context"
	"fmt"
	"time"

	"depot/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// UrgencyMetrics пересчитывает gauge по уровням срочности. Ответы API от неё
// не зависят, срочность считается при каждом запросе.
type UrgencyMetrics struct {
	log      logger.Logger
	service  Service
	gauge    *prometheus.GaugeVec
	interval time.Duration
}

func NewUrgencyMetrics(log logger.Logger, service Service, gauge *prometheus.GaugeVec, interval time.Duration) *UrgencyMetrics {
	return &UrgencyMetrics{
		log:      log,
		service:  service,
		gauge:    gauge,
		interval: interval,
	}
}

func (u *UrgencyMetrics) TTL() time.Duration {
	return u.interval
}

func (u *UrgencyMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, u.interval)
	defer cancel()

	counts, err := u.service.UrgencyCounts(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("urgency counts: %w", err)
	}

	for tier, count := range counts {
		u.gauge.WithLabelValues(tier.String()).Set(float64(count))
	}

	u.log.With(
		logger.NewField("tiers", len(counts)),
	).Info("urgency metrics updated")

	return nil
}

func (u *UrgencyMetrics) Info() string {
	return "urgency metrics"
}
