package order_record_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultIngested = "ingested"
	resultRejected = "rejected"
	resultFailed   = "failed"
)

var OrderRecordsConsumedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_order_records_consumed_total",
		Help: "Order records consumed from Kafka by result",
	},
	[]string{"result"},
)
