//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"depot/internal/gateway/kafka/release_events"
	"depot/internal/handlers/tasks/urgency_metrics"
	"depot/internal/pkg/clock"
	"depot/internal/pkg/config"
	"depot/internal/pkg/factory/event_aggregator"
	"depot/internal/pkg/factory/per_diem"
	"depot/internal/pkg/factory/urgency_tier"

	orderRecordRepo "depot/internal/repository/order_record"
	releaseRepo "depot/internal/repository/release"
	billingService "depot/internal/service/billing"
	calendarService "depot/internal/service/calendar"
	orderRecordService "depot/internal/service/order_record"
	releaseService "depot/internal/service/release"

	"depot/pkg/logger"
	"depot/pkg/querier"
	"depot/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideLocation,
		provideUrgencyMetricsInterval,
		provideReleaseEventsTopic,
		clock.NewRealClock,

		provideOrderRecordRepository,
		provideReleaseRepository,
		provideReleaseEventsPublisher,

		per_diem.New,
		urgency_tier.New,
		event_aggregator.New,

		provideServiceCalendar,
		provideServiceRelease,
		provideServiceBilling,

		provideUrgencyMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCalendar), new(*calendarService.Service)),
		wire.Bind(new(ServiceRelease), new(*releaseService.Service)),
		wire.Bind(new(ServiceBilling), new(*billingService.Service)),

		wire.Bind(new(orderRecordRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(releaseRepo.Querier), new(*querier.Querier)),

		wire.Bind(new(event_aggregator.FreeDaysCalculator), new(*per_diem.Calculator)),
		wire.Bind(new(event_aggregator.UrgencyClassifier), new(*urgency_tier.Classifier)),

		wire.Bind(new(calendarService.OrderRecordRepository), new(*orderRecordRepo.Repository)),
		wire.Bind(new(calendarService.ReleaseRepository), new(*releaseRepo.Repository)),
		wire.Bind(new(calendarService.EventAggregator), new(*event_aggregator.Aggregator)),
		wire.Bind(new(calendarService.Clock), new(*clock.RealClock)),

		wire.Bind(new(releaseService.Repository), new(*releaseRepo.Repository)),
		wire.Bind(new(releaseService.OrderRecordRepository), new(*orderRecordRepo.Repository)),
		wire.Bind(new(releaseService.EventPublisher), new(*release_events.Publisher)),
		wire.Bind(new(releaseService.TxManager), new(*tx.Manager)),
		wire.Bind(new(releaseService.Clock), new(*clock.RealClock)),

		wire.Bind(new(billingService.OrderRecordRepository), new(*orderRecordRepo.Repository)),
		wire.Bind(new(billingService.ReleaseService), new(*releaseService.Service)),
		wire.Bind(new(billingService.Calculator), new(*per_diem.Calculator)),
		wire.Bind(new(billingService.Clock), new(*clock.RealClock)),

		wire.Bind(new(urgency_metrics.Service), new(*calendarService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-records)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideLocation,
		provideOrderRecordRepository,
		provideOrderRecordService,

		wire.Bind(new(orderRecordRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderRecordService.Repository), new(*orderRecordRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
