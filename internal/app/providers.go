package app

import (
	"context"
	"fmt"
	"time"

	"depot/internal/gateway/kafka/release_events"
	"depot/internal/handlers/rest/billing_get"
	"depot/internal/handlers/rest/calendar_day_get"
	"depot/internal/handlers/rest/calendar_events_get"
	"depot/internal/handlers/rest/calendar_month_get"
	"depot/internal/handlers/rest/release_get"
	"depot/internal/handlers/rest/release_patch"
	"depot/internal/handlers/rest/release_post"
	"depot/internal/handlers/tasks/urgency_metrics"
	"depot/internal/pkg/config"
	"depot/internal/pkg/metrics"

	orderRecordRepo "depot/internal/repository/order_record"
	releaseRepo "depot/internal/repository/release"
	billingService "depot/internal/service/billing"
	calendarService "depot/internal/service/calendar"
	orderRecordService "depot/internal/service/order_record"
	releaseService "depot/internal/service/release"

	"depot/pkg/background"
	"depot/pkg/logger"
	"depot/pkg/querier"
	"depot/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	UrgencyMetricsInterval time.Duration
	ReleaseEventsTopic     string
)

type Application struct {
	ServiceCalendar   ServiceCalendar
	ServiceRelease    ServiceRelease
	ServiceBilling    ServiceBilling
	BackgroundWorkers *background.Worker
	// Location часовой пояс календаря для дат без времени на HTTP слое
	Location *time.Location
}

type ServiceCalendar interface {
	calendar_events_get.Service
	calendar_month_get.Service
	calendar_day_get.Service
}

type ServiceRelease interface {
	release_post.Service
	release_patch.Service
	release_get.Service
}

type ServiceBilling interface {
	billing_get.Service
}

type KafkaWorkerApp struct {
	OrderRecordService *orderRecordService.Service
	Location           *time.Location
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideLocation(cfg *config.Config) (*time.Location, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return nil, fmt.Errorf("calendar location: %w", err)
	}
	return loc, nil
}

func provideUrgencyMetricsInterval(cfg *config.Config) UrgencyMetricsInterval {
	return UrgencyMetricsInterval(cfg.Tasks.UrgencyMetricsInterval)
}

func provideReleaseEventsTopic(cfg *config.Config) ReleaseEventsTopic {
	return ReleaseEventsTopic(cfg.Kafka.ReleaseEventsTopic)
}

func provideOrderRecordRepository(querier orderRecordRepo.Querier) *orderRecordRepo.Repository {
	return orderRecordRepo.New(querier)
}

func provideReleaseRepository(querier releaseRepo.Querier) *releaseRepo.Repository {
	return releaseRepo.New(querier)
}

func provideReleaseEventsPublisher(
	producer sarama.SyncProducer,
	topic ReleaseEventsTopic,
	loc *time.Location,
) *release_events.Publisher {
	return release_events.New(producer, string(topic), loc)
}

func provideServiceCalendar(
	orderRecords calendarService.OrderRecordRepository,
	releases calendarService.ReleaseRepository,
	aggregator calendarService.EventAggregator,
	clock calendarService.Clock,
	loc *time.Location,
) *calendarService.Service {
	return calendarService.New(orderRecords, releases, aggregator, clock, loc)
}

func provideServiceRelease(
	repository releaseService.Repository,
	orderRecords releaseService.OrderRecordRepository,
	publisher releaseService.EventPublisher,
	txManager releaseService.TxManager,
	clock releaseService.Clock,
) *releaseService.Service {
	return releaseService.New(repository, orderRecords, publisher, txManager, clock)
}

func provideServiceBilling(
	orderRecords billingService.OrderRecordRepository,
	releases billingService.ReleaseService,
	calculator billingService.Calculator,
	clock billingService.Clock,
) *billingService.Service {
	return billingService.New(orderRecords, releases, calculator, clock)
}

func provideOrderRecordService(repository orderRecordService.Repository) *orderRecordService.Service {
	return orderRecordService.New(repository)
}

func provideUrgencyMetricsTask(
	log logger.Logger,
	service urgency_metrics.Service,
	interval UrgencyMetricsInterval,
) *urgency_metrics.UrgencyMetrics {
	return urgency_metrics.NewUrgencyMetrics(log, service, metrics.ContainersByUrgency, time.Duration(interval))
}

func provideTaskList(
	urgencyMetricsTask *urgency_metrics.UrgencyMetrics,
) []background.Task {
	return []background.Task{
		urgencyMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
