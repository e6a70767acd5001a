package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type (
	Tasks struct {
		UrgencyMetricsInterval time.Duration `envconfig:"BACKGROUND_URGENCY_METRICS_INTERVAL" default:"1m"`
	}

	HTTPServer struct {
		Port               string        `envconfig:"PORT"`
		RequestTimeout     time.Duration `envconfig:"MIDDLEWARE_REQUEST_TIMEOUT" default:"5s"`
		RateLimiterQPS     int           `envconfig:"MIDDLEWARE_RATE_LIMIT_QPS" default:"100"`
		RateLimiterBurst   int           `envconfig:"MIDDLEWARE_RATE_LIMIT_BURST" default:"200"`
		PprofEnabled       bool          `envconfig:"PPROF_ENABLED" default:"false"`
		PprofPort          string        `envconfig:"PPROF_PORT"`
		CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	Database struct {
		Host           string `envconfig:"POSTGRES_HOST" required:"true"`
		Port           string `envconfig:"POSTGRES_PORT" default:"5432"`
		User           string `envconfig:"POSTGRES_USER" required:"true"`
		Password       string `envconfig:"POSTGRES_PASSWORD" required:"true"`
		DBName         string `envconfig:"POSTGRES_DB" required:"true"`
		SSLMode        string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
		MigrateOnStart bool   `envconfig:"POSTGRES_MIGRATE_ON_START" default:"true"`
	}

	Kafka struct {
		PortHealthcheck    string `envconfig:"KAFKA_HTTP_HEALTHCHECK_PORT" default:"8081"`
		Brokers            string `envconfig:"KAFKA_BROKERS" required:"true"`
		OrderRecordsTopic  string `envconfig:"KAFKA_ORDER_RECORDS_TOPIC" default:"order.records"`
		ReleaseEventsTopic string `envconfig:"KAFKA_RELEASE_EVENTS_TOPIC" default:"container.releases"`
		ConsumerGroup      string `envconfig:"KAFKA_CONSUMER_GROUP" default:"depot-order-records"`
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string `envconfig:"KAFKA_SARAMA_VERSION" default:"3.6.0"`
		ConsumerOffsetsAutocommit bool   `envconfig:"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT" default:"true"`
	}

	KafkaHandlers struct {
		OrderRecordChanged OrderRecordChanged
	}

	OrderRecordChanged struct {
		ProcessTimeout time.Duration `envconfig:"KAFKA_HANDLER_ORDER_RECORD_PROCESS_TIMEOUT" default:"5s"`
		// пока база недоступна, сообщение повторяется до остановки сессии
		RetryInitialInterval time.Duration `envconfig:"KAFKA_HANDLER_ORDER_RECORD_RETRY_INITIAL_INTERVAL" default:"500ms"`
		RetryMaxInterval     time.Duration `envconfig:"KAFKA_HANDLER_ORDER_RECORD_RETRY_MAX_INTERVAL" default:"30s"`
	}

	Calendar struct {
		Timezone string `envconfig:"CALENDAR_TIMEZONE" default:"UTC"`
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Kafka    Kafka
		Calendar Calendar
	}
)

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg, nil
}

// Location часовой пояс депо, в нём считаются календарные дни.
func (c Calendar) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("CALENDAR_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}

func validateConfig(cfg *Config) error {
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Tasks.UrgencyMetricsInterval <= 0 {
		return errors.New("BACKGROUND_URGENCY_METRICS_INTERVAL must be positive")
	}

	if cfg.Kafka.OrderRecordsTopic == "" {
		return errors.New("KAFKA_ORDER_RECORDS_TOPIC is required")
	}
	if cfg.Kafka.ReleaseEventsTopic == "" {
		return errors.New("KAFKA_RELEASE_EVENTS_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderRecordChanged.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_ORDER_RECORD_PROCESS_TIMEOUT must be positive")
	}
	if cfg.Kafka.Handlers.OrderRecordChanged.RetryInitialInterval <= 0 ||
		cfg.Kafka.Handlers.OrderRecordChanged.RetryMaxInterval < cfg.Kafka.Handlers.OrderRecordChanged.RetryInitialInterval {
		return errors.New("KAFKA_HANDLER_ORDER_RECORD_RETRY_* intervals must be positive, max not below initial")
	}

	if _, err := cfg.Calendar.Location(); err != nil {
		return err
	}

	return nil
}
