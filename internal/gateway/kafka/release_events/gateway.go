package release_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"depot/internal/entities"
	retrierconfig "depot/pkg/retrier"
	"depot/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Publisher отправляет события выпуска контейнеров в Kafka. Ключ сообщения
// номер контейнера, поэтому события одного контейнера попадают в одну партицию.
type Publisher struct {
	producer producer
	topic    string
	loc      *time.Location
	retrier  retrier
}

// New loc часовой пояс календаря, в нём публикуется дата вывоза.
func New(producer producer, topic string, loc *time.Location) *Publisher {
	if loc == nil {
		loc = time.UTC
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		loc:      loc,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			ShouldRetry:     isRetryable,
		}),
	}
}

func (p *Publisher) PublishReleaseEvent(ctx context.Context, event entities.ReleaseEvent) error {
	payload, err := json.Marshal(toMessage(event, p.loc))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Release.ContainerNumber),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(event.Type.String())},
		},
		Timestamp: event.OccurredAt,
	}

	start := time.Now()
	err = p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	PublishDuration.WithLabelValues(event.Type.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		ReleaseEventsPublishedTotal.WithLabelValues(event.Type.String(), "error").Inc()
		if isRetryable(err) {
			err = fmt.Errorf("%w: %w", entities.ErrUpstreamUnavailable, err)
		}
		return fmt.Errorf("send %s for %s: %w", event.Type, event.Release.ContainerNumber, err)
	}

	ReleaseEventsPublishedTotal.WithLabelValues(event.Type.String(), "ok").Inc()
	return nil
}

func isRetryable(err error) bool {
	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotConnected),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrRequestTimedOut),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNotEnoughReplicasAfterAppend):
		return true
	default:
		return false
	}
}
