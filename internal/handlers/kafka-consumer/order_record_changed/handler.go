package order_record_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"depot/internal/entities"
	"depot/pkg/logger"
	"depot/pkg/retrier"

	"github.com/IBM/sarama"
)

type Handler struct {
	orderRecordService       Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
	loc                      *time.Location
	retrier                  retrier.Retrier
}

// New retrier повторяет сохранение, пока база недоступна. Каждая попытка
// ограничена timeout, даты без времени читаются в поясе календаря loc.
func New(
	log handlerLogger,
	orderRecordService Service,
	timeout time.Duration,
	loc *time.Location,
	retrier retrier.Retrier,
) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_record_changed"))
	if loc == nil {
		loc = time.UTC
	}

	return &Handler{
		orderRecordService:       orderRecordService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
		loc:                      loc,
		retrier:                  retrier,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.records: claim closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.records: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без
// коммита: сообщение будет доставлено повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	var event orderRecordMessage
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.records handler received bad message")
		OrderRecordsConsumedTotal.WithLabelValues(resultRejected).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("record", event.ID),
		logger.NewField("container", event.ContainerNumber),
		logger.NewField("event_type", event.EventType),
		logger.NewField("offset", message.Offset),
	)

	orderRecordModify, err := event.toOrderRecordModify(h.loc)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.records handler rejected record")
		OrderRecordsConsumedTotal.WithLabelValues(resultRejected).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	record, err := h.ingest(sess.Context(), msgLog, orderRecordModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.records handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, entities.ErrUpstreamUnavailable):
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.records handler gave up, database unavailable, message will be reprocessed")
			OrderRecordsConsumedTotal.WithLabelValues(resultFailed).Inc()
			return true

		case errors.Is(err, entities.ErrInvalidInput):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.records handler rejected record")
			OrderRecordsConsumedTotal.WithLabelValues(resultRejected).Inc()

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.records handler failed to ingest record")
			OrderRecordsConsumedTotal.WithLabelValues(resultFailed).Inc()
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.records: ingested", logger.NewField("updated_at", record.UpdatedAt))
	OrderRecordsConsumedTotal.WithLabelValues(resultIngested).Inc()
	sess.MarkMessage(message, "")
	return false
}

// ingest повторяет Ingest только при недоступной базе, остальные ошибки
// возвращаются с первой попытки. Отмена сессии прекращает попытки.
func (h *Handler) ingest(
	ctx context.Context,
	msgLog handlerLogger,
	orderRecordModify entities.OrderRecordModify,
) (*entities.OrderRecord, error) {
	var (
		record  *entities.OrderRecord
		lastErr error
	)
	err := h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, h.messageProcessingTimeout)
		defer cancel()

		record, lastErr = h.orderRecordService.Ingest(attemptCtx, orderRecordModify)
		if lastErr == nil || !errors.Is(lastErr, entities.ErrUpstreamUnavailable) {
			return nil
		}

		msgLog.With(
			logger.NewField("error", lastErr),
		).Warn("order.records handler database unavailable, retrying")
		return lastErr
	})
	if err != nil {
		return nil, err
	}
	return record, lastErr
}
