//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=calendar_events_get_test
package calendar_events_get

import (
	"context"

	"depot/internal/entities"
	"depot/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListEvents(ctx context.Context, filter entities.CalendarEventFilter) ([]entities.CalendarEvent, error)
}
