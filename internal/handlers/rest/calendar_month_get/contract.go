//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=calendar_month_get_test
package calendar_month_get

import (
	"context"
	"time"

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
	EventsForMonth(ctx context.Context, year int, month time.Month) (*entities.MonthView, error)
}
