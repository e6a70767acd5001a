//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_record_changed_test
package order_record_changed

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
	Ingest(ctx context.Context, orderRecordModify entities.OrderRecordModify) (*entities.OrderRecord, error)
}
