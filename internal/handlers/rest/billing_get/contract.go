//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=billing_get_test
package billing_get

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
	ContainerBilling(ctx context.Context, containerNumber string, asOf *time.Time) (*entities.ContainerBilling, error)
}
