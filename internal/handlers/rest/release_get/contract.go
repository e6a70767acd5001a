//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=release_get_test
package release_get

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
	GetRelease(ctx context.Context, containerNumber string) (*entities.Release, error)
}
