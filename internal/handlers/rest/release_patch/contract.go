//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=release_patch_test
package release_patch

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
	EditRelease(ctx context.Context, releaseModify entities.ReleaseModify) (*entities.Release, error)
}
