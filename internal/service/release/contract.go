//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=release_test
package release

import (
	"context"
	"time"

	"depot/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, releaseModify entities.ReleaseModify) (*entities.Release, error)
	Update(ctx context.Context, releaseModify entities.ReleaseModify) (*entities.Release, error)
	GetByContainer(ctx context.Context, containerNumber string) (*entities.Release, error)
}

type OrderRecordRepository interface {
	ContainerExists(ctx context.Context, containerNumber string) (bool, error)
}

type EventPublisher interface {
	PublishReleaseEvent(ctx context.Context, event entities.ReleaseEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
