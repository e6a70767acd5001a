//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=billing_test
package billing

import (
	"context"
	"time"

	"depot/internal/entities"
)

type OrderRecordRepository interface {
	List(ctx context.Context, filter entities.OrderRecordFilter) ([]entities.OrderRecord, error)
}

type ReleaseService interface {
	GetRelease(ctx context.Context, containerNumber string) (*entities.Release, error)
}

type Calculator interface {
	ComputeOverdue(deliveryDate time.Time, freeDays int, perDiemRate entities.Money, now time.Time) (entities.Overdue, error)
}

type Clock interface {
	Now() time.Time
}
