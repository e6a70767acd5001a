//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=calendar_test
package calendar

import (
	"context"
	"time"

	"depot/internal/entities"
)

type OrderRecordRepository interface {
	List(ctx context.Context, filter entities.OrderRecordFilter) ([]entities.OrderRecord, error)
}

type ReleaseRepository interface {
	List(ctx context.Context) ([]entities.Release, error)
}

type EventAggregator interface {
	Aggregate(records []entities.OrderRecord, now time.Time) []entities.CalendarEvent
}

type Clock interface {
	Now() time.Time
}
