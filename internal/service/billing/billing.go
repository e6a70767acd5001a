package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"depot/internal/entities"
	"depot/internal/service/release"
)

type Service struct {
	orderRecords OrderRecordRepository
	releases     ReleaseService
	calculator   Calculator
	clock        Clock
}

func New(orderRecords OrderRecordRepository, releases ReleaseService, calculator Calculator, clock Clock) *Service {
	return &Service{
		orderRecords: orderRecords,
		releases:     releases,
		calculator:   calculator,
		clock:        clock,
	}
}

// ContainerBilling начисление per diem на момент asOf (по умолчанию сейчас).
// После выпуска начисление замораживается на дате вывоза.
func (s *Service) ContainerBilling(ctx context.Context, containerNumber string, asOf *time.Time) (*entities.ContainerBilling, error) {
	containerNumber = strings.TrimSpace(containerNumber)
	if containerNumber == "" {
		return nil, ErrInvalidContainerNumber
	}

	records, err := s.orderRecords.List(ctx, entities.OrderRecordFilter{ContainerNumber: &containerNumber})
	if err != nil {
		return nil, fmt.Errorf("list order records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, containerNumber)
	}

	terms := billingTerms(records)
	if terms == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoBillingTerms, containerNumber)
	}

	now := s.clock.Now()
	if asOf != nil {
		now = *asOf
	}

	pickup, err := s.pickupDate(ctx, containerNumber, records)
	if err != nil {
		return nil, err
	}
	if pickup != nil && pickup.Before(now) {
		now = *pickup
	}

	overdue, err := s.calculator.ComputeOverdue(terms.FreeWindowStart(), *terms.FreeDays, terms.PerDiemRate, now)
	if err != nil {
		return nil, fmt.Errorf("compute overdue %s: %w", containerNumber, err)
	}

	return &entities.ContainerBilling{
		ContainerNumber: containerNumber,
		CustomerName:    terms.CustomerName,
		FreeWindowStart: terms.FreeWindowStart(),
		FreeDays:        *terms.FreeDays,
		PerDiemRate:     terms.PerDiemRate,
		AsOf:            now,
		Released:        pickup != nil,
		Overdue:         overdue,
	}, nil
}

// pickupDate дата вывоза из реестра выпусков, иначе из записи released от системы заказов.
func (s *Service) pickupDate(ctx context.Context, containerNumber string, records []entities.OrderRecord) (*time.Time, error) {
	rel, err := s.releases.GetRelease(ctx, containerNumber)
	switch {
	case err == nil:
		return &rel.PickupDate, nil
	case errors.Is(err, release.ErrReleaseNotFound):
	default:
		return nil, fmt.Errorf("get release: %w", err)
	}

	var pickup *time.Time
	for _, record := range records {
		if record.EventType != entities.EventReleased || record.PickupDate == nil {
			continue
		}
		if pickup == nil || record.PickupDate.After(*pickup) {
			pickup = record.PickupDate
		}
	}
	return pickup, nil
}

// billingTerms последняя запись delivered с free days, иначе последняя purchased.
func billingTerms(records []entities.OrderRecord) *entities.OrderRecord {
	var delivered, purchased *entities.OrderRecord
	for i := range records {
		record := &records[i]
		if record.FreeDays == nil {
			continue
		}

		switch record.EventType {
		case entities.EventDelivered:
			if delivered == nil || record.CreatedAt.After(delivered.CreatedAt) {
				delivered = record
			}
		case entities.EventPurchased:
			if purchased == nil || record.CreatedAt.After(purchased.CreatedAt) {
				purchased = record
			}
		case entities.EventInTransit, entities.EventReleased:
		}
	}

	if delivered != nil {
		return delivered
	}
	return purchased
}
