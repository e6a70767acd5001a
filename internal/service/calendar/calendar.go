package calendar

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"depot/internal/entities"
)

type Service struct {
	orderRecords OrderRecordRepository
	releases     ReleaseRepository
	aggregator   EventAggregator
	clock        Clock
	loc          *time.Location
}

func New(
	orderRecords OrderRecordRepository,
	releases ReleaseRepository,
	aggregator EventAggregator,
	clock Clock,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		orderRecords: orderRecords,
		releases:     releases,
		aggregator:   aggregator,
		clock:        clock,
		loc:          loc,
	}
}

func (s *Service) ListEvents(ctx context.Context, filter entities.CalendarEventFilter) ([]entities.CalendarEvent, error) {
	if filter.EventType != nil && !filter.EventType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEventType, *filter.EventType)
	}

	records, err := s.loadRecords(ctx, filter.CustomerName)
	if err != nil {
		return nil, err
	}

	events := s.aggregator.Aggregate(records, s.clock.Now())
	if filter.EventType != nil {
		events = slices.DeleteFunc(events, func(event entities.CalendarEvent) bool {
			return event.Type != *filter.EventType
		})
	}

	slices.SortStableFunc(events, func(a, b entities.CalendarEvent) int {
		return a.Date.Time().Compare(b.Date.Time())
	})
	return events, nil
}

func (s *Service) EventsForDate(ctx context.Context, date entities.CalendarDate) ([]entities.CalendarEvent, error) {
	events, err := s.ListEvents(ctx, entities.CalendarEventFilter{})
	if err != nil {
		return nil, err
	}
	return EventsForDate(events, date), nil
}

func (s *Service) EventsForMonth(ctx context.Context, year int, month time.Month) (*entities.MonthView, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: %04d-%02d", ErrInvalidDate, year, int(month))
	}

	events, err := s.ListEvents(ctx, entities.CalendarEventFilter{})
	if err != nil {
		return nil, err
	}

	return &entities.MonthView{
		Year:  year,
		Month: month,
		Weeks: MonthGrid(year, month),
		Days:  EventsForMonth(events, year, month),
	}, nil
}

// UrgencyCounts количество событий по уровням срочности на текущий момент.
func (s *Service) UrgencyCounts(ctx context.Context) (map[entities.UrgencyTier]int, error) {
	events, err := s.ListEvents(ctx, entities.CalendarEventFilter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.UrgencyTier]int, len(entities.UrgencyTiers))
	for _, tier := range entities.UrgencyTiers {
		counts[tier] = 0
	}
	for _, event := range events {
		counts[event.Urgency]++
	}
	return counts, nil
}

// loadRecords записи заказов вместе с выпусками, выпуск превращается в запись released.
func (s *Service) loadRecords(ctx context.Context, customerName *string) ([]entities.OrderRecord, error) {
	records, err := s.orderRecords.List(ctx, entities.OrderRecordFilter{CustomerName: customerName})
	if err != nil {
		return nil, fmt.Errorf("list order records: %w", err)
	}

	releases, err := s.releases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}

	slices.SortStableFunc(releases, func(a, b entities.Release) int {
		return cmp.Compare(a.ContainerNumber, b.ContainerNumber)
	})
	for _, release := range releases {
		if customerName != nil && release.CustomerName != *customerName {
			continue
		}
		records = append(records, release.ToOrderRecord())
	}
	return records, nil
}
