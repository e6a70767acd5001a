package event_aggregator

import (
	"time"

	"depot/internal/entities"
)

// Aggregator строит по одному CalendarEvent на каждую запись, без склейки записей одного контейнера.
type Aggregator struct {
	loc        *time.Location
	freeDays   FreeDaysCalculator
	classifier UrgencyClassifier
}

func New(loc *time.Location, freeDays FreeDaysCalculator, classifier UrgencyClassifier) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{
		loc:        loc,
		freeDays:   freeDays,
		classifier: classifier,
	}
}

func (a *Aggregator) Aggregate(records []entities.OrderRecord, now time.Time) []entities.CalendarEvent {
	released := releasedContainers(records)

	events := make([]entities.CalendarEvent, 0, len(records))
	for _, record := range records {
		events = append(events, a.toEvent(record, released[record.ContainerNumber], now))
	}
	return events
}

func (a *Aggregator) toEvent(record entities.OrderRecord, released bool, now time.Time) entities.CalendarEvent {
	var freeDaysRemaining *int
	// выпущенный контейнер выходит из-под контроля сроков
	if !released && record.EventType.HasFreeDays() && record.FreeDays != nil {
		remaining := a.freeDays.FreeDaysRemaining(record.FreeWindowStart(), *record.FreeDays, now)
		freeDaysRemaining = &remaining
	}

	return entities.CalendarEvent{
		ID:                record.ID,
		Type:              record.EventType,
		ContainerNumber:   record.ContainerNumber,
		CustomerName:      record.CustomerName,
		Location:          record.Location,
		Amount:            record.Amount,
		Date:              entities.DateOf(record.BucketDate(), a.loc),
		FreeDaysRemaining: freeDaysRemaining,
		ReleaseNumber:     record.ReleaseNumber,
		InvoiceID:         record.InvoiceID,
		Urgency:           a.classifier.Classify(freeDaysRemaining, record.EventType),
	}
}

func releasedContainers(records []entities.OrderRecord) map[string]bool {
	released := make(map[string]bool)
	for _, record := range records {
		if record.EventType == entities.EventReleased {
			released[record.ContainerNumber] = true
		}
	}
	return released
}
