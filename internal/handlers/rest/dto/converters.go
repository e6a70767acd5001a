package dto

import (
	"fmt"
	"time"

	"depot/internal/entities"
)

func FromCalendarEvent(e entities.CalendarEvent) CalendarEvent {
	return CalendarEvent{
		ID:                e.ID,
		Type:              e.Type.String(),
		ContainerNumber:   e.ContainerNumber,
		CustomerName:      e.CustomerName,
		Location:          e.Location,
		Amount:            e.Amount.String(),
		Date:              e.Date.String(),
		FreeDaysRemaining: e.FreeDaysRemaining,
		ReleaseNumber:     e.ReleaseNumber,
		InvoiceID:         e.InvoiceID,
		Urgency:           e.Urgency.String(),
	}
}

// FromCalendarEvents никогда не возвращает nil, пустой ответ кодируется как [].
func FromCalendarEvents(events []entities.CalendarEvent) []CalendarEvent {
	result := make([]CalendarEvent, 0, len(events))
	for _, e := range events {
		result = append(result, FromCalendarEvent(e))
	}
	return result
}

func FromMonthView(view *entities.MonthView) MonthView {
	weeks := make([][]MonthCell, 0, len(view.Weeks))
	for _, week := range view.Weeks {
		cells := make([]MonthCell, 0, len(week))
		for _, cell := range week {
			cells = append(cells, MonthCell{Date: cell.Date.String(), InMonth: cell.InMonth})
		}
		weeks = append(weeks, cells)
	}

	days := make(map[string][]CalendarEvent, len(view.Days))
	for date, events := range view.Days {
		days[date.String()] = FromCalendarEvents(events)
	}

	return MonthView{
		Year:  view.Year,
		Month: int(view.Month),
		Weeks: weeks,
		Days:  days,
	}
}

// FromRelease дата вывоза выводится в поясе календаря, как её видит календарь.
func FromRelease(r *entities.Release, loc *time.Location) Release {
	return Release{
		ID:              r.ID.String(),
		ContainerNumber: r.ContainerNumber,
		ReleaseNumber:   r.ReleaseNumber,
		PickupDate:      entities.DateOf(r.PickupDate, loc).String(),
		CustomerName:    r.CustomerName,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromContainerBilling(b *entities.ContainerBilling, loc *time.Location) ContainerBilling {
	return ContainerBilling{
		ContainerNumber:   b.ContainerNumber,
		CustomerName:      b.CustomerName,
		FreeWindowStart:   entities.DateOf(b.FreeWindowStart, loc).String(),
		FreeDays:          b.FreeDays,
		PerDiemRate:       b.PerDiemRate.String(),
		AsOf:              b.AsOf.UTC().Format(time.RFC3339),
		Released:          b.Released,
		FreeDaysRemaining: b.FreeDaysRemaining,
		OverdueDays:       b.OverdueDays,
		AccruedFee:        b.AccruedFee.String(),
	}
}

// ToReleaseModify переносит только присланные поля, пустая строка в notes
// очищает заметку. Дата без времени читается в поясе календаря loc.
func (r ReleaseRequest) ToReleaseModify(loc *time.Location) (entities.ReleaseModify, error) {
	modify := entities.ReleaseModify{
		ContainerNumber: r.ContainerNumber,
		ReleaseNumber:   r.ReleaseNumber,
		CustomerName:    r.CustomerName,
		Notes:           r.Notes,
	}

	if r.PickupDate != nil {
		pickupDate, err := entities.ParseDateIn(*r.PickupDate, loc)
		if err != nil {
			return entities.ReleaseModify{}, fmt.Errorf("pickupDate: %w", err)
		}
		modify.PickupDate = &pickupDate
	}

	return modify, nil
}
