package calendar

import (
	"time"

	"depot/internal/entities"
)

const daysInWeek = 7

// EventsForDate события одного дня. Дата берётся из CalendarEvent.Date как есть.
func EventsForDate(events []entities.CalendarEvent, date entities.CalendarDate) []entities.CalendarEvent {
	result := make([]entities.CalendarEvent, 0)
	for _, event := range events {
		if event.Date == date {
			result = append(result, event)
		}
	}
	return result
}

// EventsForMonth группирует события по дням месяца, события других месяцев отбрасываются.
func EventsForMonth(events []entities.CalendarEvent, year int, month time.Month) map[entities.CalendarDate][]entities.CalendarEvent {
	days := make(map[entities.CalendarDate][]entities.CalendarEvent)
	for _, event := range events {
		if event.Date.Year != year || event.Date.Month != month {
			continue
		}
		days[event.Date] = append(days[event.Date], event)
	}
	return days
}

// MonthGrid недели месяца с понедельника. Клетки соседних месяцев помечены InMonth=false.
func MonthGrid(year int, month time.Month) [][]entities.MonthCell {
	first := entities.CalendarDate{Year: year, Month: month, Day: 1}
	last := entities.DateOf(first.Time().AddDate(0, 1, -1), time.UTC)

	start := first.AddDays(-mondayOffset(first.Time().Weekday()))
	end := last.AddDays(daysInWeek - 1 - mondayOffset(last.Time().Weekday()))

	weeks := make([][]entities.MonthCell, 0, 6)
	for day := start; !end.Before(day); {
		week := make([]entities.MonthCell, 0, daysInWeek)
		for range daysInWeek {
			week = append(week, entities.MonthCell{
				Date:    day,
				InMonth: day.Year == year && day.Month == month,
			})
			day = day.AddDays(1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

func mondayOffset(weekday time.Weekday) int {
	return (int(weekday) + daysInWeek - 1) % daysInWeek
}
