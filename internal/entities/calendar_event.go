package entities

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// CalendarDate календарный день без времени и часового пояса.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time, loc *time.Location) CalendarDate {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: date %q: %w", ErrInvalidInput, s, err)
	}
	return DateOf(t, time.UTC), nil
}

// ParseDateIn YYYY-MM-DD становится полночью этого дня в loc, RFC3339 берётся
// как есть. Так день даты без времени не сдвигается при переводе в loc.
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD or RFC3339", ErrInvalidInput, s)
	}
	return t, nil
}

// Time полночь дня в UTC, удобно для арифметики по дням.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n), time.UTC)
}

// DaysUntil количество календарных дней от d до other.
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

func (d CalendarDate) String() string {
	return d.Time().Format(DateLayout)
}

type CalendarEvent struct {
	ID                string
	Type              EventType
	ContainerNumber   string
	CustomerName      string
	Location          string
	Amount            Money
	Date              CalendarDate
	FreeDaysRemaining *int
	ReleaseNumber     *string
	InvoiceID         *string
	Urgency           UrgencyTier
}

type CalendarEventFilter struct {
	CustomerName *string
	EventType    *EventType
}

type MonthCell struct {
	Date    CalendarDate
	InMonth bool
}

type MonthView struct {
	Year  int
	Month time.Month
	Weeks [][]MonthCell
	Days  map[CalendarDate][]CalendarEvent
}

type Overdue struct {
	FreeDaysRemaining int
	OverdueDays       int
	AccruedFee        Money
}

type ContainerBilling struct {
	ContainerNumber string
	CustomerName    string
	FreeWindowStart time.Time
	FreeDays        int
	PerDiemRate     Money
	AsOf            time.Time
	Released        bool
	Overdue
}
