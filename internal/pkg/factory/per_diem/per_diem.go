package per_diem

import (
	"fmt"
	"time"

	"depot/internal/entities"
)

// Calculator считает бесплатные дни и начисленный per diem.
// Дни считаются календарными в часовом поясе депо, дробные части отбрасываются.
type Calculator struct {
	loc *time.Location
}

func New(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc}
}

func (c *Calculator) DaysElapsed(from, now time.Time) int {
	return entities.DateOf(from, c.loc).DaysUntil(entities.DateOf(now, c.loc))
}

func (c *Calculator) FreeDaysRemaining(windowStart time.Time, freeDays int, now time.Time) int {
	return freeDays - c.DaysElapsed(windowStart, now)
}

// ComputeOverdue при нуле оставшихся дней контейнер ещё не просрочен,
// начисление начинается со следующего дня. Начисление, не помещающееся
// в Money, возвращает entities.ErrAmountOutOfRange.
func (c *Calculator) ComputeOverdue(
	deliveryDate time.Time,
	freeDays int,
	perDiemRate entities.Money,
	now time.Time,
) (entities.Overdue, error) {
	remaining := c.FreeDaysRemaining(deliveryDate, freeDays, now)
	if remaining >= 0 {
		return entities.Overdue{FreeDaysRemaining: remaining}, nil
	}

	overdueDays := -remaining
	fee, err := perDiemRate.Mul(int64(overdueDays))
	if err != nil {
		return entities.Overdue{}, fmt.Errorf("accrued fee for %d overdue days: %w", overdueDays, err)
	}
	if fee.IsNegative() {
		fee = 0
	}

	return entities.Overdue{
		FreeDaysRemaining: remaining,
		OverdueDays:       overdueDays,
		AccruedFee:        fee,
	}, nil
}
