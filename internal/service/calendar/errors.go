package calendar

import (
	"fmt"

	"depot/internal/entities"
)

var (
	ErrInvalidEventType = fmt.Errorf("%w: invalid event type", entities.ErrInvalidInput)
	ErrInvalidDate      = fmt.Errorf("%w: invalid date", entities.ErrInvalidInput)
)
