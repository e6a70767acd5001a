package order_record

import (
	"fmt"

	"depot/internal/entities"
)

var (
	ErrInvalidRecordID        = fmt.Errorf("%w: invalid record id", entities.ErrInvalidInput)
	ErrInvalidContainerNumber = fmt.Errorf("%w: invalid container number", entities.ErrInvalidInput)
	ErrInvalidEventType       = fmt.Errorf("%w: invalid event type", entities.ErrInvalidInput)
	ErrInvalidCustomerName    = fmt.Errorf("%w: invalid customer name", entities.ErrInvalidInput)
	ErrInvalidFreeDays        = fmt.Errorf("%w: invalid free days", entities.ErrInvalidInput)
	ErrInvalidAmount          = fmt.Errorf("%w: invalid amount", entities.ErrInvalidInput)
	ErrInvalidDate            = fmt.Errorf("%w: invalid date", entities.ErrInvalidInput)
)
