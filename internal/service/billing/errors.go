package billing

import (
	"errors"
	"fmt"

	"depot/internal/entities"
)

var (
	ErrInvalidContainerNumber = fmt.Errorf("%w: invalid container number", entities.ErrInvalidInput)

	ErrContainerNotFound = errors.New("container not found")
	ErrNoBillingTerms    = errors.New("container has no free days terms")
)
