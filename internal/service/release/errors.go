package release

import (
	"errors"
	"fmt"

	"depot/internal/entities"
)

var (
	ErrInvalidContainerNumber = fmt.Errorf("%w: invalid container number", entities.ErrInvalidInput)
	ErrInvalidReleaseNumber   = fmt.Errorf("%w: invalid release number", entities.ErrInvalidInput)
	ErrInvalidPickupDate      = fmt.Errorf("%w: invalid pickup date", entities.ErrInvalidInput)
	ErrInvalidCustomerName    = fmt.Errorf("%w: invalid customer name", entities.ErrInvalidInput)
	ErrNothingToUpdate        = fmt.Errorf("%w: no fields to update", entities.ErrInvalidInput)

	ErrReleaseAlreadyExists = errors.New("release already exists")
	ErrReleaseNotFound      = errors.New("release not found")
	ErrContainerNotFound    = errors.New("container not found")
)
