package release

import (
	"time"

	"github.com/google/uuid"
)

type ReleaseDB struct {
	ID              uuid.UUID
	ContainerNumber string
	ReleaseNumber   string
	PickupDate      time.Time
	CustomerName    string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ReleaseModifyDB struct {
	ID              *uuid.UUID
	ContainerNumber *string
	ReleaseNumber   *string
	PickupDate      *time.Time
	CustomerName    *string
	Notes           *string
}
