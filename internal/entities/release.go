package entities

import (
	"time"

	"github.com/google/uuid"
)

type Release struct {
	ID              uuid.UUID
	ContainerNumber string
	ReleaseNumber   string
	PickupDate      time.Time
	CustomerName    string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ToOrderRecord выпуск контейнера в календаре выглядит как запись released на дату вывоза.
func (r Release) ToOrderRecord() OrderRecord {
	pickup := r.PickupDate
	releaseNumber := r.ReleaseNumber
	return OrderRecord{
		ID:              "release-" + r.ID.String(),
		ContainerNumber: r.ContainerNumber,
		EventType:       EventReleased,
		CustomerName:    r.CustomerName,
		ReleaseNumber:   &releaseNumber,
		PickupDate:      &pickup,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type ReleaseModify struct {
	ID              *uuid.UUID
	ContainerNumber *string
	ReleaseNumber   *string
	PickupDate      *time.Time
	CustomerName    *string
	Notes           *string
}

type ReleaseEventType string

const (
	ReleaseCreated ReleaseEventType = "release.created"
	ReleaseEdited  ReleaseEventType = "release.edited"
)

func (t ReleaseEventType) String() string {
	return string(t)
}

type ReleaseEvent struct {
	Type       ReleaseEventType
	Release    Release
	OccurredAt time.Time
}
