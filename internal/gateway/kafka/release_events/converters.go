package release_events

import (
	"time"

	"depot/internal/entities"
)

type releaseEventMessage struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Release    releaseMessage `json:"release"`
}

type releaseMessage struct {
	ID              string  `json:"id"`
	ContainerNumber string  `json:"containerNumber"`
	ReleaseNumber   string  `json:"releaseNumber"`
	PickupDate      string  `json:"pickupDate"`
	CustomerName    string  `json:"customerName"`
	Notes           *string `json:"notes,omitempty"`
}

func toMessage(event entities.ReleaseEvent, loc *time.Location) releaseEventMessage {
	return releaseEventMessage{
		Type:       event.Type.String(),
		OccurredAt: event.OccurredAt.UTC(),
		Release: releaseMessage{
			ID:              event.Release.ID.String(),
			ContainerNumber: event.Release.ContainerNumber,
			ReleaseNumber:   event.Release.ReleaseNumber,
			PickupDate:      entities.DateOf(event.Release.PickupDate, loc).String(),
			CustomerName:    event.Release.CustomerName,
			Notes:           event.Release.Notes,
		},
	}
}
