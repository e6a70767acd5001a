package entities

type Container struct {
	Number string
	Type   string
	State  EventType
}

// EventType стадия жизненного цикла контейнера.
type EventType string

const (
	EventPurchased EventType = "purchased"
	EventInTransit EventType = "in_transit"
	EventDelivered EventType = "delivered"
	EventReleased  EventType = "released"
)

func (t EventType) String() string {
	return string(t)
}

func (t EventType) IsValid() bool {
	switch t {
	case EventPurchased, EventInTransit, EventDelivered, EventReleased:
		return true
	default:
		return false
	}
}

// HasFreeDays free days имеют смысл только для purchased и delivered.
func (t EventType) HasFreeDays() bool {
	switch t {
	case EventPurchased, EventDelivered:
		return true
	case EventInTransit, EventReleased:
		return false
	default:
		return false
	}
}

type UrgencyTier string

const (
	UrgencyNone       UrgencyTier = "none"
	UrgencyCritical   UrgencyTier = "critical"
	UrgencyUrgent     UrgencyTier = "urgent"
	UrgencyMonitor    UrgencyTier = "monitor"
	UrgencyOnSchedule UrgencyTier = "on_schedule"
)

func (u UrgencyTier) String() string {
	return string(u)
}

var UrgencyTiers = []UrgencyTier{
	UrgencyNone,
	UrgencyCritical,
	UrgencyUrgent,
	UrgencyMonitor,
	UrgencyOnSchedule,
}
