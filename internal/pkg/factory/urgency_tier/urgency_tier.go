package urgency_tier

import "depot/internal/entities"

const (
	criticalMaxDays = 1
	urgentMaxDays   = 3
	monitorMaxDays  = 7
)

type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

// Classify отрицательный остаток означает уже просроченный контейнер и тоже critical.
func (c *Classifier) Classify(freeDaysRemaining *int, eventType entities.EventType) entities.UrgencyTier {
	switch eventType {
	case entities.EventPurchased, entities.EventDelivered:
	case entities.EventInTransit, entities.EventReleased:
		return entities.UrgencyNone
	default:
		return entities.UrgencyNone
	}

	if freeDaysRemaining == nil {
		return entities.UrgencyNone
	}

	days := *freeDaysRemaining
	switch {
	case days <= criticalMaxDays:
		return entities.UrgencyCritical
	case days <= urgentMaxDays:
		return entities.UrgencyUrgent
	case days <= monitorMaxDays:
		return entities.UrgencyMonitor
	default:
		return entities.UrgencyOnSchedule
	}
}
