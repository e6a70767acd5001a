package event_aggregator

import (
	"time"

	"depot/internal/entities"
)

type FreeDaysCalculator interface {
	FreeDaysRemaining(windowStart time.Time, freeDays int, now time.Time) int
}

type UrgencyClassifier interface {
	Classify(freeDaysRemaining *int, eventType entities.EventType) entities.UrgencyTier
}
