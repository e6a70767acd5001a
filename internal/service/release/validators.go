package release

import (
	"strings"
	"time"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidPickupDate(pickupDate time.Time) bool {
	return !pickupDate.IsZero()
}
