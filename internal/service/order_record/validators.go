package order_record

import (
	"strings"
	"time"

	"depot/internal/entities"
)

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isValidOptionalDate(t *time.Time) bool {
	return t == nil || !t.IsZero()
}

func isValidOptionalMoney(m *entities.Money) bool {
	return m == nil || !m.IsNegative()
}

func validate(m entities.OrderRecordModify) error {
	if isBlank(m.ID) {
		return ErrInvalidRecordID
	}
	if isBlank(m.ContainerNumber) {
		return ErrInvalidContainerNumber
	}
	if m.EventType == nil || !m.EventType.IsValid() {
		return ErrInvalidEventType
	}
	if isBlank(m.CustomerName) {
		return ErrInvalidCustomerName
	}
	if m.CreatedAt == nil || m.CreatedAt.IsZero() {
		return ErrInvalidDate
	}
	if !isValidOptionalDate(m.DeliveryDate) || !isValidOptionalDate(m.PickupDate) {
		return ErrInvalidDate
	}
	if m.FreeDays != nil && *m.FreeDays < 0 {
		return ErrInvalidFreeDays
	}
	if !isValidOptionalMoney(m.Amount) || !isValidOptionalMoney(m.PerDiemRate) {
		return ErrInvalidAmount
	}
	return nil
}
