package order_record_changed

import (
	"fmt"
	"time"

	"depot/internal/entities"
)

// orderRecordMessage запись системы заказов в топике order.records.
// Суммы приходят десятичными строками ("1250.00"). Даты доставки и вывоза
// YYYY-MM-DD или RFC3339, createdAt только RFC3339.
type orderRecordMessage struct {
	ID              string     `json:"id"`
	ContainerNumber string     `json:"containerNumber"`
	ContainerType   string     `json:"containerType"`
	EventType       string     `json:"eventType"`
	CustomerName    string     `json:"customerName"`
	Location        string     `json:"location"`
	Amount          string     `json:"amount"`
	FreeDays        *int       `json:"freeDays,omitempty"`
	PerDiemRate     *string    `json:"perDiemRate,omitempty"`
	InvoiceID       *string    `json:"invoiceId,omitempty"`
	ReleaseNumber   *string    `json:"releaseNumber,omitempty"`
	DeliveryDate    *string    `json:"deliveryDate,omitempty"`
	PickupDate      *string    `json:"pickupDate,omitempty"`
	CreatedAt       *time.Time `json:"createdAt"`
}

func (m orderRecordMessage) toOrderRecordModify(loc *time.Location) (entities.OrderRecordModify, error) {
	eventType := entities.EventType(m.EventType)

	modify := entities.OrderRecordModify{
		ID:              &m.ID,
		ContainerNumber: &m.ContainerNumber,
		ContainerType:   &m.ContainerType,
		EventType:       &eventType,
		CustomerName:    &m.CustomerName,
		Location:        &m.Location,
		FreeDays:        m.FreeDays,
		InvoiceID:       m.InvoiceID,
		ReleaseNumber:   m.ReleaseNumber,
		CreatedAt:       m.CreatedAt,
	}

	if m.Amount != "" {
		amount, err := entities.NewMoneyFromString(m.Amount)
		if err != nil {
			return entities.OrderRecordModify{}, fmt.Errorf("amount: %w", err)
		}
		modify.Amount = &amount
	}

	if m.PerDiemRate != nil {
		rate, err := entities.NewMoneyFromString(*m.PerDiemRate)
		if err != nil {
			return entities.OrderRecordModify{}, fmt.Errorf("perDiemRate: %w", err)
		}
		modify.PerDiemRate = &rate
	}

	if m.DeliveryDate != nil {
		deliveryDate, err := entities.ParseDateIn(*m.DeliveryDate, loc)
		if err != nil {
			return entities.OrderRecordModify{}, fmt.Errorf("deliveryDate: %w", err)
		}
		modify.DeliveryDate = &deliveryDate
	}

	if m.PickupDate != nil {
		pickupDate, err := entities.ParseDateIn(*m.PickupDate, loc)
		if err != nil {
			return entities.OrderRecordModify{}, fmt.Errorf("pickupDate: %w", err)
		}
		modify.PickupDate = &pickupDate
	}

	return modify, nil
}
