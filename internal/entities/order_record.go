package entities

import "time"

// OrderRecord запись о контейнере из системы заказов (покупка, доставка, вывоз).
type OrderRecord struct {
	ID              string
	ContainerNumber string
	ContainerType   string
	EventType       EventType
	CustomerName    string
	Location        string
	Amount          Money
	FreeDays        *int
	PerDiemRate     Money
	InvoiceID       *string
	ReleaseNumber   *string
	DeliveryDate    *time.Time
	PickupDate      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BucketDate дата, по которой запись попадает в календарь:
// дата вывоза, иначе дата доставки, иначе дата создания.
func (r OrderRecord) BucketDate() time.Time {
	switch {
	case r.PickupDate != nil:
		return *r.PickupDate
	case r.DeliveryDate != nil:
		return *r.DeliveryDate
	default:
		return r.CreatedAt
	}
}

// FreeWindowStart начало бесплатного периода хранения.
func (r OrderRecord) FreeWindowStart() time.Time {
	if r.DeliveryDate != nil {
		return *r.DeliveryDate
	}
	return r.CreatedAt
}

type OrderRecordModify struct {
	ID              *string
	ContainerNumber *string
	ContainerType   *string
	EventType       *EventType
	CustomerName    *string
	Location        *string
	Amount          *Money
	FreeDays        *int
	PerDiemRate     *Money
	InvoiceID       *string
	ReleaseNumber   *string
	DeliveryDate    *time.Time
	PickupDate      *time.Time
	CreatedAt       *time.Time
}

type OrderRecordFilter struct {
	ContainerNumber *string
	CustomerName    *string
}
