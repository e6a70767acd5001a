package order_record

import "time"

type OrderRecordDB struct {
	ID              string
	ContainerNumber string
	ContainerType   string
	EventType       string
	CustomerName    string
	Location        string
	AmountMinor     int64
	FreeDays        *int
	PerDiemMinor    int64
	InvoiceID       *string
	ReleaseNumber   *string
	DeliveryDate    *time.Time
	PickupDate      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderRecordModifyDB struct {
	ID              *string
	ContainerNumber *string
	ContainerType   *string
	EventType       *string
	CustomerName    *string
	Location        *string
	AmountMinor     *int64
	FreeDays        *int
	PerDiemMinor    *int64
	InvoiceID       *string
	ReleaseNumber   *string
	DeliveryDate    *time.Time
	PickupDate      *time.Time
	CreatedAt       *time.Time
}
