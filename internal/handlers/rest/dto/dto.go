// Package dto описывает JSON-представление HTTP API.
package dto

type Error struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type CalendarEvent struct {
	ID                string  `json:"id"`
	Type              string  `json:"type"`
	ContainerNumber   string  `json:"containerNumber"`
	CustomerName      string  `json:"customerName"`
	Location          string  `json:"location"`
	Amount            string  `json:"amount"`
	Date              string  `json:"date"`
	FreeDaysRemaining *int    `json:"freeDaysRemaining,omitempty"`
	ReleaseNumber     *string `json:"releaseNumber,omitempty"`
	InvoiceID         *string `json:"invoiceId,omitempty"`
	Urgency           string  `json:"urgency"`
}

type MonthCell struct {
	Date    string `json:"date"`
	InMonth bool   `json:"inMonth"`
}

type MonthView struct {
	Year  int                        `json:"year"`
	Month int                        `json:"month"`
	Weeks [][]MonthCell              `json:"weeks"`
	Days  map[string][]CalendarEvent `json:"days"`
}

// ReleaseRequest тело POST и PATCH /containers/release. pickupDate принимает
// YYYY-MM-DD или RFC3339.
type ReleaseRequest struct {
	ContainerNumber *string `json:"containerNumber"`
	ReleaseNumber   *string `json:"releaseNumber"`
	PickupDate      *string `json:"pickupDate"`
	CustomerName    *string `json:"customerName"`
	Notes           *string `json:"notes"`
	Edit            bool    `json:"edit"`
}

type Release struct {
	ID              string  `json:"id"`
	ContainerNumber string  `json:"containerNumber"`
	ReleaseNumber   string  `json:"releaseNumber"`
	PickupDate      string  `json:"pickupDate"`
	CustomerName    string  `json:"customerName"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type ContainerBilling struct {
	ContainerNumber   string `json:"containerNumber"`
	CustomerName      string `json:"customerName"`
	FreeWindowStart   string `json:"freeWindowStart"`
	FreeDays          int    `json:"freeDays"`
	PerDiemRate       string `json:"perDiemRate"`
	AsOf              string `json:"asOf"`
	Released          bool   `json:"released"`
	FreeDaysRemaining int    `json:"freeDaysRemaining"`
	OverdueDays       int    `json:"overdueDays"`
	AccruedFee        string `json:"accruedFee"`
}
