package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingExtension is the audit record of one extension: the end date before
// and after, and the fee added to the booking total.
type BookingExtension struct {
	Id              string
	BookingId       string
	PreviousEndDate time.Time
	NewEndDate      time.Time
	ExtensionFee    decimal.Decimal
	Reason          *string
	Remarks         *string
	CreatedBy       *string
	CreatedAt       time.Time
}
