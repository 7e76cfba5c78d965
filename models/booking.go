package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingReserved  BookingStatus = "Reserved"
	BookingActive    BookingStatus = "Active"
	BookingReturned  BookingStatus = "Returned"
	BookingCancelled BookingStatus = "Cancelled"
	BookingOverdue   BookingStatus = "Overdue"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentUnpaid  PaymentStatus = "Unpaid"
)

// Booking carries the full financial state of a rental: the quote computed at
// creation (subtotal, tax, discount), charges accrued afterwards (extensions,
// accidents) and the payment rollup derived from the payments table.
type Booking struct {
	Id        string
	Reference string

	CustomerId string
	CarId      *string

	StartDate        time.Time
	EndDate          time.Time
	PickupTime       *string
	DropoffTime      *string
	ActualReturnDate *time.Time

	Status      BookingStatus
	CarReturned bool

	PaymentStatus    PaymentStatus
	Subtotal         decimal.Decimal
	Tax              decimal.Decimal
	Discount         decimal.Decimal
	ExtensionCharges decimal.Decimal
	TotalAmount      decimal.Decimal
	PaidAmount       decimal.Decimal
	PaymentDate      *time.Time
	PaymentMethod    *string

	HasAccident         bool
	AccidentDescription *string
	AccidentDate        *time.Time
	AccidentCharges     decimal.Decimal

	OriginalCarId  *string
	HasBeenSwapped bool
	SwapDate       *time.Time
	SwapReason     *string

	Remarks   *string
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingReference builds the human-facing booking id, e.g.
// "BK-20260823-1a2b3c4d".
func NewBookingReference(now time.Time) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("BK-%s-%s", now.Format("20060102"), suffix)
}

// DurationDays is the billed rental length. Same-day rentals bill one day.
func (b Booking) DurationDays() int {
	days := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func ValidateBookingDates(startDate, endDate, today time.Time) error {
	if startDate.After(endDate) {
		return ErrInvalidBookingDates
	}
	if startDate.Before(today) {
		return ErrStartDateInPast
	}
	return nil
}

// BookingQuote is the price computed when a car is attached to a booking.
type BookingQuote struct {
	Subtotal    decimal.Decimal
	TotalAmount decimal.Decimal
}

// ComputeQuote prices a booking: subtotal = fee per day x billed days,
// total = subtotal + tax - discount.
func ComputeQuote(feePerDay decimal.Decimal, startDate, endDate time.Time, tax, discount decimal.Decimal) BookingQuote {
	days := int(endDate.Sub(startDate).Hours() / 24)
	if days < 1 {
		days = 1
	}
	subtotal := feePerDay.Mul(decimal.NewFromInt(int64(days)))
	return BookingQuote{
		Subtotal:    subtotal,
		TotalAmount: subtotal.Add(tax).Sub(discount),
	}
}

// OverdueFee accrues the car's daily fee for every full day past the end date
// while the car has not been returned. Zero otherwise.
func (b Booking) OverdueFee(feePerDay decimal.Decimal, today time.Time) decimal.Decimal {
	if b.CarReturned || !today.After(b.EndDate) {
		return decimal.Zero
	}
	daysOverdue := int(today.Sub(b.EndDate).Hours() / 24)
	if daysOverdue < 1 {
		return decimal.Zero
	}
	return feePerDay.Mul(decimal.NewFromInt(int64(daysOverdue)))
}

// TotalBalance is the amount still owed:
// total + overdue fee + accident charges - paid.
func (b Booking) TotalBalance(feePerDay decimal.Decimal, today time.Time) decimal.Decimal {
	return b.TotalAmount.
		Add(b.OverdueFee(feePerDay, today)).
		Add(b.AccidentCharges).
		Sub(b.PaidAmount)
}

// RemainingBalance ignores overdue and accident charges; it is the figure the
// booking detail endpoint reports next to the quote.
func (b Booking) RemainingBalance() decimal.Decimal {
	return b.TotalAmount.Sub(b.PaidAmount)
}

// DerivePaymentStatus maps the successful-payments rollup against the amount
// due: nothing paid is Unpaid, anything below the due amount is Partial,
// everything else is Paid.
func DerivePaymentStatus(totalPaid, amountDue decimal.Decimal) PaymentStatus {
	switch {
	case totalPaid.IsZero():
		return PaymentUnpaid
	case totalPaid.LessThan(amountDue):
		return PaymentPartial
	default:
		return PaymentPaid
	}
}

// BookingDetails is the booking with its payment and extension history, as
// served by the detail endpoint.
type BookingDetails struct {
	Booking
	Payments   []Payment
	Extensions []BookingExtension
}

type CreateBookingInput struct {
	CustomerId  string
	CarId       *string
	StartDate   time.Time
	EndDate     time.Time
	PickupTime  *string
	DropoffTime *string
	Tax         decimal.Decimal
	Discount    decimal.Decimal
	Remarks     *string
	CreatedBy   *string
}

type UpdateBookingInput struct {
	Id          string
	CarId       *string
	StartDate   *time.Time
	EndDate     *time.Time
	PickupTime  *string
	DropoffTime *string
	Status      *BookingStatus
	Tax         *decimal.Decimal
	Discount    *decimal.Decimal
	Remarks     *string
}

type ExtendBookingInput struct {
	BookingId    string
	NewEndDate   time.Time
	ExtensionFee decimal.Decimal
	Reason       *string
	Remarks      *string
	CreatedBy    *string
}

type SwapCarInput struct {
	BookingId string
	NewCarId  string
	Reason    string
}

type ReportAccidentInput struct {
	BookingId   string
	Description string
	Date        time.Time
	Charges     decimal.Decimal
	NewCarId    *string
}

type BookingFilters struct {
	Status        *BookingStatus
	PaymentStatus *PaymentStatus
	CarReturned   *bool
	CustomerId    *string
	CarId         *string
	StartDate     *time.Time
	EndDate       *time.Time
}
