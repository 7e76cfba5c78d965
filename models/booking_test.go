package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return day
}

func TestComputeQuote(t *testing.T) {
	fee := decimal.NewFromInt(100)

	t.Run("multi day rental", func(t *testing.T) {
		quote := ComputeQuote(fee, date("2026-08-01"), date("2026-08-04"),
			decimal.NewFromInt(30), decimal.NewFromInt(10))
		assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(300)))
		assert.True(t, quote.TotalAmount.Equal(decimal.NewFromInt(320)))
	})

	t.Run("same day rental bills one day", func(t *testing.T) {
		quote := ComputeQuote(fee, date("2026-08-01"), date("2026-08-01"),
			decimal.Zero, decimal.Zero)
		assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(100)))
		assert.True(t, quote.TotalAmount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("discount reduces the total only", func(t *testing.T) {
		quote := ComputeQuote(fee, date("2026-08-01"), date("2026-08-02"),
			decimal.Zero, decimal.NewFromInt(25))
		assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(100)))
		assert.True(t, quote.TotalAmount.Equal(decimal.NewFromInt(75)))
	})
}

func TestBooking_OverdueFee(t *testing.T) {
	fee := decimal.NewFromInt(50)
	booking := Booking{EndDate: date("2026-08-10")}

	t.Run("not past the end date", func(t *testing.T) {
		assert.True(t, booking.OverdueFee(fee, date("2026-08-10")).IsZero())
	})

	t.Run("accrues per full day overdue", func(t *testing.T) {
		assert.True(t, booking.OverdueFee(fee, date("2026-08-13")).Equal(decimal.NewFromInt(150)))
	})

	t.Run("returned car accrues nothing", func(t *testing.T) {
		returned := Booking{EndDate: date("2026-08-10"), CarReturned: true}
		assert.True(t, returned.OverdueFee(fee, date("2026-08-13")).IsZero())
	})
}

func TestBooking_TotalBalance(t *testing.T) {
	fee := decimal.NewFromInt(50)
	booking := Booking{
		EndDate:         date("2026-08-10"),
		TotalAmount:     decimal.NewFromInt(500),
		AccidentCharges: decimal.NewFromInt(200),
		PaidAmount:      decimal.NewFromInt(300),
	}

	// 500 total + 2 days overdue x 50 + 200 accident - 300 paid
	balance := booking.TotalBalance(fee, date("2026-08-12"))
	assert.True(t, balance.Equal(decimal.NewFromInt(500)))
}

func TestBooking_RemainingBalance(t *testing.T) {
	booking := Booking{
		TotalAmount: decimal.NewFromInt(400),
		PaidAmount:  decimal.NewFromInt(150),
	}
	assert.True(t, booking.RemainingBalance().Equal(decimal.NewFromInt(250)))
}

func TestDerivePaymentStatus(t *testing.T) {
	due := decimal.NewFromInt(100)

	assert.Equal(t, PaymentUnpaid, DerivePaymentStatus(decimal.Zero, due))
	assert.Equal(t, PaymentPartial, DerivePaymentStatus(decimal.NewFromInt(40), due))
	assert.Equal(t, PaymentPaid, DerivePaymentStatus(decimal.NewFromInt(100), due))
	assert.Equal(t, PaymentPaid, DerivePaymentStatus(decimal.NewFromInt(120), due))
}

func TestValidateBookingDates(t *testing.T) {
	today := date("2026-08-23")

	assert.NoError(t, ValidateBookingDates(date("2026-08-23"), date("2026-08-25"), today))
	assert.ErrorIs(t, ValidateBookingDates(date("2026-08-26"), date("2026-08-25"), today),
		ErrInvalidBookingDates)
	assert.ErrorIs(t, ValidateBookingDates(date("2026-08-20"), date("2026-08-25"), today),
		ErrStartDateInPast)
}

func TestNewBookingReference(t *testing.T) {
	reference := NewBookingReference(date("2026-08-23"))

	assert.True(t, strings.HasPrefix(reference, "BK-20260823-"))
	assert.Len(t, reference, len("BK-20260823-")+8)
}

func TestBooking_DurationDays(t *testing.T) {
	assert.Equal(t, 1, Booking{StartDate: date("2026-08-01"), EndDate: date("2026-08-01")}.DurationDays())
	assert.Equal(t, 3, Booking{StartDate: date("2026-08-01"), EndDate: date("2026-08-04")}.DurationDays())
}
