package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodCredit PaymentMethod = "Credit"
	PaymentMethodDebit  PaymentMethod = "Debit"
	PaymentMethodOnline PaymentMethod = "Online"
)

type Payment struct {
	Id              string
	BookingId       string
	Amount          decimal.Decimal
	PaymentDate     time.Time
	Method          PaymentMethod
	IsSuccessful    bool
	TransactionId   *string
	Notes           *string
	Remarks         *string
	MethodDetails   *string
	ReceiptImageUrl *string
	CreatedBy       *string
	CreatedAt       time.Time
}

type CreatePaymentInput struct {
	BookingId       string
	Amount          decimal.Decimal
	PaymentDate     time.Time
	Method          PaymentMethod
	IsSuccessful    bool
	TransactionId   *string
	Notes           *string
	Remarks         *string
	MethodDetails   *string
	ReceiptImageUrl *string
	CreatedBy       *string
}

type PaymentFilters struct {
	BookingId    *string
	Method       *PaymentMethod
	IsSuccessful *bool
}
