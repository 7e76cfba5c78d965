package dto

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
)

type APIPayment struct {
	Id              string          `json:"id"`
	BookingId       string          `json:"booking_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"payment_date"`
	Method          string          `json:"method"`
	IsSuccessful    bool            `json:"is_successful"`
	TransactionId   *string         `json:"transaction_id"`
	Notes           *string         `json:"notes"`
	Remarks         *string         `json:"remarks"`
	MethodDetails   *string         `json:"method_details"`
	ReceiptImageUrl *string         `json:"receipt_image_url"`
	CreatedBy       *string         `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

func AdaptPaymentDto(payment models.Payment) APIPayment {
	return APIPayment{
		Id:              payment.Id,
		BookingId:       payment.BookingId,
		Amount:          payment.Amount,
		PaymentDate:     payment.PaymentDate,
		Method:          string(payment.Method),
		IsSuccessful:    payment.IsSuccessful,
		TransactionId:   payment.TransactionId,
		Notes:           payment.Notes,
		Remarks:         payment.Remarks,
		MethodDetails:   payment.MethodDetails,
		ReceiptImageUrl: payment.ReceiptImageUrl,
		CreatedBy:       payment.CreatedBy,
		CreatedAt:       payment.CreatedAt,
	}
}

type CreatePaymentBody struct {
	Amount          string      `json:"amount" binding:"required"`
	PaymentDate     *time.Time  `json:"payment_date"`
	Method          string      `json:"method" binding:"required,oneof=Cash Credit Debit Online"`
	IsSuccessful    *bool       `json:"is_successful"`
	TransactionId   null.String `json:"transaction_id"`
	Notes           null.String `json:"notes"`
	Remarks         null.String `json:"remarks"`
	MethodDetails   null.String `json:"method_details"`
	ReceiptImageUrl null.String `json:"receipt_image_url"`
}

// AdaptCreatePaymentInput fills in now for a missing payment date and assumes
// success unless the caller says otherwise.
func AdaptCreatePaymentInput(bookingId string, body CreatePaymentBody,
	now time.Time, createdBy string,
) (models.CreatePaymentInput, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return models.CreatePaymentInput{}, errors.Wrap(models.BadParameterError, "invalid amount")
	}

	paymentDate := now
	if body.PaymentDate != nil {
		paymentDate = *body.PaymentDate
	}
	isSuccessful := true
	if body.IsSuccessful != nil {
		isSuccessful = *body.IsSuccessful
	}

	return models.CreatePaymentInput{
		BookingId:       bookingId,
		Amount:          amount,
		PaymentDate:     paymentDate,
		Method:          models.PaymentMethod(body.Method),
		IsSuccessful:    isSuccessful,
		TransactionId:   body.TransactionId.Ptr(),
		Notes:           body.Notes.Ptr(),
		Remarks:         body.Remarks.Ptr(),
		MethodDetails:   body.MethodDetails.Ptr(),
		ReceiptImageUrl: body.ReceiptImageUrl.Ptr(),
		CreatedBy:       &createdBy,
	}, nil
}

type APIBookingExtension struct {
	Id              string          `json:"id"`
	BookingId       string          `json:"booking_id"`
	PreviousEndDate string          `json:"previous_end_date"`
	NewEndDate      string          `json:"new_end_date"`
	ExtensionFee    decimal.Decimal `json:"extension_fee"`
	Reason          *string         `json:"reason"`
	Remarks         *string         `json:"remarks"`
	CreatedBy       *string         `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

func AdaptBookingExtensionDto(extension models.BookingExtension) APIBookingExtension {
	return APIBookingExtension{
		Id:              extension.Id,
		BookingId:       extension.BookingId,
		PreviousEndDate: FormatDate(extension.PreviousEndDate),
		NewEndDate:      FormatDate(extension.NewEndDate),
		ExtensionFee:    extension.ExtensionFee,
		Reason:          extension.Reason,
		Remarks:         extension.Remarks,
		CreatedBy:       extension.CreatedBy,
		CreatedAt:       extension.CreatedAt,
	}
}
