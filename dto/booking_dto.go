package dto

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
)

type APIBooking struct {
	Id                  string          `json:"id"`
	Reference           string          `json:"reference"`
	CustomerId          string          `json:"customer_id"`
	CarId               *string         `json:"car_id"`
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	PickupTime          *string         `json:"pickup_time"`
	DropoffTime         *string         `json:"dropoff_time"`
	ActualReturnDate    *time.Time      `json:"actual_return_date"`
	Status              string          `json:"status"`
	CarReturned         bool            `json:"car_returned"`
	PaymentStatus       string          `json:"payment_status"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	Tax                 decimal.Decimal `json:"tax"`
	Discount            decimal.Decimal `json:"discount"`
	ExtensionCharges    decimal.Decimal `json:"extension_charges"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	RemainingBalance    decimal.Decimal `json:"remaining_balance"`
	PaymentDate         *time.Time      `json:"payment_date"`
	PaymentMethod       *string         `json:"payment_method"`
	HasAccident         bool            `json:"has_accident"`
	AccidentDescription *string         `json:"accident_description"`
	AccidentDate        *time.Time      `json:"accident_date"`
	AccidentCharges     decimal.Decimal `json:"accident_charges"`
	OriginalCarId       *string         `json:"original_car_id"`
	HasBeenSwapped      bool            `json:"has_been_swapped"`
	SwapDate            *time.Time      `json:"swap_date"`
	SwapReason          *string         `json:"swap_reason"`
	DurationDays        int             `json:"duration_days"`
	Remarks             *string         `json:"remarks"`
	CreatedBy           *string         `json:"created_by"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func AdaptBookingDto(booking models.Booking) APIBooking {
	return APIBooking{
		Id:                  booking.Id,
		Reference:           booking.Reference,
		CustomerId:          booking.CustomerId,
		CarId:               booking.CarId,
		StartDate:           FormatDate(booking.StartDate),
		EndDate:             FormatDate(booking.EndDate),
		PickupTime:          booking.PickupTime,
		DropoffTime:         booking.DropoffTime,
		ActualReturnDate:    booking.ActualReturnDate,
		Status:              string(booking.Status),
		CarReturned:         booking.CarReturned,
		PaymentStatus:       string(booking.PaymentStatus),
		Subtotal:            booking.Subtotal,
		Tax:                 booking.Tax,
		Discount:            booking.Discount,
		ExtensionCharges:    booking.ExtensionCharges,
		TotalAmount:         booking.TotalAmount,
		PaidAmount:          booking.PaidAmount,
		RemainingBalance:    booking.RemainingBalance(),
		PaymentDate:         booking.PaymentDate,
		PaymentMethod:       booking.PaymentMethod,
		HasAccident:         booking.HasAccident,
		AccidentDescription: booking.AccidentDescription,
		AccidentDate:        booking.AccidentDate,
		AccidentCharges:     booking.AccidentCharges,
		OriginalCarId:       booking.OriginalCarId,
		HasBeenSwapped:      booking.HasBeenSwapped,
		SwapDate:            booking.SwapDate,
		SwapReason:          booking.SwapReason,
		DurationDays:        booking.DurationDays(),
		Remarks:             booking.Remarks,
		CreatedBy:           booking.CreatedBy,
		CreatedAt:           booking.CreatedAt,
		UpdatedAt:           booking.UpdatedAt,
	}
}

type APIBookingDetails struct {
	APIBooking
	Payments   []APIPayment          `json:"payments"`
	Extensions []APIBookingExtension `json:"extensions"`
}

func AdaptBookingDetailsDto(details models.BookingDetails) APIBookingDetails {
	return APIBookingDetails{
		APIBooking: AdaptBookingDto(details.Booking),
		Payments:   pure_utils.Map(details.Payments, AdaptPaymentDto),
		Extensions: pure_utils.Map(details.Extensions, AdaptBookingExtensionDto),
	}
}

type CreateBookingBody struct {
	CustomerId  string      `json:"customer_id" binding:"required,uuid"`
	CarId       null.String `json:"car_id" binding:"omitempty,uuid"`
	StartDate   string      `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string      `json:"end_date" binding:"required,datetime=2006-01-02"`
	PickupTime  null.String `json:"pickup_time"`
	DropoffTime null.String `json:"dropoff_time"`
	Tax         null.String `json:"tax"`
	Discount    null.String `json:"discount"`
	Remarks     null.String `json:"remarks"`
}

func AdaptCreateBookingInput(body CreateBookingBody) (models.CreateBookingInput, error) {
	startDate, err := ParseDate(body.StartDate)
	if err != nil {
		return models.CreateBookingInput{}, err
	}
	endDate, err := ParseDate(body.EndDate)
	if err != nil {
		return models.CreateBookingInput{}, err
	}
	tax, err := parseOptionalAmount(body.Tax, "tax")
	if err != nil {
		return models.CreateBookingInput{}, err
	}
	discount, err := parseOptionalAmount(body.Discount, "discount")
	if err != nil {
		return models.CreateBookingInput{}, err
	}

	return models.CreateBookingInput{
		CustomerId:  body.CustomerId,
		CarId:       body.CarId.Ptr(),
		StartDate:   startDate,
		EndDate:     endDate,
		PickupTime:  body.PickupTime.Ptr(),
		DropoffTime: body.DropoffTime.Ptr(),
		Tax:         tax,
		Discount:    discount,
		Remarks:     body.Remarks.Ptr(),
	}, nil
}

type UpdateBookingBody struct {
	CarId       null.String `json:"car_id" binding:"omitempty,uuid"`
	StartDate   null.String `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     null.String `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	PickupTime  null.String `json:"pickup_time"`
	DropoffTime null.String `json:"dropoff_time"`
	Status      null.String `json:"status" binding:"omitempty,oneof=Reserved Active Returned Cancelled Overdue"`
	Tax         null.String `json:"tax"`
	Discount    null.String `json:"discount"`
	Remarks     null.String `json:"remarks"`
}

func AdaptUpdateBookingInput(bookingId string, body UpdateBookingBody) (models.UpdateBookingInput, error) {
	input := models.UpdateBookingInput{
		Id:          bookingId,
		CarId:       body.CarId.Ptr(),
		PickupTime:  body.PickupTime.Ptr(),
		DropoffTime: body.DropoffTime.Ptr(),
		Remarks:     body.Remarks.Ptr(),
	}

	startDate, err := ParseOptionalDate(body.StartDate.Ptr())
	if err != nil {
		return models.UpdateBookingInput{}, err
	}
	input.StartDate = startDate
	endDate, err := ParseOptionalDate(body.EndDate.Ptr())
	if err != nil {
		return models.UpdateBookingInput{}, err
	}
	input.EndDate = endDate

	if body.Status.Valid {
		status := models.BookingStatus(body.Status.String)
		input.Status = &status
	}
	if body.Tax.Valid {
		tax, err := parseOptionalAmount(body.Tax, "tax")
		if err != nil {
			return models.UpdateBookingInput{}, err
		}
		input.Tax = &tax
	}
	if body.Discount.Valid {
		discount, err := parseOptionalAmount(body.Discount, "discount")
		if err != nil {
			return models.UpdateBookingInput{}, err
		}
		input.Discount = &discount
	}
	return input, nil
}

type ExtendBookingBody struct {
	NewEndDate   string      `json:"new_end_date" binding:"required,datetime=2006-01-02"`
	ExtensionFee string      `json:"extension_fee" binding:"required"`
	Reason       null.String `json:"reason"`
	Remarks      null.String `json:"remarks"`
}

func AdaptExtendBookingInput(bookingId string, body ExtendBookingBody) (models.ExtendBookingInput, error) {
	newEndDate, err := ParseDate(body.NewEndDate)
	if err != nil {
		return models.ExtendBookingInput{}, err
	}
	fee, err := decimal.NewFromString(body.ExtensionFee)
	if err != nil {
		return models.ExtendBookingInput{}, errors.Wrap(models.BadParameterError, "invalid extension_fee")
	}
	return models.ExtendBookingInput{
		BookingId:    bookingId,
		NewEndDate:   newEndDate,
		ExtensionFee: fee,
		Reason:       body.Reason.Ptr(),
		Remarks:      body.Remarks.Ptr(),
	}, nil
}

type SwapCarBody struct {
	NewCarId string `json:"new_car_id" binding:"required,uuid"`
	Reason   string `json:"reason" binding:"required"`
}

type ReportAccidentBody struct {
	Description string      `json:"description" binding:"required"`
	Date        string      `json:"date" binding:"required,datetime=2006-01-02"`
	Charges     null.String `json:"charges"`
	NewCarId    null.String `json:"new_car_id" binding:"omitempty,uuid"`
}

func AdaptReportAccidentInput(bookingId string, body ReportAccidentBody) (models.ReportAccidentInput, error) {
	date, err := ParseDate(body.Date)
	if err != nil {
		return models.ReportAccidentInput{}, err
	}
	charges, err := parseOptionalAmount(body.Charges, "charges")
	if err != nil {
		return models.ReportAccidentInput{}, err
	}
	return models.ReportAccidentInput{
		BookingId:   bookingId,
		Description: body.Description,
		Date:        date,
		Charges:     charges,
		NewCarId:    body.NewCarId.Ptr(),
	}, nil
}

func parseOptionalAmount(value null.String, field string) (decimal.Decimal, error) {
	if !value.Valid || value.String == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(value.String)
	if err != nil {
		return decimal.Zero, errors.Wrap(models.BadParameterError, "invalid "+field)
	}
	return amount, nil
}
