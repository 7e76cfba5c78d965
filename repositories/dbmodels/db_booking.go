package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

type DBBooking struct {
	Id                  string           `db:"id"`
	Reference           string           `db:"reference"`
	CustomerId          string           `db:"customer_id"`
	CarId               *string          `db:"car_id"`
	StartDate           time.Time        `db:"start_date"`
	EndDate             time.Time        `db:"end_date"`
	PickupTime          *string          `db:"pickup_time"`
	DropoffTime         *string          `db:"dropoff_time"`
	ActualReturnDate    pgtype.Timestamp `db:"actual_return_date"`
	Status              string           `db:"status"`
	CarReturned         bool             `db:"car_returned"`
	PaymentStatus       string           `db:"payment_status"`
	Subtotal            decimal.Decimal  `db:"subtotal"`
	Tax                 decimal.Decimal  `db:"tax"`
	Discount            decimal.Decimal  `db:"discount"`
	ExtensionCharges    decimal.Decimal  `db:"extension_charges"`
	TotalAmount         decimal.Decimal  `db:"total_amount"`
	PaidAmount          decimal.Decimal  `db:"paid_amount"`
	PaymentDate         pgtype.Timestamp `db:"payment_date"`
	PaymentMethod       *string          `db:"payment_method"`
	HasAccident         bool             `db:"has_accident"`
	AccidentDescription *string          `db:"accident_description"`
	AccidentDate        pgtype.Timestamp `db:"accident_date"`
	AccidentCharges     decimal.Decimal  `db:"accident_charges"`
	OriginalCarId       *string          `db:"original_car_id"`
	HasBeenSwapped      bool             `db:"has_been_swapped"`
	SwapDate            pgtype.Timestamp `db:"swap_date"`
	SwapReason          *string          `db:"swap_reason"`
	Remarks             *string          `db:"remarks"`
	CreatedBy           *string          `db:"created_by"`
	CreatedAt           time.Time        `db:"created_at"`
	UpdatedAt           time.Time        `db:"updated_at"`
}

const TABLE_BOOKINGS = "bookings"

var SelectBookingColumn = utils.ColumnList[DBBooking]()

func AdaptBooking(db DBBooking) (models.Booking, error) {
	booking := models.Booking{
		Id:                  db.Id,
		Reference:           db.Reference,
		CustomerId:          db.CustomerId,
		CarId:               db.CarId,
		StartDate:           db.StartDate,
		EndDate:             db.EndDate,
		PickupTime:          db.PickupTime,
		DropoffTime:         db.DropoffTime,
		Status:              models.BookingStatus(db.Status),
		CarReturned:         db.CarReturned,
		PaymentStatus:       models.PaymentStatus(db.PaymentStatus),
		Subtotal:            db.Subtotal,
		Tax:                 db.Tax,
		Discount:            db.Discount,
		ExtensionCharges:    db.ExtensionCharges,
		TotalAmount:         db.TotalAmount,
		PaidAmount:          db.PaidAmount,
		PaymentMethod:       db.PaymentMethod,
		HasAccident:         db.HasAccident,
		AccidentDescription: db.AccidentDescription,
		AccidentCharges:     db.AccidentCharges,
		OriginalCarId:       db.OriginalCarId,
		HasBeenSwapped:      db.HasBeenSwapped,
		SwapReason:          db.SwapReason,
		Remarks:             db.Remarks,
		CreatedBy:           db.CreatedBy,
		CreatedAt:           db.CreatedAt,
		UpdatedAt:           db.UpdatedAt,
	}
	if db.ActualReturnDate.Valid {
		booking.ActualReturnDate = &db.ActualReturnDate.Time
	}
	if db.PaymentDate.Valid {
		booking.PaymentDate = &db.PaymentDate.Time
	}
	if db.AccidentDate.Valid {
		booking.AccidentDate = &db.AccidentDate.Time
	}
	if db.SwapDate.Valid {
		booking.SwapDate = &db.SwapDate.Time
	}
	return booking, nil
}
