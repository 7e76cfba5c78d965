package dbmodels

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

type DBBookingExtension struct {
	Id              string          `db:"id"`
	BookingId       string          `db:"booking_id"`
	PreviousEndDate time.Time       `db:"previous_end_date"`
	NewEndDate      time.Time       `db:"new_end_date"`
	ExtensionFee    decimal.Decimal `db:"extension_fee"`
	Reason          *string         `db:"reason"`
	Remarks         *string         `db:"remarks"`
	CreatedBy       *string         `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}

const TABLE_BOOKING_EXTENSIONS = "booking_extensions"

var SelectBookingExtensionColumn = utils.ColumnList[DBBookingExtension]()

func AdaptBookingExtension(db DBBookingExtension) (models.BookingExtension, error) {
	return models.BookingExtension{
		Id:              db.Id,
		BookingId:       db.BookingId,
		PreviousEndDate: db.PreviousEndDate,
		NewEndDate:      db.NewEndDate,
		ExtensionFee:    db.ExtensionFee,
		Reason:          db.Reason,
		Remarks:         db.Remarks,
		CreatedBy:       db.CreatedBy,
		CreatedAt:       db.CreatedAt,
	}, nil
}
