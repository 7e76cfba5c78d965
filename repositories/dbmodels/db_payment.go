package dbmodels

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

type DBPayment struct {
	Id              string          `db:"id"`
	BookingId       string          `db:"booking_id"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentDate     time.Time       `db:"payment_date"`
	Method          string          `db:"method"`
	IsSuccessful    bool            `db:"is_successful"`
	TransactionId   *string         `db:"transaction_id"`
	Notes           *string         `db:"notes"`
	Remarks         *string         `db:"remarks"`
	MethodDetails   *string         `db:"method_details"`
	ReceiptImageUrl *string         `db:"receipt_image_url"`
	CreatedBy       *string         `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}

const TABLE_PAYMENTS = "payments"

var SelectPaymentColumn = utils.ColumnList[DBPayment]()

func AdaptPayment(db DBPayment) (models.Payment, error) {
	return models.Payment{
		Id:              db.Id,
		BookingId:       db.BookingId,
		Amount:          db.Amount,
		PaymentDate:     db.PaymentDate,
		Method:          models.PaymentMethod(db.Method),
		IsSuccessful:    db.IsSuccessful,
		TransactionId:   db.TransactionId,
		Notes:           db.Notes,
		Remarks:         db.Remarks,
		MethodDetails:   db.MethodDetails,
		ReceiptImageUrl: db.ReceiptImageUrl,
		CreatedBy:       db.CreatedBy,
		CreatedAt:       db.CreatedAt,
	}, nil
}
