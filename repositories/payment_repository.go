package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories/dbmodels"
)

func (repo *RentalDbRepository) GetPaymentById(ctx context.Context, exec Executor, paymentId string) (models.Payment, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectPaymentColumn...).
			From(dbmodels.TABLE_PAYMENTS).
			Where(squirrel.Eq{"id": paymentId}),
		dbmodels.AdaptPayment,
	)
}

func (repo *RentalDbRepository) ListPayments(ctx context.Context, exec Executor,
	filters models.PaymentFilters,
) ([]models.Payment, error) {
	query := NewQueryBuilder().Select(dbmodels.SelectPaymentColumn...).
		From(dbmodels.TABLE_PAYMENTS).
		OrderBy("payment_date DESC")

	if filters.BookingId != nil {
		query = query.Where(squirrel.Eq{"booking_id": *filters.BookingId})
	}
	if filters.Method != nil {
		query = query.Where(squirrel.Eq{"method": *filters.Method})
	}
	if filters.IsSuccessful != nil {
		query = query.Where(squirrel.Eq{"is_successful": *filters.IsSuccessful})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptPayment)
}

func (repo *RentalDbRepository) CreatePayment(ctx context.Context, exec Executor,
	newPaymentId string, input models.CreatePaymentInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_PAYMENTS).
			Columns(
				"id",
				"booking_id",
				"amount",
				"payment_date",
				"method",
				"is_successful",
				"transaction_id",
				"notes",
				"remarks",
				"method_details",
				"receipt_image_url",
				"created_by",
			).
			Values(
				newPaymentId,
				input.BookingId,
				input.Amount,
				input.PaymentDate,
				input.Method,
				input.IsSuccessful,
				input.TransactionId,
				input.Notes,
				input.Remarks,
				input.MethodDetails,
				input.ReceiptImageUrl,
				input.CreatedBy,
			),
	)
}

// SumSuccessfulPayments is the rollup source of truth for a booking's paid
// amount.
func (repo *RentalDbRepository) SumSuccessfulPayments(ctx context.Context, exec Executor,
	bookingId string,
) (decimal.Decimal, error) {
	query := NewQueryBuilder().
		Select("COALESCE(SUM(amount), 0)").
		From(dbmodels.TABLE_PAYMENTS).
		Where(squirrel.Eq{"booking_id": bookingId}).
		Where(squirrel.Eq{"is_successful": true})

	sql, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "can't build sql query")
	}

	var total decimal.Decimal
	if err := exec.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.Zero, TranslatePostgresError(err)
	}
	return total, nil
}
