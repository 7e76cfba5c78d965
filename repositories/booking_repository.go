package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories/dbmodels"
)

func (repo *RentalDbRepository) GetBookingById(ctx context.Context, exec Executor, bookingId string) (models.Booking, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectBookingColumn...).
			From(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"id": bookingId}),
		dbmodels.AdaptBooking,
	)
}

func (repo *RentalDbRepository) ListBookings(ctx context.Context, exec Executor,
	filters models.BookingFilters,
) ([]models.Booking, error) {
	query := NewQueryBuilder().Select(dbmodels.SelectBookingColumn...).
		From(dbmodels.TABLE_BOOKINGS).
		OrderBy("created_at DESC")

	if filters.Status != nil {
		query = query.Where(squirrel.Eq{"status": *filters.Status})
	}
	if filters.PaymentStatus != nil {
		query = query.Where(squirrel.Eq{"payment_status": *filters.PaymentStatus})
	}
	if filters.CarReturned != nil {
		query = query.Where(squirrel.Eq{"car_returned": *filters.CarReturned})
	}
	if filters.CustomerId != nil {
		query = query.Where(squirrel.Eq{"customer_id": *filters.CustomerId})
	}
	if filters.CarId != nil {
		query = query.Where(squirrel.Eq{"car_id": *filters.CarId})
	}
	if filters.StartDate != nil {
		query = query.Where(squirrel.GtOrEq{"start_date": *filters.StartDate})
	}
	if filters.EndDate != nil {
		query = query.Where(squirrel.LtOrEq{"end_date": *filters.EndDate})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptBooking)
}

// CountOverlappingBookings counts bookings holding the car over any part of
// [startDate, endDate). Cancelled and returned bookings do not block.
func (repo *RentalDbRepository) CountOverlappingBookings(ctx context.Context, exec Executor,
	carId string, startDate, endDate time.Time, excludeBookingId *string,
) (int, error) {
	query := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_BOOKINGS).
		Where(squirrel.Eq{"car_id": carId}).
		Where(squirrel.NotEq{"status": []models.BookingStatus{
			models.BookingCancelled, models.BookingReturned,
		}}).
		Where(squirrel.Lt{"start_date": endDate}).
		Where(squirrel.Gt{"end_date": startDate})

	if excludeBookingId != nil {
		query = query.Where(squirrel.NotEq{"id": *excludeBookingId})
	}
	return SqlToCount(ctx, exec, query)
}

func (repo *RentalDbRepository) CreateBooking(ctx context.Context, exec Executor, booking models.Booking) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_BOOKINGS).
			Columns(
				"id",
				"reference",
				"customer_id",
				"car_id",
				"start_date",
				"end_date",
				"pickup_time",
				"dropoff_time",
				"status",
				"payment_status",
				"subtotal",
				"tax",
				"discount",
				"total_amount",
				"remarks",
				"created_by",
			).
			Values(
				booking.Id,
				booking.Reference,
				booking.CustomerId,
				booking.CarId,
				booking.StartDate,
				booking.EndDate,
				booking.PickupTime,
				booking.DropoffTime,
				booking.Status,
				booking.PaymentStatus,
				booking.Subtotal,
				booking.Tax,
				booking.Discount,
				booking.TotalAmount,
				booking.Remarks,
				booking.CreatedBy,
			),
	)
}

func (repo *RentalDbRepository) UpdateBooking(ctx context.Context, exec Executor, input models.UpdateBookingInput) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_BOOKINGS).Where(squirrel.Eq{
		"id": input.Id,
	}).Set("updated_at", squirrel.Expr("NOW()"))

	if input.CarId != nil {
		query = query.Set("car_id", *input.CarId)
	}
	if input.StartDate != nil {
		query = query.Set("start_date", *input.StartDate)
	}
	if input.EndDate != nil {
		query = query.Set("end_date", *input.EndDate)
	}
	if input.PickupTime != nil {
		query = query.Set("pickup_time", *input.PickupTime)
	}
	if input.DropoffTime != nil {
		query = query.Set("dropoff_time", *input.DropoffTime)
	}
	if input.Status != nil {
		query = query.Set("status", *input.Status)
	}
	if input.Tax != nil {
		query = query.Set("tax", *input.Tax)
	}
	if input.Discount != nil {
		query = query.Set("discount", *input.Discount)
	}
	if input.Remarks != nil {
		query = query.Set("remarks", *input.Remarks)
	}
	return ExecBuilder(ctx, exec, query)
}

// UpdateBookingPricing rewrites the quote columns after a date or rate change.
func (repo *RentalDbRepository) UpdateBookingPricing(ctx context.Context, exec Executor,
	bookingId string, subtotal, totalAmount decimal.Decimal,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"id": bookingId}).
			Set("subtotal", subtotal).
			Set("total_amount", totalAmount).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

// UpdateBookingPaymentRollup persists the derived payment state after a
// payment was recorded.
func (repo *RentalDbRepository) UpdateBookingPaymentRollup(ctx context.Context, exec Executor,
	bookingId string, paidAmount decimal.Decimal, paymentStatus models.PaymentStatus,
	paymentDate time.Time, paymentMethod models.PaymentMethod,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"id": bookingId}).
			Set("paid_amount", paidAmount).
			Set("payment_status", paymentStatus).
			Set("payment_date", paymentDate).
			Set("payment_method", paymentMethod).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

// UpdateBookingPaymentStatus re-derives the status alone, after the amount
// due moved while payments stayed put.
func (repo *RentalDbRepository) UpdateBookingPaymentStatus(ctx context.Context, exec Executor,
	bookingId string, paymentStatus models.PaymentStatus,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"id": bookingId}).
			Set("payment_status", paymentStatus).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

func (repo *RentalDbRepository) ApplyBookingExtension(ctx context.Context, exec Executor,
	bookingId string, newEndDate time.Time, extensionCharges, totalAmount decimal.Decimal,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"id": bookingId}).
			Set("end_date", newEndDate).
			Set("extension_charges", extensionCharges).
			Set("total_amount", totalAmount).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

func (repo *RentalDbRepository) ApplyCarSwap(ctx context.Context, exec Executor,
	bookingId, newCarId, originalCarId string, swapDate time.Time, reason string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"id": bookingId}).
			Set("car_id", newCarId).
			Set("original_car_id", originalCarId).
			Set("has_been_swapped", true).
			Set("swap_date", swapDate).
			Set("swap_reason", reason).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

func (repo *RentalDbRepository) MarkBookingReturned(ctx context.Context, exec Executor,
	bookingId string, returnedAt time.Time,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"id": bookingId}).
			Set("status", models.BookingReturned).
			Set("car_returned", true).
			Set("actual_return_date", returnedAt).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

func (repo *RentalDbRepository) RecordBookingAccident(ctx context.Context, exec Executor,
	bookingId string, description string, date time.Time, charges decimal.Decimal,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"id": bookingId}).
			Set("has_accident", true).
			Set("accident_description", description).
			Set("accident_date", date).
			Set("accident_charges", charges).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

func (repo *RentalDbRepository) MarkBookingOverdue(ctx context.Context, exec Executor, bookingId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"id": bookingId}).
			Set("status", models.BookingOverdue).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

// ListOverdueCandidates returns active bookings whose end date has passed
// without the car coming back.
func (repo *RentalDbRepository) ListOverdueCandidates(ctx context.Context, exec Executor,
	today time.Time,
) ([]models.Booking, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectBookingColumn...).
			From(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"status": models.BookingActive}).
			Where(squirrel.Eq{"car_returned": false}).
			Where(squirrel.Lt{"end_date": today}),
		dbmodels.AdaptBooking,
	)
}

func (repo *RentalDbRepository) ListBookingsStartingOn(ctx context.Context, exec Executor,
	day time.Time,
) ([]models.Booking, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectBookingColumn...).
			From(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"start_date": day}).
			Where(squirrel.Eq{"status": models.BookingActive}).
			OrderBy("pickup_time ASC NULLS LAST"),
		dbmodels.AdaptBooking,
	)
}

func (repo *RentalDbRepository) ListBookingsEndingOn(ctx context.Context, exec Executor,
	day time.Time,
) ([]models.Booking, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectBookingColumn...).
			From(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"end_date": day}).
			Where(squirrel.Eq{"status": models.BookingActive}).
			Where(squirrel.Eq{"car_returned": false}).
			OrderBy("dropoff_time ASC NULLS LAST"),
		dbmodels.AdaptBooking,
	)
}

func (repo *RentalDbRepository) CreateBookingExtension(ctx context.Context, exec Executor,
	newExtensionId string, extension models.BookingExtension,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_BOOKING_EXTENSIONS).
			Columns(
				"id",
				"booking_id",
				"previous_end_date",
				"new_end_date",
				"extension_fee",
				"reason",
				"remarks",
				"created_by",
			).
			Values(
				newExtensionId,
				extension.BookingId,
				extension.PreviousEndDate,
				extension.NewEndDate,
				extension.ExtensionFee,
				extension.Reason,
				extension.Remarks,
				extension.CreatedBy,
			),
	)
}

func (repo *RentalDbRepository) ListBookingExtensions(ctx context.Context, exec Executor,
	bookingId string,
) ([]models.BookingExtension, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectBookingExtensionColumn...).
			From(dbmodels.TABLE_BOOKING_EXTENSIONS).
			Where(squirrel.Eq{"booking_id": bookingId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptBookingExtension,
	)
}

// GetCustomerBookingStats recomputes the customer rollup from the bookings
// table: cancelled bookings do not count.
func (repo *RentalDbRepository) GetCustomerBookingStats(ctx context.Context, exec Executor,
	customerId string,
) (models.CustomerBookingStats, error) {
	query := NewQueryBuilder().
		Select(
			"COUNT(*)",
			"COALESCE(SUM(paid_amount), 0)",
			"MAX(start_date)",
		).
		From(dbmodels.TABLE_BOOKINGS).
		Where(squirrel.Eq{"customer_id": customerId}).
		Where(squirrel.NotEq{"status": models.BookingCancelled})

	sql, args, err := query.ToSql()
	if err != nil {
		return models.CustomerBookingStats{}, errors.Wrap(err, "can't build sql query")
	}

	var stats models.CustomerBookingStats
	var lastBookingDate *time.Time
	err = exec.QueryRow(ctx, sql, args...).
		Scan(&stats.TotalBookings, &stats.TotalSpent, &lastBookingDate)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return models.CustomerBookingStats{}, TranslatePostgresError(err)
	}
	stats.LastBookingDate = lastBookingDate
	return stats, nil
}
