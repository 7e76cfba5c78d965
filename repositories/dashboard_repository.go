package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories/dbmodels"
)

func (repo *RentalDbRepository) CountCarsCreatedBefore(ctx context.Context, exec Executor, before time.Time) (int, error) {
	return SqlToCount(ctx, exec,
		NewQueryBuilder().Select("COUNT(*)").
			From(dbmodels.TABLE_CARS).
			Where(squirrel.Eq{"deleted_at": nil}).
			Where(squirrel.Lt{"created_at": before}),
	)
}

func (repo *RentalDbRepository) CountCustomersCreatedBefore(ctx context.Context, exec Executor, before time.Time) (int, error) {
	return SqlToCount(ctx, exec,
		NewQueryBuilder().Select("COUNT(*)").
			From(dbmodels.TABLE_CUSTOMERS).
			Where(squirrel.Lt{"created_at": before}),
	)
}

func (repo *RentalDbRepository) CountBookingsStartingOn(ctx context.Context, exec Executor, day time.Time) (int, error) {
	return SqlToCount(ctx, exec,
		NewQueryBuilder().Select("COUNT(*)").
			From(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"start_date": day}).
			Where(squirrel.NotEq{"status": models.BookingCancelled}),
	)
}

func (repo *RentalDbRepository) CountBookingsEndingOn(ctx context.Context, exec Executor, day time.Time) (int, error) {
	return SqlToCount(ctx, exec,
		NewQueryBuilder().Select("COUNT(*)").
			From(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.Eq{"end_date": day}).
			Where(squirrel.NotEq{"status": models.BookingCancelled}),
	)
}

// CountOngoingBookingsOn counts bookings covering the given day, whatever
// their lifecycle state short of cancellation.
func (repo *RentalDbRepository) CountOngoingBookingsOn(ctx context.Context, exec Executor, day time.Time) (int, error) {
	return SqlToCount(ctx, exec,
		NewQueryBuilder().Select("COUNT(*)").
			From(dbmodels.TABLE_BOOKINGS).
			Where(squirrel.LtOrEq{"start_date": day}).
			Where(squirrel.GtOrEq{"end_date": day}).
			Where(squirrel.NotEq{"status": models.BookingCancelled}),
	)
}

// BookingsPerDay feeds the dashboard calendar: bookings grouped by start date
// over [from, to].
func (repo *RentalDbRepository) BookingsPerDay(ctx context.Context, exec Executor,
	from, to time.Time,
) ([]models.CalendarDay, error) {
	query := NewQueryBuilder().
		Select("start_date", "COUNT(*)").
		From(dbmodels.TABLE_BOOKINGS).
		Where(squirrel.GtOrEq{"start_date": from}).
		Where(squirrel.LtOrEq{"start_date": to}).
		Where(squirrel.NotEq{"status": models.BookingCancelled}).
		GroupBy("start_date").
		OrderBy("start_date ASC")

	return SqlToListOfRow(ctx, exec, query, func(row pgx.CollectableRow) (models.CalendarDay, error) {
		var day models.CalendarDay
		err := row.Scan(&day.Date, &day.Bookings)
		return day, err
	})
}

// BookingSummaryPerDay counts bookings created per day, split into booked and
// cancelled, over [from, to].
func (repo *RentalDbRepository) BookingSummaryPerDay(ctx context.Context, exec Executor,
	from, to time.Time,
) ([]models.BookingSummaryDay, error) {
	query := NewQueryBuilder().
		Select(
			"created_at::date AS day",
			"COUNT(*) FILTER (WHERE status <> 'Cancelled')",
			"COUNT(*) FILTER (WHERE status = 'Cancelled')",
		).
		From(dbmodels.TABLE_BOOKINGS).
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		GroupBy("day").
		OrderBy("day ASC")

	return SqlToListOfRow(ctx, exec, query, func(row pgx.CollectableRow) (models.BookingSummaryDay, error) {
		var day models.BookingSummaryDay
		err := row.Scan(&day.Date, &day.Booked, &day.Cancelled)
		return day, err
	})
}
