package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories/dbmodels"
)

func (repo *RentalDbRepository) GetCustomerById(ctx context.Context, exec Executor, customerId string) (models.Customer, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectCustomerColumn...).
			From(dbmodels.TABLE_CUSTOMERS).
			Where(squirrel.Eq{"id": customerId}),
		dbmodels.AdaptCustomer,
	)
}

// ListCustomers filters on status and an optional free-text search over name,
// email and phone number.
func (repo *RentalDbRepository) ListCustomers(ctx context.Context, exec Executor,
	status *models.CustomerStatus, search *string,
) ([]models.Customer, error) {
	query := NewQueryBuilder().Select(dbmodels.SelectCustomerColumn...).
		From(dbmodels.TABLE_CUSTOMERS).
		OrderBy("created_at DESC")

	if status != nil {
		query = query.Where(squirrel.Eq{"status": *status})
	}
	if search != nil && *search != "" {
		pattern := fmt.Sprintf("%%%s%%", *search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"phone_number": pattern},
		})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCustomer)
}

func (repo *RentalDbRepository) CreateCustomer(ctx context.Context, exec Executor,
	newCustomerId string, input models.CreateCustomerInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CUSTOMERS).
			Columns(
				"id",
				"name",
				"email",
				"phone_number",
				"gender",
				"date_of_birth",
				"address",
				"profile_image_url",
				"identification_url",
				"user_id",
				"created_by",
			).
			Values(
				newCustomerId,
				input.Name,
				input.Email,
				input.PhoneNumber,
				input.Gender,
				input.DateOfBirth,
				input.Address,
				input.ProfileImageUrl,
				input.IdentificationUrl,
				input.UserId,
				input.CreatedBy,
			),
	)
}

func (repo *RentalDbRepository) UpdateCustomer(ctx context.Context, exec Executor, input models.UpdateCustomerInput) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_CUSTOMERS).Where(squirrel.Eq{
		"id": input.Id,
	}).Set("updated_at", squirrel.Expr("NOW()"))

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Email != nil {
		query = query.Set("email", *input.Email)
	}
	if input.PhoneNumber != nil {
		query = query.Set("phone_number", *input.PhoneNumber)
	}
	if input.Gender != nil {
		query = query.Set("gender", *input.Gender)
	}
	if input.DateOfBirth != nil {
		query = query.Set("date_of_birth", *input.DateOfBirth)
	}
	if input.Address != nil {
		query = query.Set("address", *input.Address)
	}
	if input.ProfileImageUrl != nil {
		query = query.Set("profile_image_url", *input.ProfileImageUrl)
	}
	if input.IdentificationUrl != nil {
		query = query.Set("identification_url", *input.IdentificationUrl)
	}
	if input.Status != nil {
		query = query.Set("status", *input.Status)
	}
	return ExecBuilder(ctx, exec, query)
}

func (repo *RentalDbRepository) UpdateCustomerStats(ctx context.Context, exec Executor,
	customerId string, stats models.CustomerBookingStats,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CUSTOMERS).
			Where(squirrel.Eq{"id": customerId}).
			Set("total_bookings", stats.TotalBookings).
			Set("total_spent", stats.TotalSpent).
			Set("last_booking_date", stats.LastBookingDate).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

func (repo *RentalDbRepository) DeleteCustomer(ctx context.Context, exec Executor, customerId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_CUSTOMERS).Where(squirrel.Eq{"id": customerId}),
	)
}
