package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories/dbmodels"
)

func (repo *RentalDbRepository) GetCarById(ctx context.Context, exec Executor, carId string) (models.Car, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectCarColumn...).
			From(dbmodels.TABLE_CARS).
			Where(squirrel.Eq{"deleted_at": nil}).
			Where(squirrel.Eq{"id": carId}),
		dbmodels.AdaptCar,
	)
}

func (repo *RentalDbRepository) ListCars(ctx context.Context, exec Executor, filters models.CarFilters) ([]models.Car, error) {
	query := NewQueryBuilder().Select(dbmodels.SelectCarColumn...).
		From(dbmodels.TABLE_CARS).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("created_at DESC")

	if filters.Type != nil {
		query = query.Where(squirrel.Eq{"type": *filters.Type})
	}
	if filters.Status != nil {
		query = query.Where(squirrel.Eq{"status": *filters.Status})
	}
	if filters.Availability != nil {
		query = query.Where(squirrel.Eq{"availability": *filters.Availability})
	}
	if filters.Gearbox != nil {
		query = query.Where(squirrel.Eq{"gearbox": *filters.Gearbox})
	}
	if filters.Color != nil {
		query = query.Where(squirrel.Eq{"color": *filters.Color})
	}
	if filters.Seats != nil {
		query = query.Where(squirrel.Eq{"seats": *filters.Seats})
	}
	if filters.MinSeats != nil {
		query = query.Where(squirrel.GtOrEq{"seats": *filters.MinSeats})
	}
	if filters.MinFee != nil {
		query = query.Where(squirrel.GtOrEq{"fee_per_day": *filters.MinFee})
	}
	if filters.MaxFee != nil {
		query = query.Where(squirrel.LtOrEq{"fee_per_day": *filters.MaxFee})
	}
	if filters.CollisionDamageWaiver != nil {
		query = query.Where(squirrel.Eq{"collision_damage_waiver": *filters.CollisionDamageWaiver})
	}
	if filters.ThirdPartyLiability != nil {
		query = query.Where(squirrel.Eq{"third_party_liability": *filters.ThirdPartyLiability})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCar)
}

func (repo *RentalDbRepository) CreateCar(ctx context.Context, exec Executor,
	newCarId string, input models.CreateCarInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CARS).
			Columns(
				"id",
				"name",
				"image_url",
				"fee_per_day",
				"tracker_expiry_date",
				"color",
				"seats",
				"mileage",
				"type",
				"gearbox",
				"max_speed",
				"collision_damage_waiver",
				"third_party_liability",
				"optional_insurance_add_ons",
				"insurance_expiry_date",
				"created_by",
			).
			Values(
				newCarId,
				input.Name,
				input.ImageUrl,
				input.FeePerDay,
				input.TrackerExpiryDate,
				input.Color,
				input.Seats,
				input.Mileage,
				input.Type,
				input.Gearbox,
				input.MaxSpeed,
				input.CollisionDamageWaiver,
				input.ThirdPartyLiability,
				input.OptionalInsuranceAddOns,
				input.InsuranceExpiryDate,
				input.CreatedBy,
			),
	)
}

func (repo *RentalDbRepository) UpdateCar(ctx context.Context, exec Executor, input models.UpdateCarInput) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_CARS).Where(squirrel.Eq{
		"id": input.Id,
	}).Set("updated_at", squirrel.Expr("NOW()"))

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.ImageUrl != nil {
		query = query.Set("image_url", *input.ImageUrl)
	}
	if input.FeePerDay != nil {
		query = query.Set("fee_per_day", *input.FeePerDay)
	}
	if input.TrackerExpiryDate != nil {
		query = query.Set("tracker_expiry_date", *input.TrackerExpiryDate)
	}
	if input.Color != nil {
		query = query.Set("color", *input.Color)
	}
	if input.Seats != nil {
		query = query.Set("seats", *input.Seats)
	}
	if input.Mileage != nil {
		query = query.Set("mileage", *input.Mileage)
	}
	if input.Type != nil {
		query = query.Set("type", *input.Type)
	}
	if input.Gearbox != nil {
		query = query.Set("gearbox", *input.Gearbox)
	}
	if input.MaxSpeed != nil {
		query = query.Set("max_speed", *input.MaxSpeed)
	}
	if input.CollisionDamageWaiver != nil {
		query = query.Set("collision_damage_waiver", *input.CollisionDamageWaiver)
	}
	if input.ThirdPartyLiability != nil {
		query = query.Set("third_party_liability", *input.ThirdPartyLiability)
	}
	if input.OptionalInsuranceAddOns != nil {
		query = query.Set("optional_insurance_add_ons", *input.OptionalInsuranceAddOns)
	}
	if input.InsuranceExpiryDate != nil {
		query = query.Set("insurance_expiry_date", *input.InsuranceExpiryDate)
	}
	if input.Status != nil {
		query = query.Set("status", *input.Status)
	}
	if input.Availability != nil {
		query = query.Set("availability", *input.Availability)
	}
	return ExecBuilder(ctx, exec, query)
}

// UpdateCarState flips the operational pair (status, availability) that the
// booking lifecycle drives.
func (repo *RentalDbRepository) UpdateCarState(ctx context.Context, exec Executor,
	carId string, status models.CarStatus, availability models.CarAvailability,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CARS).
			Where(squirrel.Eq{"id": carId}).
			Set("status", status).
			Set("availability", availability).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

func (repo *RentalDbRepository) SoftDeleteCar(ctx context.Context, exec Executor, carId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CARS).
			Where(squirrel.Eq{"id": carId}).
			Where(squirrel.Eq{"deleted_at": nil}).
			Set("deleted_at", squirrel.Expr("NOW()")).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

// ListCarsWithInsuranceExpiringBy returns cars whose insurance runs out on or
// before the deadline, for the expiry alert job.
func (repo *RentalDbRepository) ListCarsWithInsuranceExpiringBy(ctx context.Context, exec Executor,
	deadline time.Time,
) ([]models.Car, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectCarColumn...).
			From(dbmodels.TABLE_CARS).
			Where(squirrel.Eq{"deleted_at": nil}).
			Where(squirrel.LtOrEq{"insurance_expiry_date": deadline}),
		dbmodels.AdaptCar,
	)
}

func (repo *RentalDbRepository) ListCarsWithTrackerExpiringBy(ctx context.Context, exec Executor,
	deadline time.Time,
) ([]models.Car, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectCarColumn...).
			From(dbmodels.TABLE_CARS).
			Where(squirrel.Eq{"deleted_at": nil}).
			Where(squirrel.LtOrEq{"tracker_expiry_date": deadline}),
		dbmodels.AdaptCar,
	)
}
