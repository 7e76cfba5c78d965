package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

type DBCar struct {
	Id                      string           `db:"id"`
	Name                    string           `db:"name"`
	ImageUrl                *string          `db:"image_url"`
	FeePerDay               decimal.Decimal  `db:"fee_per_day"`
	TrackerExpiryDate       time.Time        `db:"tracker_expiry_date"`
	Color                   string           `db:"color"`
	Seats                   int              `db:"seats"`
	Mileage                 string           `db:"mileage"`
	Type                    string           `db:"type"`
	Gearbox                 string           `db:"gearbox"`
	MaxSpeed                string           `db:"max_speed"`
	CollisionDamageWaiver   bool             `db:"collision_damage_waiver"`
	ThirdPartyLiability     bool             `db:"third_party_liability"`
	OptionalInsuranceAddOns bool             `db:"optional_insurance_add_ons"`
	InsuranceExpiryDate     time.Time        `db:"insurance_expiry_date"`
	Status                  string           `db:"status"`
	Availability            string           `db:"availability"`
	CreatedBy               *string          `db:"created_by"`
	CreatedAt               time.Time        `db:"created_at"`
	UpdatedAt               time.Time        `db:"updated_at"`
	DeletedAt               pgtype.Timestamp `db:"deleted_at"`
}

const TABLE_CARS = "cars"

var SelectCarColumn = utils.ColumnList[DBCar]()

func AdaptCar(db DBCar) (models.Car, error) {
	car := models.Car{
		Id:                      db.Id,
		Name:                    db.Name,
		ImageUrl:                db.ImageUrl,
		FeePerDay:               db.FeePerDay,
		TrackerExpiryDate:       db.TrackerExpiryDate,
		Color:                   db.Color,
		Seats:                   db.Seats,
		Mileage:                 db.Mileage,
		Type:                    models.CarType(db.Type),
		Gearbox:                 models.Gearbox(db.Gearbox),
		MaxSpeed:                db.MaxSpeed,
		CollisionDamageWaiver:   db.CollisionDamageWaiver,
		ThirdPartyLiability:     db.ThirdPartyLiability,
		OptionalInsuranceAddOns: db.OptionalInsuranceAddOns,
		InsuranceExpiryDate:     db.InsuranceExpiryDate,
		Status:                  models.CarStatus(db.Status),
		Availability:            models.CarAvailability(db.Availability),
		CreatedBy:               db.CreatedBy,
		CreatedAt:               db.CreatedAt,
		UpdatedAt:               db.UpdatedAt,
	}
	if db.DeletedAt.Valid {
		car.DeletedAt = &db.DeletedAt.Time
	}
	return car, nil
}
