package dto

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
)

type APICar struct {
	Id                      string          `json:"id"`
	Name                    string          `json:"name"`
	ImageUrl                *string         `json:"image_url"`
	FeePerDay               decimal.Decimal `json:"fee_per_day"`
	TrackerExpiryDate       string          `json:"tracker_expiry_date"`
	Color                   string          `json:"color"`
	Seats                   int             `json:"seats"`
	Mileage                 string          `json:"mileage"`
	Type                    string          `json:"type"`
	Gearbox                 string          `json:"gearbox"`
	MaxSpeed                string          `json:"max_speed"`
	CollisionDamageWaiver   bool            `json:"collision_damage_waiver"`
	ThirdPartyLiability     bool            `json:"third_party_liability"`
	OptionalInsuranceAddOns bool            `json:"optional_insurance_add_ons"`
	InsuranceExpiryDate     string          `json:"insurance_expiry_date"`
	Status                  string          `json:"status"`
	Availability            string          `json:"availability"`
	CreatedBy               *string         `json:"created_by"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

func AdaptCarDto(car models.Car) APICar {
	return APICar{
		Id:                      car.Id,
		Name:                    car.Name,
		ImageUrl:                car.ImageUrl,
		FeePerDay:               car.FeePerDay,
		TrackerExpiryDate:       FormatDate(car.TrackerExpiryDate),
		Color:                   car.Color,
		Seats:                   car.Seats,
		Mileage:                 car.Mileage,
		Type:                    string(car.Type),
		Gearbox:                 string(car.Gearbox),
		MaxSpeed:                car.MaxSpeed,
		CollisionDamageWaiver:   car.CollisionDamageWaiver,
		ThirdPartyLiability:     car.ThirdPartyLiability,
		OptionalInsuranceAddOns: car.OptionalInsuranceAddOns,
		InsuranceExpiryDate:     FormatDate(car.InsuranceExpiryDate),
		Status:                  string(car.Status),
		Availability:            string(car.Availability),
		CreatedBy:               car.CreatedBy,
		CreatedAt:               car.CreatedAt,
		UpdatedAt:               car.UpdatedAt,
	}
}

type CreateCarBody struct {
	Name                    string      `json:"name" binding:"required"`
	ImageUrl                null.String `json:"image_url"`
	FeePerDay               string      `json:"fee_per_day" binding:"required"`
	TrackerExpiryDate       string      `json:"tracker_expiry_date" binding:"required,datetime=2006-01-02"`
	Color                   string      `json:"color" binding:"required"`
	Seats                   int         `json:"seats" binding:"required,min=1"`
	Mileage                 string      `json:"mileage"`
	Type                    string      `json:"type" binding:"required"`
	Gearbox                 string      `json:"gearbox" binding:"required,oneof=Automatic Manual"`
	MaxSpeed                string      `json:"max_speed"`
	CollisionDamageWaiver   bool        `json:"collision_damage_waiver"`
	ThirdPartyLiability     bool        `json:"third_party_liability"`
	OptionalInsuranceAddOns bool        `json:"optional_insurance_add_ons"`
	InsuranceExpiryDate     string      `json:"insurance_expiry_date" binding:"required,datetime=2006-01-02"`
}

func AdaptCreateCarInput(body CreateCarBody, createdBy string) (models.CreateCarInput, error) {
	fee, err := decimal.NewFromString(body.FeePerDay)
	if err != nil {
		return models.CreateCarInput{}, errors.Wrap(models.BadParameterError, "invalid fee_per_day")
	}
	trackerExpiry, err := ParseDate(body.TrackerExpiryDate)
	if err != nil {
		return models.CreateCarInput{}, err
	}
	insuranceExpiry, err := ParseDate(body.InsuranceExpiryDate)
	if err != nil {
		return models.CreateCarInput{}, err
	}

	return models.CreateCarInput{
		Name:                    body.Name,
		ImageUrl:                body.ImageUrl.Ptr(),
		FeePerDay:               fee,
		TrackerExpiryDate:       trackerExpiry,
		Color:                   body.Color,
		Seats:                   body.Seats,
		Mileage:                 body.Mileage,
		Type:                    models.CarType(body.Type),
		Gearbox:                 models.Gearbox(body.Gearbox),
		MaxSpeed:                body.MaxSpeed,
		CollisionDamageWaiver:   body.CollisionDamageWaiver,
		ThirdPartyLiability:     body.ThirdPartyLiability,
		OptionalInsuranceAddOns: body.OptionalInsuranceAddOns,
		InsuranceExpiryDate:     insuranceExpiry,
		CreatedBy:               &createdBy,
	}, nil
}

type UpdateCarBody struct {
	Name                    null.String `json:"name"`
	ImageUrl                null.String `json:"image_url"`
	FeePerDay               null.String `json:"fee_per_day"`
	TrackerExpiryDate       null.String `json:"tracker_expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Color                   null.String `json:"color"`
	Seats                   null.Int    `json:"seats"`
	Mileage                 null.String `json:"mileage"`
	Type                    null.String `json:"type"`
	Gearbox                 null.String `json:"gearbox" binding:"omitempty,oneof=Automatic Manual"`
	MaxSpeed                null.String `json:"max_speed"`
	CollisionDamageWaiver   null.Bool   `json:"collision_damage_waiver"`
	ThirdPartyLiability     null.Bool   `json:"third_party_liability"`
	OptionalInsuranceAddOns null.Bool   `json:"optional_insurance_add_ons"`
	InsuranceExpiryDate     null.String `json:"insurance_expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Status                  null.String `json:"status"`
	Availability            null.String `json:"availability"`
}

func AdaptUpdateCarInput(carId string, body UpdateCarBody) (models.UpdateCarInput, error) {
	input := models.UpdateCarInput{
		Id:       carId,
		Name:     body.Name.Ptr(),
		ImageUrl: body.ImageUrl.Ptr(),
		Color:    body.Color.Ptr(),
		Mileage:  body.Mileage.Ptr(),
		MaxSpeed: body.MaxSpeed.Ptr(),
	}

	if body.FeePerDay.Valid {
		fee, err := decimal.NewFromString(body.FeePerDay.String)
		if err != nil {
			return models.UpdateCarInput{}, errors.Wrap(models.BadParameterError, "invalid fee_per_day")
		}
		input.FeePerDay = &fee
	}
	trackerExpiry, err := ParseOptionalDate(body.TrackerExpiryDate.Ptr())
	if err != nil {
		return models.UpdateCarInput{}, err
	}
	input.TrackerExpiryDate = trackerExpiry
	insuranceExpiry, err := ParseOptionalDate(body.InsuranceExpiryDate.Ptr())
	if err != nil {
		return models.UpdateCarInput{}, err
	}
	input.InsuranceExpiryDate = insuranceExpiry

	if body.Seats.Valid {
		seats := int(body.Seats.Int64)
		input.Seats = &seats
	}
	if body.Type.Valid {
		carType := models.CarType(body.Type.String)
		input.Type = &carType
	}
	if body.Gearbox.Valid {
		gearbox := models.Gearbox(body.Gearbox.String)
		input.Gearbox = &gearbox
	}
	if body.CollisionDamageWaiver.Valid {
		input.CollisionDamageWaiver = &body.CollisionDamageWaiver.Bool
	}
	if body.ThirdPartyLiability.Valid {
		input.ThirdPartyLiability = &body.ThirdPartyLiability.Bool
	}
	if body.OptionalInsuranceAddOns.Valid {
		input.OptionalInsuranceAddOns = &body.OptionalInsuranceAddOns.Bool
	}
	if body.Status.Valid {
		status := models.CarStatus(body.Status.String)
		input.Status = &status
	}
	if body.Availability.Valid {
		availability := models.CarAvailability(body.Availability.String)
		input.Availability = &availability
	}
	return input, nil
}
