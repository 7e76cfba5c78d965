package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CarStatus string

const (
	CarStatusActive   CarStatus = "Active"
	CarStatusBooked   CarStatus = "Booked"
	CarStatusReturned CarStatus = "Returned"
	CarStatusOverdue  CarStatus = "Overdue"
)

type CarAvailability string

const (
	CarAvailable CarAvailability = "Available"
	CarBooked    CarAvailability = "Booked"
	CarReserved  CarAvailability = "Reserved"
)

type CarType string

const (
	CarTypeSUV         CarType = "SUV"
	CarTypeSedan       CarType = "Sedan"
	CarTypeHatchback   CarType = "Hatchback"
	CarTypeVan         CarType = "Van"
	CarTypeConvertible CarType = "Convertible"
	CarTypeSport       CarType = "Sport Car"
)

type Gearbox string

const (
	GearboxAutomatic Gearbox = "Automatic"
	GearboxManual    Gearbox = "Manual"
)

// Car is a vehicle of the rental fleet. FeePerDay drives booking quotes and
// overdue fees. Insurance and tracker expiry dates feed the expiry alert job.
type Car struct {
	Id                      string
	Name                    string
	ImageUrl                *string
	FeePerDay               decimal.Decimal
	TrackerExpiryDate       time.Time
	Color                   string
	Seats                   int
	Mileage                 string
	Type                    CarType
	Gearbox                 Gearbox
	MaxSpeed                string
	CollisionDamageWaiver   bool
	ThirdPartyLiability     bool
	OptionalInsuranceAddOns bool
	InsuranceExpiryDate     time.Time
	Status                  CarStatus
	Availability            CarAvailability
	CreatedBy               *string
	CreatedAt               time.Time
	UpdatedAt               time.Time
	DeletedAt               *time.Time
}

type CreateCarInput struct {
	Name                    string
	ImageUrl                *string
	FeePerDay               decimal.Decimal
	TrackerExpiryDate       time.Time
	Color                   string
	Seats                   int
	Mileage                 string
	Type                    CarType
	Gearbox                 Gearbox
	MaxSpeed                string
	CollisionDamageWaiver   bool
	ThirdPartyLiability     bool
	OptionalInsuranceAddOns bool
	InsuranceExpiryDate     time.Time
	CreatedBy               *string
}

type UpdateCarInput struct {
	Id                      string
	Name                    *string
	ImageUrl                *string
	FeePerDay               *decimal.Decimal
	TrackerExpiryDate       *time.Time
	Color                   *string
	Seats                   *int
	Mileage                 *string
	Type                    *CarType
	Gearbox                 *Gearbox
	MaxSpeed                *string
	CollisionDamageWaiver   *bool
	ThirdPartyLiability     *bool
	OptionalInsuranceAddOns *bool
	InsuranceExpiryDate     *time.Time
	Status                  *CarStatus
	Availability            *CarAvailability
}

// CarFilters mirrors the list query parameters.
type CarFilters struct {
	Type                  *CarType
	Status                *CarStatus
	Availability          *CarAvailability
	Gearbox               *Gearbox
	Color                 *string
	Seats                 *int
	MinSeats              *int
	MinFee                *decimal.Decimal
	MaxFee                *decimal.Decimal
	CollisionDamageWaiver *bool
	ThirdPartyLiability   *bool
}
