package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerBlocked  CustomerStatus = "Blocked"
	CustomerInactive CustomerStatus = "Inactive"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Customer struct {
	Id                string
	Name              string
	Email             string
	PhoneNumber       string
	Gender            Gender
	DateOfBirth       time.Time
	Address           string
	ProfileImageUrl   *string
	IdentificationUrl *string
	Status            CustomerStatus
	UserId            *string
	TotalBookings     int
	TotalSpent        decimal.Decimal
	LastBookingDate   *time.Time
	CreatedBy         *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CreateCustomerInput struct {
	Name              string
	Email             string
	PhoneNumber       string
	Gender            Gender
	DateOfBirth       time.Time
	Address           string
	ProfileImageUrl   *string
	IdentificationUrl *string
	UserId            *string
	CreatedBy         *string
}

type UpdateCustomerInput struct {
	Id                string
	Name              *string
	Email             *string
	PhoneNumber       *string
	Gender            *Gender
	DateOfBirth       *time.Time
	Address           *string
	ProfileImageUrl   *string
	IdentificationUrl *string
	Status            *CustomerStatus
}

// CustomerBookingStats is the rollup recomputed after booking and payment
// mutations: booking count, amount spent on fully paid bookings, latest start
// date.
type CustomerBookingStats struct {
	TotalBookings   int
	TotalSpent      decimal.Decimal
	LastBookingDate *time.Time
}
