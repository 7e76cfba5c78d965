package dto

import (
	"time"

	"github.com/guregu/null/v5"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
)

type APICustomer struct {
	Id                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	PhoneNumber       string          `json:"phone_number"`
	Gender            string          `json:"gender"`
	DateOfBirth       string          `json:"date_of_birth"`
	Address           string          `json:"address"`
	ProfileImageUrl   *string         `json:"profile_image_url"`
	IdentificationUrl *string         `json:"identification_url"`
	Status            string          `json:"status"`
	TotalBookings     int             `json:"total_bookings"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	LastBookingDate   *string         `json:"last_booking_date"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func AdaptCustomerDto(customer models.Customer) APICustomer {
	return APICustomer{
		Id:                customer.Id,
		Name:              customer.Name,
		Email:             customer.Email,
		PhoneNumber:       customer.PhoneNumber,
		Gender:            string(customer.Gender),
		DateOfBirth:       FormatDate(customer.DateOfBirth),
		Address:           customer.Address,
		ProfileImageUrl:   customer.ProfileImageUrl,
		IdentificationUrl: customer.IdentificationUrl,
		Status:            string(customer.Status),
		TotalBookings:     customer.TotalBookings,
		TotalSpent:        customer.TotalSpent,
		LastBookingDate:   FormatOptionalDate(customer.LastBookingDate),
		CreatedAt:         customer.CreatedAt,
		UpdatedAt:         customer.UpdatedAt,
	}
}

type CreateCustomerBody struct {
	Name              string      `json:"name" binding:"required"`
	Email             string      `json:"email" binding:"required,email"`
	PhoneNumber       string      `json:"phone_number" binding:"required"`
	Gender            string      `json:"gender" binding:"required,oneof=Male Female Other"`
	DateOfBirth       string      `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Address           string      `json:"address" binding:"required"`
	ProfileImageUrl   null.String `json:"profile_image_url"`
	IdentificationUrl null.String `json:"identification_url"`
}

func AdaptCreateCustomerInput(body CreateCustomerBody, createdBy string) (models.CreateCustomerInput, error) {
	dateOfBirth, err := ParseDate(body.DateOfBirth)
	if err != nil {
		return models.CreateCustomerInput{}, err
	}
	return models.CreateCustomerInput{
		Name:              body.Name,
		Email:             body.Email,
		PhoneNumber:       body.PhoneNumber,
		Gender:            models.Gender(body.Gender),
		DateOfBirth:       dateOfBirth,
		Address:           body.Address,
		ProfileImageUrl:   body.ProfileImageUrl.Ptr(),
		IdentificationUrl: body.IdentificationUrl.Ptr(),
		CreatedBy:         &createdBy,
	}, nil
}

type UpdateCustomerBody struct {
	Name              null.String `json:"name"`
	Email             null.String `json:"email" binding:"omitempty,email"`
	PhoneNumber       null.String `json:"phone_number"`
	Gender            null.String `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth       null.String `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Address           null.String `json:"address"`
	ProfileImageUrl   null.String `json:"profile_image_url"`
	IdentificationUrl null.String `json:"identification_url"`
	Status            null.String `json:"status" binding:"omitempty,oneof=Active Blocked Inactive"`
}

func AdaptUpdateCustomerInput(customerId string, body UpdateCustomerBody) (models.UpdateCustomerInput, error) {
	input := models.UpdateCustomerInput{
		Id:                customerId,
		Name:              body.Name.Ptr(),
		Email:             body.Email.Ptr(),
		PhoneNumber:       body.PhoneNumber.Ptr(),
		Address:           body.Address.Ptr(),
		ProfileImageUrl:   body.ProfileImageUrl.Ptr(),
		IdentificationUrl: body.IdentificationUrl.Ptr(),
	}

	dateOfBirth, err := ParseOptionalDate(body.DateOfBirth.Ptr())
	if err != nil {
		return models.UpdateCustomerInput{}, err
	}
	input.DateOfBirth = dateOfBirth

	if body.Gender.Valid {
		gender := models.Gender(body.Gender.String)
		input.Gender = &gender
	}
	if body.Status.Valid {
		status := models.CustomerStatus(body.Status.String)
		input.Status = &status
	}
	return input, nil
}
