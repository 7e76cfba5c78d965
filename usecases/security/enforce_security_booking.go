package security

import (
	"errors"

	"github.com/driveline/rental-backend/models"
)

type EnforceSecurityBooking interface {
	EnforceSecurity
	ReadBooking() error
	CreateBooking() error
	UpdateBooking() error
	RecordPayment() error
}

type EnforceSecurityBookingImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityBookingImpl) ReadBooking() error {
	return errors.Join(
		e.Permission(models.BOOKINGS_READ),
	)
}

func (e *EnforceSecurityBookingImpl) CreateBooking() error {
	return errors.Join(
		e.Permission(models.BOOKINGS_EDIT),
	)
}

func (e *EnforceSecurityBookingImpl) UpdateBooking() error {
	return errors.Join(
		e.Permission(models.BOOKINGS_EDIT),
	)
}

func (e *EnforceSecurityBookingImpl) RecordPayment() error {
	return errors.Join(
		e.Permission(models.PAYMENTS_RECORD),
	)
}
