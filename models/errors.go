package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var ErrUnknownUser = errors.Wrap(NotFoundError, "unknown user")

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Booking lifecycle related errors
var (
	ErrInvalidBookingDates = errors.Wrap(BadParameterError,
		"start date must be on or before end date")
	ErrStartDateInPast = errors.Wrap(BadParameterError,
		"start date cannot be in the past")
	ErrCarNotAvailable = errors.Wrap(ConflictError,
		"car is already booked for the selected dates")
	ErrCarAlreadyReturned = errors.Wrap(BadParameterError,
		"car was already marked as returned")
	ErrExtensionNotLater = errors.Wrap(BadParameterError,
		"new end date must be after current end date")
	ErrReplacementCarUnavailable = errors.Wrap(BadParameterError,
		"replacement car not found or not available")
	ErrCustomerBlocked = errors.Wrap(BadParameterError,
		"customer is blocked and cannot make bookings")
)
