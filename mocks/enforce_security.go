package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/driveline/rental-backend/models"
)

// EnforceSecurity satisfies all the per-domain security interfaces at once.
type EnforceSecurity struct {
	mock.Mock
}

func (e *EnforceSecurity) Permission(permission models.Permission) error {
	args := e.Called(permission)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadCar() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) CreateCar() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateCar() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) DeleteCar() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadCustomer() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) CreateCustomer() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateCustomer() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) DeleteCustomer() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadBooking() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) CreateBooking() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateBooking() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) RecordPayment() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadDashboard() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadMenu() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) EditMenu() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ManageUsers() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadUser(userId string) error {
	args := e.Called(userId)
	return args.Error(0)
}

func (e *EnforceSecurity) ManageOwnNotifications(userId string) error {
	args := e.Called(userId)
	return args.Error(0)
}
