package security

import (
	"errors"

	"github.com/driveline/rental-backend/models"
)

type EnforceSecurityCar interface {
	EnforceSecurity
	ReadCar() error
	CreateCar() error
	UpdateCar() error
	DeleteCar() error
}

type EnforceSecurityCarImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityCarImpl) ReadCar() error {
	return errors.Join(
		e.Permission(models.CARS_READ),
	)
}

func (e *EnforceSecurityCarImpl) CreateCar() error {
	return errors.Join(
		e.Permission(models.CARS_EDIT),
	)
}

func (e *EnforceSecurityCarImpl) UpdateCar() error {
	return errors.Join(
		e.Permission(models.CARS_EDIT),
	)
}

func (e *EnforceSecurityCarImpl) DeleteCar() error {
	return errors.Join(
		e.Permission(models.CARS_EDIT),
	)
}
