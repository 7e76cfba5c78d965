package security

import (
	"errors"

	"github.com/driveline/rental-backend/models"
)

type EnforceSecurityCustomer interface {
	EnforceSecurity
	ReadCustomer() error
	CreateCustomer() error
	UpdateCustomer() error
	DeleteCustomer() error
}

type EnforceSecurityCustomerImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityCustomerImpl) ReadCustomer() error {
	return errors.Join(
		e.Permission(models.CUSTOMERS_READ),
	)
}

func (e *EnforceSecurityCustomerImpl) CreateCustomer() error {
	return errors.Join(
		e.Permission(models.CUSTOMERS_EDIT),
	)
}

func (e *EnforceSecurityCustomerImpl) UpdateCustomer() error {
	return errors.Join(
		e.Permission(models.CUSTOMERS_EDIT),
	)
}

// DeleteCustomer stays admin-only: deleting cascades nothing but orphans the
// booking history semantics.
func (e *EnforceSecurityCustomerImpl) DeleteCustomer() error {
	if e.Credentials.Role != models.ADMIN {
		return errors.Join(models.ForbiddenError)
	}
	return nil
}
