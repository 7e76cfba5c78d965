package security

import (
	"errors"

	"github.com/driveline/rental-backend/models"
)

type EnforceSecurityMenu interface {
	EnforceSecurity
	ReadMenu() error
	EditMenu() error
}

type EnforceSecurityMenuImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityMenuImpl) ReadMenu() error {
	return errors.Join(
		e.Permission(models.MENU_READ),
	)
}

func (e *EnforceSecurityMenuImpl) EditMenu() error {
	return errors.Join(
		e.Permission(models.MENU_EDIT),
	)
}
