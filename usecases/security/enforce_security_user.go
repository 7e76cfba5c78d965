package security

import (
	"errors"

	"github.com/driveline/rental-backend/models"
)

type EnforceSecurityUser interface {
	EnforceSecurity
	ManageUsers() error
	ReadUser(userId string) error
}

type EnforceSecurityUserImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityUserImpl) ManageUsers() error {
	return errors.Join(
		e.Permission(models.USERS_MANAGE),
	)
}

// ReadUser lets anyone read their own record, admins read anyone's.
func (e *EnforceSecurityUserImpl) ReadUser(userId string) error {
	if e.Credentials.ActorIdentity.UserId == userId {
		return nil
	}
	return errors.Join(
		e.Permission(models.USERS_MANAGE),
	)
}
