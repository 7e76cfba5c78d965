package security

import (
	"errors"

	"github.com/driveline/rental-backend/models"
)

type EnforceSecurityNotification interface {
	EnforceSecurity
	ManageOwnNotifications(userId string) error
}

type EnforceSecurityNotificationImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

// ManageOwnNotifications restricts token and preference writes to the caller's
// own user.
func (e *EnforceSecurityNotificationImpl) ManageOwnNotifications(userId string) error {
	if e.Credentials.ActorIdentity.UserId != userId {
		return errors.Join(models.ForbiddenError)
	}
	return errors.Join(
		e.Permission(models.NOTIFICATIONS_MANAGE),
	)
}
