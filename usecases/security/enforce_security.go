package security

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/driveline/rental-backend/models"
)

type EnforceSecurity interface {
	Permission(permission models.Permission) error
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func (e *EnforceSecurityImpl) Permission(permission models.Permission) error {
	if !e.Credentials.Role.HasPermission(permission) {
		return errors.Wrap(models.ForbiddenError,
			fmt.Sprintf("missing permission, role %s", e.Credentials.Role))
	}
	return nil
}
