package security

import (
	"errors"

	"github.com/driveline/rental-backend/models"
)

type EnforceSecurityDashboard interface {
	EnforceSecurity
	ReadDashboard() error
}

type EnforceSecurityDashboardImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityDashboardImpl) ReadDashboard() error {
	return errors.Join(
		e.Permission(models.DASHBOARD_READ),
	)
}
