package dbmodels

import (
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

type DBNotificationPreference struct {
	UserId          string `db:"user_id"`
	Booking         bool   `db:"booking"`
	Payment         bool   `db:"payment"`
	InsuranceExpiry bool   `db:"insurance_expiry"`
	CarExpiry       bool   `db:"car_expiry"`
	TrackerExpiry   bool   `db:"tracker_expiry"`
}

const TABLE_NOTIFICATION_PREFERENCES = "notification_preferences"

var SelectNotificationPreferenceColumn = utils.ColumnList[DBNotificationPreference]()

func AdaptNotificationPreference(db DBNotificationPreference) (models.NotificationPreference, error) {
	return models.NotificationPreference{
		UserId:          db.UserId,
		Booking:         db.Booking,
		Payment:         db.Payment,
		InsuranceExpiry: db.InsuranceExpiry,
		CarExpiry:       db.CarExpiry,
		TrackerExpiry:   db.TrackerExpiry,
	}, nil
}
