package dbmodels

import (
	"time"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

type DBDeviceToken struct {
	Id         string    `db:"id"`
	UserId     string    `db:"user_id"`
	Token      string    `db:"token"`
	DeviceType string    `db:"device_type"`
	Platform   string    `db:"platform"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

const TABLE_DEVICE_TOKENS = "device_tokens"

var SelectDeviceTokenColumn = utils.ColumnList[DBDeviceToken]()

func AdaptDeviceToken(db DBDeviceToken) (models.DeviceToken, error) {
	return models.DeviceToken{
		Id:         db.Id,
		UserId:     db.UserId,
		Token:      db.Token,
		DeviceType: db.DeviceType,
		Platform:   db.Platform,
		CreatedAt:  db.CreatedAt,
		UpdatedAt:  db.UpdatedAt,
	}, nil
}
