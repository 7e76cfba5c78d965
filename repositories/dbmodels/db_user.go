package dbmodels

import (
	"time"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

type DBUser struct {
	Id                   string         `db:"id"`
	Email                string         `db:"email"`
	FullName             string         `db:"full_name"`
	PasswordHash         string         `db:"password_hash"`
	Role                 string         `db:"role"`
	UserImageUrl         *string        `db:"user_image_url"`
	IsFingerprintEnabled bool           `db:"is_fingerprint_enabled"`
	LoginDeviceInfo      map[string]any `db:"login_device_info"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:                   db.Id,
		Email:                db.Email,
		FullName:             db.FullName,
		PasswordHash:         db.PasswordHash,
		Role:                 models.RoleFromString(db.Role),
		UserImageUrl:         db.UserImageUrl,
		IsFingerprintEnabled: db.IsFingerprintEnabled,
		LoginDeviceInfo:      db.LoginDeviceInfo,
		CreatedAt:            db.CreatedAt,
		UpdatedAt:            db.UpdatedAt,
	}, nil
}
