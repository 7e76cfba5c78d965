package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/driveline/rental-backend/models"
)

type APIUser struct {
	Id                   string    `json:"id"`
	Email                string    `json:"email"`
	FullName             string    `json:"full_name"`
	Role                 string    `json:"role"`
	UserImageUrl         *string   `json:"user_image_url"`
	IsFingerprintEnabled bool      `json:"is_fingerprint_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func AdaptUserDto(user models.User) APIUser {
	return APIUser{
		Id:                   user.Id,
		Email:                user.Email,
		FullName:             user.FullName,
		Role:                 user.Role.String(),
		UserImageUrl:         user.UserImageUrl,
		IsFingerprintEnabled: user.IsFingerprintEnabled,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}

type CreateUserBody struct {
	Email                string         `json:"email" binding:"required,email"`
	FullName             string         `json:"full_name" binding:"required"`
	Password             string         `json:"password" binding:"required,min=8"`
	Role                 string         `json:"role" binding:"required,oneof=VIEWER STAFF ADMIN"`
	UserImageUrl         null.String    `json:"user_image_url"`
	IsFingerprintEnabled bool           `json:"is_fingerprint_enabled"`
	LoginDeviceInfo      map[string]any `json:"login_device_info"`
}

type UpdateUserBody struct {
	FullName             null.String    `json:"full_name"`
	Role                 null.String    `json:"role" binding:"omitempty,oneof=VIEWER STAFF ADMIN"`
	UserImageUrl         null.String    `json:"user_image_url"`
	IsFingerprintEnabled null.Bool      `json:"is_fingerprint_enabled"`
	LoginDeviceInfo      map[string]any `json:"login_device_info"`
}

type ChangePasswordBody struct {
	Password string `json:"password" binding:"required,min=8"`
}

type CredentialsBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
