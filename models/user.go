package models

import "time"

type User struct {
	Id                   string
	Email                string
	FullName             string
	PasswordHash         string
	Role                 Role
	UserImageUrl         *string
	IsFingerprintEnabled bool
	LoginDeviceInfo      map[string]any
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type CreateUserInput struct {
	Email                string
	FullName             string
	Password             string
	Role                 Role
	UserImageUrl         *string
	IsFingerprintEnabled bool
	LoginDeviceInfo      map[string]any
}

type UpdateUserInput struct {
	Id                   string
	FullName             *string
	Role                 *Role
	UserImageUrl         *string
	IsFingerprintEnabled *bool
	LoginDeviceInfo      map[string]any
}
