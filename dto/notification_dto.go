package dto

import (
	"time"

	"github.com/driveline/rental-backend/models"
)

type APIDeviceToken struct {
	Id         string    `json:"id"`
	UserId     string    `json:"user_id"`
	Token      string    `json:"token"`
	DeviceType string    `json:"device_type"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"created_at"`
}

func AdaptDeviceTokenDto(token models.DeviceToken) APIDeviceToken {
	return APIDeviceToken{
		Id:         token.Id,
		UserId:     token.UserId,
		Token:      token.Token,
		DeviceType: token.DeviceType,
		Platform:   token.Platform,
		CreatedAt:  token.CreatedAt,
	}
}

type RegisterDeviceTokenBody struct {
	Token      string `json:"token" binding:"required"`
	DeviceType string `json:"device_type"`
	Platform   string `json:"platform" binding:"omitempty,oneof=android ios web"`
}

type APINotificationPreference struct {
	UserId          string `json:"user_id"`
	Booking         bool   `json:"booking"`
	Payment         bool   `json:"payment"`
	InsuranceExpiry bool   `json:"insurance_expiry"`
	CarExpiry       bool   `json:"car_expiry"`
	TrackerExpiry   bool   `json:"tracker_expiry"`
}

func AdaptNotificationPreferenceDto(p models.NotificationPreference) APINotificationPreference {
	return APINotificationPreference{
		UserId:          p.UserId,
		Booking:         p.Booking,
		Payment:         p.Payment,
		InsuranceExpiry: p.InsuranceExpiry,
		CarExpiry:       p.CarExpiry,
		TrackerExpiry:   p.TrackerExpiry,
	}
}

type UpdateNotificationPreferenceBody struct {
	Booking         *bool `json:"booking"`
	Payment         *bool `json:"payment"`
	InsuranceExpiry *bool `json:"insurance_expiry"`
	CarExpiry       *bool `json:"car_expiry"`
	TrackerExpiry   *bool `json:"tracker_expiry"`
}

func AdaptUpdateNotificationPreferenceInput(userId string,
	body UpdateNotificationPreferenceBody,
) models.UpdateNotificationPreferenceInput {
	return models.UpdateNotificationPreferenceInput{
		UserId:          userId,
		Booking:         body.Booking,
		Payment:         body.Payment,
		InsuranceExpiry: body.InsuranceExpiry,
		CarExpiry:       body.CarExpiry,
		TrackerExpiry:   body.TrackerExpiry,
	}
}
