package models

import "time"

// DeviceToken stores one FCM registration token. Tokens are unique globally;
// registering an existing token re-binds it to the posting user.
type DeviceToken struct {
	Id         string
	UserId     string
	Token      string
	DeviceType string
	Platform   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RegisterDeviceTokenInput struct {
	UserId     string
	Token      string
	DeviceType string
	Platform   string
}

// NotificationPreference holds the per-user opt-in flags. Defaults mirror a
// fresh row: booking and payment alerts on, fleet expiry alerts off except
// insurance.
type NotificationPreference struct {
	UserId          string
	Booking         bool
	Payment         bool
	InsuranceExpiry bool
	CarExpiry       bool
	TrackerExpiry   bool
}

func DefaultNotificationPreference(userId string) NotificationPreference {
	return NotificationPreference{
		UserId:          userId,
		Booking:         true,
		Payment:         true,
		InsuranceExpiry: true,
	}
}

type UpdateNotificationPreferenceInput struct {
	UserId          string
	Booking         *bool
	Payment         *bool
	InsuranceExpiry *bool
	CarExpiry       *bool
	TrackerExpiry   *bool
}

// PushNotification is what gets handed to the FCM repository.
type PushNotification struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}
