package repositories

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"github.com/cockroachdb/errors"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

// ErrUnregisteredDeviceToken signals that FCM no longer knows the token, so
// the caller should drop it.
var ErrUnregisteredDeviceToken = errors.New("device token is not registered")

type PushNotificationSender interface {
	Send(ctx context.Context, notification models.PushNotification) error
}

type firebaseMessagingSender struct {
	client *messaging.Client
}

func NewFirebaseMessagingSender(client *messaging.Client) PushNotificationSender {
	return firebaseMessagingSender{client: client}
}

func (s firebaseMessagingSender) Send(ctx context.Context, notification models.PushNotification) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: notification.Token,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	})
	if messaging.IsRegistrationTokenNotRegistered(err) {
		return errors.Join(ErrUnregisteredDeviceToken, err)
	}
	return err
}

type disabledMessagingSender struct{}

// NewDisabledMessagingSender is used when no Firebase project is configured:
// pushes are logged and dropped.
func NewDisabledMessagingSender() PushNotificationSender {
	return disabledMessagingSender{}
}

func (s disabledMessagingSender) Send(ctx context.Context, notification models.PushNotification) error {
	utils.LoggerFromContext(ctx).DebugContext(ctx, "push messaging disabled, dropping notification",
		"title", notification.Title)
	return nil
}
