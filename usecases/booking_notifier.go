package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/utils"
)

type NotificationKind int

const (
	NotificationBooking NotificationKind = iota
	NotificationPayment
	NotificationInsuranceExpiry
	NotificationCarExpiry
	NotificationTrackerExpiry
)

type notifierRepository interface {
	GetNotificationPreference(ctx context.Context, exec repositories.Executor,
		userId string) (*models.NotificationPreference, error)
	ListDeviceTokensForUser(ctx context.Context, exec repositories.Executor,
		userId string) ([]models.DeviceToken, error)
	DeleteDeviceToken(ctx context.Context, exec repositories.Executor, token string) error
}

// BookingNotifier delivers push notifications best-effort: failures are logged
// and never surface to the request that triggered them.
type BookingNotifier struct {
	executorFactory        repositories.TransactionFactory
	notificationRepository notifierRepository
	pushSender             repositories.PushNotificationSender
}

func preferenceAllows(p models.NotificationPreference, kind NotificationKind) bool {
	switch kind {
	case NotificationBooking:
		return p.Booking
	case NotificationPayment:
		return p.Payment
	case NotificationInsuranceExpiry:
		return p.InsuranceExpiry
	case NotificationCarExpiry:
		return p.CarExpiry
	case NotificationTrackerExpiry:
		return p.TrackerExpiry
	}
	return false
}

// Notify pushes to every device of the user, honoring their preference for
// the notification kind. Tokens FCM reports as gone are pruned.
func (notifier *BookingNotifier) Notify(ctx context.Context, userId string,
	kind NotificationKind, title, body string, data map[string]string,
) {
	logger := utils.LoggerFromContext(ctx)
	exec := notifier.executorFactory.Executor()

	preference, err := notifier.notificationRepository.GetNotificationPreference(ctx, exec, userId)
	if err != nil {
		logger.WarnContext(ctx, "could not load notification preferences", "error", err.Error())
		return
	}
	if preference == nil {
		defaultPreference := models.DefaultNotificationPreference(userId)
		preference = &defaultPreference
	}
	if !preferenceAllows(*preference, kind) {
		return
	}

	tokens, err := notifier.notificationRepository.ListDeviceTokensForUser(ctx, exec, userId)
	if err != nil {
		logger.WarnContext(ctx, "could not list device tokens", "error", err.Error())
		return
	}

	for _, token := range tokens {
		err := notifier.pushSender.Send(ctx, models.PushNotification{
			Token: token.Token,
			Title: title,
			Body:  body,
			Data:  data,
		})
		switch {
		case errors.Is(err, repositories.ErrUnregisteredDeviceToken):
			if err := notifier.notificationRepository.DeleteDeviceToken(ctx, exec, token.Token); err != nil {
				logger.WarnContext(ctx, "could not prune stale device token", "error", err.Error())
			}
		case err != nil:
			logger.WarnContext(ctx, "could not send push notification",
				"title", title, "error", err.Error())
		}
	}
}
