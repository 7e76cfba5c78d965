package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/usecases/security"
)

type notificationRepository interface {
	UpsertDeviceToken(ctx context.Context, exec repositories.Executor, newTokenId string,
		input models.RegisterDeviceTokenInput) error
	ListDeviceTokensForUser(ctx context.Context, exec repositories.Executor,
		userId string) ([]models.DeviceToken, error)
	DeleteDeviceToken(ctx context.Context, exec repositories.Executor, token string) error
	GetNotificationPreference(ctx context.Context, exec repositories.Executor,
		userId string) (*models.NotificationPreference, error)
	UpsertNotificationPreference(ctx context.Context, exec repositories.Executor,
		preference models.NotificationPreference) error
}

type NotificationUsecase struct {
	enforceSecurity        security.EnforceSecurityNotification
	transactionFactory     repositories.TransactionFactory
	notificationRepository notificationRepository
	userId                 string
}

// RegisterDeviceToken binds an FCM token to the calling user, stealing it from
// its previous owner if the device changed hands.
func (usecase NotificationUsecase) RegisterDeviceToken(ctx context.Context,
	input models.RegisterDeviceTokenInput,
) error {
	input.UserId = usecase.userId
	if err := usecase.enforceSecurity.ManageOwnNotifications(input.UserId); err != nil {
		return err
	}
	if input.Token == "" {
		return errors.Wrap(models.BadParameterError, "device token is required")
	}
	return usecase.notificationRepository.UpsertDeviceToken(ctx,
		usecase.transactionFactory.Executor(), uuid.NewString(), input)
}

func (usecase NotificationUsecase) UnregisterDeviceToken(ctx context.Context, token string) error {
	if err := usecase.enforceSecurity.ManageOwnNotifications(usecase.userId); err != nil {
		return err
	}
	return usecase.notificationRepository.DeleteDeviceToken(ctx,
		usecase.transactionFactory.Executor(), token)
}

// GetPreferences returns the stored flags, or the defaults for a user who
// never saved any.
func (usecase NotificationUsecase) GetPreferences(ctx context.Context) (models.NotificationPreference, error) {
	if err := usecase.enforceSecurity.ManageOwnNotifications(usecase.userId); err != nil {
		return models.NotificationPreference{}, err
	}
	preference, err := usecase.notificationRepository.GetNotificationPreference(ctx,
		usecase.transactionFactory.Executor(), usecase.userId)
	if err != nil {
		return models.NotificationPreference{}, err
	}
	if preference == nil {
		return models.DefaultNotificationPreference(usecase.userId), nil
	}
	return *preference, nil
}

// UpdatePreferences merges the provided flags over the current ones.
func (usecase NotificationUsecase) UpdatePreferences(ctx context.Context,
	input models.UpdateNotificationPreferenceInput,
) (models.NotificationPreference, error) {
	input.UserId = usecase.userId
	if err := usecase.enforceSecurity.ManageOwnNotifications(input.UserId); err != nil {
		return models.NotificationPreference{}, err
	}

	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.NotificationPreference, error) {
			current, err := usecase.notificationRepository.GetNotificationPreference(ctx, tx, input.UserId)
			if err != nil {
				return models.NotificationPreference{}, err
			}
			preference := models.DefaultNotificationPreference(input.UserId)
			if current != nil {
				preference = *current
			}

			if input.Booking != nil {
				preference.Booking = *input.Booking
			}
			if input.Payment != nil {
				preference.Payment = *input.Payment
			}
			if input.InsuranceExpiry != nil {
				preference.InsuranceExpiry = *input.InsuranceExpiry
			}
			if input.CarExpiry != nil {
				preference.CarExpiry = *input.CarExpiry
			}
			if input.TrackerExpiry != nil {
				preference.TrackerExpiry = *input.TrackerExpiry
			}

			if err := usecase.notificationRepository.UpsertNotificationPreference(ctx, tx, preference); err != nil {
				return models.NotificationPreference{}, err
			}
			return preference, nil
		})
}
