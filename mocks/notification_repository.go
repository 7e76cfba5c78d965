package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
)

type NotificationRepository struct {
	mock.Mock
}

func (r *NotificationRepository) GetNotificationPreference(ctx context.Context,
	exec repositories.Executor, userId string,
) (*models.NotificationPreference, error) {
	args := r.Called(ctx, exec, userId)
	preference, _ := args.Get(0).(*models.NotificationPreference)
	return preference, args.Error(1)
}

func (r *NotificationRepository) ListDeviceTokensForUser(ctx context.Context,
	exec repositories.Executor, userId string,
) ([]models.DeviceToken, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).([]models.DeviceToken), args.Error(1)
}

func (r *NotificationRepository) DeleteDeviceToken(ctx context.Context,
	exec repositories.Executor, token string,
) error {
	args := r.Called(ctx, exec, token)
	return args.Error(0)
}

type PushSender struct {
	mock.Mock
}

func (s *PushSender) Send(ctx context.Context, notification models.PushNotification) error {
	args := s.Called(ctx, notification)
	return args.Error(0)
}
