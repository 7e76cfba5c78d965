package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories/dbmodels"
)

// UpsertDeviceToken re-binds an already-registered token to the posting user,
// so a shared device follows whoever logged in last.
func (repo *RentalDbRepository) UpsertDeviceToken(ctx context.Context, exec Executor,
	newTokenId string, input models.RegisterDeviceTokenInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_DEVICE_TOKENS).
			Columns(
				"id",
				"user_id",
				"token",
				"device_type",
				"platform",
			).
			Values(
				newTokenId,
				input.UserId,
				input.Token,
				input.DeviceType,
				input.Platform,
			).
			Suffix(`ON CONFLICT (token) DO UPDATE SET
				user_id = EXCLUDED.user_id,
				device_type = EXCLUDED.device_type,
				platform = EXCLUDED.platform,
				updated_at = NOW()`),
	)
}

func (repo *RentalDbRepository) ListDeviceTokensForUser(ctx context.Context, exec Executor,
	userId string,
) ([]models.DeviceToken, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectDeviceTokenColumn...).
			From(dbmodels.TABLE_DEVICE_TOKENS).
			Where(squirrel.Eq{"user_id": userId}),
		dbmodels.AdaptDeviceToken,
	)
}

func (repo *RentalDbRepository) DeleteDeviceToken(ctx context.Context, exec Executor, token string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_DEVICE_TOKENS).Where(squirrel.Eq{"token": token}),
	)
}

// GetNotificationPreference returns nil when the user never saved preferences;
// callers fall back to the defaults.
func (repo *RentalDbRepository) GetNotificationPreference(ctx context.Context, exec Executor,
	userId string,
) (*models.NotificationPreference, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectNotificationPreferenceColumn...).
			From(dbmodels.TABLE_NOTIFICATION_PREFERENCES).
			Where(squirrel.Eq{"user_id": userId}),
		dbmodels.AdaptNotificationPreference,
	)
}

func (repo *RentalDbRepository) UpsertNotificationPreference(ctx context.Context, exec Executor,
	preference models.NotificationPreference,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_NOTIFICATION_PREFERENCES).
			Columns(
				"user_id",
				"booking",
				"payment",
				"insurance_expiry",
				"car_expiry",
				"tracker_expiry",
			).
			Values(
				preference.UserId,
				preference.Booking,
				preference.Payment,
				preference.InsuranceExpiry,
				preference.CarExpiry,
				preference.TrackerExpiry,
			).
			Suffix(`ON CONFLICT (user_id) DO UPDATE SET
				booking = EXCLUDED.booking,
				payment = EXCLUDED.payment,
				insurance_expiry = EXCLUDED.insurance_expiry,
				car_expiry = EXCLUDED.car_expiry,
				tracker_expiry = EXCLUDED.tracker_expiry`),
	)
}
