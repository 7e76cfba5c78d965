package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories/dbmodels"
)

func (repo *RentalDbRepository) UserById(ctx context.Context, exec Executor, userId string) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUser,
	)
}

// UserByEmail returns nil without error when no user matches, so the login
// path can answer with the same error for unknown email and bad password.
func (repo *RentalDbRepository) UserByEmail(ctx context.Context, exec Executor, email string) (*models.User, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"email": email}),
		dbmodels.AdaptUser,
	)
}

func (repo *RentalDbRepository) ListUsers(ctx context.Context, exec Executor) ([]models.User, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			OrderBy("created_at DESC"),
		dbmodels.AdaptUser,
	)
}

func (repo *RentalDbRepository) CreateUser(ctx context.Context, exec Executor,
	newUserId string, input models.CreateUserInput, passwordHash string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_USERS).
			Columns(
				"id",
				"email",
				"full_name",
				"password_hash",
				"role",
				"user_image_url",
				"is_fingerprint_enabled",
				"login_device_info",
			).
			Values(
				newUserId,
				input.Email,
				input.FullName,
				passwordHash,
				input.Role.String(),
				input.UserImageUrl,
				input.IsFingerprintEnabled,
				input.LoginDeviceInfo,
			),
	)
}

func (repo *RentalDbRepository) UpdateUser(ctx context.Context, exec Executor, input models.UpdateUserInput) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_USERS).Where(squirrel.Eq{
		"id": input.Id,
	}).Set("updated_at", squirrel.Expr("NOW()"))

	if input.FullName != nil {
		query = query.Set("full_name", *input.FullName)
	}
	if input.Role != nil {
		query = query.Set("role", input.Role.String())
	}
	if input.UserImageUrl != nil {
		query = query.Set("user_image_url", *input.UserImageUrl)
	}
	if input.IsFingerprintEnabled != nil {
		query = query.Set("is_fingerprint_enabled", *input.IsFingerprintEnabled)
	}
	if input.LoginDeviceInfo != nil {
		query = query.Set("login_device_info", input.LoginDeviceInfo)
	}
	return ExecBuilder(ctx, exec, query)
}

func (repo *RentalDbRepository) UpdateUserPassword(ctx context.Context, exec Executor, userId, passwordHash string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}).
			Set("password_hash", passwordHash).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
}

func (repo *RentalDbRepository) DeleteUser(ctx context.Context, exec Executor, userId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_USERS).Where(squirrel.Eq{"id": userId}),
	)
}
