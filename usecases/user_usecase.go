package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/usecases/security"
)

type userRepository interface {
	UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
	ListUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error)
	CreateUser(ctx context.Context, exec repositories.Executor, newUserId string,
		input models.CreateUserInput, passwordHash string) error
	UpdateUser(ctx context.Context, exec repositories.Executor, input models.UpdateUserInput) error
	UpdateUserPassword(ctx context.Context, exec repositories.Executor, userId, passwordHash string) error
	DeleteUser(ctx context.Context, exec repositories.Executor, userId string) error
}

type UserUsecase struct {
	enforceSecurity    security.EnforceSecurityUser
	transactionFactory repositories.TransactionFactory
	userRepository     userRepository
}

func (usecase UserUsecase) GetUser(ctx context.Context, userId string) (models.User, error) {
	if err := usecase.enforceSecurity.ReadUser(userId); err != nil {
		return models.User{}, err
	}
	return usecase.userRepository.UserById(ctx, usecase.transactionFactory.Executor(), userId)
}

func (usecase UserUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := usecase.enforceSecurity.ManageUsers(); err != nil {
		return nil, err
	}
	return usecase.userRepository.ListUsers(ctx, usecase.transactionFactory.Executor())
}

func (usecase UserUsecase) CreateUser(ctx context.Context, input models.CreateUserInput) (models.User, error) {
	if err := usecase.enforceSecurity.ManageUsers(); err != nil {
		return models.User{}, err
	}
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.Wrap(models.BadParameterError, "email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "could not hash password")
	}

	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.User, error) {
			newUserId := uuid.NewString()
			if err := usecase.userRepository.CreateUser(ctx, tx, newUserId, input, string(hash)); err != nil {
				return models.User{}, err
			}
			return usecase.userRepository.UserById(ctx, tx, newUserId)
		})
}

func (usecase UserUsecase) UpdateUser(ctx context.Context, input models.UpdateUserInput) (models.User, error) {
	if err := usecase.enforceSecurity.ManageUsers(); err != nil {
		return models.User{}, err
	}
	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.User, error) {
			if err := usecase.userRepository.UpdateUser(ctx, tx, input); err != nil {
				return models.User{}, err
			}
			return usecase.userRepository.UserById(ctx, tx, input.Id)
		})
}

func (usecase UserUsecase) ChangePassword(ctx context.Context, userId, newPassword string) error {
	if err := usecase.enforceSecurity.ManageUsers(); err != nil {
		return err
	}
	if newPassword == "" {
		return errors.Wrap(models.BadParameterError, "password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "could not hash password")
	}
	return usecase.userRepository.UpdateUserPassword(ctx,
		usecase.transactionFactory.Executor(), userId, string(hash))
}

func (usecase UserUsecase) DeleteUser(ctx context.Context, userId string) error {
	if err := usecase.enforceSecurity.ManageUsers(); err != nil {
		return err
	}
	return usecase.userRepository.DeleteUser(ctx, usecase.transactionFactory.Executor(), userId)
}
