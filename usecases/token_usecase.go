package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/repositories/clock"
)

type tokenUserRepository interface {
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
}

type tokenEncoder interface {
	EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error)
}

type TokenUsecase struct {
	executorFactory repositories.TransactionFactory
	userRepository  tokenUserRepository
	jwtRepository   tokenEncoder
	clock           clock.Clock
	tokenLifetime   time.Duration
}

// IssueToken exchanges email and password for a signed JWT. Unknown email and
// wrong password are indistinguishable to the caller.
func (usecase TokenUsecase) IssueToken(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := usecase.userRepository.UserByEmail(ctx, usecase.executorFactory.Executor(), email)
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, errors.Wrap(models.UnAuthorizedError, "unknown email")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, errors.Wrap(models.UnAuthorizedError, "invalid password")
	}

	expirationTime := usecase.clock.Now().Add(usecase.tokenLifetime)
	token, err := usecase.jwtRepository.EncodeToken(expirationTime, user.IntoCredentials())
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "could not sign token")
	}
	return token, expirationTime, nil
}
