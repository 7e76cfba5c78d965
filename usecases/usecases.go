package usecases

import (
	"time"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
)

type Usecases struct {
	Repositories  repositories.Repositories
	tokenLifetime time.Duration
}

type Option func(*options)

type options struct {
	tokenLifetime time.Duration
}

func WithTokenLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		o.tokenLifetime = lifetime
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	o := &options{
		tokenLifetime: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(o)
	}

	return Usecases{
		Repositories:  repos,
		tokenLifetime: o.tokenLifetime,
	}
}

// NewTokenUsecase needs no credentials: it is what issues them.
func (usecases Usecases) NewTokenUsecase() TokenUsecase {
	return TokenUsecase{
		executorFactory: usecases.Repositories.ExecutorGetter,
		userRepository:  usecases.Repositories.RentalDbRepository,
		jwtRepository:   usecases.Repositories.JwtRepository,
		clock:           usecases.Repositories.Clock,
		tokenLifetime:   usecases.tokenLifetime,
	}
}

func (usecases Usecases) NewSeedUsecase() SeedUsecase {
	return SeedUsecase{
		executorFactory: usecases.Repositories.ExecutorGetter,
		userRepository:  usecases.Repositories.RentalDbRepository,
		menuRepository:  usecases.Repositories.RentalDbRepository,
	}
}

func (usecases Usecases) newBookingNotifier() *BookingNotifier {
	return &BookingNotifier{
		executorFactory:        usecases.Repositories.ExecutorGetter,
		notificationRepository: usecases.Repositories.RentalDbRepository,
		pushSender:             usecases.Repositories.PushSender,
	}
}

// NewJobUsecase runs without credentials: it backs the cron worker.
func (usecases Usecases) NewJobUsecase() JobUsecase {
	return JobUsecase{
		executorFactory: usecases.Repositories.ExecutorGetter,
		repository:      usecases.Repositories.RentalDbRepository,
		notifier:        usecases.newBookingNotifier(),
		clock:           usecases.Repositories.Clock,
	}
}

func (usecases Usecases) NewWithCreds(creds models.Credentials) UsecasesWithCreds {
	return UsecasesWithCreds{
		Usecases:    usecases,
		Credentials: creds,
	}
}
