package repositories

import (
	"crypto/rsa"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/driveline/rental-backend/repositories/clock"
)

type Repositories struct {
	ExecutorGetter     ExecutorGetter
	RentalDbRepository *RentalDbRepository
	JwtRepository      *JwtRepository
	PushSender         PushNotificationSender
	Clock              clock.Clock
}

type Option func(*options)

type options struct {
	pushSender PushNotificationSender
	clk        clock.Clock
}

func WithPushSender(sender PushNotificationSender) Option {
	return func(o *options) {
		o.pushSender = sender
	}
}

func WithClock(clk clock.Clock) Option {
	return func(o *options) {
		o.clk = clk
	}
}

func NewRepositories(
	pool *pgxpool.Pool,
	jwtSigningKey *rsa.PrivateKey,
	opts ...Option,
) Repositories {
	o := &options{
		pushSender: NewDisabledMessagingSender(),
		clk:        clock.New(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return Repositories{
		ExecutorGetter:     NewExecutorGetter(pool),
		RentalDbRepository: &RentalDbRepository{},
		JwtRepository:      NewJWTRepository(jwtSigningKey),
		PushSender:         o.pushSender,
		Clock:              o.clk,
	}
}
