package jobs

import (
	"context"

	"github.com/adhocore/gronx/pkg/tasker"

	"github.com/driveline/rental-backend/usecases"
	"github.com/driveline/rental-backend/utils"
)

func errToReturnCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// RunScheduler blocks, firing the recurring jobs until the context is done.
func RunScheduler(ctx context.Context, uc usecases.Usecases) {
	taskr := tasker.New(tasker.Option{
		Verbose: true,
	}).WithContext(ctx)

	taskr.Task("0 * * * *", func(ctx context.Context) (int, error) {
		logger := utils.LoggerFromContext(ctx).With("job", "mark_overdue_bookings")
		ctx = utils.StoreLoggerInContext(ctx, logger)
		err := MarkOverdueBookings(ctx, uc)
		return errToReturnCode(err), err
	})

	taskr.Task("0 8 * * *", func(ctx context.Context) (int, error) {
		logger := utils.LoggerFromContext(ctx).With("job", "send_expiry_alerts")
		ctx = utils.StoreLoggerInContext(ctx, logger)
		err := SendExpiryAlerts(ctx, uc)
		return errToReturnCode(err), err
	})

	taskr.Run()
}

func MarkOverdueBookings(ctx context.Context, uc usecases.Usecases) error {
	return executeWithMonitoring(ctx, uc, "mark_overdue_bookings",
		func(ctx context.Context, uc usecases.Usecases) error {
			return uc.NewJobUsecase().MarkOverdueBookings(ctx)
		})
}

func SendExpiryAlerts(ctx context.Context, uc usecases.Usecases) error {
	return executeWithMonitoring(ctx, uc, "send_expiry_alerts",
		func(ctx context.Context, uc usecases.Usecases) error {
			return uc.NewJobUsecase().SendExpiryAlerts(ctx)
		})
}
