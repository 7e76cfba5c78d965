package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/repositories/clock"
	"github.com/driveline/rental-backend/utils"
)

const expiryAlertWindowDays = 7

type jobRepository interface {
	ListOverdueCandidates(ctx context.Context, exec repositories.Executor,
		today time.Time) ([]models.Booking, error)
	MarkBookingOverdue(ctx context.Context, exec repositories.Executor, bookingId string) error
	UpdateCarState(ctx context.Context, exec repositories.Executor, carId string,
		status models.CarStatus, availability models.CarAvailability) error
	ListCarsWithInsuranceExpiringBy(ctx context.Context, exec repositories.Executor,
		deadline time.Time) ([]models.Car, error)
	ListCarsWithTrackerExpiringBy(ctx context.Context, exec repositories.Executor,
		deadline time.Time) ([]models.Car, error)
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
}

// JobUsecase hosts the scheduled scans the cron worker runs.
type JobUsecase struct {
	executorFactory repositories.TransactionFactory
	repository      jobRepository
	notifier        *BookingNotifier
	clock           clock.Clock
}

func (usecase JobUsecase) today() time.Time {
	now := usecase.clock.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// MarkOverdueBookings flips active bookings past their end date to Overdue,
// along with their cars, and alerts whoever created the booking.
func (usecase JobUsecase) MarkOverdueBookings(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)
	today := usecase.today()

	var overdue []models.Booking
	err := usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		candidates, err := usecase.repository.ListOverdueCandidates(ctx, tx, today)
		if err != nil {
			return err
		}
		for _, booking := range candidates {
			if err := usecase.repository.MarkBookingOverdue(ctx, tx, booking.Id); err != nil {
				return err
			}
			if booking.CarId != nil {
				if err := usecase.repository.UpdateCarState(ctx, tx, *booking.CarId,
					models.CarStatusOverdue, models.CarBooked); err != nil {
					return err
				}
			}
		}
		overdue = candidates
		return nil
	})
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "marked overdue bookings", "count", len(overdue))
	for _, booking := range overdue {
		usecase.notifyCreator(ctx, booking.CreatedBy, NotificationBooking,
			"Booking overdue",
			fmt.Sprintf("Booking %s passed its end date without the car coming back", booking.Reference),
			map[string]string{"booking_id": booking.Id})
	}
	return nil
}

// SendExpiryAlerts warns car creators about insurance and tracker cover
// running out within the alert window.
func (usecase JobUsecase) SendExpiryAlerts(ctx context.Context) error {
	exec := usecase.executorFactory.Executor()
	deadline := usecase.today().AddDate(0, 0, expiryAlertWindowDays)

	insuranceExpiring, err := usecase.repository.ListCarsWithInsuranceExpiringBy(ctx, exec, deadline)
	if err != nil {
		return err
	}
	for _, car := range insuranceExpiring {
		usecase.notifyCreator(ctx, car.CreatedBy, NotificationInsuranceExpiry,
			"Insurance expiring",
			fmt.Sprintf("Insurance for %s expires on %s", car.Name,
				car.InsuranceExpiryDate.Format("2006-01-02")),
			map[string]string{"car_id": car.Id})
	}

	trackerExpiring, err := usecase.repository.ListCarsWithTrackerExpiringBy(ctx, exec, deadline)
	if err != nil {
		return err
	}
	for _, car := range trackerExpiring {
		usecase.notifyCreator(ctx, car.CreatedBy, NotificationTrackerExpiry,
			"Tracker expiring",
			fmt.Sprintf("Tracker subscription for %s expires on %s", car.Name,
				car.TrackerExpiryDate.Format("2006-01-02")),
			map[string]string{"car_id": car.Id})
	}
	return nil
}

// notifyCreator resolves the created_by email to a user before pushing. Rows
// created before auth landed have no creator and are skipped.
func (usecase JobUsecase) notifyCreator(ctx context.Context, createdBy *string,
	kind NotificationKind, title, body string, data map[string]string,
) {
	if createdBy == nil || *createdBy == "" {
		return
	}
	user, err := usecase.repository.UserByEmail(ctx, usecase.executorFactory.Executor(), *createdBy)
	if err != nil || user == nil {
		return
	}
	usecase.notifier.Notify(ctx, user.Id, kind, title, body, data)
}
