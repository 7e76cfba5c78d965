package usecases

import (
	"context"
	"time"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/repositories/clock"
	"github.com/driveline/rental-backend/usecases/security"
)

type dashboardRepository interface {
	CountCarsCreatedBefore(ctx context.Context, exec repositories.Executor, before time.Time) (int, error)
	CountCustomersCreatedBefore(ctx context.Context, exec repositories.Executor, before time.Time) (int, error)
	CountBookingsStartingOn(ctx context.Context, exec repositories.Executor, day time.Time) (int, error)
	CountBookingsEndingOn(ctx context.Context, exec repositories.Executor, day time.Time) (int, error)
	CountOngoingBookingsOn(ctx context.Context, exec repositories.Executor, day time.Time) (int, error)
	BookingsPerDay(ctx context.Context, exec repositories.Executor,
		from, to time.Time) ([]models.CalendarDay, error)
	BookingSummaryPerDay(ctx context.Context, exec repositories.Executor,
		from, to time.Time) ([]models.BookingSummaryDay, error)
}

type DashboardUsecase struct {
	enforceSecurity     security.EnforceSecurityDashboard
	executorFactory     repositories.TransactionFactory
	dashboardRepository dashboardRepository
	clock               clock.Clock
}

// GetDashboard assembles the landing page figures: fleet and customer totals
// with their change over the last week, today's movements against the same
// weekday last week, the current month's booking calendar, and a 7-day
// booked-vs-cancelled summary.
func (usecase DashboardUsecase) GetDashboard(ctx context.Context) (models.DashboardStats, error) {
	if err := usecase.enforceSecurity.ReadDashboard(); err != nil {
		return models.DashboardStats{}, err
	}
	exec := usecase.executorFactory.Executor()

	now := usecase.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	weekAgo := today.AddDate(0, 0, -7)

	totalCars, err := usecase.kpi(ctx, exec, tomorrow, weekAgo.AddDate(0, 0, 1),
		usecase.dashboardRepository.CountCarsCreatedBefore)
	if err != nil {
		return models.DashboardStats{}, err
	}
	totalCustomers, err := usecase.kpi(ctx, exec, tomorrow, weekAgo.AddDate(0, 0, 1),
		usecase.dashboardRepository.CountCustomersCreatedBefore)
	if err != nil {
		return models.DashboardStats{}, err
	}
	todaysPickups, err := usecase.kpi(ctx, exec, today, weekAgo,
		usecase.dashboardRepository.CountBookingsStartingOn)
	if err != nil {
		return models.DashboardStats{}, err
	}
	todaysReturns, err := usecase.kpi(ctx, exec, today, weekAgo,
		usecase.dashboardRepository.CountBookingsEndingOn)
	if err != nil {
		return models.DashboardStats{}, err
	}
	ongoing, err := usecase.kpi(ctx, exec, today, weekAgo,
		usecase.dashboardRepository.CountOngoingBookingsOn)
	if err != nil {
		return models.DashboardStats{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	calendar, err := usecase.dashboardRepository.BookingsPerDay(ctx, exec, monthStart, monthEnd)
	if err != nil {
		return models.DashboardStats{}, err
	}

	summary, err := usecase.dashboardRepository.BookingSummaryPerDay(ctx, exec, weekAgo, tomorrow)
	if err != nil {
		return models.DashboardStats{}, err
	}

	return models.DashboardStats{
		TotalCars:       totalCars,
		TotalCustomers:  totalCustomers,
		TodaysPickups:   todaysPickups,
		TodaysReturns:   todaysReturns,
		OngoingBookings: ongoing,
		Calendar:        calendar,
		BookingSummary:  summary,
	}, nil
}

func (usecase DashboardUsecase) kpi(ctx context.Context, exec repositories.Executor,
	current, previous time.Time,
	count func(ctx context.Context, exec repositories.Executor, at time.Time) (int, error),
) (models.KpiValue, error) {
	currentCount, err := count(ctx, exec, current)
	if err != nil {
		return models.KpiValue{}, err
	}
	previousCount, err := count(ctx, exec, previous)
	if err != nil {
		return models.KpiValue{}, err
	}
	return models.KpiValue{
		Count:         currentCount,
		PercentChange: models.SafePercentChange(currentCount, previousCount),
	}, nil
}
