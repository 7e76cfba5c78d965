package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/usecases/security"
)

type customerRepository interface {
	GetCustomerById(ctx context.Context, exec repositories.Executor, customerId string) (models.Customer, error)
	ListCustomers(ctx context.Context, exec repositories.Executor,
		status *models.CustomerStatus, search *string) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, exec repositories.Executor, newCustomerId string,
		input models.CreateCustomerInput) error
	UpdateCustomer(ctx context.Context, exec repositories.Executor, input models.UpdateCustomerInput) error
	UpdateCustomerStats(ctx context.Context, exec repositories.Executor, customerId string,
		stats models.CustomerBookingStats) error
	DeleteCustomer(ctx context.Context, exec repositories.Executor, customerId string) error
}

type customerBookingStatsRepository interface {
	GetCustomerBookingStats(ctx context.Context, exec repositories.Executor,
		customerId string) (models.CustomerBookingStats, error)
}

type CustomerUsecase struct {
	enforceSecurity    security.EnforceSecurityCustomer
	transactionFactory repositories.TransactionFactory
	customerRepository customerRepository
	bookingRepository  customerBookingStatsRepository
}

func (usecase CustomerUsecase) GetCustomer(ctx context.Context, customerId string) (models.Customer, error) {
	if err := usecase.enforceSecurity.ReadCustomer(); err != nil {
		return models.Customer{}, err
	}
	return usecase.customerRepository.GetCustomerById(ctx, usecase.transactionFactory.Executor(), customerId)
}

func (usecase CustomerUsecase) ListCustomers(ctx context.Context,
	status *models.CustomerStatus, search *string,
) ([]models.Customer, error) {
	if err := usecase.enforceSecurity.ReadCustomer(); err != nil {
		return nil, err
	}
	return usecase.customerRepository.ListCustomers(ctx, usecase.transactionFactory.Executor(), status, search)
}

func (usecase CustomerUsecase) CreateCustomer(ctx context.Context, input models.CreateCustomerInput) (models.Customer, error) {
	if err := usecase.enforceSecurity.CreateCustomer(); err != nil {
		return models.Customer{}, err
	}
	if input.Name == "" || input.Email == "" {
		return models.Customer{}, errors.Wrap(models.BadParameterError, "name and email are required")
	}

	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Customer, error) {
			newCustomerId := uuid.NewString()
			if err := usecase.customerRepository.CreateCustomer(ctx, tx, newCustomerId, input); err != nil {
				return models.Customer{}, err
			}
			return usecase.customerRepository.GetCustomerById(ctx, tx, newCustomerId)
		})
}

func (usecase CustomerUsecase) UpdateCustomer(ctx context.Context, input models.UpdateCustomerInput) (models.Customer, error) {
	if err := usecase.enforceSecurity.UpdateCustomer(); err != nil {
		return models.Customer{}, err
	}
	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Customer, error) {
			if err := usecase.customerRepository.UpdateCustomer(ctx, tx, input); err != nil {
				return models.Customer{}, err
			}
			return usecase.customerRepository.GetCustomerById(ctx, tx, input.Id)
		})
}

// RefreshCustomerStats recomputes the stored rollup from the bookings table.
func (usecase CustomerUsecase) RefreshCustomerStats(ctx context.Context, customerId string) (models.Customer, error) {
	if err := usecase.enforceSecurity.UpdateCustomer(); err != nil {
		return models.Customer{}, err
	}
	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Customer, error) {
			stats, err := usecase.bookingRepository.GetCustomerBookingStats(ctx, tx, customerId)
			if err != nil {
				return models.Customer{}, err
			}
			if err := usecase.customerRepository.UpdateCustomerStats(ctx, tx, customerId, stats); err != nil {
				return models.Customer{}, err
			}
			return usecase.customerRepository.GetCustomerById(ctx, tx, customerId)
		})
}

func (usecase CustomerUsecase) DeleteCustomer(ctx context.Context, customerId string) error {
	if err := usecase.enforceSecurity.DeleteCustomer(); err != nil {
		return err
	}
	return usecase.customerRepository.DeleteCustomer(ctx, usecase.transactionFactory.Executor(), customerId)
}
