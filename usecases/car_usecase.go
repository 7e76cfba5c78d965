package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/usecases/security"
)

type carRepository interface {
	GetCarById(ctx context.Context, exec repositories.Executor, carId string) (models.Car, error)
	ListCars(ctx context.Context, exec repositories.Executor, filters models.CarFilters) ([]models.Car, error)
	CreateCar(ctx context.Context, exec repositories.Executor, newCarId string, input models.CreateCarInput) error
	UpdateCar(ctx context.Context, exec repositories.Executor, input models.UpdateCarInput) error
	UpdateCarState(ctx context.Context, exec repositories.Executor, carId string,
		status models.CarStatus, availability models.CarAvailability) error
	SoftDeleteCar(ctx context.Context, exec repositories.Executor, carId string) error
}

type CarUsecase struct {
	enforceSecurity    security.EnforceSecurityCar
	transactionFactory repositories.TransactionFactory
	carRepository      carRepository
}

func (usecase CarUsecase) GetCar(ctx context.Context, carId string) (models.Car, error) {
	if err := usecase.enforceSecurity.ReadCar(); err != nil {
		return models.Car{}, err
	}
	return usecase.carRepository.GetCarById(ctx, usecase.transactionFactory.Executor(), carId)
}

func (usecase CarUsecase) ListCars(ctx context.Context, filters models.CarFilters) ([]models.Car, error) {
	if err := usecase.enforceSecurity.ReadCar(); err != nil {
		return nil, err
	}
	return usecase.carRepository.ListCars(ctx, usecase.transactionFactory.Executor(), filters)
}

func (usecase CarUsecase) CreateCar(ctx context.Context, input models.CreateCarInput) (models.Car, error) {
	if err := usecase.enforceSecurity.CreateCar(); err != nil {
		return models.Car{}, err
	}
	if input.Name == "" {
		return models.Car{}, errors.Wrap(models.BadParameterError, "car name is required")
	}
	if input.FeePerDay.IsNegative() {
		return models.Car{}, errors.Wrap(models.BadParameterError, "fee per day cannot be negative")
	}

	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Car, error) {
			newCarId := uuid.NewString()
			if err := usecase.carRepository.CreateCar(ctx, tx, newCarId, input); err != nil {
				return models.Car{}, err
			}
			return usecase.carRepository.GetCarById(ctx, tx, newCarId)
		})
}

func (usecase CarUsecase) UpdateCar(ctx context.Context, input models.UpdateCarInput) (models.Car, error) {
	if err := usecase.enforceSecurity.UpdateCar(); err != nil {
		return models.Car{}, err
	}
	if input.FeePerDay != nil && input.FeePerDay.IsNegative() {
		return models.Car{}, errors.Wrap(models.BadParameterError, "fee per day cannot be negative")
	}
	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Car, error) {
			if err := usecase.carRepository.UpdateCar(ctx, tx, input); err != nil {
				return models.Car{}, err
			}
			return usecase.carRepository.GetCarById(ctx, tx, input.Id)
		})
}

// DeleteCar is a soft delete: the car disappears from listings but bookings
// keep their reference.
func (usecase CarUsecase) DeleteCar(ctx context.Context, carId string) error {
	if err := usecase.enforceSecurity.DeleteCar(); err != nil {
		return err
	}
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		car, err := usecase.carRepository.GetCarById(ctx, tx, carId)
		if err != nil {
			return err
		}
		if car.Availability == models.CarBooked {
			return errors.Wrap(models.ConflictError, "car is currently booked")
		}
		return usecase.carRepository.SoftDeleteCar(ctx, tx, carId)
	})
}
