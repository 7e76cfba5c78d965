package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
)

type BookingRepository struct {
	mock.Mock
}

func (r *BookingRepository) GetBookingById(ctx context.Context, exec repositories.Executor,
	bookingId string,
) (models.Booking, error) {
	args := r.Called(ctx, exec, bookingId)
	return args.Get(0).(models.Booking), args.Error(1)
}

func (r *BookingRepository) ListBookings(ctx context.Context, exec repositories.Executor,
	filters models.BookingFilters,
) ([]models.Booking, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (r *BookingRepository) ListBookingsStartingOn(ctx context.Context, exec repositories.Executor,
	day time.Time,
) ([]models.Booking, error) {
	args := r.Called(ctx, exec, day)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (r *BookingRepository) ListBookingsEndingOn(ctx context.Context, exec repositories.Executor,
	day time.Time,
) ([]models.Booking, error) {
	args := r.Called(ctx, exec, day)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (r *BookingRepository) CountOverlappingBookings(ctx context.Context, exec repositories.Executor,
	carId string, startDate, endDate time.Time, excludeBookingId *string,
) (int, error) {
	args := r.Called(ctx, exec, carId, startDate, endDate, excludeBookingId)
	return args.Int(0), args.Error(1)
}

func (r *BookingRepository) CreateBooking(ctx context.Context, exec repositories.Executor,
	booking models.Booking,
) error {
	args := r.Called(ctx, exec, booking)
	return args.Error(0)
}

func (r *BookingRepository) UpdateBooking(ctx context.Context, exec repositories.Executor,
	input models.UpdateBookingInput,
) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *BookingRepository) UpdateBookingPricing(ctx context.Context, exec repositories.Executor,
	bookingId string, subtotal, totalAmount decimal.Decimal,
) error {
	args := r.Called(ctx, exec, bookingId, subtotal, totalAmount)
	return args.Error(0)
}

func (r *BookingRepository) UpdateBookingPaymentRollup(ctx context.Context, exec repositories.Executor,
	bookingId string, paidAmount decimal.Decimal, paymentStatus models.PaymentStatus,
	paymentDate time.Time, paymentMethod models.PaymentMethod,
) error {
	args := r.Called(ctx, exec, bookingId, paidAmount, paymentStatus, paymentDate, paymentMethod)
	return args.Error(0)
}

func (r *BookingRepository) UpdateBookingPaymentStatus(ctx context.Context, exec repositories.Executor,
	bookingId string, paymentStatus models.PaymentStatus,
) error {
	args := r.Called(ctx, exec, bookingId, paymentStatus)
	return args.Error(0)
}

func (r *BookingRepository) ApplyBookingExtension(ctx context.Context, exec repositories.Executor,
	bookingId string, newEndDate time.Time, extensionCharges, totalAmount decimal.Decimal,
) error {
	args := r.Called(ctx, exec, bookingId, newEndDate, extensionCharges, totalAmount)
	return args.Error(0)
}

func (r *BookingRepository) ApplyCarSwap(ctx context.Context, exec repositories.Executor,
	bookingId, newCarId, originalCarId string, swapDate time.Time, reason string,
) error {
	args := r.Called(ctx, exec, bookingId, newCarId, originalCarId, swapDate, reason)
	return args.Error(0)
}

func (r *BookingRepository) MarkBookingReturned(ctx context.Context, exec repositories.Executor,
	bookingId string, returnedAt time.Time,
) error {
	args := r.Called(ctx, exec, bookingId, returnedAt)
	return args.Error(0)
}

func (r *BookingRepository) RecordBookingAccident(ctx context.Context, exec repositories.Executor,
	bookingId string, description string, date time.Time, charges decimal.Decimal,
) error {
	args := r.Called(ctx, exec, bookingId, description, date, charges)
	return args.Error(0)
}

func (r *BookingRepository) CreateBookingExtension(ctx context.Context, exec repositories.Executor,
	newExtensionId string, extension models.BookingExtension,
) error {
	args := r.Called(ctx, exec, newExtensionId, extension)
	return args.Error(0)
}

func (r *BookingRepository) ListBookingExtensions(ctx context.Context, exec repositories.Executor,
	bookingId string,
) ([]models.BookingExtension, error) {
	args := r.Called(ctx, exec, bookingId)
	return args.Get(0).([]models.BookingExtension), args.Error(1)
}

func (r *BookingRepository) GetPaymentById(ctx context.Context, exec repositories.Executor,
	paymentId string,
) (models.Payment, error) {
	args := r.Called(ctx, exec, paymentId)
	return args.Get(0).(models.Payment), args.Error(1)
}

func (r *BookingRepository) ListPayments(ctx context.Context, exec repositories.Executor,
	filters models.PaymentFilters,
) ([]models.Payment, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (r *BookingRepository) CreatePayment(ctx context.Context, exec repositories.Executor,
	newPaymentId string, input models.CreatePaymentInput,
) error {
	args := r.Called(ctx, exec, newPaymentId, input)
	return args.Error(0)
}

func (r *BookingRepository) SumSuccessfulPayments(ctx context.Context, exec repositories.Executor,
	bookingId string,
) (decimal.Decimal, error) {
	args := r.Called(ctx, exec, bookingId)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (r *BookingRepository) GetCustomerBookingStats(ctx context.Context, exec repositories.Executor,
	customerId string,
) (models.CustomerBookingStats, error) {
	args := r.Called(ctx, exec, customerId)
	return args.Get(0).(models.CustomerBookingStats), args.Error(1)
}

func (r *BookingRepository) UpdateCustomerStats(ctx context.Context, exec repositories.Executor,
	customerId string, stats models.CustomerBookingStats,
) error {
	args := r.Called(ctx, exec, customerId, stats)
	return args.Error(0)
}

func (r *BookingRepository) GetCustomerById(ctx context.Context, exec repositories.Executor,
	customerId string,
) (models.Customer, error) {
	args := r.Called(ctx, exec, customerId)
	return args.Get(0).(models.Customer), args.Error(1)
}

func (r *BookingRepository) GetCarById(ctx context.Context, exec repositories.Executor,
	carId string,
) (models.Car, error) {
	args := r.Called(ctx, exec, carId)
	return args.Get(0).(models.Car), args.Error(1)
}

func (r *BookingRepository) UpdateCarState(ctx context.Context, exec repositories.Executor,
	carId string, status models.CarStatus, availability models.CarAvailability,
) error {
	args := r.Called(ctx, exec, carId, status, availability)
	return args.Error(0)
}
