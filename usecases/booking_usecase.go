package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/repositories/clock"
	"github.com/driveline/rental-backend/usecases/security"
)

type bookingRepository interface {
	GetBookingById(ctx context.Context, exec repositories.Executor, bookingId string) (models.Booking, error)
	ListBookings(ctx context.Context, exec repositories.Executor,
		filters models.BookingFilters) ([]models.Booking, error)
	ListBookingsStartingOn(ctx context.Context, exec repositories.Executor,
		day time.Time) ([]models.Booking, error)
	ListBookingsEndingOn(ctx context.Context, exec repositories.Executor,
		day time.Time) ([]models.Booking, error)
	CountOverlappingBookings(ctx context.Context, exec repositories.Executor,
		carId string, startDate, endDate time.Time, excludeBookingId *string) (int, error)
	CreateBooking(ctx context.Context, exec repositories.Executor, booking models.Booking) error
	UpdateBooking(ctx context.Context, exec repositories.Executor, input models.UpdateBookingInput) error
	UpdateBookingPricing(ctx context.Context, exec repositories.Executor,
		bookingId string, subtotal, totalAmount decimal.Decimal) error
	UpdateBookingPaymentRollup(ctx context.Context, exec repositories.Executor,
		bookingId string, paidAmount decimal.Decimal, paymentStatus models.PaymentStatus,
		paymentDate time.Time, paymentMethod models.PaymentMethod) error
	UpdateBookingPaymentStatus(ctx context.Context, exec repositories.Executor,
		bookingId string, paymentStatus models.PaymentStatus) error
	ApplyBookingExtension(ctx context.Context, exec repositories.Executor,
		bookingId string, newEndDate time.Time, extensionCharges, totalAmount decimal.Decimal) error
	ApplyCarSwap(ctx context.Context, exec repositories.Executor,
		bookingId, newCarId, originalCarId string, swapDate time.Time, reason string) error
	MarkBookingReturned(ctx context.Context, exec repositories.Executor,
		bookingId string, returnedAt time.Time) error
	RecordBookingAccident(ctx context.Context, exec repositories.Executor,
		bookingId string, description string, date time.Time, charges decimal.Decimal) error
	CreateBookingExtension(ctx context.Context, exec repositories.Executor,
		newExtensionId string, extension models.BookingExtension) error
	ListBookingExtensions(ctx context.Context, exec repositories.Executor,
		bookingId string) ([]models.BookingExtension, error)
	GetPaymentById(ctx context.Context, exec repositories.Executor, paymentId string) (models.Payment, error)
	ListPayments(ctx context.Context, exec repositories.Executor,
		filters models.PaymentFilters) ([]models.Payment, error)
	CreatePayment(ctx context.Context, exec repositories.Executor,
		newPaymentId string, input models.CreatePaymentInput) error
	SumSuccessfulPayments(ctx context.Context, exec repositories.Executor,
		bookingId string) (decimal.Decimal, error)
	GetCustomerBookingStats(ctx context.Context, exec repositories.Executor,
		customerId string) (models.CustomerBookingStats, error)
	UpdateCustomerStats(ctx context.Context, exec repositories.Executor, customerId string,
		stats models.CustomerBookingStats) error
	GetCustomerById(ctx context.Context, exec repositories.Executor, customerId string) (models.Customer, error)
	GetCarById(ctx context.Context, exec repositories.Executor, carId string) (models.Car, error)
	UpdateCarState(ctx context.Context, exec repositories.Executor, carId string,
		status models.CarStatus, availability models.CarAvailability) error
}

type BookingUsecase struct {
	enforceSecurity    security.EnforceSecurityBooking
	transactionFactory repositories.TransactionFactory
	bookingRepository  bookingRepository
	notifier           *BookingNotifier
	clock              clock.Clock
	actorUserId        string
	createdBy          string
}

func (usecase BookingUsecase) today() time.Time {
	now := usecase.clock.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (usecase BookingUsecase) GetBookingDetails(ctx context.Context, bookingId string) (models.BookingDetails, error) {
	if err := usecase.enforceSecurity.ReadBooking(); err != nil {
		return models.BookingDetails{}, err
	}
	exec := usecase.transactionFactory.Executor()

	booking, err := usecase.bookingRepository.GetBookingById(ctx, exec, bookingId)
	if err != nil {
		return models.BookingDetails{}, err
	}
	payments, err := usecase.bookingRepository.ListPayments(ctx, exec,
		models.PaymentFilters{BookingId: &bookingId})
	if err != nil {
		return models.BookingDetails{}, err
	}
	extensions, err := usecase.bookingRepository.ListBookingExtensions(ctx, exec, bookingId)
	if err != nil {
		return models.BookingDetails{}, err
	}
	return models.BookingDetails{
		Booking:    booking,
		Payments:   payments,
		Extensions: extensions,
	}, nil
}

func (usecase BookingUsecase) ListBookings(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	if err := usecase.enforceSecurity.ReadBooking(); err != nil {
		return nil, err
	}
	return usecase.bookingRepository.ListBookings(ctx, usecase.transactionFactory.Executor(), filters)
}

func (usecase BookingUsecase) ListActiveBookings(ctx context.Context) ([]models.Booking, error) {
	return usecase.ListBookings(ctx, models.BookingFilters{
		Status: pure_utils.Ptr(models.BookingActive),
	})
}

func (usecase BookingUsecase) ListPayments(ctx context.Context, filters models.PaymentFilters) ([]models.Payment, error) {
	if err := usecase.enforceSecurity.ReadBooking(); err != nil {
		return nil, err
	}
	return usecase.bookingRepository.ListPayments(ctx, usecase.transactionFactory.Executor(), filters)
}

func (usecase BookingUsecase) ListBookingExtensions(ctx context.Context, bookingId string) ([]models.BookingExtension, error) {
	if err := usecase.enforceSecurity.ReadBooking(); err != nil {
		return nil, err
	}
	return usecase.bookingRepository.ListBookingExtensions(ctx,
		usecase.transactionFactory.Executor(), bookingId)
}

func (usecase BookingUsecase) TodaysPickups(ctx context.Context) ([]models.Booking, error) {
	if err := usecase.enforceSecurity.ReadBooking(); err != nil {
		return nil, err
	}
	return usecase.bookingRepository.ListBookingsStartingOn(ctx,
		usecase.transactionFactory.Executor(), usecase.today())
}

func (usecase BookingUsecase) TodaysReturns(ctx context.Context) ([]models.Booking, error) {
	if err := usecase.enforceSecurity.ReadBooking(); err != nil {
		return nil, err
	}
	return usecase.bookingRepository.ListBookingsEndingOn(ctx,
		usecase.transactionFactory.Executor(), usecase.today())
}

// CreateBooking reserves a car (when one is attached) for the date range,
// quoting the price from the car's daily fee. A booking starting today goes
// straight to Active.
func (usecase BookingUsecase) CreateBooking(ctx context.Context, input models.CreateBookingInput) (models.Booking, error) {
	if err := usecase.enforceSecurity.CreateBooking(); err != nil {
		return models.Booking{}, err
	}
	today := usecase.today()
	if err := models.ValidateBookingDates(input.StartDate, input.EndDate, today); err != nil {
		return models.Booking{}, err
	}
	if input.CreatedBy == nil {
		input.CreatedBy = &usecase.createdBy
	}

	booking, err := repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Booking, error) {
			customer, err := usecase.bookingRepository.GetCustomerById(ctx, tx, input.CustomerId)
			if err != nil {
				return models.Booking{}, err
			}
			if customer.Status == models.CustomerBlocked {
				return models.Booking{}, errors.Wrap(models.ErrCustomerBlocked,
					fmt.Sprintf("customer %s is blocked", customer.Id))
			}

			booking := models.Booking{
				Id:            uuid.NewString(),
				Reference:     models.NewBookingReference(usecase.clock.Now()),
				CustomerId:    input.CustomerId,
				CarId:         input.CarId,
				StartDate:     input.StartDate,
				EndDate:       input.EndDate,
				PickupTime:    input.PickupTime,
				DropoffTime:   input.DropoffTime,
				Status:        models.BookingReserved,
				PaymentStatus: models.PaymentUnpaid,
				Tax:           input.Tax,
				Discount:      input.Discount,
				Remarks:       input.Remarks,
				CreatedBy:     input.CreatedBy,
			}

			if input.CarId != nil {
				car, err := usecase.bookingRepository.GetCarById(ctx, tx, *input.CarId)
				if err != nil {
					return models.Booking{}, err
				}
				overlaps, err := usecase.bookingRepository.CountOverlappingBookings(ctx, tx,
					car.Id, input.StartDate, input.EndDate, nil)
				if err != nil {
					return models.Booking{}, err
				}
				if overlaps > 0 {
					return models.Booking{}, errors.Wrap(models.ErrCarNotAvailable,
						fmt.Sprintf("car %s already booked over this period", car.Id))
				}

				quote := models.ComputeQuote(car.FeePerDay, input.StartDate, input.EndDate,
					input.Tax, input.Discount)
				booking.Subtotal = quote.Subtotal
				booking.TotalAmount = quote.TotalAmount

				if !input.StartDate.After(today) {
					booking.Status = models.BookingActive
					err = usecase.bookingRepository.UpdateCarState(ctx, tx, car.Id,
						models.CarStatusBooked, models.CarBooked)
				} else {
					err = usecase.bookingRepository.UpdateCarState(ctx, tx, car.Id,
						car.Status, models.CarReserved)
				}
				if err != nil {
					return models.Booking{}, err
				}
			}

			if err := usecase.bookingRepository.CreateBooking(ctx, tx, booking); err != nil {
				return models.Booking{}, err
			}
			if err := usecase.refreshCustomerStats(ctx, tx, input.CustomerId); err != nil {
				return models.Booking{}, err
			}
			return usecase.bookingRepository.GetBookingById(ctx, tx, booking.Id)
		})
	if err != nil {
		return models.Booking{}, err
	}

	usecase.notifier.Notify(ctx, usecase.actorUserId, NotificationBooking,
		"Booking confirmed",
		fmt.Sprintf("Booking %s created for %s to %s", booking.Reference,
			booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02")),
		map[string]string{"booking_id": booking.Id})
	return booking, nil
}

// UpdateBooking edits the car, dates, times, remarks or status. Car and date
// changes re-check availability against the car the booking ends up on, then
// reprice it.
func (usecase BookingUsecase) UpdateBooking(ctx context.Context, input models.UpdateBookingInput) (models.Booking, error) {
	if err := usecase.enforceSecurity.UpdateBooking(); err != nil {
		return models.Booking{}, err
	}

	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Booking, error) {
			booking, err := usecase.bookingRepository.GetBookingById(ctx, tx, input.Id)
			if err != nil {
				return models.Booking{}, err
			}
			if booking.Status == models.BookingCancelled || booking.Status == models.BookingReturned {
				return models.Booking{}, errors.Wrap(models.ConflictError,
					"booking is closed and cannot be edited")
			}

			newStart := booking.StartDate
			newEnd := booking.EndDate
			if input.StartDate != nil {
				newStart = *input.StartDate
			}
			if input.EndDate != nil {
				newEnd = *input.EndDate
			}
			if newStart.After(newEnd) {
				return models.Booking{}, models.ErrInvalidBookingDates
			}

			// the car the booking ends up on, not the one it had
			newCarId := booking.CarId
			if input.CarId != nil {
				newCarId = input.CarId
			}
			datesChanged := input.StartDate != nil || input.EndDate != nil
			carChanged := input.CarId != nil &&
				(booking.CarId == nil || *booking.CarId != *input.CarId)

			if newCarId != nil && (datesChanged || carChanged) {
				overlaps, err := usecase.bookingRepository.CountOverlappingBookings(ctx, tx,
					*newCarId, newStart, newEnd, &booking.Id)
				if err != nil {
					return models.Booking{}, err
				}
				if overlaps > 0 {
					return models.Booking{}, errors.Wrap(models.ErrCarNotAvailable,
						"car already booked over the new period")
				}
			}

			if err := usecase.bookingRepository.UpdateBooking(ctx, tx, input); err != nil {
				return models.Booking{}, err
			}

			repriceNeeded := datesChanged || carChanged || input.Tax != nil || input.Discount != nil
			if repriceNeeded && newCarId != nil {
				car, err := usecase.bookingRepository.GetCarById(ctx, tx, *newCarId)
				if err != nil {
					return models.Booking{}, err
				}
				tax := booking.Tax
				discount := booking.Discount
				if input.Tax != nil {
					tax = *input.Tax
				}
				if input.Discount != nil {
					discount = *input.Discount
				}
				quote := models.ComputeQuote(car.FeePerDay, newStart, newEnd, tax, discount)
				newTotal := quote.TotalAmount.Add(booking.ExtensionCharges)
				if err := usecase.bookingRepository.UpdateBookingPricing(ctx, tx,
					booking.Id, quote.Subtotal, newTotal); err != nil {
					return models.Booking{}, err
				}
				if err := usecase.bookingRepository.UpdateBookingPaymentStatus(ctx, tx, booking.Id,
					models.DerivePaymentStatus(booking.PaidAmount, newTotal)); err != nil {
					return models.Booking{}, err
				}

				if carChanged {
					if booking.CarId != nil {
						if err := usecase.bookingRepository.UpdateCarState(ctx, tx, *booking.CarId,
							models.CarStatusActive, models.CarAvailable); err != nil {
							return models.Booking{}, err
						}
					}
					if !newStart.After(usecase.today()) {
						err = usecase.bookingRepository.UpdateCarState(ctx, tx, car.Id,
							models.CarStatusBooked, models.CarBooked)
					} else {
						err = usecase.bookingRepository.UpdateCarState(ctx, tx, car.Id,
							car.Status, models.CarReserved)
					}
					if err != nil {
						return models.Booking{}, err
					}
				}
			}

			if input.Status != nil && *input.Status == models.BookingCancelled {
				if booking.CarId != nil {
					if err := usecase.bookingRepository.UpdateCarState(ctx, tx, *booking.CarId,
						models.CarStatusActive, models.CarAvailable); err != nil {
						return models.Booking{}, err
					}
				}
				if err := usecase.refreshCustomerStats(ctx, tx, booking.CustomerId); err != nil {
					return models.Booking{}, err
				}
			}

			return usecase.bookingRepository.GetBookingById(ctx, tx, input.Id)
		})
}

// RecordPayment inserts the payment and recomputes the booking rollup from the
// payments table inside the same transaction.
func (usecase BookingUsecase) RecordPayment(ctx context.Context, input models.CreatePaymentInput) (models.Booking, error) {
	if err := usecase.enforceSecurity.RecordPayment(); err != nil {
		return models.Booking{}, err
	}
	if !input.Amount.IsPositive() {
		return models.Booking{}, errors.Wrap(models.BadParameterError, "payment amount must be positive")
	}

	booking, err := repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Booking, error) {
			booking, err := usecase.bookingRepository.GetBookingById(ctx, tx, input.BookingId)
			if err != nil {
				return models.Booking{}, err
			}
			if booking.Status == models.BookingCancelled {
				return models.Booking{}, errors.Wrap(models.ConflictError,
					"cannot record a payment on a cancelled booking")
			}

			if err := usecase.bookingRepository.CreatePayment(ctx, tx, uuid.NewString(), input); err != nil {
				return models.Booking{}, err
			}

			totalPaid, err := usecase.bookingRepository.SumSuccessfulPayments(ctx, tx, booking.Id)
			if err != nil {
				return models.Booking{}, err
			}
			// the amount due includes overdue and accident charges, not just
			// the quoted total
			amountDue := booking.TotalAmount.Add(booking.AccidentCharges)
			if booking.CarId != nil {
				car, err := usecase.bookingRepository.GetCarById(ctx, tx, *booking.CarId)
				if err != nil {
					return models.Booking{}, err
				}
				amountDue = amountDue.Add(booking.OverdueFee(car.FeePerDay, usecase.today()))
			}
			status := models.DerivePaymentStatus(totalPaid, amountDue)
			if err := usecase.bookingRepository.UpdateBookingPaymentRollup(ctx, tx, booking.Id,
				totalPaid, status, input.PaymentDate, input.Method); err != nil {
				return models.Booking{}, err
			}
			if err := usecase.refreshCustomerStats(ctx, tx, booking.CustomerId); err != nil {
				return models.Booking{}, err
			}
			return usecase.bookingRepository.GetBookingById(ctx, tx, booking.Id)
		})
	if err != nil {
		return models.Booking{}, err
	}

	usecase.notifier.Notify(ctx, usecase.actorUserId, NotificationPayment,
		"Payment received",
		fmt.Sprintf("Payment of %s recorded on booking %s", input.Amount.StringFixed(2), booking.Reference),
		map[string]string{"booking_id": booking.Id})
	return booking, nil
}

// ExtendBooking pushes the end date out, bills the extension fee and keeps an
// audit record of the previous end date.
func (usecase BookingUsecase) ExtendBooking(ctx context.Context, input models.ExtendBookingInput) (models.Booking, error) {
	if err := usecase.enforceSecurity.UpdateBooking(); err != nil {
		return models.Booking{}, err
	}
	if input.ExtensionFee.IsNegative() {
		return models.Booking{}, errors.Wrap(models.BadParameterError, "extension fee cannot be negative")
	}
	if input.CreatedBy == nil {
		input.CreatedBy = &usecase.createdBy
	}

	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Booking, error) {
			booking, err := usecase.bookingRepository.GetBookingById(ctx, tx, input.BookingId)
			if err != nil {
				return models.Booking{}, err
			}
			if booking.CarReturned {
				return models.Booking{}, models.ErrCarAlreadyReturned
			}
			if booking.Status == models.BookingCancelled {
				return models.Booking{}, errors.Wrap(models.ConflictError,
					"cannot extend a cancelled booking")
			}
			if !input.NewEndDate.After(booking.EndDate) {
				return models.Booking{}, models.ErrExtensionNotLater
			}

			if booking.CarId != nil {
				overlaps, err := usecase.bookingRepository.CountOverlappingBookings(ctx, tx,
					*booking.CarId, booking.EndDate, input.NewEndDate, &booking.Id)
				if err != nil {
					return models.Booking{}, err
				}
				if overlaps > 0 {
					return models.Booking{}, errors.Wrap(models.ErrCarNotAvailable,
						"car already booked over the extension period")
				}
			}

			extension := models.BookingExtension{
				BookingId:       booking.Id,
				PreviousEndDate: booking.EndDate,
				NewEndDate:      input.NewEndDate,
				ExtensionFee:    input.ExtensionFee,
				Reason:          input.Reason,
				Remarks:         input.Remarks,
				CreatedBy:       input.CreatedBy,
			}
			if err := usecase.bookingRepository.CreateBookingExtension(ctx, tx,
				uuid.NewString(), extension); err != nil {
				return models.Booking{}, err
			}

			newCharges := booking.ExtensionCharges.Add(input.ExtensionFee)
			newTotal := booking.TotalAmount.Add(input.ExtensionFee)
			if err := usecase.bookingRepository.ApplyBookingExtension(ctx, tx,
				booking.Id, input.NewEndDate, newCharges, newTotal); err != nil {
				return models.Booking{}, err
			}
			if err := usecase.bookingRepository.UpdateBookingPaymentStatus(ctx, tx, booking.Id,
				models.DerivePaymentStatus(booking.PaidAmount, newTotal)); err != nil {
				return models.Booking{}, err
			}
			return usecase.bookingRepository.GetBookingById(ctx, tx, booking.Id)
		})
}

// SwapCar moves the booking onto a replacement car. The original car id is
// preserved across repeated swaps.
func (usecase BookingUsecase) SwapCar(ctx context.Context, input models.SwapCarInput) (models.Booking, error) {
	if err := usecase.enforceSecurity.UpdateBooking(); err != nil {
		return models.Booking{}, err
	}

	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Booking, error) {
			booking, err := usecase.bookingRepository.GetBookingById(ctx, tx, input.BookingId)
			if err != nil {
				return models.Booking{}, err
			}
			if err := usecase.swapCarInTx(ctx, tx, booking, input.NewCarId, input.Reason); err != nil {
				return models.Booking{}, err
			}
			return usecase.bookingRepository.GetBookingById(ctx, tx, booking.Id)
		})
}

func (usecase BookingUsecase) swapCarInTx(ctx context.Context, tx repositories.Transaction,
	booking models.Booking, newCarId, reason string,
) error {
	if booking.CarReturned {
		return models.ErrCarAlreadyReturned
	}
	if booking.Status == models.BookingCancelled {
		return errors.Wrap(models.ConflictError, "cannot swap the car of a cancelled booking")
	}
	if booking.CarId == nil {
		return errors.Wrap(models.BadParameterError, "booking has no car to swap")
	}
	if *booking.CarId == newCarId {
		return errors.Wrap(models.BadParameterError, "replacement car is the current car")
	}

	newCar, err := usecase.bookingRepository.GetCarById(ctx, tx, newCarId)
	if err != nil {
		return err
	}
	overlaps, err := usecase.bookingRepository.CountOverlappingBookings(ctx, tx,
		newCar.Id, booking.StartDate, booking.EndDate, &booking.Id)
	if err != nil {
		return err
	}
	if overlaps > 0 {
		return errors.Wrap(models.ErrReplacementCarUnavailable,
			fmt.Sprintf("car %s already booked over this period", newCar.Id))
	}

	originalCarId := *booking.CarId
	if booking.OriginalCarId != nil {
		originalCarId = *booking.OriginalCarId
	}

	if err := usecase.bookingRepository.UpdateCarState(ctx, tx, *booking.CarId,
		models.CarStatusActive, models.CarAvailable); err != nil {
		return err
	}
	if err := usecase.bookingRepository.UpdateCarState(ctx, tx, newCar.Id,
		models.CarStatusBooked, models.CarBooked); err != nil {
		return err
	}
	return usecase.bookingRepository.ApplyCarSwap(ctx, tx,
		booking.Id, newCar.Id, originalCarId, usecase.clock.Now(), reason)
}

// ReturnCar closes the rental: the booking goes to Returned and the car comes
// back to the available pool.
func (usecase BookingUsecase) ReturnCar(ctx context.Context, bookingId string) (models.Booking, error) {
	if err := usecase.enforceSecurity.UpdateBooking(); err != nil {
		return models.Booking{}, err
	}

	booking, err := repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Booking, error) {
			booking, err := usecase.bookingRepository.GetBookingById(ctx, tx, bookingId)
			if err != nil {
				return models.Booking{}, err
			}
			if booking.CarReturned {
				return models.Booking{}, models.ErrCarAlreadyReturned
			}
			if booking.Status == models.BookingCancelled {
				return models.Booking{}, errors.Wrap(models.ConflictError,
					"cannot return a cancelled booking")
			}

			if err := usecase.bookingRepository.MarkBookingReturned(ctx, tx,
				booking.Id, usecase.clock.Now()); err != nil {
				return models.Booking{}, err
			}
			if booking.CarId != nil {
				if err := usecase.bookingRepository.UpdateCarState(ctx, tx, *booking.CarId,
					models.CarStatusReturned, models.CarAvailable); err != nil {
					return models.Booking{}, err
				}
			}
			if err := usecase.refreshCustomerStats(ctx, tx, booking.CustomerId); err != nil {
				return models.Booking{}, err
			}
			return usecase.bookingRepository.GetBookingById(ctx, tx, booking.Id)
		})
	if err != nil {
		return models.Booking{}, err
	}

	usecase.notifier.Notify(ctx, usecase.actorUserId, NotificationBooking,
		"Car returned",
		fmt.Sprintf("Booking %s closed", booking.Reference),
		map[string]string{"booking_id": booking.Id})
	return booking, nil
}

// ReportAccident records the accident on the booking and optionally swaps in a
// replacement car in the same transaction.
func (usecase BookingUsecase) ReportAccident(ctx context.Context, input models.ReportAccidentInput) (models.Booking, error) {
	if err := usecase.enforceSecurity.UpdateBooking(); err != nil {
		return models.Booking{}, err
	}
	if input.Charges.IsNegative() {
		return models.Booking{}, errors.Wrap(models.BadParameterError, "accident charges cannot be negative")
	}

	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Booking, error) {
			booking, err := usecase.bookingRepository.GetBookingById(ctx, tx, input.BookingId)
			if err != nil {
				return models.Booking{}, err
			}
			if booking.Status == models.BookingCancelled {
				return models.Booking{}, errors.Wrap(models.ConflictError,
					"cannot report an accident on a cancelled booking")
			}

			if err := usecase.bookingRepository.RecordBookingAccident(ctx, tx,
				booking.Id, input.Description, input.Date, input.Charges); err != nil {
				return models.Booking{}, err
			}
			if input.NewCarId != nil {
				if err := usecase.swapCarInTx(ctx, tx, booking, *input.NewCarId,
					"accident replacement"); err != nil {
					return models.Booking{}, err
				}
			}
			return usecase.bookingRepository.GetBookingById(ctx, tx, booking.Id)
		})
}

func (usecase BookingUsecase) refreshCustomerStats(ctx context.Context,
	tx repositories.Transaction, customerId string,
) error {
	stats, err := usecase.bookingRepository.GetCustomerBookingStats(ctx, tx, customerId)
	if err != nil {
		return err
	}
	return usecase.bookingRepository.UpdateCustomerStats(ctx, tx, customerId, stats)
}
