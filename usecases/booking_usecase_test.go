package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/driveline/rental-backend/mocks"
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/repositories/clock"
)

type BookingUsecaseTestSuite struct {
	suite.Suite
	enforceSecurity        *mocks.EnforceSecurity
	transactionFactory     *mocks.TransactionFactory
	transaction            *mocks.Transaction
	bookingRepository      *mocks.BookingRepository
	notificationRepository *mocks.NotificationRepository
	pushSender             *mocks.PushSender

	today      time.Time
	customerId string
	carId      string
	bookingId  string
	customer   models.Customer
	car        models.Car
	booking    models.Booking

	securityError error
}

func (suite *BookingUsecaseTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.bookingRepository = new(mocks.BookingRepository)
	suite.notificationRepository = new(mocks.NotificationRepository)
	suite.pushSender = new(mocks.PushSender)

	suite.today = time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	suite.customerId = "7b3a6c32-f826-4bd4-8a7d-8c2f9d4c5f10"
	suite.carId = "b3f5c4ba-07f1-42f8-8f0a-2ad3c7a3c2b1"
	suite.bookingId = "8c2b9d41-5f3e-4a4a-9d2c-6e4f8a1b2c3d"

	suite.customer = models.Customer{
		Id:     suite.customerId,
		Name:   "Test Customer",
		Status: models.CustomerActive,
	}
	suite.car = models.Car{
		Id:        suite.carId,
		Name:      "Test Car",
		FeePerDay: decimal.NewFromInt(100),
		Status:    models.CarStatusActive,
	}
	suite.booking = models.Booking{
		Id:          suite.bookingId,
		Reference:   "BK-20260823-abcd1234",
		CustomerId:  suite.customerId,
		CarId:       &suite.carId,
		StartDate:   suite.today,
		EndDate:     suite.today.AddDate(0, 0, 3),
		Status:      models.BookingActive,
		TotalAmount: decimal.NewFromInt(300),
	}

	suite.securityError = models.ForbiddenError
}

func (suite *BookingUsecaseTestSuite) makeUsecase() BookingUsecase {
	return BookingUsecase{
		enforceSecurity:    suite.enforceSecurity,
		transactionFactory: suite.transactionFactory,
		bookingRepository:  suite.bookingRepository,
		notifier: &BookingNotifier{
			executorFactory:        suite.transactionFactory,
			notificationRepository: suite.notificationRepository,
			pushSender:             suite.pushSender,
		},
		clock:       clock.NewMock(suite.today),
		actorUserId: "4f2a1b3c-9d8e-4c7b-a6f5-1e2d3c4b5a69",
		createdBy:   "staff@driveline.test",
	}
}

// expectNotification wires the best-effort push path: no stored preference, no
// device tokens.
func (suite *BookingUsecaseTestSuite) expectNotification() {
	suite.transactionFactory.On("Executor").Return(suite.transaction)
	suite.notificationRepository.On("GetNotificationPreference", mock.Anything, suite.transaction,
		mock.Anything).Return(nil, nil)
	suite.notificationRepository.On("ListDeviceTokensForUser", mock.Anything, suite.transaction,
		mock.Anything).Return([]models.DeviceToken{}, nil)
}

func (suite *BookingUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.enforceSecurity.AssertExpectations(t)
	suite.bookingRepository.AssertExpectations(t)
	suite.notificationRepository.AssertExpectations(t)
	suite.pushSender.AssertExpectations(t)
}

func (suite *BookingUsecaseTestSuite) Test_CreateBooking_nominal() {
	input := models.CreateBookingInput{
		CustomerId: suite.customerId,
		CarId:      &suite.carId,
		StartDate:  suite.today,
		EndDate:    suite.today.AddDate(0, 0, 3),
	}

	suite.enforceSecurity.On("CreateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetCustomerById", mock.Anything, suite.transaction,
		suite.customerId).Return(suite.customer, nil)
	suite.bookingRepository.On("GetCarById", mock.Anything, suite.transaction,
		suite.carId).Return(suite.car, nil)
	suite.bookingRepository.On("CountOverlappingBookings", mock.Anything, suite.transaction,
		suite.carId, input.StartDate, input.EndDate, (*string)(nil)).Return(0, nil)
	// starts today: the car is booked right away
	suite.bookingRepository.On("UpdateCarState", mock.Anything, suite.transaction,
		suite.carId, models.CarStatusBooked, models.CarBooked).Return(nil)
	suite.bookingRepository.On("CreateBooking", mock.Anything, suite.transaction,
		mock.MatchedBy(func(booking models.Booking) bool {
			return booking.Status == models.BookingActive &&
				booking.Subtotal.Equal(decimal.NewFromInt(300)) &&
				booking.TotalAmount.Equal(decimal.NewFromInt(300))
		})).Return(nil)
	suite.bookingRepository.On("GetCustomerBookingStats", mock.Anything, suite.transaction,
		suite.customerId).Return(models.CustomerBookingStats{TotalBookings: 1}, nil)
	suite.bookingRepository.On("UpdateCustomerStats", mock.Anything, suite.transaction,
		suite.customerId, models.CustomerBookingStats{TotalBookings: 1}).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		mock.Anything).Return(suite.booking, nil)
	suite.expectNotification()

	booking, err := suite.makeUsecase().CreateBooking(context.Background(), input)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, suite.booking, booking)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_CreateBooking_blocked_customer() {
	input := models.CreateBookingInput{
		CustomerId: suite.customerId,
		StartDate:  suite.today,
		EndDate:    suite.today.AddDate(0, 0, 3),
	}
	blocked := suite.customer
	blocked.Status = models.CustomerBlocked

	suite.enforceSecurity.On("CreateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetCustomerById", mock.Anything, suite.transaction,
		suite.customerId).Return(blocked, nil)

	_, err := suite.makeUsecase().CreateBooking(context.Background(), input)

	assert.ErrorIs(suite.T(), err, models.ErrCustomerBlocked)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_CreateBooking_car_not_available() {
	input := models.CreateBookingInput{
		CustomerId: suite.customerId,
		CarId:      &suite.carId,
		StartDate:  suite.today,
		EndDate:    suite.today.AddDate(0, 0, 3),
	}

	suite.enforceSecurity.On("CreateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetCustomerById", mock.Anything, suite.transaction,
		suite.customerId).Return(suite.customer, nil)
	suite.bookingRepository.On("GetCarById", mock.Anything, suite.transaction,
		suite.carId).Return(suite.car, nil)
	suite.bookingRepository.On("CountOverlappingBookings", mock.Anything, suite.transaction,
		suite.carId, input.StartDate, input.EndDate, (*string)(nil)).Return(1, nil)

	_, err := suite.makeUsecase().CreateBooking(context.Background(), input)

	assert.ErrorIs(suite.T(), err, models.ErrCarNotAvailable)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_CreateBooking_start_date_in_past() {
	input := models.CreateBookingInput{
		CustomerId: suite.customerId,
		StartDate:  suite.today.AddDate(0, 0, -1),
		EndDate:    suite.today.AddDate(0, 0, 3),
	}

	suite.enforceSecurity.On("CreateBooking").Return(nil)

	_, err := suite.makeUsecase().CreateBooking(context.Background(), input)

	assert.ErrorIs(suite.T(), err, models.ErrStartDateInPast)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_CreateBooking_security() {
	suite.enforceSecurity.On("CreateBooking").Return(suite.securityError)

	_, err := suite.makeUsecase().CreateBooking(context.Background(), models.CreateBookingInput{
		CustomerId: suite.customerId,
		StartDate:  suite.today,
		EndDate:    suite.today.AddDate(0, 0, 3),
	})

	assert.ErrorIs(suite.T(), err, suite.securityError)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_RecordPayment_nominal() {
	paymentDate := suite.today.Add(10 * time.Hour)
	input := models.CreatePaymentInput{
		BookingId:   suite.bookingId,
		Amount:      decimal.NewFromInt(120),
		PaymentDate: paymentDate,
		Method:      models.PaymentMethodCash,
	}
	totalPaid := decimal.NewFromInt(120)

	suite.enforceSecurity.On("RecordPayment").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(suite.booking, nil)
	suite.bookingRepository.On("CreatePayment", mock.Anything, suite.transaction,
		mock.Anything, input).Return(nil)
	suite.bookingRepository.On("SumSuccessfulPayments", mock.Anything, suite.transaction,
		suite.bookingId).Return(totalPaid, nil)
	suite.bookingRepository.On("GetCarById", mock.Anything, suite.transaction,
		suite.carId).Return(suite.car, nil)
	suite.bookingRepository.On("UpdateBookingPaymentRollup", mock.Anything, suite.transaction,
		suite.bookingId, totalPaid, models.PaymentPartial, paymentDate, models.PaymentMethodCash).Return(nil)
	suite.bookingRepository.On("GetCustomerBookingStats", mock.Anything, suite.transaction,
		suite.customerId).Return(models.CustomerBookingStats{}, nil)
	suite.bookingRepository.On("UpdateCustomerStats", mock.Anything, suite.transaction,
		suite.customerId, models.CustomerBookingStats{}).Return(nil)
	suite.expectNotification()

	booking, err := suite.makeUsecase().RecordPayment(context.Background(), input)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, suite.booking, booking)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_RecordPayment_accident_charges_keep_booking_partial() {
	damaged := suite.booking
	damaged.AccidentCharges = decimal.NewFromInt(100)
	paymentDate := suite.today.Add(10 * time.Hour)
	input := models.CreatePaymentInput{
		BookingId:   suite.bookingId,
		Amount:      decimal.NewFromInt(300),
		PaymentDate: paymentDate,
		Method:      models.PaymentMethodCash,
	}
	totalPaid := decimal.NewFromInt(300)

	suite.enforceSecurity.On("RecordPayment").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(damaged, nil)
	suite.bookingRepository.On("CreatePayment", mock.Anything, suite.transaction,
		mock.Anything, input).Return(nil)
	suite.bookingRepository.On("SumSuccessfulPayments", mock.Anything, suite.transaction,
		suite.bookingId).Return(totalPaid, nil)
	suite.bookingRepository.On("GetCarById", mock.Anything, suite.transaction,
		suite.carId).Return(suite.car, nil)
	// the quoted total is covered, but the accident charges are not
	suite.bookingRepository.On("UpdateBookingPaymentRollup", mock.Anything, suite.transaction,
		suite.bookingId, totalPaid, models.PaymentPartial, paymentDate, models.PaymentMethodCash).Return(nil)
	suite.bookingRepository.On("GetCustomerBookingStats", mock.Anything, suite.transaction,
		suite.customerId).Return(models.CustomerBookingStats{}, nil)
	suite.bookingRepository.On("UpdateCustomerStats", mock.Anything, suite.transaction,
		suite.customerId, models.CustomerBookingStats{}).Return(nil)
	suite.expectNotification()

	_, err := suite.makeUsecase().RecordPayment(context.Background(), input)

	assert.NoError(suite.T(), err)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_RecordPayment_rejects_non_positive_amount() {
	suite.enforceSecurity.On("RecordPayment").Return(nil)

	_, err := suite.makeUsecase().RecordPayment(context.Background(), models.CreatePaymentInput{
		BookingId: suite.bookingId,
		Amount:    decimal.Zero,
	})

	assert.ErrorIs(suite.T(), err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_UpdateBooking_assign_car_to_reserved_booking() {
	carless := suite.booking
	carless.CarId = nil
	carless.Status = models.BookingReserved
	input := models.UpdateBookingInput{
		Id:    suite.bookingId,
		CarId: &suite.carId,
	}

	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(carless, nil)
	// assigning a car must go through the double-booking check
	suite.bookingRepository.On("CountOverlappingBookings", mock.Anything, suite.transaction,
		suite.carId, carless.StartDate, carless.EndDate, &suite.bookingId).Return(0, nil)
	suite.bookingRepository.On("UpdateBooking", mock.Anything, suite.transaction, input).Return(nil)
	suite.bookingRepository.On("GetCarById", mock.Anything, suite.transaction,
		suite.carId).Return(suite.car, nil)
	suite.bookingRepository.On("UpdateBookingPricing", mock.Anything, suite.transaction,
		suite.bookingId, decimal.NewFromInt(300), decimal.NewFromInt(300)).Return(nil)
	suite.bookingRepository.On("UpdateBookingPaymentStatus", mock.Anything, suite.transaction,
		suite.bookingId, models.PaymentUnpaid).Return(nil)
	// starts today: the car is booked right away
	suite.bookingRepository.On("UpdateCarState", mock.Anything, suite.transaction,
		suite.carId, models.CarStatusBooked, models.CarBooked).Return(nil)

	_, err := suite.makeUsecase().UpdateBooking(context.Background(), input)

	assert.NoError(suite.T(), err)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_UpdateBooking_assign_car_unavailable() {
	carless := suite.booking
	carless.CarId = nil
	carless.Status = models.BookingReserved
	input := models.UpdateBookingInput{
		Id:    suite.bookingId,
		CarId: &suite.carId,
	}

	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(carless, nil)
	suite.bookingRepository.On("CountOverlappingBookings", mock.Anything, suite.transaction,
		suite.carId, carless.StartDate, carless.EndDate, &suite.bookingId).Return(1, nil)

	_, err := suite.makeUsecase().UpdateBooking(context.Background(), input)

	assert.ErrorIs(suite.T(), err, models.ErrCarNotAvailable)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_UpdateBooking_replacement_car_checks_new_car() {
	newCarId := "f1a2b3c4-d5e6-4f70-8a9b-0c1d2e3f4a50"
	input := models.UpdateBookingInput{
		Id:    suite.bookingId,
		CarId: &newCarId,
	}

	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(suite.booking, nil)
	// availability is checked on the incoming car, not the one being replaced
	suite.bookingRepository.On("CountOverlappingBookings", mock.Anything, suite.transaction,
		newCarId, suite.booking.StartDate, suite.booking.EndDate, &suite.bookingId).Return(1, nil)

	_, err := suite.makeUsecase().UpdateBooking(context.Background(), input)

	assert.ErrorIs(suite.T(), err, models.ErrCarNotAvailable)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_UpdateBooking_date_change_rechecks_availability() {
	newEndDate := suite.booking.EndDate.AddDate(0, 0, 4)
	input := models.UpdateBookingInput{
		Id:      suite.bookingId,
		EndDate: &newEndDate,
	}

	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(suite.booking, nil)
	suite.bookingRepository.On("CountOverlappingBookings", mock.Anything, suite.transaction,
		suite.carId, suite.booking.StartDate, newEndDate, &suite.bookingId).Return(1, nil)

	_, err := suite.makeUsecase().UpdateBooking(context.Background(), input)

	assert.ErrorIs(suite.T(), err, models.ErrCarNotAvailable)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_ExtendBooking_must_be_later() {
	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(suite.booking, nil)

	_, err := suite.makeUsecase().ExtendBooking(context.Background(), models.ExtendBookingInput{
		BookingId:    suite.bookingId,
		NewEndDate:   suite.booking.EndDate,
		ExtensionFee: decimal.NewFromInt(50),
	})

	assert.ErrorIs(suite.T(), err, models.ErrExtensionNotLater)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_ExtendBooking_nominal() {
	newEndDate := suite.booking.EndDate.AddDate(0, 0, 2)
	input := models.ExtendBookingInput{
		BookingId:    suite.bookingId,
		NewEndDate:   newEndDate,
		ExtensionFee: decimal.NewFromInt(50),
	}
	newTotal := decimal.NewFromInt(350)

	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(suite.booking, nil)
	suite.bookingRepository.On("CountOverlappingBookings", mock.Anything, suite.transaction,
		suite.carId, suite.booking.EndDate, newEndDate, &suite.bookingId).Return(0, nil)
	suite.bookingRepository.On("CreateBookingExtension", mock.Anything, suite.transaction,
		mock.Anything, mock.MatchedBy(func(extension models.BookingExtension) bool {
			return extension.PreviousEndDate.Equal(suite.booking.EndDate) &&
				extension.NewEndDate.Equal(newEndDate)
		})).Return(nil)
	suite.bookingRepository.On("ApplyBookingExtension", mock.Anything, suite.transaction,
		suite.bookingId, newEndDate, decimal.NewFromInt(50), newTotal).Return(nil)
	suite.bookingRepository.On("UpdateBookingPaymentStatus", mock.Anything, suite.transaction,
		suite.bookingId, models.PaymentUnpaid).Return(nil)

	booking, err := suite.makeUsecase().ExtendBooking(context.Background(), input)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, suite.booking, booking)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_SwapCar_same_car() {
	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(suite.booking, nil)

	_, err := suite.makeUsecase().SwapCar(context.Background(), models.SwapCarInput{
		BookingId: suite.bookingId,
		NewCarId:  suite.carId,
		Reason:    "customer request",
	})

	assert.ErrorIs(suite.T(), err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_SwapCar_keeps_original_car_id() {
	newCarId := "d4e5f6a7-b8c9-4d0e-9f1a-2b3c4d5e6f70"
	firstCarId := "e5f6a7b8-c9d0-4e1f-a2b3-c4d5e6f7a810"
	booking := suite.booking
	booking.OriginalCarId = &firstCarId
	newCar := models.Car{Id: newCarId, FeePerDay: decimal.NewFromInt(90)}

	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(booking, nil)
	suite.bookingRepository.On("GetCarById", mock.Anything, suite.transaction,
		newCarId).Return(newCar, nil)
	suite.bookingRepository.On("CountOverlappingBookings", mock.Anything, suite.transaction,
		newCarId, booking.StartDate, booking.EndDate, &suite.bookingId).Return(0, nil)
	suite.bookingRepository.On("UpdateCarState", mock.Anything, suite.transaction,
		suite.carId, models.CarStatusActive, models.CarAvailable).Return(nil)
	suite.bookingRepository.On("UpdateCarState", mock.Anything, suite.transaction,
		newCarId, models.CarStatusBooked, models.CarBooked).Return(nil)
	// the very first car id survives repeated swaps
	suite.bookingRepository.On("ApplyCarSwap", mock.Anything, suite.transaction,
		suite.bookingId, newCarId, firstCarId, suite.today, "damage").Return(nil)

	_, err := suite.makeUsecase().SwapCar(context.Background(), models.SwapCarInput{
		BookingId: suite.bookingId,
		NewCarId:  newCarId,
		Reason:    "damage",
	})

	assert.NoError(suite.T(), err)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_ReturnCar_nominal() {
	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(suite.booking, nil)
	suite.bookingRepository.On("MarkBookingReturned", mock.Anything, suite.transaction,
		suite.bookingId, suite.today).Return(nil)
	suite.bookingRepository.On("UpdateCarState", mock.Anything, suite.transaction,
		suite.carId, models.CarStatusReturned, models.CarAvailable).Return(nil)
	suite.bookingRepository.On("GetCustomerBookingStats", mock.Anything, suite.transaction,
		suite.customerId).Return(models.CustomerBookingStats{}, nil)
	suite.bookingRepository.On("UpdateCustomerStats", mock.Anything, suite.transaction,
		suite.customerId, models.CustomerBookingStats{}).Return(nil)
	suite.expectNotification()

	booking, err := suite.makeUsecase().ReturnCar(context.Background(), suite.bookingId)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, suite.booking, booking)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_ReturnCar_already_returned() {
	returned := suite.booking
	returned.CarReturned = true

	suite.enforceSecurity.On("UpdateBooking").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.bookingRepository.On("GetBookingById", mock.Anything, suite.transaction,
		suite.bookingId).Return(returned, nil)

	_, err := suite.makeUsecase().ReturnCar(context.Background(), suite.bookingId)

	assert.ErrorIs(suite.T(), err, models.ErrCarAlreadyReturned)
	suite.AssertExpectations()
}

func (suite *BookingUsecaseTestSuite) Test_ListActiveBookings() {
	expected := []models.Booking{suite.booking}

	suite.enforceSecurity.On("ReadBooking").Return(nil)
	suite.transactionFactory.On("Executor").Return(suite.transaction)
	suite.bookingRepository.On("ListBookings", mock.Anything, suite.transaction,
		models.BookingFilters{Status: pure_utils.Ptr(models.BookingActive)}).Return(expected, nil)

	bookings, err := suite.makeUsecase().ListActiveBookings(context.Background())

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, expected, bookings)
	suite.AssertExpectations()
}

func TestBookingUsecase(t *testing.T) {
	suite.Run(t, new(BookingUsecaseTestSuite))
}
