package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/driveline/rental-backend/dto"
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/usecases"
	"github.com/driveline/rental-backend/utils"
)

type BookingUriInput struct {
	BookingId string `uri:"booking_id" binding:"required,uuid"`
}

type listBookingsParams struct {
	Status        *string `form:"status" binding:"omitempty,oneof=Reserved Active Returned Cancelled Overdue"`
	PaymentStatus *string `form:"payment_status" binding:"omitempty,oneof=Unpaid Partial Paid"`
	CarReturned   *bool   `form:"car_returned"`
	CustomerId    *string `form:"customer_id" binding:"omitempty,uuid"`
	CarId         *string `form:"car_id" binding:"omitempty,uuid"`
	StartDate     *string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func adaptBookingFilters(params listBookingsParams) (models.BookingFilters, error) {
	filters := models.BookingFilters{
		CarReturned: params.CarReturned,
		CustomerId:  params.CustomerId,
		CarId:       params.CarId,
	}
	if params.Status != nil {
		status := models.BookingStatus(*params.Status)
		filters.Status = &status
	}
	if params.PaymentStatus != nil {
		paymentStatus := models.PaymentStatus(*params.PaymentStatus)
		filters.PaymentStatus = &paymentStatus
	}
	startDate, err := dto.ParseOptionalDate(params.StartDate)
	if err != nil {
		return models.BookingFilters{}, err
	}
	filters.StartDate = startDate
	endDate, err := dto.ParseOptionalDate(params.EndDate)
	if err != nil {
		return models.BookingFilters{}, err
	}
	filters.EndDate = endDate
	return filters, nil
}

func handleListBookings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params listBookingsParams
		if err := c.ShouldBind(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filters, err := adaptBookingFilters(params)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		bookings, err := usecase.ListBookings(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": pure_utils.Map(bookings, dto.AdaptBookingDto)})
	}
}

func handleListActiveBookings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		bookings, err := usecase.ListActiveBookings(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": pure_utils.Map(bookings, dto.AdaptBookingDto)})
	}
}

func handleTodaysPickups(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		bookings, err := usecase.TodaysPickups(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": pure_utils.Map(bookings, dto.AdaptBookingDto)})
	}
}

func handleTodaysReturns(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		bookings, err := usecase.TodaysReturns(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": pure_utils.Map(bookings, dto.AdaptBookingDto)})
	}
}

func handleGetBooking(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bookingInput BookingUriInput
		if err := c.ShouldBindUri(&bookingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		details, err := usecase.GetBookingDetails(ctx, bookingInput.BookingId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"booking": dto.AdaptBookingDetailsDto(details)})
	}
}

func handlePostBooking(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateBookingBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		input, err := dto.AdaptCreateBookingInput(data)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		booking, err := usecase.CreateBooking(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"booking": dto.AdaptBookingDto(booking)})
	}
}

func handlePatchBooking(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bookingInput BookingUriInput
		if err := c.ShouldBindUri(&bookingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.UpdateBookingBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		input, err := dto.AdaptUpdateBookingInput(bookingInput.BookingId, data)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		booking, err := usecase.UpdateBooking(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"booking": dto.AdaptBookingDto(booking)})
	}
}

func handlePostBookingPayment(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bookingInput BookingUriInput
		if err := c.ShouldBindUri(&bookingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.CreatePaymentBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		createdBy := utils.CredentialsFromCtx(ctx).ActorIdentity.Email
		input, err := dto.AdaptCreatePaymentInput(bookingInput.BookingId, data, time.Now(), createdBy)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		booking, err := usecase.RecordPayment(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"booking": dto.AdaptBookingDto(booking)})
	}
}

func handleExtendBooking(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bookingInput BookingUriInput
		if err := c.ShouldBindUri(&bookingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.ExtendBookingBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		input, err := dto.AdaptExtendBookingInput(bookingInput.BookingId, data)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		booking, err := usecase.ExtendBooking(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"booking": dto.AdaptBookingDto(booking)})
	}
}

func handleSwapBookingCar(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bookingInput BookingUriInput
		if err := c.ShouldBindUri(&bookingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.SwapCarBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		booking, err := usecase.SwapCar(ctx, models.SwapCarInput{
			BookingId: bookingInput.BookingId,
			NewCarId:  data.NewCarId,
			Reason:    data.Reason,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"booking": dto.AdaptBookingDto(booking)})
	}
}

func handleReturnBookingCar(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bookingInput BookingUriInput
		if err := c.ShouldBindUri(&bookingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		booking, err := usecase.ReturnCar(ctx, bookingInput.BookingId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"booking": dto.AdaptBookingDto(booking)})
	}
}

func handleReportBookingAccident(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bookingInput BookingUriInput
		if err := c.ShouldBindUri(&bookingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.ReportAccidentBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		input, err := dto.AdaptReportAccidentInput(bookingInput.BookingId, data)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		booking, err := usecase.ReportAccident(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"booking": dto.AdaptBookingDto(booking)})
	}
}
