package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driveline/rental-backend/dto"
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/usecases"
)

type listPaymentsParams struct {
	BookingId    *string `form:"booking_id" binding:"omitempty,uuid"`
	Method       *string `form:"method" binding:"omitempty,oneof=Cash Credit Debit Online"`
	IsSuccessful *bool   `form:"is_successful"`
}

func handleListPayments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params listPaymentsParams
		if err := c.ShouldBind(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filters := models.PaymentFilters{
			BookingId:    params.BookingId,
			IsSuccessful: params.IsSuccessful,
		}
		if params.Method != nil {
			method := models.PaymentMethod(*params.Method)
			filters.Method = &method
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		payments, err := usecase.ListPayments(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": pure_utils.Map(payments, dto.AdaptPaymentDto)})
	}
}

func handleListBookingPayments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bookingInput BookingUriInput
		if err := c.ShouldBindUri(&bookingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		payments, err := usecase.ListPayments(ctx, models.PaymentFilters{
			BookingId: &bookingInput.BookingId,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": pure_utils.Map(payments, dto.AdaptPaymentDto)})
	}
}

func handleListBookingExtensions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bookingInput BookingUriInput
		if err := c.ShouldBindUri(&bookingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBookingUsecase()
		extensions, err := usecase.ListBookingExtensions(ctx, bookingInput.BookingId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"extensions": pure_utils.Map(extensions, dto.AdaptBookingExtensionDto),
		})
	}
}
