package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driveline/rental-backend/dto"
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/usecases"
	"github.com/driveline/rental-backend/utils"
)

type CustomerUriInput struct {
	CustomerId string `uri:"customer_id" binding:"required,uuid"`
}

func handleListCustomers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		params := struct {
			Status *string `form:"status" binding:"omitempty,oneof=Active Blocked Inactive"`
			Search *string `form:"search"`
		}{}
		if err := c.ShouldBind(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var status *models.CustomerStatus
		if params.Status != nil {
			s := models.CustomerStatus(*params.Status)
			status = &s
		}

		usecase := usecasesWithCreds(ctx, uc).NewCustomerUsecase()
		customers, err := usecase.ListCustomers(ctx, status, params.Search)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"customers": pure_utils.Map(customers, dto.AdaptCustomerDto)})
	}
}

func handleGetCustomer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var customerInput CustomerUriInput
		if err := c.ShouldBindUri(&customerInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCustomerUsecase()
		customer, err := usecase.GetCustomer(ctx, customerInput.CustomerId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": dto.AdaptCustomerDto(customer)})
	}
}

func handlePostCustomer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateCustomerBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		createdBy := utils.CredentialsFromCtx(ctx).ActorIdentity.Email
		input, err := dto.AdaptCreateCustomerInput(data, createdBy)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCustomerUsecase()
		customer, err := usecase.CreateCustomer(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"customer": dto.AdaptCustomerDto(customer)})
	}
}

func handlePatchCustomer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var customerInput CustomerUriInput
		if err := c.ShouldBindUri(&customerInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.UpdateCustomerBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		input, err := dto.AdaptUpdateCustomerInput(customerInput.CustomerId, data)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCustomerUsecase()
		customer, err := usecase.UpdateCustomer(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": dto.AdaptCustomerDto(customer)})
	}
}

func handleRefreshCustomerStats(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var customerInput CustomerUriInput
		if err := c.ShouldBindUri(&customerInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCustomerUsecase()
		customer, err := usecase.RefreshCustomerStats(ctx, customerInput.CustomerId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": dto.AdaptCustomerDto(customer)})
	}
}

func handleDeleteCustomer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var customerInput CustomerUriInput
		if err := c.ShouldBindUri(&customerInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCustomerUsecase()
		err := usecase.DeleteCustomer(ctx, customerInput.CustomerId)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
