package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/dto"
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/usecases"
	"github.com/driveline/rental-backend/utils"
)

type CarUriInput struct {
	CarId string `uri:"car_id" binding:"required,uuid"`
}

type listCarsParams struct {
	Type                  *string `form:"type"`
	Status                *string `form:"status" binding:"omitempty,oneof=Active Booked Returned Overdue"`
	Availability          *string `form:"availability" binding:"omitempty,oneof=Available Reserved Booked"`
	Gearbox               *string `form:"gearbox" binding:"omitempty,oneof=Automatic Manual"`
	Color                 *string `form:"color"`
	Seats                 *int    `form:"seats"`
	MinSeats              *int    `form:"min_seats"`
	MinFee                *string `form:"min_fee"`
	MaxFee                *string `form:"max_fee"`
	CollisionDamageWaiver *bool   `form:"collision_damage_waiver"`
	ThirdPartyLiability   *bool   `form:"third_party_liability"`
}

func adaptCarFilters(params listCarsParams) (models.CarFilters, error) {
	filters := models.CarFilters{
		Color:                 params.Color,
		Seats:                 params.Seats,
		MinSeats:              params.MinSeats,
		CollisionDamageWaiver: params.CollisionDamageWaiver,
		ThirdPartyLiability:   params.ThirdPartyLiability,
	}
	if params.Type != nil {
		carType := models.CarType(*params.Type)
		filters.Type = &carType
	}
	if params.Status != nil {
		status := models.CarStatus(*params.Status)
		filters.Status = &status
	}
	if params.Availability != nil {
		availability := models.CarAvailability(*params.Availability)
		filters.Availability = &availability
	}
	if params.Gearbox != nil {
		gearbox := models.Gearbox(*params.Gearbox)
		filters.Gearbox = &gearbox
	}
	if params.MinFee != nil {
		minFee, err := decimal.NewFromString(*params.MinFee)
		if err != nil {
			return models.CarFilters{}, models.BadParameterError
		}
		filters.MinFee = &minFee
	}
	if params.MaxFee != nil {
		maxFee, err := decimal.NewFromString(*params.MaxFee)
		if err != nil {
			return models.CarFilters{}, models.BadParameterError
		}
		filters.MaxFee = &maxFee
	}
	return filters, nil
}

func handleListCars(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params listCarsParams
		if err := c.ShouldBind(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filters, err := adaptCarFilters(params)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCarUsecase()
		cars, err := usecase.ListCars(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"cars": pure_utils.Map(cars, dto.AdaptCarDto)})
	}
}

func handleGetCar(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var carInput CarUriInput
		if err := c.ShouldBindUri(&carInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCarUsecase()
		car, err := usecase.GetCar(ctx, carInput.CarId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"car": dto.AdaptCarDto(car)})
	}
}

func handlePostCar(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateCarBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		createdBy := utils.CredentialsFromCtx(ctx).ActorIdentity.Email
		input, err := dto.AdaptCreateCarInput(data, createdBy)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCarUsecase()
		car, err := usecase.CreateCar(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"car": dto.AdaptCarDto(car)})
	}
}

func handlePatchCar(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var carInput CarUriInput
		if err := c.ShouldBindUri(&carInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.UpdateCarBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		input, err := dto.AdaptUpdateCarInput(carInput.CarId, data)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCarUsecase()
		car, err := usecase.UpdateCar(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"car": dto.AdaptCarDto(car)})
	}
}

func handleDeleteCar(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var carInput CarUriInput
		if err := c.ShouldBindUri(&carInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCarUsecase()
		err := usecase.DeleteCar(ctx, carInput.CarId)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
