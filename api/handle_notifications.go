package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driveline/rental-backend/dto"
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/usecases"
)

func handlePostDeviceToken(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.RegisterDeviceTokenBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUsecase()
		err := usecase.RegisterDeviceToken(ctx, models.RegisterDeviceTokenInput{
			Token:      data.Token,
			DeviceType: data.DeviceType,
			Platform:   data.Platform,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleDeleteDeviceToken(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		params := struct {
			Token string `form:"token" binding:"required"`
		}{}
		if err := c.ShouldBind(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUsecase()
		err := usecase.UnregisterDeviceToken(ctx, params.Token)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleGetNotificationPreferences(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUsecase()
		preferences, err := usecase.GetPreferences(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"preferences": dto.AdaptNotificationPreferenceDto(preferences)})
	}
}

func handlePatchNotificationPreferences(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.UpdateNotificationPreferenceBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUsecase()
		preferences, err := usecase.UpdatePreferences(ctx,
			dto.AdaptUpdateNotificationPreferenceInput("", data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"preferences": dto.AdaptNotificationPreferenceDto(preferences)})
	}
}
