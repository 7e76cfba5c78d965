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

type UserUriInput struct {
	UserId string `uri:"user_id" binding:"required,uuid"`
}

func handleGetAllUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		users, err := usecase.ListUsers(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": pure_utils.Map(users, dto.AdaptUserDto)})
	}
}

func handleGetUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput UserUriInput
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := usecase.GetUser(ctx, userInput.UserId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handlePostUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateUserBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := usecase.CreateUser(ctx, models.CreateUserInput{
			Email:                data.Email,
			FullName:             data.FullName,
			Password:             data.Password,
			Role:                 models.RoleFromString(data.Role),
			UserImageUrl:         data.UserImageUrl.Ptr(),
			IsFingerprintEnabled: data.IsFingerprintEnabled,
			LoginDeviceInfo:      data.LoginDeviceInfo,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handlePatchUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput UserUriInput
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.UpdateUserBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		input := models.UpdateUserInput{
			Id:              userInput.UserId,
			FullName:        data.FullName.Ptr(),
			UserImageUrl:    data.UserImageUrl.Ptr(),
			LoginDeviceInfo: data.LoginDeviceInfo,
		}
		if data.Role.Valid {
			role := models.RoleFromString(data.Role.String)
			input.Role = &role
		}
		if data.IsFingerprintEnabled.Valid {
			input.IsFingerprintEnabled = &data.IsFingerprintEnabled.Bool
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := usecase.UpdateUser(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handleChangeUserPassword(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput UserUriInput
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.ChangePasswordBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		err := usecase.ChangePassword(ctx, userInput.UserId, data.Password)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleDeleteUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput UserUriInput
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		err := usecase.DeleteUser(ctx, userInput.UserId)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleGetCredentials() func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)
		c.JSON(http.StatusOK, gin.H{
			"credentials": dto.AdaptCredentialDto(creds),
		})
	}
}
