package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driveline/rental-backend/dto"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/usecases"
)

type MenuItemUriInput struct {
	MenuItemId string `uri:"menu_item_id" binding:"required,uuid"`
}

func handleGetMenu(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewMenuUsecase()
		items, err := usecase.GetMenuTree(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu": pure_utils.Map(items, dto.AdaptMenuItemDto)})
	}
}

func handleListMenuItems(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewMenuUsecase()
		items, err := usecase.ListMenuItems(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu_items": pure_utils.Map(items, dto.AdaptMenuItemDto)})
	}
}

func handlePostMenuItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateMenuItemBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewMenuUsecase()
		item, err := usecase.CreateMenuItem(ctx, dto.AdaptCreateMenuItemInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"menu_item": dto.AdaptMenuItemDto(item)})
	}
}

func handlePatchMenuItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var menuItemInput MenuItemUriInput
		if err := c.ShouldBindUri(&menuItemInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.UpdateMenuItemBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewMenuUsecase()
		item, err := usecase.UpdateMenuItem(ctx, dto.AdaptUpdateMenuItemInput(menuItemInput.MenuItemId, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu_item": dto.AdaptMenuItemDto(item)})
	}
}

func handleDeleteMenuItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var menuItemInput MenuItemUriInput
		if err := c.ShouldBindUri(&menuItemInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewMenuUsecase()
		err := usecase.DeleteMenuItem(ctx, menuItemInput.MenuItemId)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
