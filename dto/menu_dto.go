package dto

import (
	"github.com/guregu/null/v5"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
)

type APIMenuItem struct {
	Id       string        `json:"id"`
	Title    string        `json:"title"`
	Icon     string        `json:"icon"`
	Route    *string       `json:"route"`
	Order    int           `json:"order"`
	ParentId *string       `json:"parent_id"`
	Roles    []string      `json:"roles"`
	IsActive bool          `json:"is_active"`
	Children []APIMenuItem `json:"children"`
}

func AdaptMenuItemDto(item models.MenuItem) APIMenuItem {
	return APIMenuItem{
		Id:       item.Id,
		Title:    item.Title,
		Icon:     item.Icon,
		Route:    item.Route,
		Order:    item.Order,
		ParentId: item.ParentId,
		Roles:    pure_utils.Map(item.Roles, models.Role.String),
		IsActive: item.IsActive,
		Children: pure_utils.Map(item.Children, AdaptMenuItemDto),
	}
}

type CreateMenuItemBody struct {
	Title    string      `json:"title" binding:"required"`
	Icon     string      `json:"icon"`
	Route    null.String `json:"route"`
	Order    int         `json:"order"`
	ParentId null.String `json:"parent_id" binding:"omitempty,uuid"`
	Roles    []string    `json:"roles" binding:"omitempty,dive,oneof=VIEWER STAFF ADMIN"`
	IsActive *bool       `json:"is_active"`
}

func AdaptCreateMenuItemInput(body CreateMenuItemBody) models.CreateMenuItemInput {
	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}
	return models.CreateMenuItemInput{
		Title:    body.Title,
		Icon:     body.Icon,
		Route:    body.Route.Ptr(),
		Order:    body.Order,
		ParentId: body.ParentId.Ptr(),
		Roles:    pure_utils.Map(body.Roles, func(r string) models.Role { return models.RoleFromString(r) }),
		IsActive: isActive,
	}
}

type UpdateMenuItemBody struct {
	Title    null.String `json:"title"`
	Icon     null.String `json:"icon"`
	Route    null.String `json:"route"`
	Order    null.Int    `json:"order"`
	ParentId null.String `json:"parent_id" binding:"omitempty,uuid"`
	Roles    []string    `json:"roles" binding:"omitempty,dive,oneof=VIEWER STAFF ADMIN"`
	IsActive null.Bool   `json:"is_active"`
}

func AdaptUpdateMenuItemInput(menuItemId string, body UpdateMenuItemBody) models.UpdateMenuItemInput {
	input := models.UpdateMenuItemInput{
		Id:       menuItemId,
		Title:    body.Title.Ptr(),
		Icon:     body.Icon.Ptr(),
		Route:    body.Route.Ptr(),
		ParentId: body.ParentId.Ptr(),
	}
	if body.Order.Valid {
		order := int(body.Order.Int64)
		input.Order = &order
	}
	if body.Roles != nil {
		input.Roles = pure_utils.Map(body.Roles, func(r string) models.Role { return models.RoleFromString(r) })
	}
	if body.IsActive.Valid {
		input.IsActive = &body.IsActive.Bool
	}
	return input
}
