package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/repositories/dbmodels"
)

func (repo *RentalDbRepository) GetMenuItemById(ctx context.Context, exec Executor, menuItemId string) (models.MenuItem, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectMenuItemColumn...).
			From(dbmodels.TABLE_MENU_ITEMS).
			Where(squirrel.Eq{"id": menuItemId}),
		dbmodels.AdaptMenuItem,
	)
}

// ListMenuItems returns the flat list ordered for tree assembly.
func (repo *RentalDbRepository) ListMenuItems(ctx context.Context, exec Executor, onlyActive bool) ([]models.MenuItem, error) {
	query := NewQueryBuilder().Select(dbmodels.SelectMenuItemColumn...).
		From(dbmodels.TABLE_MENU_ITEMS).
		OrderBy("item_order ASC", "title ASC")

	if onlyActive {
		query = query.Where(squirrel.Eq{"is_active": true})
	}
	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptMenuItem)
}

func (repo *RentalDbRepository) CreateMenuItem(ctx context.Context, exec Executor,
	newMenuItemId string, input models.CreateMenuItemInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_MENU_ITEMS).
			Columns(
				"id",
				"title",
				"icon",
				"route",
				"item_order",
				"parent_id",
				"roles",
				"is_active",
			).
			Values(
				newMenuItemId,
				input.Title,
				input.Icon,
				input.Route,
				input.Order,
				input.ParentId,
				pure_utils.Map(input.Roles, models.Role.String),
				input.IsActive,
			),
	)
}

func (repo *RentalDbRepository) UpdateMenuItem(ctx context.Context, exec Executor, input models.UpdateMenuItemInput) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_MENU_ITEMS).Where(squirrel.Eq{
		"id": input.Id,
	})

	if input.Title != nil {
		query = query.Set("title", *input.Title)
	}
	if input.Icon != nil {
		query = query.Set("icon", *input.Icon)
	}
	if input.Route != nil {
		query = query.Set("route", *input.Route)
	}
	if input.Order != nil {
		query = query.Set("item_order", *input.Order)
	}
	if input.ParentId != nil {
		query = query.Set("parent_id", *input.ParentId)
	}
	if input.Roles != nil {
		query = query.Set("roles", pure_utils.Map(input.Roles, models.Role.String))
	}
	if input.IsActive != nil {
		query = query.Set("is_active", *input.IsActive)
	}
	return ExecBuilder(ctx, exec, query)
}

func (repo *RentalDbRepository) DeleteMenuItem(ctx context.Context, exec Executor, menuItemId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_MENU_ITEMS).Where(squirrel.Eq{"id": menuItemId}),
	)
}
