package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/usecases/security"
)

type menuRepository interface {
	GetMenuItemById(ctx context.Context, exec repositories.Executor, menuItemId string) (models.MenuItem, error)
	ListMenuItems(ctx context.Context, exec repositories.Executor, onlyActive bool) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, exec repositories.Executor, newMenuItemId string,
		input models.CreateMenuItemInput) error
	UpdateMenuItem(ctx context.Context, exec repositories.Executor, input models.UpdateMenuItemInput) error
	DeleteMenuItem(ctx context.Context, exec repositories.Executor, menuItemId string) error
}

type MenuUsecase struct {
	enforceSecurity    security.EnforceSecurityMenu
	transactionFactory repositories.TransactionFactory
	menuRepository     menuRepository
	role               models.Role
}

// GetMenuTree returns the active navigation tree visible to the caller's role.
// A child only shows under a parent the caller can also see.
func (usecase MenuUsecase) GetMenuTree(ctx context.Context) ([]models.MenuItem, error) {
	if err := usecase.enforceSecurity.ReadMenu(); err != nil {
		return nil, err
	}
	items, err := usecase.menuRepository.ListMenuItems(ctx, usecase.transactionFactory.Executor(), true)
	if err != nil {
		return nil, err
	}
	return BuildMenuTree(items, usecase.role), nil
}

// ListMenuItems is the flat admin view, inactive items included.
func (usecase MenuUsecase) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	if err := usecase.enforceSecurity.EditMenu(); err != nil {
		return nil, err
	}
	return usecase.menuRepository.ListMenuItems(ctx, usecase.transactionFactory.Executor(), false)
}

func (usecase MenuUsecase) CreateMenuItem(ctx context.Context, input models.CreateMenuItemInput) (models.MenuItem, error) {
	if err := usecase.enforceSecurity.EditMenu(); err != nil {
		return models.MenuItem{}, err
	}
	if input.Title == "" {
		return models.MenuItem{}, errors.Wrap(models.BadParameterError, "menu item title is required")
	}
	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.MenuItem, error) {
			if input.ParentId != nil {
				if _, err := usecase.menuRepository.GetMenuItemById(ctx, tx, *input.ParentId); err != nil {
					return models.MenuItem{}, err
				}
			}
			newMenuItemId := uuid.NewString()
			if err := usecase.menuRepository.CreateMenuItem(ctx, tx, newMenuItemId, input); err != nil {
				return models.MenuItem{}, err
			}
			return usecase.menuRepository.GetMenuItemById(ctx, tx, newMenuItemId)
		})
}

func (usecase MenuUsecase) UpdateMenuItem(ctx context.Context, input models.UpdateMenuItemInput) (models.MenuItem, error) {
	if err := usecase.enforceSecurity.EditMenu(); err != nil {
		return models.MenuItem{}, err
	}
	if input.ParentId != nil && *input.ParentId == input.Id {
		return models.MenuItem{}, errors.Wrap(models.BadParameterError, "menu item cannot be its own parent")
	}
	return repositories.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.MenuItem, error) {
			if err := usecase.menuRepository.UpdateMenuItem(ctx, tx, input); err != nil {
				return models.MenuItem{}, err
			}
			return usecase.menuRepository.GetMenuItemById(ctx, tx, input.Id)
		})
}

func (usecase MenuUsecase) DeleteMenuItem(ctx context.Context, menuItemId string) error {
	if err := usecase.enforceSecurity.EditMenu(); err != nil {
		return err
	}
	return usecase.menuRepository.DeleteMenuItem(ctx, usecase.transactionFactory.Executor(), menuItemId)
}

// BuildMenuTree nests a flat item list by parent id, dropping items the role
// cannot see. Input order (item_order) is preserved at every level.
func BuildMenuTree(items []models.MenuItem, role models.Role) []models.MenuItem {
	visible := make(map[string]bool, len(items))
	for _, item := range items {
		if item.VisibleTo(role) {
			visible[item.Id] = true
		}
	}

	childrenByParent := make(map[string][]models.MenuItem)
	var roots []models.MenuItem
	for _, item := range items {
		if !visible[item.Id] {
			continue
		}
		if item.ParentId != nil && visible[*item.ParentId] {
			childrenByParent[*item.ParentId] = append(childrenByParent[*item.ParentId], item)
		} else if item.ParentId == nil {
			roots = append(roots, item)
		}
	}

	var attach func(item models.MenuItem) models.MenuItem
	attach = func(item models.MenuItem) models.MenuItem {
		for _, child := range childrenByParent[item.Id] {
			item.Children = append(item.Children, attach(child))
		}
		return item
	}

	tree := make([]models.MenuItem, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, attach(root))
	}
	return tree
}
