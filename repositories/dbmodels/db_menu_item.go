package dbmodels

import (
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/utils"
)

type DBMenuItem struct {
	Id        string   `db:"id"`
	Title     string   `db:"title"`
	Icon      string   `db:"icon"`
	Route     *string  `db:"route"`
	ItemOrder int      `db:"item_order"`
	ParentId  *string  `db:"parent_id"`
	Roles     []string `db:"roles"`
	IsActive  bool     `db:"is_active"`
}

const TABLE_MENU_ITEMS = "menu_items"

var SelectMenuItemColumn = utils.ColumnList[DBMenuItem]()

func AdaptMenuItem(db DBMenuItem) (models.MenuItem, error) {
	return models.MenuItem{
		Id:       db.Id,
		Title:    db.Title,
		Icon:     db.Icon,
		Route:    db.Route,
		Order:    db.ItemOrder,
		ParentId: db.ParentId,
		Roles:    pure_utils.Map(db.Roles, models.RoleFromString),
		IsActive: db.IsActive,
	}, nil
}
