package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
)

func menuFixture() []models.MenuItem {
	return []models.MenuItem{
		{Id: "dashboard", Title: "Dashboard", Order: 1, IsActive: true},
		{Id: "fleet", Title: "Fleet", Order: 2, IsActive: true},
		{
			Id: "cars", Title: "Cars", Order: 1, IsActive: true,
			ParentId: pure_utils.Ptr("fleet"),
		},
		{
			Id: "bookings", Title: "Bookings", Order: 2, IsActive: true,
			ParentId: pure_utils.Ptr("fleet"),
			Roles:    []models.Role{models.STAFF},
		},
		{
			Id: "admin", Title: "Administration", Order: 3, IsActive: true,
			Roles: []models.Role{models.ADMIN},
		},
		{
			Id: "users", Title: "Users", Order: 1, IsActive: true,
			ParentId: pure_utils.Ptr("admin"),
			Roles:    []models.Role{models.ADMIN},
		},
	}
}

func menuTitles(items []models.MenuItem) []string {
	return pure_utils.Map(items, func(item models.MenuItem) string { return item.Title })
}

func TestBuildMenuTree_admin_sees_everything(t *testing.T) {
	tree := BuildMenuTree(menuFixture(), models.ADMIN)

	assert.Equal(t, []string{"Dashboard", "Fleet", "Administration"}, menuTitles(tree))
	assert.Equal(t, []string{"Cars", "Bookings"}, menuTitles(tree[1].Children))
	assert.Equal(t, []string{"Users"}, menuTitles(tree[2].Children))
}

func TestBuildMenuTree_filters_by_role(t *testing.T) {
	tree := BuildMenuTree(menuFixture(), models.VIEWER)

	assert.Equal(t, []string{"Dashboard", "Fleet"}, menuTitles(tree))
	// the staff-only and admin-only leaves are gone
	assert.Equal(t, []string{"Cars"}, menuTitles(tree[1].Children))
}

func TestBuildMenuTree_staff_keeps_restricted_leaf(t *testing.T) {
	tree := BuildMenuTree(menuFixture(), models.STAFF)

	assert.Equal(t, []string{"Dashboard", "Fleet"}, menuTitles(tree))
	assert.Equal(t, []string{"Cars", "Bookings"}, menuTitles(tree[1].Children))
}

func TestBuildMenuTree_hidden_parent_drops_children(t *testing.T) {
	items := []models.MenuItem{
		{Id: "admin", Title: "Administration", Roles: []models.Role{models.ADMIN}},
		{
			Id: "users", Title: "Users",
			ParentId: pure_utils.Ptr("admin"),
		},
	}

	assert.Empty(t, BuildMenuTree(items, models.VIEWER))
}

func TestMenuItem_VisibleTo(t *testing.T) {
	unrestricted := models.MenuItem{Id: "home"}
	staffOnly := models.MenuItem{Id: "ops", Roles: []models.Role{models.STAFF}}

	assert.True(t, unrestricted.VisibleTo(models.VIEWER))
	assert.True(t, staffOnly.VisibleTo(models.STAFF))
	assert.True(t, staffOnly.VisibleTo(models.ADMIN))
	assert.False(t, staffOnly.VisibleTo(models.VIEWER))
}
