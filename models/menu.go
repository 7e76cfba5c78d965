package models

// MenuItem is one node of the back-office navigation tree. Roles restricts
// visibility; an item with no roles is visible to everyone.
type MenuItem struct {
	Id       string
	Title    string
	Icon     string
	Route    *string
	Order    int
	ParentId *string
	Roles    []Role
	IsActive bool

	Children []MenuItem
}

type CreateMenuItemInput struct {
	Title    string
	Icon     string
	Route    *string
	Order    int
	ParentId *string
	Roles    []Role
	IsActive bool
}

type UpdateMenuItemInput struct {
	Id       string
	Title    *string
	Icon     *string
	Route    *string
	Order    *int
	ParentId *string
	Roles    []Role
	IsActive *bool
}

// VisibleTo reports whether the item is shown to the given role. Admins see
// everything; unrestricted items are public.
func (m MenuItem) VisibleTo(role Role) bool {
	if role == ADMIN || len(m.Roles) == 0 {
		return true
	}
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}
