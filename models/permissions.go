package models

type Permission int

const (
	CARS_READ Permission = iota
	CARS_EDIT
	CUSTOMERS_READ
	CUSTOMERS_EDIT
	BOOKINGS_READ
	BOOKINGS_EDIT
	PAYMENTS_RECORD
	DASHBOARD_READ
	MENU_READ
	MENU_EDIT
	NOTIFICATIONS_MANAGE
	USERS_MANAGE
)

var ROLES_PERMISSIONS = map[Role][]Permission{
	VIEWER: {
		CARS_READ,
		CUSTOMERS_READ,
		BOOKINGS_READ,
		DASHBOARD_READ,
		MENU_READ,
		NOTIFICATIONS_MANAGE,
	},
	STAFF: {
		CARS_READ,
		CARS_EDIT,
		CUSTOMERS_READ,
		CUSTOMERS_EDIT,
		BOOKINGS_READ,
		BOOKINGS_EDIT,
		PAYMENTS_RECORD,
		DASHBOARD_READ,
		MENU_READ,
		NOTIFICATIONS_MANAGE,
	},
	ADMIN: {
		CARS_READ,
		CARS_EDIT,
		CUSTOMERS_READ,
		CUSTOMERS_EDIT,
		BOOKINGS_READ,
		BOOKINGS_EDIT,
		PAYMENTS_RECORD,
		DASHBOARD_READ,
		MENU_READ,
		MENU_EDIT,
		NOTIFICATIONS_MANAGE,
		USERS_MANAGE,
	},
}
