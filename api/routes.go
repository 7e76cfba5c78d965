package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"

	"github.com/driveline/rental-backend/usecases"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, auth Authentication) {
	r.GET("/liveness", handleLivenessProbe)
	r.POST("/token", handlePostToken(uc))

	router := r.Use(auth.Middleware, timeoutMiddleware(conf.DefaultTimeout))

	router.GET("/credentials", handleGetCredentials())

	router.GET("/dashboard", handleGetDashboard(uc))

	router.GET("/menu", handleGetMenu(uc))
	router.GET("/menu/items", handleListMenuItems(uc))
	router.POST("/menu/items", handlePostMenuItem(uc))
	router.PATCH("/menu/items/:menu_item_id", handlePatchMenuItem(uc))
	router.DELETE("/menu/items/:menu_item_id", handleDeleteMenuItem(uc))

	router.GET("/cars", handleListCars(uc))
	router.POST("/cars", handlePostCar(uc))
	router.GET("/cars/:car_id", handleGetCar(uc))
	router.PATCH("/cars/:car_id", handlePatchCar(uc))
	router.DELETE("/cars/:car_id", handleDeleteCar(uc))

	router.GET("/customers", handleListCustomers(uc))
	router.POST("/customers", handlePostCustomer(uc))
	router.GET("/customers/:customer_id", handleGetCustomer(uc))
	router.PATCH("/customers/:customer_id", handlePatchCustomer(uc))
	router.POST("/customers/:customer_id/refresh-stats", handleRefreshCustomerStats(uc))
	router.DELETE("/customers/:customer_id", handleDeleteCustomer(uc))

	router.GET("/bookings", handleListBookings(uc))
	router.POST("/bookings", handlePostBooking(uc))
	router.GET("/bookings/active", handleListActiveBookings(uc))
	router.GET("/bookings/today-pickups", handleTodaysPickups(uc))
	router.GET("/bookings/today-returns", handleTodaysReturns(uc))
	router.GET("/bookings/:booking_id", handleGetBooking(uc))
	router.PATCH("/bookings/:booking_id", handlePatchBooking(uc))
	router.GET("/bookings/:booking_id/payments", handleListBookingPayments(uc))
	router.POST("/bookings/:booking_id/payments", handlePostBookingPayment(uc))
	router.GET("/bookings/:booking_id/extensions", handleListBookingExtensions(uc))
	router.POST("/bookings/:booking_id/extend", handleExtendBooking(uc))
	router.POST("/bookings/:booking_id/swap-car", handleSwapBookingCar(uc))
	router.POST("/bookings/:booking_id/return", handleReturnBookingCar(uc))
	router.POST("/bookings/:booking_id/accident", handleReportBookingAccident(uc))

	router.GET("/payments", handleListPayments(uc))

	router.GET("/users", handleGetAllUsers(uc))
	router.POST("/users", handlePostUser(uc))
	router.GET("/users/:user_id", handleGetUser(uc))
	router.PATCH("/users/:user_id", handlePatchUser(uc))
	router.POST("/users/:user_id/password", handleChangeUserPassword(uc))
	router.DELETE("/users/:user_id", handleDeleteUser(uc))

	router.POST("/device-tokens", handlePostDeviceToken(uc))
	router.DELETE("/device-tokens", handleDeleteDeviceToken(uc))
	router.GET("/notification-preferences", handleGetNotificationPreferences(uc))
	router.PATCH("/notification-preferences", handlePatchNotificationPreferences(uc))
}
