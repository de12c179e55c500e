package booking

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, bookingService BookingServiceAPI) {
	bookingController := &BookingController{Service: bookingService}

	bookingGroup := r.Group("/api/v1/bookings")
	bookingGroup.Use(middlewares.AuthMiddleware())
	{
		bookingGroup.POST("", bookingController.CreateBooking)
		bookingGroup.GET("", bookingController.GetBookings)
		bookingGroup.GET("/:id", bookingController.GetBooking)
	}
}
