package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ChangeBookingRoom(c *ginext.Context)
}

// InitRouter mounts the booking routes behind auth. Health and metrics
// stay public.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	booking := router.Group("/booking", auth)
	{
		booking.GET("", h.GetBooking)
		booking.POST("", h.CreateBooking)
		booking.PUT("/:bookingId", h.ChangeBookingRoom)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
