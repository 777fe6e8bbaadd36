package routes

import (
	"github.com/julienschmidt/httprouter"

	"venueos/bookings"
	"venueos/clients"
	"venueos/expenses"
	"venueos/home"
	"venueos/ratelim"
	"venueos/venues"
)

// Handlers gathers every route handler the router serves.
type Handlers struct {
	Home     *home.Handler
	Venues   *venues.Handler
	Clients  *clients.Handler
	Bookings *bookings.Handler
	Expenses *expenses.Handler
}

// Setup builds the router. Create routes go through the rate limiter.
func Setup(h Handlers, rl *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()

	router.GET("/", h.Home.Index)
	router.GET("/test", h.Home.Test)

	router.POST("/venues", rl.Limit(h.Venues.Create))
	router.GET("/venues", h.Venues.List)

	router.POST("/clients", rl.Limit(h.Clients.Create))
	router.GET("/clients", h.Clients.List)

	router.POST("/bookings", rl.Limit(h.Bookings.Create))
	router.GET("/bookings", h.Bookings.List)

	router.POST("/expenses", rl.Limit(h.Expenses.Create))
	router.GET("/expenses", h.Expenses.List)

	return router
}
