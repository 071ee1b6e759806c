package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/ggwellplayed/booking-service/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require any middleware on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the static catalog endpoints.  The optional
// cache middleware is applied to the whole group since every payload is
// immutable for the life of the process.
func RegisterCatalog(e *echo.Echo, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/catalog")
	if cache != nil {
		g.Use(cache)
	}
	g.GET("/tiers", handler.GetTiers)
	g.GET("/durations", handler.GetDurations)
	g.GET("/seats", handler.GetSeats)
}

// RegisterBooking registers the public booking surface: quoting, the
// tier-preselection producer path, lifecycle state and submission.  The
// token-bucket limiter guards the group when provided.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if limiter != nil {
		g.Use(limiter)
	}
	g.GET("/quote", b.GetQuote)
	g.POST("/tiers/select", b.SelectTier)
	g.GET("/bookings/state", b.GetState)
	g.POST("/bookings", b.Submit)
}

// RegisterAdmin registers the operator's view over the booking collection.
// By product decision this surface carries no authentication: it is the
// cafe operator's own dashboard, reachable only inside the shop network.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler) {
	g := e.Group("/v1/admin")
	g.GET("/bookings", a.ListBookings)
	g.GET("/stats", a.GetStats)
	g.GET("/export", a.ExportCSV)
	g.DELETE("/bookings", a.ClearBookings)
}
