package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/Prabheesh178/woxsen-league/internal/handler"    // import the handlers that implement business logic
	"github.com/Prabheesh178/woxsen-league/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/Prabheesh178/woxsen-league/internal/model"      // role constants
)

// Deps bundles everything the route table needs. Building the table in
// one place keeps the authorization story auditable: every route's
// role requirement is visible here.
type Deps struct {
	JWTSecret string
	RateLimit echo.MiddlewareFunc
	Auth      *handler.AuthHandler
	Facility  *handler.FacilityHandler
	Booking   *handler.BookingHandler
	Warden    *handler.WardenHandler
}

// RegisterRoutes wires the full API surface onto the Echo instance.
//
// Unauthenticated:  health check and the auth endpoints.
// Authenticated:    catalog browsing and the per-student booking
//                   lifecycle (students only for writes).
// Warden:           gate verification, live feed, stats and the
//                   settings toggles.
func RegisterRoutes(e *echo.Echo, d Deps) {
	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Session management: no existing token required.
	auth := e.Group("/v1/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/refresh", d.Auth.Refresh)
	auth.POST("/refresh-access", d.Auth.RefreshAccess)
	auth.POST("/logout", d.Auth.Logout)

	// Everything below requires a valid access token.
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(d.JWTSecret))

	v1.GET("/me", d.Auth.Me)
	v1.POST("/auth/logout-all", d.Auth.LogoutAll)

	// Catalog and availability are readable by both roles.
	v1.GET("/facilities", d.Facility.List)
	v1.GET("/facilities/:name/availability", d.Facility.Availability)

	// Booking writes are student-only and rate limited: the portal is
	// the obvious target for slot-sniping scripts.
	student := v1.Group("", middleware.RequireRole(model.RoleStudent))
	student.POST("/bookings", d.Booking.Create, d.RateLimit)
	student.GET("/my-bookings", d.Booking.MyBookings)
	student.GET("/bookings/:id", d.Booking.Get)
	student.DELETE("/bookings/:id", d.Booking.Cancel, d.RateLimit)

	// Warden dashboard and controls.
	warden := v1.Group("/warden", middleware.RequireRole(model.RoleWarden))
	warden.POST("/verify", d.Warden.Verify)
	warden.GET("/feed", d.Warden.Feed)
	warden.GET("/feed/stream", d.Warden.FeedStream)
	warden.GET("/bookings", d.Warden.ListBookings)
	warden.GET("/stats", d.Warden.Stats)
	warden.PUT("/settings/lockdown", d.Warden.SetLockdown)
	warden.PUT("/settings/facilities/:name", d.Warden.SetFacility)
	warden.DELETE("/bookings/:id", d.Warden.CancelBooking)
}
