package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/rafaelqm/barber-agenda/internal/handler"
	"github.com/rafaelqm/barber-agenda/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token; refresh-access issues a new
	// access token while reusing the existing refresh token.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout takes a refresh token in the body and invalidates it, so it
	// does not require a JWT.
	g.POST("/logout", a.Logout)

	auth := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleOwner),
	)
	auth.GET("/me", a.Me)
	// Logout-all kills every session of the authenticated user, so it is
	// keyed by the JWT instead of a refresh token in the body.
	auth.POST("/auth/logout-all", a.LogoutAll)
}

// RegisterAppointments registers the owner-scoped appointment CRUD and
// the statistics dashboard under /v1.  All routes require a valid JWT
// with the OWNER role; extra middleware (e.g. the response cache) is
// appended after auth so cache entries are keyed by the resolved user.
func RegisterAppointments(e *echo.Echo, h *handler.AppointmentHandler, d *handler.DashboardHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleOwner),
	}
	mws = append(mws, extra...)
	g := e.Group("/v1", mws...)

	g.GET("/appointments", h.List)
	g.GET("/appointments/:id", h.Get)
	g.POST("/appointments", h.Create)
	g.PUT("/appointments/:id", h.Update)
	g.DELETE("/appointments/:id", h.Delete)

	g.GET("/stats", d.Stats)
}
