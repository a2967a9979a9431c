package handler

import (
	"github.com/labstack/echo/v4"

	portalhttp "github.com/agrimart/agrimart/services/portal/handler/http"
)

// Handler aggregates the portal HTTP handlers
type Handler struct {
	pageHandler   *portalhttp.PageHandler
	authHandler   *portalhttp.AuthHandler
	farmerHandler *portalhttp.FarmerHandler
	diagHandler   *portalhttp.DiagHandler
}

// NewHandler creates a new portal handler
func NewHandler(
	pageHandler *portalhttp.PageHandler,
	authHandler *portalhttp.AuthHandler,
	farmerHandler *portalhttp.FarmerHandler,
	diagHandler *portalhttp.DiagHandler,
) *Handler {
	return &Handler{
		pageHandler:   pageHandler,
		authHandler:   authHandler,
		farmerHandler: farmerHandler,
		diagHandler:   diagHandler,
	}
}

// RegisterRoutes registers the portal routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public pages
	e.GET("/", h.pageHandler.Index)
	e.GET("/home", h.pageHandler.Index)
	e.GET("/about", h.pageHandler.About)

	// OTP login flow
	e.GET("/login", h.authHandler.LoginForm)
	e.POST("/login", h.authHandler.Login)
	e.GET("/verify_otp", h.authHandler.VerifyOTPForm)
	e.POST("/verify_otp", h.authHandler.VerifyOTP)
	e.GET("/logout", h.authHandler.Logout)

	// Authenticated pages
	e.GET("/dashboard", h.pageHandler.Dashboard)
	e.GET("/profile", h.pageHandler.Profile)
	e.POST("/update_profile", h.pageHandler.UpdateProfile)

	// Farmer registration
	e.GET("/add_user", h.farmerHandler.AddUserForm)
	e.POST("/add_user", h.farmerHandler.AddUser)
	e.GET("/users", h.farmerHandler.ListUsers)

	// Gateway diagnostics
	e.GET("/test_email", h.diagHandler.TestEmail)
	e.GET("/test_sms", h.diagHandler.TestSMS)
}
