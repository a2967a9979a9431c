package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/session"
	"github.com/agrimart/agrimart/services/portal"
)

// AuthHandler handles the OTP login, verification and logout pages
type AuthHandler struct {
	portalUC portal.PortalUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(portalUC portal.PortalUC) *AuthHandler {
	return &AuthHandler{portalUC: portalUC}
}

// LoginForm renders the login page
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", renderData(c, nil))
}

// Login issues an OTP for the submitted identifier and redirects to the
// verification page. Validation and delivery failures re-render the form.
func (h *AuthHandler) Login(c echo.Context) error {
	loginType := c.FormValue("login_type")
	identifier := c.FormValue("identifier")

	if identifier == "" {
		session.AddFlash(c, session.LevelError, "Please enter your email or phone number")
		return c.Render(http.StatusOK, "login.html", renderData(c, nil))
	}

	delivery, err := h.portalUC.RequestLogin(c.Request().Context(), loginType, identifier)
	if err != nil {
		logger.Warn("Login request failed",
			logger.String("identifier", identifier),
			logger.Err(err))
		session.AddFlash(c, session.LevelError, "Failed to send OTP. Please try again.")
		return c.Render(http.StatusOK, "login.html", renderData(c, nil))
	}

	if err := session.SetPendingLogin(c, delivery.Identifier, delivery.LoginType); err != nil {
		return err
	}

	if delivery.DevCode != "" {
		session.AddFlash(c, session.LevelWarning, "Email sending failed. Using development fallback.")
		session.AddFlash(c, session.LevelSuccess, "Your OTP (dev): "+delivery.DevCode)
	} else {
		session.AddFlash(c, session.LevelSuccess, "OTP sent to "+delivery.Identifier)
	}
	return c.Redirect(http.StatusFound, "/verify_otp")
}

// VerifyOTPForm renders the verification page for a pending challenge
func (h *AuthHandler) VerifyOTPForm(c echo.Context) error {
	if _, _, ok := session.PendingLogin(c); !ok {
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Render(http.StatusOK, "verify_otp.html", renderData(c, nil))
}

// VerifyOTP checks the submitted code and establishes the session
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	identifier, loginType, ok := session.PendingLogin(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	code := c.FormValue("otp")
	user, err := h.portalUC.VerifyLogin(c.Request().Context(), loginType, identifier, code)
	if err != nil {
		session.AddFlash(c, session.LevelError, "Invalid OTP. Please try again.")
		return c.Render(http.StatusOK, "verify_otp.html", renderData(c, nil))
	}

	if err := session.EstablishLogin(c, user); err != nil {
		return err
	}
	session.AddFlash(c, session.LevelSuccess, "Login successful! Welcome back!")
	return c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the whole session unconditionally
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := session.Clear(c); err != nil {
		logger.Warn("Failed to clear session on logout", logger.Err(err))
	}
	session.AddFlash(c, session.LevelSuccess, "Logged out successfully")
	return c.Redirect(http.StatusFound, "/login")
}
