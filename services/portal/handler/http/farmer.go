package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/models"
	"github.com/agrimart/agrimart/internal/pkg/session"
	"github.com/agrimart/agrimart/services/portal"
)

// FarmerHandler handles farmer registration and the listing page
type FarmerHandler struct {
	portalUC portal.PortalUC
}

// NewFarmerHandler creates a new farmer handler
func NewFarmerHandler(portalUC portal.PortalUC) *FarmerHandler {
	return &FarmerHandler{portalUC: portalUC}
}

// AddUserForm renders the registration form
func (h *FarmerHandler) AddUserForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_user.html", renderData(c, nil))
}

// AddUser stores a farmer registration and redirects to the listing. The
// record survives a failed admin notification; the user just sees a warning.
func (h *FarmerHandler) AddUser(c echo.Context) error {
	var reg models.FarmerRegistration
	if err := c.Bind(&reg); err != nil {
		session.AddFlash(c, session.LevelError, "Invalid form submission")
		return c.Render(http.StatusOK, "add_user.html", renderData(c, nil))
	}

	_, notified, err := h.portalUC.RegisterFarmer(c.Request().Context(), &reg)
	if errors.Is(err, portal.ErrMissingFields) {
		session.AddFlash(c, session.LevelError, "All fields are required")
		return c.Render(http.StatusOK, "add_user.html", renderData(c, nil))
	}
	if err != nil {
		logger.Error("Farmer registration failed", logger.Err(err))
		session.AddFlash(c, session.LevelError, "Registration failed. Please try again.")
		return c.Render(http.StatusOK, "add_user.html", renderData(c, nil))
	}

	if notified {
		session.AddFlash(c, session.LevelSuccess, "Farmer added successfully! Email sent.")
	} else {
		session.AddFlash(c, session.LevelWarning, "Farmer added but email notification failed")
	}
	return c.Redirect(http.StatusFound, "/users")
}

// ListUsers renders every registered record
func (h *FarmerHandler) ListUsers(c echo.Context) error {
	users, err := h.portalUC.ListFarmers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "users.html", renderData(c, map[string]interface{}{
		"Users": users,
	}))
}
