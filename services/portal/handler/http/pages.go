package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/models"
	"github.com/agrimart/agrimart/internal/pkg/session"
	"github.com/agrimart/agrimart/services/portal"
)

// PageHandler serves the landing, dashboard and profile pages
type PageHandler struct {
	portalUC portal.PortalUC
}

// NewPageHandler creates a new page handler
func NewPageHandler(portalUC portal.PortalUC) *PageHandler {
	return &PageHandler{portalUC: portalUC}
}

// Index renders the landing page
func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", renderData(c, nil))
}

// About renders the static about page
func (h *PageHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", renderData(c, nil))
}

// Dashboard renders the logged-in landing page
func (h *PageHandler) Dashboard(c echo.Context) error {
	user, ok := h.currentUser(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Render(http.StatusOK, "dashboard.html", renderData(c, map[string]interface{}{
		"User": user,
	}))
}

// Profile renders the profile page
func (h *PageHandler) Profile(c echo.Context) error {
	user, ok := h.currentUser(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Render(http.StatusOK, "profile.html", renderData(c, map[string]interface{}{
		"User": user,
	}))
}

// UpdateProfile applies the submitted profile fields and returns to the
// profile page.
func (h *PageHandler) UpdateProfile(c echo.Context) error {
	id, ok := session.UserID(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	var update models.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		session.AddFlash(c, session.LevelError, "Invalid form submission")
		return c.Redirect(http.StatusFound, "/profile")
	}

	if _, err := h.portalUC.UpdateProfile(c.Request().Context(), id, &update); err != nil {
		logger.Warn("Profile update failed",
			logger.Int("user_id", id),
			logger.Err(err))
		_ = session.Clear(c)
		return c.Redirect(http.StatusFound, "/login")
	}

	session.AddFlash(c, session.LevelSuccess, "Profile updated successfully!")
	return c.Redirect(http.StatusFound, "/profile")
}

// currentUser resolves the session user. A session that references an
// unknown id is stale and gets cleared.
func (h *PageHandler) currentUser(c echo.Context) (*models.User, bool) {
	id, ok := session.UserID(c)
	if !ok {
		return nil, false
	}

	user, err := h.portalUC.GetUserByID(c.Request().Context(), id)
	if err != nil {
		_ = session.Clear(c)
		return nil, false
	}
	return user, true
}
