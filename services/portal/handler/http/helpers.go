package http

import (
	"github.com/labstack/echo/v4"

	"github.com/agrimart/agrimart/internal/pkg/session"
)

// renderData assembles the common view payload: queued flash messages and
// the login state for the navigation bar.
func renderData(c echo.Context, data map[string]interface{}) map[string]interface{} {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["Flashes"] = session.Flashes(c)
	if _, ok := session.UserID(c); ok {
		data["LoggedIn"] = true
	}
	return data
}
