package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrimart/agrimart/internal/pkg/models"
	"github.com/agrimart/agrimart/services/portal"
)

// DiagHandler exposes plaintext endpoints that exercise the notification
// gateways directly, for configuration smoke tests.
type DiagHandler struct {
	mailGW portal.MailGW
	smsGW  portal.SMSGW
}

// NewDiagHandler creates a new diagnostics handler
func NewDiagHandler(mailGW portal.MailGW, smsGW portal.SMSGW) *DiagHandler {
	return &DiagHandler{mailGW: mailGW, smsGW: smsGW}
}

// TestEmail sends a sample admin notification
func (h *DiagHandler) TestEmail(c echo.Context) error {
	sample := &models.User{
		Name:            "Test Farmer",
		Mobile:          "1234567890",
		CropType:        "Crop",
		CropDescription: "Test email functionality",
	}

	if h.mailGW.SendFarmerNotification(c.Request().Context(), sample) {
		return c.String(http.StatusOK, "Test email sent successfully! Check your inbox and the logs.")
	}
	return c.String(http.StatusOK, "Test email failed! Check the logs for detailed error messages.")
}

// TestSMS sends a sample OTP text, optionally to the given phone number
func (h *DiagHandler) TestSMS(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		phone = "1234567890"
	}

	if h.smsGW.SendOTPSMS(c.Request().Context(), phone, "123456") {
		return c.String(http.StatusOK, fmt.Sprintf("Test SMS sent successfully to %s! Check the logs for details.", phone))
	}
	return c.String(http.StatusOK, "Test SMS failed! Check the logs for detailed error messages.")
}
