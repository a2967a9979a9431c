package models

import (
	"time"
)

// Login types accepted by the login form
const (
	LoginTypeEmail = "email"
	LoginTypePhone = "phone"
)

// OTP is a pending one-time passcode challenge keyed by the login
// identifier (email address or phone number). A new login request for the
// same identifier overwrites the previous entry.
type OTP struct {
	Identifier string    `json:"identifier"`
	Code       string    `json:"code"`
	IssuedAt   time.Time `json:"issued_at"`
	Attempts   int       `json:"attempts"`
}

// OTPDelivery describes how an issued passcode reached (or failed to reach)
// the requester.
type OTPDelivery struct {
	Identifier string `json:"identifier"`
	LoginType  string `json:"login_type"`
	// DevCode carries the issued code back to the requester when email
	// delivery failed and the development-mode disclosure fallback kicked in.
	DevCode string `json:"dev_code,omitempty"`
}
