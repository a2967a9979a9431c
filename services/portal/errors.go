package portal

import "errors"

// Sentinel errors crossed between the handler and usecase layers.
var (
	// ErrMissingIdentifier rejects a login request without an email/phone
	ErrMissingIdentifier = errors.New("identifier is required")
	// ErrMissingFields rejects a registration with any absent required field
	ErrMissingFields = errors.New("all registration fields are required")
	// ErrInvalidOTP covers wrong, expired and exhausted codes alike; the
	// distinction is deliberately not surfaced to the user
	ErrInvalidOTP = errors.New("invalid OTP")
	// ErrSMSDeliveryFailed means no SMS provider accepted the message
	ErrSMSDeliveryFailed = errors.New("failed to send OTP")
	// ErrUserNotFound means no record matched the id or identifier
	ErrUserNotFound = errors.New("user not found")
)
