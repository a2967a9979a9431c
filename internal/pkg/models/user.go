package models

import (
	"time"
)

// User represents a record in the in-memory user store. Two shapes share the
// store: accounts created on first verified OTP login (Email or Phone set)
// and farmer registrations submitted through the form (Mobile and crop
// fields set). Lookup is by exact email/phone match and the store does not
// enforce uniqueness, so duplicate identifiers can coexist.
type User struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Mobile          string    `json:"mobile,omitempty"`
	CropType        string    `json:"crop_type,omitempty"`
	CropDescription string    `json:"crop_description,omitempty"`
	Location        string    `json:"location,omitempty"`
	FarmType        string    `json:"farm_type,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	IsVerified      bool      `json:"is_verified"`
}

// FarmerRegistration carries the four required registration form fields
type FarmerRegistration struct {
	Name            string `form:"farmer_name"`
	Mobile          string `form:"mobile_number"`
	CropType        string `form:"crop_type"`
	CropDescription string `form:"crop_description"`
}

// ProfileUpdate carries the editable profile fields. Blank fields keep the
// stored values.
type ProfileUpdate struct {
	Name     string `form:"name"`
	Phone    string `form:"phone"`
	Location string `form:"location"`
	FarmType string `form:"farm_type"`
}
