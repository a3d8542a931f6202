package models

import "time"

// Defaults applied when signup omits the optional image fields.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash   string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	ImageURL       string    `json:"image_url"`
	HeaderImageURL string    `json:"header_image_url"`
	Location       string    `json:"location,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SignupRequest defines the request body for creating a new account
type SignupRequest struct {
	Username       string `json:"username" validate:"required,min=1,max=50"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	ImageURL       string `json:"image_url,omitempty" validate:"omitempty,url"`
	HeaderImageURL string `json:"header_image_url,omitempty" validate:"omitempty,url"`
	Location       string `json:"location,omitempty"`
	Bio            string `json:"bio,omitempty"`
}

// LoginRequest defines the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileRequest defines the request body for editing the current
// user's profile. Password is the current password and gates the edit;
// NewPassword, when present, replaces it.
type UpdateProfileRequest struct {
	Password       string `json:"password" validate:"required,min=6"`
	NewPassword    string `json:"new_password,omitempty" validate:"omitempty,min=6"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	ImageURL       string `json:"image_url,omitempty" validate:"omitempty,url"`
	HeaderImageURL string `json:"header_image_url,omitempty" validate:"omitempty,url"`
	Location       string `json:"location,omitempty"`
	Bio            string `json:"bio,omitempty"`
}
