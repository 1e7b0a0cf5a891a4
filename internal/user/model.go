package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrNotVerified        = errors.New("email is not verified")
	ErrAlreadyVerified    = errors.New("email is already verified")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrOTPExpired         = errors.New("otp has expired")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidRole        = errors.New("invalid role")
)

// Role determines which parts of the API a user may reach.
type Role string

const (
	RoleUser  Role = "user"          // books courts
	RoleOwner Role = "facilityowner" // lists venues and courts
	RoleAdmin Role = "admin"         // approves venue listings
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// User represents an account in the system.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	AvatarFileID *string
	IsVerified   bool
	IsActive     bool
	OTP          *string
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// Filter defines filter options for listing users.
type Filter struct {
	Email      string
	Role       string
	IsVerified *bool // Use pointer to distinguish between false and nil (not set)
	IsActive   *bool

	Page     int
	PageSize int
}
