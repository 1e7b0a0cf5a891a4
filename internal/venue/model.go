package venue

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("venue not found")
	ErrNameRequired     = errors.New("venue name is required")
	ErrAddressRequired  = errors.New("address, city, state and pincode are required")
	ErrInvalidType      = errors.New("venue type must be Indoor or Outdoor")
	ErrInvalidStatus    = errors.New("invalid venue status")
	ErrNotOwner         = errors.New("venue is not owned by you")
	ErrAlreadyDecided   = errors.New("venue has already been approved or rejected")
	ErrSportsRequired   = errors.New("at least one sport type is required")
	ErrPermissionDenied = errors.New("permission denied")
)

// Status is the admin-approval state of a venue listing.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Venue is a sports facility listed by an owner. Listings start pending and
// become publicly visible only after admin approval.
type Venue struct {
	ID        string
	OwnerID   string
	OwnerName string

	Name        string
	Description string
	About       string
	VenueType   string // "Indoor" or "Outdoor"; may be empty

	Address string
	City    string
	State   string
	Pincode string

	SportTypes   []string
	Amenities    []string
	PhotoFileIDs []string

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing venues.
type Filter struct {
	OwnerID string
	City    string
	Sport   string
	Status  string

	Page     int
	PageSize int
}
