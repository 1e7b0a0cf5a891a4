package booking

import (
	"net/http"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "booking not found")
	ErrCourtNotFound = apperror.New(http.StatusNotFound, "court not found")
	ErrVenueMismatch = apperror.New(http.StatusBadRequest, "court does not belong to the specified venue")
	ErrSlotTaken     = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrStatusFinal   = apperror.New(http.StatusBadRequest, "booking is already cancelled or completed")
	ErrPermission    = apperror.New(http.StatusForbidden, "permission denied")
	ErrStartTimePast = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrInvalidDur    = apperror.New(http.StatusBadRequest, "duration must be greater than zero")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Occupies reports whether a booking in this status blocks its time range.
// Cancelled and completed bookings release their slots.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking is a reservation of one court for a contiguous range of hours on a
// single calendar day. StartHour and EndHour are fractional hours since
// midnight; the range is half-open [StartHour, EndHour).
type Booking struct {
	ID        string
	CourtID   string
	CourtName string
	VenueID   string
	VenueName string
	UserID    string
	UserName  string

	Date       time.Time // calendar day, midnight UTC
	StartHour  float64
	EndHour    float64
	TotalPrice float64

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Filter struct {
	UserID  string
	CourtID string
	VenueID string
	OwnerID string // venues owned by this user
	Status  string

	DateFrom *time.Time
	DateTo   *time.Time

	Page     int
	PageSize int
}
