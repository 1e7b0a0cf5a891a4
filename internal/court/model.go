package court

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound       = errors.New("court not found")
	ErrEmptyName      = errors.New("court name cannot be empty")
	ErrDuplicateName  = errors.New("court name already exists in this venue")
	ErrSportRequired  = errors.New("sport type is required")
	ErrEmptyBatch     = errors.New("at least one court is required")
	ErrInvalidHours   = errors.New("invalid operating hours")
	ErrNotOwner       = errors.New("court does not belong to a venue you own")
	ErrVenueNotFound  = errors.New("invalid venue_id")
)

// OperatingWindow is a contiguous span of open hours with a single hourly
// rate. Hours are fractional hours since midnight, so 13.5 means 13:30.
type OperatingWindow struct {
	StartHour    float64 `json:"start_hour"`
	EndHour      float64 `json:"end_hour"`
	PricePerHour float64 `json:"price_per_hour"`
}

// Contains reports whether hour falls inside the half-open window
// [StartHour, EndHour).
func (w OperatingWindow) Contains(hour float64) bool {
	return w.StartHour <= hour && hour < w.EndHour
}

// OperatingHours is a court's weekly schedule. Each group holds ordered,
// non-overlapping windows; an empty group means closed on those days.
type OperatingHours struct {
	Weekdays []OperatingWindow `json:"weekdays"`
	Weekends []OperatingWindow `json:"weekends"`
	Holidays []OperatingWindow `json:"holidays"`
}

// WindowsOn selects the window group for a calendar date. Saturday and
// Sunday use the Weekends group, every other day the Weekdays group. When
// holiday is true the Holidays group takes precedence.
func (h OperatingHours) WindowsOn(date time.Time, holiday bool) []OperatingWindow {
	if holiday {
		return h.Holidays
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return h.Weekends
	default:
		return h.Weekdays
	}
}

// Validate checks that every group is well formed: each window within
// [0, 24] with EndHour > StartHour and a non-negative price, windows sorted
// by start and non-overlapping. Downstream slot computation relies on these
// invariants, so they are enforced at write time.
func (h OperatingHours) Validate() error {
	for _, g := range []struct {
		name    string
		windows []OperatingWindow
	}{
		{"weekdays", h.Weekdays},
		{"weekends", h.Weekends},
		{"holidays", h.Holidays},
	} {
		for i, w := range g.windows {
			if w.StartHour < 0 || w.EndHour > 24 {
				return fmt.Errorf("%w: %s[%d] outside 0-24", ErrInvalidHours, g.name, i)
			}
			if w.EndHour <= w.StartHour {
				return fmt.Errorf("%w: %s[%d] must end after it starts", ErrInvalidHours, g.name, i)
			}
			if w.PricePerHour < 0 {
				return fmt.Errorf("%w: %s[%d] has a negative price", ErrInvalidHours, g.name, i)
			}
			if i > 0 && w.StartHour < g.windows[i-1].EndHour {
				return fmt.Errorf("%w: %s[%d] overlaps the previous window", ErrInvalidHours, g.name, i)
			}
		}
	}
	return nil
}

// Court represents a bookable playing surface inside a venue.
type Court struct {
	ID        string
	VenueID   string
	VenueName string

	Name           string
	SportType      string
	OperatingHours OperatingHours

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing courts.
type Filter struct {
	VenueID   string
	OwnerID   string
	SportType string

	Page     int
	PageSize int
}
