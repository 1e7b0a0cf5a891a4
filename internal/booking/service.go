package booking

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/venue"
)

// HolidayCalendar reports public holidays so a court's Holidays window group
// can take effect. A nil calendar means plain day-of-week selection.
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// CreateRequest carries a booking request after boundary validation.
type CreateRequest struct {
	UserID        string
	VenueID       string
	CourtID       string
	Date          time.Time
	StartHour     float64
	DurationHours float64
}

type Service interface {
	// AvailableSlots computes the priced, occupancy-marked slot list for a
	// court on one date. A closed day yields an empty list, not an error.
	AvailableSlots(ctx context.Context, courtID string, date time.Time) ([]Slot, error)
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// UpdateStatus transitions a booking. The booking owner may only cancel;
	// the venue owner and admins may confirm, cancel or complete.
	UpdateStatus(ctx context.Context, id string, status Status, callerID string, isAdmin bool) (*Booking, error)
}

type service struct {
	repo     Repository
	courts   court.Service
	venues   venue.Service
	holidays HolidayCalendar // may be nil
}

func NewService(repo Repository, courts court.Service, venues venue.Service, holidays HolidayCalendar) Service {
	return &service{
		repo:     repo,
		courts:   courts,
		venues:   venues,
		holidays: holidays,
	}
}

// windowsFor selects the operating-window group for a court and date,
// honoring the holiday calendar when one is configured.
func (s *service) windowsFor(ct *court.Court, date time.Time) []court.OperatingWindow {
	holiday := s.holidays != nil && s.holidays.IsHoliday(date)
	return ct.OperatingHours.WindowsOn(date, holiday)
}

func (s *service) AvailableSlots(ctx context.Context, courtID string, date time.Time) ([]Slot, error) {
	ct, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	reservations, err := s.repo.ListForCourtDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	slots := slices.Collect(MarkOccupancy(SlotsInWindows(s.windowsFor(ct, date), DefaultUnitHours), reservations))
	if slots == nil {
		slots = []Slot{}
	}
	return slots, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	ct, err := s.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	if req.VenueID != "" && ct.VenueID != req.VenueID {
		return nil, ErrVenueMismatch
	}

	start := req.Date.Add(time.Duration(req.StartHour * float64(time.Hour)))
	if start.Before(time.Now().UTC()) {
		return nil, ErrStartTimePast
	}

	quote, err := s.validate(ctx, ct, req)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		CourtID:    req.CourtID,
		VenueID:    ct.VenueID,
		UserID:     req.UserID,
		Date:       req.Date,
		StartHour:  quote.StartHour,
		EndHour:    quote.EndHour,
		TotalPrice: quote.TotalPrice,
		Status:     StatusPending,
	}

	err = s.repo.Create(ctx, b)
	if errors.Is(err, ErrSlotTaken) {
		// Lost the race after read-time validation passed. Re-validate once
		// against fresh reservations so the caller gets the precise reason,
		// then surface the conflict.
		if _, verr := s.validate(ctx, ct, req); verr != nil {
			return nil, verr
		}
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, err
	}

	b.CourtName = ct.Name
	b.VenueName = ct.VenueName
	return b, nil
}

// validate runs the pure fit check against a fresh read of the day's
// occupying reservations.
func (s *service) validate(ctx context.Context, ct *court.Court, req CreateRequest) (*Quote, error) {
	reservations, err := s.repo.ListForCourtDate(ctx, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}
	return ValidateBookingIn(s.windowsFor(ct, req.Date), reservations, req.StartHour, req.DurationHours)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status, callerID string, isAdmin bool) (*Booking, error) {
	if !status.Valid() || status == StatusPending {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Status.Occupies() {
		return nil, ErrStatusFinal
	}

	isBookingOwner := b.UserID == callerID
	isVenueOwner := false
	if !isAdmin && !isBookingOwner {
		isVenueOwner, err = s.isVenueOwner(ctx, b.VenueID, callerID)
		if err != nil {
			return nil, err
		}
	}
	if !isAdmin && !isBookingOwner && !isVenueOwner {
		return nil, ErrPermission
	}

	// A plain booking owner can only cancel; confirm and complete belong to
	// the venue side.
	if isBookingOwner && !isAdmin && status != StatusCancelled {
		isVenueOwner, err = s.isVenueOwner(ctx, b.VenueID, callerID)
		if err != nil {
			return nil, err
		}
		if !isVenueOwner {
			return nil, ErrPermission
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	b.Status = status
	return b, nil
}

func (s *service) isVenueOwner(ctx context.Context, venueID, userID string) (bool, error) {
	v, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return v.OwnerID == userID, nil
}
