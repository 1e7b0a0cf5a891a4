package booking

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/court"
)

// DefaultUnitHours is the booking granularity: one slot per hour.
const DefaultUnitHours = 1.0

// hourEpsilon absorbs float drift when stepping fractional hours.
const hourEpsilon = 1e-9

// Slot is one unit-length bookable increment of a court on a concrete date.
// Slots are derived on every availability query and never persisted.
type Slot struct {
	StartHour    float64 `json:"start_hour"`
	EndHour      float64 `json:"end_hour"`
	PricePerHour float64 `json:"price_per_hour"`
	IsBooked     bool    `json:"is_booked"`
}

// Quote is a validated, priced booking request that has not been persisted.
type Quote struct {
	StartHour  float64
	EndHour    float64
	TotalPrice float64
}

// OutOfWindowError reports a requested start outside every operating window
// for the date. OpenHour and CloseHour are both zero when the court is
// closed that day.
type OutOfWindowError struct {
	OpenHour  float64
	CloseHour float64
}

func (e *OutOfWindowError) Error() string {
	if e.OpenHour == 0 && e.CloseHour == 0 {
		return "court is closed on this date"
	}
	return fmt.Sprintf("start must be within operating hours (%g to %g)", e.OpenHour, e.CloseHour)
}

// InsufficientRunError reports that the contiguous free run starting at the
// requested hour is shorter than the requested duration.
type InsufficientRunError struct {
	MaxDuration float64
}

func (e *InsufficientRunError) Error() string {
	return fmt.Sprintf("only %g free hour(s) available from the requested start", e.MaxDuration)
}

// EndsAfterCloseError reports a booking that would run past closing time.
type EndsAfterCloseError struct {
	CloseHour float64
}

func (e *EndsAfterCloseError) Error() string {
	return fmt.Sprintf("booking would end after closing time (%g)", e.CloseHour)
}

// ErrNoMatchingWindow means price resolution found no window covering an
// hour that already passed validation. This is a schedule-consistency defect
// and must never be reported as a zero price.
var ErrNoMatchingWindow = errors.New("no operating window covers the requested hour")

// GenerateSlots derives the unit-length slot sequence for a date using
// day-of-week group selection. The sequence is lazy, finite and restartable;
// every slot starts unbooked.
func GenerateSlots(hours court.OperatingHours, date time.Time, unitHours float64) iter.Seq[Slot] {
	return SlotsInWindows(hours.WindowsOn(date, false), unitHours)
}

// SlotsInWindows derives slots from an explicit window group. Within each
// window, consecutive slots of unitHours are emitted while they fit
// entirely inside the window; a trailing fragment shorter than one unit is
// dropped. An empty group yields an empty sequence.
func SlotsInWindows(windows []court.OperatingWindow, unitHours float64) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		if unitHours <= 0 {
			return
		}
		for _, w := range windows {
			for cur := w.StartHour; cur+unitHours <= w.EndHour+hourEpsilon; cur += unitHours {
				s := Slot{
					StartHour:    cur,
					EndHour:      cur + unitHours,
					PricePerHour: w.PricePerHour,
				}
				if !yield(s) {
					return
				}
			}
		}
	}
}

// MarkOccupancy flags each slot whose opening instant is covered by an
// occupying reservation: taken iff some reservation r with an occupying
// status has r.StartHour <= slot.StartHour < r.EndHour. A reservation
// ending exactly at a slot's start does not take that slot. Pure and
// idempotent.
func MarkOccupancy(slots iter.Seq[Slot], reservations []*Booking) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for s := range slots {
			for _, r := range reservations {
				if !r.Status.Occupies() {
					continue
				}
				if r.StartHour <= s.StartHour && r.EndHour > s.StartHour {
					s.IsBooked = true
					break
				}
			}
			if !yield(s) {
				return
			}
		}
	}
}

// ValidateBooking checks a requested (start, duration) against the date's
// schedule and existing reservations, using day-of-week group selection.
// On success it returns a priced Quote; it performs no I/O and no mutation.
func ValidateBooking(hours court.OperatingHours, date time.Time, reservations []*Booking, startHour, durationHours float64) (*Quote, error) {
	return ValidateBookingIn(hours.WindowsOn(date, false), reservations, startHour, durationHours)
}

// ValidateBookingIn is ValidateBooking over an explicit window group.
//
// Rejections, in order: OutOfWindowError when the start falls outside
// [open, close) for the day (close itself is rejected), EndsAfterCloseError
// when start+duration overruns the close, InsufficientRunError when the
// contiguous unbooked run from the start is too short. A duration exactly
// equal to the free run is accepted.
func ValidateBookingIn(windows []court.OperatingWindow, reservations []*Booking, startHour, durationHours float64) (*Quote, error) {
	if durationHours <= 0 {
		return nil, ErrInvalidDur
	}
	if len(windows) == 0 {
		return nil, &OutOfWindowError{}
	}

	openHour := windows[0].StartHour
	closeHour := windows[0].EndHour
	for _, w := range windows[1:] {
		openHour = math.Min(openHour, w.StartHour)
		closeHour = math.Max(closeHour, w.EndHour)
	}

	if startHour < openHour || startHour >= closeHour {
		return nil, &OutOfWindowError{OpenHour: openHour, CloseHour: closeHour}
	}
	if startHour+durationHours > closeHour+hourEpsilon {
		return nil, &EndsAfterCloseError{CloseHour: closeHour}
	}

	// Contiguous free run starting at the slot that opens exactly at
	// startHour.
	var maxDuration float64
	prevEnd := math.NaN()
	inRun := false
	for s := range MarkOccupancy(SlotsInWindows(windows, DefaultUnitHours), reservations) {
		if !inRun {
			if math.Abs(s.StartHour-startHour) > hourEpsilon {
				continue
			}
			inRun = true
		} else if math.Abs(s.StartHour-prevEnd) > hourEpsilon {
			break
		}
		if s.IsBooked {
			break
		}
		maxDuration += s.EndHour - s.StartHour
		prevEnd = s.EndHour
	}

	if durationHours > maxDuration+hourEpsilon {
		return nil, &InsufficientRunError{MaxDuration: maxDuration}
	}

	price, err := ResolvePriceIn(windows, startHour)
	if err != nil {
		return nil, err
	}

	return &Quote{
		StartHour:  startHour,
		EndHour:    startHour + durationHours,
		TotalPrice: price * durationHours,
	}, nil
}

// ResolvePrice returns the hourly rate of the window covering hour on the
// given date, using day-of-week group selection.
func ResolvePrice(hours court.OperatingHours, date time.Time, hour float64) (float64, error) {
	return ResolvePriceIn(hours.WindowsOn(date, false), hour)
}

// ResolvePriceIn returns the hourly rate of the window with
// startHour <= hour < endHour, or ErrNoMatchingWindow.
func ResolvePriceIn(windows []court.OperatingWindow, hour float64) (float64, error) {
	for _, w := range windows {
		if w.Contains(hour) {
			return w.PricePerHour, nil
		}
	}
	return 0, ErrNoMatchingWindow
}
