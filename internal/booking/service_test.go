package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/venue"
)

type fakeRepo struct {
	Repository

	byDate     []*Booking
	afterFirst []*Booking // returned by reads after the first, when set
	listCalls  int
	created    []*Booking
	createErr  []error // popped per Create call
	getByID    *Booking
	updated    Status
}

func (f *fakeRepo) Create(ctx context.Context, b *Booking) error {
	if len(f.createErr) > 0 {
		err := f.createErr[0]
		f.createErr = f.createErr[1:]
		if err != nil {
			return err
		}
	}
	b.ID = "booking-1"
	f.created = append(f.created, b)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	if f.getByID == nil {
		return nil, ErrNotFound
	}
	return f.getByID, nil
}

func (f *fakeRepo) ListForCourtDate(ctx context.Context, courtID string, date time.Time) ([]*Booking, error) {
	f.listCalls++
	if f.afterFirst != nil && f.listCalls > 1 {
		return f.afterFirst, nil
	}
	return f.byDate, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	f.updated = status
	return nil
}

type fakeCourts struct {
	court.Service
	ct *court.Court
}

func (f *fakeCourts) GetByID(ctx context.Context, id string) (*court.Court, error) {
	if f.ct == nil || f.ct.ID != id {
		return nil, court.ErrNotFound
	}
	return f.ct, nil
}

type fakeVenues struct {
	venue.Service
	v *venue.Venue
}

func (f *fakeVenues) GetByID(ctx context.Context, id string) (*venue.Venue, error) {
	if f.v == nil || f.v.ID != id {
		return nil, venue.ErrNotFound
	}
	return f.v, nil
}

type fixedHolidays map[time.Time]bool

func (h fixedHolidays) IsHoliday(date time.Time) bool { return h[date] }

func testCourt() *court.Court {
	return &court.Court{
		ID:      "court-1",
		VenueID: "venue-1",
		Name:    "Court A",
		OperatingHours: court.OperatingHours{
			Weekdays: []court.OperatingWindow{{StartHour: 9, EndHour: 17, PricePerHour: 100}},
			Holidays: []court.OperatingWindow{{StartHour: 10, EndHour: 12, PricePerHour: 500}},
		},
	}
}

func newTestService(repo *fakeRepo, holidays HolidayCalendar) Service {
	return NewService(repo, &fakeCourts{ct: testCourt()}, &fakeVenues{v: &venue.Venue{ID: "venue-1", OwnerID: "owner-1"}}, holidays)
}

func TestServiceAvailableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("marks reserved slots", func(t *testing.T) {
		repo := &fakeRepo{byDate: []*Booking{
			{StartHour: 10, EndHour: 12, Status: StatusConfirmed},
		}}
		svc := newTestService(repo, nil)

		slots, err := svc.AvailableSlots(ctx, "court-1", monday)
		require.NoError(t, err)
		require.Len(t, slots, 8)
		require.False(t, slots[0].IsBooked)
		require.True(t, slots[1].IsBooked)
		require.True(t, slots[2].IsBooked)
		require.False(t, slots[3].IsBooked)
	})

	t.Run("closed day returns empty list", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, nil)

		slots, err := svc.AvailableSlots(ctx, "court-1", saturday)
		require.NoError(t, err)
		require.NotNil(t, slots)
		require.Empty(t, slots)
	})

	t.Run("unknown court", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, nil)

		_, err := svc.AvailableSlots(ctx, "missing", monday)
		require.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("holiday calendar switches the window group", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, fixedHolidays{monday: true})

		slots, err := svc.AvailableSlots(ctx, "court-1", monday)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		require.Equal(t, 500.0, slots[0].PricePerHour)
	})
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	req := CreateRequest{
		UserID:        "user-1",
		VenueID:       "venue-1",
		CourtID:       "court-1",
		Date:          monday,
		StartHour:     9,
		DurationHours: 2,
	}

	t.Run("creates a pending booking with the quoted price", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo, nil)

		b, err := svc.Create(ctx, req)
		require.NoError(t, err)
		require.Equal(t, StatusPending, b.Status)
		require.Equal(t, 200.0, b.TotalPrice)
		require.Equal(t, 9.0, b.StartHour)
		require.Equal(t, 11.0, b.EndHour)
		require.Equal(t, "Court A", b.CourtName)
		require.Len(t, repo.created, 1)
	})

	t.Run("court must belong to the requested venue", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, nil)

		bad := req
		bad.VenueID = "venue-2"
		_, err := svc.Create(ctx, bad)
		require.ErrorIs(t, err, ErrVenueMismatch)
	})

	t.Run("unknown court", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, nil)

		bad := req
		bad.CourtID = "missing"
		_, err := svc.Create(ctx, bad)
		require.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("past start rejected", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, nil)

		bad := req
		bad.Date = time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
		_, err := svc.Create(ctx, bad)
		require.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("write conflict with clean re-validation surfaces SlotTaken", func(t *testing.T) {
		// The conflicting booking was cancelled between the constraint hit
		// and the re-read, so re-validation passes.
		repo := &fakeRepo{createErr: []error{ErrSlotTaken}}
		svc := newTestService(repo, nil)

		_, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("write conflict re-validates and reports the precise reason", func(t *testing.T) {
		// First validation sees a free day; the insert hits the exclusion
		// constraint; the re-read shows the racing booking.
		repo := &fakeRepo{
			createErr:  []error{ErrSlotTaken},
			afterFirst: []*Booking{{StartHour: 9, EndHour: 10, Status: StatusConfirmed}},
		}
		svc := newTestService(repo, nil)

		_, err := svc.Create(ctx, req)
		var insufficient *InsufficientRunError
		require.ErrorAs(t, err, &insufficient)
		require.Equal(t, 0.0, insufficient.MaxDuration)
	})
}

func TestServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()

	pendingBooking := func() *Booking {
		return &Booking{
			ID:      "booking-1",
			UserID:  "user-1",
			VenueID: "venue-1",
			Status:  StatusPending,
		}
	}

	t.Run("booking owner may cancel", func(t *testing.T) {
		repo := &fakeRepo{getByID: pendingBooking()}
		svc := newTestService(repo, nil)

		b, err := svc.UpdateStatus(ctx, "booking-1", StatusCancelled, "user-1", false)
		require.NoError(t, err)
		require.Equal(t, StatusCancelled, b.Status)
		require.Equal(t, StatusCancelled, repo.updated)
	})

	t.Run("booking owner may not confirm", func(t *testing.T) {
		svc := newTestService(&fakeRepo{getByID: pendingBooking()}, nil)

		_, err := svc.UpdateStatus(ctx, "booking-1", StatusConfirmed, "user-1", false)
		require.ErrorIs(t, err, ErrPermission)
	})

	t.Run("venue owner may confirm", func(t *testing.T) {
		svc := newTestService(&fakeRepo{getByID: pendingBooking()}, nil)

		b, err := svc.UpdateStatus(ctx, "booking-1", StatusConfirmed, "owner-1", false)
		require.NoError(t, err)
		require.Equal(t, StatusConfirmed, b.Status)
	})

	t.Run("admin may complete", func(t *testing.T) {
		booked := pendingBooking()
		booked.Status = StatusConfirmed
		svc := newTestService(&fakeRepo{getByID: booked}, nil)

		b, err := svc.UpdateStatus(ctx, "booking-1", StatusCompleted, "someone-else", true)
		require.NoError(t, err)
		require.Equal(t, StatusCompleted, b.Status)
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc := newTestService(&fakeRepo{getByID: pendingBooking()}, nil)

		_, err := svc.UpdateStatus(ctx, "booking-1", StatusCancelled, "someone-else", false)
		require.ErrorIs(t, err, ErrPermission)
	})

	t.Run("finalized booking cannot transition", func(t *testing.T) {
		done := pendingBooking()
		done.Status = StatusCancelled
		svc := newTestService(&fakeRepo{getByID: done}, nil)

		_, err := svc.UpdateStatus(ctx, "booking-1", StatusConfirmed, "owner-1", false)
		require.ErrorIs(t, err, ErrStatusFinal)
	})

	t.Run("pending is not a valid target", func(t *testing.T) {
		svc := newTestService(&fakeRepo{getByID: pendingBooking()}, nil)

		_, err := svc.UpdateStatus(ctx, "booking-1", StatusPending, "user-1", false)
		require.ErrorIs(t, err, ErrInvalidStatus)
	})
}
