package court

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/venue"
)

type fakeRepo struct {
	Repository

	created []*Court
	byID    map[string]*Court
	deleted []string
}

func (f *fakeRepo) CreateBatch(ctx context.Context, courts []*Court) error {
	for i, ct := range courts {
		ct.ID = "court-" + string(rune('a'+i))
	}
	f.created = append(f.created, courts...)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Court, error) {
	if ct, ok := f.byID[id]; ok {
		return ct, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) Update(ctx context.Context, ct *Court) error { return nil }

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeVenues struct {
	venue.Service
	venues map[string]*venue.Venue
}

func (f *fakeVenues) GetByID(ctx context.Context, id string) (*venue.Venue, error) {
	if v, ok := f.venues[id]; ok {
		return v, nil
	}
	return nil, venue.ErrNotFound
}

func newTestService(repo *fakeRepo) Service {
	return NewService(repo, &fakeVenues{venues: map[string]*venue.Venue{
		"venue-1": {ID: "venue-1", OwnerID: "owner-1"},
	}})
}

func validHours() OperatingHours {
	return OperatingHours{
		Weekdays: []OperatingWindow{{9, 17, 100}},
	}
}

func TestServiceCreateBatch(t *testing.T) {
	ctx := context.Background()

	inputs := []CreateCourtInput{
		{Name: "Court A", SportType: "Badminton", OperatingHours: validHours()},
		{Name: "Court B", SportType: "Badminton", OperatingHours: validHours()},
	}

	t.Run("creates every court in the venue", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		courts, err := svc.CreateBatch(ctx, "venue-1", inputs, "owner-1", false)
		require.NoError(t, err)
		require.Len(t, courts, 2)
		require.Equal(t, "venue-1", courts[0].VenueID)
		require.Equal(t, "venue-1", courts[1].VenueID)
		require.Len(t, repo.created, 2)
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		_, err := svc.CreateBatch(ctx, "venue-1", nil, "owner-1", false)
		require.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("duplicate names within the batch rejected", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		dup := []CreateCourtInput{
			{Name: "Court A", SportType: "Tennis", OperatingHours: validHours()},
			{Name: "court a", SportType: "Tennis", OperatingHours: validHours()},
		}
		_, err := svc.CreateBatch(ctx, "venue-1", dup, "owner-1", false)
		require.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("sport type required", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		bad := []CreateCourtInput{{Name: "Court A", OperatingHours: validHours()}}
		_, err := svc.CreateBatch(ctx, "venue-1", bad, "owner-1", false)
		require.ErrorIs(t, err, ErrSportRequired)
	})

	t.Run("invalid operating hours rejected", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		bad := []CreateCourtInput{{
			Name:           "Court A",
			SportType:      "Tennis",
			OperatingHours: OperatingHours{Weekdays: []OperatingWindow{{17, 9, 100}}},
		}}
		_, err := svc.CreateBatch(ctx, "venue-1", bad, "owner-1", false)
		require.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("unknown venue rejected", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		_, err := svc.CreateBatch(ctx, "missing", inputs, "owner-1", false)
		require.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("only the venue owner may add courts", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		_, err := svc.CreateBatch(ctx, "venue-1", inputs, "someone-else", false)
		require.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("admin may add courts to any venue", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		_, err := svc.CreateBatch(ctx, "venue-1", inputs, "someone-else", true)
		require.NoError(t, err)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	existing := &Court{
		ID:             "court-1",
		VenueID:        "venue-1",
		Name:           "Court A",
		SportType:      "Badminton",
		OperatingHours: validHours(),
	}

	t.Run("owner updates hours after validation", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*Court{"court-1": existing}}
		svc := newTestService(repo)

		hours := OperatingHours{Weekends: []OperatingWindow{{8, 20, 250}}}
		ct, err := svc.Update(ctx, "court-1", UpdateRequest{OperatingHours: &hours}, "owner-1", false)
		require.NoError(t, err)
		require.Equal(t, hours, ct.OperatingHours)
	})

	t.Run("invalid replacement hours rejected", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*Court{"court-1": existing}}
		svc := newTestService(repo)

		hours := OperatingHours{Weekends: []OperatingWindow{{8, 20, -5}}}
		_, err := svc.Update(ctx, "court-1", UpdateRequest{OperatingHours: &hours}, "owner-1", false)
		require.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*Court{"court-1": existing}}
		svc := newTestService(repo)

		name := "Court Z"
		_, err := svc.Update(ctx, "court-1", UpdateRequest{Name: &name}, "someone-else", false)
		require.ErrorIs(t, err, ErrNotOwner)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{byID: map[string]*Court{"court-1": {
		ID:      "court-1",
		VenueID: "venue-1",
	}}}
	svc := newTestService(repo)

	require.ErrorIs(t, svc.Delete(ctx, "court-1", "someone-else", false), ErrNotOwner)

	require.NoError(t, svc.Delete(ctx, "court-1", "owner-1", false))
	require.Equal(t, []string{"court-1"}, repo.deleted)
}
