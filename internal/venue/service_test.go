package venue

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeVenueRepo struct {
	byID    map[string]*Venue
	nextID  int
	deleted []string
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{byID: map[string]*Venue{}}
}

func (r *fakeVenueRepo) Create(_ context.Context, v *Venue) error {
	r.nextID++
	v.ID = fmt.Sprintf("venue-%d", r.nextID)
	cp := *v
	r.byID[v.ID] = &cp
	return nil
}

func (r *fakeVenueRepo) GetByID(_ context.Context, id string) (*Venue, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVenueRepo) List(_ context.Context, _ Filter) ([]*Venue, int, error) {
	return nil, 0, nil
}

func (r *fakeVenueRepo) Update(_ context.Context, v *Venue) error {
	if _, ok := r.byID[v.ID]; !ok {
		return ErrNotFound
	}
	cp := *v
	r.byID[v.ID] = &cp
	return nil
}

func (r *fakeVenueRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	v, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	v.Status = status
	return nil
}

func (r *fakeVenueRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		OwnerID:    "owner-1",
		Name:       "Smash Arena",
		Address:    "12 MG Road",
		City:       "Ahmedabad",
		State:      "Gujarat",
		Pincode:    "380001",
		SportTypes: []string{"badminton", "tennis"},
		VenueType:  "Indoor",
	}
}

func TestVenueServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("new listing starts pending", func(t *testing.T) {
		repo := newFakeVenueRepo()
		svc := NewService(repo)

		v, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		require.NotEmpty(t, v.ID)
		require.Equal(t, StatusPending, v.Status)
		require.Equal(t, "owner-1", v.OwnerID)
	})

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{
			name:    "blank name",
			mutate:  func(r *CreateRequest) { r.Name = "   " },
			wantErr: ErrNameRequired,
		},
		{
			name:    "missing city",
			mutate:  func(r *CreateRequest) { r.City = "" },
			wantErr: ErrAddressRequired,
		},
		{
			name:    "missing pincode",
			mutate:  func(r *CreateRequest) { r.Pincode = " " },
			wantErr: ErrAddressRequired,
		},
		{
			name:    "no sport types",
			mutate:  func(r *CreateRequest) { r.SportTypes = nil },
			wantErr: ErrSportsRequired,
		},
		{
			name:    "unknown venue type",
			mutate:  func(r *CreateRequest) { r.VenueType = "Underwater" },
			wantErr: ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeVenueRepo())
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("empty venue type is allowed", func(t *testing.T) {
		svc := NewService(newFakeVenueRepo())
		req := validCreateRequest()
		req.VenueType = ""

		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	})
}

func TestVenueServiceUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeVenueRepo, Service, *Venue) {
		t.Helper()
		repo := newFakeVenueRepo()
		svc := NewService(repo)
		v, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		return repo, svc, v
	}

	t.Run("owner updates fields", func(t *testing.T) {
		repo, svc, v := setup(t)

		name := "Smash Arena 2"
		city := "Surat"
		got, err := svc.Update(ctx, v.ID, UpdateRequest{Name: &name, City: &city}, "owner-1", false)
		require.NoError(t, err)
		require.Equal(t, "Smash Arena 2", got.Name)
		require.Equal(t, "Surat", got.City)
		require.Equal(t, "Smash Arena 2", repo.byID[v.ID].Name)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		_, svc, v := setup(t)

		name := "Hijacked"
		_, err := svc.Update(ctx, v.ID, UpdateRequest{Name: &name}, "owner-2", false)
		require.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("admin may update any venue", func(t *testing.T) {
		_, svc, v := setup(t)

		about := "Renovated in 2026"
		got, err := svc.Update(ctx, v.ID, UpdateRequest{About: &about}, "admin-1", true)
		require.NoError(t, err)
		require.Equal(t, "Renovated in 2026", got.About)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, svc, v := setup(t)

		name := "  "
		_, err := svc.Update(ctx, v.ID, UpdateRequest{Name: &name}, "owner-1", false)
		require.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("clearing sport types rejected", func(t *testing.T) {
		_, svc, v := setup(t)

		_, err := svc.Update(ctx, v.ID, UpdateRequest{SportTypes: []string{}}, "owner-1", false)
		require.ErrorIs(t, err, ErrSportsRequired)
	})

	t.Run("unknown venue", func(t *testing.T) {
		_, svc, _ := setup(t)

		name := "Ghost"
		_, err := svc.Update(ctx, "venue-404", UpdateRequest{Name: &name}, "owner-1", false)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestVenueServiceDelete(t *testing.T) {
	ctx := context.Background()

	repo := newFakeVenueRepo()
	svc := NewService(repo)
	v, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	err = svc.Delete(ctx, v.ID, "owner-2", false)
	require.ErrorIs(t, err, ErrNotOwner)

	err = svc.Delete(ctx, v.ID, "owner-1", false)
	require.NoError(t, err)
	require.Equal(t, []string{v.ID}, repo.deleted)
}

func TestVenueServiceSetStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeVenueRepo, Service, *Venue) {
		t.Helper()
		repo := newFakeVenueRepo()
		svc := NewService(repo)
		v, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		return repo, svc, v
	}

	t.Run("approve", func(t *testing.T) {
		repo, svc, v := setup(t)

		got, err := svc.SetStatus(ctx, v.ID, StatusApproved)
		require.NoError(t, err)
		require.Equal(t, StatusApproved, got.Status)
		require.Equal(t, StatusApproved, repo.byID[v.ID].Status)
	})

	t.Run("reject", func(t *testing.T) {
		repo, svc, v := setup(t)

		_, err := svc.SetStatus(ctx, v.ID, StatusRejected)
		require.NoError(t, err)
		require.Equal(t, StatusRejected, repo.byID[v.ID].Status)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		_, svc, v := setup(t)

		_, err := svc.SetStatus(ctx, v.ID, StatusPending)
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown venue", func(t *testing.T) {
		_, svc, _ := setup(t)

		_, err := svc.SetStatus(ctx, "venue-404", StatusApproved)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
