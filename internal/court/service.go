package court

import (
	"context"
	"strings"

	"github.com/quickcourt/quickcourt-backend/internal/venue"
)

// CreateCourtInput is one court within a batch create.
type CreateCourtInput struct {
	Name           string
	SportType      string
	OperatingHours OperatingHours
}

// UpdateRequest carries data for partial updates.
type UpdateRequest struct {
	Name           *string
	SportType      *string
	OperatingHours *OperatingHours
}

type Service interface {
	// CreateBatch adds one or more courts to a single venue. Names must be
	// unique within the batch and within the venue.
	CreateBatch(ctx context.Context, venueID string, inputs []CreateCourtInput, callerID string, isAdmin bool) ([]*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, callerID string, isAdmin bool) (*Court, error)
	Delete(ctx context.Context, id string, callerID string, isAdmin bool) error
}

type service struct {
	repo   Repository
	venues venue.Service
}

func NewService(repo Repository, venues venue.Service) Service {
	return &service{repo: repo, venues: venues}
}

// checkVenueOwnership loads the venue and verifies the caller may manage its
// courts.
func (s *service) checkVenueOwnership(ctx context.Context, venueID, callerID string, isAdmin bool) error {
	v, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if err == venue.ErrNotFound {
			return ErrVenueNotFound
		}
		return err
	}
	if !isAdmin && v.OwnerID != callerID {
		return ErrNotOwner
	}
	return nil
}

func (s *service) CreateBatch(ctx context.Context, venueID string, inputs []CreateCourtInput, callerID string, isAdmin bool) ([]*Court, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}

	if err := s.checkVenueOwnership(ctx, venueID, callerID, isAdmin); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(inputs))
	courts := make([]*Court, len(inputs))
	for i, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if seen[strings.ToLower(name)] {
			return nil, ErrDuplicateName
		}
		seen[strings.ToLower(name)] = true

		if strings.TrimSpace(in.SportType) == "" {
			return nil, ErrSportRequired
		}
		if err := in.OperatingHours.Validate(); err != nil {
			return nil, err
		}

		courts[i] = &Court{
			VenueID:        venueID,
			Name:           name,
			SportType:      in.SportType,
			OperatingHours: in.OperatingHours,
		}
	}

	if err := s.repo.CreateBatch(ctx, courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, callerID string, isAdmin bool) (*Court, error) {
	ct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkVenueOwnership(ctx, ct.VenueID, callerID, isAdmin); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		ct.Name = name
	}
	if req.SportType != nil {
		if strings.TrimSpace(*req.SportType) == "" {
			return nil, ErrSportRequired
		}
		ct.SportType = *req.SportType
	}
	if req.OperatingHours != nil {
		if err := req.OperatingHours.Validate(); err != nil {
			return nil, err
		}
		ct.OperatingHours = *req.OperatingHours
	}

	if err := s.repo.Update(ctx, ct); err != nil {
		return nil, err
	}
	return ct, nil
}

func (s *service) Delete(ctx context.Context, id string, callerID string, isAdmin bool) error {
	ct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkVenueOwnership(ctx, ct.VenueID, callerID, isAdmin); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
