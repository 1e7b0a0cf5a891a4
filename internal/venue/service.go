package venue

import (
	"context"
	"strings"
)

// CreateRequest carries data to create a venue listing.
type CreateRequest struct {
	OwnerID      string
	Name         string
	Description  string
	About        string
	VenueType    string
	Address      string
	City         string
	State        string
	Pincode      string
	SportTypes   []string
	Amenities    []string
	PhotoFileIDs []string
}

// UpdateRequest carries data for partial updates.
type UpdateRequest struct {
	Name         *string
	Description  *string
	About        *string
	VenueType    *string
	Address      *string
	City         *string
	State        *string
	Pincode      *string
	SportTypes   []string
	Amenities    []string
	PhotoFileIDs []string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, callerID string, isAdmin bool) (*Venue, error)
	Delete(ctx context.Context, id string, callerID string, isAdmin bool) error

	// SetStatus moves a pending venue to approved or rejected. Admin only;
	// the handler is responsible for the role check.
	SetStatus(ctx context.Context, id string, status Status) (*Venue, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateVenueType(t string) error {
	if t != "" && t != "Indoor" && t != "Outdoor" {
		return ErrInvalidType
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.City) == "" ||
		strings.TrimSpace(req.State) == "" || strings.TrimSpace(req.Pincode) == "" {
		return nil, ErrAddressRequired
	}
	if len(req.SportTypes) == 0 {
		return nil, ErrSportsRequired
	}
	if err := validateVenueType(req.VenueType); err != nil {
		return nil, err
	}

	v := &Venue{
		OwnerID:      req.OwnerID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		About:        req.About,
		VenueType:    req.VenueType,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		SportTypes:   req.SportTypes,
		Amenities:    req.Amenities,
		PhotoFileIDs: req.PhotoFileIDs,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, callerID string, isAdmin bool) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && v.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.About != nil {
		v.About = *req.About
	}
	if req.VenueType != nil {
		if err := validateVenueType(*req.VenueType); err != nil {
			return nil, err
		}
		v.VenueType = *req.VenueType
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.City != nil {
		v.City = *req.City
	}
	if req.State != nil {
		v.State = *req.State
	}
	if req.Pincode != nil {
		v.Pincode = *req.Pincode
	}
	if req.SportTypes != nil {
		if len(req.SportTypes) == 0 {
			return nil, ErrSportsRequired
		}
		v.SportTypes = req.SportTypes
	}
	if req.Amenities != nil {
		v.Amenities = req.Amenities
	}
	if req.PhotoFileIDs != nil {
		v.PhotoFileIDs = req.PhotoFileIDs
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) Delete(ctx context.Context, id string, callerID string, isAdmin bool) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && v.OwnerID != callerID {
		return ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) SetStatus(ctx context.Context, id string, status Status) (*Venue, error) {
	if status != StatusApproved && status != StatusRejected {
		return nil, ErrInvalidStatus
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Status = status
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return v, nil
}
