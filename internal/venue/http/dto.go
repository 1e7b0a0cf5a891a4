package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	"github.com/quickcourt/quickcourt-backend/internal/venue"
)

// ListVenuesRequest defines query parameters for the public venue listing.
type ListVenuesRequest struct {
	request.ListParams
	City  string `form:"city"`
	Sport string `form:"sport"`
}

type VenueResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	OwnerName    string    `json:"owner_name"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	About        string    `json:"about,omitempty"`
	VenueType    string    `json:"venue_type,omitempty"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Pincode      string    `json:"pincode"`
	SportTypes   []string  `json:"sport_types"`
	Amenities    []string  `json:"amenities"`
	PhotoFileIDs []string  `json:"photo_file_ids"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VenueTag is a brief representation of a venue.
type VenueTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	resp := VenueResponse{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		OwnerName:    v.OwnerName,
		Name:         v.Name,
		Description:  v.Description,
		About:        v.About,
		VenueType:    v.VenueType,
		Address:      v.Address,
		City:         v.City,
		State:        v.State,
		Pincode:      v.Pincode,
		SportTypes:   v.SportTypes,
		Amenities:    v.Amenities,
		PhotoFileIDs: v.PhotoFileIDs,
		Status:       string(v.Status),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	// Avoid null arrays in JSON.
	if resp.SportTypes == nil {
		resp.SportTypes = []string{}
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	if resp.PhotoFileIDs == nil {
		resp.PhotoFileIDs = []string{}
	}
	return resp
}

type CreateVenueRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	About        string   `json:"about"`
	VenueType    string   `json:"venue_type" binding:"omitempty,oneof=Indoor Outdoor"`
	Address      string   `json:"address" binding:"required"`
	City         string   `json:"city" binding:"required"`
	State        string   `json:"state" binding:"required"`
	Pincode      string   `json:"pincode" binding:"required"`
	SportTypes   []string `json:"sport_types" binding:"required,min=1"`
	Amenities    []string `json:"amenities"`
	PhotoFileIDs []string `json:"photo_file_ids" binding:"omitempty,dive,uuid"`
}

type UpdateVenueRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	About        *string  `json:"about"`
	VenueType    *string  `json:"venue_type" binding:"omitempty,oneof=Indoor Outdoor"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Pincode      *string  `json:"pincode"`
	SportTypes   []string `json:"sport_types"`
	Amenities    []string `json:"amenities"`
	PhotoFileIDs []string `json:"photo_file_ids" binding:"omitempty,dive,uuid"`
}
