package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
)

type ListCourtsRequest struct {
	request.ListParams
	Sport string `form:"sport"`
}

type OperatingWindowBody struct {
	StartHour    float64 `json:"start_hour"`
	EndHour      float64 `json:"end_hour"`
	PricePerHour float64 `json:"price_per_hour"`
}

type OperatingHoursBody struct {
	Weekdays []OperatingWindowBody `json:"weekdays"`
	Weekends []OperatingWindowBody `json:"weekends"`
	Holidays []OperatingWindowBody `json:"holidays"`
}

func (b OperatingHoursBody) toModel() court.OperatingHours {
	conv := func(ws []OperatingWindowBody) []court.OperatingWindow {
		out := make([]court.OperatingWindow, len(ws))
		for i, w := range ws {
			out[i] = court.OperatingWindow{
				StartHour:    w.StartHour,
				EndHour:      w.EndHour,
				PricePerHour: w.PricePerHour,
			}
		}
		return out
	}
	return court.OperatingHours{
		Weekdays: conv(b.Weekdays),
		Weekends: conv(b.Weekends),
		Holidays: conv(b.Holidays),
	}
}

type CreateCourtBody struct {
	Name           string             `json:"name" binding:"required"`
	SportType      string             `json:"sport_type" binding:"required"`
	OperatingHours OperatingHoursBody `json:"operating_hours"`
}

// CreateCourtsRequest creates one or more courts in a single venue.
type CreateCourtsRequest struct {
	VenueID string            `json:"venue_id" binding:"required,uuid"`
	Courts  []CreateCourtBody `json:"courts" binding:"required,min=1,dive"`
}

type UpdateCourtRequest struct {
	Name           *string             `json:"name"`
	SportType      *string             `json:"sport_type"`
	OperatingHours *OperatingHoursBody `json:"operating_hours"`
}

type CourtResponse struct {
	ID             string               `json:"id"`
	VenueID        string               `json:"venue_id"`
	VenueName      string               `json:"venue_name"`
	Name           string               `json:"name"`
	SportType      string               `json:"sport_type"`
	OperatingHours court.OperatingHours `json:"operating_hours"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func NewCourtResponse(ct *court.Court) CourtResponse {
	return CourtResponse{
		ID:             ct.ID,
		VenueID:        ct.VenueID,
		VenueName:      ct.VenueName,
		Name:           ct.Name,
		SportType:      ct.SportType,
		OperatingHours: ct.OperatingHours,
		CreatedAt:      ct.CreatedAt,
		UpdatedAt:      ct.UpdatedAt,
	}
}
