package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/booking"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
)

// SlotsRequest defines query parameters for the availability endpoint.
type SlotsRequest struct {
	CourtID string `form:"court_id" binding:"required,uuid"`
	Date    string `form:"date" binding:"required"`
}

type SlotsResponse struct {
	CourtID string         `json:"court_id"`
	Date    string         `json:"date"`
	Slots   []booking.Slot `json:"slots"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	CourtID  string `form:"court_id" binding:"omitempty,uuid"`
	VenueID  string `form:"venue_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	UserID   string `form:"user_id" binding:"omitempty,uuid"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

type BookingResponse struct {
	ID         string    `json:"id"`
	CourtID    string    `json:"court_id"`
	CourtName  string    `json:"court_name"`
	VenueID    string    `json:"venue_id"`
	VenueName  string    `json:"venue_name"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Date       string    `json:"date"`
	StartHour  float64   `json:"start_hour"`
	EndHour    float64   `json:"end_hour"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		CourtID:    b.CourtID,
		CourtName:  b.CourtName,
		VenueID:    b.VenueID,
		VenueName:  b.VenueName,
		UserID:     b.UserID,
		UserName:   b.UserName,
		Date:       b.Date.Format(request.DateFormat),
		StartHour:  b.StartHour,
		EndHour:    b.EndHour,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	VenueID       string  `json:"venue_id" binding:"omitempty,uuid"`
	CourtID       string  `json:"court_id" binding:"required,uuid"`
	Date          string  `json:"date" binding:"required"`
	StartHour     float64 `json:"start_hour" binding:"min=0,max=23.99"`
	DurationHours float64 `json:"duration_hours" binding:"required,gt=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled completed"`
}
