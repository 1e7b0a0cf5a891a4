package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/booking"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
	"github.com/quickcourt/quickcourt-backend/internal/user"
	"github.com/quickcourt/quickcourt-backend/internal/venue"
)

type BookingHandler struct {
	service      booking.Service
	venueService venue.Service
}

func NewHandler(service booking.Service, venueService venue.Service) *BookingHandler {
	return &BookingHandler{
		service:      service,
		venueService: venueService,
	}
}

func isAdmin(c *gin.Context) bool {
	return auth.GetUserRole(c) == string(user.RoleAdmin)
}

// writeValidationError maps the pure fit-check errors onto HTTP responses.
// Everything else falls through to response.Error.
func writeValidationError(c *gin.Context, err error) {
	var outOfWindow *booking.OutOfWindowError
	var insufficient *booking.InsufficientRunError
	var afterClose *booking.EndsAfterCloseError

	switch {
	case errors.As(err, &outOfWindow):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      outOfWindow.Error(),
			"open_hour":  outOfWindow.OpenHour,
			"close_hour": outOfWindow.CloseHour,
		})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        insufficient.Error(),
			"max_duration": insufficient.MaxDuration,
		})
	case errors.As(err, &afterClose):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      afterClose.Error(),
			"close_hour": afterClose.CloseHour,
		})
	default:
		response.Error(c, err)
	}
}

// Slots returns the priced slot list for a court on one date.
func (h *BookingHandler) Slots(c *gin.Context) {
	var req SlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date, err := request.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), req.CourtID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, SlotsResponse{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   slots,
	})
}

// Create books a slot range for the authenticated user.
func (h *BookingHandler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := request.ParseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:        auth.GetUserID(c),
		VenueID:       body.VenueID,
		CourtID:       body.CourtID,
		Date:          date,
		StartHour:     body.StartHour,
		DurationHours: body.DurationHours,
	})
	if err != nil {
		writeValidationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// List returns the caller's bookings. Admins may filter by any user or see
// all bookings.
func (h *BookingHandler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filterUserID := auth.GetUserID(c)
	if isAdmin(c) {
		// Empty user_id means all users.
		filterUserID = req.UserID
	}

	filter := booking.Filter{
		UserID:   filterUserID,
		CourtID:  req.CourtID,
		VenueID:  req.VenueID,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if err := parseDateRange(&filter, req.DateFrom, req.DateTo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	h.list(c, filter)
}

// ListForOwner returns bookings across every venue the caller owns.
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		OwnerID:  auth.GetUserID(c),
		CourtID:  req.CourtID,
		VenueID:  req.VenueID,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if err := parseDateRange(&filter, req.DateFrom, req.DateTo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	h.list(c, filter)
}

func (h *BookingHandler) list(c *gin.Context, filter booking.Filter) {
	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func parseDateRange(filter *booking.Filter, from, to string) error {
	if from != "" {
		t, err := request.ParseDate(from)
		if err != nil {
			return err
		}
		filter.DateFrom = &t
	}
	if to != "" {
		t, err := request.ParseDate(to)
		if err != nil {
			return err
		}
		filter.DateTo = &t
	}
	return nil
}

// Get returns one booking. Visible to the booking owner, the venue owner
// and admins.
func (h *BookingHandler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	callerID := auth.GetUserID(c)
	if b.UserID != callerID && !isAdmin(c) && !h.ownsVenue(c, b.VenueID, callerID) {
		// Do not reveal that the booking exists.
		c.JSON(http.StatusNotFound, gin.H{"error": booking.ErrNotFound.Message})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *BookingHandler) ownsVenue(c *gin.Context, venueID, userID string) bool {
	v, err := h.venueService.GetByID(c.Request.Context(), venueID)
	if err != nil {
		return false
	}
	return v.OwnerID == userID
}

// UpdateStatus confirms, cancels or completes a booking.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), uri.ID, booking.Status(body.Status), auth.GetUserID(c), isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
