package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

type CourtHandler struct {
	service court.Service
}

func NewHandler(service court.Service) *CourtHandler {
	return &CourtHandler{service: service}
}

func isAdmin(c *gin.Context) bool {
	return auth.GetUserRole(c) == string(user.RoleAdmin)
}

// writeServiceError maps court service errors to HTTP responses.
func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, court.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
	case errors.Is(err, court.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, court.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, court.ErrEmptyName),
		errors.Is(err, court.ErrEmptyBatch),
		errors.Is(err, court.ErrSportRequired),
		errors.Is(err, court.ErrInvalidHours):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, court.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// Create adds one or more courts to a venue owned by the caller.
func (h *CourtHandler) Create(c *gin.Context) {
	var body CreateCourtsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	inputs := make([]court.CreateCourtInput, len(body.Courts))
	for i, ct := range body.Courts {
		inputs[i] = court.CreateCourtInput{
			Name:           ct.Name,
			SportType:      ct.SportType,
			OperatingHours: ct.OperatingHours.toModel(),
		}
	}

	courts, err := h.service.CreateBatch(c.Request.Context(), body.VenueID, inputs, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		writeServiceError(c, err, "failed to create courts")
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}
	c.JSON(http.StatusCreated, gin.H{"courts": items})
}

// Get retrieves a single court with its operating hours.
func (h *CourtHandler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ct, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		writeServiceError(c, err, "failed to get court")
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

// ListByVenue retrieves the courts of one venue.
func (h *CourtHandler) ListByVenue(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var req ListCourtsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	h.list(c, court.Filter{
		VenueID:   uri.ID,
		SportType: req.Sport,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
}

// ListMine retrieves courts across every venue the caller owns.
func (h *CourtHandler) ListMine(c *gin.Context) {
	var req ListCourtsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	h.list(c, court.Filter{
		OwnerID:   auth.GetUserID(c),
		SportType: req.Sport,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
}

func (h *CourtHandler) list(c *gin.Context, filter court.Filter) {
	courts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courts"})
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// Update modifies a court's name, sport type or schedule.
func (h *CourtHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := court.UpdateRequest{
		Name:      body.Name,
		SportType: body.SportType,
	}
	if body.OperatingHours != nil {
		hours := body.OperatingHours.toModel()
		req.OperatingHours = &hours
	}

	ct, err := h.service.Update(c.Request.Context(), uri.ID, req, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		writeServiceError(c, err, "failed to update court")
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

// Delete removes a court.
func (h *CourtHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c), isAdmin(c)); err != nil {
		writeServiceError(c, err, "failed to delete court")
		return
	}

	c.Status(http.StatusNoContent)
}
