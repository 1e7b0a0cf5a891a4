package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
	"github.com/quickcourt/quickcourt-backend/internal/user"
	"github.com/quickcourt/quickcourt-backend/internal/venue"
)

type VenueHandler struct {
	service venue.Service
}

func NewHandler(service venue.Service) *VenueHandler {
	return &VenueHandler{service: service}
}

func isAdmin(c *gin.Context) bool {
	return auth.GetUserRole(c) == string(user.RoleAdmin)
}

// List retrieves a paginated list of approved venues with optional filtering.
// Unapproved listings are never visible here, regardless of the caller.
func (h *VenueHandler) List(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := venue.Filter{
		City:     req.City,
		Sport:    req.Sport,
		Status:   string(venue.StatusApproved),
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// ListMine retrieves the venues owned by the authenticated user, including
// pending and rejected ones.
func (h *VenueHandler) ListMine(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := venue.Filter{
		OwnerID:  auth.GetUserID(c),
		City:     req.City,
		Sport:    req.Sport,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// Get retrieves a single venue. Pending and rejected listings are only
// visible to their owner and admins.
func (h *VenueHandler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get venue"})
		}
		return
	}

	if v.Status != venue.StatusApproved && v.OwnerID != auth.GetUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

// Create registers a new venue listing owned by the caller. The listing
// starts in pending status and awaits admin approval.
func (h *VenueHandler) Create(c *gin.Context) {
	var body CreateVenueRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Create(c.Request.Context(), venue.CreateRequest{
		OwnerID:      auth.GetUserID(c),
		Name:         body.Name,
		Description:  body.Description,
		About:        body.About,
		VenueType:    body.VenueType,
		Address:      body.Address,
		City:         body.City,
		State:        body.State,
		Pincode:      body.Pincode,
		SportTypes:   body.SportTypes,
		Amenities:    body.Amenities,
		PhotoFileIDs: body.PhotoFileIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNameRequired),
			errors.Is(err, venue.ErrAddressRequired),
			errors.Is(err, venue.ErrSportsRequired),
			errors.Is(err, venue.ErrInvalidType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create venue"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewVenueResponse(v))
}

// Update modifies a venue. Only the owner or an admin may update.
func (h *VenueHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateVenueRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Update(c.Request.Context(), uri.ID, venue.UpdateRequest{
		Name:         body.Name,
		Description:  body.Description,
		About:        body.About,
		VenueType:    body.VenueType,
		Address:      body.Address,
		City:         body.City,
		State:        body.State,
		Pincode:      body.Pincode,
		SportTypes:   body.SportTypes,
		Amenities:    body.Amenities,
		PhotoFileIDs: body.PhotoFileIDs,
	}, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		case errors.Is(err, venue.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, venue.ErrNameRequired),
			errors.Is(err, venue.ErrSportsRequired),
			errors.Is(err, venue.ErrInvalidType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update venue"})
		}
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

// Delete removes a venue. Only the owner or an admin may delete.
func (h *VenueHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		case errors.Is(err, venue.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete venue"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPending retrieves venues awaiting approval.
// Access Control: Admin only.
func (h *VenueHandler) ListPending(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := venue.Filter{
		Status:   string(venue.StatusPending),
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// Approve marks a pending venue as approved.
// Access Control: Admin only.
func (h *VenueHandler) Approve(c *gin.Context) {
	h.setStatus(c, venue.StatusApproved)
}

// Reject marks a pending venue as rejected.
// Access Control: Admin only.
func (h *VenueHandler) Reject(c *gin.Context) {
	h.setStatus(c, venue.StatusRejected)
}

func (h *VenueHandler) setStatus(c *gin.Context, status venue.Status) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	v, err := h.service.SetStatus(c.Request.Context(), uri.ID, status)
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		case errors.Is(err, venue.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update venue status"})
		}
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}
