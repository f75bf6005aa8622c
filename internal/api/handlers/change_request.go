package handlers

import (
	"net/http"

	"instrument-tray-backend/internal/auth"
	"instrument-tray-backend/internal/database/models"
	"instrument-tray-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChangeRequestHandler handles HTTP requests for the change request workflow
type ChangeRequestHandler struct {
	service  service.ChangeRequestServiceInterface
	approval service.ApprovalServiceInterface
}

// NewChangeRequestHandler creates a new change request handler
func NewChangeRequestHandler(
	service service.ChangeRequestServiceInterface,
	approval service.ApprovalServiceInterface,
) *ChangeRequestHandler {
	return &ChangeRequestHandler{service: service, approval: approval}
}

// Propose files a new change request
// @Summary Propose a tray change
// @Description Files a pending change request for a tray. Any authenticated staff member may propose.
// @Tags change-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProposeChangeRequest true "Proposal"
// @Success 201 {object} service.ChangeRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid type or payload"
// @Failure 404 {object} ErrorResponse "Tray not found"
// @Router /api/v1/change-requests [post]
func (h *ChangeRequestHandler) Propose(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.ProposeChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	request, err := h.service.Propose(principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// List retrieves change requests
// @Summary List change requests
// @Tags change-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param tray_id query string false "Filter by tray"
// @Success 200 {array} service.ChangeRequestResponse
// @Router /api/v1/change-requests [get]
func (h *ChangeRequestHandler) List(c *gin.Context) {
	var status *models.ChangeRequestStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ChangeRequestStatus(raw)
		if !s.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status parameter"})
			return
		}
		status = &s
	}

	var trayID *uuid.UUID
	if raw := c.Query("tray_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tray_id parameter"})
			return
		}
		trayID = &id
	}

	requests, err := h.service.List(status, trayID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ListPending retrieves the caller's decision inbox
// @Summary List pending change requests for the caller
// @Description Lists pending change requests the caller is allowed to decide. Head physicians see department-specific trays of their own department; OP managers see everything.
// @Tags change-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.ChangeRequestResponse
// @Failure 403 {object} ErrorResponse "Role has no decision authority"
// @Router /api/v1/change-requests/pending [get]
func (h *ChangeRequestHandler) ListPending(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	requests, err := h.service.ListPending(principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Approve approves a pending change request and applies it
// @Summary Approve a change request
// @Description Approves a pending change request and applies its mutation to the tray in one transaction. Of two concurrent decisions exactly one wins.
// @Tags change-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Param request body service.ApproveRequest false "Optional comment"
// @Success 200 {object} service.ChangeRequestResponse
// @Failure 403 {object} ErrorResponse "No decision authority for this tray"
// @Failure 404 {object} ErrorResponse "Change request not found"
// @Failure 409 {object} ErrorResponse "Already decided"
// @Router /api/v1/change-requests/{id}/approve [post]
func (h *ChangeRequestHandler) Approve(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ApproveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	request, err := h.approval.Approve(id, principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// Reject rejects a pending change request
// @Summary Reject a change request
// @Description Rejects a pending change request. A non-empty reason is mandatory; the tray is left untouched.
// @Tags change-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Param request body service.RejectRequest true "Reason"
// @Success 200 {object} service.ChangeRequestResponse
// @Failure 400 {object} ErrorResponse "Missing rejection reason"
// @Failure 403 {object} ErrorResponse "No decision authority for this tray"
// @Failure 404 {object} ErrorResponse "Change request not found"
// @Failure 409 {object} ErrorResponse "Already decided"
// @Router /api/v1/change-requests/{id}/reject [post]
func (h *ChangeRequestHandler) Reject(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	request, err := h.approval.Reject(id, principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// GetByID retrieves one change request
// @Summary Get a change request by id
// @Tags change-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Success 200 {object} service.ChangeRequestResponse
// @Failure 404 {object} ErrorResponse "Change request not found"
// @Router /api/v1/change-requests/{id} [get]
func (h *ChangeRequestHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}
