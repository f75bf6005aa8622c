package handlers

import (
	"fmt"
	"net/http"

	"instrument-tray-backend/internal/auth"
	"instrument-tray-backend/internal/database/models"
	"instrument-tray-backend/internal/repository"
	"instrument-tray-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrayHandler handles HTTP requests for trays and their items
type TrayHandler struct {
	service       service.TrayServiceInterface
	exportService service.ExportServiceInterface
}

// NewTrayHandler creates a new tray handler
func NewTrayHandler(service service.TrayServiceInterface, exportService service.ExportServiceInterface) *TrayHandler {
	return &TrayHandler{service: service, exportService: exportService}
}

// Create creates a new tray
// @Summary Create a tray
// @Description Creates a tray in draft status. Department-specific trays require a department; cross-department trays never carry one.
// @Tags trays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateTrayRequest true "Tray"
// @Success 201 {object} service.TrayResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Role may not edit trays directly"
// @Router /api/v1/trays [post]
func (h *TrayHandler) Create(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateTrayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tray, err := h.service.Create(principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tray)
}

// GetByID retrieves a tray with items and recent change requests
// @Summary Get a tray by id
// @Tags trays
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tray ID"
// @Success 200 {object} service.TrayResponse
// @Failure 404 {object} ErrorResponse "Tray not found"
// @Router /api/v1/trays/{id} [get]
func (h *TrayHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	tray, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tray)
}

// GetAll lists trays
// @Summary List trays
// @Tags trays
// @Produce json
// @Security BearerAuth
// @Param classification query string false "Filter by classification"
// @Param status query string false "Filter by status"
// @Param department_id query string false "Filter by department"
// @Param search query string false "Search in tray names"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.TrayListResponse
// @Router /api/v1/trays [get]
func (h *TrayHandler) GetAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var filter repository.TrayFilter
	if raw := c.Query("classification"); raw != "" {
		classification := models.TrayClassification(raw)
		if !classification.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid classification parameter"})
			return
		}
		filter.Classification = &classification
	}
	if raw := c.Query("status"); raw != "" {
		status := models.TrayStatus(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status parameter"})
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("department_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department_id parameter"})
			return
		}
		filter.DepartmentID = &id
	}
	filter.Search = c.Query("search")

	trays, err := h.service.GetAll(filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trays)
}

// Update updates tray attributes
// @Summary Update a tray
// @Description Updates tray attributes on the direct-edit path, bypassing the change request workflow. Each update bumps the tray version.
// @Tags trays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tray ID"
// @Param request body service.UpdateTrayRequest true "Changes"
// @Success 200 {object} service.TrayResponse
// @Failure 404 {object} ErrorResponse "Tray not found"
// @Router /api/v1/trays/{id} [put]
func (h *TrayHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTrayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tray, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tray)
}

// Archive soft-deletes a tray
// @Summary Archive a tray
// @Description Sets the tray status to archived. Items and change request history are retained.
// @Tags trays
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tray ID"
// @Success 204 "Archived"
// @Failure 404 {object} ErrorResponse "Tray not found"
// @Router /api/v1/trays/{id} [delete]
func (h *TrayHandler) Archive(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Archive(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem adds an instrument to a tray
// @Summary Add an instrument to a tray
// @Tags trays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tray ID"
// @Param request body service.AddTrayItemRequest true "Item"
// @Success 201 {object} service.TrayItemResponse
// @Failure 404 {object} ErrorResponse "Tray or instrument not found"
// @Failure 409 {object} ErrorResponse "Instrument already in tray"
// @Router /api/v1/trays/{id}/items [post]
func (h *TrayHandler) AddItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AddTrayItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.AddItem(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem updates an item within a tray
// @Summary Update a tray item
// @Tags trays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tray ID"
// @Param instrumentId path string true "Instrument ID"
// @Param request body service.UpdateTrayItemRequest true "Changes"
// @Success 200 {object} service.TrayItemResponse
// @Failure 404 {object} ErrorResponse "Tray item not found"
// @Router /api/v1/trays/{id}/items/{instrumentId} [put]
func (h *TrayHandler) UpdateItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	instrumentID, ok := parseUUIDParam(c, "instrumentId")
	if !ok {
		return
	}

	var req service.UpdateTrayItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.UpdateItem(id, instrumentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveItem removes an instrument from a tray
// @Summary Remove a tray item
// @Tags trays
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tray ID"
// @Param instrumentId path string true "Instrument ID"
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Tray item not found"
// @Router /api/v1/trays/{id}/items/{instrumentId} [delete]
func (h *TrayHandler) RemoveItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	instrumentID, ok := parseUUIDParam(c, "instrumentId")
	if !ok {
		return
	}

	if err := h.service.RemoveItem(id, instrumentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export renders the tray composition as an xlsx workbook
// @Summary Export a tray as Excel
// @Tags trays
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Tray ID"
// @Success 200 {file} binary "Workbook"
// @Failure 404 {object} ErrorResponse "Tray not found"
// @Router /api/v1/trays/{id}/export [get]
func (h *TrayHandler) Export(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportService.ExportTray(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
