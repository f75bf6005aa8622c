package handlers

import (
	"net/http"

	"instrument-tray-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ManufacturerHandler handles HTTP requests for manufacturers
type ManufacturerHandler struct {
	service service.ManufacturerServiceInterface
}

// NewManufacturerHandler creates a new manufacturer handler
func NewManufacturerHandler(service service.ManufacturerServiceInterface) *ManufacturerHandler {
	return &ManufacturerHandler{service: service}
}

// Create creates a new manufacturer
// @Summary Create a manufacturer
// @Tags manufacturers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateManufacturerRequest true "Manufacturer"
// @Success 201 {object} service.ManufacturerResponse
// @Failure 409 {object} ErrorResponse "Manufacturer already exists"
// @Router /api/v1/manufacturers [post]
func (h *ManufacturerHandler) Create(c *gin.Context) {
	var req service.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	manufacturer, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, manufacturer)
}

// GetByID retrieves a manufacturer
// @Summary Get a manufacturer by id
// @Tags manufacturers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Manufacturer ID"
// @Success 200 {object} service.ManufacturerResponse
// @Failure 404 {object} ErrorResponse "Manufacturer not found"
// @Router /api/v1/manufacturers/{id} [get]
func (h *ManufacturerHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	manufacturer, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, manufacturer)
}

// GetAll lists manufacturers
// @Summary List manufacturers
// @Tags manufacturers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.ManufacturerListResponse
// @Router /api/v1/manufacturers [get]
func (h *ManufacturerHandler) GetAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	manufacturers, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, manufacturers)
}

// Update updates a manufacturer
// @Summary Update a manufacturer
// @Tags manufacturers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Manufacturer ID"
// @Param request body service.UpdateManufacturerRequest true "Changes"
// @Success 200 {object} service.ManufacturerResponse
// @Failure 404 {object} ErrorResponse "Manufacturer not found"
// @Router /api/v1/manufacturers/{id} [put]
func (h *ManufacturerHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	manufacturer, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, manufacturer)
}

// Delete removes a manufacturer
// @Summary Delete a manufacturer
// @Tags manufacturers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Manufacturer ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Manufacturer not found"
// @Router /api/v1/manufacturers/{id} [delete]
func (h *ManufacturerHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
