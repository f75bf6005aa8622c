package handlers

import (
	"net/http"

	"instrument-tray-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InstrumentHandler handles HTTP requests for the instrument catalog
type InstrumentHandler struct {
	service service.InstrumentServiceInterface
}

// NewInstrumentHandler creates a new instrument handler
func NewInstrumentHandler(service service.InstrumentServiceInterface) *InstrumentHandler {
	return &InstrumentHandler{service: service}
}

// Create creates a new instrument
// @Summary Create a catalog instrument
// @Tags instruments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateInstrumentRequest true "Instrument"
// @Success 201 {object} service.InstrumentResponse
// @Failure 404 {object} ErrorResponse "Manufacturer not found"
// @Failure 409 {object} ErrorResponse "Article number already exists for the manufacturer"
// @Router /api/v1/instruments [post]
func (h *InstrumentHandler) Create(c *gin.Context) {
	var req service.CreateInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	instrument, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, instrument)
}

// GetByID retrieves an instrument
// @Summary Get an instrument by id
// @Tags instruments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Instrument ID"
// @Success 200 {object} service.InstrumentResponse
// @Failure 404 {object} ErrorResponse "Instrument not found"
// @Router /api/v1/instruments/{id} [get]
func (h *InstrumentHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	instrument, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instrument)
}

// GetAll lists instruments
// @Summary List instruments
// @Description Lists catalog instruments, optionally filtered by manufacturer and a search term matched against designation and article number
// @Tags instruments
// @Produce json
// @Security BearerAuth
// @Param manufacturer_id query string false "Filter by manufacturer"
// @Param search query string false "Search in designation and article number"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.InstrumentListResponse
// @Router /api/v1/instruments [get]
func (h *InstrumentHandler) GetAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var manufacturerID *uuid.UUID
	if raw := c.Query("manufacturer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer_id parameter"})
			return
		}
		manufacturerID = &id
	}

	instruments, err := h.service.GetAll(manufacturerID, c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instruments)
}

// Update updates an instrument
// @Summary Update an instrument
// @Tags instruments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Instrument ID"
// @Param request body service.UpdateInstrumentRequest true "Changes"
// @Success 200 {object} service.InstrumentResponse
// @Failure 404 {object} ErrorResponse "Instrument not found"
// @Router /api/v1/instruments/{id} [put]
func (h *InstrumentHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	instrument, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instrument)
}

// Delete removes an instrument
// @Summary Delete an instrument
// @Description Deletes a catalog instrument. Instruments still placed in any tray cannot be deleted.
// @Tags instruments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Instrument ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Instrument not found"
// @Failure 409 {object} ErrorResponse "Instrument is still used in trays"
// @Router /api/v1/instruments/{id} [delete]
func (h *InstrumentHandler) Delete(c *gin.Context) {
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
