package handlers

import (
	"net/http"

	"instrument-tray-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles HTTP requests for departments
type DepartmentHandler struct {
	service service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(service service.DepartmentServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// Create creates a new department
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateDepartmentRequest true "Department"
// @Success 201 {object} service.DepartmentResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Department code already exists"
// @Router /api/v1/departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	department, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

// GetByID retrieves a department
// @Summary Get a department by id
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} service.DepartmentResponse
// @Failure 404 {object} ErrorResponse "Department not found"
// @Router /api/v1/departments/{id} [get]
func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	department, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

// GetAll lists departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.DepartmentListResponse
// @Router /api/v1/departments [get]
func (h *DepartmentHandler) GetAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	departments, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// Update updates a department
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param request body service.UpdateDepartmentRequest true "Changes"
// @Success 200 {object} service.DepartmentResponse
// @Failure 404 {object} ErrorResponse "Department not found"
// @Router /api/v1/departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	department, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

// Delete removes a department
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Router /api/v1/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
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
