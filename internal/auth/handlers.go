package auth

import (
	"net/http"

	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	service     *Service
	userService service.UserServiceInterface
}

// NewHandler creates a new authentication handler
func NewHandler(service *Service, userService service.UserServiceInterface) *Handler {
	return &Handler{service: service, userService: userService}
}

// Login handles POST /api/auth/login
// @Summary Log in with username and password
// @Description Verifies credentials and returns a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "Credentials"
// @Success 200 {object} auth.LoginResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or deactivated account"
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.Login(&req, c.ClientIP())
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// Me handles GET /api/auth/me
// @Summary Get the authenticated user's profile
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.UserProfile
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /api/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	claims, ok := GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, err := h.service.GetProfile(claims.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Logout handles POST /api/auth/logout
// @Summary Log out and revoke the current token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Logged out"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Register handles POST /api/auth/register
// @Summary Register a new staff account
// @Description Creates a user account. Restricted to OP managers.
// @Tags authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateUserRequest true "New account"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 403 {object} map[string]interface{} "Not an OP manager"
// @Failure 409 {object} map[string]interface{} "Username or email taken"
// @Router /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}
