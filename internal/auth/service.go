package auth

import (
	"context"
	"fmt"
	"time"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/redis"
	"instrument-tray-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Claims represents JWT token claims for a logged-in staff member
type Claims struct {
	UserID       uuid.UUID   `json:"user_id"`
	Username     string      `json:"username" example:"m.weber"`
	Role         models.Role `json:"role" example:"op_manager"`
	DepartmentID *uuid.UUID  `json:"department_id,omitempty"`
	jwt.RegisteredClaims
}

// Service provides password authentication and JWT handling
type Service struct {
	jwtSecret []byte
	expiresIn time.Duration
	userRepo  repository.UserRepositoryInterface
	blacklist *redis.Client
}

// NewService creates a new authentication service
func NewService(jwtSecret string, expiresIn time.Duration, userRepo repository.UserRepositoryInterface, blacklist *redis.Client) *Service {
	return &Service{
		jwtSecret: []byte(jwtSecret),
		expiresIn: expiresIn,
		userRepo:  userRepo,
		blacklist: blacklist,
	}
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"bearer"`
	ExpiresIn   int64        `json:"expires_in" example:"28800"`
	User        *UserProfile `json:"user"`
}

// UserProfile is the authenticated user as returned by login and /me
type UserProfile struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Role         models.Role `json:"role"`
	DepartmentID *uuid.UUID  `json:"department_id,omitempty"`
}

// Login verifies credentials and issues a JWT. Every attempt is recorded in
// the login log, including failures against unknown usernames.
func (s *Service) Login(req *LoginRequest, ipAddress string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		s.recordLogin(nil, req.Username, ipAddress, false)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordLogin(&user.ID, req.Username, ipAddress, false)
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.Active {
		s.recordLogin(&user.ID, req.Username, ipAddress, false)
		return nil, apperrors.ErrUserInactive
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.recordLogin(&user.ID, req.Username, ipAddress, true)
	logrus.WithFields(logrus.Fields{
		"username": user.Username,
		"role":     user.Role,
	}).Info("User logged in")

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.expiresIn.Seconds()),
		User:        toUserProfile(user),
	}, nil
}

// GenerateJWT creates a signed token for the user
func (s *Service) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		DepartmentID: user.DepartmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "instrument-tray-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateJWT validates and parses a token, including the revocation check
// against the blacklist
func (s *Service) ValidateJWT(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		logrus.WithError(err).Warn("Blacklist lookup failed, treating token as valid")
	} else if revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	return claims, nil
}

// Logout revokes the token by blacklisting its ID until the token would
// have expired anyway
func (s *Service) Logout(ctx context.Context, claims *Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	logrus.WithField("username", claims.Username).Info("User logged out")
	return nil
}

// GetProfile returns the profile for an authenticated user id
func (s *Service) GetProfile(userID uuid.UUID) (*UserProfile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return toUserProfile(user), nil
}

func (s *Service) recordLogin(userID *uuid.UUID, username, ipAddress string, success bool) {
	log := &models.LoginLog{
		UserID:    userID,
		Username:  username,
		IPAddress: ipAddress,
		Success:   success,
	}
	if err := s.userRepo.CreateLoginLog(log); err != nil {
		logrus.WithError(err).Warn("Failed to record login attempt")
	}
}

func toUserProfile(user *models.User) *UserProfile {
	return &UserProfile{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		DepartmentID: user.DepartmentID,
	}
}
