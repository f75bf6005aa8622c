package auth_test

import (
	"context"
	"testing"
	"time"

	"instrument-tray-backend/internal/auth"
	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceTestSuite defines the test suite for the auth Service
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.Service
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	// nil blacklist client disables revocation checks
	suite.authService = auth.NewService("test-secret", time.Hour, suite.mockUserRepo, nil)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) userWithPassword(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Username:     "m.weber",
		Email:        "m.weber@hospital.test",
		PasswordHash: string(hash),
		FirstName:    "Maria",
		LastName:     "Weber",
		Role:         models.RoleOpManager,
		Active:       true,
	}
}

// TestLogin tests a successful login
func (suite *AuthServiceTestSuite) TestLogin() {
	user := suite.userWithPassword("correct-horse")

	suite.mockUserRepo.EXPECT().GetByUsername("m.weber").Return(user, nil)
	suite.mockUserRepo.EXPECT().CreateLoginLog(gomock.Any()).DoAndReturn(func(log *models.LoginLog) error {
		suite.True(log.Success)
		suite.Equal("m.weber", log.Username)
		return nil
	})

	resp, err := suite.authService.Login(&auth.LoginRequest{
		Username: "m.weber",
		Password: "correct-horse",
	}, "10.0.0.1")

	suite.NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.Equal("bearer", resp.TokenType)
	suite.Equal(int64(3600), resp.ExpiresIn)
	suite.Equal(user.ID, resp.User.ID)
}

// TestLoginWrongPassword tests a failed login with a wrong password
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := suite.userWithPassword("correct-horse")

	suite.mockUserRepo.EXPECT().GetByUsername("m.weber").Return(user, nil)
	suite.mockUserRepo.EXPECT().CreateLoginLog(gomock.Any()).DoAndReturn(func(log *models.LoginLog) error {
		suite.False(log.Success)
		return nil
	})

	_, err := suite.authService.Login(&auth.LoginRequest{
		Username: "m.weber",
		Password: "battery-staple",
	}, "10.0.0.1")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnknownUsernameIsLogged tests that attempts against unknown
// usernames are recorded too
func (suite *AuthServiceTestSuite) TestLoginUnknownUsernameIsLogged() {
	suite.mockUserRepo.EXPECT().GetByUsername("ghost").Return(nil, apperrors.ErrUserNotFound)
	suite.mockUserRepo.EXPECT().CreateLoginLog(gomock.Any()).DoAndReturn(func(log *models.LoginLog) error {
		suite.False(log.Success)
		suite.Nil(log.UserID)
		suite.Equal("ghost", log.Username)
		return nil
	})

	_, err := suite.authService.Login(&auth.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	}, "10.0.0.1")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestLoginInactiveUser tests that deactivated accounts cannot log in
func (suite *AuthServiceTestSuite) TestLoginInactiveUser() {
	user := suite.userWithPassword("correct-horse")
	user.Active = false

	suite.mockUserRepo.EXPECT().GetByUsername("m.weber").Return(user, nil)
	suite.mockUserRepo.EXPECT().CreateLoginLog(gomock.Any()).Return(nil)

	_, err := suite.authService.Login(&auth.LoginRequest{
		Username: "m.weber",
		Password: "correct-horse",
	}, "10.0.0.1")

	suite.ErrorIs(err, apperrors.ErrUserInactive)
}

// TestJWTRoundTrip tests that a generated token validates back to the same claims
func (suite *AuthServiceTestSuite) TestJWTRoundTrip() {
	deptID := uuid.New()
	user := suite.userWithPassword("correct-horse")
	user.Role = models.RoleHeadPhysician
	user.DepartmentID = &deptID

	token, err := suite.authService.GenerateJWT(user)
	suite.Require().NoError(err)

	claims, err := suite.authService.ValidateJWT(context.Background(), token)

	suite.NoError(err)
	suite.Equal(user.ID, claims.UserID)
	suite.Equal(user.Username, claims.Username)
	suite.Equal(models.RoleHeadPhysician, claims.Role)
	suite.Require().NotNil(claims.DepartmentID)
	suite.Equal(deptID, *claims.DepartmentID)
	suite.NotEmpty(claims.ID)
}

// TestValidateJWTWrongSecret tests that tokens signed with a different
// secret are rejected
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other := auth.NewService("other-secret", time.Hour, suite.mockUserRepo, nil)
	user := suite.userWithPassword("correct-horse")

	token, err := other.GenerateJWT(user)
	suite.Require().NoError(err)

	_, err = suite.authService.ValidateJWT(context.Background(), token)
	suite.Error(err)
}

// TestValidateJWTExpired tests that expired tokens are rejected
func (suite *AuthServiceTestSuite) TestValidateJWTExpired() {
	expired := auth.NewService("test-secret", -time.Minute, suite.mockUserRepo, nil)
	user := suite.userWithPassword("correct-horse")

	token, err := expired.GenerateJWT(user)
	suite.Require().NoError(err)

	_, err = suite.authService.ValidateJWT(context.Background(), token)
	suite.Error(err)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
