package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"instrument-tray-backend/internal/api/handlers"
	"instrument-tray-backend/internal/auth"
	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/mocks"
	"instrument-tray-backend/internal/policy"
	"instrument-tray-backend/internal/service"
	"instrument-tray-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ChangeRequestHandlerTestSuite defines the test suite for ChangeRequestHandler
type ChangeRequestHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockService  *mocks.MockChangeRequestServiceInterface
	mockApproval *mocks.MockApprovalServiceInterface
	handler      *handlers.ChangeRequestHandler
	httpSuite    *testutils.HTTPTestSuite
	principal    policy.Principal
}

// SetupTest sets up the test suite
func (suite *ChangeRequestHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockChangeRequestServiceInterface(suite.ctrl)
	suite.mockApproval = mocks.NewMockApprovalServiceInterface(suite.ctrl)
	suite.handler = handlers.NewChangeRequestHandler(suite.mockService, suite.mockApproval)

	suite.principal = policy.Principal{ID: uuid.New(), Role: models.RoleOpManager}

	// Setup HTTP test suite with a stub auth middleware injecting the principal
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set(auth.PrincipalKey, suite.principal)
		c.Next()
	})

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	requests := v1.Group("/change-requests")
	{
		requests.POST("", suite.handler.Propose)
		requests.GET("", suite.handler.List)
		requests.GET("/pending", suite.handler.ListPending)
		requests.GET("/:id", suite.handler.GetByID)
		requests.POST("/:id/approve", suite.handler.Approve)
		requests.POST("/:id/reject", suite.handler.Reject)
	}
}

// TearDownTest cleans up after each test
func (suite *ChangeRequestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestPropose tests the Propose handler
func (suite *ChangeRequestHandlerTestSuite) TestPropose() {
	suite.T().Run("Success", func(t *testing.T) {
		trayID := uuid.New()
		requestID := uuid.New()

		requestBody := map[string]interface{}{
			"tray_id": trayID.String(),
			"type":    "add_instrument",
			"new_data": map[string]interface{}{
				"instrument_id": uuid.New().String(),
				"quantity":      2,
			},
			"comment": "needed for laparoscopy",
		}

		expectedResponse := &service.ChangeRequestResponse{
			ID:     requestID,
			TrayID: trayID,
			Type:   models.ChangeRequestTypeAddInstrument,
			Status: models.ChangeRequestStatusPending,
		}

		suite.mockService.EXPECT().
			Propose(suite.principal, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.ChangeRequestResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, requestID, response.ID)
		assert.Equal(t, models.ChangeRequestStatusPending, response.Status)
	})

	suite.T().Run("InvalidPayload", func(t *testing.T) {
		suite.mockService.EXPECT().
			Propose(suite.principal, gomock.Any()).
			Return(nil, apperrors.NewValidationError("new_data", "payload is required for this change request type")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests", map[string]interface{}{
			"tray_id": uuid.New().String(),
			"type":    "add_instrument",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("TrayNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			Propose(suite.principal, gomock.Any()).
			Return(nil, apperrors.ErrTrayNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests", map[string]interface{}{
			"tray_id": uuid.New().String(),
			"type":    "deactivate_tray",
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestApprove tests the Approve handler
func (suite *ChangeRequestHandlerTestSuite) TestApprove() {
	suite.T().Run("Success", func(t *testing.T) {
		requestID := uuid.New()
		decidedBy := suite.principal.ID

		expectedResponse := &service.ChangeRequestResponse{
			ID:          requestID,
			Status:      models.ChangeRequestStatusApproved,
			DecidedByID: &decidedBy,
		}

		suite.mockApproval.EXPECT().
			Approve(requestID, suite.principal, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests/"+requestID.String()+"/approve", map[string]interface{}{
			"comment": "approved after review",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ChangeRequestResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.ChangeRequestStatusApproved, response.Status)
	})

	suite.T().Run("EmptyBodyIsAllowed", func(t *testing.T) {
		requestID := uuid.New()

		suite.mockApproval.EXPECT().
			Approve(requestID, suite.principal, gomock.Any()).
			Return(&service.ChangeRequestResponse{ID: requestID, Status: models.ChangeRequestStatusApproved}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests/"+requestID.String()+"/approve", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("AlreadyDecided", func(t *testing.T) {
		requestID := uuid.New()

		suite.mockApproval.EXPECT().
			Approve(requestID, suite.principal, gomock.Any()).
			Return(nil, apperrors.ErrChangeRequestAlreadyDecided).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests/"+requestID.String()+"/approve", nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("NoAuthority", func(t *testing.T) {
		requestID := uuid.New()

		suite.mockApproval.EXPECT().
			Approve(requestID, suite.principal, gomock.Any()).
			Return(nil, apperrors.ErrCannotDecide).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests/"+requestID.String()+"/approve", nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests/not-a-uuid/approve", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestReject tests the Reject handler
func (suite *ChangeRequestHandlerTestSuite) TestReject() {
	suite.T().Run("Success", func(t *testing.T) {
		requestID := uuid.New()

		suite.mockApproval.EXPECT().
			Reject(requestID, suite.principal, gomock.Any()).
			DoAndReturn(func(id uuid.UUID, decider policy.Principal, req *service.RejectRequest) (*service.ChangeRequestResponse, error) {
				assert.Equal(t, "not clinically justified", req.Reason)
				return &service.ChangeRequestResponse{
					ID:              requestID,
					Status:          models.ChangeRequestStatusRejected,
					RejectionReason: req.Reason,
				}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests/"+requestID.String()+"/reject", map[string]interface{}{
			"rejection_reason": "not clinically justified",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ChangeRequestResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.ChangeRequestStatusRejected, response.Status)
	})

	suite.T().Run("MissingReason", func(t *testing.T) {
		requestID := uuid.New()

		suite.mockApproval.EXPECT().
			Reject(requestID, suite.principal, gomock.Any()).
			Return(nil, apperrors.ErrRejectionReasonEmpty).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/change-requests/"+requestID.String()+"/reject", map[string]interface{}{
			"rejection_reason": "",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestList tests the List handler
func (suite *ChangeRequestHandlerTestSuite) TestList() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Nil(), gomock.Nil()).
			Return([]service.ChangeRequestResponse{
				{ID: uuid.New(), Status: models.ChangeRequestStatusPending},
				{ID: uuid.New(), Status: models.ChangeRequestStatusApproved},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/change-requests", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.ChangeRequestResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("StatusFilter", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any(), gomock.Nil()).
			DoAndReturn(func(status *models.ChangeRequestStatus, trayID *uuid.UUID) ([]service.ChangeRequestResponse, error) {
				assert.Equal(t, models.ChangeRequestStatusPending, *status)
				return []service.ChangeRequestResponse{}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/change-requests?status=pending", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidStatus", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/change-requests?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestListPending tests the ListPending handler
func (suite *ChangeRequestHandlerTestSuite) TestListPending() {
	suite.mockService.EXPECT().
		ListPending(suite.principal).
		Return([]service.ChangeRequestResponse{
			{ID: uuid.New(), Status: models.ChangeRequestStatusPending},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/change-requests/pending", nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var response []service.ChangeRequestResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	suite.NoError(err)
	suite.Len(response, 1)
}

// TestGetByID tests the GetByID handler
func (suite *ChangeRequestHandlerTestSuite) TestGetByID() {
	suite.T().Run("Success", func(t *testing.T) {
		requestID := uuid.New()

		suite.mockService.EXPECT().
			Get(requestID).
			Return(&service.ChangeRequestResponse{ID: requestID, Status: models.ChangeRequestStatusPending}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/change-requests/"+requestID.String(), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		requestID := uuid.New()

		suite.mockService.EXPECT().
			Get(requestID).
			Return(nil, apperrors.ErrChangeRequestNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/change-requests/"+requestID.String(), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestChangeRequestHandlerTestSuite runs the test suite
func TestChangeRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChangeRequestHandlerTestSuite))
}
