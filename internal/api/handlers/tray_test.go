package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"instrument-tray-backend/internal/api/handlers"
	"instrument-tray-backend/internal/auth"
	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/mocks"
	"instrument-tray-backend/internal/policy"
	"instrument-tray-backend/internal/repository"
	"instrument-tray-backend/internal/service"
	"instrument-tray-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TrayHandlerTestSuite defines the test suite for TrayHandler
type TrayHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTrayServiceInterface
	mockExport  *mocks.MockExportServiceInterface
	handler     *handlers.TrayHandler
	httpSuite   *testutils.HTTPTestSuite
	principal   policy.Principal
}

// SetupTest sets up the test suite
func (suite *TrayHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTrayServiceInterface(suite.ctrl)
	suite.mockExport = mocks.NewMockExportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTrayHandler(suite.mockService, suite.mockExport)

	suite.principal = policy.Principal{ID: uuid.New(), Role: models.RoleOpManager}

	// Setup HTTP test suite with a stub auth middleware injecting the principal
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set(auth.PrincipalKey, suite.principal)
		c.Next()
	})

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	trays := v1.Group("/trays")
	{
		trays.POST("", suite.handler.Create)
		trays.GET("", suite.handler.GetAll)
		trays.GET("/:id", suite.handler.GetByID)
		trays.PUT("/:id", suite.handler.Update)
		trays.DELETE("/:id", suite.handler.Archive)
		trays.GET("/:id/export", suite.handler.Export)
		trays.POST("/:id/items", suite.handler.AddItem)
		trays.PUT("/:id/items/:instrumentId", suite.handler.UpdateItem)
		trays.DELETE("/:id/items/:instrumentId", suite.handler.RemoveItem)
	}
}

// TearDownTest cleans up after each test
func (suite *TrayHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests the Create handler
func (suite *TrayHandlerTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		trayID := uuid.New()

		requestBody := map[string]interface{}{
			"name":           "Basic Set",
			"classification": "cross_department",
		}

		expectedResponse := &service.TrayResponse{
			ID:             trayID,
			Name:           "Basic Set",
			Classification: models.TrayClassificationCrossDepartment,
			Status:         models.TrayStatusDraft,
			Version:        1,
		}

		suite.mockService.EXPECT().
			Create(suite.principal, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trays", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.TrayResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Basic Set", response.Name)
		assert.Equal(t, models.TrayStatusDraft, response.Status)
	})

	suite.T().Run("MissingDepartment", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(suite.principal, gomock.Any()).
			Return(nil, apperrors.ErrDepartmentRequired).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trays", map[string]interface{}{
			"name":           "Ortho Set",
			"classification": "department_specific",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/trays", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetAll tests the GetAll handler
func (suite *TrayHandlerTestSuite) TestGetAll() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetAll(gomock.Any(), 1, 50).
			Return(&service.TrayListResponse{
				Trays:    []service.TrayResponse{{ID: uuid.New(), Name: "Basic Set"}},
				Total:    1,
				Page:     1,
				PageSize: 50,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trays", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TrayListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(1), response.Total)
	})

	suite.T().Run("ClassificationFilter", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetAll(gomock.Any(), 1, 50).
			DoAndReturn(func(filter repository.TrayFilter, page, pageSize int) (*service.TrayListResponse, error) {
				assert.NotNil(t, filter.Classification)
				assert.Equal(t, models.TrayClassificationDepartmentSpecific, *filter.Classification)
				return &service.TrayListResponse{Trays: []service.TrayResponse{}, Page: 1, PageSize: 50}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trays?classification=department_specific", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidClassification", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trays?classification=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUpdate tests the Update handler
func (suite *TrayHandlerTestSuite) TestUpdate() {
	suite.T().Run("Success", func(t *testing.T) {
		trayID := uuid.New()

		suite.mockService.EXPECT().
			Update(trayID, gomock.Any()).
			Return(&service.TrayResponse{ID: trayID, Name: "Renamed Set", Version: 2}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/trays/"+trayID.String(), map[string]interface{}{
			"name": "Renamed Set",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TrayResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 2, response.Version)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		trayID := uuid.New()

		suite.mockService.EXPECT().
			Update(trayID, gomock.Any()).
			Return(nil, apperrors.ErrTrayNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/trays/"+trayID.String(), map[string]interface{}{
			"name": "Renamed Set",
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestArchive tests the Archive handler
func (suite *TrayHandlerTestSuite) TestArchive() {
	trayID := uuid.New()

	suite.mockService.EXPECT().Archive(trayID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/trays/"+trayID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestAddItem tests the AddItem handler
func (suite *TrayHandlerTestSuite) TestAddItem() {
	suite.T().Run("Success", func(t *testing.T) {
		trayID := uuid.New()
		instrumentID := uuid.New()

		suite.mockService.EXPECT().
			AddItem(trayID, gomock.Any()).
			Return(&service.TrayItemResponse{
				TrayID:       trayID,
				InstrumentID: instrumentID,
				Quantity:     2,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trays/"+trayID.String()+"/items", map[string]interface{}{
			"instrument_id": instrumentID.String(),
			"quantity":      2,
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		trayID := uuid.New()

		suite.mockService.EXPECT().
			AddItem(trayID, gomock.Any()).
			Return(nil, apperrors.ErrTrayItemExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trays/"+trayID.String()+"/items", map[string]interface{}{
			"instrument_id": uuid.New().String(),
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestRemoveItem tests the RemoveItem handler
func (suite *TrayHandlerTestSuite) TestRemoveItem() {
	trayID := uuid.New()
	instrumentID := uuid.New()

	suite.mockService.EXPECT().RemoveItem(trayID, instrumentID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/trays/"+trayID.String()+"/items/"+instrumentID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestExport tests the Export handler
func (suite *TrayHandlerTestSuite) TestExport() {
	suite.T().Run("Success", func(t *testing.T) {
		trayID := uuid.New()

		suite.mockExport.EXPECT().
			ExportTray(trayID).
			Return(bytes.NewBufferString("workbook-bytes"), "tray-basic-set-v3-2026-08-31.xlsx", nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trays/"+trayID.String()+"/export", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "tray-basic-set-v3-2026-08-31.xlsx")
		assert.Equal(t, "workbook-bytes", recorder.Body.String())
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		trayID := uuid.New()

		suite.mockExport.EXPECT().
			ExportTray(trayID).
			Return(nil, "", apperrors.ErrTrayNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trays/"+trayID.String()+"/export", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestTrayHandlerTestSuite runs the test suite
func TestTrayHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrayHandlerTestSuite))
}
