package service_test

import (
	"testing"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/mocks"
	"instrument-tray-backend/internal/policy"
	"instrument-tray-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TrayServiceTestSuite defines the test suite for TrayService
type TrayServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTrayRepo       *mocks.MockTrayRepositoryInterface
	mockDepartmentRepo *mocks.MockDepartmentRepositoryInterface
	mockInstrumentRepo *mocks.MockInstrumentRepositoryInterface
	trayService        *service.TrayService
}

// SetupTest sets up the test suite
func (suite *TrayServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTrayRepo = mocks.NewMockTrayRepositoryInterface(suite.ctrl)
	suite.mockDepartmentRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.mockInstrumentRepo = mocks.NewMockInstrumentRepositoryInterface(suite.ctrl)
	suite.trayService = service.NewTrayService(
		suite.mockTrayRepo,
		suite.mockDepartmentRepo,
		suite.mockInstrumentRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *TrayServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TrayServiceTestSuite) creator() policy.Principal {
	return policy.Principal{ID: uuid.New(), Role: models.RoleOpManager}
}

// TestCreateCrossDepartmentDiscardsDepartment tests that a cross-department
// tray never carries a department, even when the caller supplies one
func (suite *TrayServiceTestSuite) TestCreateCrossDepartmentDiscardsDepartment() {
	deptID := uuid.New()

	suite.mockTrayRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(tray *models.Tray) error {
		suite.Equal(models.TrayClassificationCrossDepartment, tray.Classification)
		suite.Nil(tray.DepartmentID)
		suite.Equal(models.TrayStatusDraft, tray.Status)
		suite.Equal(1, tray.Version)
		tray.ID = uuid.New()
		return nil
	})
	suite.mockTrayRepo.EXPECT().GetWithDetails(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.Tray, error) {
		return &models.Tray{
			BaseModel:      models.BaseModel{ID: id},
			Name:           "Basic Set",
			Classification: models.TrayClassificationCrossDepartment,
			Status:         models.TrayStatusDraft,
			Version:        1,
		}, nil
	})

	resp, err := suite.trayService.Create(suite.creator(), &service.CreateTrayRequest{
		Name:           "Basic Set",
		Classification: models.TrayClassificationCrossDepartment,
		DepartmentID:   &deptID,
	})

	suite.NoError(err)
	suite.Nil(resp.DepartmentID)
}

// TestCreateDepartmentSpecificRequiresDepartment tests that a
// department-specific tray without a department is rejected
func (suite *TrayServiceTestSuite) TestCreateDepartmentSpecificRequiresDepartment() {
	_, err := suite.trayService.Create(suite.creator(), &service.CreateTrayRequest{
		Name:           "Ortho Set",
		Classification: models.TrayClassificationDepartmentSpecific,
	})

	suite.ErrorIs(err, apperrors.ErrDepartmentRequired)
}

// TestCreateDepartmentSpecificUnknownDepartment tests that the referenced
// department must exist
func (suite *TrayServiceTestSuite) TestCreateDepartmentSpecificUnknownDepartment() {
	deptID := uuid.New()
	suite.mockDepartmentRepo.EXPECT().GetByID(deptID).Return(nil, apperrors.ErrDepartmentNotFound)

	_, err := suite.trayService.Create(suite.creator(), &service.CreateTrayRequest{
		Name:           "Ortho Set",
		Classification: models.TrayClassificationDepartmentSpecific,
		DepartmentID:   &deptID,
	})

	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)
}

// TestCreateDepartmentSpecific tests the valid department-specific path
func (suite *TrayServiceTestSuite) TestCreateDepartmentSpecific() {
	deptID := uuid.New()
	suite.mockDepartmentRepo.EXPECT().GetByID(deptID).Return(&models.Department{
		BaseModel: models.BaseModel{ID: deptID},
		Name:      "Orthopedics",
		Code:      "ORT",
	}, nil)

	suite.mockTrayRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(tray *models.Tray) error {
		suite.Require().NotNil(tray.DepartmentID)
		suite.Equal(deptID, *tray.DepartmentID)
		tray.ID = uuid.New()
		return nil
	})
	suite.mockTrayRepo.EXPECT().GetWithDetails(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.Tray, error) {
		return &models.Tray{
			BaseModel:      models.BaseModel{ID: id},
			Name:           "Ortho Set",
			Classification: models.TrayClassificationDepartmentSpecific,
			Status:         models.TrayStatusDraft,
			Version:        1,
			DepartmentID:   &deptID,
		}, nil
	})

	resp, err := suite.trayService.Create(suite.creator(), &service.CreateTrayRequest{
		Name:           "Ortho Set",
		Classification: models.TrayClassificationDepartmentSpecific,
		DepartmentID:   &deptID,
	})

	suite.NoError(err)
	suite.Require().NotNil(resp.DepartmentID)
	suite.Equal(deptID, *resp.DepartmentID)
}

// TestUpdateReclassificationClearsDepartment tests that switching a tray to
// cross-department clears its department assignment
func (suite *TrayServiceTestSuite) TestUpdateReclassificationClearsDepartment() {
	trayID := uuid.New()
	deptID := uuid.New()
	cross := models.TrayClassificationCrossDepartment

	suite.mockTrayRepo.EXPECT().GetByID(trayID).Return(&models.Tray{
		BaseModel:      models.BaseModel{ID: trayID},
		Classification: models.TrayClassificationDepartmentSpecific,
		DepartmentID:   &deptID,
	}, nil)

	suite.mockTrayRepo.EXPECT().
		UpdateAttributes(trayID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
			suite.Equal(cross, updates["classification"])
			suite.Nil(updates["department_id"])
			return nil
		})
	suite.mockTrayRepo.EXPECT().GetWithDetails(trayID).Return(&models.Tray{
		BaseModel:      models.BaseModel{ID: trayID},
		Classification: cross,
		Version:        2,
	}, nil)

	resp, err := suite.trayService.Update(trayID, &service.UpdateTrayRequest{
		Classification: &cross,
	})

	suite.NoError(err)
	suite.Nil(resp.DepartmentID)
}

// TestAddItemDefaultsQuantity tests that an omitted quantity defaults to one
func (suite *TrayServiceTestSuite) TestAddItemDefaultsQuantity() {
	trayID := uuid.New()
	instrumentID := uuid.New()

	suite.mockInstrumentRepo.EXPECT().GetByID(instrumentID).Return(&models.Instrument{
		BaseModel: models.BaseModel{ID: instrumentID},
	}, nil)
	suite.mockTrayRepo.EXPECT().AddItem(gomock.Any()).DoAndReturn(func(item *models.TrayItem) error {
		suite.Equal(1, item.Quantity)
		return nil
	})
	suite.mockTrayRepo.EXPECT().GetItem(trayID, instrumentID).Return(&models.TrayItem{
		TrayID:       trayID,
		InstrumentID: instrumentID,
		Quantity:     1,
	}, nil)

	resp, err := suite.trayService.AddItem(trayID, &service.AddTrayItemRequest{
		InstrumentID: instrumentID,
	})

	suite.NoError(err)
	suite.Equal(1, resp.Quantity)
}

// TestAddItemDuplicateInstrument tests adding an instrument already present
// in the tray
func (suite *TrayServiceTestSuite) TestAddItemDuplicateInstrument() {
	trayID := uuid.New()
	instrumentID := uuid.New()

	suite.mockInstrumentRepo.EXPECT().GetByID(instrumentID).Return(&models.Instrument{
		BaseModel: models.BaseModel{ID: instrumentID},
	}, nil)
	suite.mockTrayRepo.EXPECT().AddItem(gomock.Any()).Return(apperrors.ErrTrayItemExists)

	_, err := suite.trayService.AddItem(trayID, &service.AddTrayItemRequest{
		InstrumentID: instrumentID,
	})

	suite.ErrorIs(err, apperrors.ErrTrayItemExists)
}

// TestUpdateItemNoFields tests that an empty item update is rejected
func (suite *TrayServiceTestSuite) TestUpdateItemNoFields() {
	_, err := suite.trayService.UpdateItem(uuid.New(), uuid.New(), &service.UpdateTrayItemRequest{})

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestTrayServiceTestSuite runs the test suite
func TestTrayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrayServiceTestSuite))
}
