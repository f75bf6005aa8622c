package service_test

import (
	"testing"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/mocks"
	"instrument-tray-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InstrumentServiceTestSuite defines the test suite for InstrumentService
type InstrumentServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockInstrumentRepo   *mocks.MockInstrumentRepositoryInterface
	mockManufacturerRepo *mocks.MockManufacturerRepositoryInterface
	mockTrayRepo         *mocks.MockTrayRepositoryInterface
	instrumentService    *service.InstrumentService
}

// SetupTest sets up the test suite
func (suite *InstrumentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInstrumentRepo = mocks.NewMockInstrumentRepositoryInterface(suite.ctrl)
	suite.mockManufacturerRepo = mocks.NewMockManufacturerRepositoryInterface(suite.ctrl)
	suite.mockTrayRepo = mocks.NewMockTrayRepositoryInterface(suite.ctrl)
	suite.instrumentService = service.NewInstrumentService(
		suite.mockInstrumentRepo,
		suite.mockManufacturerRepo,
		suite.mockTrayRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *InstrumentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests creating a catalog instrument
func (suite *InstrumentServiceTestSuite) TestCreate() {
	manufacturerID := uuid.New()

	suite.mockManufacturerRepo.EXPECT().GetByID(manufacturerID).Return(&models.Manufacturer{
		BaseModel: models.BaseModel{ID: manufacturerID},
		Name:      "Surgitech",
	}, nil)
	suite.mockInstrumentRepo.EXPECT().
		GetByArticleNumber(manufacturerID, "NH-1400").
		Return(nil, apperrors.ErrInstrumentNotFound)
	suite.mockInstrumentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(instrument *models.Instrument) error {
		suite.Equal("NH-1400", instrument.ArticleNumber)
		suite.Equal(manufacturerID, instrument.ManufacturerID)
		instrument.ID = uuid.New()
		return nil
	})
	suite.mockInstrumentRepo.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.Instrument, error) {
		return &models.Instrument{
			BaseModel:      models.BaseModel{ID: id},
			ArticleNumber:  "NH-1400",
			Designation:    "Needle Holder 14cm",
			ManufacturerID: manufacturerID,
		}, nil
	})

	resp, err := suite.instrumentService.Create(&service.CreateInstrumentRequest{
		ArticleNumber:  "NH-1400",
		Designation:    "Needle Holder 14cm",
		ManufacturerID: manufacturerID,
	})

	suite.NoError(err)
	suite.Equal("NH-1400", resp.ArticleNumber)
}

// TestCreateDuplicateArticleNumber tests the per-manufacturer uniqueness check
func (suite *InstrumentServiceTestSuite) TestCreateDuplicateArticleNumber() {
	manufacturerID := uuid.New()

	suite.mockManufacturerRepo.EXPECT().GetByID(manufacturerID).Return(&models.Manufacturer{
		BaseModel: models.BaseModel{ID: manufacturerID},
	}, nil)
	suite.mockInstrumentRepo.EXPECT().
		GetByArticleNumber(manufacturerID, "NH-1400").
		Return(&models.Instrument{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)

	_, err := suite.instrumentService.Create(&service.CreateInstrumentRequest{
		ArticleNumber:  "NH-1400",
		Designation:    "Needle Holder 14cm",
		ManufacturerID: manufacturerID,
	})

	suite.ErrorIs(err, apperrors.ErrInstrumentExists)
}

// TestCreateUnknownManufacturer tests that the manufacturer must exist
func (suite *InstrumentServiceTestSuite) TestCreateUnknownManufacturer() {
	manufacturerID := uuid.New()
	suite.mockManufacturerRepo.EXPECT().GetByID(manufacturerID).Return(nil, apperrors.ErrManufacturerNotFound)

	_, err := suite.instrumentService.Create(&service.CreateInstrumentRequest{
		ArticleNumber:  "NH-1400",
		Designation:    "Needle Holder 14cm",
		ManufacturerID: manufacturerID,
	})

	suite.ErrorIs(err, apperrors.ErrManufacturerNotFound)
}

// TestDeleteInstrumentInUse tests that an instrument referenced by tray
// items cannot be deleted
func (suite *InstrumentServiceTestSuite) TestDeleteInstrumentInUse() {
	instrumentID := uuid.New()

	suite.mockInstrumentRepo.EXPECT().GetByID(instrumentID).Return(&models.Instrument{
		BaseModel: models.BaseModel{ID: instrumentID},
	}, nil)
	suite.mockTrayRepo.EXPECT().CountItemsByInstrument(instrumentID).Return(int64(3), nil)

	err := suite.instrumentService.Delete(instrumentID)

	suite.ErrorIs(err, apperrors.ErrInstrumentInUse)
}

// TestDeleteUnusedInstrument tests deleting an instrument no tray references
func (suite *InstrumentServiceTestSuite) TestDeleteUnusedInstrument() {
	instrumentID := uuid.New()

	suite.mockInstrumentRepo.EXPECT().GetByID(instrumentID).Return(&models.Instrument{
		BaseModel: models.BaseModel{ID: instrumentID},
	}, nil)
	suite.mockTrayRepo.EXPECT().CountItemsByInstrument(instrumentID).Return(int64(0), nil)
	suite.mockInstrumentRepo.EXPECT().Delete(instrumentID).Return(nil)

	err := suite.instrumentService.Delete(instrumentID)

	suite.NoError(err)
}

// TestInstrumentServiceTestSuite runs the test suite
func TestInstrumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InstrumentServiceTestSuite))
}
