//go:build integration
// +build integration

package repository

import (
	"testing"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TrayRepositoryTestSuite tests the TrayRepository against a real Postgres
type TrayRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TrayRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TrayRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTrayRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TrayRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TrayRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TrayRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createUser persists a factory user
func (suite *TrayRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.WithRole(models.RoleOpManager)
	suite.Require().NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))
	return user
}

// createInstrument persists a manufacturer and one of its instruments
func (suite *TrayRepositoryTestSuite) createInstrument() *models.Instrument {
	manufacturer := suite.factories.Manufacturer.Create()
	suite.Require().NoError(NewManufacturerRepository(suite.baseTestSuite.DB).Create(manufacturer))

	instrument := suite.factories.Instrument.Create(manufacturer.ID)
	suite.Require().NoError(NewInstrumentRepository(suite.baseTestSuite.DB).Create(instrument))
	return instrument
}

// createTray persists a cross-department tray
func (suite *TrayRepositoryTestSuite) createTray() *models.Tray {
	tray := suite.factories.Tray.Create(suite.createUser().ID)
	suite.Require().NoError(suite.repo.Create(tray))
	return tray
}

// TestCreate tests creating a tray
func (suite *TrayRepositoryTestSuite) TestCreate() {
	user := suite.createUser()
	tray := suite.factories.Tray.Create(user.ID)

	err := suite.repo.Create(tray)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, tray.ID)

	loaded, err := suite.repo.GetByID(tray.ID)
	suite.NoError(err)
	suite.Equal(1, loaded.Version)
	suite.Equal(models.TrayStatusActive, loaded.Status)
}

// TestAddItemBumpsVersionOnce tests that adding an item raises the version
// by exactly one
func (suite *TrayRepositoryTestSuite) TestAddItemBumpsVersionOnce() {
	tray := suite.createTray()
	instrument := suite.createInstrument()

	err := suite.repo.AddItem(&models.TrayItem{
		TrayID:       tray.ID,
		InstrumentID: instrument.ID,
		Quantity:     2,
	})
	suite.NoError(err)

	loaded, err := suite.repo.GetByID(tray.ID)
	suite.NoError(err)
	suite.Equal(2, loaded.Version)
}

// TestAddItemDuplicatePair tests that the (tray, instrument) pair is unique
// and that a rejected add does not move the version
func (suite *TrayRepositoryTestSuite) TestAddItemDuplicatePair() {
	tray := suite.createTray()
	instrument := suite.createInstrument()

	suite.NoError(suite.repo.AddItem(&models.TrayItem{
		TrayID:       tray.ID,
		InstrumentID: instrument.ID,
		Quantity:     1,
	}))

	err := suite.repo.AddItem(&models.TrayItem{
		TrayID:       tray.ID,
		InstrumentID: instrument.ID,
		Quantity:     5,
	})
	suite.ErrorIs(err, apperrors.ErrTrayItemExists)

	loaded, err := suite.repo.GetByID(tray.ID)
	suite.NoError(err)
	suite.Equal(2, loaded.Version)
}

// TestUpdateAttributesBumpsVersion tests the single-statement attribute
// update and version bump
func (suite *TrayRepositoryTestSuite) TestUpdateAttributesBumpsVersion() {
	tray := suite.createTray()

	err := suite.repo.UpdateAttributes(tray.ID, map[string]interface{}{
		"name": "Renamed Set",
	})
	suite.NoError(err)

	loaded, err := suite.repo.GetByID(tray.ID)
	suite.NoError(err)
	suite.Equal("Renamed Set", loaded.Name)
	suite.Equal(2, loaded.Version)
}

// TestRemoveItemNotFound tests removing an instrument that is not in the tray
func (suite *TrayRepositoryTestSuite) TestRemoveItemNotFound() {
	tray := suite.createTray()
	instrument := suite.createInstrument()

	err := suite.repo.RemoveItem(tray.ID, instrument.ID)

	suite.ErrorIs(err, apperrors.ErrTrayItemNotFound)
}

// TestArchiveKeepsVersionAndItems tests that archiving flips the status
// without bumping the version and retains items
func (suite *TrayRepositoryTestSuite) TestArchiveKeepsVersionAndItems() {
	tray := suite.createTray()
	instrument := suite.createInstrument()
	suite.NoError(suite.repo.AddItem(&models.TrayItem{
		TrayID:       tray.ID,
		InstrumentID: instrument.ID,
		Quantity:     1,
	}))

	err := suite.repo.Archive(tray.ID)
	suite.NoError(err)

	loaded, err := suite.repo.GetWithDetails(tray.ID)
	suite.NoError(err)
	suite.Equal(models.TrayStatusArchived, loaded.Status)
	suite.Equal(2, loaded.Version)
	suite.Len(loaded.Items, 1)
}

// TestIncrementVersion tests the bare version bump used by the change applier
func (suite *TrayRepositoryTestSuite) TestIncrementVersion() {
	tray := suite.createTray()

	suite.NoError(suite.repo.IncrementVersion(tray.ID))
	suite.NoError(suite.repo.IncrementVersion(tray.ID))

	loaded, err := suite.repo.GetByID(tray.ID)
	suite.NoError(err)
	suite.Equal(3, loaded.Version)
}

// TestCountItemsByInstrument tests counting tray references to an instrument
func (suite *TrayRepositoryTestSuite) TestCountItemsByInstrument() {
	instrument := suite.createInstrument()
	trayA := suite.createTray()
	trayB := suite.createTray()

	suite.NoError(suite.repo.AddItem(&models.TrayItem{TrayID: trayA.ID, InstrumentID: instrument.ID, Quantity: 1}))
	suite.NoError(suite.repo.AddItem(&models.TrayItem{TrayID: trayB.ID, InstrumentID: instrument.ID, Quantity: 1}))

	count, err := suite.repo.CountItemsByInstrument(instrument.ID)

	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestGetAllFilters tests classification and search filters
func (suite *TrayRepositoryTestSuite) TestGetAllFilters() {
	user := suite.createUser()
	deptRepo := NewDepartmentRepository(suite.baseTestSuite.DB)
	dept := suite.factories.Department.Create()
	suite.Require().NoError(deptRepo.Create(dept))

	cross := suite.factories.Tray.Create(user.ID)
	cross.Name = "Basic Cross Set"
	suite.Require().NoError(suite.repo.Create(cross))

	specific := suite.factories.Tray.WithDepartment(user.ID, dept.ID)
	specific.Name = "Ortho Special Set"
	suite.Require().NoError(suite.repo.Create(specific))

	classification := models.TrayClassificationDepartmentSpecific
	trays, total, err := suite.repo.GetAll(TrayFilter{Classification: &classification}, 50, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(trays, 1)
	suite.Equal("Ortho Special Set", trays[0].Name)

	trays, total, err = suite.repo.GetAll(TrayFilter{Search: "cross"}, 50, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Basic Cross Set", trays[0].Name)
}

// TestTrayRepositoryTestSuite runs the test suite
func TestTrayRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TrayRepositoryTestSuite))
}
