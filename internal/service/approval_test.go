package service_test

import (
	"encoding/json"
	"testing"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/mocks"
	"instrument-tray-backend/internal/policy"
	"instrument-tray-backend/internal/repository"
	"instrument-tray-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ApprovalServiceTestSuite defines the test suite for ApprovalService
type ApprovalServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRequestRepo *mocks.MockChangeRequestRepositoryInterface
	mockTrayRepo    *mocks.MockTrayRepositoryInterface
	approvalService *service.ApprovalService
}

// SetupTest sets up the test suite
func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRequestRepo = mocks.NewMockChangeRequestRepositoryInterface(suite.ctrl)
	suite.mockTrayRepo = mocks.NewMockTrayRepositoryInterface(suite.ctrl)
	suite.approvalService = service.NewApprovalService(
		suite.mockRequestRepo,
		suite.mockTrayRepo,
		policy.New(policy.DefaultRanks()),
	)
}

// TearDownTest cleans up after each test
func (suite *ApprovalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func opManager() policy.Principal {
	return policy.Principal{ID: uuid.New(), Role: models.RoleOpManager}
}

func pendingAddRequest(trayID uuid.UUID, instrumentID uuid.UUID) *models.ChangeRequest {
	payload, _ := json.Marshal(map[string]interface{}{
		"instrument_id": instrumentID.String(),
		"quantity":      3,
	})
	return &models.ChangeRequest{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		TrayID:        trayID,
		Type:          models.ChangeRequestTypeAddInstrument,
		NewData:       payload,
		Status:        models.ChangeRequestStatusPending,
		RequestedByID: uuid.New(),
	}
}

func activeTray(id uuid.UUID) *models.Tray {
	return &models.Tray{
		BaseModel:      models.BaseModel{ID: id},
		Name:           "Basic Set",
		Classification: models.TrayClassificationCrossDepartment,
		Status:         models.TrayStatusActive,
		Version:        1,
	}
}

// TestApproveAddInstrument tests approving an add_instrument request
func (suite *ApprovalServiceTestSuite) TestApproveAddInstrument() {
	trayID := uuid.New()
	instrumentID := uuid.New()
	request := pendingAddRequest(trayID, instrumentID)
	decider := opManager()

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockTrayRepo.EXPECT().GetByID(trayID).Return(activeTray(trayID), nil)

	txTrayRepo := mocks.NewMockTrayRepositoryInterface(suite.ctrl)
	suite.mockTrayRepo.EXPECT().WithTx(gomock.Any()).Return(txTrayRepo)
	txTrayRepo.EXPECT().AddItem(gomock.Any()).DoAndReturn(func(item *models.TrayItem) error {
		suite.Equal(trayID, item.TrayID)
		suite.Equal(instrumentID, item.InstrumentID)
		suite.Equal(3, item.Quantity)
		return nil
	})
	txTrayRepo.EXPECT().IncrementVersion(trayID).Return(nil)

	suite.mockRequestRepo.EXPECT().
		Decide(request.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uuid.UUID, decision repository.Decision, apply func(tx *gorm.DB) error) error {
			suite.Equal(models.ChangeRequestStatusApproved, decision.Status)
			suite.Equal(decider.ID, decision.DecidedByID)
			return apply(&gorm.DB{})
		})

	approved := *request
	approved.Status = models.ChangeRequestStatusApproved
	approved.DecidedByID = &decider.ID
	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(&approved, nil)

	resp, err := suite.approvalService.Approve(request.ID, decider, nil)

	suite.NoError(err)
	suite.Equal(models.ChangeRequestStatusApproved, resp.Status)
	suite.Equal(&decider.ID, resp.DecidedByID)
}

// TestApproveRunsMutationAndVersionBumpInOneTransaction tests that the
// explicit version bump happens on the transaction-bound store, on top of
// the bump the mutation itself performs
func (suite *ApprovalServiceTestSuite) TestApproveRunsMutationAndVersionBumpInOneTransaction() {
	trayID := uuid.New()
	instrumentID := uuid.New()
	payload, _ := json.Marshal(map[string]interface{}{
		"instrument_id": instrumentID.String(),
		"quantity":      5,
	})
	request := &models.ChangeRequest{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		TrayID:        trayID,
		Type:          models.ChangeRequestTypeModifyQuantity,
		NewData:       payload,
		Status:        models.ChangeRequestStatusPending,
		RequestedByID: uuid.New(),
	}
	decider := opManager()

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockTrayRepo.EXPECT().GetByID(trayID).Return(activeTray(trayID), nil)

	txTrayRepo := mocks.NewMockTrayRepositoryInterface(suite.ctrl)
	suite.mockTrayRepo.EXPECT().WithTx(gomock.Any()).Return(txTrayRepo)

	updateCall := txTrayRepo.EXPECT().
		UpdateItem(trayID, instrumentID, map[string]interface{}{"quantity": 5}).
		Return(nil)
	txTrayRepo.EXPECT().IncrementVersion(trayID).Return(nil).After(updateCall)

	suite.mockRequestRepo.EXPECT().
		Decide(request.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uuid.UUID, decision repository.Decision, apply func(tx *gorm.DB) error) error {
			return apply(&gorm.DB{})
		})

	approved := *request
	approved.Status = models.ChangeRequestStatusApproved
	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(&approved, nil)

	_, err := suite.approvalService.Approve(request.ID, decider, nil)
	suite.NoError(err)
}

// TestApproveFailedApplyLeavesRequestPending tests that an apply error
// surfaces to the caller instead of finalizing the decision
func (suite *ApprovalServiceTestSuite) TestApproveFailedApplyLeavesRequestPending() {
	trayID := uuid.New()
	request := pendingAddRequest(trayID, uuid.New())
	decider := opManager()

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockTrayRepo.EXPECT().GetByID(trayID).Return(activeTray(trayID), nil)

	txTrayRepo := mocks.NewMockTrayRepositoryInterface(suite.ctrl)
	suite.mockTrayRepo.EXPECT().WithTx(gomock.Any()).Return(txTrayRepo)
	txTrayRepo.EXPECT().AddItem(gomock.Any()).Return(apperrors.ErrTrayItemExists)

	// The repository rolls the transaction back when apply fails, so the
	// Decide call itself returns the apply error.
	suite.mockRequestRepo.EXPECT().
		Decide(request.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uuid.UUID, decision repository.Decision, apply func(tx *gorm.DB) error) error {
			return apply(&gorm.DB{})
		})

	_, err := suite.approvalService.Approve(request.ID, decider, nil)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrTrayItemExists)
}

// TestApproveAlreadyDecided tests approving a request that is no longer pending
func (suite *ApprovalServiceTestSuite) TestApproveAlreadyDecided() {
	trayID := uuid.New()
	request := pendingAddRequest(trayID, uuid.New())
	request.Status = models.ChangeRequestStatusRejected

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)

	_, err := suite.approvalService.Approve(request.ID, opManager(), nil)

	suite.ErrorIs(err, apperrors.ErrChangeRequestAlreadyDecided)
}

// TestApproveConcurrentDecisionLosesRace tests the compare-and-swap conflict
// when another decider finalized the request between read and decide
func (suite *ApprovalServiceTestSuite) TestApproveConcurrentDecisionLosesRace() {
	trayID := uuid.New()
	request := pendingAddRequest(trayID, uuid.New())
	decider := opManager()

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockTrayRepo.EXPECT().GetByID(trayID).Return(activeTray(trayID), nil)

	suite.mockRequestRepo.EXPECT().
		Decide(request.ID, gomock.Any(), gomock.Any()).
		Return(apperrors.ErrChangeRequestAlreadyDecided)

	_, err := suite.approvalService.Approve(request.ID, decider, nil)

	suite.ErrorIs(err, apperrors.ErrChangeRequestAlreadyDecided)
}

// TestDecisionAuthority tests which roles may decide for which trays
func (suite *ApprovalServiceTestSuite) TestDecisionAuthority() {
	deptA := uuid.New()
	deptB := uuid.New()

	crossTray := activeTray(uuid.New())
	deptTray := activeTray(uuid.New())
	deptTray.Classification = models.TrayClassificationDepartmentSpecific
	deptTray.DepartmentID = &deptA

	testCases := []struct {
		name      string
		principal policy.Principal
		tray      *models.Tray
		canDecide bool
	}{
		{
			name:      "OpManager decides cross-department trays",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleOpManager},
			tray:      crossTray,
			canDecide: true,
		},
		{
			name:      "OpManager decides department trays of any department",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleOpManager, DepartmentID: &deptB},
			tray:      deptTray,
			canDecide: true,
		},
		{
			name:      "HeadPhysician decides own department trays",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleHeadPhysician, DepartmentID: &deptA},
			tray:      deptTray,
			canDecide: true,
		},
		{
			name:      "HeadPhysician cannot decide other departments",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleHeadPhysician, DepartmentID: &deptB},
			tray:      deptTray,
			canDecide: false,
		},
		{
			name:      "HeadPhysician cannot decide cross-department trays",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleHeadPhysician, DepartmentID: &deptA},
			tray:      crossTray,
			canDecide: false,
		},
		{
			name:      "SeniorPhysician never decides",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleSeniorPhysician, DepartmentID: &deptA},
			tray:      deptTray,
			canDecide: false,
		},
		{
			name:      "OpNurse never decides",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleOpNurse, DepartmentID: &deptA},
			tray:      deptTray,
			canDecide: false,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			request := pendingAddRequest(tc.tray.ID, uuid.New())

			suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
			suite.mockTrayRepo.EXPECT().GetByID(tc.tray.ID).Return(tc.tray, nil)

			if tc.canDecide {
				txTrayRepo := mocks.NewMockTrayRepositoryInterface(suite.ctrl)
				suite.mockTrayRepo.EXPECT().WithTx(gomock.Any()).Return(txTrayRepo)
				txTrayRepo.EXPECT().AddItem(gomock.Any()).Return(nil)
				txTrayRepo.EXPECT().IncrementVersion(tc.tray.ID).Return(nil)

				suite.mockRequestRepo.EXPECT().
					Decide(request.ID, gomock.Any(), gomock.Any()).
					DoAndReturn(func(id uuid.UUID, decision repository.Decision, apply func(tx *gorm.DB) error) error {
						return apply(&gorm.DB{})
					})

				approved := *request
				approved.Status = models.ChangeRequestStatusApproved
				suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(&approved, nil)
			}

			_, err := suite.approvalService.Approve(request.ID, tc.principal, nil)

			if tc.canDecide {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrCannotDecide)
			}
		})
	}
}

// TestRejectRequiresReason tests that rejection without a reason fails
func (suite *ApprovalServiceTestSuite) TestRejectRequiresReason() {
	_, err := suite.approvalService.Reject(uuid.New(), opManager(), &service.RejectRequest{})
	suite.ErrorIs(err, apperrors.ErrRejectionReasonEmpty)

	_, err = suite.approvalService.Reject(uuid.New(), opManager(), nil)
	suite.ErrorIs(err, apperrors.ErrRejectionReasonEmpty)
}

// TestRejectDoesNotTouchTray tests that rejection finalizes the ledger
// entry without any tray mutation
func (suite *ApprovalServiceTestSuite) TestRejectDoesNotTouchTray() {
	trayID := uuid.New()
	request := pendingAddRequest(trayID, uuid.New())
	decider := opManager()

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockTrayRepo.EXPECT().GetByID(trayID).Return(activeTray(trayID), nil)

	suite.mockRequestRepo.EXPECT().
		Decide(request.ID, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(id uuid.UUID, decision repository.Decision, apply func(tx *gorm.DB) error) error {
			suite.Equal(models.ChangeRequestStatusRejected, decision.Status)
			suite.Equal("not clinically justified", decision.RejectionReason)
			suite.Nil(apply)
			return nil
		})

	rejected := *request
	rejected.Status = models.ChangeRequestStatusRejected
	rejected.RejectionReason = "not clinically justified"
	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(&rejected, nil)

	resp, err := suite.approvalService.Reject(request.ID, decider, &service.RejectRequest{Reason: "not clinically justified"})

	suite.NoError(err)
	suite.Equal(models.ChangeRequestStatusRejected, resp.Status)
	suite.Equal("not clinically justified", resp.RejectionReason)
}

// TestApproveDeactivateTray tests approving a deactivate_tray request
func (suite *ApprovalServiceTestSuite) TestApproveDeactivateTray() {
	trayID := uuid.New()
	request := &models.ChangeRequest{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		TrayID:        trayID,
		Type:          models.ChangeRequestTypeDeactivateTray,
		Status:        models.ChangeRequestStatusPending,
		RequestedByID: uuid.New(),
	}
	decider := opManager()

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockTrayRepo.EXPECT().GetByID(trayID).Return(activeTray(trayID), nil)

	txTrayRepo := mocks.NewMockTrayRepositoryInterface(suite.ctrl)
	suite.mockTrayRepo.EXPECT().WithTx(gomock.Any()).Return(txTrayRepo)
	txTrayRepo.EXPECT().SetStatus(trayID, models.TrayStatusInactive).Return(nil)
	txTrayRepo.EXPECT().IncrementVersion(trayID).Return(nil)

	suite.mockRequestRepo.EXPECT().
		Decide(request.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uuid.UUID, decision repository.Decision, apply func(tx *gorm.DB) error) error {
			return apply(&gorm.DB{})
		})

	approved := *request
	approved.Status = models.ChangeRequestStatusApproved
	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(&approved, nil)

	_, err := suite.approvalService.Approve(request.ID, decider, nil)
	suite.NoError(err)
}

// TestApprovalServiceTestSuite runs the test suite
func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
