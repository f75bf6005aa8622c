package policy_test

import (
	"testing"

	"instrument-tray-backend/internal/database/models"
	"instrument-tray-backend/internal/policy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func deptTray(deptID *uuid.UUID) *models.Tray {
	return &models.Tray{
		Classification: models.TrayClassificationDepartmentSpecific,
		DepartmentID:   deptID,
	}
}

func crossTray() *models.Tray {
	return &models.Tray{
		Classification: models.TrayClassificationCrossDepartment,
	}
}

func TestCanDecide(t *testing.T) {
	p := policy.New(policy.DefaultRanks())
	d1 := uuid.New()
	d2 := uuid.New()

	testCases := []struct {
		name      string
		principal policy.Principal
		tray      *models.Tray
		want      bool
	}{
		{
			name:      "OpManager decides any department tray",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleOpManager},
			tray:      deptTray(&d1),
			want:      true,
		},
		{
			name:      "OpManager decides cross-department tray",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleOpManager, DepartmentID: &d2},
			tray:      crossTray(),
			want:      true,
		},
		{
			name:      "HeadPhysician decides own department tray",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleHeadPhysician, DepartmentID: &d1},
			tray:      deptTray(&d1),
			want:      true,
		},
		{
			name:      "HeadPhysician denied for foreign department tray",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleHeadPhysician, DepartmentID: &d2},
			tray:      deptTray(&d1),
			want:      false,
		},
		{
			name:      "HeadPhysician denied for cross-department tray",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleHeadPhysician, DepartmentID: &d1},
			tray:      crossTray(),
			want:      false,
		},
		{
			name:      "HeadPhysician without department denied",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleHeadPhysician},
			tray:      deptTray(&d1),
			want:      false,
		},
		{
			name:      "SeniorPhysician never decides",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleSeniorPhysician, DepartmentID: &d1},
			tray:      deptTray(&d1),
			want:      false,
		},
		{
			name:      "OpNurse never decides",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleOpNurse, DepartmentID: &d1},
			tray:      deptTray(&d1),
			want:      false,
		},
		{
			name:      "SterileProcessingStaff never decides",
			principal: policy.Principal{ID: uuid.New(), Role: models.RoleSterileProcessingStaff, DepartmentID: &d1},
			tray:      deptTray(&d1),
			want:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.CanDecide(tc.principal, tc.tray))
		})
	}
}

func TestCanProposeChange(t *testing.T) {
	p := policy.New(policy.DefaultRanks())

	for _, role := range []models.Role{
		models.RoleOpNurse,
		models.RoleSeniorPhysician,
		models.RoleHeadPhysician,
		models.RoleOpManager,
		models.RoleSterileProcessingStaff,
	} {
		assert.True(t, p.CanProposeChange(policy.Principal{ID: uuid.New(), Role: role}), "role %s", role)
	}

	assert.False(t, p.CanProposeChange(policy.Principal{ID: uuid.New(), Role: models.Role("intern")}))
}

func TestCanEditTray(t *testing.T) {
	p := policy.New(policy.DefaultRanks())

	allowed := []models.Role{
		models.RoleSeniorPhysician,
		models.RoleHeadPhysician,
		models.RoleOpManager,
		models.RoleSterileProcessingStaff,
	}
	for _, role := range allowed {
		assert.True(t, p.CanEditTray(policy.Principal{Role: role}), "role %s", role)
	}

	assert.False(t, p.CanEditTray(policy.Principal{Role: models.RoleOpNurse}))
}

func TestHasMinRank(t *testing.T) {
	p := policy.New(policy.DefaultRanks())

	// SeniorPhysician and SterileProcessingStaff are equal rank
	assert.True(t, p.HasMinRank(policy.Principal{Role: models.RoleSterileProcessingStaff}, models.RoleSeniorPhysician))
	assert.True(t, p.HasMinRank(policy.Principal{Role: models.RoleSeniorPhysician}, models.RoleSterileProcessingStaff))

	assert.True(t, p.HasMinRank(policy.Principal{Role: models.RoleOpManager}, models.RoleHeadPhysician))
	assert.False(t, p.HasMinRank(policy.Principal{Role: models.RoleOpNurse}, models.RoleSeniorPhysician))
	assert.False(t, p.HasMinRank(policy.Principal{Role: models.Role("unknown")}, models.RoleOpNurse))
}
