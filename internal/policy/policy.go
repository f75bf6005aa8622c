// Package policy contains the pure authorization rules for tray management.
// It has no state beyond an immutable role-rank table built at construction
// and performs no I/O.
package policy

import (
	"github.com/google/uuid"

	"instrument-tray-backend/internal/database/models"
)

// Principal is the authenticated caller as supplied by the auth layer.
type Principal struct {
	ID           uuid.UUID
	Role         models.Role
	DepartmentID *uuid.UUID
}

// Policy evaluates role-based permissions against trays and change requests.
type Policy struct {
	ranks map[models.Role]int
}

// DefaultRanks returns the role hierarchy. SeniorPhysician and
// SterileProcessingStaff are deliberately equal rank; decision authority
// never uses rank, only the exact-role rules in CanDecide.
func DefaultRanks() map[models.Role]int {
	return map[models.Role]int{
		models.RoleOpNurse:                1,
		models.RoleSeniorPhysician:        2,
		models.RoleSterileProcessingStaff: 2,
		models.RoleHeadPhysician:          3,
		models.RoleOpManager:              4,
	}
}

// New creates a Policy with the given role-rank table. Pass DefaultRanks()
// unless a test needs a custom hierarchy.
func New(ranks map[models.Role]int) *Policy {
	r := make(map[models.Role]int, len(ranks))
	for role, rank := range ranks {
		r[role] = rank
	}
	return &Policy{ranks: r}
}

// CanDecide reports whether the principal may approve or reject change
// requests targeting the given tray. OpManager has global authority;
// a HeadPhysician decides only for department-specific trays of their own
// department. All other roles never decide.
func (p *Policy) CanDecide(principal Principal, tray *models.Tray) bool {
	switch principal.Role {
	case models.RoleOpManager:
		return true
	case models.RoleHeadPhysician:
		if tray.Classification != models.TrayClassificationDepartmentSpecific {
			return false
		}
		if tray.DepartmentID == nil || principal.DepartmentID == nil {
			return false
		}
		return *tray.DepartmentID == *principal.DepartmentID
	default:
		return false
	}
}

// CanProposeChange reports whether the principal may file a change request.
// Any authenticated user may propose; only deciding requires elevated
// permission.
func (p *Policy) CanProposeChange(principal Principal) bool {
	return principal.Role.IsValid()
}

// CanEditTray reports whether the principal may create or edit trays
// directly, bypassing the change-request workflow.
func (p *Policy) CanEditTray(principal Principal) bool {
	switch principal.Role {
	case models.RoleSeniorPhysician, models.RoleHeadPhysician, models.RoleOpManager, models.RoleSterileProcessingStaff:
		return true
	default:
		return false
	}
}

// HasMinRank reports whether the principal's role is at least the given
// role's rank. Unknown roles rank as zero.
func (p *Policy) HasMinRank(principal Principal, min models.Role) bool {
	return p.ranks[principal.Role] >= p.ranks[min]
}
