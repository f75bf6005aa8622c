package models

// Role defines the clinical roles known to the system.
// SeniorPhysician and SterileProcessingStaff are equal rank in the
// hierarchy; decision authority over change requests is exact-role based
// (see the policy package), rank is only used for minimum-rank route guards.
type Role string

const (
	RoleOpNurse                Role = "op_nurse"
	RoleSeniorPhysician        Role = "senior_physician"
	RoleHeadPhysician          Role = "head_physician"
	RoleOpManager              Role = "op_manager"
	RoleSterileProcessingStaff Role = "sterile_processing_staff"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleOpNurse, RoleSeniorPhysician, RoleHeadPhysician, RoleOpManager, RoleSterileProcessingStaff:
		return true
	}
	return false
}

// TrayClassification defines whether a tray belongs to one department or is shared
type TrayClassification string

const (
	TrayClassificationCrossDepartment    TrayClassification = "cross_department"
	TrayClassificationDepartmentSpecific TrayClassification = "department_specific"
)

// IsValid checks if the TrayClassification is valid
func (c TrayClassification) IsValid() bool {
	switch c {
	case TrayClassificationCrossDepartment, TrayClassificationDepartmentSpecific:
		return true
	}
	return false
}

// TrayStatus defines the lifecycle states of a tray
type TrayStatus string

const (
	TrayStatusDraft    TrayStatus = "draft"
	TrayStatusActive   TrayStatus = "active"
	TrayStatusInactive TrayStatus = "inactive"
	TrayStatusArchived TrayStatus = "archived"
)

// IsValid checks if the TrayStatus is valid
func (s TrayStatus) IsValid() bool {
	switch s {
	case TrayStatusDraft, TrayStatusActive, TrayStatusInactive, TrayStatusArchived:
		return true
	}
	return false
}

// ChangeRequestType defines the kinds of tray mutations a change request can propose
type ChangeRequestType string

const (
	ChangeRequestTypeAddInstrument    ChangeRequestType = "add_instrument"
	ChangeRequestTypeRemoveInstrument ChangeRequestType = "remove_instrument"
	ChangeRequestTypeModifyQuantity   ChangeRequestType = "modify_quantity"
	ChangeRequestTypeModifyPosition   ChangeRequestType = "modify_position"
	ChangeRequestTypeCreateTray       ChangeRequestType = "create_tray"
	ChangeRequestTypeDeactivateTray   ChangeRequestType = "deactivate_tray"
)

// IsValid checks if the ChangeRequestType is valid
func (t ChangeRequestType) IsValid() bool {
	switch t {
	case ChangeRequestTypeAddInstrument, ChangeRequestTypeRemoveInstrument,
		ChangeRequestTypeModifyQuantity, ChangeRequestTypeModifyPosition,
		ChangeRequestTypeCreateTray, ChangeRequestTypeDeactivateTray:
		return true
	}
	return false
}

// ChangeRequestStatus defines the lifecycle states of a change request.
// A request is created pending and transitions exactly once to approved or
// rejected; decision fields are write-once.
type ChangeRequestStatus string

const (
	ChangeRequestStatusPending  ChangeRequestStatus = "pending"
	ChangeRequestStatusApproved ChangeRequestStatus = "approved"
	ChangeRequestStatusRejected ChangeRequestStatus = "rejected"
)

// IsValid checks if the ChangeRequestStatus is valid
func (s ChangeRequestStatus) IsValid() bool {
	switch s {
	case ChangeRequestStatusPending, ChangeRequestStatusApproved, ChangeRequestStatusRejected:
		return true
	}
	return false
}
