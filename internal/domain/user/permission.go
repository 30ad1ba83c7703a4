package user

// Permission is a grant an admin assigns per user. The wire values are the
// legacy tier labels the frontend already stores, kept for snapshot
// compatibility.
type Permission string

const (
	PermissionUserManagement  Permission = "I"     // generate codes, approve users
	PermissionAccountView     Permission = "II"    // view credentials, change avatars
	PermissionApprovalsLeave  Permission = "III_L" // decide leave requests
	PermissionApprovalsBorrow Permission = "III_B" // decide loan requests
	PermissionContentAdmin    Permission = "IV"    // manage announcements and activities
)

// AllPermissions returns every assignable permission
func AllPermissions() []Permission {
	return []Permission{
		PermissionUserManagement,
		PermissionAccountView,
		PermissionApprovalsLeave,
		PermissionApprovalsBorrow,
		PermissionContentAdmin,
	}
}

// IsValidPermission checks whether p is one of the assignable permissions
func IsValidPermission(p Permission) bool {
	for _, known := range AllPermissions() {
		if p == known {
			return true
		}
	}
	return false
}
