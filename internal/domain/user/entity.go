package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Status is the onboarding lifecycle of an account. A user registers as
// PENDING_APPROVAL, an admin moves them to WAITING_SETUP, and completing
// first-time setup makes them ACTIVE.
type Status string

const (
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusWaitingSetup    Status = "WAITING_SETUP"
	StatusActive          Status = "ACTIVE"
)

type User struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Password    string       `json:"password,omitempty"`
	Email       string       `json:"email"`
	Avatar      string       `json:"avatar"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
	Status      Status       `json:"status"`
	JoinedAt    time.Time    `json:"joinedAt"`
}

// IsAdmin checks if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive checks if the account finished onboarding
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// CanLogin reports whether the account may authenticate. Admins may always
// log in, regular users only once ACTIVE.
func (u *User) CanLogin() bool {
	return u.IsActive() || u.IsAdmin()
}

// HasPermission checks a granted permission; the admin role implies all of them.
func (u *User) HasPermission(p Permission) bool {
	if u.IsAdmin() {
		return true
	}
	for _, granted := range u.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}
