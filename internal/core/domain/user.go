package domain

// UserRole defines the access level of a user account.
type UserRole string

const (
	RoleSuperadmin UserRole = "SUPERADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleOwner      UserRole = "OWNER"
	RoleGuard      UserRole = "GUARD"
)

// UserStatus is the two-state registration lifecycle. Owners and guards
// register as INACTIVE and an admin activates them; there is no rejected
// outcome, an unwanted registration simply stays inactive.
type UserStatus string

const (
	StatusInactive UserStatus = "INACTIVE"
	StatusActive   UserStatus = "ACTIVE"
)

// User represents any account in the system: superadmins, condominium
// admins, owners and guards. Owners additionally reference the department
// they occupy; admins, owners and guards reference their condominium.
type User struct {
	UserID         string     `json:"userID"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           UserRole   `json:"role"`
	Status         UserStatus `json:"status"`
	CondominiumID  string     `json:"condominiumID,omitempty"`
	DepartmentID   string     `json:"departmentID,omitempty"`
	AuditFields
}

// IsTerminalStatus reports whether the registration lifecycle has completed.
// ACTIVE is the only terminal status; INACTIVE accounts can still be approved.
func (u User) IsTerminalStatus() bool {
	return u.Status == StatusActive
}
