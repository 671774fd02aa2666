package models

// User represents a user row. Role and status are stored as text and
// converted to their domain types in the mapping layer.
type User struct {
	UserID        string `db:"user_id"`
	Name          string `db:"name"`
	Email         string `db:"email"`
	PasswordHash  string `db:"password_hash"`
	Role          string `db:"role"`
	Status        string `db:"status"`
	CondominiumID string `db:"condominium_id"`
	DepartmentID  string `db:"department_id"`
	AuditFields
}
