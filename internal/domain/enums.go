package domain

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionAddColumn  AuditAction = "ADD_COLUMN"
	AuditActionUpdateCell AuditAction = "UPDATE_CELL"
	AuditActionAddRow     AuditAction = "ADD_ROW"
	AuditActionDeleteRow  AuditAction = "DELETE_ROW"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionAddColumn, AuditActionUpdateCell, AuditActionAddRow, AuditActionDeleteRow:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants admin privileges.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
