package domain

import "time"

// Admin is a dashboard account.
type Admin struct {
	ID           string     `json:"_id"         db:"id"`
	FirstName    string     `json:"firstName"   db:"first_name"`
	LastName     string     `json:"lastName"    db:"last_name"`
	Email        string     `json:"email"       db:"email"`
	PhoneNumber  string     `json:"phoneNumber" db:"phone_number"`
	PasswordHash string     `json:"-"           db:"password_hash"` // never serialized to JSON
	Role         string     `json:"role"        db:"role"`
	Permissions  []string   `json:"permissions" db:"-"`
	IsActive     bool       `json:"isActive"    db:"is_active"`
	LastLogin    *time.Time `json:"lastLogin"   db:"last_login"`
	CreatedAt    time.Time  `json:"createdAt"   db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt"   db:"updated_at"`
}

// Admin roles.
const (
	RoleAdmin    = "admin"
	RoleSubadmin = "subadmin"
	RoleUser     = "user"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSubadmin, RoleUser:
		return true
	}
	return false
}

// AdminContext is the authenticated admin injected into request handlers.
type AdminContext struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// IsAdmin reports whether the caller holds the admin role.
func (a *AdminContext) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// Registration is the input for creating an admin account.
type Registration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// AdminPatch carries optional updates for an admin.
type AdminPatch struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"isActive"`
}
