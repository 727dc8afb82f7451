package domain

import "time"

// TeamMember is a staff profile shown on the public site.
type TeamMember struct {
	ID           string    `json:"_id"          db:"id"`
	Name         string    `json:"name"         db:"name"`
	Position     string    `json:"position"     db:"position"`
	Email        string    `json:"email"        db:"email"`
	Phone        string    `json:"phone"        db:"phone"`
	ProfileImage string    `json:"profileImage" db:"profile_image"`
	Department   string    `json:"department"   db:"department"`
	Bio          string    `json:"bio"          db:"bio"`
	LinkedIn     string    `json:"linkedin"     db:"linkedin"`
	Twitter      string    `json:"twitter"      db:"twitter"`
	Facebook     string    `json:"facebook"     db:"facebook"`
	IsActive     bool      `json:"isActive"     db:"is_active"`
	JoinDate     time.Time `json:"joinDate"     db:"join_date"`
	CreatedAt    time.Time `json:"createdAt"    db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt"    db:"updated_at"`
}

// DefaultDepartment is used when a member has none.
const DefaultDepartment = "General"

// TeamPatch carries optional updates for a team member.
type TeamPatch struct {
	Name         *string `json:"name"`
	Position     *string `json:"position"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profileImage"`
	Department   *string `json:"department"`
	Bio          *string `json:"bio"`
	LinkedIn     *string `json:"linkedin"`
	Twitter      *string `json:"twitter"`
	Facebook     *string `json:"facebook"`
	IsActive     *bool   `json:"isActive"`
}
