package models

import "time"

const UserTable = "sep_users"

// Role is the authorization tier of a user. Closed set so typos fail at
// parse time instead of silently granting nothing.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a caller-supplied string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleStaff, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// CanModerate reports whether the role may approve/reject/return requests
// and view all bookings.
func (r Role) CanModerate() bool { return r == RoleStaff || r == RoleAdmin }

type User struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	// Stored in plaintext.
	Password string `gorm:"size:255;not null" json:"-"`
	Role     Role   `gorm:"size:20;not null;default:'student'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }
