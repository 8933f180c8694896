package models

import "time"

// Role is the staff privilege level. The order visitor < moderator <
// admin is total; route requirements are expressed as a minimum role.
type Role string

const (
	RoleVisitor   Role = "visitor"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Rank maps a role onto the privilege order. Unknown roles rank below
// visitor so a malformed session can never satisfy a route requirement.
func (r Role) Rank() int {
	switch r {
	case RoleVisitor:
		return 1
	case RoleModerator:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.Rank() > 0
}

// StaffSession is the authenticated staff identity plus the bearer
// credential used on subsequent requests. At most one exists at a time.
type StaffSession struct {
	ID        int64     `json:"id" validate:"required"`
	Nickname  string    `json:"nickname" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Role      Role      `json:"role" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	Token     string    `json:"token" validate:"required"`
}

// SearchHistoryEntry is an append-only record of a staff search action.
// The client only ever reads these back.
type SearchHistoryEntry struct {
	ID         int64     `json:"id" validate:"required"`
	StaffID    int64     `json:"staffId"`
	Query      string    `json:"query"`
	Filters    string    `json:"filters"`
	EntityType string    `json:"entityType"`
	CreatedAt  time.Time `json:"createdAt"`
}
