package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager
}

// Label is the human readable role name used by the backend's choices.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleManager:
		return "Manager"
	default:
		return string(r)
	}
}

// DashboardPath is the landing page of the role's route tree.
func (r Role) DashboardPath() string {
	if r == RoleManager {
		return "/manager/dashboard"
	}
	return "/admin/dashboard"
}

// Identity is the authenticated user's profile as returned by the remote
// authority. It is never mutated after decoding; a new login replaces it.
type Identity struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	DateJoined time.Time `json:"date_joined"`
}

func (i *Identity) DisplayName() string {
	if i == nil {
		return ""
	}
	if full := strings.TrimSpace(i.FirstName + " " + i.LastName); full != "" {
		return full
	}
	return i.Username
}
