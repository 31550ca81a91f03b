package guard

import (
	"strings"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/session"
)

const LoginPath = "/login"

type Kind int

const (
	Pending Kind = iota
	Allow
	Redirect
)

func (k Kind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	default:
		return "pending"
	}
}

type Decision struct {
	Kind   Kind
	Target string
}

// Decide maps a session snapshot and requested path to what the guard must
// do. Nothing role-gated is allowed while the session is loading.
//
// With enforceRoles, a user asking for the other role's tree is sent to its
// own dashboard.
func Decide(snap session.Snapshot, path string, enforceRoles bool) Decision {
	if snap.Status == session.StatusLoading {
		return Decision{Kind: Pending}
	}
	if snap.Identity == nil {
		return Decision{Kind: Redirect, Target: LoginPath}
	}
	if enforceRoles && underTree(path, foreignTree(snap.Identity.Role)) {
		return Decision{Kind: Redirect, Target: snap.Identity.Role.DashboardPath()}
	}
	return Decision{Kind: Allow}
}

func foreignTree(role models.Role) string {
	if role == models.RoleAdmin {
		return "/manager"
	}
	return "/admin"
}

func underTree(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+"/")
}
