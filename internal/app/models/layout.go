package models

import "github.com/a-h/templ"

type NavItem struct {
	Name string
	URL  string
}

type Navigation struct {
	Items []NavItem
}

type LayoutTempl struct {
	Title     string
	User      *Identity
	Nav       Navigation
	ActiveNav string
	Content   templ.Component
}

var AdminNav = Navigation{
	Items: []NavItem{
		{Name: "Dashboard", URL: "/admin/dashboard"},
		{Name: "Inventory", URL: "/admin/inventory"},
		{Name: "Reports", URL: "/admin/reports"},
	},
}

var ManagerNav = Navigation{
	Items: []NavItem{
		{Name: "Dashboard", URL: "/manager/dashboard"},
		{Name: "Inventory", URL: "/manager/inventory"},
	},
}

var OfflineNav = Navigation{
	Items: []NavItem{
		{Name: "Sign In", URL: "/login"},
		{Name: "Create Account", URL: "/register"},
	},
}

// NavFor picks the navigation for the signed-in role.
func NavFor(user *Identity) Navigation {
	switch {
	case user == nil:
		return OfflineNav
	case user.Role == RoleManager:
		return ManagerNav
	default:
		return AdminNav
	}
}
