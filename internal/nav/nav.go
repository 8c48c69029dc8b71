// Package nav models the role-gated navigation of the marketplace client.
// It is a pure consumer of session state: given a role, it selects which
// entries are visible and nothing more.
package nav

import "github.com/peakhub/peakhub/internal/identity"

// Item is a single navigation entry. An empty Roles set means the item is
// visible to everyone, signed in or not.
type Item struct {
	Name  string
	Path  string
	Roles []identity.Role
}

// Visible filters items for the given role. It is a pure function: no
// state, no side effects, equal inputs yield equal output. RoleUnknown
// (nobody signed in) yields only the unrestricted items.
func Visible(role identity.Role, items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.visibleTo(role) {
			out = append(out, item)
		}
	}
	return out
}

func (i Item) visibleTo(role identity.Role) bool {
	if len(i.Roles) == 0 {
		return true
	}
	if role == identity.RoleUnknown {
		return false
	}
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultItems returns the stock marketplace navigation: public pages plus
// one gated entry per dashboard.
func DefaultItems() []Item {
	return []Item{
		{Name: "Home", Path: "/"},
		{Name: "Courses", Path: "/courses"},
		{Name: "About", Path: "/about"},
		{Name: "Student Dashboard", Path: "/dashboard/student", Roles: []identity.Role{identity.RoleLearner}},
		{Name: "Instructor Dashboard", Path: "/dashboard/instructor", Roles: []identity.Role{identity.RoleInstructor}},
		{Name: "Admin Panel", Path: "/admin", Roles: []identity.Role{identity.RoleAdministrator}},
		{Name: "Moderation", Path: "/moderation", Roles: []identity.Role{identity.RoleModerator}},
	}
}
