package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peakhub/peakhub/internal/identity"
)

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestVisible_UnauthenticatedSeesOnlyUnrestricted(t *testing.T) {
	got := Visible(identity.RoleUnknown, DefaultItems())
	assert.Equal(t, []string{"Home", "Courses", "About"}, names(got))
}

func TestVisible_PerRole(t *testing.T) {
	tests := []struct {
		role  identity.Role
		extra string
	}{
		{identity.RoleLearner, "Student Dashboard"},
		{identity.RoleInstructor, "Instructor Dashboard"},
		{identity.RoleAdministrator, "Admin Panel"},
		{identity.RoleModerator, "Moderation"},
	}

	for _, tc := range tests {
		t.Run(string(tc.role), func(t *testing.T) {
			got := names(Visible(tc.role, DefaultItems()))
			assert.Equal(t, []string{"Home", "Courses", "About", tc.extra}, got)
		})
	}
}

func TestVisible_GuestSeesNoDashboards(t *testing.T) {
	got := Visible(identity.RoleGuest, DefaultItems())
	assert.Equal(t, []string{"Home", "Courses", "About"}, names(got))
}

func TestVisible_IsPure(t *testing.T) {
	items := DefaultItems()

	first := Visible(identity.RoleLearner, items)
	second := Visible(identity.RoleLearner, items)

	assert.Equal(t, first, second)
	// The input slice is left as it was.
	assert.Equal(t, DefaultItems(), items)
}

func TestVisible_MultiRoleItem(t *testing.T) {
	items := []Item{
		{Name: "Reports", Path: "/reports", Roles: []identity.Role{identity.RoleAdministrator, identity.RoleModerator}},
	}

	assert.Len(t, Visible(identity.RoleModerator, items), 1)
	assert.Len(t, Visible(identity.RoleAdministrator, items), 1)
	assert.Empty(t, Visible(identity.RoleLearner, items))
}

func TestVisible_EmptyInput(t *testing.T) {
	assert.Empty(t, Visible(identity.RoleLearner, nil))
}
