package identity

import "fmt"

// Role gates which navigation items and dashboards a user can see.
type Role string

const (
	RoleLearner       Role = "learner"
	RoleInstructor    Role = "instructor"
	RoleAdministrator Role = "administrator"
	RoleModerator     Role = "moderator"
	RoleGuest         Role = "guest"

	// RoleUnknown is the zero value, used when no one is signed in.
	RoleUnknown Role = ""
)

// ParseRole validates a raw role string. Unknown values are rejected rather
// than passed through, so a corrupted persisted record cannot smuggle in an
// unexpected role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleLearner, RoleInstructor, RoleAdministrator, RoleModerator, RoleGuest:
		return r, nil
	}
	return RoleUnknown, fmt.Errorf("unknown role %q", s)
}
