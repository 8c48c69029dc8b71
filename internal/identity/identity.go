// Package identity defines the authenticated principal of the PeakHub
// client and its role enumeration.
package identity

import (
	"fmt"
	"net/url"
)

// Identity is an authenticated user as seen by the rest of the client:
// id, email, display name, role and an optional avatar URI. It never
// carries a secret. Once issued it is treated as immutable for the
// lifetime of the session.
type Identity struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// AvatarURI derives a deterministic avatar location from a display name.
func AvatarURI(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
