package cli

import (
	"context"
	"fmt"

	"github.com/peakhub/peakhub/internal/identity"
	"github.com/peakhub/peakhub/internal/nav"
)

// Menu prints the navigation entries visible to the current role. Signed
// out, that is just the public pages.
func (a *App) Menu(ctx context.Context) error {
	role := identity.RoleUnknown
	if id := a.session.Current(); id != nil {
		role = id.Role
	}

	for _, item := range nav.Visible(role, nav.DefaultItems()) {
		printlnFn(fmt.Sprintf("%-22s %s", item.Name, item.Path))
	}
	return nil
}

// WhoAmI prints the signed-in identity.
func (a *App) WhoAmI(ctx context.Context) error {
	id := a.session.Current()
	if id == nil {
		printlnFn("Not signed in")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s> role=%s id=%s", id.Name, id.Email, id.Role, id.ID))
	return nil
}
