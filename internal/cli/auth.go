package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peakhub/peakhub/internal/common"
	"github.com/peakhub/peakhub/internal/identity"
	"github.com/peakhub/peakhub/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and asks the session manager to sign in.
// A credential mismatch is reported to the user and is not an error of the
// command itself. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password")
			return nil
		}
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", id.Name))
	return nil
}

// Register prompts for the new account's details and signs the user in on
// success. Leaving the role empty picks learner; a duplicate email is
// reported to the user, not returned as an error.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	roleInput, err := getSimpleText(a.reader, "Role (learner/instructor/administrator/moderator/guest, empty for learner)", os.Stdout)
	if err != nil {
		return err
	}
	role := identity.RoleUnknown
	if roleInput != "" {
		role, err = identity.ParseRole(roleInput)
		if err != nil {
			printlnFn("Unknown role:", roleInput)
			return nil
		}
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.session.Register(ctx, session.RegisterData{
		Email:  email,
		Secret: string(password),
		Name:   name,
		Role:   role,
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			printlnFn("Email already in use")
			return nil
		}
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", id.Name))
	return nil
}

// Logout ends the session. Safe to call when nobody is signed in.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Signed out")
	return nil
}
