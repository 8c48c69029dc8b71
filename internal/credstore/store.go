// Package credstore provides the credential directory the session layer
// authenticates against. The bundled demo implementation stands in for a
// real credential backend; the session layer depends only on the Store
// contract and does not care how the backend resolves a lookup.
package credstore

import (
	"context"

	"github.com/peakhub/peakhub/internal/identity"
)

// Record couples a secret with the Identity it unlocks. Secrets live only
// inside the store; everything handed out across the Store boundary is a
// plain Identity.
type Record struct {
	Identity identity.Identity
	Secret   string
}

// Store is the credential lookup used by the session manager.
//
// Contract:
//   - Lookup: returns the Identity for an exact email+secret match, or
//     common.ErrInvalidCredentials. The secret comparison is case-sensitive.
//   - Exists: registration-time email uniqueness check.
//   - Add: inserts a new record, common.ErrEmailTaken on a duplicate email.
//
// Implementations must be safe for concurrent use.
type Store interface {
	Lookup(ctx context.Context, email, secret string) (*identity.Identity, error)
	Exists(ctx context.Context, email string) (bool, error)
	Add(ctx context.Context, rec Record) error
}
