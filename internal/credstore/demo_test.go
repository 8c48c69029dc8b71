package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peakhub/peakhub/internal/common"
	"github.com/peakhub/peakhub/internal/identity"
)

func newStore(t *testing.T) *DemoStore {
	t.Helper()
	s, err := NewDemoStore()
	require.NoError(t, err)
	return s
}

func TestLookup_DemoAccountMatches(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	id, err := s.Lookup(ctx, "student@peakhub.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "student@peakhub.com", id.Email)
	assert.Equal(t, identity.RoleLearner, id.Role)
	assert.Equal(t, "John Student", id.Name)
	assert.NotEmpty(t, id.Avatar)
}

func TestLookup_WrongSecret(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.Lookup(ctx, "student@peakhub.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLookup_SecretIsCaseSensitive(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.Lookup(ctx, "student@peakhub.com", "PASSWORD123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLookup_UnknownEmail(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.Lookup(ctx, "nobody@x.com", "password123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	first, err := s.Lookup(ctx, "guest@peakhub.com", "password123")
	require.NoError(t, err)
	first.Name = "tampered"

	second, err := s.Lookup(ctx, "guest@peakhub.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Guest User", second.Name)
}

func TestExists(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "admin@peakhub.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, "new@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdd_ThenLookup(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	rec := Record{
		Identity: identity.Identity{ID: "100", Email: "new@x.com", Name: "New User", Role: identity.RoleLearner},
		Secret:   "abc12345",
	}
	require.NoError(t, s.Add(ctx, rec))

	id, err := s.Lookup(ctx, "new@x.com", "abc12345")
	require.NoError(t, err)
	assert.Equal(t, "New User", id.Name)
}

func TestAdd_DuplicateEmail(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	err := s.Add(ctx, Record{
		Identity: identity.Identity{ID: "101", Email: "student@peakhub.com", Name: "Impostor", Role: identity.RoleLearner},
		Secret:   "whatever1",
	})
	assert.ErrorIs(t, err, common.ErrEmailTaken)

	// The original record is untouched.
	id, err := s.Lookup(ctx, "student@peakhub.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "John Student", id.Name)
}
