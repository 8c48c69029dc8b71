package identity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole_Known(t *testing.T) {
	for _, s := range []string{"learner", "instructor", "administrator", "moderator", "guest"} {
		r, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), r)
	}
}

func TestParseRole_Unknown(t *testing.T) {
	for _, s := range []string{"", "root", "Learner", "admin "} {
		r, err := ParseRole(s)
		assert.Error(t, err)
		assert.Equal(t, RoleUnknown, r)
	}
}

func TestAvatarURI_EscapesName(t *testing.T) {
	uri := AvatarURI("John Student")
	assert.Equal(t, "https://ui-avatars.com/api/?name=John+Student&background=random", uri)

	assert.NotContains(t, AvatarURI("A&B=C"), "&B=C")
}

func TestIdentity_JSONRoundTrip(t *testing.T) {
	orig := Identity{
		ID:     "42",
		Email:  "new@x.com",
		Name:   "New User",
		Role:   RoleLearner,
		Avatar: AvatarURI("New User"),
	}

	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Identity
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, orig, got)

	// The serialized form has nowhere for a secret to hide.
	assert.False(t, strings.Contains(string(raw), "password"))
	assert.False(t, strings.Contains(string(raw), "secret"))
}

func TestIdentity_JSONOmitsEmptyAvatar(t *testing.T) {
	raw, err := json.Marshal(Identity{ID: "1", Email: "a@b.c", Name: "A", Role: RoleGuest})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "avatar")
}
