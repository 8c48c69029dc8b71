// Package sessiontoken serializes the persisted identity as a signed HS256
// token. The signature makes the local record tamper-evident: bootstrap
// trusts a token that verifies and discards anything else. No secret or
// password is ever part of the claims.
package sessiontoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peakhub/peakhub/internal/common"
	"github.com/peakhub/peakhub/internal/identity"
)

// Claims carries the Identity fields alongside the registered claims.
// The identity id travels in the Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Codec issues and parses session tokens with a fixed signing key.
type Codec struct {
	key []byte
}

// NewCodec panics on an empty key: constructing a codec that cannot sign is
// a programming error, not a runtime condition.
func NewCodec(key []byte) *Codec {
	if len(key) == 0 {
		panic("sessiontoken: NewCodec called with empty key")
	}
	return &Codec{key: key}
}

// Issue signs the identity into a token string. Tokens do not expire; the
// persisted session lives until an explicit logout, matching the behavior
// of a remembered sign-in.
func (c *Codec) Issue(id *identity.Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  id.ID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Email:  id.Email,
		Name:   id.Name,
		Role:   string(id.Role),
		Avatar: id.Avatar,
	})

	return token.SignedString(c.key)
}

// Parse verifies a token string and reconstructs the Identity. Any defect —
// bad signature, malformed payload, unknown role — comes back as an error;
// callers treat all of them as "no persisted identity".
func (c *Codec) Parse(tokenString string) (*identity.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	return &identity.Identity{
		ID:     claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   role,
		Avatar: claims.Avatar,
	}, nil
}
