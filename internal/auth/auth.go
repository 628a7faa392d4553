// Package auth is a stand-in for the external identity provider. It resolves
// a bearer token to an authenticated customer identity; real token
// verification lives outside this service.
package auth

import (
	"net/http"
	"strings"
)

// Identity describes an authenticated customer.
type Identity struct {
	UserID int
}

// Verifier resolves bearer tokens to identities.
type Verifier interface {
	// Verify returns the identity for a token, and whether the token is valid.
	Verify(token string) (Identity, bool)
}

// defaultUserID is used when a token is accepted but carries no user
// mapping, matching the single demo customer the seed data creates.
const defaultUserID = 1

// StaticVerifier accepts a fixed set of tokens. An empty token set accepts
// any non-empty token as the default user, which is what the demo
// deployment runs with.
type StaticVerifier struct {
	tokens map[string]int
}

// NewStaticVerifier creates a verifier over a token -> user id mapping.
// Pass nil to accept any non-empty token.
func NewStaticVerifier(tokens map[string]int) *StaticVerifier {
	return &StaticVerifier{tokens: tokens}
}

func (v *StaticVerifier) Verify(token string) (Identity, bool) {
	if token == "" {
		return Identity{}, false
	}
	if v.tokens == nil {
		return Identity{UserID: defaultUserID}, true
	}
	userID, ok := v.tokens[token]
	if !ok {
		return Identity{}, false
	}
	if userID <= 0 {
		userID = defaultUserID
	}
	return Identity{UserID: userID}, true
}

// FromRequest extracts and verifies the bearer token on an HTTP request.
// Requests without credentials are anonymous, not an error.
func FromRequest(r *http.Request, v Verifier) (Identity, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Identity{}, false
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return Identity{}, false
	}
	return v.Verify(strings.TrimSpace(token))
}
