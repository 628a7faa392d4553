package auth

import (
	"net/http/httptest"
	"testing"
)

func TestStaticVerifierAnyToken(t *testing.T) {
	v := NewStaticVerifier(nil)

	id, ok := v.Verify("any-token")
	if !ok {
		t.Fatal("expected any non-empty token to verify")
	}
	if id.UserID != defaultUserID {
		t.Errorf("user id = %d, want %d", id.UserID, defaultUserID)
	}

	if _, ok := v.Verify(""); ok {
		t.Error("empty token should not verify")
	}
}

func TestStaticVerifierMappedTokens(t *testing.T) {
	v := NewStaticVerifier(map[string]int{"alice-token": 7})

	id, ok := v.Verify("alice-token")
	if !ok || id.UserID != 7 {
		t.Errorf("mapped token: got (%+v, %v)", id, ok)
	}

	if _, ok := v.Verify("unknown-token"); ok {
		t.Error("unknown token should not verify against a fixed token set")
	}
}

func TestFromRequest(t *testing.T) {
	v := NewStaticVerifier(nil)

	r := httptest.NewRequest("POST", "/chat", nil)
	if _, ok := FromRequest(r, v); ok {
		t.Error("request without Authorization should be anonymous")
	}

	r.Header.Set("Authorization", "Basic dXNlcg==")
	if _, ok := FromRequest(r, v); ok {
		t.Error("non-bearer scheme should be anonymous")
	}

	r.Header.Set("Authorization", "Bearer demo-token")
	id, ok := FromRequest(r, v)
	if !ok || id.UserID != defaultUserID {
		t.Errorf("bearer token: got (%+v, %v)", id, ok)
	}
}
