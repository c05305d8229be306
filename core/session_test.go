package core

import (
	"testing"
)

func newTestResolver(cache ClaimsCache) *Resolver {
	return NewResolver(NewClaimsDecoder("", nil), cache)
}

// Requirement: an unauthenticated state resolves to role none with empty
// groups, without touching the token.
func TestResolverShouldResolveUnauthenticatedToNone(t *testing.T) {
	resolver := newTestResolver(nil)

	session := resolver.Resolve(SessionState{Authenticated: false})

	if session.Authenticated {
		t.Error("expected unauthenticated session")
	}
	if session.Role != RoleNone {
		t.Errorf("Role = %q, want %q", session.Role, RoleNone)
	}
	if len(session.Groups) != 0 {
		t.Errorf("Groups = %v, want empty", session.Groups)
	}
}

// Requirement: role and groups are derived from the identity token claims.
func TestResolverShouldDeriveRoleFromIDToken(t *testing.T) {
	resolver := newTestResolver(nil)

	token := encodeToken(t, map[string]any{
		"sub":            "subject-1",
		"cognito:groups": []string{"user", "admin"},
	})

	session := resolver.Resolve(SessionState{
		Authenticated: true,
		Credentials:   Credentials{IDToken: token},
	})

	if session.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", session.Role, RoleAdmin)
	}
	if len(session.Groups) != 2 {
		t.Errorf("Groups = %v, want 2 entries", session.Groups)
	}
	if session.Claims == nil || session.Claims.Subject != "subject-1" {
		t.Errorf("Claims = %+v, want subject-1", session.Claims)
	}
}

// Requirement: a malformed identity token is treated like an absent one -
// the session stays authenticated but carries role none.
func TestResolverShouldDegradeMalformedTokenToNone(t *testing.T) {
	resolver := newTestResolver(nil)

	session := resolver.Resolve(SessionState{
		Authenticated: true,
		Credentials:   Credentials{IDToken: "not.a.token"},
	})

	if !session.Authenticated {
		t.Error("expected authenticated session")
	}
	if session.Role != RoleNone {
		t.Errorf("Role = %q, want %q", session.Role, RoleNone)
	}
	if session.Claims != nil {
		t.Errorf("Claims = %+v, want nil", session.Claims)
	}
}

// Requirement: repeated resolves of the same token are served from the
// cache; decode stays pure so the answer is identical.
func TestResolverShouldCacheDecodedClaims(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{})
	resolver := newTestResolver(cache)

	token := encodeToken(t, map[string]any{
		"sub":            "subject-1",
		"cognito:groups": []string{"admin"},
	})
	state := SessionState{
		Authenticated: true,
		Credentials:   Credentials{IDToken: token},
	}

	first := resolver.Resolve(state)
	second := resolver.Resolve(state)

	if first.Role != second.Role {
		t.Errorf("roles differ across resolves: %q vs %q", first.Role, second.Role)
	}

	stats := cache.Stats()
	if stats.Hits != 1 {
		t.Errorf("Expected 1 cache hit, got %d", stats.Hits)
	}
	if stats.Sets != 1 {
		t.Errorf("Expected 1 cache set, got %d", stats.Sets)
	}
}

// Requirement: failed decodes are not cached.
func TestResolverShouldNotCacheFailedDecodes(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{})
	resolver := newTestResolver(cache)

	state := SessionState{
		Authenticated: true,
		Credentials:   Credentials{IDToken: "garbage"},
	}

	resolver.Resolve(state)
	resolver.Resolve(state)

	if cache.Size() != 0 {
		t.Errorf("Expected empty cache, got size %d", cache.Size())
	}
}
