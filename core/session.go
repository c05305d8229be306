package core

import (
	"github.com/taskgate/taskgate/pkg/crypto"
)

// Resolver turns a SessionState snapshot into a resolved Session.
//
// Consumers receive the resolved value explicitly instead of re-reading
// shared provider state, so role resolution stays a pure function of its
// input.
type Resolver struct {
	decoder *ClaimsDecoder
	cache   ClaimsCache // optional, can be nil if caching is disabled
}

func NewResolver(decoder *ClaimsDecoder, cache ClaimsCache) *Resolver {
	return &Resolver{decoder: decoder, cache: cache}
}

// Resolve computes the role, groups and claims for the given session state.
//
// An unauthenticated state, or an authenticated state whose identity token
// is absent or malformed, resolves to RoleNone with empty groups. Both are
// valid, representable outcomes - Resolve never fails.
func (r *Resolver) Resolve(state SessionState) *Session {
	if !state.Authenticated {
		return &Session{
			Authenticated: false,
			Role:          RoleNone,
			Groups:        []string{},
		}
	}

	claims := r.decode(state.Credentials.IDToken)

	return &Session{
		Authenticated: true,
		Role:          ResolveRole(claims),
		Groups:        claims.GroupList(),
		Claims:        claims,
	}
}

// decode runs the claims decoder, consulting the cache first. Only
// successful decodes are cached; the cache key is the token hash so raw
// tokens never sit in cache memory.
func (r *Resolver) decode(token string) *Claims {
	if token == "" {
		return nil
	}

	if r.cache == nil {
		return r.decoder.Decode(token)
	}

	tokenHash := crypto.HashToken(token)

	if claims, err := r.cache.Get(tokenHash); err == nil {
		return claims
	}

	claims := r.decoder.Decode(token)
	if claims != nil {
		// We don't fail the resolve if caching fails
		_ = r.cache.Set(tokenHash, claims)
	}

	return claims
}
