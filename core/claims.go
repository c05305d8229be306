package core

import (
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultGroupsClaim is the claim name Cognito uses for group membership.
const DefaultGroupsClaim = "cognito:groups"

// Claims is the decoded payload of an identity token.
//
// Only the fields this library cares about are lifted out; the full claim
// set is retained in Raw for callers that need provider-specific keys.
type Claims struct {
	Subject    string         `json:"sub"`
	Email      string         `json:"email"`
	GivenName  string         `json:"given_name,omitempty"`
	FamilyName string         `json:"family_name,omitempty"`
	Groups     []string       `json:"groups,omitempty"`
	Raw        map[string]any `json:"-"`
}

// GroupList returns the group membership list, never nil.
// Safe on a nil receiver so absent claims behave like an empty claim set.
func (c *Claims) GroupList() []string {
	if c == nil || c.Groups == nil {
		return []string{}
	}
	return c.Groups
}

// HasGroup reports whether the subject belongs to the named group.
func (c *Claims) HasGroup(name string) bool {
	for _, g := range c.GroupList() {
		if g == name {
			return true
		}
	}
	return false
}

// ClaimsDecoder extracts the claim set from a compact identity token.
//
// It decodes the payload segment only. Signature and expiry verification are
// the session provider's responsibility; these claims feed UI-level
// authorization, not server-side enforcement.
type ClaimsDecoder struct {
	groupsClaim string
	logger      *slog.Logger
	parser      *jwt.Parser
}

// NewClaimsDecoder creates a decoder reading group membership from the given
// claim name. An empty groupsClaim falls back to DefaultGroupsClaim.
func NewClaimsDecoder(groupsClaim string, logger *slog.Logger) *ClaimsDecoder {
	if groupsClaim == "" {
		groupsClaim = DefaultGroupsClaim
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ClaimsDecoder{
		groupsClaim: groupsClaim,
		logger:      logger,
		parser:      jwt.NewParser(),
	}
}

// Decode returns the claim set of token, or nil if the token is empty or
// malformed. Decode failures are logged, never surfaced; callers must treat
// nil claims the same as an absent token.
func (d *ClaimsDecoder) Decode(token string) *Claims {
	if token == "" {
		return nil
	}

	mapClaims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, mapClaims); err != nil {
		d.logger.Warn("failed to decode identity token", "error", err)
		return nil
	}

	claims := &Claims{
		Subject:    stringClaim(mapClaims, "sub"),
		Email:      stringClaim(mapClaims, "email"),
		GivenName:  stringClaim(mapClaims, "given_name"),
		FamilyName: stringClaim(mapClaims, "family_name"),
		Groups:     stringListClaim(mapClaims, d.groupsClaim),
		Raw:        mapClaims,
	}

	return claims
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// stringListClaim returns the claim value as a string slice. JSON arrays
// decode as []any, so each entry is asserted individually; a claim that is
// not a list (or a list of non-strings) yields an empty slice.
func stringListClaim(claims jwt.MapClaims, key string) []string {
	raw, ok := claims[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
