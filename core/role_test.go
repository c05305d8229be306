package core

import "testing"

// Requirement: admin takes precedence over user; no recognized group means
// none; resolution is a pure function of the claims.
func TestResolveRoleShouldApplyPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		groups []string
		want   Role
	}{
		{name: "admin only", groups: []string{"admin"}, want: RoleAdmin},
		{name: "admin and user", groups: []string{"user", "admin"}, want: RoleAdmin},
		{name: "admin among unrecognized", groups: []string{"ops", "admin", "billing"}, want: RoleAdmin},
		{name: "user only", groups: []string{"user"}, want: RoleUser},
		{name: "unrecognized groups", groups: []string{"ops", "billing"}, want: RoleNone},
		{name: "empty list", groups: []string{}, want: RoleNone},
		{name: "nil list", groups: nil, want: RoleNone},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			claims := &Claims{Subject: "s", Groups: test.groups}

			if got := ResolveRole(claims); got != test.want {
				t.Errorf("ResolveRole(%v) = %q, want %q", test.groups, got, test.want)
			}

			// Same claims, same answer
			if again := ResolveRole(claims); again != test.want {
				t.Errorf("second ResolveRole(%v) = %q, want %q", test.groups, again, test.want)
			}
		})
	}
}

// Requirement: absent claims resolve to none.
func TestResolveRoleShouldReturnNoneForNilClaims(t *testing.T) {
	if got := ResolveRole(nil); got != RoleNone {
		t.Errorf("ResolveRole(nil) = %q, want %q", got, RoleNone)
	}
}

func TestHasGroupShouldMatchExactNames(t *testing.T) {
	claims := &Claims{Groups: []string{"admin", "ops"}}

	if !claims.HasGroup("admin") {
		t.Error("expected HasGroup(admin) to be true")
	}
	if claims.HasGroup("Admin") {
		t.Error("group matching should be case-sensitive")
	}
	if claims.HasGroup("user") {
		t.Error("expected HasGroup(user) to be false")
	}
}
