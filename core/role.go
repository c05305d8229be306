package core

// Role is a single authorization level derived from group membership.
//
// Roles gate UI affordances and the library's mutation paths. They are
// advisory only - nothing here is a substitute for server-side enforcement.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleNone  Role = "none"
)

// Group names recognized by role resolution, in precedence order.
const (
	GroupAdmin = "admin"
	GroupUser  = "user"
)

// ResolveRole maps a claim set to a role by precedence: a subject in both
// the admin and user groups is an admin. Nil claims resolve to RoleNone.
//
// Pure function of claims - identical claims always yield the same role.
func ResolveRole(claims *Claims) Role {
	if claims.HasGroup(GroupAdmin) {
		return RoleAdmin
	}
	if claims.HasGroup(GroupUser) {
		return RoleUser
	}
	return RoleNone
}
