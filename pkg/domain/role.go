package domain

// Role is a user's privilege level on the platform.
type Role string

const (
	RoleUser      Role = "user"
	RoleCritic    Role = "critic"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Roles lists every role in ascending privilege order.
var Roles = []Role{RoleUser, RoleCritic, RoleModerator, RoleAdmin}

// roleRank orders roles for "at least this role" checks.
var roleRank = map[Role]int{
	RoleUser:      0,
	RoleCritic:    1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// ValidRole returns true if r is a known role.
func ValidRole(r Role) bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r carries at least the privilege of min.
// Unknown roles rank below user.
func (r Role) AtLeast(min Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	return rr >= roleRank[min]
}

// CanModerate reports whether r may act on moderation reports.
func (r Role) CanModerate() bool {
	return r.AtLeast(RoleModerator)
}
