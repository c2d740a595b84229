package domain

// Session is the single active client's authentication and role context.
type Session struct {
	Authenticated bool `json:"authenticated"`
	Role          Role `json:"role"`
}

// EffectiveRole is the role used for access checks. An unauthenticated
// session is always a plain user, whatever stale value Role holds.
func (s Session) EffectiveRole() Role {
	if !s.Authenticated || !ValidRole(s.Role) {
		return RoleUser
	}
	return s.Role
}
