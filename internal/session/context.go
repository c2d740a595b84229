// Package session owns the process's single authentication context.
// There is exactly one Context per running client; all mutation goes
// through Login, Logout and SetRole, and readers take value snapshots.
package session

import "moviehub/pkg/domain"

// Context is the one mutable session for the running client.
type Context struct {
	s domain.Session
}

// New returns the initial unauthenticated context.
func New() *Context {
	return &Context{s: domain.Session{Role: domain.RoleUser}}
}

// Login marks the session authenticated with the given role and returns
// the new snapshot. Invalid roles degrade to user.
func (c *Context) Login(r domain.Role) domain.Session {
	if !domain.ValidRole(r) {
		r = domain.RoleUser
	}
	c.s = domain.Session{Authenticated: true, Role: r}
	return c.s
}

// Logout resets the session to its initial unauthenticated state.
func (c *Context) Logout() domain.Session {
	c.s = domain.Session{Role: domain.RoleUser}
	return c.s
}

// SetRole changes the role without touching authentication. This is the
// privileged demo/admin override: the context does not authorize the
// call, the caller must already sit behind an appropriately gated
// surface. Invalid roles are ignored.
func (c *Context) SetRole(r domain.Role) domain.Session {
	if domain.ValidRole(r) {
		c.s.Role = r
	}
	return c.s
}

// Current returns a snapshot of the session.
func (c *Context) Current() domain.Session {
	return c.s
}
