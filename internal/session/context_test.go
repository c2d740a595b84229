package session

import (
	"testing"

	"moviehub/pkg/domain"
)

func TestNewStartsUnauthenticated(t *testing.T) {
	c := New()
	s := c.Current()
	if s.Authenticated {
		t.Error("fresh context reports authenticated")
	}
	if s.EffectiveRole() != domain.RoleUser {
		t.Errorf("fresh context role = %q, want user", s.EffectiveRole())
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		wantRole domain.Role
	}{
		{"user", domain.RoleUser, domain.RoleUser},
		{"critic", domain.RoleCritic, domain.RoleCritic},
		{"moderator", domain.RoleModerator, domain.RoleModerator},
		{"admin", domain.RoleAdmin, domain.RoleAdmin},
		{"invalid degrades to user", domain.Role("root"), domain.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			s := c.Login(tt.role)
			if !s.Authenticated {
				t.Error("Login left session unauthenticated")
			}
			if s.Role != tt.wantRole {
				t.Errorf("Login(%q) role = %q, want %q", tt.role, s.Role, tt.wantRole)
			}
			if c.Current() != s {
				t.Error("Current() disagrees with Login return value")
			}
		})
	}
}

func TestLogoutResets(t *testing.T) {
	c := New()
	c.Login(domain.RoleAdmin)

	s := c.Logout()
	if s.Authenticated {
		t.Error("Logout left session authenticated")
	}
	if s.EffectiveRole() != domain.RoleUser {
		t.Errorf("post-logout role = %q, want user", s.EffectiveRole())
	}
}

func TestSetRoleKeepsAuthentication(t *testing.T) {
	c := New()
	c.Login(domain.RoleUser)

	s := c.SetRole(domain.RoleModerator)
	if !s.Authenticated {
		t.Error("SetRole flipped authentication")
	}
	if s.Role != domain.RoleModerator {
		t.Errorf("role = %q, want moderator", s.Role)
	}
}

func TestSetRoleIgnoresInvalid(t *testing.T) {
	c := New()
	c.Login(domain.RoleCritic)

	s := c.SetRole(domain.Role("owner"))
	if s.Role != domain.RoleCritic {
		t.Errorf("invalid SetRole changed role to %q", s.Role)
	}
}

func TestSnapshotsAreValues(t *testing.T) {
	c := New()
	before := c.Current()
	c.Login(domain.RoleAdmin)
	if before.Authenticated {
		t.Error("earlier snapshot mutated by later Login")
	}
}
