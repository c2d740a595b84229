package main

import (
	"testing"

	"moviehub/pkg/domain"
)

func TestDefaultRole(t *testing.T) {
	tests := []struct {
		env  string
		want domain.Role
	}{
		{"", domain.RoleCritic},
		{"user", domain.RoleUser},
		{"moderator", domain.RoleModerator},
		{"ADMIN", domain.RoleAdmin},
		{"  critic  ", domain.RoleCritic},
		{"superuser", domain.RoleCritic},
	}

	for _, tc := range tests {
		t.Run(tc.env, func(t *testing.T) {
			t.Setenv("MOVIEHUB_ROLE", tc.env)
			if got := defaultRole(); got != tc.want {
				t.Errorf("defaultRole() with MOVIEHUB_ROLE=%q = %q, want %q", tc.env, got, tc.want)
			}
		})
	}
}
