package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/pkg/domain"
)

func typeInto(m authModel, text string) authModel {
	for _, ch := range text {
		m, _ = m.Update(keyRunes(string(ch)))
	}
	return m
}

func TestAuthLoginRequiresAllFields(t *testing.T) {
	m := newAuthModel(domain.RoleCritic)
	m = typeInto(m, "alice@example.com")

	m, cmd := m.submit()
	if cmd != nil {
		t.Fatal("submit with empty password should not produce a command")
	}
	if m.errMsg != "Please fill out all required fields" {
		t.Errorf("errMsg = %q", m.errMsg)
	}
}

func TestAuthLoginEmitsChosenRole(t *testing.T) {
	m := newAuthModel(domain.RoleCritic)
	m = typeInto(m, "alice@example.com")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "hunter2!")

	m, cmd := m.submit()
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %q", m.errMsg)
	}
	if cmd == nil {
		t.Fatal("expected a login command")
	}
	msg, ok := cmd().(loginMsg)
	if !ok {
		t.Fatalf("expected loginMsg, got %T", cmd())
	}
	if msg.role != domain.RoleCritic {
		t.Errorf("login role = %q, want the preselected critic seat", msg.role)
	}
}

func TestAuthRoleSelectorCycles(t *testing.T) {
	m := newAuthModel(domain.RoleUser)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.editing {
		t.Fatal("role selector focus should not count as editing")
	}

	m, _ = m.Update(keyRunes("l"))
	if m.role != domain.RoleCritic {
		t.Errorf("role after l = %q, want critic", m.role)
	}
	m, _ = m.Update(keyRunes("h"))
	if m.role != domain.RoleUser {
		t.Errorf("role after h = %q, want user", m.role)
	}
}

func TestAuthRegisterRejectsWeakPassword(t *testing.T) {
	m := newAuthModel(domain.RoleCritic)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != authTabRegister {
		t.Fatal("shift+tab did not switch to register")
	}

	m = typeInto(m, "Jordan Reyes")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "jordan@example.com")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "abc")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "abc")

	m, cmd := m.submit()
	if cmd != nil {
		t.Fatal("weak password should not register")
	}
	if m.errMsg != "Please use a stronger password" {
		t.Errorf("errMsg = %q", m.errMsg)
	}
}

func TestAuthRegisterMismatchedPasswords(t *testing.T) {
	m := newAuthModel(domain.RoleCritic)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = typeInto(m, "Jordan Reyes")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "jordan@example.com")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "Str0ng!Passw0rd")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "different")

	m, cmd := m.submit()
	if cmd != nil {
		t.Fatal("mismatched passwords should not register")
	}
	if m.errMsg != "Passwords do not match" {
		t.Errorf("errMsg = %q", m.errMsg)
	}
}

func TestAuthRegisterStartsAsUser(t *testing.T) {
	m := newAuthModel(domain.RoleAdmin)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = typeInto(m, "Jordan Reyes")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "jordan@example.com")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "Str0ng!Passw0rd")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "Str0ng!Passw0rd")

	m, cmd := m.submit()
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %q", m.errMsg)
	}
	msg := cmd().(loginMsg)
	if msg.role != domain.RoleUser {
		t.Errorf("new account role = %q, want user regardless of the demo seat", msg.role)
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		pw      string
		atLeast int
		below   int
	}{
		{"", 0, 10},
		{"abc", 15, minPasswordStrength},
		{"abcdefgh", 40, minPasswordStrength},
		{"Abcdefg1", 70, 101},
		{"Str0ng!Passw0rd", 100, 101},
	}

	for _, tc := range tests {
		t.Run(tc.pw, func(t *testing.T) {
			got := passwordStrength(tc.pw)
			if got < tc.atLeast || got >= tc.below {
				t.Errorf("passwordStrength(%q) = %d, want in [%d, %d)", tc.pw, got, tc.atLeast, tc.below)
			}
		})
	}
}

func TestAuthViewShowsStrengthMeter(t *testing.T) {
	m := newAuthModel(domain.RoleCritic)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "abc")

	if !strings.Contains(m.View(), "weak") {
		t.Error("expected weak strength label in register view")
	}
}
