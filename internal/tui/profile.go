package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/pkg/domain"
)

type profileModel struct {
	profile domain.UserProfile
	session domain.Session
	width   int
	height  int
}

func newProfileModel(cat *catalog.Store, s domain.Session) profileModel {
	p := cat.Profile()
	p.Role = s.EffectiveRole()
	return profileModel{profile: p, session: s}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "o" {
			return m, func() tea.Msg { return logoutMsg{} }
		}
	}
	return m, nil
}

func (m profileModel) View() string {
	var sb strings.Builder
	p := m.profile

	sb.WriteString("\n " + selectedStyle.Render(p.Name) + " " + dimStyle.Render("@"+p.Username) + " " + RoleBadge(p.Role) + "\n")
	if p.Bio != "" {
		sb.WriteString(" " + dimStyle.Render(p.Bio) + "\n")
	}
	sb.WriteString("\n " + sectionHeaderStyle.Render("Activity") + "\n")

	stats := []struct {
		label string
		value string
	}{
		{"ratings", fmt.Sprintf("%d", p.Stats.RatingsCount)},
		{"reviews", fmt.Sprintf("%d", p.Stats.ReviewsCount)},
		{"avg rating", fmt.Sprintf("%.1f", p.Stats.AvgRating)},
		{"time watched", fmt.Sprintf("%dh", p.Stats.TimeWatched)},
	}
	for _, st := range stats {
		sb.WriteString("   " + dimStyle.Render(fmt.Sprintf("%-14s", st.label)) + normalStyle.Render(st.value) + "\n")
	}

	sb.WriteString("\n " + metaStyle.Render("press o to sign out") + "\n")
	return sb.String()
}
