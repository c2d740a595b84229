package tui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/nav"
	"moviehub/pkg/domain"
)

type authTab int

const (
	authTabLogin authTab = iota
	authTabRegister
)

// minPasswordStrength is the weakest password register accepts.
const minPasswordStrength = 50

type authModel struct {
	tab   authTab
	focus int
	// login fields
	email    string
	password string
	role     domain.Role // demo seat to sign in as
	// register fields
	name        string
	regEmail    string
	regPassword string
	confirm     string

	editing bool // focus sits on a text field
	errMsg  string
	width   int
	height  int
}

func newAuthModel(defaultRole domain.Role) authModel {
	return authModel{role: defaultRole, editing: true}
}

func (m authModel) fieldCount() int {
	if m.tab == authTabLogin {
		return 3 // email, password, role
	}
	return 4 // name, email, password, confirm
}

// syncEditing keeps the editing flag in step with the focused field.
// The login role selector is the only non-text field.
func (m authModel) syncEditing() authModel {
	m.editing = !(m.tab == authTabLogin && m.focus == 2)
	return m
}

func (m authModel) Update(msg tea.Msg) (authModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigateTo(nav.PageHome, nil)
		case "tab", "down":
			m.focus = (m.focus + 1) % m.fieldCount()
			return m.syncEditing(), nil
		case "up":
			m.focus = (m.focus + m.fieldCount() - 1) % m.fieldCount()
			return m.syncEditing(), nil
		case "shift+tab":
			if m.tab == authTabLogin {
				m.tab = authTabRegister
			} else {
				m.tab = authTabLogin
			}
			m.focus = 0
			m.errMsg = ""
			return m.syncEditing(), nil
		case "h", "l", "left", "right":
			if m.tab == authTabLogin && m.focus == 2 {
				dir := 1
				if msg.String() == "h" || msg.String() == "left" {
					dir = -1
				}
				m.role = domain.Roles[(roleIndex(m.role)+dir+len(domain.Roles))%len(domain.Roles)]
				return m, nil
			}
		case "enter":
			return m.submit()
		}
		if m.editing {
			m.setFocused(func(s string) string { return editRune(s, msg.String()) })
		}
	}
	return m, nil
}

// setFocused applies an edit to whichever field holds focus.
func (m *authModel) setFocused(edit func(string) string) {
	if m.tab == authTabLogin {
		switch m.focus {
		case 0:
			m.email = edit(m.email)
		case 1:
			m.password = edit(m.password)
		}
		return
	}
	switch m.focus {
	case 0:
		m.name = edit(m.name)
	case 1:
		m.regEmail = edit(m.regEmail)
	case 2:
		m.regPassword = edit(m.regPassword)
	case 3:
		m.confirm = edit(m.confirm)
	}
}

func (m authModel) submit() (authModel, tea.Cmd) {
	if m.tab == authTabLogin {
		if m.email == "" || m.password == "" {
			m.errMsg = "Please fill out all required fields"
			return m, nil
		}
		role := m.role
		return m, func() tea.Msg { return loginMsg{role: role} }
	}

	if m.name == "" || m.regEmail == "" || m.regPassword == "" || m.confirm == "" {
		m.errMsg = "Please fill out all required fields"
		return m, nil
	}
	if m.regPassword != m.confirm {
		m.errMsg = "Passwords do not match"
		return m, nil
	}
	if passwordStrength(m.regPassword) < minPasswordStrength {
		m.errMsg = "Please use a stronger password"
		return m, nil
	}
	// New accounts always start as regular members.
	return m, func() tea.Msg { return loginMsg{role: domain.RoleUser} }
}

// passwordStrength scores a password 0-100 from length and character
// variety.
func passwordStrength(pw string) int {
	score := 0
	if len(pw) >= 8 {
		score += 25
	}
	if len(pw) >= 12 {
		score += 15
	}
	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			score += 15
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

func strengthMeter(pw string) string {
	if pw == "" {
		return ""
	}
	score := passwordStrength(pw)
	filled := score / 10
	bar := strings.Repeat("■", filled) + strings.Repeat("□", 10-filled)
	switch {
	case score < minPasswordStrength:
		return errorStyle.Render(bar + " weak")
	case score < 75:
		return spoilerStyle.Render(bar + " fair")
	default:
		return toastStyle.Render(bar + " strong")
	}
}

func (m authModel) View() string {
	var sb strings.Builder

	loginLabel := dimStyle.Render("Sign in")
	registerLabel := dimStyle.Render("Create account")
	if m.tab == authTabLogin {
		loginLabel = selectedStyle.Underline(true).Render("Sign in")
	} else {
		registerLabel = selectedStyle.Underline(true).Render("Create account")
	}
	sb.WriteString("\n " + loginLabel + "   " + registerLabel + "   " + metaStyle.Render("(shift+tab switches)") + "\n\n")

	mask := func(s string) string { return strings.Repeat("*", len(s)) }

	if m.tab == authTabLogin {
		sb.WriteString(fieldLine("email", m.email, "you@example.com", m.focus == 0) + "\n")
		sb.WriteString(fieldLine("password", mask(m.password), "your password", m.focus == 1) + "\n")

		marker := "  "
		if m.focus == 2 {
			marker = accentStyle.Render("> ")
		}
		var seats []string
		for _, r := range domain.Roles {
			if r == m.role {
				seats = append(seats, RoleStyle(r).Render("["+string(r)+"]"))
			} else {
				seats = append(seats, metaStyle.Render(string(r)))
			}
		}
		sb.WriteString(" " + marker + dimStyle.Render(fmt.Sprintf("%-12s", "demo seat")) + strings.Join(seats, " ") + "\n")
	} else {
		sb.WriteString(fieldLine("name", m.name, "Jordan Reyes", m.focus == 0) + "\n")
		sb.WriteString(fieldLine("email", m.regEmail, "you@example.com", m.focus == 1) + "\n")
		sb.WriteString(fieldLine("password", mask(m.regPassword), "8+ characters", m.focus == 2) + "\n")
		if meter := strengthMeter(m.regPassword); meter != "" {
			sb.WriteString("                 " + meter + "\n")
		}
		sb.WriteString(fieldLine("confirm", mask(m.confirm), "repeat password", m.focus == 3) + "\n")
	}

	if m.errMsg != "" {
		sb.WriteString("\n " + errorStyle.Render(m.errMsg) + "\n")
	}

	return sb.String()
}
