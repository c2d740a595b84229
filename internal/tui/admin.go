package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/pkg/domain"
)

type adminTab int

const (
	adminTabUsers adminTab = iota
	adminTabAnnouncements
)

type adminModel struct {
	catalog *catalog.Store
	tab     adminTab
	cursor  int

	// announcement composer
	composing  bool
	noticeFoc  int // 0 title, 1 body
	noticeTit  string
	noticeBody string

	editing   bool
	statusMsg string
	width     int
	height    int
}

func newAdminModel(cat *catalog.Store) adminModel {
	return adminModel{catalog: cat}
}

// cycleRole promotes an account to the next role, wrapping around.
func (m adminModel) cycleRole() (adminModel, tea.Cmd) {
	accounts := m.catalog.Accounts()
	if m.cursor >= len(accounts) {
		return m, nil
	}
	acct := accounts[m.cursor]
	next := domain.Roles[(roleIndex(acct.Role)+1)%len(domain.Roles)]
	if err := m.catalog.SetAccountRole(acct.ID, next); err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	return m, toastCmd("User role updated")
}

func (m adminModel) toggleLock() (adminModel, tea.Cmd) {
	accounts := m.catalog.Accounts()
	if m.cursor >= len(accounts) {
		return m, nil
	}
	locked, err := m.catalog.ToggleAccountLock(accounts[m.cursor].ID)
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	if locked {
		return m, toastCmd("User locked")
	}
	return m, toastCmd("User unlocked")
}

func (m adminModel) Update(msg tea.Msg) (adminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.composing {
			switch msg.String() {
			case "esc":
				m.composing = false
				m.editing = false
				m.noticeTit = ""
				m.noticeBody = ""
			case "tab", "down":
				m.noticeFoc = (m.noticeFoc + 1) % 2
			case "ctrl+s":
				if m.noticeTit == "" || m.noticeBody == "" {
					m.statusMsg = "Please fill out all required fields"
					return m, nil
				}
				m.catalog.AddAnnouncement(m.noticeTit, m.noticeBody)
				m.composing = false
				m.editing = false
				m.noticeTit = ""
				m.noticeBody = ""
				m.statusMsg = ""
				return m, toastCmd("Announcement published")
			default:
				if m.noticeFoc == 0 {
					m.noticeTit = editRune(m.noticeTit, msg.String())
				} else {
					m.noticeBody = editRune(m.noticeBody, msg.String())
				}
			}
			return m, nil
		}
		switch msg.String() {
		case "tab":
			if m.tab == adminTabUsers {
				m.tab = adminTabAnnouncements
			} else {
				m.tab = adminTabUsers
			}
			m.cursor = 0
			m.statusMsg = ""
		case "j", "down":
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "r":
			if m.tab == adminTabUsers {
				return m.cycleRole()
			}
		case "l":
			if m.tab == adminTabUsers {
				return m.toggleLock()
			}
		case "n":
			if m.tab == adminTabAnnouncements {
				m.composing = true
				m.editing = true
				m.noticeFoc = 0
			}
		}
	}
	return m, nil
}

func (m adminModel) rowCount() int {
	if m.tab == adminTabUsers {
		return len(m.catalog.Accounts())
	}
	return len(m.catalog.Announcements())
}

func (m adminModel) View() string {
	var sb strings.Builder

	usersLabel := dimStyle.Render("Members")
	noticesLabel := dimStyle.Render("Announcements")
	if m.tab == adminTabUsers {
		usersLabel = selectedStyle.Underline(true).Render("Members")
	} else {
		noticesLabel = selectedStyle.Underline(true).Render("Announcements")
	}
	sb.WriteString("\n " + usersLabel + "   " + noticesLabel + "   " + metaStyle.Render("(tab switches)") + "\n\n")

	if m.tab == adminTabUsers {
		accounts := m.catalog.Accounts()
		for i, acct := range accounts {
			prefix := "   "
			name := normalStyle.Render(fmt.Sprintf("%-16s", acct.Name))
			if i == m.cursor {
				prefix = " " + accentStyle.Render("> ")
				name = selectedStyle.Render(fmt.Sprintf("%-16s", acct.Name))
			}
			lock := ""
			if acct.Locked {
				lock = "  " + errorStyle.Render("locked")
			}
			sb.WriteString(fmt.Sprintf("%s%s %s  %s%s\n", prefix, name,
				dimStyle.Render(fmt.Sprintf("%-22s", acct.Email)), RoleBadge(acct.Role), lock))
		}
		if len(accounts) == 0 {
			sb.WriteString(" " + dimStyle.Render("no members") + "\n")
		}
	} else {
		if m.composing {
			sb.WriteString(fieldLine("title", m.noticeTit, "short headline", m.noticeFoc == 0) + "\n")
			sb.WriteString(fieldLine("body", m.noticeBody, "what members need to know", m.noticeFoc == 1) + "\n")
		} else {
			notices := m.catalog.Announcements()
			if len(notices) == 0 {
				sb.WriteString(" " + dimStyle.Render("no announcements — press n to write one") + "\n")
			}
			for i, a := range notices {
				prefix := "   "
				title := normalStyle.Render(a.Title)
				if i == m.cursor {
					prefix = " " + accentStyle.Render("> ")
					title = selectedStyle.Render(a.Title)
				}
				sb.WriteString(fmt.Sprintf("%s%s  %s\n", prefix, title, metaStyle.Render(formatTime(a.CreatedAt))))
				sb.WriteString("   " + dimStyle.Render(truncStr(a.Body, 64)) + "\n")
			}
		}
	}

	if m.statusMsg != "" {
		sb.WriteString("\n " + errorStyle.Render(m.statusMsg) + "\n")
	}

	return sb.String()
}
