package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moviehub/internal/catalog"
	"moviehub/internal/moderation"
	"moviehub/pkg/domain"
)

type modQueueModel struct {
	catalog *catalog.Store
	reports *moderation.Store
	role    domain.Role

	violationFilter string
	statusFilter    string
	rows            []*domain.Report
	cursor          int

	detail      bool
	note        string
	noteEditing bool
	errMsg      string
	width       int
	height      int
}

func newModQueueModel(cat *catalog.Store, reports *moderation.Store, role domain.Role, focus *domain.Report) modQueueModel {
	m := modQueueModel{
		catalog:         cat,
		reports:         reports,
		role:            role,
		violationFilter: moderation.FilterAll,
		statusFilter:    string(domain.ReportPending),
	}
	if focus != nil {
		m.statusFilter = string(focus.Status)
		m = m.refresh()
		for i, r := range m.rows {
			if r.ID == focus.ID {
				m.cursor = i
				m.detail = true
				break
			}
		}
		return m
	}
	return m.refresh()
}

func (m modQueueModel) refresh() modQueueModel {
	m.rows = m.reports.Filter(m.violationFilter, m.statusFilter)
	if m.cursor >= len(m.rows) {
		m.cursor = 0
	}
	return m
}

// cycleViolation advances the type filter: all -> each type -> all.
func (m modQueueModel) cycleViolation() modQueueModel {
	if m.violationFilter == moderation.FilterAll {
		m.violationFilter = string(domain.ViolationTypes[0])
		return m.refresh()
	}
	for i, v := range domain.ViolationTypes {
		if string(v) == m.violationFilter {
			if i == len(domain.ViolationTypes)-1 {
				m.violationFilter = moderation.FilterAll
			} else {
				m.violationFilter = string(domain.ViolationTypes[i+1])
			}
			return m.refresh()
		}
	}
	m.violationFilter = moderation.FilterAll
	return m.refresh()
}

// cycleStatus advances the status filter: pending -> approved ->
// rejected -> all -> pending.
func (m modQueueModel) cycleStatus() modQueueModel {
	if m.statusFilter == moderation.FilterAll {
		m.statusFilter = string(domain.ReportStatuses[0])
		return m.refresh()
	}
	for i, st := range domain.ReportStatuses {
		if string(st) == m.statusFilter {
			if i == len(domain.ReportStatuses)-1 {
				m.statusFilter = moderation.FilterAll
			} else {
				m.statusFilter = string(domain.ReportStatuses[i+1])
			}
			return m.refresh()
		}
	}
	m.statusFilter = moderation.FilterAll
	return m.refresh()
}

// act applies one moderation action to the focused report and routes
// the outcome's content signal to the catalog.
func (m modQueueModel) act(a moderation.Action) (modQueueModel, tea.Cmd) {
	if m.cursor >= len(m.rows) {
		return m, nil
	}
	r := m.rows[m.cursor]
	out, err := m.reports.Resolve(r.ID, a, m.role, m.note)
	if err != nil {
		if errors.Is(err, moderation.ErrInvalidTransition) && r.Status.Terminal() {
			m.errMsg = "This report has already been resolved"
		} else {
			m.errMsg = err.Error()
		}
		return m, nil
	}

	switch out.Signal {
	case moderation.SignalHideContent:
		m.catalog.HideContent(r.ContentID)
	case moderation.SignalDeleteContent:
		m.catalog.DeleteContent(r.ContentType, r.ContentID)
	}

	m.note = ""
	m.detail = false
	m.errMsg = ""
	return m.refresh(), toastCmd(out.Message)
}

func (m modQueueModel) Update(msg tea.Msg) (modQueueModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.noteEditing {
			switch msg.String() {
			case "enter", "esc":
				m.noteEditing = false
			default:
				m.note = editRune(m.note, msg.String())
			}
			return m, nil
		}
		if m.detail {
			switch msg.String() {
			case "esc":
				m.detail = false
				m.errMsg = ""
			case "n":
				m.noteEditing = true
			case "a":
				return m.act(moderation.ActionApprove)
			case "h":
				return m.act(moderation.ActionHide)
			case "d":
				return m.act(moderation.ActionDelete)
			case "w":
				return m.act(moderation.ActionWarn)
			case "b":
				return m.act(moderation.ActionBan)
			}
			return m, nil
		}
		switch msg.String() {
		case "t":
			return m.cycleViolation(), nil
		case "s":
			return m.cycleStatus(), nil
		case "j", "down":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.rows) {
				m.detail = true
				m.note = ""
				m.errMsg = ""
			}
		}
	}
	return m, nil
}

func (m modQueueModel) View() string {
	if m.detail {
		return m.detailView()
	}

	var sb strings.Builder

	c := m.reports.Counts()
	sb.WriteString("\n " +
		StatusStyle(domain.ReportPending).Render(fmt.Sprintf("%d pending", c.Pending)) + "   " +
		StatusStyle(domain.ReportApproved).Render(fmt.Sprintf("%d approved", c.Approved)) + "   " +
		StatusStyle(domain.ReportRejected).Render(fmt.Sprintf("%d rejected", c.Rejected)) + "\n")

	vf := m.violationFilter
	if vf != moderation.FilterAll {
		vf = ViolationStyle(domain.ViolationType(vf)).Render(vf)
	} else {
		vf = dimStyle.Render(vf)
	}
	sf := m.statusFilter
	if sf != moderation.FilterAll {
		sf = StatusStyle(domain.ReportStatus(sf)).Render(sf)
	} else {
		sf = dimStyle.Render(sf)
	}
	sb.WriteString(" " + metaStyle.Render("type:") + " " + vf + "   " + metaStyle.Render("status:") + " " + sf + "\n\n")

	if len(m.rows) == 0 {
		sb.WriteString(" " + dimStyle.Render("no reports match the filters") + "\n")
		return sb.String()
	}

	for i, r := range m.rows {
		prefix := "   "
		if i == m.cursor {
			prefix = " " + accentStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s %s %s  %s  %s",
			prefix,
			ViolationStyle(r.Violation).Render(fmt.Sprintf("%-9s", string(r.Violation))),
			StatusStyle(r.Status).Render(fmt.Sprintf("%-8s", string(r.Status))),
			dimStyle.Render(string(r.ContentType)),
			normalStyle.Render(truncStr(r.ContentPreview, 40)),
			metaStyle.Render(formatTime(r.CreatedAt)))
		if i == m.cursor {
			line = selectedRowBg.Render(line)
		}
		sb.WriteString(line + "\n")
	}

	return sb.String()
}

func (m modQueueModel) detailView() string {
	if m.cursor >= len(m.rows) {
		return "\n " + dimStyle.Render("report no longer in view")
	}
	r := m.rows[m.cursor]

	var sb strings.Builder
	sb.WriteString("\n " + ViolationStyle(r.Violation).Render(string(r.Violation)) +
		" " + dimStyle.Render("report on a "+string(r.ContentType)) +
		"  " + StatusStyle(r.Status).Render(string(r.Status)) + "\n")
	sb.WriteString(" " + metaStyle.Render("reported by "+r.ReporterName+" · "+formatTime(r.CreatedAt)) + "\n\n")

	bodyWidth := m.width - 4
	if bodyWidth < 30 {
		bodyWidth = 60
	}
	preview := lipgloss.NewStyle().Width(bodyWidth).Render(normalStyle.Render(r.ContentPreview))
	for _, line := range strings.Split(preview, "\n") {
		sb.WriteString(" " + line + "\n")
	}

	if r.Status.Terminal() {
		sb.WriteString("\n " + dimStyle.Render("resolved by "+string(r.ResolvedBy)))
		if r.ResolutionNote != "" {
			sb.WriteString(dimStyle.Render(": ") + normalStyle.Render(r.ResolutionNote))
		}
		sb.WriteString("\n")
	} else {
		noteLine := " " + dimStyle.Render("note: ")
		if m.noteEditing {
			noteLine += normalStyle.Render(m.note) + accentStyle.Render("█")
		} else if m.note != "" {
			noteLine += normalStyle.Render(m.note)
		} else {
			noteLine += inputPlaceholderStyle.Render("press n to attach a resolution note")
		}
		sb.WriteString("\n" + noteLine + "\n")
	}

	if m.errMsg != "" {
		sb.WriteString("\n " + errorStyle.Render(m.errMsg) + "\n")
	}

	return sb.String()
}
