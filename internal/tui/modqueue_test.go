package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/internal/moderation"
	"moviehub/pkg/domain"
)

func newTestQueue(role domain.Role) modQueueModel {
	cat := catalog.Seeded()
	reports := moderation.NewStore(cat.SeedReports()...)
	m := newModQueueModel(cat, reports, role, nil)
	m.width = 100
	m.height = 30
	return m
}

func TestQueueDefaultsToPending(t *testing.T) {
	m := newTestQueue(domain.RoleModerator)
	if m.statusFilter != string(domain.ReportPending) {
		t.Errorf("statusFilter = %q, want pending", m.statusFilter)
	}
	if m.violationFilter != moderation.FilterAll {
		t.Errorf("violationFilter = %q, want all", m.violationFilter)
	}
	for _, r := range m.rows {
		if r.Status != domain.ReportPending {
			t.Errorf("default view shows non-pending report %s", r.Status)
		}
	}
}

func TestQueueFilterCyclesWrapToAll(t *testing.T) {
	m := newTestQueue(domain.RoleModerator)

	// One full violation cycle lands back on the wildcard.
	for range domain.ViolationTypes {
		m = m.cycleViolation()
	}
	m = m.cycleViolation()
	if m.violationFilter != moderation.FilterAll {
		t.Errorf("violation filter after full cycle = %q, want all", m.violationFilter)
	}

	for range domain.ReportStatuses {
		m = m.cycleStatus()
	}
	if m.statusFilter != moderation.FilterAll {
		t.Errorf("status filter after full cycle = %q, want all", m.statusFilter)
	}
}

func TestQueueFiltersAreConjunctive(t *testing.T) {
	m := newTestQueue(domain.RoleModerator)
	m.violationFilter = string(domain.ViolationSpam)
	m.statusFilter = string(domain.ReportPending)
	m = m.refresh()

	for _, r := range m.rows {
		if r.Violation != domain.ViolationSpam || r.Status != domain.ReportPending {
			t.Errorf("row escapes filters: %s/%s", r.Violation, r.Status)
		}
	}
}

func TestQueueApproveAppliesAndToasts(t *testing.T) {
	m := newTestQueue(domain.RoleModerator)
	if len(m.rows) == 0 {
		t.Fatal("no pending reports in seed data")
	}
	id := m.rows[0].ID
	m.detail = true

	m, cmd := m.act(moderation.ActionApprove)
	if cmd == nil {
		t.Fatal("expected a toast command after approve")
	}
	toast, ok := cmd().(toastMsg)
	if !ok {
		t.Fatalf("expected toastMsg, got %T", cmd())
	}
	if toast.text != "Content approved" {
		t.Errorf("toast = %q, want %q", toast.text, "Content approved")
	}

	r, found := m.reports.Get(id)
	if !found {
		t.Fatal("report disappeared from store")
	}
	if r.Status != domain.ReportApproved {
		t.Errorf("report status = %q, want approved", r.Status)
	}
	if m.detail {
		t.Error("detail should close after a resolution")
	}
}

func TestQueueHideSignalsCatalog(t *testing.T) {
	m := newTestQueue(domain.RoleModerator)

	// Find a pending report on a review the catalog holds.
	var contentID = m.rows[0].ContentID
	m.detail = true

	m, _ = m.act(moderation.ActionHide)
	if !m.catalog.Hidden(contentID) {
		t.Error("hide action did not hide the content in the catalog")
	}
}

func TestQueueDoubleResolveShowsError(t *testing.T) {
	m := newTestQueue(domain.RoleModerator)
	id := m.rows[0].ID
	m.detail = true

	m, _ = m.act(moderation.ActionApprove)

	// Re-focus the same report via the approved filter and try again.
	m.statusFilter = string(domain.ReportApproved)
	m = m.refresh()
	for i, r := range m.rows {
		if r.ID == id {
			m.cursor = i
		}
	}
	m.detail = true
	m, cmd := m.act(moderation.ActionBan)
	if cmd != nil {
		t.Error("terminal report produced a toast command")
	}
	if m.errMsg != "This report has already been resolved" {
		t.Errorf("errMsg = %q", m.errMsg)
	}
}

func TestQueueNoteCapturedOnResolve(t *testing.T) {
	m := newTestQueue(domain.RoleModerator)
	id := m.rows[0].ID
	m.detail = true
	m.noteEditing = true
	for _, ch := range "repeat offender" {
		m, _ = m.Update(keyRunes(string(ch)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.noteEditing {
		t.Fatal("enter should leave note editing")
	}

	m, _ = m.act(moderation.ActionWarn)
	r, _ := m.reports.Get(id)
	if r.ResolutionNote != "repeat offender" {
		t.Errorf("ResolutionNote = %q", r.ResolutionNote)
	}
}

func TestQueueViewShowsCounts(t *testing.T) {
	m := newTestQueue(domain.RoleModerator)
	view := m.View()
	if !strings.Contains(view, "pending") {
		t.Error("expected pending count in queue view")
	}
}
