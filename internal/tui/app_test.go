package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/internal/moderation"
	"moviehub/internal/nav"
	"moviehub/internal/session"
	"moviehub/pkg/domain"
)

func newTestApp() App {
	cat := catalog.Seeded()
	reports := moderation.NewStore(cat.SeedReports()...)
	a := NewApp(session.New(), cat, reports, domain.RoleCritic, "test")
	a.width = 100
	a.height = 34
	return a.resize()
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs a command tree and feeds the resulting messages back into
// the app. Follow-up commands (toast timers and the like) are not
// executed, so tests never wait on real timers.
func drain(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		return a
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			a = drain(t, a, c)
		}
		return a
	}
	if msg == nil {
		return a
	}
	model, _ := a.Update(msg)
	return model.(App)
}

func TestAppGuestTabSwitching(t *testing.T) {
	tests := []struct {
		key      string
		wantPage nav.Page
	}{
		{"1", nav.PageHome},
		{"2", nav.PageSearch},
		{"3", nav.PageRankings},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			app := newTestApp()
			model, _ := app.Update(keyRunes(tc.key))
			a := model.(App)
			if a.page != tc.wantPage {
				t.Errorf("after key %q: expected page=%q, got %q", tc.key, tc.wantPage, a.page)
			}
		})
	}
}

func TestAppGuestGatedToAuth(t *testing.T) {
	for _, key := range []string{"4", "5", "6", "7", "8", "p"} {
		t.Run(key, func(t *testing.T) {
			app := newTestApp()
			model, _ := app.Update(keyRunes(key))
			a := model.(App)
			if a.page != nav.PageAuth {
				t.Errorf("guest pressing %q: expected auth page, got %q", key, a.page)
			}
		})
	}
}

func TestAppLoginLandsHome(t *testing.T) {
	a := newTestApp()
	model, _ := a.Update(keyRunes("6")) // ask for watchlist, land on auth
	a = model.(App)
	if a.page != nav.PageAuth {
		t.Fatalf("expected auth page, got %q", a.page)
	}

	model, cmd := a.Update(loginMsg{role: domain.RoleUser})
	a = drain(t, model.(App), cmd)

	if a.page != nav.PageHome {
		t.Errorf("login should land on home, got %q", a.page)
	}
	if !a.sess.Current().Authenticated {
		t.Error("session not authenticated after login")
	}
}

func TestAppCriticRoleGating(t *testing.T) {
	a := newTestApp()
	model, cmd := a.Update(loginMsg{role: domain.RoleCritic})
	a = drain(t, model.(App), cmd)

	model, _ = a.Update(keyRunes("4"))
	a = model.(App)
	if a.page != nav.PageCriticDashboard {
		t.Errorf("critic pressing 4: expected critic-dashboard, got %q", a.page)
	}

	model, cmd = a.Update(keyRunes("8"))
	a = drain(t, model.(App), cmd)
	if a.page != nav.PageHome {
		t.Errorf("critic pressing 8: expected fallback to home, got %q", a.page)
	}
	if a.toast == "" {
		t.Error("expected a toast explaining the redirect")
	}
}

func TestAppModeratorReachesQueue(t *testing.T) {
	a := newTestApp()
	model, cmd := a.Update(loginMsg{role: domain.RoleModerator})
	a = drain(t, model.(App), cmd)

	model, _ = a.Update(keyRunes("7"))
	a = model.(App)
	if a.page != nav.PageModeratorQueue {
		t.Fatalf("moderator pressing 7: expected moderator-queue, got %q", a.page)
	}
	if a.page == nav.PageModeratorQueue && len(a.queue.rows) == 0 {
		t.Error("queue opened with no pending reports from seed data")
	}
}

func TestAppModerationActionSetsToast(t *testing.T) {
	a := newTestApp()
	model, cmd := a.Update(loginMsg{role: domain.RoleModerator})
	a = drain(t, model.(App), cmd)

	model, _ = a.Update(keyRunes("7"))
	a = model.(App)

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(App)
	if !a.queue.detail {
		t.Fatal("enter did not open the report detail")
	}

	model, cmd = a.Update(keyRunes("a"))
	a = drain(t, model.(App), cmd)
	if a.toast != "Content approved" {
		t.Errorf("toast = %q, want %q", a.toast, "Content approved")
	}
}

func TestAppRoleSwitchReResolvesPage(t *testing.T) {
	a := newTestApp()
	model, cmd := a.Update(loginMsg{role: domain.RoleAdmin})
	a = drain(t, model.(App), cmd)

	model, _ = a.Update(keyRunes("8"))
	a = model.(App)
	if a.page != nav.PageAdminConsole {
		t.Fatalf("admin pressing 8: expected admin-console, got %q", a.page)
	}

	// Open the demo role switcher and step down to user.
	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	a = model.(App)
	if !a.roleOpen {
		t.Fatal("ctrl+r did not open the role switcher")
	}
	a.roleCursor = roleIndex(domain.RoleUser)
	model, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = drain(t, model.(App), cmd)

	if a.sess.Current().Role != domain.RoleUser {
		t.Errorf("role = %q after switch, want user", a.sess.Current().Role)
	}
	if a.page != nav.PageHome {
		t.Errorf("demoted session still on %q, want home", a.page)
	}
}

func TestAppRoleSwitcherRequiresAuth(t *testing.T) {
	a := newTestApp()
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	a = model.(App)
	if a.roleOpen {
		t.Error("role switcher opened for a guest session")
	}
}

func TestAppGlobalQuitOnQ(t *testing.T) {
	a := newTestApp()
	_, cmd := a.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command on 'q', got nil")
	}
}

func TestAppQNotFiredWhenEditing(t *testing.T) {
	a := newTestApp()
	model, _ := a.Update(keyRunes("2"))
	a = model.(App)
	model, _ = a.Update(keyRunes("/"))
	a = model.(App)
	if !a.isEditing() {
		t.Fatal("expected isEditing=true after '/' on search")
	}

	model, _ = a.Update(keyRunes("q"))
	a = model.(App)
	if a.search.query != "q" {
		t.Errorf("expected search query 'q', got %q", a.search.query)
	}
}

func TestAppHelpOverlayNavigates(t *testing.T) {
	a := newTestApp()
	model, _ := a.Update(keyRunes("?"))
	a = model.(App)
	if !a.helpOpen {
		t.Fatal("expected help overlay open after '?'")
	}

	// First item navigates to the about page.
	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = drain(t, model.(App), cmd)
	if a.helpOpen {
		t.Error("help overlay should close on enter")
	}
	if a.page != nav.PageAbout {
		t.Errorf("expected about page, got %q", a.page)
	}
}

func TestAppDroppedPayloadRendersFallback(t *testing.T) {
	a := newTestApp()
	// A genre payload is not valid for movie-detail; it must be dropped.
	model, cmd := a.Update(navigateMsg{page: nav.PageMovieDetail, data: nav.GenrePayload{Genre: "Horror"}})
	a = drain(t, model.(App), cmd)

	if a.page != nav.PageMovieDetail {
		t.Fatalf("expected movie-detail, got %q", a.page)
	}
	if a.detail.hasMovie {
		t.Error("mismatched payload should not select a movie")
	}
	if !strings.Contains(a.detail.View(), "no movie selected") {
		t.Error("expected the empty-selection notice in the view")
	}
}

func TestAppLogoutReturnsHome(t *testing.T) {
	a := newTestApp()
	model, cmd := a.Update(loginMsg{role: domain.RoleUser})
	a = drain(t, model.(App), cmd)

	model, _ = a.Update(keyRunes("p"))
	a = model.(App)
	if a.page != nav.PageProfile {
		t.Fatalf("expected profile page, got %q", a.page)
	}

	model, cmd = a.Update(keyRunes("o"))
	a = drain(t, model.(App), cmd)
	if a.sess.Current().Authenticated {
		t.Error("session still authenticated after sign out")
	}
	if a.page != nav.PageHome {
		t.Errorf("expected home after sign out, got %q", a.page)
	}
}

func TestAppViewRendersTabBar(t *testing.T) {
	a := newTestApp()
	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 34})
	a = model.(App)

	view := a.View()
	for _, tab := range []string{"Home", "Search", "Rankings", "Critics", "Lists", "Watchlist", "Queue", "Admin"} {
		if !strings.Contains(view, tab) {
			t.Errorf("expected %q tab in app view", tab)
		}
	}
}

func TestAppShimmerFrameIncrements(t *testing.T) {
	a := newTestApp()
	initial := a.frame

	model, _ := a.Update(shimmerTickMsg{})
	a = model.(App)

	if a.frame != initial+1 {
		t.Errorf("expected frame=%d after shimmerTickMsg, got %d", initial+1, a.frame)
	}
}

func TestAppToastClearGuardsStaleTimer(t *testing.T) {
	a := newTestApp()
	model, _ := a.Update(toastMsg{text: "first"})
	a = model.(App)
	staleID := a.toastID
	model, _ = a.Update(toastMsg{text: "second"})
	a = model.(App)

	model, _ = a.Update(toastClearMsg{id: staleID})
	a = model.(App)
	if a.toast != "second" {
		t.Errorf("stale clear wiped the newer toast: %q", a.toast)
	}

	model, _ = a.Update(toastClearMsg{id: a.toastID})
	a = model.(App)
	if a.toast != "" {
		t.Errorf("toast not cleared: %q", a.toast)
	}
}
