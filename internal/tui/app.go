package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moviehub/internal/catalog"
	"moviehub/internal/moderation"
	"moviehub/internal/nav"
	"moviehub/internal/session"
	"moviehub/pkg/domain"
)

// toastDuration is how long a status toast stays on screen.
const toastDuration = 2500 * time.Millisecond

// navigateMsg asks the app to move to a logical page. Every screen
// change goes through this message so access gating is applied in one
// place.
type navigateMsg struct {
	page nav.Page
	data nav.Payload
}

// navigateTo builds a command that requests navigation.
func navigateTo(page nav.Page, data nav.Payload) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{page: page, data: data}
	}
}

// toastMsg sets the transient status line.
type toastMsg struct {
	text string
}

func toastCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{text: text}
	}
}

// toastClearMsg clears the status line once its timer expires. The id
// guards against an old timer wiping a newer toast.
type toastClearMsg struct {
	id int
}

// loginMsg authenticates the session with the chosen role.
type loginMsg struct {
	role domain.Role
}

// logoutMsg ends the session.
type logoutMsg struct{}

// App is the root Bubbletea model.
type App struct {
	sess    *session.Context
	catalog *catalog.Store
	reports *moderation.Store

	page nav.Page

	home     homeModel
	search   searchModel
	detail   movieDetailModel
	rankings rankingsModel
	auth     authModel
	profile  profileModel
	watch    watchlistModel
	lists    listsModel
	editor   reviewEditorModel
	critic   criticDashModel
	queue    modQueueModel
	admin    adminModel

	helpOpen   bool
	helpCursor int

	roleOpen   bool
	roleCursor int

	toast   string
	toastID int

	defaultRole domain.Role
	version     string

	width  int
	height int
	frame  int // logo shimmer animation frame
}

// NewApp creates the TUI application over the given stores.
func NewApp(sess *session.Context, cat *catalog.Store, reports *moderation.Store, defaultRole domain.Role, version string) App {
	if !domain.ValidRole(defaultRole) {
		defaultRole = domain.RoleCritic
	}
	a := App{
		sess:        sess,
		catalog:     cat,
		reports:     reports,
		page:        nav.PageHome,
		defaultRole: defaultRole,
		version:     version,
	}
	a.home = newHomeModel(cat)
	return a
}

func (a App) Init() tea.Cmd {
	return shimmerTickCmd()
}

// navigate resolves a request against the current session and swaps in
// the destination screen. Redirects surface as toasts, never as errors.
func (a App) navigate(req nav.Request) (App, tea.Cmd) {
	res := nav.Resolve(req, a.sess.Current())

	var cmd tea.Cmd
	switch res.Reason {
	case nav.RedirectAuthRequired:
		cmd = toastCmd("Sign in to continue")
	case nav.RedirectRoleDenied:
		cmd = toastCmd("You don't have access to that page")
	}

	a.page = res.Page
	s := a.sess.Current()

	switch res.Page {
	case nav.PageHome:
		a.home = newHomeModel(a.catalog)
	case nav.PageSearch:
		genre := ""
		if g, ok := res.Data.(nav.GenrePayload); ok {
			genre = g.Genre
		}
		a.search = newSearchModel(a.catalog, genre)
	case nav.PageMovieDetail:
		if p, ok := res.Data.(nav.MoviePayload); ok {
			a.detail = newMovieDetailModel(a.catalog, p.Movie, true)
		} else {
			a.detail = newMovieDetailModel(a.catalog, domain.Movie{}, false)
		}
	case nav.PageRankings:
		a.rankings = newRankingsModel(a.catalog)
	case nav.PageAuth:
		a.auth = newAuthModel(a.defaultRole)
	case nav.PageProfile:
		a.profile = newProfileModel(a.catalog, s)
	case nav.PageWatchlist:
		a.watch = newWatchlistModel(a.catalog)
	case nav.PageLists:
		a.lists = newListsModel(a.catalog, nil)
	case nav.PageListDetail:
		if p, ok := res.Data.(nav.ListPayload); ok {
			a.lists = newListsModel(a.catalog, &p.List)
		} else {
			a.lists = newListsModel(a.catalog, nil)
			a.page = nav.PageLists
		}
	case nav.PageReviewEditor:
		if p, ok := res.Data.(nav.MoviePayload); ok {
			a.editor = newReviewEditorModel(a.catalog, p.Movie, true, s.EffectiveRole().AtLeast(domain.RoleCritic))
		} else {
			a.editor = newReviewEditorModel(a.catalog, domain.Movie{}, false, false)
		}
	case nav.PageCriticDashboard:
		a.critic = newCriticDashModel(a.catalog)
	case nav.PageModeratorQueue:
		var focus *domain.Report
		if p, ok := res.Data.(nav.ReportPayload); ok {
			focus = &p.Report
		}
		a.queue = newModQueueModel(a.catalog, a.reports, s.EffectiveRole(), focus)
	case nav.PageAdminConsole:
		a.admin = newAdminModel(a.catalog)
	}

	a = a.resize()
	return a, cmd
}

// resize pushes the current body height into every live sub-model.
func (a App) resize() App {
	bodyMsg := tea.WindowSizeMsg{Width: a.width, Height: a.height - chromeLines}
	a.home, _ = a.home.Update(bodyMsg)
	a.search, _ = a.search.Update(bodyMsg)
	a.detail, _ = a.detail.Update(bodyMsg)
	a.rankings, _ = a.rankings.Update(bodyMsg)
	a.auth, _ = a.auth.Update(bodyMsg)
	a.profile, _ = a.profile.Update(bodyMsg)
	a.watch, _ = a.watch.Update(bodyMsg)
	a.lists, _ = a.lists.Update(bodyMsg)
	a.editor, _ = a.editor.Update(bodyMsg)
	a.critic, _ = a.critic.Update(bodyMsg)
	a.queue, _ = a.queue.Update(bodyMsg)
	a.admin, _ = a.admin.Update(bodyMsg)
	return a
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a = a.resize()
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case navigateMsg:
		return a.navigate(nav.Request{Page: msg.page, Data: msg.data})

	case toastMsg:
		a.toast = msg.text
		a.toastID++
		id := a.toastID
		return a, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return toastClearMsg{id: id}
		})

	case toastClearMsg:
		if msg.id == a.toastID {
			a.toast = ""
		}
		return a, nil

	case loginMsg:
		a.sess.Login(msg.role)
		// Login always lands on home, whatever screen asked for auth.
		next, cmd := a.navigate(nav.Request{Page: nav.PageHome})
		return next, tea.Batch(cmd, toastCmd("Welcome back"))

	case logoutMsg:
		a.sess.Logout()
		next, cmd := a.navigate(nav.Request{Page: nav.PageHome})
		return next, tea.Batch(cmd, toastCmd("Signed out"))

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "?", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				item := helpItems[a.helpCursor]
				if item.page != "" {
					a.helpOpen = false
					return a, navigateTo(nav.Page(item.page), nil)
				}
			}
			return a, nil
		}

		// Role switcher overlay captures all keys when open
		if a.roleOpen {
			switch msg.String() {
			case "esc", "ctrl+r":
				a.roleOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.roleCursor < len(domain.Roles)-1 {
					a.roleCursor++
				}
			case "k", "up":
				if a.roleCursor > 0 {
					a.roleCursor--
				}
			case "enter":
				role := domain.Roles[a.roleCursor]
				a.sess.SetRole(role)
				a.roleOpen = false
				// Re-resolve the current page: the new role may not
				// be allowed to stay here.
				next, cmd := a.navigate(nav.Request{Page: a.page})
				return next, tea.Batch(cmd, toastCmd("Now browsing as "+string(role)))
			}
			return a, nil
		}

		// Global keys (only when not editing)
		if !a.isEditing() {
			switch msg.String() {
			case "?":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "ctrl+r":
				if !a.sess.Current().Authenticated {
					return a, toastCmd("Sign in to continue")
				}
				a.roleOpen = true
				a.roleCursor = roleIndex(a.sess.Current().Role)
				return a, nil
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				return a.navigate(nav.Request{Page: nav.PageHome})
			case "2":
				return a.navigate(nav.Request{Page: nav.PageSearch})
			case "3":
				return a.navigate(nav.Request{Page: nav.PageRankings})
			case "4":
				return a.navigate(nav.Request{Page: "critics"})
			case "5":
				return a.navigate(nav.Request{Page: nav.PageLists})
			case "6":
				return a.navigate(nav.Request{Page: nav.PageWatchlist})
			case "7":
				return a.navigate(nav.Request{Page: nav.PageModeratorQueue})
			case "8":
				return a.navigate(nav.Request{Page: nav.PageAdminConsole})
			case "p":
				return a.navigate(nav.Request{Page: nav.PageProfile})
			}
		}
	}

	var cmd tea.Cmd
	switch a.page {
	case nav.PageHome:
		a.home, cmd = a.home.Update(msg)
	case nav.PageSearch:
		a.search, cmd = a.search.Update(msg)
	case nav.PageMovieDetail:
		a.detail, cmd = a.detail.Update(msg)
	case nav.PageRankings:
		a.rankings, cmd = a.rankings.Update(msg)
	case nav.PageAuth:
		a.auth, cmd = a.auth.Update(msg)
	case nav.PageProfile:
		a.profile, cmd = a.profile.Update(msg)
	case nav.PageWatchlist:
		a.watch, cmd = a.watch.Update(msg)
	case nav.PageLists, nav.PageListDetail:
		a.lists, cmd = a.lists.Update(msg)
	case nav.PageReviewEditor:
		a.editor, cmd = a.editor.Update(msg)
	case nav.PageCriticDashboard:
		a.critic, cmd = a.critic.Update(msg)
	case nav.PageModeratorQueue:
		a.queue, cmd = a.queue.Update(msg)
	case nav.PageAdminConsole:
		a.admin, cmd = a.admin.Update(msg)
	}

	return a, cmd
}

func roleIndex(r domain.Role) int {
	for i, role := range domain.Roles {
		if role == r {
			return i
		}
	}
	return 0
}

func (a App) isEditing() bool {
	switch a.page {
	case nav.PageSearch:
		return a.search.editing
	case nav.PageAuth:
		return a.auth.editing
	case nav.PageReviewEditor:
		return a.editor.editing
	case nav.PageModeratorQueue:
		return a.queue.noteEditing
	case nav.PageAdminConsole:
		return a.admin.editing
	}
	return false
}

// chromeLines is the fixed vertical space around the body:
// header(2) + tabs(1) + toast(1) + help(1).
const chromeLines = 5

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)

	// Session line below logo
	s := a.sess.Current()
	var sessionLine string
	if s.Authenticated {
		parts := []string{"signed in as " + RoleBadge(s.EffectiveRole())}
		if s.EffectiveRole().CanModerate() {
			c := a.reports.Counts()
			if c.Pending > 0 {
				parts = append(parts, StatusStyle(domain.ReportPending).Render(fmt.Sprintf("%d pending", c.Pending)))
			}
		}
		sessionLine = metaStyle.Render(strings.Join(parts, " · "))
	} else {
		sessionLine = metaStyle.Render("browsing as guest")
	}

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	sessWidth := lipgloss.Width(sessionLine)
	sessPad := (a.width - sessWidth) / 2
	if sessPad < 0 {
		sessPad = 0
	}
	header += "\n" + strings.Repeat(" ", sessPad) + sessionLine

	// Tab bar: equal-width columns spread across the terminal
	type tabEntry struct {
		key  string
		name string
		page nav.Page
	}
	tabs := []tabEntry{
		{"1", "Home", nav.PageHome},
		{"2", "Search", nav.PageSearch},
		{"3", "Rankings", nav.PageRankings},
		{"4", "Critics", nav.PageCriticDashboard},
		{"5", "Lists", nav.PageLists},
		{"6", "Watchlist", nav.PageWatchlist},
		{"7", "Queue", nav.PageModeratorQueue},
		{"8", "Admin", nav.PageAdminConsole},
	}

	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		switch {
		case t.page == a.page:
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		case !nav.CanAccess(s, t.page):
			label = metaStyle.Render(t.key) + " " + metaStyle.Render(t.name)
		default:
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}
	centeredTabs := tabBar.String()

	// Body + per-screen help line
	var body string
	var help string
	switch a.page {
	case nav.PageHome:
		body = a.home.View()
		help = " " + helpEntry("1-8", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("p", "profile") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
	case nav.PageSearch:
		body = a.search.View()
		if a.search.editing {
			help = " " + helpEntry("enter", "search") + "  " + helpEntry("esc", "cancel")
		} else {
			help = " " + helpEntry("/", "search") + "  " + helpEntry("g", "genre") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
		}
	case nav.PageMovieDetail:
		body = a.detail.View()
		help = " " + helpEntry("t", "trailer") + "  " + helpEntry("c", "copy") + "  " + helpEntry("w", "watchlist") + "  " + helpEntry("r", "review") + "  " + helpEntry("esc", "back")
	case nav.PageRankings:
		body = a.rankings.View()
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
	case nav.PageAuth:
		body = a.auth.View()
		help = " " + helpEntry("tab", "field") + "  " + helpEntry("shift+tab", "mode") + "  " + helpEntry("h/l", "role") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("esc", "cancel")
	case nav.PageProfile:
		body = a.profile.View()
		help = " " + helpEntry("1-8", "tabs") + "  " + helpEntry("o", "sign out") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
	case nav.PageWatchlist:
		body = a.watch.View()
		help = " " + helpEntry("t", "bucket") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("q", "quit")
	case nav.PageLists, nav.PageListDetail:
		body = a.lists.View()
		if a.lists.detail {
			help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open movie") + "  " + helpEntry("esc", "back")
		} else {
			help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("q", "quit")
		}
	case nav.PageReviewEditor:
		body = a.editor.View()
		help = " " + helpEntry("tab", "next") + "  " + helpEntry("h/l", "rating") + "  " + helpEntry("x", "spoilers") + "  " + helpEntry("ctrl+s", "publish") + "  " + helpEntry("esc", "cancel")
	case nav.PageCriticDashboard:
		body = a.critic.View()
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open movie") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
	case nav.PageModeratorQueue:
		body = a.queue.View()
		if a.queue.detail {
			help = " " + helpEntry("a", "approve") + "  " + helpEntry("h", "hide") + "  " + helpEntry("d", "delete") + "  " + helpEntry("w", "warn") + "  " + helpEntry("b", "ban") + "  " + helpEntry("n", "note") + "  " + helpEntry("esc", "back")
		} else {
			help = " " + helpEntry("t", "type") + "  " + helpEntry("s", "status") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "review") + "  " + helpEntry("q", "quit")
		}
	case nav.PageAdminConsole:
		body = a.admin.View()
		if a.admin.tab == adminTabUsers {
			help = " " + helpEntry("tab", "announcements") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("r", "cycle role") + "  " + helpEntry("l", "lock") + "  " + helpEntry("q", "quit")
		} else {
			help = " " + helpEntry("tab", "members") + "  " + helpEntry("n", "new notice") + "  " + helpEntry("ctrl+s", "publish") + "  " + helpEntry("esc", "cancel")
		}
	case nav.PageAbout:
		body = aboutView()
		help = " " + helpEntry("1-8", "tabs") + "  " + helpEntry("q", "quit")
	case nav.PageGuidelines:
		body = guidelinesView()
		help = " " + helpEntry("1-8", "tabs") + "  " + helpEntry("q", "quit")
	case nav.PageSettings:
		body = a.settingsView()
		help = " " + helpEntry("1-8", "tabs") + "  " + helpEntry("q", "quit")
	}

	// Role switcher overlay
	if a.roleOpen {
		body = a.roleSwitcherView()
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "apply") + "  " + helpEntry("esc", "close")
	}

	// Help overlay
	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	// Toast / status line
	toastLine := ""
	if a.toast != "" {
		toastLine = " " + toastStyle.Render(a.toast)
	}

	body = strings.TrimRight(truncateToHeight(body, a.height-chromeLines), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, centeredTabs, body, toastLine, help)
}

// roleSwitcherView renders the demo role switcher overlay.
func (a App) roleSwitcherView() string {
	var b strings.Builder
	b.WriteString("\n  " + sectionHeaderStyle.Render("Demo role switcher") + "\n")
	b.WriteString("  " + dimStyle.Render("Try the platform from another seat.") + "\n\n")
	current := a.sess.Current().Role
	for i, r := range domain.Roles {
		prefix := "    "
		label := RoleStyle(r).Render(fmt.Sprintf("%-10s", string(r)))
		if i == a.roleCursor {
			prefix = "  > "
		}
		suffix := ""
		if r == current {
			suffix = dimStyle.Render("  (current)")
		}
		b.WriteString(prefix + label + suffix + "\n")
	}
	return b.String()
}

func aboutView() string {
	var b strings.Builder
	b.WriteString("\n  " + sectionHeaderStyle.Render("About") + "\n\n")
	for _, line := range []string{
		"MovieHub is a community for people who argue about films",
		"for fun. Rate what you watch, keep lists, follow critics,",
		"and see where the community and the critics disagree.",
	} {
		b.WriteString("  " + normalStyle.Render(line) + "\n")
	}
	return b.String()
}

func guidelinesView() string {
	var b strings.Builder
	b.WriteString("\n  " + sectionHeaderStyle.Render("Community Guidelines") + "\n\n")
	rules := []string{
		"Mark spoilers. Always.",
		"Criticize the film, not the person who liked it.",
		"No spam, no self-promotion, no links to pirated copies.",
		"Reports are reviewed by human moderators.",
	}
	for i, r := range rules {
		b.WriteString(fmt.Sprintf("  %s %s\n", accentStyle.Render(fmt.Sprintf("%d.", i+1)), normalStyle.Render(r)))
	}
	return b.String()
}

func (a App) settingsView() string {
	var b strings.Builder
	b.WriteString("\n  " + sectionHeaderStyle.Render("Settings") + "\n\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%-16s", "version")) + normalStyle.Render(a.version) + "\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%-16s", "default role")) + RoleStyle(a.defaultRole).Render(string(a.defaultRole)) + dimStyle.Render("  (MOVIEHUB_ROLE)") + "\n")
	return b.String()
}
