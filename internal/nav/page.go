package nav

import "moviehub/pkg/domain"

// Page identifies a logical screen.
type Page string

const (
	PageHome            Page = "home"
	PageMovieDetail     Page = "movie-detail"
	PageSearch          Page = "search"
	PageAuth            Page = "auth"
	PageProfile         Page = "profile"
	PageWatchlist       Page = "watchlist"
	PageLists           Page = "lists"
	PageListDetail      Page = "list-detail"
	PageReviewEditor    Page = "review-editor"
	PageCriticDashboard Page = "critic-dashboard"
	PageModeratorQueue  Page = "moderator-queue"
	PageAdminConsole    Page = "admin-console"
	PageRankings        Page = "rankings"
	PageAbout           Page = "about"
	PageGuidelines      Page = "guidelines"
	PageSettings        Page = "settings"
)

// aliases maps alternate identifiers used by menus and deep links onto
// their canonical screens.
var aliases = map[Page]Page{
	"movies":          PageSearch,
	"critics":         PageCriticDashboard,
	"register":        PageAuth,
	"forgot-password": PageAuth,
}

// known is the closed set of canonical pages.
var known = map[Page]bool{
	PageHome:            true,
	PageMovieDetail:     true,
	PageSearch:          true,
	PageAuth:            true,
	PageProfile:         true,
	PageWatchlist:       true,
	PageLists:           true,
	PageListDetail:      true,
	PageReviewEditor:    true,
	PageCriticDashboard: true,
	PageModeratorQueue:  true,
	PageAdminConsole:    true,
	PageRankings:        true,
	PageAbout:           true,
	PageGuidelines:      true,
	PageSettings:        true,
}

// protected pages require an authenticated session.
var protected = map[Page]bool{
	PageProfile:         true,
	PageWatchlist:       true,
	PageLists:           true,
	PageListDetail:      true,
	PageReviewEditor:    true,
	PageCriticDashboard: true,
	PageModeratorQueue:  true,
	PageAdminConsole:    true,
}

// minRole lists pages that demand a minimum role beyond authentication.
var minRole = map[Page]domain.Role{
	PageCriticDashboard: domain.RoleCritic,
	PageModeratorQueue:  domain.RoleModerator,
	PageAdminConsole:    domain.RoleAdmin,
}

// Canonical resolves aliases. Unknown pages come back unchanged.
func Canonical(p Page) Page {
	if c, ok := aliases[p]; ok {
		return c
	}
	return p
}

// Known reports whether p names a screen, after alias resolution.
func Known(p Page) bool {
	return known[Canonical(p)]
}

// Protected reports whether p requires authentication.
func Protected(p Page) bool {
	return protected[Canonical(p)]
}

// CanAccess reports whether the session may view p. Unknown pages are
// denied. Failing the check is not an error condition; Resolve supplies
// the fallback screen.
func CanAccess(s domain.Session, p Page) bool {
	p = Canonical(p)
	if !known[p] {
		return false
	}
	if !protected[p] {
		return true
	}
	if !s.Authenticated {
		return false
	}
	min, ok := minRole[p]
	if !ok {
		return true
	}
	return s.EffectiveRole().AtLeast(min)
}
