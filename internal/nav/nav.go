// Package nav decides which screen a navigation request actually lands
// on. Resolution is a pure function of the request and a session
// snapshot; access failures are recovered here via fallback screens and
// never surface as errors.
package nav

import "moviehub/pkg/domain"

// Request asks for navigation to a logical page.
type Request struct {
	Page Page
	Data Payload
}

// RedirectReason says why a resolution landed somewhere other than the
// requested page.
type RedirectReason int

const (
	RedirectNone RedirectReason = iota
	RedirectAuthRequired
	RedirectRoleDenied
	RedirectUnknownPage
)

// Resolution is the screen the UI should render, with the payload that
// survived the boundary check.
type Resolution struct {
	Page   Page
	Data   Payload
	Reason RedirectReason
}

// Resolve maps a navigation request onto a renderable screen under the
// access policy. Deterministic and idempotent: same request, same
// session snapshot, same answer.
//
// Unauthenticated requests for protected pages land on the auth screen
// with the payload discarded; the originally requested page is not
// remembered — login always lands on home. Under-privileged and unknown
// requests fall back to home, never to a protected page.
func Resolve(req Request, s domain.Session) Resolution {
	p := Canonical(req.Page)
	if !known[p] {
		return Resolution{Page: PageHome, Reason: RedirectUnknownPage}
	}
	if protected[p] && !s.Authenticated {
		return Resolution{Page: PageAuth, Reason: RedirectAuthRequired}
	}
	if !CanAccess(s, p) {
		return Resolution{Page: PageHome, Reason: RedirectRoleDenied}
	}
	data := req.Data
	if !payloadAllowed(p, data) {
		data = nil
	}
	return Resolution{Page: p, Data: data}
}
