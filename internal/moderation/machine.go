// Package moderation implements the report review flow behind the
// moderator queue: a pending report is resolved exactly once by a
// single action, and the resolution names an outward effect for the
// content and notification collaborators to execute.
package moderation

import (
	"errors"
	"fmt"
	"time"

	"moviehub/pkg/domain"
)

// Action is a moderator disposition on a flagged piece of content. The
// action vocabulary is richer than the two terminal statuses: only
// approve resolves a report as approved, everything else rejects it
// with a distinct outward instruction.
type Action string

const (
	ActionApprove Action = "approve"
	ActionHide    Action = "hide"
	ActionDelete  Action = "delete"
	ActionWarn    Action = "warn"
	ActionBan     Action = "ban"
)

// Actions lists every action in display order.
var Actions = []Action{ActionApprove, ActionHide, ActionDelete, ActionWarn, ActionBan}

// Signal is the outward effect a resolution asks collaborators to
// perform. Executing it — actually hiding or deleting content, warning
// or banning the author — is the caller's job, not the machine's.
type Signal int

const (
	SignalNone Signal = iota
	SignalContentApproved
	SignalHideContent
	SignalDeleteContent
	SignalWarnUser
	SignalBanUser
)

// Outcome reports an applied transition: the new status, the outward
// signal, and the transient confirmation text shown to the moderator.
type Outcome struct {
	Status  domain.ReportStatus
	Signal  Signal
	Message string
}

// ErrInvalidTransition rejects an action on a non-pending report, an
// unknown action, or an actor without moderation rights. Callers show
// it inline; it is never fatal.
var ErrInvalidTransition = errors.New("moderation: invalid transition")

// outcomes maps each action to its terminal status, signal and
// confirmation text.
var outcomes = map[Action]Outcome{
	ActionApprove: {domain.ReportApproved, SignalContentApproved, "Content approved"},
	ActionHide:    {domain.ReportRejected, SignalHideContent, "Content hidden from public view"},
	ActionDelete:  {domain.ReportRejected, SignalDeleteContent, "Content deleted"},
	ActionWarn:    {domain.ReportRejected, SignalWarnUser, "Warning sent to user"},
	ActionBan:     {domain.ReportRejected, SignalBanUser, "User temporarily banned"},
}

// ValidAction returns true if a is a known action.
func ValidAction(a Action) bool {
	_, ok := outcomes[a]
	return ok
}

// Apply validates and performs one moderation action on a report,
// mutating it in place. The actor's role is re-checked here even though
// the navigation gate already screens entry to the queue: an action
// could in principle arrive via another path.
//
// A report that has already reached a terminal status is left untouched
// and the call fails with ErrInvalidTransition.
func Apply(r *domain.Report, a Action, actor domain.Role, note string) (Outcome, error) {
	if r == nil {
		return Outcome{}, fmt.Errorf("%w: no report selected", ErrInvalidTransition)
	}
	if !actor.CanModerate() {
		return Outcome{}, fmt.Errorf("%w: role %q may not moderate", ErrInvalidTransition, actor)
	}
	out, ok := outcomes[a]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, a)
	}
	if r.Status != domain.ReportPending {
		return Outcome{}, fmt.Errorf("%w: report already %s", ErrInvalidTransition, r.Status)
	}

	now := time.Now()
	r.Status = out.Status
	r.ResolutionNote = note
	r.ResolvedBy = actor
	r.ResolvedAt = &now
	return out, nil
}
