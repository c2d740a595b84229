package moderation

import (
	"fmt"

	"github.com/google/uuid"

	"moviehub/pkg/domain"
)

// FilterAll is the wildcard accepted by Filter for either dimension.
const FilterAll = "all"

// StatusCounts breaks down the queue by status for the header cards.
type StatusCounts struct {
	Pending  int
	Approved int
	Rejected int
}

// Store owns every report for the session. Reports enter through the
// reporting flow, are mutated only via Resolve, and are never deleted —
// removing the underlying content is an outward signal, not a store
// operation. Insertion order is preserved for queue display.
type Store struct {
	reports []*domain.Report
	byID    map[uuid.UUID]*domain.Report
}

// NewStore builds a store owning copies of the seed reports.
func NewStore(seed ...domain.Report) *Store {
	s := &Store{byID: make(map[uuid.UUID]*domain.Report, len(seed))}
	for _, r := range seed {
		s.Add(r)
	}
	return s
}

// Add takes ownership of a report and returns the stored reference.
// Zero-status reports are normalized to pending.
func (s *Store) Add(r domain.Report) *domain.Report {
	if r.Status == "" {
		r.Status = domain.ReportPending
	}
	stored := &r
	s.reports = append(s.reports, stored)
	s.byID[r.ID] = stored
	return stored
}

// Get returns the stored report with the given id.
func (s *Store) Get(id uuid.UUID) (*domain.Report, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// All returns every report in insertion order.
func (s *Store) All() []*domain.Report {
	return s.reports
}

// Len returns the number of reports held.
func (s *Store) Len() int {
	return len(s.reports)
}

// Resolve looks up a report and applies one moderation action to it.
func (s *Store) Resolve(id uuid.UUID, a Action, actor domain.Role, note string) (Outcome, error) {
	r, ok := s.byID[id]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: unknown report %s", ErrInvalidTransition, id)
	}
	return Apply(r, a, actor, note)
}

// Filter returns the reports matching both filters, in insertion order.
// Either filter may be FilterAll; otherwise violation matches
// Report.Violation and status matches Report.Status exactly.
func (s *Store) Filter(violation, status string) []*domain.Report {
	out := make([]*domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if violation != FilterAll && string(r.Violation) != violation {
			continue
		}
		if status != FilterAll && string(r.Status) != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Counts tallies reports by status.
func (s *Store) Counts() StatusCounts {
	var c StatusCounts
	for _, r := range s.reports {
		switch r.Status {
		case domain.ReportPending:
			c.Pending++
		case domain.ReportApproved:
			c.Approved++
		case domain.ReportRejected:
			c.Rejected++
		}
	}
	return c
}
