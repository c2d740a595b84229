package moderation

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"moviehub/pkg/domain"
)

func seedReports() []domain.Report {
	mk := func(v domain.ViolationType, status domain.ReportStatus, preview string) domain.Report {
		return domain.Report{
			ID:             uuid.New(),
			Violation:      v,
			ContentType:    domain.ContentReview,
			ContentID:      uuid.New(),
			ContentPreview: preview,
			ReporterName:   "Reporter",
			CreatedAt:      time.Now(),
			Status:         status,
		}
	}
	return []domain.Report{
		mk(domain.ViolationSpam, domain.ReportPending, "spam one"),
		mk(domain.ViolationOffensive, domain.ReportPending, "offensive one"),
		mk(domain.ViolationSpam, domain.ReportApproved, "spam two"),
		mk(domain.ViolationSpoiler, domain.ReportRejected, "spoiler one"),
		mk(domain.ViolationSpam, domain.ReportPending, "spam three"),
	}
}

func TestFilterConjunctive(t *testing.T) {
	s := NewStore(seedReports()...)

	got := s.Filter("spam", "pending")
	if len(got) != 2 {
		t.Fatalf("Filter(spam, pending) returned %d reports, want 2", len(got))
	}
	for _, r := range got {
		if r.Violation != domain.ViolationSpam || r.Status != domain.ReportPending {
			t.Errorf("filtered report does not match: %s/%s", r.Violation, r.Status)
		}
	}
	// Order preserved
	if got[0].ContentPreview != "spam one" || got[1].ContentPreview != "spam three" {
		t.Errorf("filter broke insertion order: %q, %q", got[0].ContentPreview, got[1].ContentPreview)
	}
}

func TestFilterAllWildcard(t *testing.T) {
	seed := seedReports()
	s := NewStore(seed...)

	got := s.Filter(FilterAll, FilterAll)
	if len(got) != len(seed) {
		t.Fatalf("Filter(all, all) returned %d reports, want %d", len(got), len(seed))
	}
	for i, r := range got {
		if r.ContentPreview != seed[i].ContentPreview {
			t.Errorf("position %d: got %q, want %q", i, r.ContentPreview, seed[i].ContentPreview)
		}
	}
}

func TestFilterSingleDimension(t *testing.T) {
	s := NewStore(seedReports()...)

	if got := s.Filter("spam", FilterAll); len(got) != 3 {
		t.Errorf("Filter(spam, all) = %d reports, want 3", len(got))
	}
	if got := s.Filter(FilterAll, "pending"); len(got) != 3 {
		t.Errorf("Filter(all, pending) = %d reports, want 3", len(got))
	}
	if got := s.Filter("copyright", FilterAll); len(got) != 0 {
		t.Errorf("Filter(copyright, all) = %d reports, want 0", len(got))
	}
}

func TestCounts(t *testing.T) {
	s := NewStore(seedReports()...)
	c := s.Counts()
	if c.Pending != 3 || c.Approved != 1 || c.Rejected != 1 {
		t.Errorf("Counts() = %+v, want {3 1 1}", c)
	}
}

func TestStoreResolveMutatesInPlace(t *testing.T) {
	seed := seedReports()
	s := NewStore(seed...)
	id := seed[0].ID

	out, err := s.Resolve(id, ActionApprove, domain.RoleModerator, "fine")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if out.Signal != SignalContentApproved {
		t.Errorf("signal = %v, want SignalContentApproved", out.Signal)
	}

	r, ok := s.Get(id)
	if !ok {
		t.Fatal("resolved report vanished from store")
	}
	if r.Status != domain.ReportApproved {
		t.Errorf("stored status = %q, want approved", r.Status)
	}
	if r.ResolutionNote != "fine" {
		t.Errorf("stored note = %q, want %q", r.ResolutionNote, "fine")
	}

	// Second resolution of the same report must fail and change nothing.
	if _, err := s.Resolve(id, ActionBan, domain.RoleAdmin, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("double resolve: expected ErrInvalidTransition, got %v", err)
	}
	if r.Status != domain.ReportApproved {
		t.Errorf("double resolve overwrote status: %q", r.Status)
	}
}

func TestStoreResolveUnknownID(t *testing.T) {
	s := NewStore(seedReports()...)
	if _, err := s.Resolve(uuid.New(), ActionApprove, domain.RoleModerator, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for unknown id, got %v", err)
	}
}

func TestAddNormalizesStatus(t *testing.T) {
	s := NewStore()
	r := s.Add(domain.Report{ID: uuid.New()})
	if r.Status != domain.ReportPending {
		t.Errorf("zero-status report stored as %q, want pending", r.Status)
	}
}
