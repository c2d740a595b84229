package moderation

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"moviehub/pkg/domain"
)

func pendingReport() domain.Report {
	return domain.Report{
		ID:             uuid.New(),
		Violation:      domain.ViolationSpam,
		ContentType:    domain.ContentReview,
		ContentID:      uuid.New(),
		ContentPreview: "Buy followers now!!!",
		ReporterName:   "Alice Johnson",
		CreatedAt:      time.Now().Add(-2 * time.Hour),
		Status:         domain.ReportPending,
	}
}

func TestApplyActionMapping(t *testing.T) {
	tests := []struct {
		action     Action
		wantStatus domain.ReportStatus
		wantSignal Signal
		wantMsg    string
	}{
		{ActionApprove, domain.ReportApproved, SignalContentApproved, "Content approved"},
		{ActionHide, domain.ReportRejected, SignalHideContent, "Content hidden from public view"},
		{ActionDelete, domain.ReportRejected, SignalDeleteContent, "Content deleted"},
		{ActionWarn, domain.ReportRejected, SignalWarnUser, "Warning sent to user"},
		{ActionBan, domain.ReportRejected, SignalBanUser, "User temporarily banned"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			r := pendingReport()
			out, err := Apply(&r, tt.action, domain.RoleModerator, "")
			if err != nil {
				t.Fatalf("Apply(%s) returned error: %v", tt.action, err)
			}
			if out.Status != tt.wantStatus {
				t.Errorf("outcome status = %q, want %q", out.Status, tt.wantStatus)
			}
			if out.Signal != tt.wantSignal {
				t.Errorf("outcome signal = %v, want %v", out.Signal, tt.wantSignal)
			}
			if out.Message != tt.wantMsg {
				t.Errorf("outcome message = %q, want %q", out.Message, tt.wantMsg)
			}
			if r.Status != tt.wantStatus {
				t.Errorf("report status = %q, want %q", r.Status, tt.wantStatus)
			}
			if r.ResolvedAt == nil {
				t.Error("ResolvedAt not set on resolution")
			}
			if r.ResolvedBy != domain.RoleModerator {
				t.Errorf("ResolvedBy = %q, want moderator", r.ResolvedBy)
			}
		})
	}
}

func TestApplyTerminalReportRejected(t *testing.T) {
	for _, status := range []domain.ReportStatus{domain.ReportApproved, domain.ReportRejected} {
		t.Run(string(status), func(t *testing.T) {
			r := pendingReport()
			r.Status = status

			_, err := Apply(&r, ActionDelete, domain.RoleAdmin, "")
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if r.Status != status {
				t.Errorf("terminal report mutated: status = %q", r.Status)
			}
			if r.ResolvedAt != nil {
				t.Error("terminal report gained a ResolvedAt")
			}
		})
	}
}

func TestApplyInsufficientRole(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleUser, domain.RoleCritic, domain.Role("")} {
		t.Run(string(role), func(t *testing.T) {
			r := pendingReport()
			_, err := Apply(&r, ActionDelete, role, "")
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition for role %q, got %v", role, err)
			}
			if r.Status != domain.ReportPending {
				t.Errorf("report mutated by unauthorized actor: status = %q", r.Status)
			}
		})
	}
}

func TestApplyAdminAllowed(t *testing.T) {
	r := pendingReport()
	out, err := Apply(&r, ActionBan, domain.RoleAdmin, "")
	if err != nil {
		t.Fatalf("admin ban failed: %v", err)
	}
	if out.Signal != SignalBanUser {
		t.Errorf("signal = %v, want SignalBanUser", out.Signal)
	}
}

func TestApplyUnknownAction(t *testing.T) {
	r := pendingReport()
	_, err := Apply(&r, Action("escalate"), domain.RoleModerator, "")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if r.Status != domain.ReportPending {
		t.Errorf("report mutated by unknown action: status = %q", r.Status)
	}
}

func TestApplyNilReport(t *testing.T) {
	_, err := Apply(nil, ActionApprove, domain.RoleModerator, "")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestApplyCapturesNote(t *testing.T) {
	r := pendingReport()
	if _, err := Apply(&r, ActionWarn, domain.RoleModerator, "second offense"); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if r.ResolutionNote != "second offense" {
		t.Errorf("ResolutionNote = %q, want %q", r.ResolutionNote, "second offense")
	}
}

func TestValidAction(t *testing.T) {
	for _, a := range Actions {
		if !ValidAction(a) {
			t.Errorf("ValidAction(%q) = false, want true", a)
		}
	}
	if ValidAction(Action("nuke")) {
		t.Error("ValidAction accepted unknown action")
	}
}
