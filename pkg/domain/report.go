package domain

import (
	"time"

	"github.com/google/uuid"
)

// ViolationType classifies why content was flagged.
type ViolationType string

const (
	ViolationSpam      ViolationType = "spam"
	ViolationOffensive ViolationType = "offensive"
	ViolationSpoiler   ViolationType = "spoiler"
	ViolationCopyright ViolationType = "copyright"
)

// ViolationTypes lists every violation type in display order.
var ViolationTypes = []ViolationType{
	ViolationSpam,
	ViolationOffensive,
	ViolationSpoiler,
	ViolationCopyright,
}

// ValidViolationType returns true if v is a known violation type.
func ValidViolationType(v ViolationType) bool {
	for _, t := range ViolationTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ContentType identifies the kind of content a report points at.
type ContentType string

const (
	ContentReview  ContentType = "review"
	ContentComment ContentType = "comment"
	ContentList    ContentType = "list"
)

// ReportStatus is the disposition of a report.
// pending is the only non-terminal status.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportApproved ReportStatus = "approved"
	ReportRejected ReportStatus = "rejected"
)

// ReportStatuses lists every status in display order.
var ReportStatuses = []ReportStatus{ReportPending, ReportApproved, ReportRejected}

// Terminal reports whether no further transition is defined from s.
func (s ReportStatus) Terminal() bool {
	return s == ReportApproved || s == ReportRejected
}

// Report is a single piece of flagged user-generated content awaiting
// moderator disposition. Reports are created pending and resolved
// exactly once; the resolution fields stay zero until then.
type Report struct {
	ID             uuid.UUID     `json:"id"`
	Violation      ViolationType `json:"violation"`
	ContentType    ContentType   `json:"content_type"`
	ContentID      uuid.UUID     `json:"content_id"`
	ContentPreview string        `json:"content_preview"`
	ReporterID     uuid.UUID     `json:"reporter_id"`
	ReporterName   string        `json:"reporter_name"`
	CreatedAt      time.Time     `json:"created_at"`
	Status         ReportStatus  `json:"status"`
	ResolutionNote string        `json:"resolution_note,omitempty"`
	ResolvedBy     Role          `json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time    `json:"resolved_at,omitempty"`
}
