package domain

import "testing"

func TestValidViolationType(t *testing.T) {
	tests := []struct {
		name  string
		v     ViolationType
		valid bool
	}{
		{"valid spam", ViolationSpam, true},
		{"valid offensive", ViolationOffensive, true},
		{"valid spoiler", ViolationSpoiler, true},
		{"valid copyright", ViolationCopyright, true},
		{"invalid empty", ViolationType(""), false},
		{"invalid unknown", ViolationType("harassment"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidViolationType(tt.v); got != tt.valid {
				t.Errorf("ValidViolationType(%q) = %v, want %v", tt.v, got, tt.valid)
			}
		})
	}
}

func TestReportStatusTerminal(t *testing.T) {
	tests := []struct {
		status   ReportStatus
		terminal bool
	}{
		{ReportPending, false},
		{ReportApproved, true},
		{ReportRejected, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Terminal(); got != tt.terminal {
				t.Errorf("%q.Terminal() = %v, want %v", tt.status, got, tt.terminal)
			}
		})
	}
}

func TestValidGenre(t *testing.T) {
	tests := []struct {
		name  string
		genre string
		valid bool
	}{
		{"valid drama", "Drama", true},
		{"valid scifi", "Sci-Fi", true},
		{"invalid lowercase", "drama", false},
		{"invalid empty", "", false},
		{"invalid unknown", "Noir", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidGenre(tt.genre); got != tt.valid {
				t.Errorf("ValidGenre(%q) = %v, want %v", tt.genre, got, tt.valid)
			}
		})
	}
}
