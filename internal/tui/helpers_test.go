package tui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatRuntime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, ""},
		{45, "45m"},
		{60, "1h"},
		{148, "2h 28m"},
	}
	for _, tc := range tests {
		if got := formatRuntime(tc.minutes); got != tc.want {
			t.Errorf("formatRuntime(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestRenderStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
		{4.4, "★★★★☆"},
		{4.6, "★★★★★"},
		{5, "★★★★★"},
	}
	for _, tc := range tests {
		if got := renderStars(tc.rating); got != tc.want {
			t.Errorf("renderStars(%.1f) = %q, want %q", tc.rating, got, tc.want)
		}
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("short", 10); got != "short" {
		t.Errorf("truncStr should not touch short strings, got %q", got)
	}
	got := truncStr("a very long movie title indeed", 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if len([]rune(got)) != 10 {
		t.Errorf("expected 10 runes, got %d", len([]rune(got)))
	}
}

func TestEditRune(t *testing.T) {
	if got := editRune("abc", "backspace"); got != "ab" {
		t.Errorf("backspace: got %q", got)
	}
	if got := editRune("", "backspace"); got != "" {
		t.Errorf("backspace on empty: got %q", got)
	}
	if got := editRune("ab", "c"); got != "abc" {
		t.Errorf("append: got %q", got)
	}
	if got := editRune("ab", "enter"); got != "ab" {
		t.Errorf("non-printable key changed text: %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tc := range tests {
		if got := formatTime(tc.t); got != tc.want {
			t.Errorf("formatTime = %q, want %q", got, tc.want)
		}
	}
}
