package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moviehub/pkg/domain"
)

// Shimmer animation for the MOVIEHUB logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "M O V I E H U B" as a flowing wave of blue
// light. Deep navy (#12284a) -> bright sky (#60a5fa). No hue drift.
func renderShimmerLogo(frame int) string {
	const text = "MOVIEHUB"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// Flowing phase — one smooth wave advancing through the text
		phase := t*0.1 - x*3.0

		// Gentle speed modulation
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		// Slow breathing tide
		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Continuous RGB interpolation: deep navy -> bright sky
		// Deep:   (18, 40, 74)    #12284a
		// Bright: (96, 165, 250)  #60a5fa
		r := clampByte(18 + b*(96-18))
		g := clampByte(40 + b*(165-40))
		bl := clampByte(74 + b*(250-74))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Accent / action styles
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a5fa"))

	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a5fa")).
			Bold(true)

	// Ratings
	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	criticScoreStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#34d399")).
				Bold(true)

	// Toast / status line
	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d399")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	spoilerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0944a")).
			Bold(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#60a5fa")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878")).
				Bold(true)

	// Selected row background
	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))

	// Genre chip colors
	genreColors = map[string]lipgloss.Color{
		"Action":    lipgloss.Color("#e06060"),
		"Adventure": lipgloss.Color("#f0944a"),
		"Animation": lipgloss.Color("#c084e0"),
		"Comedy":    lipgloss.Color("#d4a844"),
		"Crime":     lipgloss.Color("#b45555"),
		"Drama":     lipgloss.Color("#60a0e0"),
		"Fantasy":   lipgloss.Color("#b080d0"),
		"Horror":    lipgloss.Color("#d05050"),
		"Mystery":   lipgloss.Color("#8890a0"),
		"Romance":   lipgloss.Color("#e080a0"),
		"Sci-Fi":    lipgloss.Color("#3ecce4"),
		"Thriller":  lipgloss.Color("#f59e0b"),
	}

	// Role badge colors
	roleColors = map[domain.Role]lipgloss.Color{
		domain.RoleUser:      lipgloss.Color("#8890a0"),
		domain.RoleCritic:    lipgloss.Color("#c084e0"),
		domain.RoleModerator: lipgloss.Color("#34d399"),
		domain.RoleAdmin:     lipgloss.Color("#f87171"),
	}

	// Violation type colors
	violationColors = map[domain.ViolationType]lipgloss.Color{
		domain.ViolationSpam:      lipgloss.Color("#f0944a"),
		domain.ViolationOffensive: lipgloss.Color("#d05050"),
		domain.ViolationSpoiler:   lipgloss.Color("#d4a844"),
		domain.ViolationCopyright: lipgloss.Color("#60a0e0"),
	}

	// Report status colors
	statusColors = map[domain.ReportStatus]lipgloss.Color{
		domain.ReportPending:  lipgloss.Color("#fbbf24"),
		domain.ReportApproved: lipgloss.Color("#34d399"),
		domain.ReportRejected: lipgloss.Color("#f87171"),
	}
)

// GenreStyle returns a bold style colored for the given genre.
func GenreStyle(genre string) lipgloss.Style {
	if c, ok := genreColors[genre]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// RoleStyle returns a bold style colored for the given role.
func RoleStyle(r domain.Role) lipgloss.Style {
	if c, ok := roleColors[r]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")).Bold(true)
}

// RoleBadge returns a short colored badge string for a role, e.g. "[critic]".
func RoleBadge(r domain.Role) string {
	if r == "" {
		return ""
	}
	return RoleStyle(r).Render("[" + string(r) + "]")
}

// ViolationStyle returns a bold style colored for the violation type.
func ViolationStyle(v domain.ViolationType) lipgloss.Style {
	if c, ok := violationColors[v]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// StatusStyle returns a style colored for the report status.
func StatusStyle(st domain.ReportStatus) lipgloss.Style {
	if c, ok := statusColors[st]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0"))
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable entry in the help overlay. Entries either
// navigate to an in-app page or carry no target.
type helpItem struct {
	label string
	desc  string
	page  string
}

var helpItems = []helpItem{
	{"About", "what this platform is", "about"},
	{"Community Guidelines", "the house rules", "guidelines"},
	{"Settings", "client configuration", "settings"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60a5fa")).
		Bold(true).
		Render("M O V I E H U B")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Every film has its audience. Find yours.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	keys := []struct{ key, desc string }{
		{"1-8", "switch between main screens"},
		{"p", "your profile"},
		{"ctrl+r", "switch demo role (signed in)"},
		{"j/k", "move cursor"},
		{"enter", "open selection"},
		{"esc", "back / close"},
		{"q", "quit"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n  %s\n\n", title, tagline)

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Keys"))
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", k.key)), descStyle.Render(k.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Pages (enter to open)"))
	for i, item := range helpItems {
		label := cmdStyle.Render(fmt.Sprintf("%-20s", item.label))
		prefix := "    "
		if i == cursor {
			label = cursorStyle.Render(fmt.Sprintf("%-20s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
