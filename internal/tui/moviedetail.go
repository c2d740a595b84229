package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moviehub/internal/browser"
	"moviehub/internal/catalog"
	"moviehub/internal/nav"
	"moviehub/pkg/domain"
)

type copyResultMsg struct{ err error }
type trailerResultMsg struct{ err error }

type movieDetailModel struct {
	catalog   *catalog.Store
	movie     domain.Movie
	hasMovie  bool
	reviews   []domain.Review
	cursor    int
	statusMsg string
	width     int
	height    int
}

func newMovieDetailModel(cat *catalog.Store, movie domain.Movie, hasMovie bool) movieDetailModel {
	m := movieDetailModel{catalog: cat, movie: movie, hasMovie: hasMovie}
	if hasMovie {
		m.reviews = cat.ReviewsFor(movie.ID)
	}
	return m
}

// cycleWatch advances the movie through the watchlist buckets:
// none -> watched -> watching -> want -> none.
func (m movieDetailModel) cycleWatch() movieDetailModel {
	cur, ok := m.catalog.WatchStatusFor(m.movie.ID)
	if !ok {
		m.catalog.SetWatchStatus(m.movie.ID, domain.WatchStatuses[0])
		m.statusMsg = "marked " + string(domain.WatchStatuses[0])
		return m
	}
	for i, st := range domain.WatchStatuses {
		if st == cur {
			if i == len(domain.WatchStatuses)-1 {
				m.catalog.SetWatchStatus(m.movie.ID, "")
				m.statusMsg = "removed from watchlist"
			} else {
				m.catalog.SetWatchStatus(m.movie.ID, domain.WatchStatuses[i+1])
				m.statusMsg = "marked " + string(domain.WatchStatuses[i+1])
			}
			return m
		}
	}
	m.catalog.SetWatchStatus(m.movie.ID, "")
	return m
}

func (m movieDetailModel) Update(msg tea.Msg) (movieDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "synopsis copied!"
		}
		return m, nil

	case trailerResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("could not open trailer: %v", msg.err)
		} else {
			m.statusMsg = "trailer opened in browser"
		}
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if !m.hasMovie {
			if msg.String() == "esc" {
				return m, navigateTo(nav.PageHome, nil)
			}
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, navigateTo(nav.PageHome, nil)
		case "t":
			if m.movie.TrailerURL == "" {
				m.statusMsg = "no trailer on file"
				return m, nil
			}
			url := m.movie.TrailerURL
			return m, func() tea.Msg {
				return trailerResultMsg{err: browser.Open(url)}
			}
		case "c":
			text := m.movie.Synopsis
			return m, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(text)}
			}
		case "w":
			return m.cycleWatch(), nil
		case "r":
			return m, navigateTo(nav.PageReviewEditor, nav.MoviePayload{Movie: m.movie})
		case "j", "down":
			if m.cursor < len(m.reviews)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

func (m movieDetailModel) View() string {
	if !m.hasMovie {
		return "\n " + dimStyle.Render("no movie selected — pick one from home or search")
	}

	var sb strings.Builder

	title := selectedStyle.Render(m.movie.Title) + " " + metaStyle.Render(fmt.Sprintf("(%d)", m.movie.Year))
	sb.WriteString("\n " + title + "\n")

	meta := []string{formatRuntime(m.movie.Runtime), "dir. " + m.movie.Director}
	if st, ok := m.catalog.WatchStatusFor(m.movie.ID); ok {
		meta = append(meta, accentStyle.Render(string(st)))
	}
	sb.WriteString(" " + dimStyle.Render(strings.Join(meta, " · ")) + "\n")

	var chips []string
	for _, g := range m.movie.Genres {
		chips = append(chips, GenreStyle(g).Render(g))
	}
	sb.WriteString(" " + strings.Join(chips, " ") + "\n\n")

	sb.WriteString(" " + starStyle.Render(renderStars(m.movie.UserRating)) +
		dimStyle.Render(fmt.Sprintf(" %.1f community", m.movie.UserRating)) +
		"   " + criticScoreStyle.Render(fmt.Sprintf("%d", m.movie.CriticScore)) +
		dimStyle.Render(" critic score") + "\n\n")

	bodyWidth := m.width - 4
	if bodyWidth < 30 {
		bodyWidth = 60
	}
	synopsis := lipgloss.NewStyle().Width(bodyWidth).Render(normalStyle.Render(m.movie.Synopsis))
	for _, line := range strings.Split(synopsis, "\n") {
		sb.WriteString(" " + line + "\n")
	}

	if len(m.movie.Cast) > 0 {
		sb.WriteString("\n " + dimStyle.Render("starring ") + normalStyle.Render(strings.Join(m.movie.Cast, ", ")) + "\n")
	}

	sb.WriteString("\n " + sectionHeaderStyle.Render(fmt.Sprintf("Reviews (%d)", len(m.reviews))) + "\n")
	if len(m.reviews) == 0 {
		sb.WriteString(" " + dimStyle.Render("no reviews yet — press r to write the first") + "\n")
	}
	for i, r := range m.reviews {
		prefix := "   "
		name := normalStyle.Render(r.AuthorName)
		if i == m.cursor {
			prefix = " " + accentStyle.Render("> ")
		}
		badge := ""
		if r.IsCritic {
			badge = " " + RoleBadge(domain.RoleCritic)
			if r.CriticScore > 0 {
				badge += " " + criticScoreStyle.Render(fmt.Sprintf("%d", r.CriticScore))
			}
		}
		spoiler := ""
		if r.Spoilers {
			spoiler = " " + spoilerStyle.Render("[spoilers]")
		}
		sb.WriteString(fmt.Sprintf("%s%s%s  %s%s  %s\n", prefix, name, badge,
			starStyle.Render(renderStars(float64(r.Rating))), spoiler, metaStyle.Render(formatTime(r.CreatedAt))))
		sb.WriteString("   " + dimStyle.Render(truncStr(r.Title+": "+r.Content, bodyWidth)) + "\n")
	}

	if m.statusMsg != "" {
		sb.WriteString("\n " + toastStyle.Render(m.statusMsg) + "\n")
	}

	return sb.String()
}
