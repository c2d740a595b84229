package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/internal/nav"
	"moviehub/pkg/domain"
)

type watchlistModel struct {
	catalog *catalog.Store
	bucket  int // index into domain.WatchStatuses
	movies  []domain.Movie
	cursor  int
	width   int
	height  int
}

func newWatchlistModel(cat *catalog.Store) watchlistModel {
	m := watchlistModel{catalog: cat}
	return m.refresh()
}

func (m watchlistModel) refresh() watchlistModel {
	m.movies = m.catalog.Watchlist(domain.WatchStatuses[m.bucket])
	if m.cursor >= len(m.movies) {
		m.cursor = 0
	}
	return m
}

func (m watchlistModel) Update(msg tea.Msg) (watchlistModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			m.bucket = (m.bucket + 1) % len(domain.WatchStatuses)
			return m.refresh(), nil
		case "j", "down":
			if m.cursor < len(m.movies)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.movies) {
				return m, navigateTo(nav.PageMovieDetail, nav.MoviePayload{Movie: m.movies[m.cursor]})
			}
		}
	}
	return m, nil
}

func (m watchlistModel) View() string {
	var sb strings.Builder

	var buckets []string
	for i, st := range domain.WatchStatuses {
		if i == m.bucket {
			buckets = append(buckets, selectedStyle.Underline(true).Render(string(st)))
		} else {
			buckets = append(buckets, dimStyle.Render(string(st)))
		}
	}
	sb.WriteString("\n " + strings.Join(buckets, "   ") + "   " + metaStyle.Render("(t cycles)") + "\n\n")

	if len(m.movies) == 0 {
		sb.WriteString(" " + dimStyle.Render("nothing in this bucket") + "\n")
		return sb.String()
	}

	for i, movie := range m.movies {
		prefix := "   "
		title := normalStyle.Render(truncStr(movie.Title, 40))
		if i == m.cursor {
			prefix = " " + accentStyle.Render("> ")
			title = selectedStyle.Render(truncStr(movie.Title, 40))
		}
		sb.WriteString(fmt.Sprintf("%s%s %s  %s\n", prefix, title,
			metaStyle.Render(fmt.Sprintf("(%d)", movie.Year)),
			dimStyle.Render(formatRuntime(movie.Runtime))))
	}

	return sb.String()
}
