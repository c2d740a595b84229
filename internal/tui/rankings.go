package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moviehub/internal/catalog"
	"moviehub/internal/nav"
	"moviehub/pkg/domain"
)

type rankingsModel struct {
	movies []domain.Movie
	cursor int
	width  int
	height int
}

func newRankingsModel(cat *catalog.Store) rankingsModel {
	return rankingsModel{movies: cat.Rankings()}
}

func (m rankingsModel) Update(msg tea.Msg) (rankingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
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

// rankStyle colors the top three positions.
func rankStyle(rank int) lipgloss.Style {
	switch rank {
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24")).Bold(true)
	case 2:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c4d0")).Bold(true)
	case 3:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#f0944a")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#505868"))
	}
}

func (m rankingsModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + sectionHeaderStyle.Render("Critic rankings") + "\n\n")

	if len(m.movies) == 0 {
		sb.WriteString(" " + dimStyle.Render("nothing ranked yet") + "\n")
		return sb.String()
	}

	for i, movie := range m.movies {
		prefix := "   "
		title := normalStyle.Render(truncStr(movie.Title, 36))
		if i == m.cursor {
			prefix = " " + accentStyle.Render("> ")
			title = selectedStyle.Render(truncStr(movie.Title, 36))
		}
		rank := rankStyle(i + 1).Render(fmt.Sprintf("%2d.", i+1))
		score := criticScoreStyle.Render(fmt.Sprintf("%3d", movie.CriticScore))
		stars := starStyle.Render(renderStars(movie.UserRating))
		sb.WriteString(fmt.Sprintf("%s%s %s %s  %s %s\n", prefix, rank, score, title,
			metaStyle.Render(fmt.Sprintf("(%d)", movie.Year)), stars))
	}

	return sb.String()
}
