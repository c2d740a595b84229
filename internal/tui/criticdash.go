package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/internal/nav"
	"moviehub/pkg/domain"
)

type criticDashModel struct {
	catalog *catalog.Store
	reviews []domain.Review
	cursor  int
	width   int
	height  int
}

func newCriticDashModel(cat *catalog.Store) criticDashModel {
	return criticDashModel{catalog: cat, reviews: cat.CriticReviews()}
}

func (m criticDashModel) Update(msg tea.Msg) (criticDashModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.reviews)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.reviews) {
				if movie, ok := m.catalog.MovieByID(m.reviews[m.cursor].MovieID); ok {
					return m, navigateTo(nav.PageMovieDetail, nav.MoviePayload{Movie: movie})
				}
			}
		}
	}
	return m, nil
}

func (m criticDashModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + sectionHeaderStyle.Render("Critic dashboard") + "\n\n")

	totalLikes := 0
	scoreSum := 0
	scored := 0
	for _, r := range m.reviews {
		totalLikes += r.Likes
		if r.CriticScore > 0 {
			scoreSum += r.CriticScore
			scored++
		}
	}
	avg := "–"
	if scored > 0 {
		avg = fmt.Sprintf("%d", scoreSum/scored)
	}

	sb.WriteString("   " + criticScoreStyle.Render(fmt.Sprintf("%d", len(m.reviews))) + dimStyle.Render(" published") +
		"   " + criticScoreStyle.Render(avg) + dimStyle.Render(" avg score") +
		"   " + criticScoreStyle.Render(fmt.Sprintf("%d", totalLikes)) + dimStyle.Render(" likes") + "\n\n")

	sb.WriteString(" " + sectionHeaderStyle.Render("Published reviews") + "\n")
	if len(m.reviews) == 0 {
		sb.WriteString(" " + dimStyle.Render("no critic reviews yet") + "\n")
	}
	for i, r := range m.reviews {
		prefix := "   "
		title := normalStyle.Render(truncStr(r.Title, 40))
		if i == m.cursor {
			prefix = " " + accentStyle.Render("> ")
			title = selectedStyle.Render(truncStr(r.Title, 40))
		}
		movieName := ""
		if movie, ok := m.catalog.MovieByID(r.MovieID); ok {
			movieName = dimStyle.Render(movie.Title)
		}
		sb.WriteString(fmt.Sprintf("%s%s  %s  %s  %s\n", prefix, title, movieName,
			criticScoreStyle.Render(fmt.Sprintf("%d", r.CriticScore)),
			metaStyle.Render(formatTime(r.CreatedAt))))
	}

	return sb.String()
}
