package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/internal/nav"
	"moviehub/pkg/domain"
)

// homeRowCount is how many titles each home section shows.
const homeRowCount = 5

type homeModel struct {
	catalog  *catalog.Store
	trending []domain.Movie
	releases []domain.Movie
	cursor   int
	width    int
	height   int
}

func newHomeModel(cat *catalog.Store) homeModel {
	m := homeModel{catalog: cat}
	m.trending = firstN(cat.Trending(), homeRowCount)
	m.releases = firstN(cat.NewReleases(), homeRowCount)
	return m
}

func firstN(movies []domain.Movie, n int) []domain.Movie {
	if len(movies) > n {
		return movies[:n]
	}
	return movies
}

// rowCount is the combined navigable length of both sections.
func (m homeModel) rowCount() int {
	return len(m.trending) + len(m.releases)
}

// movieAt maps the combined cursor onto a movie.
func (m homeModel) movieAt(i int) (domain.Movie, bool) {
	if i < 0 || i >= m.rowCount() {
		return domain.Movie{}, false
	}
	if i < len(m.trending) {
		return m.trending[i], true
	}
	return m.releases[i-len(m.trending)], true
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if movie, ok := m.movieAt(m.cursor); ok {
				return m, navigateTo(nav.PageMovieDetail, nav.MoviePayload{Movie: movie})
			}
		}
	}
	return m, nil
}

func (m homeModel) View() string {
	var sb strings.Builder

	renderRow := func(movie domain.Movie, selected bool) {
		prefix := "   "
		title := normalStyle.Render(truncStr(movie.Title, 40))
		if selected {
			prefix = " " + accentStyle.Render("> ")
			title = selectedStyle.Render(truncStr(movie.Title, 40))
		}
		year := metaStyle.Render(fmt.Sprintf("(%d)", movie.Year))
		stars := starStyle.Render(renderStars(movie.UserRating))
		score := criticScoreStyle.Render(fmt.Sprintf("%d", movie.CriticScore))
		genres := ""
		if len(movie.Genres) > 0 {
			genres = "  " + GenreStyle(movie.Genres[0]).Render(movie.Genres[0])
		}
		sb.WriteString(fmt.Sprintf("%s%s %s  %s %s%s\n", prefix, title, year, stars, score, genres))
	}

	sb.WriteString("\n " + sectionHeaderStyle.Render("Trending this week") + "\n")
	for i, movie := range m.trending {
		renderRow(movie, m.cursor == i)
	}

	sb.WriteString("\n " + sectionHeaderStyle.Render("New releases") + "\n")
	for i, movie := range m.releases {
		renderRow(movie, m.cursor == len(m.trending)+i)
	}

	if m.rowCount() == 0 {
		sb.WriteString(" " + dimStyle.Render("the catalog is empty") + "\n")
	}

	return sb.String()
}
