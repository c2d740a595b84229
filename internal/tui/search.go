package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/internal/nav"
	"moviehub/pkg/domain"
)

type searchModel struct {
	catalog *catalog.Store
	query   string
	editing bool // true when typing in the search box
	genre   string
	results []domain.Movie
	cursor  int
	width   int
	height  int
}

func newSearchModel(cat *catalog.Store, genre string) searchModel {
	m := searchModel{catalog: cat, genre: genre}
	m.results = cat.Search("", genre)
	return m
}

func (m searchModel) refresh() searchModel {
	m.results = m.catalog.Search(m.query, m.genre)
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
	return m
}

// cycleGenre advances the genre filter: none -> each genre -> none.
func (m searchModel) cycleGenre() searchModel {
	if m.genre == "" {
		m.genre = domain.Genres[0]
		return m.refresh()
	}
	for i, g := range domain.Genres {
		if g == m.genre {
			if i == len(domain.Genres)-1 {
				m.genre = ""
			} else {
				m.genre = domain.Genres[i+1]
			}
			return m.refresh()
		}
	}
	m.genre = ""
	return m.refresh()
}

func (m searchModel) Update(msg tea.Msg) (searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "enter":
				m.editing = false
				return m.refresh(), nil
			case "esc":
				m.editing = false
				m.query = ""
				return m.refresh(), nil
			default:
				m.query = editRune(m.query, msg.String())
				return m.refresh(), nil
			}
		}
		switch msg.String() {
		case "/":
			m.editing = true
		case "g":
			return m.cycleGenre(), nil
		case "j", "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.results) {
				return m, navigateTo(nav.PageMovieDetail, nav.MoviePayload{Movie: m.results[m.cursor]})
			}
		}
	}
	return m, nil
}

func (m searchModel) View() string {
	var sb strings.Builder

	// Search box line
	box := inputPromptStyle.Render("/ ")
	switch {
	case m.editing:
		box += searchStyle.Render(m.query) + accentStyle.Render("█")
	case m.query != "":
		box += searchStyle.Render(m.query)
	default:
		box += inputPlaceholderStyle.Render("search titles and directors...")
	}
	if m.genre != "" {
		box += "   " + GenreStyle(m.genre).Render(m.genre)
	} else {
		box += "   " + metaStyle.Render("all genres")
	}
	sb.WriteString("\n " + box + "\n\n")

	if len(m.results) == 0 {
		sb.WriteString(" " + dimStyle.Render("no movies match") + "\n")
		return sb.String()
	}

	for i, movie := range m.results {
		prefix := "   "
		title := normalStyle.Render(truncStr(movie.Title, 36))
		if i == m.cursor {
			prefix = " " + accentStyle.Render("> ")
			title = selectedStyle.Render(truncStr(movie.Title, 36))
		}
		year := metaStyle.Render(fmt.Sprintf("(%d)", movie.Year))
		director := dimStyle.Render(movie.Director)
		stars := starStyle.Render(renderStars(movie.UserRating))
		sb.WriteString(fmt.Sprintf("%s%s %s  %s  %s\n", prefix, title, year, director, stars))
	}

	return sb.String()
}
