package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/internal/nav"
	"moviehub/pkg/domain"
)

// listsModel serves both the lists index and the list-detail screen.
type listsModel struct {
	catalog *catalog.Store
	lists   []domain.MovieList
	cursor  int

	detail bool
	list   domain.MovieList
	movies []domain.Movie

	width  int
	height int
}

func newListsModel(cat *catalog.Store, selected *domain.MovieList) listsModel {
	m := listsModel{catalog: cat, lists: cat.Lists()}
	if selected != nil {
		m = m.open(*selected)
	}
	return m
}

func (m listsModel) open(l domain.MovieList) listsModel {
	m.detail = true
	m.list = l
	m.cursor = 0
	m.movies = m.movies[:0]
	for _, id := range l.MovieIDs {
		if movie, ok := m.catalog.MovieByID(id); ok {
			m.movies = append(m.movies, movie)
		}
	}
	return m
}

func (m listsModel) Update(msg tea.Msg) (listsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.detail {
			switch msg.String() {
			case "esc":
				return m, navigateTo(nav.PageLists, nil)
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
			return m, nil
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.lists)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.lists) {
				return m, navigateTo(nav.PageListDetail, nav.ListPayload{List: m.lists[m.cursor]})
			}
		}
	}
	return m, nil
}

func (m listsModel) View() string {
	var sb strings.Builder

	if m.detail {
		visibility := metaStyle.Render("private")
		if m.list.IsPublic {
			visibility = metaStyle.Render("public")
		}
		sb.WriteString("\n " + selectedStyle.Render(m.list.Name) + "  " + visibility + "\n")
		if m.list.Description != "" {
			sb.WriteString(" " + dimStyle.Render(m.list.Description) + "\n")
		}
		sb.WriteString("\n")
		if len(m.movies) == 0 {
			sb.WriteString(" " + dimStyle.Render("this list is empty") + "\n")
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
				starStyle.Render(renderStars(movie.UserRating))))
		}
		return sb.String()
	}

	sb.WriteString("\n " + sectionHeaderStyle.Render("Your lists") + "\n\n")
	if len(m.lists) == 0 {
		sb.WriteString(" " + dimStyle.Render("no lists yet") + "\n")
		return sb.String()
	}
	for i, l := range m.lists {
		prefix := "   "
		name := normalStyle.Render(l.Name)
		if i == m.cursor {
			prefix = " " + accentStyle.Render("> ")
			name = selectedStyle.Render(l.Name)
		}
		count := metaStyle.Render(fmt.Sprintf("%d movies", l.ItemCount()))
		visibility := ""
		if !l.IsPublic {
			visibility = "  " + dimStyle.Render("private")
		}
		sb.WriteString(fmt.Sprintf("%s%s  %s%s\n", prefix, name, count, visibility))
		if l.Description != "" {
			sb.WriteString("   " + dimStyle.Render(truncStr(l.Description, 60)) + "\n")
		}
	}

	return sb.String()
}
