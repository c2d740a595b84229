package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/internal/nav"
	"moviehub/pkg/domain"
)

type reviewEditorModel struct {
	catalog  *catalog.Store
	movie    domain.Movie
	hasMovie bool
	critic   bool // author writes with a critic score

	focus       int
	title       string
	content     string
	rating      int
	criticScore int
	spoilers    bool

	editing bool
	errMsg  string
	width   int
	height  int
}

func newReviewEditorModel(cat *catalog.Store, movie domain.Movie, hasMovie, critic bool) reviewEditorModel {
	return reviewEditorModel{
		catalog:     cat,
		movie:       movie,
		hasMovie:    hasMovie,
		critic:      critic,
		rating:      3,
		criticScore: 70,
		editing:     hasMovie,
	}
}

func (m reviewEditorModel) fieldCount() int {
	if m.critic {
		return 4 // title, content, rating, critic score
	}
	return 3 // title, content, rating
}

// syncEditing: rating and critic score fields are cycled, not typed.
func (m reviewEditorModel) syncEditing() reviewEditorModel {
	m.editing = m.hasMovie && m.focus < 2
	return m
}

func (m reviewEditorModel) Update(msg tea.Msg) (reviewEditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if !m.hasMovie {
			if msg.String() == "esc" {
				return m, navigateTo(nav.PageHome, nil)
			}
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, navigateTo(nav.PageMovieDetail, nav.MoviePayload{Movie: m.movie})
		case "tab", "down":
			m.focus = (m.focus + 1) % m.fieldCount()
			return m.syncEditing(), nil
		case "up":
			m.focus = (m.focus + m.fieldCount() - 1) % m.fieldCount()
			return m.syncEditing(), nil
		case "ctrl+s":
			return m.submit()
		case "h", "left", "l", "right":
			dir := 1
			if msg.String() == "h" || msg.String() == "left" {
				dir = -1
			}
			switch m.focus {
			case 2:
				m.rating += dir
				if m.rating < 1 {
					m.rating = 1
				}
				if m.rating > 5 {
					m.rating = 5
				}
				return m, nil
			case 3:
				m.criticScore += dir * 5
				if m.criticScore < 0 {
					m.criticScore = 0
				}
				if m.criticScore > 100 {
					m.criticScore = 100
				}
				return m, nil
			}
		case "x":
			if !m.editing {
				m.spoilers = !m.spoilers
				return m, nil
			}
		}
		if m.editing {
			switch m.focus {
			case 0:
				m.title = editRune(m.title, msg.String())
			case 1:
				m.content = editRune(m.content, msg.String())
			}
		}
	}
	return m, nil
}

func (m reviewEditorModel) submit() (reviewEditorModel, tea.Cmd) {
	if m.title == "" || m.content == "" {
		m.errMsg = "Please fill out all required fields"
		return m, nil
	}
	p := m.catalog.Profile()
	r := domain.Review{
		MovieID:    m.movie.ID,
		AuthorID:   p.ID,
		AuthorName: p.Name,
		IsCritic:   m.critic,
		Rating:     m.rating,
		Title:      m.title,
		Content:    m.content,
		Spoilers:   m.spoilers,
	}
	if m.critic {
		r.CriticScore = m.criticScore
	}
	m.catalog.AddReview(r)
	return m, tea.Batch(
		toastCmd("Review published"),
		navigateTo(nav.PageMovieDetail, nav.MoviePayload{Movie: m.movie}),
	)
}

func (m reviewEditorModel) View() string {
	if !m.hasMovie {
		return "\n " + dimStyle.Render("pick a movie before writing a review")
	}

	var sb strings.Builder
	sb.WriteString("\n " + sectionHeaderStyle.Render("Review: ") + selectedStyle.Render(m.movie.Title) + "\n\n")

	sb.WriteString(fieldLine("title", m.title, "sum it up in a line", m.focus == 0) + "\n")
	sb.WriteString(fieldLine("review", m.content, "what worked, what didn't", m.focus == 1) + "\n")

	marker := func(i int) string {
		if m.focus == i {
			return accentStyle.Render("> ")
		}
		return "  "
	}
	sb.WriteString(" " + marker(2) + dimStyle.Render(fmt.Sprintf("%-12s", "rating")) +
		starStyle.Render(renderStars(float64(m.rating))) + metaStyle.Render("  (h/l)") + "\n")
	if m.critic {
		sb.WriteString(" " + marker(3) + dimStyle.Render(fmt.Sprintf("%-12s", "critic score")) +
			criticScoreStyle.Render(fmt.Sprintf("%d", m.criticScore)) + metaStyle.Render("  (h/l)") + "\n")
	}

	spoilers := dimStyle.Render("no")
	if m.spoilers {
		spoilers = spoilerStyle.Render("yes")
	}
	sb.WriteString("   " + dimStyle.Render(fmt.Sprintf("%-12s", "spoilers")) + spoilers + metaStyle.Render("  (x toggles, outside text fields)") + "\n")

	if m.errMsg != "" {
		sb.WriteString("\n " + errorStyle.Render(m.errMsg) + "\n")
	}

	return sb.String()
}
