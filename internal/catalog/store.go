// Package catalog holds the in-memory platform data the screens
// render: movies, reviews, lists, the active user's profile and
// watchlist, plus the member and announcement records behind the admin
// console. It also plays the content-management collaborator for
// moderation: hide and delete instructions land here.
package catalog

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"moviehub/pkg/domain"
)

// ErrNotFound reports a lookup for an id the store does not hold.
var ErrNotFound = errors.New("catalog: not found")

// Store owns all catalog data for the session.
type Store struct {
	movies        []domain.Movie
	movieByID     map[uuid.UUID]domain.Movie
	reviews       []domain.Review
	lists         []domain.MovieList
	watch         map[uuid.UUID]domain.WatchStatus
	accounts      []domain.Account
	announcements []domain.Announcement
	profile       domain.UserProfile
	hidden        map[uuid.UUID]bool
}

// New builds an empty store.
func New() *Store {
	return &Store{
		movieByID: make(map[uuid.UUID]domain.Movie),
		watch:     make(map[uuid.UUID]domain.WatchStatus),
		hidden:    make(map[uuid.UUID]bool),
	}
}

// Movies returns the full catalog in seed order.
func (s *Store) Movies() []domain.Movie {
	return s.movies
}

// MovieByID returns the movie with the given id.
func (s *Store) MovieByID(id uuid.UUID) (domain.Movie, bool) {
	m, ok := s.movieByID[id]
	return m, ok
}

// Search returns movies matching a case-insensitive title/director
// substring and a genre filter. Either may be empty; both are
// conjunctive when set.
func (s *Store) Search(query, genre string) []domain.Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Title), q) &&
			!strings.Contains(strings.ToLower(m.Director), q) {
			continue
		}
		if genre != "" && !hasGenre(m, genre) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func hasGenre(m domain.Movie, genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Trending returns the catalog sorted by community rating, best first.
func (s *Store) Trending() []domain.Movie {
	out := append([]domain.Movie(nil), s.movies...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UserRating > out[j].UserRating
	})
	return out
}

// NewReleases returns the catalog sorted by year, newest first.
func (s *Store) NewReleases() []domain.Movie {
	out := append([]domain.Movie(nil), s.movies...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year > out[j].Year
	})
	return out
}

// Rankings returns the catalog sorted by critic score, best first.
func (s *Store) Rankings() []domain.Movie {
	out := append([]domain.Movie(nil), s.movies...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CriticScore > out[j].CriticScore
	})
	return out
}

// ReviewsFor returns visible reviews for a movie, newest first.
// Reviews hidden by moderation are excluded.
func (s *Store) ReviewsFor(movieID uuid.UUID) []domain.Review {
	out := make([]domain.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if r.MovieID == movieID && !s.hidden[r.ID] {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// CriticReviews returns every visible critic review, newest first.
func (s *Store) CriticReviews() []domain.Review {
	out := make([]domain.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if r.IsCritic && !s.hidden[r.ID] {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// AddReview publishes a review. Missing ids and timestamps are filled.
func (s *Store) AddReview(r domain.Review) domain.Review {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.reviews = append(s.reviews, r)
	return r
}

// HideContent marks flagged content invisible without removing it.
func (s *Store) HideContent(id uuid.UUID) {
	s.hidden[id] = true
}

// Hidden reports whether content was hidden by moderation.
func (s *Store) Hidden(id uuid.UUID) bool {
	return s.hidden[id]
}

// DeleteContent removes flagged content outright. Unknown ids are a
// no-op: the report may point at content of a kind the store does not
// carry (comments live with their threads, not here).
func (s *Store) DeleteContent(ct domain.ContentType, id uuid.UUID) {
	switch ct {
	case domain.ContentReview:
		for i, r := range s.reviews {
			if r.ID == id {
				s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
				return
			}
		}
	case domain.ContentList:
		for i, l := range s.lists {
			if l.ID == id {
				s.lists = append(s.lists[:i], s.lists[i+1:]...)
				return
			}
		}
	}
}

// Lists returns the user's lists in seed order.
func (s *Store) Lists() []domain.MovieList {
	return s.lists
}

// ListByID returns the list with the given id.
func (s *Store) ListByID(id uuid.UUID) (domain.MovieList, bool) {
	for _, l := range s.lists {
		if l.ID == id {
			return l, true
		}
	}
	return domain.MovieList{}, false
}

// Watchlist returns movies with the given watch status, in seed order.
func (s *Store) Watchlist(status domain.WatchStatus) []domain.Movie {
	out := make([]domain.Movie, 0, len(s.watch))
	for _, m := range s.movies {
		if s.watch[m.ID] == status {
			out = append(out, m)
		}
	}
	return out
}

// WatchStatusFor returns the movie's watch status, if any.
func (s *Store) WatchStatusFor(movieID uuid.UUID) (domain.WatchStatus, bool) {
	st, ok := s.watch[movieID]
	return st, ok
}

// SetWatchStatus places a movie on the watchlist under the given
// status. An empty status removes the entry.
func (s *Store) SetWatchStatus(movieID uuid.UUID, status domain.WatchStatus) {
	if status == "" {
		delete(s.watch, movieID)
		return
	}
	s.watch[movieID] = status
}

// Accounts returns every platform member known to the admin console.
func (s *Store) Accounts() []domain.Account {
	return s.accounts
}

// SetAccountRole changes a member's role.
func (s *Store) SetAccountRole(id uuid.UUID, role domain.Role) error {
	if !domain.ValidRole(role) {
		return errors.New("catalog: invalid role")
	}
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts[i].Role = role
			return nil
		}
	}
	return ErrNotFound
}

// ToggleAccountLock flips a member's lock state and returns the new one.
func (s *Store) ToggleAccountLock(id uuid.UUID) (bool, error) {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts[i].Locked = !s.accounts[i].Locked
			return s.accounts[i].Locked, nil
		}
	}
	return false, ErrNotFound
}

// Announcements returns platform notices, newest first.
func (s *Store) Announcements() []domain.Announcement {
	out := append([]domain.Announcement(nil), s.announcements...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// AddAnnouncement publishes a platform notice.
func (s *Store) AddAnnouncement(title, body string) domain.Announcement {
	a := domain.Announcement{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		Published: true,
		CreatedAt: time.Now(),
	}
	s.announcements = append(s.announcements, a)
	return a
}

// Profile returns the active user's profile.
func (s *Store) Profile() domain.UserProfile {
	return s.profile
}
