package domain

import "github.com/google/uuid"

// Movie is a single catalog title.
type Movie struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Runtime     int       `json:"runtime"` // minutes
	Director    string    `json:"director"`
	Cast        []string  `json:"cast,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	Synopsis    string    `json:"synopsis,omitempty"`
	UserRating  float64   `json:"user_rating"`  // community average, 0-5
	CriticScore int       `json:"critic_score"` // aggregated critic score, 0-100
	TrailerURL  string    `json:"trailer_url,omitempty"`
	PosterURL   string    `json:"poster_url,omitempty"`
	BackdropURL string    `json:"backdrop_url,omitempty"`
}

// Genres is the closed set of catalog genres.
var Genres = []string{
	"Action",
	"Adventure",
	"Animation",
	"Comedy",
	"Crime",
	"Drama",
	"Fantasy",
	"Horror",
	"Mystery",
	"Romance",
	"Sci-Fi",
	"Thriller",
}

var genreSet = func() map[string]bool {
	m := make(map[string]bool, len(Genres))
	for _, g := range Genres {
		m[g] = true
	}
	return m
}()

// ValidGenre returns true if g is a known genre.
func ValidGenre(g string) bool {
	return genreSet[g]
}

// WatchStatus tracks where a movie sits on a user's watchlist.
type WatchStatus string

const (
	WatchWatched  WatchStatus = "watched"
	WatchWatching WatchStatus = "watching"
	WatchWant     WatchStatus = "want"
)

// WatchStatuses lists every watch status in display order.
var WatchStatuses = []WatchStatus{WatchWatched, WatchWatching, WatchWant}

// WatchlistEntry is one movie on the active user's watchlist.
type WatchlistEntry struct {
	MovieID uuid.UUID   `json:"movie_id"`
	Status  WatchStatus `json:"status"`
}
