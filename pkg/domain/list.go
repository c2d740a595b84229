package domain

import (
	"time"

	"github.com/google/uuid"
)

// MovieList is a user-curated collection of movies.
type MovieList struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	CoverURL    string      `json:"cover_url,omitempty"`
	IsPublic    bool        `json:"is_public"`
	MovieIDs    []uuid.UUID `json:"movie_ids,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ItemCount is the number of movies on the list.
func (l MovieList) ItemCount() int {
	return len(l.MovieIDs)
}
