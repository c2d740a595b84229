package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a published opinion on a movie. Critic reviews carry an
// additional 0-100 score alongside the star rating.
type Review struct {
	ID          uuid.UUID `json:"id"`
	MovieID     uuid.UUID `json:"movie_id"`
	AuthorID    uuid.UUID `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	IsCritic    bool      `json:"is_critic"`
	Rating      int       `json:"rating"`                 // 1-5 stars
	CriticScore int       `json:"critic_score,omitempty"` // 0-100, critic reviews only
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Spoilers    bool      `json:"spoilers"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
}
