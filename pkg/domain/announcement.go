package domain

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a platform-wide notice managed from the admin console.
type Announcement struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}
