package domain

import "github.com/google/uuid"

// UserStats summarizes a profile's activity.
type UserStats struct {
	RatingsCount int     `json:"ratings_count"`
	ReviewsCount int     `json:"reviews_count"`
	AvgRating    float64 `json:"avg_rating"`
	TimeWatched  int     `json:"time_watched"` // hours
}

// UserProfile is the active user's public profile.
type UserProfile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Bio      string    `json:"bio,omitempty"`
	Role     Role      `json:"role"`
	Stats    UserStats `json:"stats"`
}

// Account is a platform member as seen from the admin console.
type Account struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
	Locked bool      `json:"locked"`
}
