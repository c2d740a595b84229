package catalog

import (
	"time"

	"github.com/google/uuid"

	"moviehub/pkg/domain"
)

// Seeded builds a store pre-loaded with the platform's demo data.
func Seeded() *Store {
	s := New()

	for _, m := range seedMovies() {
		s.movies = append(s.movies, m)
		s.movieByID[m.ID] = m
	}
	s.reviews = seedReviews(s.movies)
	s.lists = seedLists(s.movies)
	s.accounts = seedAccounts()
	s.announcements = seedAnnouncements()
	s.profile = seedProfile()

	// Starter watchlist spread across all three buckets.
	if len(s.movies) >= 6 {
		s.watch[s.movies[0].ID] = domain.WatchWatched
		s.watch[s.movies[2].ID] = domain.WatchWatched
		s.watch[s.movies[3].ID] = domain.WatchWatching
		s.watch[s.movies[5].ID] = domain.WatchWant
	}

	return s
}

func seedMovies() []domain.Movie {
	return []domain.Movie{
		{
			ID:          uuid.New(),
			Title:       "Inception",
			Year:        2010,
			Runtime:     148,
			Director:    "Christopher Nolan",
			Cast:        []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page"},
			Genres:      []string{"Sci-Fi", "Action", "Thriller"},
			Synopsis:    "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea in a target's mind.",
			UserRating:  4.4,
			CriticScore: 87,
			TrailerURL:  "https://www.youtube.com/watch?v=YoHD9XEInc0",
		},
		{
			ID:          uuid.New(),
			Title:       "Parasite",
			Year:        2019,
			Runtime:     132,
			Director:    "Bong Joon-ho",
			Cast:        []string{"Song Kang-ho", "Lee Sun-kyun", "Cho Yeo-jeong"},
			Genres:      []string{"Drama", "Thriller"},
			Synopsis:    "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
			UserRating:  4.6,
			CriticScore: 96,
			TrailerURL:  "https://www.youtube.com/watch?v=5xH0HfJHsaY",
		},
		{
			ID:          uuid.New(),
			Title:       "Spirited Away",
			Year:        2001,
			Runtime:     125,
			Director:    "Hayao Miyazaki",
			Cast:        []string{"Rumi Hiiragi", "Miyu Irino"},
			Genres:      []string{"Animation", "Fantasy", "Adventure"},
			Synopsis:    "During her family's move to the suburbs, a sullen girl wanders into a world ruled by gods, witches and spirits.",
			UserRating:  4.7,
			CriticScore: 96,
			TrailerURL:  "https://www.youtube.com/watch?v=ByXuk9QqQkk",
		},
		{
			ID:          uuid.New(),
			Title:       "Mad Max: Fury Road",
			Year:        2015,
			Runtime:     120,
			Director:    "George Miller",
			Cast:        []string{"Tom Hardy", "Charlize Theron"},
			Genres:      []string{"Action", "Adventure"},
			Synopsis:    "In a post-apocalyptic wasteland, Max teams up with Furiosa to flee a tyrant who controls the land's water supply.",
			UserRating:  4.2,
			CriticScore: 90,
			TrailerURL:  "https://www.youtube.com/watch?v=hEJnMQG9ev8",
		},
		{
			ID:          uuid.New(),
			Title:       "The Grand Budapest Hotel",
			Year:        2014,
			Runtime:     99,
			Director:    "Wes Anderson",
			Cast:        []string{"Ralph Fiennes", "Tony Revolori", "Saoirse Ronan"},
			Genres:      []string{"Comedy", "Drama"},
			Synopsis:    "A legendary concierge and his trusted lobby boy are swept into the theft of a priceless painting and a battle over a family fortune.",
			UserRating:  4.1,
			CriticScore: 88,
			TrailerURL:  "https://www.youtube.com/watch?v=1Fg5iWmQjwk",
		},
		{
			ID:          uuid.New(),
			Title:       "Blade Runner 2049",
			Year:        2017,
			Runtime:     164,
			Director:    "Denis Villeneuve",
			Cast:        []string{"Ryan Gosling", "Harrison Ford", "Ana de Armas"},
			Genres:      []string{"Sci-Fi", "Drama", "Mystery"},
			Synopsis:    "A young blade runner's discovery of a long-buried secret leads him to track down former blade runner Rick Deckard.",
			UserRating:  4.0,
			CriticScore: 81,
			TrailerURL:  "https://www.youtube.com/watch?v=gCcx85zbxz4",
		},
		{
			ID:          uuid.New(),
			Title:       "Get Out",
			Year:        2017,
			Runtime:     104,
			Director:    "Jordan Peele",
			Cast:        []string{"Daniel Kaluuya", "Allison Williams"},
			Genres:      []string{"Horror", "Mystery", "Thriller"},
			Synopsis:    "A young Black man visits his white girlfriend's family estate, where simmering unease builds into something far more sinister.",
			UserRating:  4.2,
			CriticScore: 85,
			TrailerURL:  "https://www.youtube.com/watch?v=DzfpyUB60YY",
		},
		{
			ID:          uuid.New(),
			Title:       "La La Land",
			Year:        2016,
			Runtime:     128,
			Director:    "Damien Chazelle",
			Cast:        []string{"Ryan Gosling", "Emma Stone"},
			Genres:      []string{"Romance", "Drama", "Comedy"},
			Synopsis:    "A jazz pianist and an aspiring actress fall in love while chasing their dreams in Los Angeles.",
			UserRating:  3.9,
			CriticScore: 86,
			TrailerURL:  "https://www.youtube.com/watch?v=0pdqf4P9MB8",
		},
		{
			ID:          uuid.New(),
			Title:       "Alien",
			Year:        1979,
			Runtime:     117,
			Director:    "Ridley Scott",
			Cast:        []string{"Sigourney Weaver", "Tom Skerritt"},
			Genres:      []string{"Horror", "Sci-Fi"},
			Synopsis:    "The crew of a commercial starship answers a distress call and brings something lethal back aboard.",
			UserRating:  4.5,
			CriticScore: 89,
			TrailerURL:  "https://www.youtube.com/watch?v=LjLamj-b0I8",
		},
		{
			ID:          uuid.New(),
			Title:       "Knives Out",
			Year:        2019,
			Runtime:     130,
			Director:    "Rian Johnson",
			Cast:        []string{"Daniel Craig", "Ana de Armas", "Chris Evans"},
			Genres:      []string{"Mystery", "Comedy", "Crime"},
			Synopsis:    "A detective investigates the death of a patriarch of an eccentric, combative family.",
			UserRating:  4.0,
			CriticScore: 82,
			TrailerURL:  "https://www.youtube.com/watch?v=qGqiHJTsRkQ",
		},
	}
}

func seedReviews(movies []domain.Movie) []domain.Review {
	if len(movies) < 6 {
		return nil
	}
	now := time.Now()
	criticID := uuid.New()
	return []domain.Review{
		{
			ID: uuid.New(), MovieID: movies[1].ID, AuthorID: criticID,
			AuthorName: "Sarah Chen", IsCritic: true, Rating: 5, CriticScore: 95,
			Title:   "A masterclass in tonal control",
			Content: "Bong Joon-ho shifts between farce and horror without ever losing the thread. The staircase becomes the whole film's thesis.",
			Likes:   214, CreatedAt: now.Add(-36 * time.Hour),
		},
		{
			ID: uuid.New(), MovieID: movies[0].ID, AuthorID: criticID,
			AuthorName: "Sarah Chen", IsCritic: true, Rating: 4, CriticScore: 88,
			Title:   "Architecture as anxiety",
			Content: "Nolan builds a heist movie out of grief. The folding city remains one of the decade's great images.",
			Likes:   167, CreatedAt: now.Add(-5 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), MovieID: movies[2].ID, AuthorID: criticID,
			AuthorName: "Sarah Chen", IsCritic: true, Rating: 5, CriticScore: 98,
			Title:   "Still the high-water mark",
			Content: "Twenty years on, no animated film has matched its generosity. Every background character has a life you can imagine.",
			Likes:   342, CreatedAt: now.Add(-9 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), MovieID: movies[1].ID, AuthorID: uuid.New(),
			AuthorName: "moviefan123", Rating: 5,
			Title:   "Believe the hype",
			Content: "Went in blind, came out stunned. Watch it before anyone spoils the turn.",
			Likes:   45, CreatedAt: now.Add(-12 * time.Hour),
		},
		{
			ID: uuid.New(), MovieID: movies[3].ID, AuthorID: uuid.New(),
			AuthorName: "wastelander", Rating: 4,
			Title: "What a lovely day", Spoilers: true,
			Content: "The flame-guitar guy survives the first canyon crash, which makes the finale hit even harder.",
			Likes:   23, CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), MovieID: movies[5].ID, AuthorID: uuid.New(),
			AuthorName: "tearsinrain", Rating: 4,
			Title:   "Slow and worth it",
			Content: "Deakins paints with fog. Don't check your phone, let it breathe.",
			Likes:   31, CreatedAt: now.Add(-4 * 24 * time.Hour),
		},
	}
}

func seedLists(movies []domain.Movie) []domain.MovieList {
	if len(movies) < 9 {
		return nil
	}
	now := time.Now()
	return []domain.MovieList{
		{
			ID: uuid.New(), Name: "Mind-benders",
			Description: "Films that reward a second watch.",
			IsPublic:    true,
			MovieIDs:    []uuid.UUID{movies[0].ID, movies[5].ID, movies[9].ID},
			CreatedAt:   now.Add(-30 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Name: "Comfort cinema",
			Description: "For rainy Sundays.",
			IsPublic:    true,
			MovieIDs:    []uuid.UUID{movies[2].ID, movies[4].ID, movies[7].ID},
			CreatedAt:   now.Add(-14 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Name: "October watch party",
			Description: "Horror night candidates, ranked by scream potential.",
			IsPublic:    false,
			MovieIDs:    []uuid.UUID{movies[6].ID, movies[8].ID},
			CreatedAt:   now.Add(-3 * 24 * time.Hour),
		},
	}
}

func seedAccounts() []domain.Account {
	return []domain.Account{
		{ID: uuid.New(), Name: "Alice Johnson", Email: "alice@example.com", Role: domain.RoleUser},
		{ID: uuid.New(), Name: "Bob Smith", Email: "bob@example.com", Role: domain.RoleCritic},
		{ID: uuid.New(), Name: "Carol Davis", Email: "carol@example.com", Role: domain.RoleModerator},
		{ID: uuid.New(), Name: "David Wilson", Email: "david@example.com", Role: domain.RoleUser, Locked: true},
	}
}

func seedAnnouncements() []domain.Announcement {
	return []domain.Announcement{
		{
			ID:        uuid.New(),
			Title:     "Critic applications open",
			Body:      "Apply from your profile to join the critics program. Reviews from the last six months are considered.",
			Published: true,
			CreatedAt: time.Now().Add(-7 * 24 * time.Hour),
		},
	}
}

func seedProfile() domain.UserProfile {
	return domain.UserProfile{
		ID:       uuid.New(),
		Name:     "Jordan Reyes",
		Username: "jreyes",
		Bio:      "Watching my way through the 90s, one rental-store classic at a time.",
		Role:     domain.RoleUser,
		Stats: domain.UserStats{
			RatingsCount: 184,
			ReviewsCount: 27,
			AvgRating:    3.6,
			TimeWatched:  412,
		},
	}
}

// SeedReports builds the demo moderation queue. Reports reference the
// store's own reviews and lists where one exists.
func (s *Store) SeedReports() []domain.Report {
	now := time.Now()
	reviewID := func(i int) uuid.UUID {
		if i < len(s.reviews) {
			return s.reviews[i].ID
		}
		return uuid.New()
	}
	preview := func(i int) string {
		if i < len(s.reviews) {
			return s.reviews[i].Content
		}
		return ""
	}
	listID := uuid.New()
	if len(s.lists) > 0 {
		listID = s.lists[0].ID
	}

	return []domain.Report{
		{
			ID: uuid.New(), Violation: domain.ViolationSpam, ContentType: domain.ContentReview,
			ContentID: reviewID(3), ContentPreview: "AMAZING deals on streaming accounts, link in bio!!!",
			ReporterID: uuid.New(), ReporterName: "Alice Johnson",
			CreatedAt: now.Add(-3 * time.Hour), Status: domain.ReportPending,
		},
		{
			ID: uuid.New(), Violation: domain.ViolationSpoiler, ContentType: domain.ContentReview,
			ContentID: reviewID(4), ContentPreview: preview(4),
			ReporterID: uuid.New(), ReporterName: "moviefan123",
			CreatedAt: now.Add(-7 * time.Hour), Status: domain.ReportPending,
		},
		{
			ID: uuid.New(), Violation: domain.ViolationOffensive, ContentType: domain.ContentComment,
			ContentID: uuid.New(), ContentPreview: "You people wouldn't know a good film if it bit you. Absolute clowns, every one of you.",
			ReporterID: uuid.New(), ReporterName: "Carol Davis",
			CreatedAt: now.Add(-26 * time.Hour), Status: domain.ReportPending,
		},
		{
			ID: uuid.New(), Violation: domain.ViolationCopyright, ContentType: domain.ContentReview,
			ContentID: reviewID(5), ContentPreview: "Full movie available at watch-free-now dot example dot com, enjoy!",
			ReporterID: uuid.New(), ReporterName: "Bob Smith",
			CreatedAt: now.Add(-2 * 24 * time.Hour), Status: domain.ReportPending,
		},
		{
			ID: uuid.New(), Violation: domain.ViolationSpam, ContentType: domain.ContentList,
			ContentID: listID, ContentPreview: "Top 10 sites for FREE movies (list of links)",
			ReporterID: uuid.New(), ReporterName: "David Wilson",
			CreatedAt: now.Add(-3 * 24 * time.Hour), Status: domain.ReportRejected,
		},
		{
			ID: uuid.New(), Violation: domain.ViolationOffensive, ContentType: domain.ContentReview,
			ContentID: reviewID(0), ContentPreview: preview(0),
			ReporterID: uuid.New(), ReporterName: "grumpyviewer",
			CreatedAt: now.Add(-4 * 24 * time.Hour), Status: domain.ReportApproved,
		},
	}
}
