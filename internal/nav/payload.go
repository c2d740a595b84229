package nav

import "moviehub/pkg/domain"

// Payload is the optional data handed to a destination screen. It is a
// closed union: each destination accepts exactly one variant, and
// Resolve drops payloads whose kind does not match the target page
// instead of threading arbitrary data through.
type Payload interface {
	isPayload()
}

// MoviePayload selects a movie for movie-detail and review-editor.
type MoviePayload struct {
	Movie domain.Movie
}

// ListPayload selects a list for list-detail.
type ListPayload struct {
	List domain.MovieList
}

// ReportPayload focuses a report in the moderator queue.
type ReportPayload struct {
	Report domain.Report
}

// GenrePayload pre-filters the search screen by genre.
type GenrePayload struct {
	Genre string
}

func (MoviePayload) isPayload()  {}
func (ListPayload) isPayload()   {}
func (ReportPayload) isPayload() {}
func (GenrePayload) isPayload()  {}

// payloadAllowed reports whether data is the variant the destination
// screen accepts. A nil payload is valid everywhere.
func payloadAllowed(p Page, data Payload) bool {
	switch data.(type) {
	case nil:
		return true
	case MoviePayload:
		return p == PageMovieDetail || p == PageReviewEditor
	case ListPayload:
		return p == PageListDetail
	case ReportPayload:
		return p == PageModeratorQueue
	case GenrePayload:
		return p == PageSearch
	}
	return false
}
