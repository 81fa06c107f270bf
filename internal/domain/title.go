// Package domain contains the core entities of the catalog.
package domain

import "time"

// TitleKind distinguishes movies from series.
type TitleKind string

const (
	// KindMovie is a title without seasons.
	KindMovie TitleKind = "movie"
	// KindSeries is a title with one or more seasons.
	KindSeries TitleKind = "series"
)

// Title represents a movie or series in the catalog.
// Seasons is zero for movies and positive for series.
type Title struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ReleaseDate time.Time `json:"release_date"`
	ImageURL    string    `json:"image_url,omitempty"`
	Seasons     int       `json:"seasons"`
	Genres      []string  `json:"genres,omitempty"`
}

// Kind derives the title kind from the season count.
func (t *Title) Kind() TitleKind {
	if t.Seasons > 0 {
		return KindSeries
	}
	return KindMovie
}
