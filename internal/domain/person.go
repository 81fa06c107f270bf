package domain

import "time"

// Actor is a performer credited on titles.
type Actor struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	BirthDate   time.Time `json:"birth_date"`
}

// Director is credited as director on titles.
type Director struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	BirthDate   time.Time `json:"birth_date"`
}
