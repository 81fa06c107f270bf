package domain

import "time"

// Rating bounds accepted for a review.
const (
	MinRating = 0
	MaxRating = 10
)

// Review is a user's rating of a title. TitleID and UserID come from the
// review's link rows; a review is only valid once both links exist.
type Review struct {
	ID        int64     `json:"id"`
	Comment   *string   `json:"comment,omitempty"`
	Rating    int       `json:"rating"`
	LikeCount int       `json:"like_count"`
	Date      time.Time `json:"date"`
	Spoiler   bool      `json:"spoiler"`
	TitleID   int64     `json:"title_id,omitempty"`
	UserID    int64     `json:"user_id,omitempty"`
}
