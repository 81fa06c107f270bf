package sqlite

import (
	"context"
	"database/sql"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

// reviewColumns joins the review row with its two link rows so every scanned
// review carries its title and author.
const reviewColumns = `r.id, r.comment, r.rating, r.like_count, r.date, r.spoiler, rt.title_id, ur.user_id`

const reviewBaseQuery = `
	SELECT ` + reviewColumns + `
	FROM review r
	JOIN review_title rt ON r.id = rt.review_id
	JOIN user_review ur ON r.id = ur.review_id`

func scanReview(scanner interface{ Scan(dest ...any) error }) (*domain.Review, error) {
	var r domain.Review

	var (
		comment sql.NullString
		date    string
		spoiler int
	)

	err := scanner.Scan(&r.ID, &comment, &r.Rating, &r.LikeCount, &date, &spoiler, &r.TitleID, &r.UserID)
	if err != nil {
		return nil, err
	}

	r.Date, err = parseDate(date)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		r.Comment = &comment.String
	}
	r.Spoiler = spoiler != 0

	return &r, nil
}

// CreateReview inserts the review row and both link rows in one transaction.
// r.TitleID and r.UserID must reference existing rows; a broken reference
// rolls the whole insert back.
func (s *Store) CreateReview(ctx context.Context, r *domain.Review) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO review (comment, rating, like_count, date, spoiler)
		VALUES (?, ?, ?, ?, ?)`,
		nullableString(r.Comment),
		r.Rating,
		r.LikeCount,
		formatDate(r.Date),
		boolToInt(r.Spoiler),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO review_title (review_id, title_id) VALUES (?, ?)`, id, r.TitleID); err != nil {
		return translateErr(err, "review is already linked to this title")
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO user_review (user_id, review_id) VALUES (?, ?)`, r.UserID, id); err != nil {
		return translateErr(err, "review is already linked to this user")
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	r.ID = id
	return nil
}

// GetReview retrieves a review by id together with its title and author ids.
func (s *Store) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	row := s.db.QueryRowContext(ctx, reviewBaseQuery+` WHERE r.id = ?`, id)

	r, err := scanReview(row)
	if err == sql.ErrNoRows {
		return nil, domainerrors.NotFound("review not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetReviewByUserAndTitle retrieves the review a user wrote for a title, if
// any.
func (s *Store) GetReviewByUserAndTitle(ctx context.Context, userID, titleID int64) (*domain.Review, error) {
	row := s.db.QueryRowContext(ctx,
		reviewBaseQuery+` WHERE ur.user_id = ? AND rt.title_id = ?`, userID, titleID)

	r, err := scanReview(row)
	if err == sql.ErrNoRows {
		return nil, domainerrors.NotFound("review not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListReviews returns all reviews, newest first.
func (s *Store) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	rows, err := s.db.QueryContext(ctx, reviewBaseQuery+` ORDER BY r.date DESC, r.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateReview updates the mutable review fields. Link rows, date, and
// like_count are fixed at creation.
func (s *Store) UpdateReview(ctx context.Context, r *domain.Review) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE review SET
			comment = ?,
			rating = ?,
			spoiler = ?
		WHERE id = ?`,
		nullableString(r.Comment),
		r.Rating,
		boolToInt(r.Spoiler),
		r.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("review not found")
	}
	return nil
}

// UpdateReviewComment replaces only the comment text.
func (s *Store) UpdateReviewComment(ctx context.Context, id int64, comment string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE review SET comment = ? WHERE id = ?`, comment, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("review not found")
	}
	return nil
}

// DeleteReview removes the review and both link rows atomically. Link rows go
// first to satisfy foreign keys.
func (s *Store) DeleteReview(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_review WHERE review_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM review_title WHERE review_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM review WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("review not found")
	}

	return tx.Commit()
}
