package api

import (
	"net/http"

	"github.com/cinelog/cinelog-server/internal/domain"
	"github.com/cinelog/cinelog-server/internal/http/response"
	"github.com/cinelog/cinelog-server/internal/service"
)

type reviewResponse struct {
	ID        int64   `json:"id"`
	Comment   *string `json:"comment,omitempty"`
	Rating    int     `json:"rating"`
	LikeCount int     `json:"like_count"`
	Date      string  `json:"date"`
	Spoiler   bool    `json:"spoiler"`
	TitleID   int64   `json:"title_id"`
	UserID    int64   `json:"user_id"`
}

func mapReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		Comment:   r.Comment,
		Rating:    r.Rating,
		LikeCount: r.LikeCount,
		Date:      r.Date.Format("2006-01-02"),
		Spoiler:   r.Spoiler,
		TitleID:   r.TitleID,
		UserID:    r.UserID,
	}
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.services.Review.ListReviews(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	resp := make([]reviewResponse, len(reviews))
	for i, rev := range reviews {
		resp[i] = mapReviewResponse(rev)
	}
	response.Success(w, "reviews retrieved", resp, s.logger)
}

func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	rev, err := s.services.Review.GetReview(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "review retrieved", mapReviewResponse(rev), s.logger)
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req service.CreateReviewRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	rev, err := s.services.Review.CreateReview(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Created(w, "review created", mapReviewResponse(rev), s.logger)
}

func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	var req service.UpdateReviewRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	rev, err := s.services.Review.UpdateReview(r.Context(), id, req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "review updated", mapReviewResponse(rev), s.logger)
}

// handleUpdateReviewComment replaces only the comment text.
func (s *Server) handleUpdateReviewComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	var req service.UpdateCommentRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	rev, err := s.services.Review.UpdateReviewComment(r.Context(), id, req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "review comment updated", mapReviewResponse(rev), s.logger)
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	if err := s.services.Review.DeleteReview(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "review deleted", nil, s.logger)
}
