package api

import (
	"fmt"
	"net/http"

	"github.com/cinelog/cinelog-server/internal/domain"
	"github.com/cinelog/cinelog-server/internal/http/response"
	"github.com/cinelog/cinelog-server/internal/service"
)

// titleResponse is the wire shape of a title, with the kind derived from the
// season count.
type titleResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ReleaseDate string   `json:"release_date"`
	ImageURL    string   `json:"image_url,omitempty"`
	Seasons     int      `json:"seasons"`
	Type        string   `json:"type"`
	Genres      []string `json:"genres,omitempty"`
}

func mapTitleResponse(t *domain.Title) titleResponse {
	return titleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		ReleaseDate: t.ReleaseDate.Format("2006-01-02"),
		ImageURL:    t.ImageURL,
		Seasons:     t.Seasons,
		Type:        string(t.Kind()),
		Genres:      t.Genres,
	}
}

// handleListTitles returns all titles, newest first.
func (s *Server) handleListTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := s.services.Title.ListTitles(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	resp := make([]titleResponse, len(titles))
	for i, t := range titles {
		resp[i] = mapTitleResponse(t)
	}
	response.Success(w, "titles retrieved", resp, s.logger)
}

// handleGetTitle returns a single title.
func (s *Server) handleGetTitle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	t, err := s.services.Title.GetTitle(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "title retrieved", mapTitleResponse(t), s.logger)
}

// handleCreateTitle creates a title; a duplicate name is a conflict.
func (s *Server) handleCreateTitle(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTitleRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	t, err := s.services.Title.CreateTitle(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Created(w, "title created", mapTitleResponse(t), s.logger)
}

// handleUpsertTitle updates when the body carries an id and creates otherwise.
func (s *Server) handleUpsertTitle(w http.ResponseWriter, r *http.Request) {
	var req service.UpsertTitleRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	t, err := s.services.Title.UpsertTitle(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}

	if req.ID == nil {
		response.Created(w, "title created", mapTitleResponse(t), s.logger)
		return
	}
	response.Success(w, "title updated", mapTitleResponse(t), s.logger)
}

// handleDeleteTitle runs the cascading delete. The success message names the
// deleted title.
func (s *Server) handleDeleteTitle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	snapshot, err := s.services.Title.DeleteTitle(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w,
		fmt.Sprintf("title %q deleted", snapshot.Name),
		mapTitleResponse(snapshot), s.logger)
}
