package api

import (
	"net/http"

	"github.com/cinelog/cinelog-server/internal/domain"
	"github.com/cinelog/cinelog-server/internal/http/response"
	"github.com/cinelog/cinelog-server/internal/service"
)

func mapDirectorResponse(d *domain.Director) personResponse {
	return personResponse{
		ID:          d.ID,
		Name:        d.Name,
		PhotoURL:    d.PhotoURL,
		Nationality: d.Nationality,
		BirthDate:   d.BirthDate.Format("2006-01-02"),
	}
}

func (s *Server) handleListDirectors(w http.ResponseWriter, r *http.Request) {
	directors, err := s.services.Director.ListDirectors(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	resp := make([]personResponse, len(directors))
	for i, d := range directors {
		resp[i] = mapDirectorResponse(d)
	}
	response.Success(w, "directors retrieved", resp, s.logger)
}

func (s *Server) handleGetDirector(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	d, err := s.services.Director.GetDirector(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "director retrieved", mapDirectorResponse(d), s.logger)
}

func (s *Server) handleCreateDirector(w http.ResponseWriter, r *http.Request) {
	var req service.CreateDirectorRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	d, err := s.services.Director.CreateDirector(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Created(w, "director created", mapDirectorResponse(d), s.logger)
}

// handlePatchDirector applies a partial update restricted to the allow-listed
// fields. A body touching none of them is rejected with the accepted list.
func (s *Server) handlePatchDirector(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	var req service.PatchDirectorRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	d, err := s.services.Director.PatchDirector(r.Context(), id, req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "director updated", mapDirectorResponse(d), s.logger)
}

// handleListDirectorTitles returns a director's filmography: 404 when the
// director is missing, an empty array when it is merely empty.
func (s *Server) handleListDirectorTitles(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	titles, err := s.services.Director.ListDirectorTitles(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}

	resp := make([]titleResponse, len(titles))
	for i, t := range titles {
		resp[i] = mapTitleResponse(t)
	}
	response.Success(w, "director titles retrieved", resp, s.logger)
}
