package api

import (
	"fmt"
	"net/http"

	"github.com/cinelog/cinelog-server/internal/http/response"
	"github.com/cinelog/cinelog-server/internal/service"
)

func (s *Server) handleCreateGenre(w http.ResponseWriter, r *http.Request) {
	var req service.CreateGenreRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	g, err := s.services.Genre.CreateGenre(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Created(w, "genre created", g, s.logger)
}

// handleDeleteGenre removes a genre; the response carries the pre-deletion
// snapshot.
func (s *Server) handleDeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	snapshot, err := s.services.Genre.DeleteGenre(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w,
		fmt.Sprintf("genre %q deleted", snapshot.Name),
		snapshot, s.logger)
}
