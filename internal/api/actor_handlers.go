package api

import (
	"fmt"
	"net/http"

	"github.com/cinelog/cinelog-server/internal/domain"
	"github.com/cinelog/cinelog-server/internal/http/response"
	"github.com/cinelog/cinelog-server/internal/service"
)

type personResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	BirthDate   string `json:"birth_date"`
}

func mapActorResponse(a *domain.Actor) personResponse {
	return personResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhotoURL:    a.PhotoURL,
		Nationality: a.Nationality,
		BirthDate:   a.BirthDate.Format("2006-01-02"),
	}
}

func (s *Server) handleListActors(w http.ResponseWriter, r *http.Request) {
	actors, err := s.services.Actor.ListActors(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	resp := make([]personResponse, len(actors))
	for i, a := range actors {
		resp[i] = mapActorResponse(a)
	}
	response.Success(w, "actors retrieved", resp, s.logger)
}

func (s *Server) handleGetActor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	a, err := s.services.Actor.GetActor(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "actor retrieved", mapActorResponse(a), s.logger)
}

func (s *Server) handleCreateActor(w http.ResponseWriter, r *http.Request) {
	var req service.ActorRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	a, err := s.services.Actor.CreateActor(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Created(w, "actor created", mapActorResponse(a), s.logger)
}

func (s *Server) handleUpdateActor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	var req service.ActorRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	a, err := s.services.Actor.UpdateActor(r.Context(), id, req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "actor updated", mapActorResponse(a), s.logger)
}

// handleDeleteActor removes an actor; the response carries the pre-deletion
// snapshot.
func (s *Server) handleDeleteActor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	snapshot, err := s.services.Actor.DeleteActor(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w,
		fmt.Sprintf("actor %q deleted", snapshot.Name),
		mapActorResponse(snapshot), s.logger)
}
