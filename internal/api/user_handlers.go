package api

import (
	"net/http"
	"time"

	"github.com/cinelog/cinelog-server/internal/domain"
	"github.com/cinelog/cinelog-server/internal/http/response"
	"github.com/cinelog/cinelog-server/internal/service"
)

// userResponse is the wire shape of a user; the password hash never leaves
// the server.
type userResponse struct {
	ID           int64     `json:"id"`
	Role         string    `json:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Name         string    `json:"name"`
	Alias        string    `json:"alias"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

func mapUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Role:         string(u.Role),
		AvatarURL:    u.AvatarURL,
		Name:         u.Name,
		Alias:        u.Alias,
		Email:        u.Email,
		RegisteredAt: u.RegisteredAt,
	}
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.services.User.ListUsers(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = mapUserResponse(u)
	}
	response.Success(w, "users retrieved", resp, s.logger)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	u, err := s.services.User.GetUser(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "user retrieved", mapUserResponse(u), s.logger)
}

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterUserRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	u, err := s.services.User.Register(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Created(w, "user registered", mapUserResponse(u), s.logger)
}

func (s *Server) handleUpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	var req service.UpdateProfileRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	u, err := s.services.User.UpdateProfile(r.Context(), id, req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "user updated", mapUserResponse(u), s.logger)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	var req service.ChangePasswordRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	if err := s.services.User.ChangePassword(r.Context(), id, req); err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "password changed", nil, s.logger)
}

func (s *Server) handleChangeAlias(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	var req service.ChangeAliasRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	u, err := s.services.User.ChangeAlias(r.Context(), id, req)
	if err != nil {
		s.fail(w, err)
		return
	}
	response.Success(w, "alias changed", mapUserResponse(u), s.logger)
}
