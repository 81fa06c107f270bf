package api

import (
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-server/internal/auth"
	"github.com/cinelog/cinelog-server/internal/config"
	"github.com/cinelog/cinelog-server/internal/service"
	"github.com/cinelog/cinelog-server/internal/store/sqlite"
)

type testEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Details any    `json:"details"`
	Data    any    `json:"data"`
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	services := Services{
		Title:    service.NewTitleService(st, logger),
		Genre:    service.NewGenreService(st, logger),
		Actor:    service.NewActorService(st, logger),
		Director: service.NewDirectorService(st, logger),
		User:     service.NewUserService(st, auth.NewArgon2Hasher(), logger),
		Review:   service.NewReviewService(st, logger),
	}
	return NewServer(services, config.CORSConfig{AllowedOrigins: []string{"*"}}, logger)
}

func doRequest(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestCreateTitleEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodPost, "/movies",
		`{"name":"Arrival","release_date":"2016-11-11"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Arrival", data["name"])
	assert.Equal(t, "movie", data["type"])
}

func TestCreateTitleDuplicateName(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doRequest(t, srv, http.MethodPost, "/movies",
		`{"name":"Arrival","release_date":"2016-11-11"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, srv, http.MethodPost, "/movies",
		`{"name":"Arrival","release_date":"2017-01-01"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "Arrival")
}

func TestCreateTitleMissingFields(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodPost, "/movies", `{"description":"nameless"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestSeriesTypeDerivation(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodPost, "/movies",
		`{"name":"Severance","release_date":"2022-02-18","seasons":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	data := env.Data.(map[string]any)
	assert.Equal(t, "series", data["type"])
}

func TestDeleteTitleMessageNamesTitle(t *testing.T) {
	srv := newTestServer(t)

	_, created := doRequest(t, srv, http.MethodPost, "/movies",
		`{"name":"Doomed","release_date":"2020-01-01"}`)
	id := created.Data.(map[string]any)["id"].(float64)

	rec, env := doRequest(t, srv, http.MethodDelete, "/movies/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, env.Message, "Doomed")
	assert.EqualValues(t, 1, id)

	rec, _ = doRequest(t, srv, http.MethodGet, "/movies/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpsertTitle(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doRequest(t, srv, http.MethodPut, "/movies",
		`{"name":"Fresh","release_date":"2022-01-01"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, srv, http.MethodPut, "/movies",
		`{"id":1,"name":"Renamed","release_date":"2022-01-01"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Renamed", env.Data.(map[string]any)["name"])
}

func TestDirectorPatchAllowList(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doRequest(t, srv, http.MethodPost, "/directors",
		`{"name":"Denis Villeneuve","birth_date":"1967-10-03"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Only unknown fields: rejected with the allowed list.
	rec, env := doRequest(t, srv, http.MethodPatch, "/directors/1",
		`{"favorite_color":"orange"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	details, ok := env.Details.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "allowed_fields")

	// An allow-listed field goes through.
	rec, env = doRequest(t, srv, http.MethodPatch, "/directors/1",
		`{"nationality":"Canadian"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Canadian", env.Data.(map[string]any)["nationality"])
}

func TestDirectorMoviesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doRequest(t, srv, http.MethodGet, "/directors/1/movies", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	doRequest(t, srv, http.MethodPost, "/directors",
		`{"name":"Newcomer","birth_date":"1980-01-01"}`)

	rec, env := doRequest(t, srv, http.MethodGet, "/directors/1/movies", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Data)
}

func TestGenreEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doRequest(t, srv, http.MethodPost, "/genres", `{"name":"sci-fi"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doRequest(t, srv, http.MethodPost, "/genres", `{"name":"sci-fi"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env := doRequest(t, srv, http.MethodDelete, "/genres/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, env.Message, "sci-fi")
}

func TestReviewFlow(t *testing.T) {
	srv := newTestServer(t)

	doRequest(t, srv, http.MethodPost, "/movies",
		`{"name":"Reviewable","release_date":"2020-01-01"}`)
	doRequest(t, srv, http.MethodPost, "/usuarios/register",
		`{"name":"Alice","alias":"alice","email":"alice@example.com","password":"correct-horse"}`)

	rec, env := doRequest(t, srv, http.MethodPost, "/reviews",
		`{"title_id":1,"user_id":1,"rating":8,"comment":"solid"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	data := env.Data.(map[string]any)
	assert.EqualValues(t, 8, data["rating"])
	assert.EqualValues(t, 0, data["like_count"])

	// Second review by the same user for the same title.
	rec, _ = doRequest(t, srv, http.MethodPost, "/reviews",
		`{"title_id":1,"user_id":1,"rating":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Out-of-bounds rating.
	rec, _ = doRequest(t, srv, http.MethodPost, "/reviews",
		`{"title_id":1,"user_id":1,"rating":11}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown title.
	rec, _ = doRequest(t, srv, http.MethodPost, "/reviews",
		`{"title_id":99,"user_id":1,"rating":5}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Comment-only patch.
	rec, env = doRequest(t, srv, http.MethodPatch, "/reviews/1/comentario",
		`{"comment":"changed my mind"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "changed my mind", env.Data.(map[string]any)["comment"])

	// Full update reports 404 for unknown ids.
	rec, _ = doRequest(t, srv, http.MethodPut, "/reviews/99", `{"rating":5}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(t, srv, http.MethodDelete, "/reviews/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserFlows(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodPost, "/usuarios/register",
		`{"name":"Alice","alias":"alice","email":"alice@example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, "alice", data["alias"])
	assert.NotContains(t, rec.Body.String(), "password")

	// Duplicate alias.
	rec, _ = doRequest(t, srv, http.MethodPost, "/usuarios/register",
		`{"name":"Impostor","alias":"alice","email":"other@example.com","password":"correct-horse"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Password change: wrong current password.
	rec, _ = doRequest(t, srv, http.MethodPatch, "/usuarios/1/password",
		`{"current_password":"wrong-guess","new_password":"battery-staple","confirm_password":"battery-staple"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Password change: confirmation mismatch.
	rec, _ = doRequest(t, srv, http.MethodPatch, "/usuarios/1/password",
		`{"current_password":"correct-horse","new_password":"battery-staple","confirm_password":"battery-stable"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Password change: success.
	rec, _ = doRequest(t, srv, http.MethodPatch, "/usuarios/1/password",
		`{"current_password":"correct-horse","new_password":"battery-staple","confirm_password":"battery-staple"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Unknown user.
	rec, _ = doRequest(t, srv, http.MethodPatch, "/usuarios/99/password",
		`{"current_password":"x-password","new_password":"battery-staple","confirm_password":"battery-staple"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Alias change.
	rec, env = doRequest(t, srv, http.MethodPatch, "/usuarios/1/alias", `{"alias":"wonderland"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wonderland", env.Data.(map[string]any)["alias"])

	// Profile update.
	rec, env = doRequest(t, srv, http.MethodPut, "/usuarios/1",
		`{"name":"Alice Prime","role":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", env.Data.(map[string]any)["role"])
}

func TestInvalidIDParam(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodGet, "/movies/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodPost, "/movies", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}
