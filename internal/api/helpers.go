package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
	"github.com/cinelog/cinelog-server/internal/http/response"
)

// decode reads the request body into dst using json/v2. A malformed body is a
// validation error carrying the decoder's message.
func decode(r *http.Request, dst any) error {
	if err := json.UnmarshalRead(r.Body, dst); err != nil {
		return domainerrors.Validation("invalid request body").WithCause(err)
	}
	return nil
}

// idParam parses the {id} URL parameter as a positive integer.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.Validationf("invalid id %q", raw)
	}
	return id, nil
}

// fail writes the error response for a failed operation.
func (s *Server) fail(w http.ResponseWriter, err error) {
	response.HandleError(w, err, s.logger)
}
