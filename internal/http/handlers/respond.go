package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"aidforpaws/internal/domain"
	"aidforpaws/internal/middleware"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error  string        `json:"error"`
	Errors *fieldErrBody `json:"errors,omitempty"`
}

type fieldErrBody struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, errorBody{Error: msg})
}

func (a *App) validation(w http.ResponseWriter, verr *domain.ValidationError) {
	a.json(w, http.StatusBadRequest, errorBody{
		Error:  "validation failed",
		Errors: &fieldErrBody{FormErrors: []string{}, FieldErrors: verr.Fields},
	})
}

// fail maps a service error onto the response. subject names the resource in
// not-found messages; fallback is the generic message for unexpected errors.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, subject, fallback string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		a.validation(w, verr)
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, subject+" not found")
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrSignatureMismatch):
		a.error(w, http.StatusBadRequest, "Invalid payment signature")
	case errors.Is(err, domain.ErrDuplicatePayment):
		a.error(w, http.StatusConflict, "Payment already recorded")
	default:
		a.Logger.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("path", r.URL.Path).
			Msg(fallback)
		a.error(w, http.StatusInternalServerError, fallback)
	}
}

var errInvalidPayload = errors.New("invalid payload")

// decodeJSON reads exactly one JSON object into dst. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidPayload, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", errInvalidPayload)
	}
	return nil
}

func (a *App) badPayload(w http.ResponseWriter, err error) {
	a.Logger.Debug().Err(err).Msg("rejecting request body")
	a.error(w, http.StatusBadRequest, "Invalid request body")
}
