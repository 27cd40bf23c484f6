package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/courtside/internal/analytics"
	"github.com/mauv0809/courtside/internal/auth"
	"github.com/mauv0809/courtside/internal/boxscore"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/stats"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

const maxBodyBytes = 1 << 20

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, analytics.ErrInvalidArgument),
		errors.Is(err, boxscore.ErrUnsupportedGroup),
		errors.Is(err, auth.ErrInvalidUser),
		errors.Is(err, stats.ErrInvalidMinutes),
		errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, club.ErrPlayerNotFound),
		errors.Is(err, club.ErrGameNotFound),
		errors.Is(err, boxscore.ErrStatLineNotFound):
		status = http.StatusNotFound
	case errors.Is(err, club.ErrGameExists),
		errors.Is(err, boxscore.ErrDuplicateStatLine),
		errors.Is(err, boxscore.ErrUnknownReference),
		errors.Is(err, auth.ErrUserExists):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		respondError(w, status, "internal error")
		return
	}
	log.Debug("Request rejected", "error", err, "status", status, "path", r.URL.Path)
	respondError(w, status, err.Error())
}

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// parseID reads a positive integer route parameter.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, badRequest("invalid %s %q", param, raw)
	}
	return id, nil
}

// parseIntParam reads an integer query parameter, falling back to
// defaultValue when it is absent.
func parseIntParam(r *http.Request, param string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("%s must be an integer", param)
	}
	return v, nil
}

// decodeJSON decodes the request body into dest.
func decodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	return nil
}

// decodeStatFields decodes a JSON object with statistic keys in any
// supported spelling into dest. A numeric starter is read as a flag.
func decodeStatFields(r *http.Request, dest any) error {
	var raw map[string]any
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	if raw == nil {
		return badRequest("body must be a JSON object")
	}
	raw = stats.NormalizeKeys(raw)
	if n, ok := raw["starter"].(json.Number); ok {
		raw["starter"] = n.String() != "0"
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.NewDecoder(bytes.NewReader(normalized)).Decode(dest); err != nil {
		if errors.Is(err, stats.ErrInvalidMinutes) {
			return err
		}
		return badRequest("invalid stat line: %v", err)
	}
	return nil
}
