package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   ErrorBody `json:"error"`
}

// respondOK sends a success envelope
func respondOK(w http.ResponseWriter, status int, message string, data any) {
	respondWithJSON(w, status, SuccessResponse{Success: true, Message: message, Data: data})
}

// respondWithError sends a failure envelope
func respondWithError(w http.ResponseWriter, status int, message, code string, details any) {
	respondWithJSON(w, status, ErrorResponse{
		Message: message,
		Error:   ErrorBody{Code: code, Details: details},
	})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeError translates err into the failure envelope. Unrecognized errors
// are logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		appErr   *domain.AppError
		fieldErr *domain.ValidationError
		fieldSet domain.ValidationErrors
	)

	switch {
	case errors.As(err, &appErr):
		respondWithError(w, appErr.StatusCode(), appErr.Message, appErr.ErrorCode(), appErr.Details)
	case errors.As(err, &fieldSet):
		respondWithError(w, http.StatusUnprocessableEntity, "Request validation failed", "validation_error", fieldSet)
	case errors.As(err, &fieldErr):
		respondWithError(w, http.StatusBadRequest, fieldErr.Error(), "validation_error", domain.ValidationErrors{fieldErr})
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error(), "validation_error", nil)
	case errors.Is(err, domain.ErrConflict):
		respondWithError(w, http.StatusConflict, conflictMessage(err), "conflict", nil)
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, notFoundMessage(err), "not_found", nil)
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAccountDisabled):
		respondWithError(w, http.StatusUnauthorized, "Authentication failed", "unauthorized", nil)
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden", "forbidden", nil)
	case errors.Is(err, context.DeadlineExceeded):
		slog.WarnContext(r.Context(), "request timed out", "error", err, "requestID", chimw.GetReqID(r.Context()))
		respondWithError(w, http.StatusGatewayTimeout, "Request timed out", "timeout", nil)
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err, "requestID", chimw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "internal_error", nil)
	}
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrSubmissionNotPending):
		return domain.ErrSubmissionNotPending.Error()
	case errors.Is(err, domain.ErrDuplicateClub):
		return domain.ErrDuplicateClub.Error()
	case errors.Is(err, domain.ErrAdminExists):
		return domain.ErrAdminExists.Error()
	}
	return "Conflict"
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrClubNotFound):
		return domain.ErrClubNotFound.Error()
	case errors.Is(err, domain.ErrSubmissionNotFound):
		return domain.ErrSubmissionNotFound.Error()
	}
	return "Not found"
}

// decodeJSON reads a single JSON document from the request body into dst.
// Malformed bodies are reported as request validation failures.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.ValidationErrors{domain.NewValidationError("body", "request body must be a single JSON document")}
	}
	return nil
}

func bodyError(err error) error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		sizeErr   *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		return domain.ValidationErrors{domain.NewValidationError("body", "request body is required")}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domain.ValidationErrors{domain.NewValidationError(typeErr.Field, fmt.Sprintf("must be of type %s", typeErr.Type))}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.ValidationErrors{domain.NewValidationError("body", "request body is not valid JSON")}
	case errors.As(err, &sizeErr):
		return domain.ValidationErrors{domain.NewValidationError("body", "request body is too large")}
	}
	return domain.ValidationErrors{domain.NewValidationError("body", err.Error())}
}

// idParam parses a positive numeric URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// queryInt reads an integer query parameter. Absent or malformed values
// read as zero so the service defaults apply.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}

// reviewer returns the authenticated reviewer's username.
func reviewer(r *http.Request) (string, error) {
	rv, ok := middleware.ReviewerFromContext(r.Context())
	if !ok || rv.Username == "" {
		return "", domain.ErrUnauthorized
	}
	return rv.Username, nil
}

// Health reports that the process is serving.
func Health(w http.ResponseWriter, r *http.Request) {
	respondOK(w, http.StatusOK, "ok", nil)
}
