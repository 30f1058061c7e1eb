package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error     string       `json:"error"`
	Code      string       `json:"code,omitempty"`
	Retryable bool         `json:"retryable,omitempty"`
	Remaining *int         `json:"remaining,omitempty"`
	Fields    []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// decodeJSON reads a bounded JSON body into v. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "invalid_body")
		return false
	}
	return true
}

// handleError maps service errors to HTTP responses. Only unexpected
// errors are logged; their details never reach the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation failed", Code: "validation_failed"}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation failed", "validation_failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "login required", "login_required")
	case errors.Is(err, domain.ErrQuotaExceeded):
		zero := 0
		writeJSON(w, http.StatusPaymentRequired, errorResponse{
			Error:     "letter limit reached, upgrade your plan to generate more letters",
			Code:      "quota_exceeded",
			Remaining: &zero,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", "not_found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "request conflicts with an earlier one", "conflict")
	case domain.IsStrategyGap(err):
		writeError(w, http.StatusUnprocessableEntity, "this letter is coming soon", "coming_soon")
	case errors.Is(err, domain.ErrGenerationFailed):
		log.WarnContext(r.Context(), "letter generation failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:     "letter generation is temporarily unavailable",
			Code:      "generation_failed",
			Retryable: true,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:     "request cancelled",
			Code:      "cancelled",
			Retryable: true,
		})
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error", "internal")
	}
}
