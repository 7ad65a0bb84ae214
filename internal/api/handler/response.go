package handler

import (
	"decision-engine/internal/api/handler/dto"
	"decision-engine/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		fallback, _ := json.Marshal(dto.ErrorResponse{Error: dto.ErrorDetail{Message: apperrors.ErrInternalServer.Error()}})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(fallback)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

// statusFor maps a decision error kind to the HTTP status returned to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNoValidLoan):
		return http.StatusNotFound
	case apperrors.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondDecisionError writes a REJECTED decision. Internal failures never
// leak their message.
func respondDecisionError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		if !errors.Is(err, apperrors.ErrInternalServer) {
			err = fmt.Errorf("%w: %w", apperrors.ErrInternalServer, err)
		}
		slog.Default().Error("Unhandled internal error", "error", err)
		message = "An unexpected error occurred."
	}
	respondJSON(w, status, dto.NewRejectedResponse(message))
}
