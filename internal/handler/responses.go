package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps err to a status and message, logging server-side
// failures at Error and expected rejections at Debug.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+": service error", "error", err)
	} else {
		log.Debug(op+": rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Expected gameplay rejections use 422 so clients can tell them from malformed input.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	// Validation
	case errors.Is(err, domain.ErrInvalidProfileName):
		return http.StatusBadRequest, ErrMsgInvalidNameError
	case errors.Is(err, domain.ErrUnknownSkill):
		return http.StatusBadRequest, ErrMsgUnknownSkillError
	case errors.Is(err, domain.ErrUnknownStat):
		return http.StatusBadRequest, ErrMsgUnknownStatError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError

	// Not found
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrNoActiveProfile):
		return http.StatusNotFound, ErrMsgNoActiveProfileError
	case errors.Is(err, domain.ErrNodeNotFound):
		return http.StatusNotFound, ErrMsgNodeNotFoundError
	case errors.Is(err, domain.ErrTierNotFound):
		return http.StatusNotFound, ErrMsgTierNotFoundError
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError

	// Capacity
	case errors.Is(err, domain.ErrDuplicateProfileName):
		return http.StatusConflict, ErrMsgDuplicateNameError
	case errors.Is(err, domain.ErrProfileLimitReached):
		return http.StatusConflict, ErrMsgProfileLimitError

	// Gameplay rejections
	case errors.Is(err, domain.ErrNodeNotEligible):
		return http.StatusUnprocessableEntity, ErrMsgNodeNotEligibleError
	case errors.Is(err, domain.ErrInsufficientTokens):
		return http.StatusUnprocessableEntity, ErrMsgInsufficientTokensErr
	case errors.Is(err, domain.ErrNodeMaxLevel):
		return http.StatusUnprocessableEntity, ErrMsgNodeMaxLevelError
	case errors.Is(err, domain.ErrTierLocked):
		return http.StatusUnprocessableEntity, ErrMsgTierLockedError
	case errors.Is(err, domain.ErrTierComplete):
		return http.StatusUnprocessableEntity, ErrMsgTierCompleteError
	case errors.Is(err, domain.ErrRewardAlreadyClaimed):
		return http.StatusUnprocessableEntity, ErrMsgRewardAlreadyClaimedEr

	case errors.Is(err, domain.ErrPersistence):
		return http.StatusServiceUnavailable, ErrMsgStorageUnavailable
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
