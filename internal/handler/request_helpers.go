package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/logger"
)

// URL parameter names
const (
	ParamOwnerID   = "ownerID"
	ParamProfileID = "profileID"
	ParamSkill     = "skill"
	ParamNodeID    = "nodeID"
	ParamStat      = "stat"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written and the
// handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Debug(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// uuidParam parses a UUID route parameter, writing a 400 when it is malformed.
func uuidParam(w http.ResponseWriter, r *http.Request, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, msg)
		return uuid.Nil, false
	}
	return id, true
}

func ownerParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return uuidParam(w, r, ParamOwnerID, ErrMsgInvalidOwnerID)
}

func profileParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return uuidParam(w, r, ParamProfileID, ErrMsgInvalidProfileID)
}

func skillParam(w http.ResponseWriter, r *http.Request) (domain.Skill, bool) {
	sk, err := domain.ParseSkill(chi.URLParam(r, ParamSkill))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSkill)
		return 0, false
	}
	return sk, true
}
