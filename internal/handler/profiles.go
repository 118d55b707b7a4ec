package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/profile"
)

// ProfileHandlers serves profile lifecycle and session endpoints.
type ProfileHandlers struct {
	service profile.Service
}

// NewProfileHandlers creates new profile handlers
func NewProfileHandlers(service profile.Service) *ProfileHandlers {
	return &ProfileHandlers{service: service}
}

// CreateProfileRequest is the body of POST /owners/{ownerID}/profiles
type CreateProfileRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

// SetActiveProfileRequest is the body of PUT /owners/{ownerID}/active
type SetActiveProfileRequest struct {
	ProfileID uuid.UUID `json:"profile_id" validate:"required"`
}

// ProfileListResponse lists an owner's profiles, most recently played first
type ProfileListResponse struct {
	Profiles []*profile.Profile `json:"profiles"`
	Active   *uuid.UUID         `json:"active_profile_id,omitempty"`
	Limit    int                `json:"limit"`
}

// DeleteProfileResponse reports whether the deleted profile was the active one
type DeleteProfileResponse struct {
	Message string `json:"message"`
}

// HandleCreate creates a profile for the owner.
func (h *ProfileHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		var req CreateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create profile"); err != nil {
			return
		}

		p, err := h.service.CreateProfile(r.Context(), owner, req.Name)
		if err != nil {
			respondServiceError(w, r, "Create profile", err)
			return
		}
		respondJSON(w, http.StatusCreated, p)
	}
}

// HandleList returns every profile the owner holds.
func (h *ProfileHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		profiles, err := h.service.GetProfiles(r.Context(), owner)
		if err != nil {
			respondServiceError(w, r, "List profiles", err)
			return
		}

		resp := ProfileListResponse{Profiles: profiles, Limit: profile.MaxProfilesPerOwner}
		if active, err := h.service.GetActiveProfile(r.Context(), owner); err == nil {
			resp.Active = &active.ID
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGet returns one profile.
func (h *ProfileHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		id, ok := profileParam(w, r)
		if !ok {
			return
		}
		p, err := h.service.GetProfile(r.Context(), owner, id)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleDelete removes a profile. Deleting the active profile is allowed; the
// session is left without an active profile.
func (h *ProfileHandlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		id, ok := profileParam(w, r)
		if !ok {
			return
		}
		deleted, err := h.service.DeleteProfile(r.Context(), owner, id)
		if err != nil {
			respondServiceError(w, r, "Delete profile", err)
			return
		}
		if !deleted {
			respondError(w, http.StatusNotFound, ErrMsgProfileNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DeleteProfileResponse{Message: MsgProfileDeleted})
	}
}

// HandleSetActive selects the profile the owner plays with.
func (h *ProfileHandlers) HandleSetActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		var req SetActiveProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set active profile"); err != nil {
			return
		}
		p, err := h.service.SetActiveProfile(r.Context(), owner, req.ProfileID)
		if err != nil {
			respondServiceError(w, r, "Set active profile", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetActive returns the owner's active profile.
func (h *ProfileHandlers) HandleGetActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		p, err := h.service.GetActiveProfile(r.Context(), owner)
		if err != nil {
			respondServiceError(w, r, "Get active profile", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleClearActive ends the owner's session.
func (h *ProfileHandlers) HandleClearActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		h.service.ClearActiveProfile(r.Context(), owner)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgActiveProfileClear})
	}
}
