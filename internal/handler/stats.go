package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/profile"
)

// StatHandlers serves stat, location and inventory endpoints used by admin
// commands and by game-side synchronization.
type StatHandlers struct {
	service profile.Service
}

// NewStatHandlers creates new stat handlers
func NewStatHandlers(service profile.Service) *StatHandlers {
	return &StatHandlers{service: service}
}

// SetStatRequest overwrites a stat
type SetStatRequest struct {
	Value *float64 `json:"value" validate:"required"`
}

// AddStatRequest adjusts a stat by delta
type AddStatRequest struct {
	Delta *float64 `json:"delta" validate:"required"`
}

// LocationRequest moves the active profile
type LocationRequest struct {
	WorldID string  `json:"world_id" validate:"required,max=64"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Yaw     float32 `json:"yaw"`
	Pitch   float32 `json:"pitch"`
}

// StatResponse is a single stat value
type StatResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// HandleListStats returns every stat on the active profile.
func (h *StatHandlers) HandleListStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		p, err := h.service.GetActiveProfile(r.Context(), owner)
		if err != nil {
			respondServiceError(w, r, "List stats", err)
			return
		}
		respondJSON(w, http.StatusOK, p.Stats.Snapshot())
	}
}

// HandleGetStat returns one stat.
func (h *StatHandlers) HandleGetStat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		name := chi.URLParam(r, ParamStat)
		v, err := h.service.GetStat(r.Context(), owner, name)
		if err != nil {
			respondServiceError(w, r, "Get stat", err)
			return
		}
		respondJSON(w, http.StatusOK, StatResponse{Name: name, Value: v})
	}
}

// HandleSetStat overwrites one stat.
func (h *StatHandlers) HandleSetStat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		name := chi.URLParam(r, ParamStat)
		var req SetStatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set stat"); err != nil {
			return
		}
		if err := h.service.SetStat(r.Context(), owner, name, *req.Value); err != nil {
			respondServiceError(w, r, "Set stat", err)
			return
		}
		respondJSON(w, http.StatusOK, StatResponse{Name: name, Value: *req.Value})
	}
}

// HandleAddStat adjusts one stat and returns its new value.
func (h *StatHandlers) HandleAddStat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		name := chi.URLParam(r, ParamStat)
		var req AddStatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add stat"); err != nil {
			return
		}
		v, err := h.service.AddStat(r.Context(), owner, name, *req.Delta)
		if err != nil {
			respondServiceError(w, r, "Add stat", err)
			return
		}
		respondJSON(w, http.StatusOK, StatResponse{Name: name, Value: v})
	}
}

// HandleUpdateLocation stores the player's position.
func (h *StatHandlers) HandleUpdateLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		var req LocationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update location"); err != nil {
			return
		}
		loc := domain.Location{WorldID: req.WorldID, X: req.X, Y: req.Y, Z: req.Z, Yaw: req.Yaw, Pitch: req.Pitch}
		if err := h.service.UpdateLocation(r.Context(), owner, loc); err != nil {
			respondServiceError(w, r, "Update location", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLocationUpdated})
	}
}

// HandleUpdateInventory replaces the stored inventory blobs.
func (h *StatHandlers) HandleUpdateInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		var req domain.Inventory
		if err := DecodeAndValidateRequest(r, w, &req, "Update inventory"); err != nil {
			return
		}
		if err := h.service.UpdateInventory(r.Context(), owner, req); err != nil {
			respondServiceError(w, r, "Update inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInventoryUpdated})
	}
}
