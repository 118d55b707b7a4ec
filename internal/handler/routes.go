package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/skillforge/internal/profile"
)

// RegisterRoutes mounts every profile route under r. Routes are relative so
// the caller chooses the version prefix. A non-nil events handler is served
// at /owners/{ownerID}/events.
func RegisterRoutes(r chi.Router, svc profile.Service, events http.Handler) {
	profiles := NewProfileHandlers(svc)
	skills := NewSkillHandlers(svc)
	stats := NewStatHandlers(svc)

	r.Route("/owners/{"+ParamOwnerID+"}", func(r chi.Router) {
		r.Post("/profiles", profiles.HandleCreate())
		r.Get("/profiles", profiles.HandleList())
		r.Get("/profiles/{"+ParamProfileID+"}", profiles.HandleGet())
		r.Delete("/profiles/{"+ParamProfileID+"}", profiles.HandleDelete())

		r.Put("/active", profiles.HandleSetActive())
		r.Get("/active", profiles.HandleGetActive())
		r.Delete("/active", profiles.HandleClearActive())

		if events != nil {
			r.Method(http.MethodGet, "/events", events)
		}

		r.Post("/profile-xp", skills.HandleGrantProfileXP())
		r.Get("/skills", skills.HandleListSkills())
		r.Get("/bonuses", skills.HandleBonuses())
		r.Route("/skills/{"+ParamSkill+"}", func(r chi.Router) {
			r.Post("/xp", skills.HandleGrantXP())
			r.Put("/xp", skills.HandleSetXP())
			r.Put("/level", skills.HandleSetLevel())
			r.Get("/tokens", skills.HandleTokens())

			r.Get("/tree", skills.HandleTree())
			r.Post("/tree/nodes/{"+ParamNodeID+"}/upgrade", skills.HandleUpgradeNode())
			r.Post("/tree/reset", skills.HandleResetTree())

			r.Get("/rewards", skills.HandleRewards())
			r.Post("/rewards/claim", skills.HandleClaimReward())
			r.Post("/rewards/reset", skills.HandleResetRewards())
		})

		r.Get("/stats", stats.HandleListStats())
		r.Get("/stats/{"+ParamStat+"}", stats.HandleGetStat())
		r.Put("/stats/{"+ParamStat+"}", stats.HandleSetStat())
		r.Post("/stats/{"+ParamStat+"}/add", stats.HandleAddStat())
		r.Put("/location", stats.HandleUpdateLocation())
		r.Put("/inventory", stats.HandleUpdateInventory())
	})
}
