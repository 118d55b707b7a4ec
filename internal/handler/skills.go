package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/profile"
	"github.com/osse101/skillforge/internal/progression"
	"github.com/osse101/skillforge/internal/reward"
	"github.com/osse101/skillforge/internal/token"
)

// SkillHandlers serves XP, token, skill tree and reward tree endpoints. Every
// route acts on the owner's active profile.
type SkillHandlers struct {
	service profile.Service
}

// NewSkillHandlers creates new skill handlers
func NewSkillHandlers(service profile.Service) *SkillHandlers {
	return &SkillHandlers{service: service}
}

// GrantXPRequest awards XP
type GrantXPRequest struct {
	Amount int64 `json:"amount" validate:"gte=0"`
}

// SetLevelRequest is an admin override of a skill level
type SetLevelRequest struct {
	Level int `json:"level" validate:"min=1,max=100"`
}

// SetXPRequest is an admin override of the XP carried toward the next level
type SetXPRequest struct {
	XP int64 `json:"xp" validate:"gte=0"`
}

// ClaimRewardRequest picks one reward from a tier
type ClaimRewardRequest struct {
	Tier     int    `json:"tier" validate:"min=1"`
	RewardID string `json:"reward_id" validate:"required,max=64"`
}

// SkillView is one skill as shown to a player
type SkillView struct {
	Level     int            `json:"level"`
	CurrentXP int64          `json:"current_xp"`
	XPToNext  int64          `json:"xp_to_next"`
	TotalXP   int64          `json:"total_xp"`
	Tokens    token.Balances `json:"tokens"`
}

// SkillTreeResponse wraps a graph tree view
type SkillTreeResponse struct {
	Skill domain.Skill           `json:"skill"`
	Nodes []progression.NodeView `json:"nodes"`
}

// RewardTreeResponse wraps a reward tree view
type RewardTreeResponse struct {
	Skill domain.Skill      `json:"skill"`
	Tiers []reward.TierView `json:"tiers"`
}

// ResetRewardsResponse reports how many claims a reward reset cleared
type ResetRewardsResponse struct {
	Skill   domain.Skill `json:"skill"`
	Cleared int          `json:"cleared"`
}

// HandleListSkills returns every skill on the active profile.
func (h *SkillHandlers) HandleListSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		p, err := h.service.GetActiveProfile(r.Context(), owner)
		if err != nil {
			respondServiceError(w, r, "List skills", err)
			return
		}

		out := make(map[domain.Skill]SkillView, len(domain.AllSkills()))
		for _, sk := range domain.AllSkills() {
			st := p.Skills.Get(sk)
			balances := token.Balances{}
			for _, tier := range domain.AllTiers() {
				balances[tier] = p.TokenLedger.Count(sk, tier)
			}
			out[sk] = SkillView{
				Level:     st.Level,
				CurrentXP: st.CurrentXP,
				XPToNext:  st.XPToNext(),
				TotalXP:   st.TotalXP(),
				Tokens:    balances,
			}
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// HandleGrantXP awards skill XP, the entry point for gameplay listeners.
func (h *SkillHandlers) HandleGrantXP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		var req GrantXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant XP"); err != nil {
			return
		}
		res, err := h.service.GrantXP(r.Context(), owner, sk, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Grant XP", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGrantProfileXP awards XP to the profile-level track.
func (h *SkillHandlers) HandleGrantProfileXP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		var req GrantXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant profile XP"); err != nil {
			return
		}
		res, err := h.service.GrantProfileXP(r.Context(), owner, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Grant profile XP", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleSetLevel is the admin level override. No tokens are granted.
func (h *SkillHandlers) HandleSetLevel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		var req SetLevelRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set skill level"); err != nil {
			return
		}
		st, err := h.service.SetSkillLevel(r.Context(), owner, sk, req.Level)
		if err != nil {
			respondServiceError(w, r, "Set skill level", err)
			return
		}
		respondJSON(w, http.StatusOK, st)
	}
}

// HandleSetXP is the admin XP override.
func (h *SkillHandlers) HandleSetXP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		var req SetXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set skill XP"); err != nil {
			return
		}
		st, err := h.service.SetSkillXP(r.Context(), owner, sk, req.XP)
		if err != nil {
			respondServiceError(w, r, "Set skill XP", err)
			return
		}
		respondJSON(w, http.StatusOK, st)
	}
}

// HandleTokens returns the skill's balance at every tier.
func (h *SkillHandlers) HandleTokens() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		balances, err := h.service.TokenBalances(r.Context(), owner, sk)
		if err != nil {
			respondServiceError(w, r, "Token balances", err)
			return
		}
		respondJSON(w, http.StatusOK, balances)
	}
}

// HandleTree returns the graph skill tree as the player sees it.
func (h *SkillHandlers) HandleTree() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		nodes, err := h.service.SkillTreeView(r.Context(), owner, sk)
		if err != nil {
			respondServiceError(w, r, "Skill tree", err)
			return
		}
		respondJSON(w, http.StatusOK, SkillTreeResponse{Skill: sk, Nodes: nodes})
	}
}

// HandleUpgradeNode buys the next level of a node.
func (h *SkillHandlers) HandleUpgradeNode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		res, err := h.service.UpgradeNode(r.Context(), owner, sk, chi.URLParam(r, ParamNodeID))
		if err != nil {
			respondServiceError(w, r, "Upgrade node", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleResetTree refunds and relocks every resettable node.
func (h *SkillHandlers) HandleResetTree() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		res, err := h.service.ResetTree(r.Context(), owner, sk)
		if err != nil {
			respondServiceError(w, r, "Reset tree", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleRewards returns the reward tree with tier status.
func (h *SkillHandlers) HandleRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		tiers, err := h.service.RewardTreeView(r.Context(), owner, sk)
		if err != nil {
			respondServiceError(w, r, "Reward tree", err)
			return
		}
		respondJSON(w, http.StatusOK, RewardTreeResponse{Skill: sk, Tiers: tiers})
	}
}

// HandleClaimReward claims one reward from a tier.
func (h *SkillHandlers) HandleClaimReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		var req ClaimRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim reward"); err != nil {
			return
		}
		rw, err := h.service.ClaimReward(r.Context(), owner, sk, req.Tier, req.RewardID)
		if err != nil {
			respondServiceError(w, r, "Claim reward", err)
			return
		}
		respondJSON(w, http.StatusOK, rw)
	}
}

// HandleResetRewards clears every claim for the skill.
func (h *SkillHandlers) HandleResetRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		sk, ok := skillParam(w, r)
		if !ok {
			return
		}
		n, err := h.service.ResetRewards(r.Context(), owner, sk)
		if err != nil {
			respondServiceError(w, r, "Reset rewards", err)
			return
		}
		respondJSON(w, http.StatusOK, ResetRewardsResponse{Skill: sk, Cleared: n})
	}
}

// HandleBonuses sums stat bonuses from every claimed reward.
func (h *SkillHandlers) HandleBonuses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerParam(w, r)
		if !ok {
			return
		}
		bonuses, err := h.service.RewardBonuses(r.Context(), owner)
		if err != nil {
			respondServiceError(w, r, "Reward bonuses", err)
			return
		}
		respondJSON(w, http.StatusOK, bonuses)
	}
}
