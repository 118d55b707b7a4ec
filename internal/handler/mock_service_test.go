package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/profile"
	"github.com/osse101/skillforge/internal/progression"
	"github.com/osse101/skillforge/internal/reward"
	"github.com/osse101/skillforge/internal/skill"
	"github.com/osse101/skillforge/internal/token"
)

type mockService struct {
	mock.Mock
}

var _ profile.Service = (*mockService)(nil)

func (m *mockService) CreateProfile(ctx context.Context, ownerID uuid.UUID, name string) (*profile.Profile, error) {
	args := m.Called(ctx, ownerID, name)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *mockService) GetProfiles(ctx context.Context, ownerID uuid.UUID) ([]*profile.Profile, error) {
	args := m.Called(ctx, ownerID)
	ps, _ := args.Get(0).([]*profile.Profile)
	return ps, args.Error(1)
}

func (m *mockService) GetProfile(ctx context.Context, ownerID, profileID uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, ownerID, profileID)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *mockService) DeleteProfile(ctx context.Context, ownerID, profileID uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *mockService) SetActiveProfile(ctx context.Context, ownerID, profileID uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, ownerID, profileID)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *mockService) GetActiveProfile(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, ownerID)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *mockService) ClearActiveProfile(ctx context.Context, ownerID uuid.UUID) bool {
	return m.Called(ctx, ownerID).Bool(0)
}

func (m *mockService) ActiveOwners() []uuid.UUID {
	owners, _ := m.Called().Get(0).([]uuid.UUID)
	return owners
}

func (m *mockService) Update(ctx context.Context, ownerID uuid.UUID, fn func(p *profile.Profile) error) (*profile.Profile, error) {
	args := m.Called(ctx, ownerID, fn)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *mockService) GrantXP(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, amount int64) (skill.XPResult, error) {
	args := m.Called(ctx, ownerID, sk, amount)
	res, _ := args.Get(0).(skill.XPResult)
	return res, args.Error(1)
}

func (m *mockService) GrantProfileXP(ctx context.Context, ownerID uuid.UUID, amount int64) (profile.LevelResult, error) {
	args := m.Called(ctx, ownerID, amount)
	res, _ := args.Get(0).(profile.LevelResult)
	return res, args.Error(1)
}

func (m *mockService) SetSkillLevel(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, level int) (skill.State, error) {
	args := m.Called(ctx, ownerID, sk, level)
	st, _ := args.Get(0).(skill.State)
	return st, args.Error(1)
}

func (m *mockService) SetSkillXP(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, xp int64) (skill.State, error) {
	args := m.Called(ctx, ownerID, sk, xp)
	st, _ := args.Get(0).(skill.State)
	return st, args.Error(1)
}

func (m *mockService) TokenBalances(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) (token.Balances, error) {
	args := m.Called(ctx, ownerID, sk)
	b, _ := args.Get(0).(token.Balances)
	return b, args.Error(1)
}

func (m *mockService) UpgradeNode(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, nodeID string) (progression.UpgradeResult, error) {
	args := m.Called(ctx, ownerID, sk, nodeID)
	res, _ := args.Get(0).(progression.UpgradeResult)
	return res, args.Error(1)
}

func (m *mockService) ResetTree(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) (progression.ResetResult, error) {
	args := m.Called(ctx, ownerID, sk)
	res, _ := args.Get(0).(progression.ResetResult)
	return res, args.Error(1)
}

func (m *mockService) SkillTreeView(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) ([]progression.NodeView, error) {
	args := m.Called(ctx, ownerID, sk)
	nodes, _ := args.Get(0).([]progression.NodeView)
	return nodes, args.Error(1)
}

func (m *mockService) ClaimReward(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, tier int, rewardID string) (reward.Reward, error) {
	args := m.Called(ctx, ownerID, sk, tier, rewardID)
	rw, _ := args.Get(0).(reward.Reward)
	return rw, args.Error(1)
}

func (m *mockService) ResetRewards(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) (int, error) {
	args := m.Called(ctx, ownerID, sk)
	return args.Int(0), args.Error(1)
}

func (m *mockService) RewardTreeView(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) ([]reward.TierView, error) {
	args := m.Called(ctx, ownerID, sk)
	tiers, _ := args.Get(0).([]reward.TierView)
	return tiers, args.Error(1)
}

func (m *mockService) RewardBonuses(ctx context.Context, ownerID uuid.UUID) (map[string]float64, error) {
	args := m.Called(ctx, ownerID)
	b, _ := args.Get(0).(map[string]float64)
	return b, args.Error(1)
}

func (m *mockService) GetStat(ctx context.Context, ownerID uuid.UUID, name string) (float64, error) {
	args := m.Called(ctx, ownerID, name)
	v, _ := args.Get(0).(float64)
	return v, args.Error(1)
}

func (m *mockService) SetStat(ctx context.Context, ownerID uuid.UUID, name string, value float64) error {
	return m.Called(ctx, ownerID, name, value).Error(0)
}

func (m *mockService) AddStat(ctx context.Context, ownerID uuid.UUID, name string, delta float64) (float64, error) {
	args := m.Called(ctx, ownerID, name, delta)
	v, _ := args.Get(0).(float64)
	return v, args.Error(1)
}

func (m *mockService) UpdateLocation(ctx context.Context, ownerID uuid.UUID, loc domain.Location) error {
	return m.Called(ctx, ownerID, loc).Error(0)
}

func (m *mockService) UpdateInventory(ctx context.Context, ownerID uuid.UUID, inv domain.Inventory) error {
	return m.Called(ctx, ownerID, inv).Error(0)
}

func (m *mockService) AccruePlaytime(ctx context.Context, ownerID uuid.UUID, elapsed time.Duration) error {
	return m.Called(ctx, ownerID, elapsed).Error(0)
}

// serve runs one request through a router carrying every profile route.
func serve(svc profile.Service, method, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, nil)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
