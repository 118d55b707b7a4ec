package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/skillforge/internal/concurrency"
	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/event"
	"github.com/osse101/skillforge/internal/logger"
	"github.com/osse101/skillforge/internal/metrics"
	"github.com/osse101/skillforge/internal/progression"
	"github.com/osse101/skillforge/internal/reward"
	"github.com/osse101/skillforge/internal/skill"
	"github.com/osse101/skillforge/internal/token"
)

// Service is the profile API consumed by gameplay listeners, command handlers
// and the HTTP adapter. Everything except the profile lifecycle calls acts on
// the owner's active profile.
type Service interface {
	CreateProfile(ctx context.Context, ownerID uuid.UUID, name string) (*Profile, error)
	GetProfiles(ctx context.Context, ownerID uuid.UUID) ([]*Profile, error)
	GetProfile(ctx context.Context, ownerID, profileID uuid.UUID) (*Profile, error)
	DeleteProfile(ctx context.Context, ownerID, profileID uuid.UUID) (bool, error)
	SetActiveProfile(ctx context.Context, ownerID, profileID uuid.UUID) (*Profile, error)
	GetActiveProfile(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	ClearActiveProfile(ctx context.Context, ownerID uuid.UUID) bool
	ActiveOwners() []uuid.UUID
	Update(ctx context.Context, ownerID uuid.UUID, fn func(p *Profile) error) (*Profile, error)

	GrantXP(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, amount int64) (skill.XPResult, error)
	GrantProfileXP(ctx context.Context, ownerID uuid.UUID, amount int64) (LevelResult, error)
	SetSkillLevel(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, level int) (skill.State, error)
	SetSkillXP(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, xp int64) (skill.State, error)
	TokenBalances(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) (token.Balances, error)
	UpgradeNode(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, nodeID string) (progression.UpgradeResult, error)
	ResetTree(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) (progression.ResetResult, error)
	SkillTreeView(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) ([]progression.NodeView, error)
	ClaimReward(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, tier int, rewardID string) (reward.Reward, error)
	ResetRewards(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) (int, error)
	RewardTreeView(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) ([]reward.TierView, error)
	RewardBonuses(ctx context.Context, ownerID uuid.UUID) (map[string]float64, error)

	GetStat(ctx context.Context, ownerID uuid.UUID, name string) (float64, error)
	SetStat(ctx context.Context, ownerID uuid.UUID, name string, value float64) error
	AddStat(ctx context.Context, ownerID uuid.UUID, name string, delta float64) (float64, error)
	UpdateLocation(ctx context.Context, ownerID uuid.UUID, loc domain.Location) error
	UpdateInventory(ctx context.Context, ownerID uuid.UUID, inv domain.Inventory) error
	AccruePlaytime(ctx context.Context, ownerID uuid.UUID, elapsed time.Duration) error
}

var tracer = otel.Tracer("github.com/osse101/skillforge/internal/profile")

// Manager implements Service. Mutations of one owner's profiles are serialized
// by a per-owner lock; different owners never contend. The active registry is
// owned by the Manager and never persisted.
type Manager struct {
	repo      Repository
	trees     *progression.Catalog
	rewards   *reward.Catalog
	registry  *ActiveRegistry
	locks     *concurrency.LockManager
	publisher event.Publisher
	now       func() time.Time
}

// NewManager wires a Manager. A nil publisher discards events.
func NewManager(repo Repository, trees *progression.Catalog, rewards *reward.Catalog, publisher event.Publisher) *Manager {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &Manager{
		repo:      repo,
		trees:     trees,
		rewards:   rewards,
		registry:  NewActiveRegistry(),
		locks:     concurrency.NewLockManager(),
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ Service = (*Manager)(nil)

// CreateProfile validates the name, enforces per-owner uniqueness and the slot
// cap, and persists a fresh profile.
func (m *Manager) CreateProfile(ctx context.Context, ownerID uuid.UUID, name string) (*Profile, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	var created *Profile
	err = m.locks.WithLock(ownerID, func() error {
		// stored documents that no longer decode still hold a slot
		stored, err := m.repo.Count(ctx, ownerID)
		if err != nil {
			return m.persistenceError(ctx, "count", err)
		}
		if stored >= MaxProfilesPerOwner {
			return fmt.Errorf("%w: owner already has %d profiles", domain.ErrProfileLimitReached, stored)
		}
		existing, err := m.repo.LoadAll(ctx, ownerID)
		if err != nil {
			return m.persistenceError(ctx, "load_all", err)
		}
		for _, p := range existing {
			if SameName(p.Name, name) {
				return fmt.Errorf("%w: %q", domain.ErrDuplicateProfileName, name)
			}
		}

		p := New(ownerID, name)
		p.CreatedAt = m.now()
		p.LastPlayedAt = p.CreatedAt
		if err := m.repo.Save(ctx, p); err != nil {
			return m.persistenceError(ctx, "save", err)
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.ForOwner(ctx, ownerID).Info(LogMsgProfileCreated, "profile_id", created.ID, "name", created.Name)
	m.publish(ctx, event.New(event.ProfileCreated, ownerID, created.ID, event.ProfilePayloadV1{Name: created.Name}))
	return created, nil
}

// GetProfiles lists the owner's profiles, most recently played first.
func (m *Manager) GetProfiles(ctx context.Context, ownerID uuid.UUID) ([]*Profile, error) {
	profiles, err := m.repo.LoadAll(ctx, ownerID)
	if err != nil {
		return nil, m.persistenceError(ctx, "load_all", err)
	}
	return profiles, nil
}

// GetProfile loads one profile.
func (m *Manager) GetProfile(ctx context.Context, ownerID, profileID uuid.UUID) (*Profile, error) {
	p, err := m.repo.Load(ctx, ownerID, profileID)
	if err != nil {
		return nil, m.persistenceError(ctx, "load", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	return p, nil
}

// DeleteProfile removes a profile. Deleting the active profile is allowed; the
// registry entry is dropped and the caller is expected to pick another.
func (m *Manager) DeleteProfile(ctx context.Context, ownerID, profileID uuid.UUID) (bool, error) {
	var deleted bool
	err := m.locks.WithLock(ownerID, func() error {
		ok, err := m.repo.Delete(ctx, ownerID, profileID)
		if err != nil {
			return m.persistenceError(ctx, "delete", err)
		}
		deleted = ok
		if ok {
			m.registry.CompareAndClear(ownerID, profileID)
		}
		return nil
	})
	if err != nil || !deleted {
		return false, err
	}

	logger.ForOwner(ctx, ownerID).Info(LogMsgProfileDeleted, "profile_id", profileID)
	m.publish(ctx, event.New(event.ProfileDeleted, ownerID, profileID, nil))
	return true, nil
}

// SetActiveProfile selects the profile the owner is playing and stamps its
// last played time.
func (m *Manager) SetActiveProfile(ctx context.Context, ownerID, profileID uuid.UUID) (*Profile, error) {
	var active *Profile
	err := m.locks.WithLock(ownerID, func() error {
		p, err := m.repo.Load(ctx, ownerID, profileID)
		if err != nil {
			return m.persistenceError(ctx, "load", err)
		}
		if p == nil {
			return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
		}
		p.LastPlayedAt = m.now()
		if err := m.repo.Save(ctx, p); err != nil {
			return m.persistenceError(ctx, "save", err)
		}
		m.registry.Set(ownerID, profileID)
		active = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.ForOwner(ctx, ownerID).Info(LogMsgProfileActivated, "profile_id", profileID)
	m.publish(ctx, event.New(event.ProfileActivated, ownerID, profileID, event.ProfilePayloadV1{Name: active.Name}))
	return active, nil
}

// GetActiveProfile loads the owner's active profile. A registry entry whose
// profile has since vanished from storage is dropped.
func (m *Manager) GetActiveProfile(ctx context.Context, ownerID uuid.UUID) (*Profile, error) {
	profileID, ok := m.registry.Get(ownerID)
	if !ok {
		return nil, domain.ErrNoActiveProfile
	}
	p, err := m.repo.Load(ctx, ownerID, profileID)
	if err != nil {
		return nil, m.persistenceError(ctx, "load", err)
	}
	if p == nil {
		m.registry.CompareAndClear(ownerID, profileID)
		return nil, domain.ErrNoActiveProfile
	}
	return p, nil
}

// ClearActiveProfile forgets the owner's selection, typically on disconnect.
func (m *Manager) ClearActiveProfile(ctx context.Context, ownerID uuid.UUID) bool {
	cleared := m.registry.Clear(ownerID)
	if cleared {
		logger.ForOwner(ctx, ownerID).Info(LogMsgProfileDeactivated)
	}
	return cleared
}

// ActiveOwners lists owners that currently have an active profile.
func (m *Manager) ActiveOwners() []uuid.UUID {
	return m.registry.Owners()
}

// Update is the single read-modify-write path for the active profile. fn runs
// on a private copy while the owner's lock is held; if fn fails nothing is
// saved. The saved profile is returned.
func (m *Manager) Update(ctx context.Context, ownerID uuid.UUID, fn func(p *Profile) error) (*Profile, error) {
	ctx, span := tracer.Start(ctx, "profile.Update", trace.WithAttributes(attribute.String("owner_id", ownerID.String())))
	defer span.End()

	var updated *Profile
	err := m.locks.WithLock(ownerID, func() error {
		p, err := m.GetActiveProfile(ctx, ownerID)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		if err := m.repo.Save(ctx, p); err != nil {
			return m.persistenceError(ctx, "save", err)
		}
		updated = p
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("profile_id", updated.ID.String()))
	return updated, nil
}

// view loads the active profile without taking the owner lock.
func (m *Manager) view(ctx context.Context, ownerID uuid.UUID) (*Profile, error) {
	return m.GetActiveProfile(ctx, ownerID)
}

func (m *Manager) persistenceError(ctx context.Context, op string, err error) error {
	metrics.RepositoryErrors.WithLabelValues(op).Inc()
	logger.FromContext(ctx).Error(LogMsgRepositoryFailed, "operation", op, "error", err)
	if errors.Is(err, domain.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
}

func (m *Manager) publish(ctx context.Context, evt event.Event) {
	if err := m.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
