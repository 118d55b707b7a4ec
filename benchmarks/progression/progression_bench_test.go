package progression_bench

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/database/filestore"
	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/event"
	"github.com/osse101/skillforge/internal/profile"
	"github.com/osse101/skillforge/internal/progression"
	"github.com/osse101/skillforge/internal/reward"
	"github.com/osse101/skillforge/internal/skill"
	"github.com/osse101/skillforge/internal/token"
)

func BenchmarkAddXP_SingleLevel(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		skill.AddXP(10, 0, 50)
	}
}

// One grant that crosses the whole curve exercises the level loop and the
// integer sqrt at every step.
func BenchmarkAddXP_FullCurve(b *testing.B) {
	total := skill.TotalXPForLevel(skill.MaxLevel)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		skill.AddXP(1, 0, total)
	}
}

func BenchmarkLedger_SpendMixedTiers(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := token.NewLedger()
		l.Add(domain.SkillMining, domain.TierBasic, 3)
		l.Add(domain.SkillMining, domain.TierAdvanced, 3)
		l.Add(domain.SkillMining, domain.TierMaster, 3)
		l.Spend(domain.SkillMining, domain.TierBasic, 7)
	}
}

func newManager(b *testing.B, repo profile.Repository) (*profile.Manager, uuid.UUID) {
	b.Helper()
	trees, err := progression.DefaultCatalog()
	if err != nil {
		b.Fatal(err)
	}
	rewards, err := reward.DefaultCatalog()
	if err != nil {
		b.Fatal(err)
	}
	mgr := profile.NewManager(repo, trees, rewards, event.NopPublisher{})

	ctx := context.Background()
	owner := uuid.New()
	p, err := mgr.CreateProfile(ctx, owner, "Bench")
	if err != nil {
		b.Fatal(err)
	}
	if _, err := mgr.SetActiveProfile(ctx, owner, p.ID); err != nil {
		b.Fatal(err)
	}
	return mgr, owner
}

func BenchmarkManager_GrantXP_Memory(b *testing.B) {
	mgr, owner := newManager(b, profile.NewFakeRepository())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mgr.GrantXP(ctx, owner, domain.SkillFishing, 10); err != nil {
			b.Fatal(err)
		}
	}
}

// Every mutation rewrites the profile document atomically
func BenchmarkManager_GrantXP_FileStore(b *testing.B) {
	store, err := filestore.New(b.TempDir())
	if err != nil {
		b.Fatal(err)
	}
	mgr, owner := newManager(b, store)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mgr.GrantXP(ctx, owner, domain.SkillFishing, 10); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkManager_GrantXP_ParallelOwners(b *testing.B) {
	trees, err := progression.DefaultCatalog()
	if err != nil {
		b.Fatal(err)
	}
	rewards, err := reward.DefaultCatalog()
	if err != nil {
		b.Fatal(err)
	}
	mgr := profile.NewManager(profile.NewFakeRepository(), trees, rewards, event.NopPublisher{})
	ctx := context.Background()

	b.RunParallel(func(pb *testing.PB) {
		owner := uuid.New()
		p, err := mgr.CreateProfile(ctx, owner, "Bench")
		if err != nil {
			b.Error(err)
			return
		}
		if _, err := mgr.SetActiveProfile(ctx, owner, p.ID); err != nil {
			b.Error(err)
			return
		}
		for pb.Next() {
			if _, err := mgr.GrantXP(ctx, owner, domain.SkillCombat, 10); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
