package filestore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/profile"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	return s, dir
}

func TestNew_RequiresDir(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()

	p := profile.New(uuid.New(), "Miner")
	p.LastPlayedAt = time.Date(2026, 5, 6, 7, 8, 9, 123456789, time.UTC)
	p.Location = domain.Location{WorldID: "nether", X: 1.5, Y: 64, Z: -3, Yaw: 90, Pitch: 10}
	p.Inventory.Items = []string{"diamond_pickaxe{efficiency:5}"}
	p.TokenLedger.Add(domain.SkillMining, domain.TierAdvanced, 3)
	require.NoError(t, p.Skills.SetLevel(domain.SkillMining, 12))
	_, err := p.Stats.Add(domain.StatBlocksMined, 40)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, p))

	path := filepath.Join(dir, ProfilesDir, p.OwnerID.String(), p.ID.String()+DocumentExt)
	assert.FileExists(t, path)

	got, err := s.Load(ctx, p.OwnerID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestStore_LoadMissing(t *testing.T) {
	s, _ := newStore(t)

	got, err := s.Load(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_MissingOwnerDirIsEmpty(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	all, err := s.LoadAll(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, all)

	n, err := s.Count(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_LoadAllSortedAndSkipsJunk(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()
	owner := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	older := profile.New(owner, "Older")
	older.LastPlayedAt = base
	newer := profile.New(owner, "Newer")
	newer.LastPlayedAt = base.Add(time.Hour)
	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	ownerDir := filepath.Join(dir, ProfilesDir, owner.String())
	require.NoError(t, os.WriteFile(filepath.Join(ownerDir, uuid.NewString()+DocumentExt), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ownerDir, ".tmp-123"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ownerDir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(ownerDir, "nested"), 0o755))

	// A document copied under the wrong file name is rejected.
	doc, err := os.ReadFile(filepath.Join(ownerDir, older.ID.String()+DocumentExt))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(ownerDir, uuid.NewString()+DocumentExt), doc, 0o644))

	all, err := s.LoadAll(ctx, owner)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)

	// Count sees every {uuid}.json document, readable or not.
	n, err := s.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestStore_LoadMalformedIsPersistenceError(t *testing.T) {
	s, dir := newStore(t)
	owner, id := uuid.New(), uuid.New()
	ownerDir := filepath.Join(dir, ProfilesDir, owner.String())
	require.NoError(t, os.MkdirAll(ownerDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ownerDir, id.String()+DocumentExt), []byte("[]"), 0o644))

	_, err := s.Load(context.Background(), owner, id)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestStore_OverwriteLeavesNoTempFiles(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()
	p := profile.New(uuid.New(), "Slot")

	for i := 0; i < 5; i++ {
		p.Experience = int64(i)
		require.NoError(t, s.Save(ctx, p))
	}

	entries, err := os.ReadDir(filepath.Join(dir, ProfilesDir, p.OwnerID.String()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, p.ID.String()+DocumentExt, entries[0].Name())

	got, err := s.Load(ctx, p.OwnerID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Experience)
}

func TestStore_SaveFailureKeepsPreviousDocument(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()
	p := profile.New(uuid.New(), "Slot")
	require.NoError(t, s.Save(ctx, p))

	// A directory at the temp location's parent cannot be written once it is read-only.
	ownerDir := filepath.Join(dir, ProfilesDir, p.OwnerID.String())
	require.NoError(t, os.Chmod(ownerDir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(ownerDir, 0o755) })
	if f, err := os.CreateTemp(ownerDir, "write-check"); err == nil {
		// Running as root ignores directory permissions.
		_ = f.Close()
		_ = os.Remove(f.Name())
		t.Skip("directory permissions are not enforced")
	}

	p.Experience = 99
	err := s.Save(ctx, p)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	got, err := s.Load(ctx, p.OwnerID, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Experience)
}

func TestStore_Delete(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	p := profile.New(uuid.New(), "Gone")
	require.NoError(t, s.Save(ctx, p))

	ok, err := s.Delete(ctx, p.OwnerID, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(ctx, p.OwnerID, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.Load(ctx, p.OwnerID, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ConcurrentOwners(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	const owners = 20
	var wg sync.WaitGroup
	errs := make(chan error, owners)
	ids := make([]uuid.UUID, owners)
	for i := range ids {
		ids[i] = uuid.New()
	}
	for _, owner := range ids {
		wg.Add(1)
		go func(owner uuid.UUID) {
			defer wg.Done()
			errs <- s.Save(ctx, profile.New(owner, "Main"))
		}(owner)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	for _, owner := range ids {
		n, err := s.Count(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}
}

func TestStore_CancelledContext(t *testing.T) {
	s, _ := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Save(ctx, profile.New(uuid.New(), "x")), context.Canceled)
	_, err := s.LoadAll(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}
