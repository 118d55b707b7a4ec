package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/skillforge/internal/database"
	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/profile"
)

// startPostgres runs a throwaway database, skipping the test when Docker is unavailable.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test: postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, connStr, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	require.NoError(t, database.Migrate(ctx, pool), "migrations are idempotent")
	return pool
}

func TestProfileRepository_Integration(t *testing.T) {
	pool := startPostgres(t)
	repo := NewProfileRepository(pool)
	ctx := context.Background()
	owner := uuid.New()

	t.Run("empty owner", func(t *testing.T) {
		list, err := repo.LoadAll(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, list)

		n, err := repo.Count(ctx, owner)
		require.NoError(t, err)
		assert.Zero(t, n)

		p, err := repo.Load(ctx, owner, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	base := time.Date(2026, 5, 6, 7, 8, 9, 123456789, time.UTC)
	older := profile.New(owner, "Older")
	older.LastPlayedAt = base
	newer := profile.New(owner, "Newer")
	newer.LastPlayedAt = base.Add(time.Hour)
	newer.TokenLedger.Add(domain.SkillCombat, domain.TierAdvanced, 3)

	t.Run("save and list", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, older))
		require.NoError(t, repo.Save(ctx, newer))

		list, err := repo.LoadAll(ctx, owner)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, older.ID, list[1].ID)

		n, err := repo.Count(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("round trip keeps nanoseconds", func(t *testing.T) {
		got, err := repo.Load(ctx, owner, older.ID)
		require.NoError(t, err)
		assert.Equal(t, older, got)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		newer.Name = "Renamed"
		require.NoError(t, repo.Save(ctx, newer))
		got, err := repo.Load(ctx, owner, newer.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, 3, got.TokenLedger.Count(domain.SkillCombat, domain.TierAdvanced))
	})

	t.Run("malformed rows are skipped", func(t *testing.T) {
		_, err := pool.Exec(ctx,
			`INSERT INTO profiles (owner_id, profile_id, name, last_played_at, document) VALUES ($1, $2, 'bad', NOW(), '{"level": "high"}')`,
			owner, uuid.New())
		require.NoError(t, err)

		list, err := repo.LoadAll(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("delete", func(t *testing.T) {
		ok, err := repo.Delete(ctx, owner, older.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Delete(ctx, owner, older.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("owners are isolated", func(t *testing.T) {
		list, err := repo.LoadAll(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
