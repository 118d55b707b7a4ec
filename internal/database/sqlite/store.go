// Package sqlite provides a single-file SQLite profile repository for
// deployments that want transactional storage without a database server.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/logger"
	"github.com/osse101/skillforge/internal/profile"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store persists profile documents in SQLite.
type Store struct {
	db *sql.DB
}

var _ profile.Repository = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: sqlite path is required", domain.ErrInvalidInput)
	}
	db, err := sql.Open(DriverName, filepath.Clean(path)+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load sqlite migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, sub)
	if err != nil {
		return fmt.Errorf("load sqlite migrations: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("run sqlite migrations: %w", err)
	}
	for _, r := range results {
		logger.FromContext(ctx).Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts the document in one statement, so a failed write leaves the
// previous row intact.
func (s *Store) Save(ctx context.Context, p *profile.Profile) error {
	doc, err := profile.Encode(p)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (owner_id, profile_id, name, last_played_at, document, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, profile_id) DO UPDATE SET
		    name = excluded.name,
		    last_played_at = excluded.last_played_at,
		    document = excluded.document,
		    updated_at = excluded.updated_at`,
		p.OwnerID.String(), p.ID.String(), p.Name, p.LastPlayedAt.UnixNano(), string(doc), time.Now().UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("%w: save profile %s: %w", domain.ErrPersistence, p.ID, err)
	}
	return nil
}

// Load returns (nil, nil) when no row exists.
func (s *Store) Load(ctx context.Context, ownerID, profileID uuid.UUID) (*profile.Profile, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM profiles WHERE owner_id = ? AND profile_id = ?`,
		ownerID.String(), profileID.String(),
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load profile %s: %w", domain.ErrPersistence, profileID, err)
	}
	p, err := profile.Decode([]byte(doc), ownerID, profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return p, nil
}

// LoadAll skips rows whose document no longer decodes.
func (s *Store) LoadAll(ctx context.Context, ownerID uuid.UUID) ([]*profile.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT profile_id, document FROM profiles WHERE owner_id = ? ORDER BY last_played_at DESC`,
		ownerID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list profiles: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()

	out := []*profile.Profile{}
	for rows.Next() {
		var rawID, doc string
		if err := rows.Scan(&rawID, &doc); err != nil {
			return nil, fmt.Errorf("%w: scan profile row: %w", domain.ErrPersistence, err)
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgSkippingMalformedProfile, "owner_id", ownerID, "profile_id", rawID, "error", err)
			continue
		}
		p, err := profile.Decode([]byte(doc), ownerID, id)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgSkippingMalformedProfile, "owner_id", ownerID, "profile_id", id, "error", err)
			continue
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list profiles: %w", domain.ErrPersistence, err)
	}

	profile.SortByLastPlayed(out)
	return out, nil
}

func (s *Store) Delete(ctx context.Context, ownerID, profileID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM profiles WHERE owner_id = ? AND profile_id = ?`,
		ownerID.String(), profileID.String(),
	)
	if err != nil {
		return false, fmt.Errorf("%w: delete profile %s: %w", domain.ErrPersistence, profileID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete profile %s: %w", domain.ErrPersistence, profileID, err)
	}
	return n > 0, nil
}

func (s *Store) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles WHERE owner_id = ?`, ownerID.String()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: count profiles: %w", domain.ErrPersistence, err)
	}
	return n, nil
}
