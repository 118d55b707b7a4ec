package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/logger"
	"github.com/osse101/skillforge/internal/profile"
)

// DB is the subset of pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProfileRepository stores each profile as a JSONB document keyed by (owner, profile).
type ProfileRepository struct {
	db DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ profile.Repository = (*ProfileRepository)(nil)

const (
	upsertProfileQuery = `
		INSERT INTO profiles (owner_id, profile_id, name, last_played_at, document, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (owner_id, profile_id) DO UPDATE
		SET name = EXCLUDED.name,
		    last_played_at = EXCLUDED.last_played_at,
		    document = EXCLUDED.document,
		    updated_at = NOW()
	`
	selectProfileQuery = `
		SELECT document FROM profiles
		WHERE owner_id = $1 AND profile_id = $2
	`
	selectOwnerProfilesQuery = `
		SELECT profile_id, document FROM profiles
		WHERE owner_id = $1
		ORDER BY last_played_at DESC
	`
	deleteProfileQuery = `DELETE FROM profiles WHERE owner_id = $1 AND profile_id = $2`
	countProfilesQuery = `SELECT COUNT(*) FROM profiles WHERE owner_id = $1`
)

// Save upserts the profile document in a single statement.
func (r *ProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	doc, err := profile.Encode(p)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if _, err := r.db.Exec(ctx, upsertProfileQuery, p.OwnerID, p.ID, p.Name, p.LastPlayedAt, doc); err != nil {
		return fmt.Errorf("%w: save profile %s: %w", domain.ErrPersistence, p.ID, err)
	}
	return nil
}

// Load returns (nil, nil) when the profile does not exist.
func (r *ProfileRepository) Load(ctx context.Context, ownerID, profileID uuid.UUID) (*profile.Profile, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, selectProfileQuery, ownerID, profileID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load profile %s: %w", domain.ErrPersistence, profileID, err)
	}
	p, err := profile.Decode(doc, ownerID, profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return p, nil
}

// LoadAll lists an owner's profiles. Rows whose document no longer decodes are
// skipped with a warning.
func (r *ProfileRepository) LoadAll(ctx context.Context, ownerID uuid.UUID) ([]*profile.Profile, error) {
	rows, err := r.db.Query(ctx, selectOwnerProfilesQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list profiles: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()

	out := []*profile.Profile{}
	for rows.Next() {
		var (
			id  uuid.UUID
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("%w: scan profile row: %w", domain.ErrPersistence, err)
		}
		p, err := profile.Decode(doc, ownerID, id)
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

// Delete reports whether a row was removed.
func (r *ProfileRepository) Delete(ctx context.Context, ownerID, profileID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteProfileQuery, ownerID, profileID)
	if err != nil {
		return false, fmt.Errorf("%w: delete profile %s: %w", domain.ErrPersistence, profileID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProfileRepository) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, countProfilesQuery, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count profiles: %w", domain.ErrPersistence, err)
	}
	return n, nil
}
