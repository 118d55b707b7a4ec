package profile

import (
	"context"

	"github.com/google/uuid"
)

// Repository is durable profile storage keyed by (owner, profile).
//
// Load returns (nil, nil) when the profile does not exist. LoadAll returns the
// owner's profiles sorted by LastPlayedAt descending; a missing owner yields an
// empty slice. Count includes stored documents LoadAll skips as malformed.
// Writes are all-or-nothing.
type Repository interface {
	Save(ctx context.Context, p *Profile) error
	Load(ctx context.Context, ownerID, profileID uuid.UUID) (*Profile, error)
	LoadAll(ctx context.Context, ownerID uuid.UUID) ([]*Profile, error)
	Delete(ctx context.Context, ownerID, profileID uuid.UUID) (bool, error)
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
}
