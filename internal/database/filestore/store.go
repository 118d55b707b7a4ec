// Package filestore keeps one JSON document per profile under
// {root}/profiles/{owner_id}/{profile_id}.json.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/logger"
	"github.com/osse101/skillforge/internal/profile"
)

// Store is a file-backed profile.Repository. It holds no locks of its own:
// writes to different owners touch different directories, and every write is
// a temp file renamed over the target so readers never see a partial document.
type Store struct {
	root string
}

// New returns a store rooted at dataDir. The directory is created lazily on
// the first save.
func New(dataDir string) (*Store, error) {
	if strings.TrimSpace(dataDir) == "" {
		return nil, fmt.Errorf("%w: data dir is required", domain.ErrInvalidInput)
	}
	return &Store{root: filepath.Join(filepath.Clean(dataDir), ProfilesDir)}, nil
}

var _ profile.Repository = (*Store)(nil)

func (s *Store) ownerDir(ownerID uuid.UUID) string {
	return filepath.Join(s.root, ownerID.String())
}

func (s *Store) documentPath(ownerID, profileID uuid.UUID) string {
	return filepath.Join(s.ownerDir(ownerID), profileID.String()+DocumentExt)
}

// Save writes the document atomically.
func (s *Store) Save(ctx context.Context, p *profile.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := profile.Encode(p)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	dir := s.ownerDir(p.OwnerID)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("%w: create owner dir: %w", domain.ErrPersistence, err)
	}
	if err := writeAtomic(ctx, dir, s.documentPath(p.OwnerID, p.ID), doc); err != nil {
		return fmt.Errorf("%w: save profile %s: %w", domain.ErrPersistence, p.ID, err)
	}
	return nil
}

// writeAtomic writes data to a temp file in dir, syncs it, and renames it over
// target. On any failure the temp file is removed and target is untouched.
func writeAtomic(ctx context.Context, dir, target string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			logger.FromContext(ctx).Warn(LogMsgTempCleanupFailed, "path", tmpName, "error", rmErr)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, FilePermissions); err != nil {
		return err
	}
	if err = os.Rename(tmpName, target); err != nil {
		return err
	}
	syncDir(dir)
	return nil
}

// syncDir flushes the rename to disk where the platform allows it.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}

// Load returns (nil, nil) when no document exists.
func (s *Store) Load(ctx context.Context, ownerID, profileID uuid.UUID) (*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := os.ReadFile(s.documentPath(ownerID, profileID))
	if errors.Is(err, fs.ErrNotExist) {
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

// LoadAll lists the owner's documents, most recently played first. A missing
// owner directory is zero profiles. Files that fail to read or decode are
// skipped with a warning.
func (s *Store) LoadAll(ctx context.Context, ownerID uuid.UUID) ([]*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)
	dir := s.ownerDir(ownerID)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []*profile.Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list profiles: %w", domain.ErrPersistence, err)
	}

	out := make([]*profile.Profile, 0, len(entries))
	for _, entry := range entries {
		profileID, ok := documentID(entry)
		if !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		doc, err := os.ReadFile(path)
		if err != nil {
			log.Warn(LogMsgSkippingUnreadableFile, "path", path, "error", err)
			continue
		}
		p, err := profile.Decode(doc, ownerID, profileID)
		if err != nil {
			log.Warn(LogMsgSkippingMalformedProfile, "path", path, "error", err)
			continue
		}
		out = append(out, p)
	}

	profile.SortByLastPlayed(out)
	return out, nil
}

// documentID extracts the profile id from a directory entry, rejecting
// directories, temp files and anything not named {uuid}.json.
func documentID(entry fs.DirEntry) (uuid.UUID, bool) {
	name := entry.Name()
	if entry.IsDir() || strings.HasPrefix(name, tempPrefix) || filepath.Ext(name) != DocumentExt {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSuffix(name, DocumentExt))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Delete reports whether a document was removed.
func (s *Store) Delete(ctx context.Context, ownerID, profileID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err := os.Remove(s.documentPath(ownerID, profileID))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: delete profile %s: %w", domain.ErrPersistence, profileID, err)
	}
	syncDir(s.ownerDir(ownerID))
	return true, nil
}

// Count is the number of stored documents, including ones LoadAll skips as
// malformed, so an unreadable document still occupies a slot.
func (s *Store) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	entries, err := os.ReadDir(s.ownerDir(ownerID))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: count profiles: %w", domain.ErrPersistence, err)
	}
	n := 0
	for _, entry := range entries {
		if _, ok := documentID(entry); ok {
			n++
		}
	}
	return n, nil
}
