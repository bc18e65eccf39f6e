package snapshot

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// maxCollisions bounds the _N suffixes tried for same-second snapshots
const maxCollisions = 100

// ErrUnknownSnapshot is returned when a snapshot reference matches nothing
var ErrUnknownSnapshot = errors.New("unknown snapshot")

// Store writes a catalog file while keeping every replaced version
type Store struct {
	catalogPath string
	dir         string
	logger      *slog.Logger
	dryRun      bool
	now         func() time.Time
	entropy     *ulid.MonotonicEntropy
}

// NewStore creates a store for catalogPath. Snapshots and the index live in
// dir, or next to the catalog when dir is empty.
func NewStore(catalogPath, dir string, logger *slog.Logger, dryRun bool) *Store {
	if dir == "" {
		dir = filepath.Dir(catalogPath)
	}
	return &Store{
		catalogPath: catalogPath,
		dir:         dir,
		logger:      logger,
		dryRun:      dryRun,
		now:         time.Now,
		entropy:     ulid.Monotonic(rand.Reader, 0),
	}
}

// CatalogPath returns the path of the managed catalog
func (s *Store) CatalogPath() string {
	return s.catalogPath
}

// Dir returns the snapshot directory
func (s *Store) Dir() string {
	return s.dir
}

// IndexPath returns the path of the snapshot index
func (s *Store) IndexPath() string {
	return filepath.Join(s.dir, filepath.Base(s.catalogPath)+IndexSuffix)
}

// Path returns the full path of a snapshot entry
func (s *Store) Path(e Entry) string {
	return filepath.Join(s.dir, e.File)
}

// loadIndex reads the index, starting a new one when none exists yet
func (s *Store) loadIndex() (*Index, error) {
	ix, err := LoadIndex(s.IndexPath())
	if errors.Is(err, os.ErrNotExist) {
		return NewIndex(filepath.Base(s.catalogPath)), nil
	}
	return ix, err
}

// Snapshot copies the current catalog into a new dated snapshot file and
// records it in the index. It returns nil when there is no catalog yet.
func (s *Store) Snapshot() (*Entry, error) {
	info, err := os.Stat(s.catalogPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checking catalog: %w", err)
	}

	now := s.now()
	base := filepath.Base(s.catalogPath) + BackupInfix + now.Format(TimestampLayout)

	if s.dryRun {
		s.logger.Info("[dry-run] would snapshot catalog",
			"catalog", s.catalogPath,
			"snapshot", filepath.Join(s.dir, base),
		)
		return nil, nil
	}

	data, err := os.ReadFile(s.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}

	name, err := s.createSnapshotFile(base, data)
	if err != nil {
		return nil, err
	}

	// keep the original modification time on the copy
	path := filepath.Join(s.dir, name)
	if err := os.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
		s.logger.Warn("could not preserve snapshot mtime", "snapshot", path, "error", err)
	}

	entry := Entry{
		ID:        ulid.MustNew(ulid.Timestamp(now), s.entropy).String(),
		File:      name,
		CreatedAt: now.UTC(),
		Size:      int64(len(data)),
		Checksum:  Checksum(data),
	}

	ix, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	ix.Add(entry)
	if err := ix.Save(s.IndexPath()); err != nil {
		return nil, err
	}

	s.logger.Info("catalog snapshot created",
		"snapshot", path,
		"id", entry.ID,
		"size", entry.Size,
	)

	return &entry, nil
}

// createSnapshotFile writes data under base, or base_N when a snapshot from
// the same second already exists, and returns the file name used
func (s *Store) createSnapshotFile(base string, data []byte) (string, error) {
	name := base
	for i := 1; i <= maxCollisions; i++ {
		err := createExclusive(filepath.Join(s.dir, name), data)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("writing snapshot: %w", err)
		}
		name = fmt.Sprintf("%s_%d", base, i)
	}
	return "", fmt.Errorf("writing snapshot: too many snapshots named %s", base)
}

// Commit replaces the catalog with data and points the index at the new
// version. parent is the snapshot taken before the write, if any.
func (s *Store) Commit(data []byte, parent *Entry) error {
	if s.dryRun {
		s.logger.Info("[dry-run] would write catalog",
			"catalog", s.catalogPath,
			"bytes", len(data),
		)
		return nil
	}

	if err := writeFileAtomic(s.catalogPath, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	ix, err := s.loadIndex()
	if err != nil {
		return err
	}
	ix.Current = &Current{
		Checksum:  Checksum(data),
		Size:      int64(len(data)),
		UpdatedAt: s.now().UTC(),
	}
	if parent != nil {
		ix.Current.Parent = parent.ID
	}
	if err := ix.Save(s.IndexPath()); err != nil {
		return err
	}

	s.logger.Debug("catalog written", "catalog", s.catalogPath, "bytes", len(data))
	return nil
}

// Write snapshots the existing catalog and then commits data
func (s *Store) Write(data []byte) (*Entry, error) {
	parent, err := s.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("snapshotting catalog: %w", err)
	}
	if err := s.Commit(data, parent); err != nil {
		return parent, err
	}
	return parent, nil
}

// List returns all snapshots in creation order
func (s *Store) List() ([]Entry, error) {
	ix, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	return ix.Snapshots, nil
}

// Check is the verification result for one snapshot
type Check struct {
	Entry Entry
	Err   error
}

// OK reports whether the snapshot verified
func (c Check) OK() bool {
	return c.Err == nil
}

// Verify checks that every snapshot file exists with the recorded size and
// checksum
func (s *Store) Verify() ([]Check, error) {
	ix, err := s.loadIndex()
	if err != nil {
		return nil, err
	}

	checks := make([]Check, 0, len(ix.Snapshots))
	for _, e := range ix.Snapshots {
		checks = append(checks, Check{Entry: e, Err: s.verifyEntry(e)})
	}
	return checks, nil
}

func (s *Store) verifyEntry(e Entry) error {
	path := s.Path(e)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %w", err)
	}
	if info.Size() != e.Size {
		return fmt.Errorf("size mismatch (expected %d, got %d)", e.Size, info.Size())
	}

	checksum, err := FileChecksum(path)
	if err != nil {
		return fmt.Errorf("checksum error: %w", err)
	}
	if checksum != e.Checksum {
		return fmt.Errorf("checksum mismatch")
	}
	return nil
}

// RestoreResult describes a completed restore
type RestoreResult struct {
	Restored Entry
	// Saved is the snapshot of the catalog version that was replaced
	Saved *Entry
}

// Restore makes the referenced snapshot the current catalog. The version
// being replaced is snapshotted first, so a restore can itself be undone.
func (s *Store) Restore(ref string) (*RestoreResult, error) {
	ix, err := s.loadIndex()
	if err != nil {
		return nil, err
	}

	entry, ok := ix.Get(ref)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSnapshot, ref)
	}
	if err := s.verifyEntry(entry); err != nil {
		return nil, fmt.Errorf("snapshot %s failed verification: %w", entry.ID, err)
	}

	data, err := os.ReadFile(s.Path(entry))
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	saved, err := s.Write(data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("catalog restored", "snapshot", entry.ID, "catalog", s.catalogPath)
	return &RestoreResult{Restored: entry, Saved: saved}, nil
}
