package snapshot

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Status summarizes the snapshot history of a catalog
type Status struct {
	Count     int
	TotalSize int64
	HasLatest bool
	Latest    Entry
	Age       time.Duration
	// CatalogExists reports whether the catalog file is present
	CatalogExists bool
	// Drifted is set when the catalog changed outside the store since the
	// last recorded write
	Drifted bool
}

// Status reads the index and compares the catalog with the last write
func (s *Store) Status() (*Status, error) {
	ix, err := s.loadIndex()
	if err != nil {
		return nil, err
	}

	st := &Status{Count: len(ix.Snapshots)}
	for _, e := range ix.Snapshots {
		st.TotalSize += e.Size
	}
	if latest, ok := ix.Latest(); ok {
		st.HasLatest = true
		st.Latest = latest
		st.Age = s.now().Sub(latest.CreatedAt)
	}

	checksum, err := FileChecksum(s.catalogPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return st, nil
	case err != nil:
		return nil, fmt.Errorf("checksumming catalog: %w", err)
	}
	st.CatalogExists = true
	if ix.Current != nil && ix.Current.Checksum != checksum {
		st.Drifted = true
	}
	return st, nil
}
