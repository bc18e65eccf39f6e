// Package snapshot keeps every previous version of the catalog as an
// immutable dated copy, plus an index recording the current version
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	// IndexVersion is the current index format version
	IndexVersion = "1.0"
	// IndexSuffix is appended to the catalog file name to name the index
	IndexSuffix = ".snapshots.json"
	// BackupInfix separates the catalog file name from the snapshot timestamp
	BackupInfix = ".backup."
	// TimestampLayout formats snapshot timestamps (YYYYMMDD_HHMMSS)
	TimestampLayout = "20060102_150405"
)

// Entry describes one snapshot file
type Entry struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
	Size      int64     `json:"size"`
	Checksum  string    `json:"checksum"`
}

// Current records the catalog content last written through the store
type Current struct {
	Checksum  string    `json:"checksum"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
	// Parent is the id of the snapshot taken just before this write
	Parent string `json:"parent,omitempty"`
}

// Index lists the snapshots of one catalog file
type Index struct {
	Version   string   `json:"version"`
	Catalog   string   `json:"catalog"`
	Snapshots []Entry  `json:"snapshots"`
	Current   *Current `json:"current,omitempty"`
}

// NewIndex creates an empty index for the named catalog file
func NewIndex(catalogName string) *Index {
	return &Index{
		Version:   IndexVersion,
		Catalog:   catalogName,
		Snapshots: []Entry{},
	}
}

// LoadIndex reads an index from a file
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot index: %w", err)
	}

	var ix Index
	if err := json.Unmarshal(data, &ix); err != nil {
		return nil, fmt.Errorf("parsing snapshot index: %w", err)
	}
	if ix.Snapshots == nil {
		ix.Snapshots = []Entry{}
	}
	return &ix, nil
}

// Save writes the index to a file
func (ix *Index) Save(path string) error {
	data, err := json.MarshalIndent(ix, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot index: %w", err)
	}

	if err := writeFileAtomic(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing snapshot index: %w", err)
	}
	return nil
}

// Add appends a snapshot entry
func (ix *Index) Add(e Entry) {
	ix.Snapshots = append(ix.Snapshots, e)
}

// Get returns a snapshot by id or file name
func (ix *Index) Get(ref string) (Entry, bool) {
	for _, e := range ix.Snapshots {
		if e.ID == ref || e.File == ref {
			return e, true
		}
	}
	return Entry{}, false
}

// Latest returns the most recently created snapshot
func (ix *Index) Latest() (Entry, bool) {
	if len(ix.Snapshots) == 0 {
		return Entry{}, false
	}
	latest := ix.Snapshots[0]
	for _, e := range ix.Snapshots[1:] {
		if !e.CreatedAt.Before(latest.CreatedAt) {
			latest = e
		}
	}
	return latest, true
}

// Checksum returns the sha256 checksum of data
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// FileChecksum calculates the sha256 checksum of a file
func FileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}

// FormatSize renders a byte count for humans
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
