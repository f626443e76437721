// Package storage persists files received over Telegram into the directory
// Download Station watches.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Local stores files in a single local directory.
type Local struct {
	dir string
}

// NewLocal creates the storage directory when missing and returns the store.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the storage directory.
func (l *Local) Dir() string {
	return l.dir
}

// Save writes r into the storage directory under name. The name is
// flattened to its base, and an existing file is never overwritten; the
// incoming file gets a short unique suffix instead. The filename actually
// stored is returned.
func (l *Local) Save(name string, r io.Reader) (string, error) {
	name = filepath.Base(filepath.Clean(name))
	if name == "." || name == string(filepath.Separator) {
		name = uuid.NewString()
	}

	path := filepath.Join(l.dir, name)
	if _, err := os.Stat(path); err == nil {
		name = uniqueName(name)
		path = filepath.Join(l.dir, name)
		log.Debug("Renamed colliding file", "name", name)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", name, err)
	}
	return name, nil
}

// uniqueName inserts a short random suffix between the stem and extension.
func uniqueName(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s-%s%s", stem, uuid.NewString()[:8], ext)
}
