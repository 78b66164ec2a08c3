// Package tmpfile allocates ephemeral files for pipeline artifacts and tracks
// them in an explicit registry so cleanup has a visible scope instead of
// hanging off process-global state. Entries marked Keep survive Cleanup for
// inspection and debugging.
package tmpfile

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrAllocate indicates an ephemeral file could not be allocated.
var ErrAllocate = errors.New("ephemeral file allocation failed")

// Spec describes how a single ephemeral file is named and whether it
// outlives the owning registry's Cleanup.
type Spec struct {
	Prefix string
	Suffix string
	Keep   bool
}

type entry struct {
	path string
	keep bool
}

// Registry allocates ephemeral files in a single directory and records them
// for later cleanup. Safe for concurrent use.
type Registry struct {
	dir string

	mu      sync.Mutex
	entries []entry
}

// NewRegistry creates a registry rooted at dir. An empty dir means the
// system temporary directory.
func NewRegistry(dir string) *Registry {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Registry{dir: dir}
}

// Create allocates a new empty file named per spec and registers it.
// The file name is spec.Prefix, a random component, then spec.Suffix, so
// registries created with distinct prefixes never collide.
func (r *Registry) Create(spec Spec) (string, error) {
	f, err := os.CreateTemp(r.dir, spec.Prefix+"*"+spec.Suffix)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAllocate, err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAllocate, err)
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry{path: path, keep: spec.Keep})
	r.mu.Unlock()

	return path, nil
}

// Paths returns the locations of every file allocated so far, in creation
// order, kept or not.
func (r *Registry) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		paths = append(paths, e.path)
	}
	return paths
}

// Cleanup removes every registered file not marked Keep. Removal failures
// are logged and do not stop the sweep; the first error is returned.
func (r *Registry) Cleanup() error {
	r.mu.Lock()
	entries := r.entries
	r.entries = nil
	r.mu.Unlock()

	var first error
	for _, e := range entries {
		if e.keep {
			continue
		}
		if err := os.Remove(e.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", e.path).Msg("Failed to remove ephemeral file")
			if first == nil {
				first = err
			}
		}
	}
	return first
}
