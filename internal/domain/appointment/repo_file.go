package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// fileRepo persists the appointment collection as a single JSON document on
// the local filesystem. Every mutation is a read-modify-write of the whole
// collection, made atomic by writing a temp file and renaming it over the
// target. The design assumes a single active writer per store file.
type fileRepo struct {
	path   string
	logger zerolog.Logger
	mu     sync.Mutex
}

// NewFileRepo creates a file-backed Repository at path. The file is created
// lazily on first Save/Remove.
func NewFileRepo(path string, logger zerolog.Logger) Repository {
	return &fileRepo{path: path, logger: logger}
}

// List returns the stored appointments in insertion order. A missing file or
// a file that no longer parses reads as an empty collection; the corruption
// is logged but never surfaced to the caller.
func (r *fileRepo) List(_ context.Context) ([]Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *fileRepo) Save(_ context.Context, appt Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appts := append(r.load(), appt)
	return r.store(appts)
}

// Remove filters out the matching id and persists the result. Removing an
// absent id is a no-op, not an error.
func (r *fileRepo) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appts := r.load()
	kept := appts[:0]
	for _, a := range appts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return r.store(kept)
}

func (r *fileRepo) load() []Appointment {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn().Err(err).Str("path", r.path).Msg("appointment store unreadable, treating as empty")
		}
		return nil
	}
	var appts []Appointment
	if err := json.Unmarshal(raw, &appts); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("appointment store corrupt, treating as empty")
		return nil
	}
	return appts
}

func (r *fileRepo) store(appts []Appointment) error {
	if appts == nil {
		appts = []Appointment{}
	}
	raw, err := json.MarshalIndent(appts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".appointments-*")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write appointments: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("flush appointments: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace appointment store: %w", err)
	}
	return nil
}
