package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// Repository persists the whole store in a single JSON file. Every access
// runs under one mutex, so a read-check-append sequence inside Update is
// atomic with respect to other requests; two bookings racing for the last
// spot of a slot cannot both pass the capacity check.
type Repository struct {
	path string
	mu   sync.Mutex
}

// NewRepository creates a repository backed by the given file path.
// The file does not have to exist yet.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load reads the current store snapshot. A missing file is an empty store;
// any other failure is surfaced so callers can tell "no bookings yet" from
// "storage unreadable".
func (r *Repository) Load(ctx context.Context) (*domain.StoreSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read()
}

// Update applies fn to the current snapshot and rewrites the file wholesale.
// If fn returns an error, nothing is written. The whole load-mutate-save
// sequence holds the mutex.
func (r *Repository) Update(ctx context.Context, fn func(snap *domain.StoreSnapshot) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.read()
	if err != nil {
		return err
	}

	if err := fn(snap); err != nil {
		return err
	}

	return r.write(snap)
}

func (r *Repository) read() (*domain.StoreSnapshot, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewStoreSnapshot(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
	}

	snap := domain.NewStoreSnapshot()
	if err := json.Unmarshal(raw, snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreCorrupted, err)
	}

	if snap.Appointments == nil {
		snap.Appointments = []domain.Appointment{}
	}
	if snap.Quotes == nil {
		snap.Quotes = []domain.Quote{}
	}
	if snap.NextNumber < domain.FirstAppointmentNumber {
		snap.NextNumber = domain.FirstAppointmentNumber
	}
	return snap, nil
}

// write replaces the store file via a temp file and rename, so a crash
// mid-write never leaves a half-written store behind.
func (r *Repository) write(snap *domain.StoreSnapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrWriteFailed, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrWriteFailed, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", ErrWriteFailed, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write temp: %v", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close temp: %v", ErrWriteFailed, err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename: %v", ErrWriteFailed, err)
	}
	return nil
}
