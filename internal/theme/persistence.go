package theme

import (
	"context"
	"errors"
	"sync"
)

// Keys of the persisted session entries.
const (
	KeyName   = "theme-name"
	KeyMode   = "theme-mode"
	KeyCustom = "theme-custom"
)

// ErrUnavailable is returned by persistence media that cannot be used in
// the current context.
var ErrUnavailable = errors.New("theme: persistence unavailable")

// Persistence is a string key/value medium for theme choices. A missing
// key is reported with ok == false and a nil error.
type Persistence interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MemoryPersistence keeps entries in process memory.
type MemoryPersistence struct {
	mu          sync.RWMutex
	values      map[string]string
	unavailable bool
}

// NewMemoryPersistence creates an empty in-memory medium.
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{values: make(map[string]string)}
}

// Get implements Persistence.
func (m *MemoryPersistence) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.unavailable {
		return "", false, ErrUnavailable
	}
	value, ok := m.values[key]
	return value, ok, nil
}

// Set implements Persistence.
func (m *MemoryPersistence) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrUnavailable
	}
	m.values[key] = value
	return nil
}

// SetUnavailable makes every subsequent call fail with ErrUnavailable.
func (m *MemoryPersistence) SetUnavailable(unavailable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = unavailable
}

// Layered combines media. Reads return the first medium holding the key;
// writes go to every medium.
type Layered []Persistence

// Get implements Persistence. Errors from one medium fall through to the
// next; the last error is returned only when no medium answered.
func (l Layered) Get(ctx context.Context, key string) (string, bool, error) {
	var lastErr error
	answered := false
	for _, p := range l {
		if p == nil {
			continue
		}
		value, ok, err := p.Get(ctx, key)
		if err != nil {
			lastErr = err
			continue
		}
		answered = true
		if ok {
			return value, true, nil
		}
	}
	if !answered && lastErr != nil {
		return "", false, lastErr
	}
	return "", false, nil
}

// Set implements Persistence. Every medium is attempted; failures are
// joined.
func (l Layered) Set(ctx context.Context, key, value string) error {
	var errs []error
	for _, p := range l {
		if p == nil {
			continue
		}
		if err := p.Set(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
