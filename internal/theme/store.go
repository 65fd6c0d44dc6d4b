package theme

import (
	"context"
	"encoding/json"
	"sync"

	"vartheme/internal/color"
	applog "vartheme/internal/log"
)

// Store is the single source of truth for the theme identity of one
// document. Every change updates the identity, projects the resolved
// colors and persists the identity, in that order, before subscribers are
// notified.
//
// Subscribers and surface observers must not call the Set methods from
// inside their callbacks.
type Store struct {
	// writeMu serializes mutations so projections reach the surface in the
	// order the identity changed.
	writeMu sync.Mutex

	mu          sync.RWMutex
	identity    Identity
	custom      *ColorSet
	initialized bool

	persistence Persistence
	session     Persistence
	projector   *Projector

	subMu       sync.Mutex
	subscribers map[uint64]func(Identity, ColorSet)
	nextID      uint64
}

// Option configures a Store.
type Option func(*Store)

// WithSessionMemory keeps custom palette colors in m. Without it custom
// colors live only as long as the Store.
func WithSessionMemory(m Persistence) Option {
	return func(s *Store) {
		s.session = m
	}
}

// NewStore creates a store persisting to p and projecting through
// projector. A nil p behaves like a medium with nothing stored.
func NewStore(p Persistence, projector *Projector, opts ...Option) *Store {
	s := &Store{
		identity:    DefaultIdentity(),
		persistence: p,
		projector:   projector,
		subscribers: make(map[uint64]func(Identity, ColorSet)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the persisted identity. It reads the medium only on the
// first call; later calls return the in-memory identity. Missing, invalid
// or unreadable entries fall back to the defaults field by field.
func (s *Store) Initialize(ctx context.Context) Identity {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	if s.initialized {
		id := s.identity
		s.mu.RUnlock()
		return id
	}
	s.mu.RUnlock()

	id := DefaultIdentity()
	if value, ok := s.read(ctx, s.persistence, KeyName); ok {
		id.Name = NormalizeName(value)
	}
	if value, ok := s.read(ctx, s.persistence, KeyMode); ok {
		id.Mode = NormalizeMode(value)
	}

	var custom *ColorSet
	if id.Name == NameCustom {
		custom = s.loadCustom(ctx)
		if custom == nil {
			applog.Debug(ctx, "custom theme persisted without session colors, using default palette")
			id.Name = DefaultName
		}
	}

	s.mu.Lock()
	s.identity = id
	s.custom = custom
	s.initialized = true
	s.mu.Unlock()

	applog.Debug(ctx, "theme store initialized", "name", id.Name, "mode", id.Mode)
	return id
}

// Identity returns the current identity.
func (s *Store) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Colors returns the resolved colors of the current identity.
func (s *Store) Colors() ColorSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colorsLocked()
}

// Project writes the current colors to the surface without changing the
// identity. Mounting fragments use it to paint before any user action.
func (s *Store) Project() Snapshot {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	id, colors := s.identity, s.colorsLocked()
	s.mu.RUnlock()
	return s.projector.Project(id, colors)
}

// SetTheme switches palette. Unknown names select the default palette;
// "custom" is only honoured when custom colors are already present.
func (s *Store) SetTheme(ctx context.Context, name string) Identity {
	return s.change(ctx, func(id Identity, custom *ColorSet) (Identity, *ColorSet) {
		next := NormalizeName(name)
		if next == NameCustom && custom == nil {
			next = DefaultName
		}
		id.Name = next
		return id, custom
	})
}

// SetMode switches between light and dark. Unknown values select
// DefaultMode. A custom palette keeps its primary and accent and takes the
// remaining roles from the default palette for the new mode.
func (s *Store) SetMode(ctx context.Context, mode string) Identity {
	return s.change(ctx, func(id Identity, custom *ColorSet) (Identity, *ColorSet) {
		id.Mode = NormalizeMode(mode)
		if id.Name == NameCustom && custom != nil {
			rebased := Resolve(DefaultName, id.Mode)
			rebased.Primary = custom.Primary
			rebased.Accent = custom.Accent
			custom = &rebased
		}
		return id, custom
	})
}

// Toggle flips the current mode.
func (s *Store) Toggle(ctx context.Context) Identity {
	return s.SetMode(ctx, string(s.Identity().Mode.Opposite()))
}

// SetCustomColors applies colors as the custom palette. Unusable roles are
// replaced from the default palette of the current mode, and the mode
// follows the brightness of the custom background.
func (s *Store) SetCustomColors(ctx context.Context, colors ColorSet) Identity {
	return s.change(ctx, func(id Identity, _ *ColorSet) (Identity, *ColorSet) {
		sanitized := colors.Sanitize(Resolve(DefaultName, id.Mode))
		id.Name = NameCustom
		id.Mode = ClassifyBackground(sanitized.Background)
		return id, &sanitized
	})
}

// Subscribe registers fn for every subsequent change. The returned cancel
// func is idempotent.
func (s *Store) Subscribe(fn func(Identity, ColorSet)) (cancel func()) {
	s.subMu.Lock()
	s.nextID++
	id := s.nextID
	s.subscribers[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) change(ctx context.Context, mutate func(Identity, *ColorSet) (Identity, *ColorSet)) Identity {
	s.writeMu.Lock()

	s.mu.Lock()
	id, custom := mutate(s.identity, s.custom)
	s.identity = id
	s.custom = custom
	s.initialized = true
	colors := s.colorsLocked()
	s.mu.Unlock()

	s.projector.Project(id, colors)
	s.write(ctx, s.persistence, KeyName, string(id.Name))
	s.write(ctx, s.persistence, KeyMode, string(id.Mode))
	if id.Name == NameCustom && custom != nil {
		s.saveCustom(ctx, *custom)
	}

	s.writeMu.Unlock()

	applog.Debug(ctx, "theme changed", "name", id.Name, "mode", id.Mode)
	s.notify(id, colors)
	return id
}

func (s *Store) colorsLocked() ColorSet {
	if s.identity.Name == NameCustom && s.custom != nil {
		return *s.custom
	}
	return Resolve(s.identity.Name, s.identity.Mode)
}

func (s *Store) notify(id Identity, colors ColorSet) {
	s.subMu.Lock()
	subscribers := make([]func(Identity, ColorSet), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subscribers {
		fn(id, colors)
	}
}

func (s *Store) read(ctx context.Context, p Persistence, key string) (string, bool) {
	if p == nil {
		return "", false
	}
	value, ok, err := p.Get(ctx, key)
	if err != nil {
		applog.Debug(ctx, "theme persistence read skipped", "key", key, "error", err)
		return "", false
	}
	return value, ok
}

func (s *Store) write(ctx context.Context, p Persistence, key, value string) {
	if p == nil {
		return
	}
	if err := p.Set(ctx, key, value); err != nil {
		applog.Debug(ctx, "theme persistence write skipped", "key", key, "error", err)
	}
}

func (s *Store) loadCustom(ctx context.Context) *ColorSet {
	raw, ok := s.read(ctx, s.session, KeyCustom)
	if !ok || raw == "" {
		return nil
	}
	var colors ColorSet
	if err := json.Unmarshal([]byte(raw), &colors); err != nil {
		applog.Debug(ctx, "discarding unreadable custom colors", "error", err)
		return nil
	}
	if err := colors.Validate(); err != nil {
		applog.Debug(ctx, "discarding invalid custom colors", "error", err)
		return nil
	}
	return &colors
}

func (s *Store) saveCustom(ctx context.Context, colors ColorSet) {
	if s.session == nil {
		return
	}
	raw, err := json.Marshal(colors)
	if err != nil {
		applog.Debug(ctx, "custom colors not encoded", "error", err)
		return
	}
	s.write(ctx, s.session, KeyCustom, string(raw))
}

// ClassifyBackground infers the mode of a page from its background color:
// light backgrounds are ModeLight, everything else ModeDark.
func ClassifyBackground(background string) Mode {
	if color.IsLight(background) {
		return ModeLight
	}
	return ModeDark
}
