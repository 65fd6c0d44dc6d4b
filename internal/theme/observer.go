package theme

import (
	"context"
	"sync"

	applog "vartheme/internal/log"
)

// Active is a mounted state-owning fragment. It re-renders on every store
// change until unmounted.
type Active struct {
	store  *Store
	cancel func()
	once   sync.Once
}

// MountActive initializes store, paints the surface and renders once with
// the current identity. render is then called after every change.
func MountActive(ctx context.Context, store *Store, render func(Identity, ColorSet)) *Active {
	store.Initialize(ctx)
	store.Project()
	if render != nil {
		render(store.Identity(), store.Colors())
	}

	a := &Active{store: store, cancel: func() {}}
	if render != nil {
		a.cancel = store.Subscribe(render)
	}
	return a
}

// Store returns the store the fragment owns.
func (a *Active) Store() *Store {
	return a.store
}

// Unmount stops rendering. It is safe to call more than once.
func (a *Active) Unmount() {
	a.once.Do(a.cancel)
}

// Passive is a mounted fragment that only reads the surface. It tracks the
// page mode without any reference to the store.
type Passive struct {
	mu       sync.Mutex
	mode     Mode
	seen     uint64
	onChange func(Mode)

	cancel func()
	once   sync.Once
}

// MountPassive starts observing surface. The initial mode is guessed from
// the persisted mode entry, then corrected from the surface if it has been
// written. onChange, when set, is called whenever the derived mode changes.
func MountPassive(ctx context.Context, surface *Surface, p Persistence, onChange func(Mode)) *Passive {
	obs := &Passive{mode: initialMode(ctx, p), onChange: onChange}

	// Subscribe before reading so a write racing the mount is not lost;
	// the version check discards whichever copy arrives second.
	obs.cancel = surface.Subscribe(obs.observe)
	if snap := surface.Snapshot(); !snap.Empty() {
		obs.observe(snap)
	}
	return obs
}

// WithPassive mounts a passive observer for the duration of fn.
func WithPassive(ctx context.Context, surface *Surface, p Persistence, fn func(*Passive) error) error {
	obs := MountPassive(ctx, surface, p, nil)
	defer obs.Unmount()
	return fn(obs)
}

// Mode returns the last derived mode.
func (o *Passive) Mode() Mode {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mode
}

// IsLight reports whether the page is currently light.
func (o *Passive) IsLight() bool {
	return o.Mode().IsLight()
}

// Unmount releases the subscription. It is safe to call more than once.
func (o *Passive) Unmount() {
	o.once.Do(o.cancel)
}

func (o *Passive) observe(snap Snapshot) {
	o.mu.Lock()
	if snap.Version <= o.seen {
		o.mu.Unlock()
		return
	}
	o.seen = snap.Version
	prev := o.mode
	o.mode = snap.Mode()
	next := o.mode
	o.mu.Unlock()

	if next != prev && o.onChange != nil {
		o.onChange(next)
	}
}

func initialMode(ctx context.Context, p Persistence) Mode {
	if p == nil {
		return DefaultMode
	}
	value, ok, err := p.Get(ctx, KeyMode)
	if err != nil {
		applog.Debug(ctx, "passive observer using default mode", "error", err)
		return DefaultMode
	}
	if !ok {
		return DefaultMode
	}
	return NormalizeMode(value)
}
