package theme

import (
	"sync"
	"sync/atomic"
)

// Variable names an entry on the shared styling surface. Pages expose each
// one as a CSS custom property (--background, --primary-glow, ...).
type Variable string

const (
	VarBackground  Variable = "background"
	VarSurface     Variable = "surface"
	VarBorder      Variable = "border"
	VarText        Variable = "text"
	VarTextMuted   Variable = "text-muted"
	VarPrimary     Variable = "primary"
	VarPrimaryGlow Variable = "primary-glow"
	VarAccent      Variable = "accent"
)

// Variables lists every surface variable in render order.
var Variables = []Variable{
	VarBackground, VarSurface, VarBorder, VarText,
	VarTextMuted, VarPrimary, VarPrimaryGlow, VarAccent,
}

// PageStyle holds the coarse page-level properties kept in step with the
// surface for markup that relies on inherited styling.
type PageStyle struct {
	Background string `json:"background"`
	Color      string `json:"color"`
}

// Snapshot is an immutable view of the surface. Version starts at zero for
// an unwritten surface and increases with every write.
type Snapshot struct {
	Version  uint64
	Identity Identity
	Page     PageStyle
	values   map[Variable]string
}

// Value returns the current value of v.
func (s Snapshot) Value(v Variable) string {
	return s.values[v]
}

// Values returns a copy of every set variable.
func (s Snapshot) Values() map[Variable]string {
	out := make(map[Variable]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Empty reports whether nothing has been written yet.
func (s Snapshot) Empty() bool {
	return s.Version == 0
}

// Mode returns the mode carried by the last write. Writes that carry no
// identity are classified from the background color.
func (s Snapshot) Mode() Mode {
	if s.Identity.Mode != "" {
		return s.Identity.Mode
	}
	return ClassifyBackground(s.values[VarBackground])
}

// Update is a complete write applied to the surface as one unit.
type Update struct {
	Identity Identity
	Values   map[Variable]string
	Page     PageStyle
}

// Surface is the document-scoped variable bag shared by every fragment.
// Writers replace the whole snapshot at once, so readers never observe a
// partially applied write. Subscribers are called synchronously after each
// write, outside the surface's lock.
type Surface struct {
	mu          sync.Mutex
	current     atomic.Pointer[Snapshot]
	version     uint64
	subscribers map[uint64]func(Snapshot)
	nextID      uint64
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	s := &Surface{subscribers: make(map[uint64]func(Snapshot))}
	s.current.Store(&Snapshot{values: map[Variable]string{}})
	return s
}

// Snapshot returns the current state without blocking writers.
func (s *Surface) Snapshot() Snapshot {
	return *s.current.Load()
}

// Get returns the current value of v.
func (s *Surface) Get(v Variable) (string, bool) {
	value, ok := s.current.Load().values[v]
	return value, ok
}

// Apply replaces the surface contents with u.
func (s *Surface) Apply(u Update) Snapshot {
	values := make(map[Variable]string, len(u.Values))
	for k, v := range u.Values {
		values[k] = v
	}
	return s.write(func(prev *Snapshot) *Snapshot {
		return &Snapshot{Identity: u.Identity, Page: u.Page, values: values}
	})
}

// Set writes a single variable, keeping the others. The identity of the
// previous write is dropped because the surface no longer matches it.
func (s *Surface) Set(v Variable, value string) Snapshot {
	return s.write(func(prev *Snapshot) *Snapshot {
		values := make(map[Variable]string, len(prev.values)+1)
		for k, val := range prev.values {
			values[k] = val
		}
		values[v] = value
		page := prev.Page
		if v == VarBackground {
			page.Background = value
		}
		if v == VarText {
			page.Color = value
		}
		return &Snapshot{Page: page, values: values}
	})
}

// Subscribe registers fn for every subsequent write. The returned cancel
// func removes the subscription and is safe to call more than once.
func (s *Surface) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Surface) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

func (s *Surface) write(build func(prev *Snapshot) *Snapshot) Snapshot {
	s.mu.Lock()
	next := build(s.current.Load())
	s.version++
	next.Version = s.version
	s.current.Store(next)
	subscribers := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(*next)
	}
	return *next
}
