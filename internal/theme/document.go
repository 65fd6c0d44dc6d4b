package theme

import "context"

// Document bundles the engine for one rendered page: a surface, the
// projector writing to it and the store that owns the identity.
type Document struct {
	Surface     *Surface
	Projector   *Projector
	Store       *Store
	persistence Persistence
}

// NewDocument builds the engine for a page backed by p.
func NewDocument(p Persistence, opts ...Option) *Document {
	surface := NewSurface()
	projector := NewProjector(surface)
	return &Document{
		Surface:     surface,
		Projector:   projector,
		Store:       NewStore(p, projector, opts...),
		persistence: p,
	}
}

// Persistence returns the medium the document reads and writes.
func (d *Document) Persistence() Persistence {
	return d.persistence
}

// Active mounts a state-owning fragment on the document's store.
func (d *Document) Active(ctx context.Context, render func(Identity, ColorSet)) *Active {
	return MountActive(ctx, d.Store, render)
}

// Passive mounts a read-only fragment on the document's surface.
func (d *Document) Passive(ctx context.Context, onChange func(Mode)) *Passive {
	return MountPassive(ctx, d.Surface, d.persistence, onChange)
}

type documentKey struct{}

// WithDocument returns a context carrying d.
func WithDocument(ctx context.Context, d *Document) context.Context {
	return context.WithValue(ctx, documentKey{}, d)
}

// DocumentFrom returns the document carried by ctx.
func DocumentFrom(ctx context.Context) (*Document, bool) {
	d, ok := ctx.Value(documentKey{}).(*Document)
	return d, ok && d != nil
}
