package gl

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// EntryPoint is the outcome of resolving a logical command: a validated
// native address plus the alias that backed it, or an explicit unresolved
// marker (zero Addr).
type EntryPoint struct {
	Command string
	Symbol  string
	Addr    uintptr
}

// Resolved reports whether the command can be dispatched.
func (e EntryPoint) Resolved() bool { return e.Addr != 0 }

// Binding is the table of resolved entry points for one capability
// context. Entries are populated on first resolution and never mutated
// afterwards; a capability change produces a whole new Binding via Rebind.
type Binding struct {
	loader   *Loader
	driver   uintptr
	registry *Registry
	caps     *CapabilitySet

	mu      sync.RWMutex
	entries map[string]EntryPoint
	group   singleflight.Group

	dispatch dispatchState
}

// NewBinding returns an empty binding table for the given driver handle and
// capability set.
func NewBinding(loader *Loader, driver uintptr, registry *Registry, caps *CapabilitySet) *Binding {
	b := &Binding{
		loader:   loader,
		driver:   driver,
		registry: registry,
		caps:     caps,
		entries:  make(map[string]EntryPoint),
	}
	b.dispatch.init()
	return b
}

// Capabilities returns the capability set the table was resolved against.
func (b *Binding) Capabilities() *CapabilitySet { return b.caps }

// Resolve walks the alias candidates for name in order and binds the first
// one the driver exports. The outcome is cached: resolving the same command
// twice without a capability change yields the identical address.
// Concurrent first-time resolutions of the same command perform the work
// once; different commands resolve independently. A command with no
// loadable candidate is recorded as unresolved, which only becomes an error
// when dispatch is attempted.
func (b *Binding) Resolve(name string) EntryPoint {
	b.mu.RLock()
	ep, ok := b.entries[name]
	b.mu.RUnlock()
	if ok {
		return ep
	}

	v, _, _ := b.group.Do(name, func() (any, error) {
		// A racing Resolve may have populated the entry before this call
		// joined the flight.
		b.mu.RLock()
		ep, ok := b.entries[name]
		b.mu.RUnlock()
		if ok {
			return ep, nil
		}

		ep = b.resolveUncached(name)

		b.mu.Lock()
		b.entries[name] = ep
		b.mu.Unlock()
		return ep, nil
	})
	return v.(EntryPoint)
}

func (b *Binding) resolveUncached(name string) EntryPoint {
	ep := EntryPoint{Command: name}
	for _, candidate := range b.registry.CandidatesFor(name, b.caps) {
		// The proc address primitive sees extension entry points that the
		// static symbol table may not; a miss there falls back to plain
		// lookup on the driver handle. First hit wins, later candidates
		// are never consulted.
		addr := b.loader.ProcAddress(candidate.Symbol)
		if addr == 0 {
			addr, _ = b.loader.Symbol(b.driver, candidate.Symbol)
		}
		if addr != 0 {
			ep.Symbol = candidate.Symbol
			ep.Addr = addr
			break
		}
	}
	return ep
}

// Rebind builds a fresh, empty binding table for a new capability set,
// carrying over the dispatch configuration. The receiver is left untouched
// so in-flight dispatches never observe a half-rebound table.
func (b *Binding) Rebind(caps *CapabilitySet) *Binding {
	nb := NewBinding(b.loader, b.driver, b.registry, caps)
	nb.dispatch.copyFrom(&b.dispatch)
	return nb
}
