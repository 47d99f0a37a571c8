package ufmt

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// DefaultMaxHandlers is the capacity of a registry created by [New].
const DefaultMaxHandlers = 16

// Handler renders a caller-defined verb. It owns the interpretation of the
// descriptor's flags, width and precision, pulls its own values from args,
// and returns the number of bytes it wrote to out.
type Handler interface {
	Format(out Sink, d Descriptor, args *Args) int
}

// HandlerFunc adapts a plain function to a [Handler].
type HandlerFunc func(out Sink, d Descriptor, args *Args) int

// Format calls f(out, d, args).
func (f HandlerFunc) Format(out Sink, d Descriptor, args *Args) int { return f(out, d, args) }

// Registry maps verbs to handlers. Lookups read an immutable snapshot and
// never block; writers copy the snapshot under a mutex and swap it in, so a
// registry is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	limit int
	snap  atomic.Pointer[map[byte]Handler]
}

// NewRegistry creates an empty registry holding at most limit handlers.
// A limit of zero or less means no bound.
func NewRegistry(limit int) *Registry {
	if limit < 0 {
		limit = 0
	}
	r := &Registry{limit: limit}
	empty := map[byte]Handler{}
	r.snap.Store(&empty)
	return r
}

// Register installs h for verb. Registering a verb that is already present
// replaces its handler in place and never fails for capacity.
func (r *Registry) Register(verb byte, h Handler) error {
	if h == nil {
		return fmt.Errorf("%w: verb %q", ErrNilHandler, verb)
	}
	if verb == 0 {
		return fmt.Errorf("%w: NUL", ErrInvalidVerb)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cur := *r.snap.Load()
	if _, ok := cur[verb]; !ok && r.limit > 0 && len(cur) >= r.limit {
		return fmt.Errorf("%w: %d handlers installed, cannot add %q", ErrRegistryFull, len(cur), verb)
	}
	next := make(map[byte]Handler, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[verb] = h
	r.snap.Store(&next)
	return nil
}

// Unregister removes the handler for verb.
func (r *Registry) Unregister(verb byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur := *r.snap.Load()
	if _, ok := cur[verb]; !ok {
		return fmt.Errorf("%w: %q", ErrHandlerNotFound, verb)
	}
	next := make(map[byte]Handler, len(cur))
	for k, v := range cur {
		if k != verb {
			next[k] = v
		}
	}
	r.snap.Store(&next)
	return nil
}

// Lookup returns the handler for verb and whether one is installed.
func (r *Registry) Lookup(verb byte) (Handler, bool) {
	h, ok := (*r.snap.Load())[verb]
	return h, ok
}

// Len returns the number of installed handlers.
func (r *Registry) Len() int { return len(*r.snap.Load()) }

// Cap returns the capacity, zero when unbounded.
func (r *Registry) Cap() int { return r.limit }

// Verbs returns the installed verbs in ascending order.
func (r *Registry) Verbs() []byte {
	cur := *r.snap.Load()
	out := make([]byte, 0, len(cur))
	for k := range cur {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
