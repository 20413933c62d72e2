package com

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/nanocom/guid"
	"github.com/danmuck/nanocom/hresult"
)

// Factory constructs an object, returning an owned reference (count one).
type Factory func() (Unknown, hresult.Result)

// Registry maps capability identifiers to constructors. It stands in for a
// language-level constant association between a type and its identifier:
// entries are registered before first use, and looking up an identifier that
// was never registered is a contract breach that terminates the program.
type Registry struct {
	mu        sync.RWMutex
	factories map[guid.GUID]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[guid.GUID]Factory)}
}

// Register associates iid with a constructor. An identifier names exactly
// one shape, forever: registering the same identifier twice is a contract
// breach and terminates the program.
func (r *Registry) Register(iid guid.GUID, f Factory) {
	if iid.IsNil() {
		log.Panic().Msg("com: Register with the nil identifier")
	}
	if f == nil {
		log.Panic().Stringer("iid", iid).Msg("com: Register with a nil factory")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[iid]; exists {
		log.Panic().Stringer("iid", iid).Msg("com: identifier registered twice")
	}
	r.factories[iid] = f
}

// Lookup is the non-fatal probe for a registered constructor.
func (r *Registry) Lookup(iid guid.GUID) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[iid]
	return f, ok
}

// Create constructs a new object for iid, returning an owned reference. An
// unregistered identifier means the association was never established — a
// build-time defect, reported by immediate termination rather than an error
// code.
func (r *Registry) Create(iid guid.GUID) (Unknown, hresult.Result) {
	f, ok := r.Lookup(iid)
	if !ok {
		log.Panic().Stringer("iid", iid).Msg("com: no factory registered for identifier")
	}
	return f()
}

var defaultRegistry = NewRegistry()

// Register adds a constructor to the process-wide registry.
func Register(iid guid.GUID, f Factory) {
	defaultRegistry.Register(iid, f)
}

// Lookup probes the process-wide registry.
func Lookup(iid guid.GUID) (Factory, bool) {
	return defaultRegistry.Lookup(iid)
}

// Create constructs from the process-wide registry.
func Create(iid guid.GUID) (Unknown, hresult.Result) {
	return defaultRegistry.Create(iid)
}
