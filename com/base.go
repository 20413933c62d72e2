package com

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/nanocom/guid"
	"github.com/danmuck/nanocom/hresult"
)

// Base is the embeddable implementation of Unknown. A concrete type embeds
// Base and calls Init once, passing itself, an optional destroy hook, and
// the identifiers of the capabilities it implements beyond IIDUnknown and
// IIDWeakReferenceSource (both of which every Base-backed object supports).
//
// The declared chain is fixed at Init and never mutated, so concurrent
// QueryInterface calls need no synchronization beyond the count itself.
type Base struct {
	refs  atomic.Int64
	self  Unknown
	chain []guid.GUID

	destroy func()

	weakMu sync.Mutex
	weak   *weakReference
}

// Init establishes the object with a reference count of one, owned by the
// caller. self must be the concrete object embedding this Base; destroy, if
// non-nil, runs exactly once when the count reaches zero. Init must be
// called before any other method and exactly once.
func (b *Base) Init(self Unknown, destroy func(), chain ...guid.GUID) {
	if self == nil {
		log.Panic().Msg("com: Base.Init with nil self")
	}
	if !b.refs.CompareAndSwap(0, 1) {
		log.Panic().Msg("com: Base.Init called twice")
	}
	b.self = self
	b.destroy = destroy
	b.chain = append([]guid.GUID(nil), chain...)
}

// Supports reports whether iid is the base capability, the weak-source
// capability, or a member of the declared chain. It never touches the count.
func (b *Base) Supports(iid guid.GUID) bool {
	if iid == IIDUnknown || iid == IIDWeakReferenceSource {
		return true
	}
	for _, member := range b.chain {
		if member == iid {
			return true
		}
	}
	return false
}

// QueryInterface implements Unknown. Every supported identifier resolves to
// the same concrete instance; the caller narrows the returned reference to
// the operation set it asked for.
func (b *Base) QueryInterface(iid guid.GUID) (Unknown, hresult.Result) {
	b.checkInit()
	if !b.Supports(iid) {
		return nil, hresult.FailureNoInterface
	}
	b.AddRef()
	return b.self, hresult.OK
}

// AddRef implements Unknown.
func (b *Base) AddRef() uint32 {
	n := b.refs.Add(1)
	if n <= 1 {
		// 1 means the count was zero: either Init was never called or a
		// stale pointer is being revived after destruction.
		log.Panic().Int64("count", n).Msg("com: AddRef on a dead or uninitialized object")
	}
	return uint32(n)
}

// Release implements Unknown. The caller that drives the count to zero runs
// the destroy hook before returning; the zero transition is observed exactly
// once under any interleaving.
func (b *Base) Release() uint32 {
	n := b.refs.Add(-1)
	if n < 0 {
		log.Panic().Int64("count", n).Msg("com: Release past zero")
	}
	if n == 0 && b.destroy != nil {
		b.destroy()
	}
	return uint32(n)
}

// GetWeakReference implements WeakReferenceSource. The tear-off is created
// on demand and cached while anyone still holds it; each call returns an
// owned reference the caller must release. The source's own count is not
// touched.
func (b *Base) GetWeakReference() (WeakReference, hresult.Result) {
	b.checkInit()
	b.weakMu.Lock()
	defer b.weakMu.Unlock()
	if b.weak == nil || !b.weak.tryAcquire() {
		b.weak = newWeakReference(b)
	}
	return b.weak, hresult.OK
}

func (b *Base) checkInit() {
	if b.self == nil {
		log.Panic().Msg("com: Base used before Init")
	}
}

// tryAcquireStrong is the increment-if-alive primitive the weak tear-off
// resolves through. It increments the count only when the count is still
// nonzero, so a resolve can never race the terminal release into reviving a
// partially destroyed object: the outcome is exactly "alive, reference
// taken" or "dead, no change".
func (b *Base) tryAcquireStrong() bool {
	for {
		n := b.refs.Load()
		if n <= 0 {
			return false
		}
		if b.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}
