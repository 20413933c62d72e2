package com

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/nanocom/guid"
	"github.com/danmuck/nanocom/hresult"
)

// weakReference is the tear-off behind WeakReference: a standalone object
// with its own count, holding a non-owning link to the target's Base. It
// deliberately does not embed Base, so it is not itself a weak source.
type weakReference struct {
	refs   atomic.Int64
	target *Base
}

func newWeakReference(target *Base) *weakReference {
	w := &weakReference{target: target}
	w.refs.Store(1)
	return w
}

// tryAcquire revives the cached tear-off for another GetWeakReference call,
// unless every previous holder has already released it.
func (w *weakReference) tryAcquire() bool {
	for {
		n := w.refs.Load()
		if n <= 0 {
			return false
		}
		if w.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (w *weakReference) QueryInterface(iid guid.GUID) (Unknown, hresult.Result) {
	if iid != IIDUnknown && iid != IIDWeakReference {
		return nil, hresult.FailureNoInterface
	}
	w.AddRef()
	return w, hresult.OK
}

func (w *weakReference) AddRef() uint32 {
	n := w.refs.Add(1)
	if n <= 1 {
		log.Panic().Int64("count", n).Msg("com: AddRef on a dead weak reference")
	}
	return uint32(n)
}

func (w *weakReference) Release() uint32 {
	n := w.refs.Add(-1)
	if n < 0 {
		log.Panic().Int64("count", n).Msg("com: Release past zero on a weak reference")
	}
	// Nothing to destroy: the tear-off owns no resources, and the target
	// link is non-owning by definition.
	return uint32(n)
}

// Resolve implements WeakReference. Success with a nil reference means the
// target is gone; callers must always check for it.
func (w *weakReference) Resolve(iid guid.GUID) (Unknown, hresult.Result) {
	if !w.target.tryAcquireStrong() {
		return nil, hresult.OK
	}
	// We now hold a strong reference; narrow it to the requested capability.
	if !w.target.Supports(iid) {
		w.target.Release()
		return nil, hresult.FailureNoInterface
	}
	return w.target.self, hresult.OK
}
