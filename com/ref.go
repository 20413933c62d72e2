package com

import (
	"github.com/danmuck/nanocom/guid"
	"github.com/danmuck/nanocom/hresult"
)

// Ref is a scoped owning handle around an Unknown. It exists so callers
// cannot leak or double-release by construction: Close releases exactly once
// on every exit path, and copies are taken explicitly with Clone.
type Ref struct {
	obj Unknown
}

// Adopt wraps an already-counted reference (for example the result of
// QueryInterface or a constructor) without touching the count.
func Adopt(obj Unknown) Ref {
	return Ref{obj: obj}
}

// Acquire wraps obj and takes a new reference to it. A nil obj yields an
// empty handle.
func Acquire(obj Unknown) Ref {
	if obj != nil {
		obj.AddRef()
	}
	return Ref{obj: obj}
}

// Get returns the held object without transferring ownership. Nil when the
// handle is empty.
func (r *Ref) Get() Unknown {
	return r.obj
}

// IsNil reports whether the handle is empty.
func (r *Ref) IsNil() bool {
	return r.obj == nil
}

// Clone returns a second owning handle to the same object.
func (r *Ref) Clone() Ref {
	return Acquire(r.obj)
}

// Detach hands the owned reference to the caller and empties the handle; a
// later Close is a no-op.
func (r *Ref) Detach() Unknown {
	obj := r.obj
	r.obj = nil
	return obj
}

// Close releases the held reference. Safe to call multiple times and on an
// empty handle, so it can sit in a defer unconditionally.
func (r *Ref) Close() {
	if r.obj == nil {
		return
	}
	obj := r.obj
	r.obj = nil
	obj.Release()
}

// Query narrows the held object to another capability, returning an owning
// handle for the result. On failure the returned handle is empty.
func (r *Ref) Query(iid guid.GUID) (Ref, hresult.Result) {
	if r.obj == nil {
		return Ref{}, hresult.FailureInvalidHandle
	}
	obj, hr := r.obj.QueryInterface(iid)
	if hr.Failed() {
		return Ref{}, hr
	}
	return Adopt(obj), hr
}
