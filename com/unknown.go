// Package com implements the capability/object model: reference-counted
// objects that can be dynamically cast to the capabilities they support,
// identified by guid values, with failures reported through the hresult
// channel.
//
// An object is created with a reference count of one, owned by its creator.
// Additional references are taken with AddRef and released with Release; the
// release that drives the count from one to zero destroys the object as part
// of that same call. The count is the only mutable shared state in the
// model and is maintained atomically, so independent owners on different
// goroutines may call QueryInterface/AddRef/Release concurrently.
//
// Weak observation of object lifetime is provided by the WeakReference
// tear-off, which has its own independent lifetime and never contributes to
// the target's count.
package com

import (
	"github.com/danmuck/nanocom/guid"
	"github.com/danmuck/nanocom/hresult"
)

// Well-known capability identifiers. These are fixed forever: changing one
// breaks every independently built implementor.
var (
	// IIDUnknown names the base reference-counting/casting capability.
	IIDUnknown = guid.MustParse("{00000000-0000-0000-c000-000000000046}")

	// IIDWeakReference names the weak-reference tear-off capability.
	IIDWeakReference = guid.MustParse("{00000037-0000-0000-c000-000000000046}")

	// IIDWeakReferenceSource names the capability for obtaining a weak
	// reference from a live object.
	IIDWeakReferenceSource = guid.MustParse("{00000038-0000-0000-c000-000000000046}")
)

// Unknown is the base capability every object supports.
//
// Every identifier in an object's declared chain resolves to the same
// underlying instance; a successful QueryInterface differs only in which
// operation set the caller is permitted to invoke through the returned view.
type Unknown interface {
	// QueryInterface returns a new owning reference to the same underlying
	// instance when the object supports the capability named by iid (the
	// count has already been incremented on success; the caller must release
	// it independently). When the capability is unsupported it returns
	// (nil, hresult.FailureNoInterface) with the count unchanged.
	QueryInterface(iid guid.GUID) (Unknown, hresult.Result)

	// AddRef increments the reference count and returns the new count. The
	// returned count is informational only; it is not a liveness check in
	// the presence of concurrent callers.
	AddRef() uint32

	// Release decrements the reference count and returns the new count.
	// The call that observes the transition from one to zero destroys the
	// object before returning; no other caller can observe that transition
	// for the same object.
	Release() uint32
}

// WeakReference is a non-owning observer of an object's lifetime. It is a
// standalone object with its own reference count, created by the target via
// its weak-source capability, and may outlive the target.
type WeakReference interface {
	Unknown

	// Resolve attempts to obtain a new owning reference to the target
	// capability named by iid. After the target has been destroyed it
	// returns (nil, hresult.OK): a defined, non-error outcome that callers
	// must always check for. While the target is alive it increments the
	// target's count and returns the reference.
	Resolve(iid guid.GUID) (Unknown, hresult.Result)
}

// WeakReferenceSource is the capability for obtaining a WeakReference to a
// live object. Obtaining one does not affect the source's own count.
type WeakReferenceSource interface {
	Unknown

	GetWeakReference() (WeakReference, hresult.Result)
}
