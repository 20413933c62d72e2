package com

import (
	"testing"

	"github.com/danmuck/nanocom/hresult"
)

func TestRefAdoptAndClose(t *testing.T) {
	w := newWidget()
	ref := Adopt(w)
	if ref.IsNil() || ref.Get() != Unknown(w) {
		t.Fatalf("adopt lost the object")
	}
	ref.Close()
	if !ref.IsNil() {
		t.Fatalf("closed handle must be empty")
	}
	if w.destroyed.Load() != 1 {
		t.Fatalf("adopted reference not released")
	}
	// Idempotent: double close is not a double release.
	ref.Close()
}

func TestRefAcquireTakesItsOwnReference(t *testing.T) {
	w := newWidget()
	ref := Acquire(w)
	ref.Close()
	if w.destroyed.Load() != 0 {
		t.Fatalf("Acquire/Close pair must net to zero, not steal the creator's reference")
	}
	w.Release()
	if w.destroyed.Load() != 1 {
		t.Fatalf("creator's release must destroy")
	}
}

func TestRefCloneAndDetach(t *testing.T) {
	w := newWidget()
	ref := Adopt(w)

	clone := ref.Clone()
	obj := clone.Detach()
	if obj != Unknown(w) {
		t.Fatalf("detach must hand back the object")
	}
	clone.Close() // empty after detach; must be a no-op
	obj.Release()

	ref.Close()
	if w.destroyed.Load() != 1 {
		t.Fatalf("destroy hook ran %d times", w.destroyed.Load())
	}
}

func TestRefQueryNarrowsWithOwnership(t *testing.T) {
	w := newWidget()
	ref := Adopt(w)
	defer ref.Close()

	view, hr := ref.Query(iidDerived)
	if hr.Failed() {
		t.Fatalf("query: %s", hr)
	}
	view.Close()
	if w.destroyed.Load() != 0 {
		t.Fatalf("view close must release only its own reference")
	}

	missing, hr := ref.Query(iidUnrelated)
	if hr != hresult.FailureNoInterface {
		t.Fatalf("expected no_interface, got %s", hr)
	}
	if !missing.IsNil() {
		t.Fatalf("failed query must yield an empty handle")
	}
}

func TestRefOnEmptyHandle(t *testing.T) {
	var ref Ref
	if !ref.IsNil() {
		t.Fatalf("zero value must be empty")
	}
	ref.Close() // no-op
	if _, hr := ref.Query(IIDUnknown); hr != hresult.FailureInvalidHandle {
		t.Fatalf("query on empty handle: %s", hr)
	}
	clone := ref.Clone()
	if !clone.IsNil() {
		t.Fatalf("clone of empty handle must be empty")
	}
}
