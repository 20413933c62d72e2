package com

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danmuck/nanocom/guid"
	"github.com/danmuck/nanocom/hresult"
	"github.com/danmuck/nanocom/internal/testutil/testlog"
)

// Test capability identifiers: iidDerived extends iidBase; iidUnrelated is
// never implemented by widget.
var (
	iidBase      = guid.MustParse("{5f7c2a10-9f13-4dc3-8e63-0f5d7c1b2a01}")
	iidDerived   = guid.MustParse("{5f7c2a10-9f13-4dc3-8e63-0f5d7c1b2a02}")
	iidUnrelated = guid.MustParse("{5f7c2a10-9f13-4dc3-8e63-0f5d7c1b2a03}")
)

// widget implements the base and derived capabilities through one Base.
type widget struct {
	Base
	destroyed atomic.Int32
}

func newWidget() *widget {
	w := &widget{}
	w.Init(w, func() { w.destroyed.Add(1) }, iidDerived, iidBase)
	return w
}

func TestQueryResolvesWholeChainToOneInstance(t *testing.T) {
	testlog.Start(t)
	w := newWidget()

	for _, iid := range []guid.GUID{IIDUnknown, iidBase, iidDerived} {
		obj, hr := w.QueryInterface(iid)
		if hr.Failed() {
			t.Fatalf("query %s: %s", iid, hr)
		}
		if obj != Unknown(w) {
			t.Fatalf("query %s must resolve to the same underlying instance", iid)
		}
		obj.Release()
	}

	if got := w.Release(); got != 0 {
		t.Fatalf("final release: count=%d", got)
	}
	if w.destroyed.Load() != 1 {
		t.Fatalf("destroy hook ran %d times", w.destroyed.Load())
	}
}

func TestQuerySharesOneCountAcrossViews(t *testing.T) {
	w := newWidget()

	a, hr := w.QueryInterface(iidBase)
	if hr.Failed() {
		t.Fatalf("query base: %s", hr)
	}
	b, hr := w.QueryInterface(iidDerived)
	if hr.Failed() {
		t.Fatalf("query derived: %s", hr)
	}

	// creator + two views
	if got := a.Release(); got != 2 {
		t.Fatalf("release view a: count=%d", got)
	}
	if got := b.Release(); got != 1 {
		t.Fatalf("release view b: count=%d", got)
	}
	if w.destroyed.Load() != 0 {
		t.Fatalf("object destroyed while the creator still owns it")
	}
	w.Release()
	if w.destroyed.Load() != 1 {
		t.Fatalf("destroy hook ran %d times", w.destroyed.Load())
	}
}

func TestQueryUnsupportedLeavesCountUnchanged(t *testing.T) {
	w := newWidget()
	defer w.Release()

	obj, hr := w.QueryInterface(iidUnrelated)
	if hr != hresult.FailureNoInterface {
		t.Fatalf("expected no_interface, got %s", hr)
	}
	if obj != nil {
		t.Fatalf("failed query must yield a nil reference")
	}
	// The count is untouched: one matched AddRef must bring it to 2.
	if got := w.AddRef(); got != 2 {
		t.Fatalf("count disturbed by failed query: %d", got)
	}
	w.Release()
}

func TestAddRefReleaseCountsAreInformational(t *testing.T) {
	w := newWidget()
	if got := w.AddRef(); got != 2 {
		t.Fatalf("AddRef: %d", got)
	}
	if got := w.Release(); got != 1 {
		t.Fatalf("Release: %d", got)
	}
	if got := w.Release(); got != 0 {
		t.Fatalf("final Release: %d", got)
	}
}

func TestZeroTransitionIsUniqueUnderContention(t *testing.T) {
	testlog.Start(t)
	const extra = 64
	for iter := 0; iter < 50; iter++ {
		w := newWidget()

		var wg sync.WaitGroup
		for i := 0; i < extra; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.AddRef()
			}()
		}
		wg.Wait()

		// extra acquired references plus the creator's: N+1 releases.
		for i := 0; i < extra+1; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.Release()
			}()
		}
		wg.Wait()

		if got := w.destroyed.Load(); got != 1 {
			t.Fatalf("iter %d: destroy hook ran %d times", iter, got)
		}
	}
}

func TestReleasePastZeroIsFatal(t *testing.T) {
	w := newWidget()
	w.Release()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on release past zero")
		}
	}()
	w.Release()
}

func TestAddRefOnDeadObjectIsFatal(t *testing.T) {
	w := newWidget()
	w.Release()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on AddRef after destruction")
		}
	}()
	w.AddRef()
}

func TestUseBeforeInitIsFatal(t *testing.T) {
	var b Base
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on use before Init")
		}
	}()
	b.QueryInterface(IIDUnknown)
}

func TestDoubleInitIsFatal(t *testing.T) {
	w := newWidget()
	defer w.Release()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on second Init")
		}
	}()
	w.Init(w, nil)
}

func TestConcurrentQueryNeedsNoExtraSynchronization(t *testing.T) {
	w := newWidget()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				obj, hr := w.QueryInterface(iidDerived)
				if hr.Failed() {
					t.Errorf("query: %s", hr)
					return
				}
				obj.Release()
			}
		}()
	}
	wg.Wait()
	if got := w.Release(); got != 0 {
		t.Fatalf("leaked references: count=%d", got)
	}
}
