package com

import (
	"sync"
)

// Allocator is the boundary-buffer contract: exactly one allocate/free pair
// must be agreed upon by both sides of any module boundary that transfers an
// allocated buffer by value. Letting each side default to a private
// allocator for such transfers is the single most likely source of memory
// corruption this model exists to avoid.
type Allocator interface {
	// Allocate returns a buffer of the requested size, or nil on failure.
	Allocate(size int) []byte

	// Free releases a buffer obtained from Allocate. Free(nil) is a no-op.
	Free(buf []byte)
}

// heapAllocator is the default process-wide pair, backed by the Go heap.
// Release is a no-op since reclamation is the collector's job; what matters
// is that both sides route through the same pair.
type heapAllocator struct{}

func (heapAllocator) Allocate(size int) []byte {
	if size < 0 {
		return nil
	}
	return make([]byte, size)
}

func (heapAllocator) Free(buf []byte) {}

var (
	sharedMu        sync.RWMutex
	sharedAllocator Allocator = heapAllocator{}
)

// SharedAllocator returns the single process-wide allocator pair.
func SharedAllocator() Allocator {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return sharedAllocator
}

// SetSharedAllocator replaces the process-wide pair. Call once, at startup,
// before any boundary-crossing buffer exists; a nil allocator restores the
// default.
func SetSharedAllocator(a Allocator) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if a == nil {
		a = heapAllocator{}
	}
	sharedAllocator = a
}
