package hresult

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
)

// Classifier overrides the failure code used for values no fixed category
// recognizes.
type Classifier func(err error) Result

func unexpectedFallback(error) Result {
	return FailureUnexpected
}

// FromError classifies err against a fixed, ordered set of known categories
// and returns the matching catalog code. An error produced by the result
// channel itself (*Failure) is unwrapped to its original code; everything
// else degrades to the nearest generic entry. Values outside the fixed set
// go to the fallback classifier (FailureUnexpected when none is supplied).
func FromError(err error, fallback ...Classifier) Result {
	if err == nil {
		return OK
	}

	var f *Failure
	switch {
	case errors.As(err, &f):
		return f.Code
	case errors.Is(err, os.ErrPermission):
		return FailureAccessDenied
	case errors.Is(err, os.ErrClosed):
		return FailureInvalidHandle
	case errors.Is(err, os.ErrInvalid):
		return FailureInvalidArgument
	case errors.Is(err, os.ErrNotExist):
		return FailureNotFound
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return FailureNoMoreItems
	case errors.Is(err, context.Canceled):
		return FailureCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return FailureOperationAborted
	case errors.Is(err, errors.ErrUnsupported):
		return FailureNotImplemented
	}

	if len(fallback) > 0 && fallback[0] != nil {
		return fallback[0](err)
	}
	return unexpectedFallback(err)
}

// FromRecovered classifies a recover() value at a module boundary. Panics
// raised by Check carry their exact code; runtime bounds violations map to
// not-found (the out-of-range category); other errors route through
// FromError; anything else goes to the fallback classifier.
//
// A nil value (no panic in flight) reports success, so the function can sit
// directly in a deferred recover block.
func FromRecovered(v any, fallback ...Classifier) Result {
	if v == nil {
		return OK
	}

	if f, ok := v.(*Failure); ok {
		return f.Code
	}
	if re, ok := v.(runtime.Error); ok {
		msg := re.Error()
		if strings.Contains(msg, "out of range") || strings.Contains(msg, "slice bounds") {
			return FailureNotFound
		}
		if strings.Contains(msg, "nil pointer") || strings.Contains(msg, "invalid memory address") {
			return FailureInvalidArgument
		}
		return FailureUnexpected
	}
	if err, ok := v.(error); ok {
		return FromError(err, fallback...)
	}

	if len(fallback) > 0 && fallback[0] != nil {
		return fallback[0](recoveredError{v})
	}
	return FailureUnexpected
}

// recoveredError adapts a non-error panic value for a fallback Classifier.
type recoveredError struct {
	value any
}

func (r recoveredError) Error() string {
	if s, ok := r.value.(string); ok {
		return s
	}
	return "recovered non-error panic value"
}
