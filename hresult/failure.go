package hresult

import (
	"github.com/rs/zerolog/log"
)

// Failure is the error form of a failed Result, carrying the exact numeric
// code. It is the only error category that round-trips losslessly through
// the result channel: FromError(f.Err()) == f for every failure f.
type Failure struct {
	Code Result
}

// NewFailure wraps a failure code as an error. Wrapping a success value is a
// programmer contract violation, not a runtime condition, and terminates the
// program immediately rather than letting the misuse propagate.
func NewFailure(code Result) *Failure {
	if code.Succeeded() {
		log.Panic().Stringer("code", code).Msg("hresult: NewFailure called with a success value")
	}
	return &Failure{Code: code}
}

func (f *Failure) Error() string {
	return "hresult: " + f.Code.String()
}

// Err returns nil when r is a success and a *Failure carrying r otherwise.
// This is the raising half of the in-process convenience translation.
func (r Result) Err() error {
	if r.Succeeded() {
		return nil
	}
	return &Failure{Code: r}
}

// Check panics with a *Failure when r is a failure. Intended for in-process
// use only; the panic must be translated back to a code (FromRecovered)
// before crossing any module boundary.
func Check(r Result) {
	if r.Failed() {
		panic(&Failure{Code: r})
	}
}
