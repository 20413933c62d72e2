// Package hresult implements the 32-bit signed result convention used to
// report failure across module boundaries.
//
// Zero is the single canonical success value. Negative values (high bit set)
// are failures; positive values are reserved but treated as successes. The
// catalog constants below are compared byte-for-byte across independently
// built modules and must never change. Specific failure codes are meant for
// diagnostics, not control flow: programmatically relevant failure modes
// belong in a domain-specific outparam instead.
package hresult

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Result is a 32-bit signed result code. Success iff the value is >= 0.
type Result int32

// OK is the only success value. If you think you need a second success code,
// you probably want a domain-specific enum outparam instead.
const OK Result = 0

// Core failure codes.
const (
	FailurePending        Result = -0x7FFFFFF6 // 0x8000000a
	FailureNotImplemented Result = -0x7FFFBFFF // 0x80004001
	FailureNoInterface    Result = -0x7FFFBFFE // 0x80004002
	FailureAbort          Result = -0x7FFFBFFC // 0x80004004
	FailureUnspecified    Result = -0x7FFFBFFB // 0x80004005
	FailureUnexpected     Result = -0x7FFF0001 // 0x8000ffff
)

// Failure codes corresponding to well-known 16-bit platform error codes,
// mapped through the same 0x8007_0000 bit pattern as FromWin32 so the values
// stay interchangeable with the platform's own codes.
const (
	FailureAccessDenied            Result = -0x7FF8FFFB // FromWin32(5)
	FailureInvalidHandle           Result = -0x7FF8FFFA // FromWin32(6)
	FailureInvalidData             Result = -0x7FF8FFF3 // FromWin32(13)
	FailureOutOfMemory             Result = -0x7FF8FFF2 // FromWin32(14)
	FailureNotReady                Result = -0x7FF8FFEB // FromWin32(21)
	FailureBadCommand              Result = -0x7FF8FFEA // FromWin32(22)
	FailureNotSupported            Result = -0x7FF8FFCE // FromWin32(50)
	FailureInvalidArgument         Result = -0x7FF8FFA9 // FromWin32(87)
	FailureInsufficientBuffer      Result = -0x7FF8FF86 // FromWin32(122)
	FailureMoreData                Result = -0x7FF8FF16 // FromWin32(234)
	FailureNoMoreItems             Result = -0x7FF8FEFD // FromWin32(259)
	FailureOperationAborted        Result = -0x7FF8FC1D // FromWin32(995)
	FailureIOPending               Result = -0x7FF8FC1B // FromWin32(997)
	FailureNotFound                Result = -0x7FF8FB70 // FromWin32(1168)
	FailureCancelled               Result = -0x7FF8FB39 // FromWin32(1223)
	FailureDriverProcessTerminated Result = -0x7FF8FAF5 // FromWin32(1291)
	FailureDeviceRemoved           Result = -0x7FF8F9AF // FromWin32(1617)
	FailureNotConnected            Result = -0x7FF8F736 // FromWin32(2250)
)

// Succeeded reports whether r is a success. All non-negative values are
// successes; positive values are reserved future success variants.
func (r Result) Succeeded() bool {
	return r >= 0
}

// Failed is the exact complement of Succeeded.
func (r Result) Failed() bool {
	return !r.Succeeded()
}

// FromWin32 maps a 16-bit platform error code into the failure range via the
// fixed 0x8007_0000 bit pattern. The code 0 is the platform's "no error"
// sentinel and is not a failure; passing it is a caller contract violation
// and terminates the program.
func FromWin32(code uint16) Result {
	if code == 0 {
		log.Panic().Msg("hresult: FromWin32 called with the success sentinel 0")
	}
	return Result(int32(-0x7FF90000 + int32(code))) // 0x80070000 | code
}

// String renders the catalog name when r is a known code, and the raw
// 0x%08x form otherwise. Intended for log fields and diagnostics.
func (r Result) String() string {
	if name, ok := catalogNames[r]; ok {
		return name
	}
	return fmt.Sprintf("hresult(0x%08x)", uint32(r))
}

var catalogNames = map[Result]string{
	OK:                             "ok",
	FailurePending:                 "pending",
	FailureNotImplemented:          "not_implemented",
	FailureNoInterface:             "no_interface",
	FailureAbort:                   "abort",
	FailureUnspecified:             "unspecified",
	FailureUnexpected:              "unexpected",
	FailureAccessDenied:            "access_denied",
	FailureInvalidHandle:           "invalid_handle",
	FailureInvalidData:             "invalid_data",
	FailureOutOfMemory:             "out_of_memory",
	FailureNotReady:                "not_ready",
	FailureBadCommand:              "bad_command",
	FailureNotSupported:            "not_supported",
	FailureInvalidArgument:         "invalid_argument",
	FailureInsufficientBuffer:      "insufficient_buffer",
	FailureMoreData:                "more_data",
	FailureNoMoreItems:             "no_more_items",
	FailureOperationAborted:        "operation_aborted",
	FailureIOPending:               "io_pending",
	FailureNotFound:                "not_found",
	FailureCancelled:               "cancelled",
	FailureDriverProcessTerminated: "driver_process_terminated",
	FailureDeviceRemoved:           "device_removed",
	FailureNotConnected:            "not_connected",
}
