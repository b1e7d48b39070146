package bigint

import "sync/atomic"

// ErrCode is the closed set of failure categories an operation can report.
// Arithmetic overflow never appears here: the representation is unbounded.
type ErrCode int32

const (
	OK ErrCode = iota
	IncorrectString
	MemoryAllocationError
	IncorrectFunctionArgument
	TooLargeToConvert
	DivisionByZero
	LengthIndivisibleByFour
	ErrorInDataStructure
)

var errStrings = map[ErrCode]string{
	OK:                        "ok",
	IncorrectString:           "incorrect string",
	MemoryAllocationError:     "memory allocation error",
	IncorrectFunctionArgument: "incorrect function argument",
	TooLargeToConvert:         "too large bigint to convert",
	DivisionByZero:            "division by zero",
	LengthIndivisibleByFour:   "length indivisible by four",
	ErrorInDataStructure:      "error in data structure",
}

// Strerror maps a code to a human-readable string. An unrecognized code
// maps to "unknown error", matching spec.md's strerror contract.
func Strerror(code ErrCode) string {
	if s, ok := errStrings[code]; ok {
		return s
	}
	return "unknown error"
}

// Error is the error type returned by every idiomatic bigint operation. It
// wraps one of the closed ErrCode values so callers can type-switch on the
// category without parsing strings.
type Error struct {
	Code ErrCode
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return Strerror(e.Code) + ": " + e.Msg
	}
	return Strerror(e.Code)
}

func newError(code ErrCode, msg string) *Error {
	setLastError(code)
	return &Error{Code: code, Msg: msg}
}

// lastErr is the process-wide last-error slot required by spec.md §3/§5.
// It is backed by an atomic so that, unlike the C original, sharing it
// across goroutines is safe by construction; it remains a single
// process-wide slot, not a per-goroutine one, exactly as the spec demands.
var lastErr atomic.Int32

func setLastError(code ErrCode) {
	lastErr.Store(int32(code))
}

// LastError returns the most recently recorded failure code. Successful
// operations never clear it, matching spec.md §7's propagation policy.
func LastError() ErrCode {
	return ErrCode(lastErr.Load())
}
