// Package gwerr defines the canonical error kinds every gateway
// component returns. Handlers never let a raw error or a panic cross
// a package boundary; they wrap it into one of these kinds first.
package gwerr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind is one of the canonical error categories. It is the only
// vocabulary gRPC status codes, log levels, and retry logic are
// allowed to branch on.
type Kind string

const (
	InvalidArgument  Kind = "invalid_argument"
	NotFound         Kind = "not_found"
	AlreadyExists    Kind = "already_exists"
	FailedPrecondition Kind = "failed_precondition"
	Aborted          Kind = "aborted"
	ResourceExhausted Kind = "resource_exhausted"
	DeadlineExceeded Kind = "deadline_exceeded"
	Internal         Kind = "internal"
	Unavailable      Kind = "unavailable"
)

// Error carries a Kind plus a human message and, when the failure
// originated from the TGT engine, the engine's own error text.
type Error struct {
	Kind         Kind
	Message      string
	EngineDetail string
	Cause        error
}

func (e *Error) Error() string {
	if e.EngineDetail != "" {
		return fmt.Sprintf("%s: %s (engine: %s)", e.Kind, e.Message, e.EngineDetail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an existing error, preserving it as Cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// WithEngineDetail returns a copy of e carrying the engine's raw
// error text, for inclusion in the gRPC status detail.
func (e *Error) WithEngineDetail(detail string) *Error {
	cp := *e
	cp.EngineDetail = detail
	return &cp
}

// KindOf extracts the Kind from err, defaulting to Internal for any
// error that was not produced by this package.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return Internal
}

var kindToCode = map[Kind]codes.Code{
	InvalidArgument:    codes.InvalidArgument,
	NotFound:           codes.NotFound,
	AlreadyExists:       codes.AlreadyExists,
	FailedPrecondition: codes.FailedPrecondition,
	Aborted:            codes.Aborted,
	ResourceExhausted:  codes.ResourceExhausted,
	DeadlineExceeded:   codes.DeadlineExceeded,
	Internal:           codes.Internal,
	Unavailable:        codes.Unavailable,
}

// ToStatus converts err into a gRPC status, mapping unrecognized
// errors to codes.Internal rather than leaking their text verbatim.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	var ge *Error
	if errors.As(err, &ge) {
		code, ok := kindToCode[ge.Kind]
		if !ok {
			code = codes.Internal
		}
		return status.Error(code, ge.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// LogLevel buckets a Kind the way LightBitsLabs' grpcutil buckets
// gRPC codes: client-caused failures warn, everything else that isn't
// a clean not-found/unavailable is an error.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (k Kind) LogLevel() Level {
	switch k {
	case NotFound, DeadlineExceeded, Unavailable:
		return LevelInfo
	case InvalidArgument, AlreadyExists, FailedPrecondition, Aborted, ResourceExhausted:
		return LevelWarn
	default:
		return LevelError
	}
}
