package main

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// usageErr marks a failure the CLI itself detected before making any
// RPC: a bad flag combination, an unparsable argument. It always maps
// to exit code 1, independent of whatever the server might have said.
type usageErr struct{ err error }

func (e *usageErr) Error() string { return e.err.Error() }
func (e *usageErr) Unwrap() error { return e.err }

func usageErrorf(format string, args ...interface{}) error {
	return &usageErr{err: fmt.Errorf(format, args...)}
}

// exitCodeOf classifies an error returned from rootCmd.Execute() into
// one of the CLI's four exit codes. A *usageErr is always 1, and so is
// any error that does not carry a gRPC status. A gRPC status whose
// code is Unavailable or DeadlineExceeded means gwctl never got a
// meaningful answer from the server — 3. Any other non-OK gRPC status
// is a server-side rejection of the request — 2.
func exitCodeOf(err error) int {
	var ue *usageErr
	if errors.As(err, &ue) {
		return exitUsage
	}

	st, ok := status.FromError(err)
	if !ok {
		// Not a gRPC status at all: cobra argument validation, a bad
		// flag, or a malformed --server target string.
		return exitUsage
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return exitConnection
	case codes.OK:
		return exitOK
	default:
		return exitServer
	}
}
