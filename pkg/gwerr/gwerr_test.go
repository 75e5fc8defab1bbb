package gwerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestKindOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	assert.Equal(t, NotFound, KindOf(New(NotFound, "missing")))
}

func TestToStatusMapsCanonicalKinds(t *testing.T) {
	cases := []struct {
		kind Kind
		code codes.Code
	}{
		{InvalidArgument, codes.InvalidArgument},
		{NotFound, codes.NotFound},
		{AlreadyExists, codes.AlreadyExists},
		{FailedPrecondition, codes.FailedPrecondition},
		{Aborted, codes.Aborted},
		{ResourceExhausted, codes.ResourceExhausted},
		{DeadlineExceeded, codes.DeadlineExceeded},
		{Internal, codes.Internal},
		{Unavailable, codes.Unavailable},
	}
	for _, c := range cases {
		err := New(c.kind, "x")
		st, ok := status.FromError(ToStatus(err))
		assert.True(t, ok)
		assert.Equal(t, c.code, st.Code())
	}
}

func TestToStatusWrapsUnknownErrorAsInternal(t *testing.T) {
	st, ok := status.FromError(ToStatus(errors.New("opaque")))
	assert.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
}

func TestToStatusNilIsNil(t *testing.T) {
	assert.NoError(t, ToStatus(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("socket reset")
	err := Wrap(Unavailable, cause, "tgt call failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, Unavailable, KindOf(err))
}

func TestWithEngineDetailIncludesTextInError(t *testing.T) {
	err := New(Internal, "apply failed").WithEngineDetail("ENOSPC")
	assert.Contains(t, err.Error(), "ENOSPC")
}

func TestLogLevelBuckets(t *testing.T) {
	assert.Equal(t, LevelInfo, NotFound.LogLevel())
	assert.Equal(t, LevelWarn, AlreadyExists.LogLevel())
	assert.Equal(t, LevelError, Internal.LogLevel())
}
