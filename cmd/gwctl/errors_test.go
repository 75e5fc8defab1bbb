package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestExitCodeOfUsageErrIsAlwaysExitUsage(t *testing.T) {
	err := usageErrorf("--client-cert and --client-key must be given together")
	assert.Equal(t, exitUsage, exitCodeOf(err))
}

func TestExitCodeOfNonStatusErrorIsExitUsage(t *testing.T) {
	assert.Equal(t, exitUsage, exitCodeOf(errors.New("flag parsing failed")))
}

func TestExitCodeOfUnavailableIsExitConnection(t *testing.T) {
	err := status.Error(codes.Unavailable, "no route to host")
	assert.Equal(t, exitConnection, exitCodeOf(err))
}

func TestExitCodeOfDeadlineExceededIsExitConnection(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	err := status.FromContextError(ctx.Err()).Err()
	assert.Equal(t, exitConnection, exitCodeOf(err))
}

func TestExitCodeOfOtherStatusCodeIsExitServer(t *testing.T) {
	err := status.Error(codes.AlreadyExists, "subsystem already exists")
	assert.Equal(t, exitServer, exitCodeOf(err))
}

func TestExitCodeOfNilIsExitOK(t *testing.T) {
	assert.Equal(t, exitOK, exitCodeOf(nil))
}
