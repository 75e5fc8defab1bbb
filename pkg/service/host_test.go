package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nvmeof/gateway/api/proto"
	"github.com/nvmeof/gateway/pkg/statemap"
)

func TestHostAddExplicitThenRejectsWildcard(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	addSubsystem(t, rig, "nqn.x", 0)

	_, err := rig.server.HostAdd(ctx, &proto.HostAddRequest{Nqn: "nqn.x", HostNqn: "nqn.host1"})
	require.NoError(t, err)

	_, err = rig.server.HostAdd(ctx, &proto.HostAddRequest{Nqn: "nqn.x", HostNqn: "*"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
}

func TestHostAddWildcardThenRejectsExplicit(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	addSubsystem(t, rig, "nqn.x", 0)

	_, err := rig.server.HostAdd(ctx, &proto.HostAddRequest{Nqn: "nqn.x", HostNqn: "*"})
	require.NoError(t, err)

	_, err = rig.server.HostAdd(ctx, &proto.HostAddRequest{Nqn: "nqn.x", HostNqn: "nqn.host1"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
}

func TestHostAddMaterializesPSKAndRegistersKeyring(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	addSubsystem(t, rig, "nqn.x", 0)

	_, err := rig.server.HostAdd(ctx, &proto.HostAddRequest{Nqn: "nqn.x", HostNqn: "nqn.host1", Psk: "NVMeTLSkey-1:01:deadbeef:"})
	require.NoError(t, err)

	assert.Equal(t, 1, rig.engine.countCalls("keyring_file_add_key"))
	_, ok := rig.store.Get("key/nqn.x/nqn.host1/psk")
	assert.True(t, ok)
}

func TestHostAddWildcardFlipsSubsystemAllowAnyHost(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	addSubsystem(t, rig, "nqn.x", 0)

	_, err := rig.server.HostAdd(ctx, &proto.HostAddRequest{Nqn: "nqn.x", HostNqn: "*"})
	require.NoError(t, err)

	rec, ok := rig.store.Get("sub/nqn.x")
	require.True(t, ok)
	sub, ok := statemap.DecodeSubsystem(rec)
	require.True(t, ok)
	assert.True(t, sub.AllowAnyHost)
}

func TestHostDelIsIdempotentAndRevokesKeys(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	addSubsystem(t, rig, "nqn.x", 0)

	_, err := rig.server.HostAdd(ctx, &proto.HostAddRequest{Nqn: "nqn.x", HostNqn: "nqn.host1", Psk: "NVMeTLSkey-1:01:deadbeef:"})
	require.NoError(t, err)

	_, err = rig.server.HostDel(ctx, &proto.HostDelRequest{Nqn: "nqn.x", HostNqn: "nqn.host1"})
	require.NoError(t, err)

	_, ok := rig.store.Get("hst/nqn.x/nqn.host1")
	assert.False(t, ok)
	_, ok = rig.store.Get("key/nqn.x/nqn.host1/psk")
	assert.False(t, ok)

	// Deleting an already-absent host must also succeed.
	_, err = rig.server.HostDel(ctx, &proto.HostDelRequest{Nqn: "nqn.x", HostNqn: "nqn.host1"})
	require.NoError(t, err)
}
