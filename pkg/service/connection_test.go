package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nvmeof/gateway/api/proto"
)

func TestConnectionListIncludesDisconnectedACLEntries(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	addSubsystem(t, rig, "nqn.x", 0)

	_, err := rig.server.HostAdd(ctx, &proto.HostAddRequest{Nqn: "nqn.x", HostNqn: "nqn.host1"})
	require.NoError(t, err)

	resp, err := rig.server.ConnectionList(ctx, &proto.ConnectionListRequest{Nqn: "nqn.x"})
	require.NoError(t, err)
	require.Len(t, resp.Connections, 1)
	assert.Equal(t, "nqn.host1", resp.Connections[0].HostNqn)
	assert.False(t, resp.Connections[0].Connected)
}

func TestConnectionListSkipsWildcardACLRow(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	addSubsystem(t, rig, "nqn.x", 0)

	_, err := rig.server.HostAdd(ctx, &proto.HostAddRequest{Nqn: "nqn.x", HostNqn: "*"})
	require.NoError(t, err)

	resp, err := rig.server.ConnectionList(ctx, &proto.ConnectionListRequest{Nqn: "nqn.x"})
	require.NoError(t, err)
	assert.Empty(t, resp.Connections)
}

func TestConnectionListRejectsMalformedNQN(t *testing.T) {
	rig := newTestRig(t)
	_, err := rig.server.ConnectionList(context.Background(), &proto.ConnectionListRequest{Nqn: "bad"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestGetSubsystemsReflectsClusterState(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	addSubsystem(t, rig, "nqn.x", 0)
	_, err := rig.server.NamespaceAdd(ctx, &proto.NamespaceAddRequest{Nqn: "nqn.x", Pool: "rbd", Image: "img1"})
	require.NoError(t, err)

	resp, err := rig.server.GetSubsystems(ctx, &proto.GetSubsystemsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Subsystems, 1)
	assert.Equal(t, "nqn.x", resp.Subsystems[0].Nqn)
	require.Len(t, resp.Subsystems[0].Namespaces, 1)
}

func TestLogLevelRejectsUnknownLevel(t *testing.T) {
	rig := newTestRig(t)
	_, err := rig.server.LogLevel(context.Background(), &proto.LogLevelRequest{Level: "not-a-level"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestLogLevelAcceptsKnownLevel(t *testing.T) {
	rig := newTestRig(t)
	_, err := rig.server.LogLevel(context.Background(), &proto.LogLevelRequest{Level: "debug"})
	assert.NoError(t, err)
}

func TestSpdkLogLevelForwardsToEngine(t *testing.T) {
	rig := newTestRig(t)
	_, err := rig.server.SpdkLogLevel(context.Background(), &proto.SpdkLogLevelRequest{Level: "DEBUG"})
	require.NoError(t, err)
	assert.Equal(t, 1, rig.engine.countCalls("log_set_level"))
}
