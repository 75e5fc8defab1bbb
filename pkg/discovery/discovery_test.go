package discovery

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/statemap"
)

func newTestStore(t *testing.T) *statemap.Store {
	t.Helper()
	store, err := statemap.Open(statemap.NewMemBackend(), filepath.Join(t.TempDir(), "mirror.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func putSubsystem(t *testing.T, store *statemap.Store, sub gwtypes.Subsystem) {
	t.Helper()
	payload, err := statemap.EncodeSubsystem(sub)
	require.NoError(t, err)
	_, err = store.CAS(context.Background(), statemap.SubsystemKey(sub.NQN), 0, payload, "gw1")
	require.NoError(t, err)
}

func putListener(t *testing.T, store *statemap.Store, l gwtypes.Listener) {
	t.Helper()
	payload, err := statemap.EncodeListener(l)
	require.NoError(t, err)
	key := statemap.ListenerKey(l.SubsystemNQN, l.GatewayName, l.AddressFamily, l.Address, l.Port)
	_, err = store.CAS(context.Background(), key, 0, payload, "gw1")
	require.NoError(t, err)
}

func putHost(t *testing.T, store *statemap.Store, h gwtypes.Host) {
	t.Helper()
	payload, err := statemap.EncodeHost(h)
	require.NoError(t, err)
	key := statemap.HostKey(h.SubsystemNQN, h.HostNQN)
	_, err = store.CAS(context.Background(), key, 0, payload, "gw1")
	require.NoError(t, err)
}

func TestRecordsForAllowAnyHostReturnsAllListeners(t *testing.T) {
	store := newTestStore(t)
	putSubsystem(t, store, gwtypes.Subsystem{NQN: "nqn.open", AllowAnyHost: true})
	putListener(t, store, gwtypes.Listener{SubsystemNQN: "nqn.open", GatewayName: "gw1", Transport: "tcp", AddressFamily: "ipv4", Address: "10.0.0.1", Port: "4420"})

	r := New(store)
	entries, err := r.RecordsFor(context.Background(), "nqn.any.host")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "nqn.open", entries[0].SubsystemNQN)
}

func TestRecordsForRestrictedSubsystemHidesUnlistedHost(t *testing.T) {
	store := newTestStore(t)
	putSubsystem(t, store, gwtypes.Subsystem{NQN: "nqn.closed"})
	putListener(t, store, gwtypes.Listener{SubsystemNQN: "nqn.closed", GatewayName: "gw1", Transport: "tcp", AddressFamily: "ipv4", Address: "10.0.0.2", Port: "4420"})
	putHost(t, store, gwtypes.Host{SubsystemNQN: "nqn.closed", HostNQN: "nqn.allowed"})

	r := New(store)

	entries, err := r.RecordsFor(context.Background(), "nqn.stranger")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = r.RecordsFor(context.Background(), "nqn.allowed")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "nqn.closed", entries[0].SubsystemNQN)
}

func TestRecordsForWildcardHostACLAllowsEveryHost(t *testing.T) {
	store := newTestStore(t)
	putSubsystem(t, store, gwtypes.Subsystem{NQN: "nqn.wild"})
	putListener(t, store, gwtypes.Listener{SubsystemNQN: "nqn.wild", GatewayName: "gw1", Transport: "tcp", AddressFamily: "ipv4", Address: "10.0.0.3", Port: "4420"})
	putHost(t, store, gwtypes.Host{SubsystemNQN: "nqn.wild", HostNQN: "*"})

	r := New(store)
	entries, err := r.RecordsFor(context.Background(), "nqn.whoever")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRecordsForNoListenersReturnsEmpty(t *testing.T) {
	store := newTestStore(t)
	putSubsystem(t, store, gwtypes.Subsystem{NQN: "nqn.nolisteners", AllowAnyHost: true})

	r := New(store)
	entries, err := r.RecordsFor(context.Background(), "nqn.x")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestServeAnswersProbeOverTCP(t *testing.T) {
	store := newTestStore(t)
	putSubsystem(t, store, gwtypes.Subsystem{NQN: "nqn.open", AllowAnyHost: true})
	putListener(t, store, gwtypes.Listener{SubsystemNQN: "nqn.open", GatewayName: "gw1", Transport: "tcp", AddressFamily: "ipv4", Address: "10.0.0.1", Port: "4420"})

	r := New(store)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lisProbe, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lisProbe.Addr().String()
	lisProbe.Close()

	errCh := make(chan error, 1)
	go func() { errCh <- r.Serve(ctx, addr) }()

	var conn net.Conn
	require.Eventually(t, func() bool {
		conn, err = net.Dial("tcp", addr)
		return err == nil
	}, time.Second, 5*time.Millisecond)
	defer conn.Close()

	_, err = conn.Write([]byte("nqn.any.host\n"))
	require.NoError(t, err)

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	require.NoError(t, err)

	var entries []LogPageEntry
	require.NoError(t, json.Unmarshal(line, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "nqn.open", entries[0].SubsystemNQN)

	cancel()
	assert.NoError(t, <-errCh)
}
