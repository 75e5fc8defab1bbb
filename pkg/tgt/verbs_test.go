package tgt

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNamespaceReturnsAssignedNSID(t *testing.T) {
	fe, sock := startFakeEngine(t)
	fe.result = json.RawMessage(`3`)

	a, err := Dial(Config{Socket: sock, Timeout: time.Second})
	require.NoError(t, err)
	defer a.Close()

	nsid, err := a.CreateNamespace(context.Background(), CreateNamespaceParams{NQN: "nqn.x", BdevName: "demo_image"})
	require.NoError(t, err)
	assert.Equal(t, uint32(3), nsid)
}

func TestGetSubsystemsDecodesNestedStructures(t *testing.T) {
	fe, sock := startFakeEngine(t)
	fe.result = json.RawMessage(`[{"nqn":"nqn.x","serial_number":"S1","allow_any_host":true,
		"namespaces":[{"nsid":1,"bdev_name":"demo_image","uuid":"u1"}],
		"listen_addresses":[{"trtype":"tcp","adrfam":"ipv4","traddr":"192.168.13.3","trsvcid":"4420"}],
		"hosts":[]}]`)

	a, err := Dial(Config{Socket: sock, Timeout: time.Second})
	require.NoError(t, err)
	defer a.Close()

	subs, err := a.GetSubsystems(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "nqn.x", subs[0].NQN)
	assert.True(t, subs[0].AllowAnyHost)
	require.Len(t, subs[0].Namespaces, 1)
	assert.EqualValues(t, 1, subs[0].Namespaces[0].NSID)
	require.Len(t, subs[0].Listeners, 1)
	assert.Equal(t, "192.168.13.3", subs[0].Listeners[0].Address)
}

func TestListConnectedHostsDecodesFlags(t *testing.T) {
	fe, sock := startFakeEngine(t)
	fe.result = json.RawMessage(`[{"hostnqn":"nqn.host","cntlid":7,"num_io_qpairs":4,"secure":true,"psk":true,"dhchap":false}]`)

	a, err := Dial(Config{Socket: sock, Timeout: time.Second})
	require.NoError(t, err)
	defer a.Close()

	hosts, err := a.ListConnectedHosts(context.Background(), "nqn.x")
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, "nqn.host", hosts[0].HostNQN)
	assert.True(t, hosts[0].UsePSK)
	assert.False(t, hosts[0].UseDHCHAP)
}

func TestAddKeyringEntrySendsNameAndPath(t *testing.T) {
	_, sock := startFakeEngine(t)

	a, err := Dial(Config{Socket: sock, Timeout: time.Second})
	require.NoError(t, err)
	defer a.Close()

	err = a.AddKeyringEntry(context.Background(), KeyringEntry{Name: "sub_nqn.x_psk", Path: "/var/tmp/sub_nqn.x/psk0"})
	assert.NoError(t, err)
}
