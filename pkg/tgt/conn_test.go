package tgt

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

	"github.com/nvmeof/gateway/pkg/gwerr"
)

// fakeEngine is a minimal stand-in for the TGT JSON-RPC socket: it
// accepts one connection, echoes back a canned result per request id,
// and optionally an error instead.
type fakeEngine struct {
	listener net.Listener
	result   json.RawMessage
	rpcErr   *rpcError
}

func startFakeEngine(t *testing.T) (*fakeEngine, string) {
	t.Helper()
	sock := filepath.Join(t.TempDir(), "spdk.sock")
	lis, err := net.Listen("unix", sock)
	require.NoError(t, err)

	fe := &fakeEngine{listener: lis}
	go fe.serve()
	t.Cleanup(func() { lis.Close() })
	return fe, sock
}

func (fe *fakeEngine) serve() {
	conn, err := fe.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}
		var req rpcRequest
		if json.Unmarshal(line, &req) != nil {
			continue
		}
		resp := rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: fe.result, Error: fe.rpcErr}
		out, _ := json.Marshal(resp)
		out = append(out, '\n')
		if _, err := conn.Write(out); err != nil {
			return
		}
	}
}

func TestDialAndCallRoundTrip(t *testing.T) {
	fe, sock := startFakeEngine(t)
	fe.result = json.RawMessage(`{"nqn":"nqn.2016-06.io.spdk:cnode1"}`)

	a, err := Dial(Config{Socket: sock, Timeout: time.Second})
	require.NoError(t, err)
	defer a.Close()

	var out struct {
		NQN string `json:"nqn"`
	}
	err = a.Call(context.Background(), "nvmf_get_subsystems", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "nqn.2016-06.io.spdk:cnode1", out.NQN)
}

func TestCallSurfacesEngineError(t *testing.T) {
	fe, sock := startFakeEngine(t)
	fe.rpcErr = &rpcError{Code: 17, Message: "already exists"}

	a, err := Dial(Config{Socket: sock, Timeout: time.Second})
	require.NoError(t, err)
	defer a.Close()

	err = a.Call(context.Background(), "nvmf_create_subsystem", nil, nil)
	require.Error(t, err)
	assert.Equal(t, gwerr.AlreadyExists, gwerr.KindOf(err))
	assert.Contains(t, err.Error(), "already exists")
}

func TestCallMapsEngineErrnoToKind(t *testing.T) {
	cases := []struct {
		code int
		want gwerr.Kind
	}{
		{2, gwerr.NotFound},
		{17, gwerr.AlreadyExists},
		{22, gwerr.InvalidArgument},
		{16, gwerr.Aborted},
		{71, gwerr.Internal}, // unmapped code falls back to Internal
	}

	for _, tc := range cases {
		fe, sock := startFakeEngine(t)
		fe.rpcErr = &rpcError{Code: tc.code, Message: "engine error"}

		a, err := Dial(Config{Socket: sock, Timeout: time.Second})
		require.NoError(t, err)

		err = a.Call(context.Background(), "nvmf_subsystem_remove_ns", nil, nil)
		require.Error(t, err)
		assert.Equal(t, tc.want, gwerr.KindOf(err), "code=%d", tc.code)

		a.Close()
	}
}

func TestCallTimesOutWhenEngineNeverResponds(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "spdk.sock")
	lis, err := net.Listen("unix", sock)
	require.NoError(t, err)
	defer lis.Close()
	go func() {
		conn, err := lis.Accept()
		if err == nil {
			// Accept but never reply; the call must time out.
			defer conn.Close()
			r := bufio.NewReader(conn)
			_, _ = r.ReadBytes('\n')
			select {}
		}
	}()

	a, err := Dial(Config{Socket: sock, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	defer a.Close()

	err = a.Call(context.Background(), "nvmf_get_subsystems", nil, nil)
	assert.Equal(t, gwerr.DeadlineExceeded, gwerr.KindOf(err))
}

func TestDialFailsWhenSocketAbsent(t *testing.T) {
	_, err := Dial(Config{Socket: filepath.Join(t.TempDir(), "missing.sock"), Timeout: time.Second, ConnRetries: 0})
	assert.Error(t, err)
	assert.Equal(t, gwerr.Unavailable, gwerr.KindOf(err))
}
