package service

import (
	"bufio"
	"encoding/json"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nvmeof/gateway/pkg/creds"
	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/locks"
	"github.com/nvmeof/gateway/pkg/statemap"
	"github.com/nvmeof/gateway/pkg/tgt"
)

// fakeEngine is a generic JSON-RPC echo server standing in for TGT:
// it records every method invoked and can be told to fail the next N
// calls against a given method.
type fakeEngine struct {
	mu      sync.Mutex
	calls   []string
	failing map[string]int
}

func startFakeEngine(t *testing.T) (*fakeEngine, string) {
	t.Helper()
	sock := filepath.Join(t.TempDir(), "spdk.sock")
	lis, err := net.Listen("unix", sock)
	require.NoError(t, err)

	fe := &fakeEngine{failing: make(map[string]int)}
	go func() {
		conn, err := lis.Accept()
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
			var req struct {
				ID     uint64 `json:"id"`
				Method string `json:"method"`
			}
			if json.Unmarshal(line, &req) != nil {
				continue
			}

			fe.mu.Lock()
			fe.calls = append(fe.calls, req.Method)
			fail := fe.failing[req.Method] > 0
			if fail {
				fe.failing[req.Method]--
			}
			fe.mu.Unlock()

			var resp map[string]interface{}
			if fail {
				resp = map[string]interface{}{"jsonrpc": "2.0", "id": req.ID, "error": map[string]interface{}{"code": -1, "message": "engine busy"}}
			} else {
				resp = map[string]interface{}{"jsonrpc": "2.0", "id": req.ID, "result": nil}
			}
			out, _ := json.Marshal(resp)
			out = append(out, '\n')
			if _, err := conn.Write(out); err != nil {
				return
			}
		}
	}()
	t.Cleanup(func() { lis.Close() })
	return fe, sock
}

func (fe *fakeEngine) failNextCalls(method string, n int) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.failing[method] = n
}

func (fe *fakeEngine) countCalls(method string) int {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	n := 0
	for _, m := range fe.calls {
		if m == method {
			n++
		}
	}
	return n
}

type testRig struct {
	server *Server
	engine *fakeEngine
	store  *statemap.Store
	broker *events.Broker
}

func newTestRig(t *testing.T) *testRig {
	return newTestRigWithBackend(t, statemap.NewMemBackend())
}

// newTestRigWithBackend builds a rig on a caller-supplied backend so
// tests can construct two rigs (simulating two gateways) that share
// one cluster state map while keeping independent local caches,
// mirrors, and TGT engines.
func newTestRigWithBackend(t *testing.T, backend statemap.Backend) *testRig {
	t.Helper()
	fe, sock := startFakeEngine(t)

	adapter, err := tgt.Dial(tgt.Config{Socket: sock, Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	store, err := statemap.Open(backend, filepath.Join(t.TempDir(), "mirror.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cipher, err := creds.NewCipher(creds.DeriveClusterSecret("cluster-secret"))
	require.NoError(t, err)
	credsMgr := creds.NewManager(t.TempDir(), adapter, cipher)

	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)

	srv := NewServer("gw1", store, adapter, locks.NewEngine(), locks.NewSubsystems(), credsMgr, broker)
	return &testRig{server: srv, engine: fe, store: store, broker: broker}
}
