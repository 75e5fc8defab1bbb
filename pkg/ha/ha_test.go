package ha

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/locks"
	"github.com/nvmeof/gateway/pkg/statemap"
	"github.com/nvmeof/gateway/pkg/tgt"
)

// fakeLister returns a fixed NQN list, or an error if told to.
type fakeLister struct {
	nqns []string
	err  error
}

func (f *fakeLister) SubsystemNQNs(ctx context.Context) ([]string, error) {
	return f.nqns, f.err
}

// ana call recorded by the fake engine.
type anaCall struct {
	NQN   string
	Group int
	State string
}

type fakeEngine struct {
	mu    sync.Mutex
	calls []anaCall
}

func (fe *fakeEngine) record(c anaCall) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.calls = append(fe.calls, c)
}

func (fe *fakeEngine) snapshot() []anaCall {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	out := make([]anaCall, len(fe.calls))
	copy(out, fe.calls)
	return out
}

func startFakeEngine(t *testing.T) (*fakeEngine, string) {
	t.Helper()
	sock := filepath.Join(t.TempDir(), "spdk.sock")
	lis, err := net.Listen("unix", sock)
	require.NoError(t, err)

	fe := &fakeEngine{}
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
				ID     uint64          `json:"id"`
				Method string          `json:"method"`
				Params json.RawMessage `json:"params"`
			}
			if json.Unmarshal(line, &req) != nil {
				continue
			}
			if req.Method == "nvmf_subsystem_listener_set_ana_state" {
				var params struct {
					NQN      string `json:"nqn"`
					ANAGrpID int    `json:"anagrpid"`
					ANAState string `json:"ana_state"`
				}
				_ = json.Unmarshal(req.Params, &params)
				fe.record(anaCall{NQN: params.NQN, Group: params.ANAGrpID, State: params.ANAState})
			}
			resp, _ := json.Marshal(map[string]interface{}{"jsonrpc": "2.0", "id": req.ID, "result": true})
			resp = append(resp, '\n')
			if _, err := conn.Write(resp); err != nil {
				return
			}
		}
	}()
	t.Cleanup(func() { lis.Close() })
	return fe, sock
}

func newTestMachine(t *testing.T, fe *fakeEngine, sock string, lister *fakeLister) *Machine {
	t.Helper()
	adapter, err := tgt.Dial(tgt.Config{Socket: sock, Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	store, err := statemap.Open(statemap.NewMemBackend(), filepath.Join(t.TempDir(), "mirror.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)

	return New("gw1", adapter, locks.NewEngine(), lister, store, broker)
}

func TestApplyAssignmentAddsOptimizedGroups(t *testing.T) {
	fe, sock := startFakeEngine(t)
	lister := &fakeLister{nqns: []string{"nqn.2016-06.io.spdk:cnode1"}}
	m := newTestMachine(t, fe, sock, lister)

	err := m.ApplyAssignment(context.Background(), map[int]bool{1: true, 2: true})
	require.NoError(t, err)

	groups := m.OptimizedGroups()
	assert.ElementsMatch(t, []int{1, 2}, groups)

	calls := fe.snapshot()
	require.Len(t, calls, 2)
	for _, c := range calls {
		assert.Equal(t, "optimized", c.State)
	}
}

func TestApplyAssignmentRemovesInaccessibleFirst(t *testing.T) {
	fe, sock := startFakeEngine(t)
	lister := &fakeLister{nqns: []string{"nqn.2016-06.io.spdk:cnode1"}}
	m := newTestMachine(t, fe, sock, lister)

	require.NoError(t, m.ApplyAssignment(context.Background(), map[int]bool{1: true, 2: true}))

	err := m.ApplyAssignment(context.Background(), map[int]bool{2: true, 3: true})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{2, 3}, m.OptimizedGroups())

	calls := fe.snapshot()
	// First call from the setup assignment (group 1, 2 optimized) plus
	// this round's removal of 1 and addition of 3 — find the two calls
	// belonging to this round and check ordering.
	var sawInaccessible, sawOptimizedAfter bool
	for _, c := range calls {
		if c.Group == 1 && c.State == "inaccessible" {
			sawInaccessible = true
		}
		if c.Group == 3 && c.State == "optimized" {
			if !sawInaccessible {
				t.Fatal("group 3 optimized before group 1 went inaccessible")
			}
			sawOptimizedAfter = true
		}
	}
	assert.True(t, sawInaccessible, "expected group 1 to transition to inaccessible")
	assert.True(t, sawOptimizedAfter, "expected group 3 to transition to optimized after")
}

func TestOptimizedGroupsReflectsLastAssignment(t *testing.T) {
	fe, sock := startFakeEngine(t)
	lister := &fakeLister{nqns: []string{"nqn.2016-06.io.spdk:cnode1"}}
	m := newTestMachine(t, fe, sock, lister)

	require.NoError(t, m.ApplyAssignment(context.Background(), map[int]bool{1: true}))
	assert.Equal(t, []int{1}, m.OptimizedGroups())

	require.NoError(t, m.ApplyAssignment(context.Background(), map[int]bool{}))
	assert.Empty(t, m.OptimizedGroups())
}

func TestApplyAssignmentPropagatesListerError(t *testing.T) {
	fe, sock := startFakeEngine(t)
	lister := &fakeLister{err: errors.New("subsystem listing unavailable")}
	m := newTestMachine(t, fe, sock, lister)

	err := m.ApplyAssignment(context.Background(), map[int]bool{1: true})
	assert.Error(t, err)
	assert.Empty(t, m.OptimizedGroups(), "optimized set must not update when a transition fails")
}
