package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmeof/gateway/pkg/events"
)

type fakeController struct {
	mu sync.Mutex

	registerErr   error
	deregisterErr error

	registered   bool
	heartbeats   int
	deregistered bool

	notifyCh chan Assignment
}

func newFakeController() *fakeController {
	return &fakeController{notifyCh: make(chan Assignment, 4)}
}

func (f *fakeController) Register(ctx context.Context, gatewayName, group, nodeIP string) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.mu.Lock()
	f.registered = true
	f.mu.Unlock()
	return nil
}

func (f *fakeController) Heartbeat(ctx context.Context, gatewayName string) error {
	f.mu.Lock()
	f.heartbeats++
	f.mu.Unlock()
	return nil
}

func (f *fakeController) Deregister(ctx context.Context, gatewayName string) error {
	if f.deregisterErr != nil {
		return f.deregisterErr
	}
	f.mu.Lock()
	f.deregistered = true
	f.mu.Unlock()
	return nil
}

func (f *fakeController) Notifications(ctx context.Context, gatewayName string) (<-chan Assignment, error) {
	return f.notifyCh, nil
}

type fakeApplier struct {
	mu      sync.Mutex
	applied []map[int]bool
	err     error
}

func (f *fakeApplier) ApplyAssignment(ctx context.Context, assigned map[int]bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, assigned)
	return nil
}

func (f *fakeApplier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.applied)
}

func newTestClient(controller *fakeController, applier *fakeApplier) *Client {
	c := New("gw1", "group-a", "192.168.1.1", controller, applier, events.NewBroker())
	c.broker.Start()
	c.heartbeatInterval = 10 * time.Millisecond
	c.deregisterTimeout = time.Second
	return c
}

func TestStartRegistersAndBeginsHeartbeating(t *testing.T) {
	controller := newFakeController()
	applier := &fakeApplier{}
	client := newTestClient(controller, applier)
	defer client.broker.Stop()

	require.NoError(t, client.Start(context.Background()))

	assert.Eventually(t, func() bool {
		controller.mu.Lock()
		defer controller.mu.Unlock()
		return controller.registered && controller.heartbeats > 0
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, client.Stop(context.Background()))
	assert.True(t, controller.deregistered)
}

func TestStartFailsWhenRegisterErrors(t *testing.T) {
	controller := newFakeController()
	controller.registerErr = errors.New("controller unreachable")
	applier := &fakeApplier{}
	client := newTestClient(controller, applier)
	defer client.broker.Stop()

	err := client.Start(context.Background())
	assert.Error(t, err)
}

func TestNotificationLoopAppliesAssignments(t *testing.T) {
	controller := newFakeController()
	applier := &fakeApplier{}
	client := newTestClient(controller, applier)
	defer client.broker.Stop()

	require.NoError(t, client.Start(context.Background()))
	defer client.Stop(context.Background())

	controller.notifyCh <- Assignment{Groups: map[int]bool{1: true}}
	controller.notifyCh <- Assignment{Groups: map[int]bool{1: true, 2: true}}

	assert.Eventually(t, func() bool {
		return applier.count() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestStopDeregistersWithinTimeoutEvenIfCanceled(t *testing.T) {
	controller := newFakeController()
	applier := &fakeApplier{}
	client := newTestClient(controller, applier)
	defer client.broker.Stop()

	require.NoError(t, client.Start(context.Background()))

	err := client.Stop(context.Background())
	require.NoError(t, err)
	assert.True(t, controller.deregistered)
}

func TestStopSurfacesDeregisterError(t *testing.T) {
	controller := newFakeController()
	controller.deregisterErr = errors.New("controller timed out")
	applier := &fakeApplier{}
	client := newTestClient(controller, applier)
	defer client.broker.Stop()

	require.NoError(t, client.Start(context.Background()))

	err := client.Stop(context.Background())
	assert.Error(t, err)
}
