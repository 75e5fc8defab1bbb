// Package monitor implements the Monitor Client: registration,
// heartbeats, and ANA-notification receipt against the cluster's ANA
// controller, driving the HA state machine on every assignment
// change.
package monitor

import (
	"context"
	"time"

	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/gwerr"
	"github.com/nvmeof/gateway/pkg/log"
)

// Assignment is one ANA-notification payload: the full set of groups
// the controller currently wants this gateway to serve as optimized.
type Assignment struct {
	Groups map[int]bool
}

// ControllerClient is the abstract collaborator: the distributed
// object store's ANA/discovery controller, out of scope for this
// repo. A concrete implementation talks to the controller's own wire
// protocol; this package only needs the shape below.
type ControllerClient interface {
	Register(ctx context.Context, gatewayName, group, nodeIP string) error
	Heartbeat(ctx context.Context, gatewayName string) error
	Deregister(ctx context.Context, gatewayName string) error
	// Notifications delivers ANA-group assignment changes for
	// gatewayName. The channel is closed if the subscription is lost;
	// Client resubscribes transparently.
	Notifications(ctx context.Context, gatewayName string) (<-chan Assignment, error)
}

// Applier is the HA state machine's narrow interface, so Client does
// not depend on package ha directly.
type Applier interface {
	ApplyAssignment(ctx context.Context, assigned map[int]bool) error
}

// Client is the Monitor Client. It registers on Start, heartbeats
// periodically, feeds every notification to the HA machine, and
// deregisters on Stop within the window the controller allows before
// it blocklists this gateway's address to fence stale IO.
type Client struct {
	gatewayName string
	group       string
	nodeIP      string

	controller ControllerClient
	ha         Applier
	broker     *events.Broker

	heartbeatInterval time.Duration
	deregisterTimeout time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func New(gatewayName, group, nodeIP string, controller ControllerClient, ha Applier, broker *events.Broker) *Client {
	return &Client{
		gatewayName:       gatewayName,
		group:             group,
		nodeIP:            nodeIP,
		controller:        controller,
		ha:                ha,
		broker:            broker,
		heartbeatInterval: 10 * time.Second,
		deregisterTimeout: 30 * time.Second,
	}
}

// Start registers the gateway and begins the heartbeat and
// notification loops. It makes a single registration attempt: if
// Register fails, Start returns that error wrapped as Unavailable and
// starts no loops.
func (c *Client) Start(ctx context.Context) error {
	if err := c.controller.Register(ctx, c.gatewayName, c.group, c.nodeIP); err != nil {
		return gwerr.Wrap(gwerr.Unavailable, err, "monitor: registering gateway %q", c.gatewayName)
	}
	c.broker.Publish(&events.Event{Type: events.EventGatewayRegistered, Message: "gateway registered with controller"})

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.heartbeatLoop(runCtx)
	go c.notificationLoop(runCtx)

	return nil
}

// Stop deregisters the gateway within the deregister timeout and
// halts the background loops.
func (c *Client) Stop(ctx context.Context) error {
	if c.cancel != nil {
		c.cancel()
	}

	deregCtx, cancel := context.WithTimeout(context.Background(), c.deregisterTimeout)
	defer cancel()

	err := c.controller.Deregister(deregCtx, c.gatewayName)
	if err != nil {
		log.WithComponent("monitor").Warn().Err(err).Msg("deregister failed, controller will fence via blocklist")
		return err
	}
	c.broker.Publish(&events.Event{Type: events.EventGatewayDeregistered, Message: "gateway deregistered cleanly"})
	return nil
}

func (c *Client) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(c.heartbeatInterval)
	defer ticker.Stop()

	logger := log.WithComponent("monitor")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.controller.Heartbeat(ctx, c.gatewayName); err != nil {
				logger.Warn().Err(err).Msg("heartbeat failed")
			}
		}
	}
}

func (c *Client) notificationLoop(ctx context.Context) {
	logger := log.WithComponent("monitor")
	for {
		if ctx.Err() != nil {
			return
		}

		notifications, err := c.controller.Notifications(ctx, c.gatewayName)
		if err != nil {
			logger.Warn().Err(err).Msg("subscribing to ana notifications failed, retrying")
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		for assignment := range notifications {
			if err := c.ha.ApplyAssignment(ctx, assignment.Groups); err != nil {
				logger.Error().Err(err).Msg("applying ana assignment failed")
			}
		}

		if ctx.Err() != nil {
			return
		}
		// channel closed: subscription lost, resubscribe.
	}
}
