// Package ha implements the HA / ANA State Machine: per-(gateway,
// group) transitions between INACCESSIBLE and OPTIMIZED, driven by
// ANA-group assignments the Monitor Client receives from the cluster
// controller.
package ha

import (
	"context"
	"sync"

	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/locks"
	"github.com/nvmeof/gateway/pkg/log"
	"github.com/nvmeof/gateway/pkg/metrics"
	"github.com/nvmeof/gateway/pkg/statemap"
	"github.com/nvmeof/gateway/pkg/tgt"
)

// SubsystemLister gives the machine the set of subsystems it needs
// to drive ANA state for, without HA depending on pkg/service.
type SubsystemLister interface {
	SubsystemNQNs(ctx context.Context) ([]string, error)
}

// Machine owns this gateway's view of ANA group membership and
// applies transitions to the local TGT through the shared engine
// lock, so ANA writes for different groups never race each other —
// ordering is exactly the order assignments are received.
type Machine struct {
	gatewayName string
	engine      *tgt.Adapter
	engineLock  *locks.Engine
	subsystems  SubsystemLister
	store       *statemap.Store
	broker      *events.Broker

	mu        sync.RWMutex
	optimized map[int]bool
}

func New(gatewayName string, engine *tgt.Adapter, engineLock *locks.Engine, subsystems SubsystemLister, store *statemap.Store, broker *events.Broker) *Machine {
	return &Machine{
		gatewayName: gatewayName,
		engine:      engine,
		engineLock:  engineLock,
		subsystems:  subsystems,
		store:       store,
		broker:      broker,
		optimized:   make(map[int]bool),
	}
}

// OptimizedGroups returns the ANA groups this gateway currently
// advertises as optimized.
func (m *Machine) OptimizedGroups() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groups := make([]int, 0, len(m.optimized))
	for g := range m.optimized {
		groups = append(groups, g)
	}
	return groups
}

// ApplyAssignment reconciles this gateway's optimized set against the
// set the controller assigned, issuing TGT transitions for every
// group that changed state. Groups are applied one at a time, each
// inside the engine lock, removed groups going inaccessible before
// added groups go optimized; within the removed set and within the
// added set the order is that of map iteration and is not defined.
func (m *Machine) ApplyAssignment(ctx context.Context, assigned map[int]bool) error {
	m.mu.Lock()
	added, removed := diff(m.optimized, assigned)
	m.mu.Unlock()

	for _, group := range removed {
		if err := m.transition(ctx, group, gwtypes.ANAInaccessible); err != nil {
			return err
		}
	}
	for _, group := range added {
		if err := m.transition(ctx, group, gwtypes.ANAOptimized); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.optimized = copyAssignment(assigned)
	m.mu.Unlock()

	m.broker.Publish(&events.Event{Type: events.EventANAAssignmentChanged, Message: "ana group assignment applied"})
	return nil
}

func diff(have, want map[int]bool) (added, removed []int) {
	for g := range want {
		if !have[g] {
			added = append(added, g)
		}
	}
	for g := range have {
		if !want[g] {
			removed = append(removed, g)
		}
	}
	return added, removed
}

func copyAssignment(m map[int]bool) map[int]bool {
	out := make(map[int]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// transition drives every local subsystem's listeners to the new ANA
// state for group, inaccessible-first on removal so TGT requests
// disconnects before we stop claiming ownership, optimized-last on
// addition so we only advertise once ready.
func (m *Machine) transition(ctx context.Context, group int, state gwtypes.ANAState) error {
	nqns, err := m.subsystems.SubsystemNQNs(ctx)
	if err != nil {
		return err
	}

	m.engineLock.Lock()
	defer m.engineLock.Unlock()

	logger := log.WithComponent("ha")
	for _, nqn := range nqns {
		if err := m.engine.SetANAState(ctx, nqn, group, string(state)); err != nil {
			logger.Error().Err(err).Str("subsystem_nqn", nqn).Int("group", group).Msg("ana state transition failed")
			return err
		}
	}

	if state == gwtypes.ANAOptimized {
		metrics.ANAGroupsOptimized.WithLabelValues(m.gatewayName).Inc()
	} else {
		metrics.ANAGroupsOptimized.WithLabelValues(m.gatewayName).Dec()
	}

	return nil
}
