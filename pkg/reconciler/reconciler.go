// Package reconciler implements the Peer Reconciler: a
// single-consumer worker that drains the state-map watch and applies
// every change to the local TGT, so each gateway's engine converges
// on the cluster's declared configuration.
package reconciler

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nvmeof/gateway/pkg/creds"
	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/gwerr"
	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/locks"
	"github.com/nvmeof/gateway/pkg/log"
	"github.com/nvmeof/gateway/pkg/metrics"
	"github.com/nvmeof/gateway/pkg/statemap"
	"github.com/nvmeof/gateway/pkg/tgt"
)

const (
	backoffBase = 250 * time.Millisecond
	backoffCap  = 30 * time.Second
)

// Reconciler drains a statemap.Subscription and applies every change
// to the local engine. It never surfaces errors to a caller — TGT
// errors are logged with exponential backoff and flip the health
// flag (see Healthy).
type Reconciler struct {
	gatewayName string
	store       *statemap.Store
	engine      *tgt.Adapter
	engineLock  *locks.Engine
	subsystems  *locks.Subsystems
	creds       *creds.Manager
	broker      *events.Broker

	mu      sync.RWMutex
	healthy bool

	cancel context.CancelFunc
}

func New(gatewayName string, store *statemap.Store, engine *tgt.Adapter, engineLock *locks.Engine, subsystems *locks.Subsystems, credsMgr *creds.Manager, broker *events.Broker) *Reconciler {
	metrics.RegisterComponent("reconciler", true, "")
	return &Reconciler{
		gatewayName: gatewayName,
		store:       store,
		engine:      engine,
		engineLock:  engineLock,
		subsystems:  subsystems,
		creds:       credsMgr,
		broker:      broker,
		healthy:     true,
	}
}

// Healthy reports whether the reconciler currently believes local TGT
// matches the state map. The same flag is published as the
// nvmeof_gateway_healthy gauge, the "reconciler" health component and
// gateway health events; pkg/monitor does not read it.
func (r *Reconciler) Healthy() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.healthy
}

func (r *Reconciler) setHealthy(healthy bool) {
	r.mu.Lock()
	changed := r.healthy != healthy
	r.healthy = healthy
	r.mu.Unlock()

	if !changed {
		return
	}
	if healthy {
		metrics.GatewayHealthy.Set(1)
		metrics.UpdateComponent("reconciler", true, "")
		r.broker.Publish(&events.Event{Type: events.EventGatewayHealthOK, Message: "reconciler converged"})
	} else {
		metrics.GatewayHealthy.Set(0)
		metrics.UpdateComponent("reconciler", false, "persistent mismatch against local tgt")
		r.broker.Publish(&events.Event{Type: events.EventGatewayHealthDegraded, Message: "reconciler persistent mismatch"})
	}
}

// StartupReconcile snapshots the state map, diffs its subsystem
// records against the local engine's own get_subsystems report, and
// creates in TGT every subsystem the engine does not report, before
// the caller starts its gRPC listener. Namespace, listener, host and
// key records are not applied here, and engine subsystems absent from
// the map are not removed.
func (r *Reconciler) StartupReconcile(ctx context.Context) error {
	epoch, records, err := r.store.Snapshot(ctx)
	if err != nil {
		return err
	}

	engineSubsystems, err := r.engine.GetSubsystems(ctx)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(engineSubsystems))
	for _, s := range engineSubsystems {
		present[s.NQN] = true
	}

	for _, rec := range records {
		if !strings.HasPrefix(rec.Key, statemap.PrefixSubsystem) {
			continue
		}
		sub, ok := statemap.DecodeSubsystem(rec)
		if !ok {
			continue
		}
		if present[sub.NQN] {
			continue
		}
		if err := r.applySubsystem(ctx, sub); err != nil {
			log.WithComponent("reconciler").Error().Err(err).Str("subsystem_nqn", sub.NQN).Msg("startup reconcile failed")
			return err
		}
	}

	log.WithComponent("reconciler").Info().Uint64("epoch", epoch).Msg("startup reconciliation complete")
	return nil
}

// Run drains sub until ctx is done, applying each change to local
// TGT. It is meant to run as the single dedicated reconciler worker.
func (r *Reconciler) Run(ctx context.Context, sub *statemap.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			r.handle(ctx, ev)
		}
	}
}

func (r *Reconciler) handle(ctx context.Context, ev statemap.ChangeEvent) {
	if ev.Resnapshot {
		if _, _, err := r.store.Snapshot(ctx); err != nil {
			log.WithComponent("reconciler").Warn().Err(err).Msg("resnapshot failed")
			r.setHealthy(false)
		}
		return
	}

	start := time.Now()
	defer func() { metrics.ReconcileDuration.Observe(time.Since(start).Seconds()) }()

	for _, key := range ev.ChangedKeys {
		r.applyKeyWithBackoff(ctx, key)
	}
}

// applyKeyWithBackoff retries a single key's TGT application with
// exponential backoff (base 250ms, cap 30s) on engine error, and
// flips the health flag rather than propagating the error anywhere.
func (r *Reconciler) applyKeyWithBackoff(ctx context.Context, key string) {
	backoff := backoffBase
	for {
		err := r.applyKey(ctx, key)
		if err == nil {
			r.setHealthy(true)
			return
		}

		metrics.ReconcileErrorsTotal.Inc()
		log.WithComponent("reconciler").Error().Err(err).Str("key", key).Dur("backoff", backoff).Msg("tgt apply failed, retrying")
		r.setHealthy(false)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > backoffCap {
			backoff = backoffCap
		}
	}
}

func (r *Reconciler) applyKey(ctx context.Context, key string) error {
	rec, ok := r.store.Get(key)
	deleted := !ok

	switch {
	case strings.HasPrefix(key, statemap.PrefixSubsystem):
		if deleted {
			nqn := strings.TrimPrefix(key, statemap.PrefixSubsystem)
			return r.deleteSubsystem(ctx, nqn)
		}
		sub, ok := statemap.DecodeSubsystem(rec)
		if !ok {
			return nil
		}
		return r.applySubsystem(ctx, sub)

	case strings.HasPrefix(key, statemap.PrefixNamespace):
		if deleted {
			nqn, nsid, ok := parseNamespaceKey(key)
			if !ok {
				return nil
			}
			return r.deleteNamespace(ctx, nqn, nsid)
		}
		ns, ok := statemap.DecodeNamespace(rec)
		if !ok {
			return nil
		}
		return r.applyNamespace(ctx, ns)

	case strings.HasPrefix(key, statemap.PrefixListener):
		if deleted {
			nqn, gatewayName, af, addr, port, ok := parseListenerKey(key)
			if !ok {
				return nil
			}
			return r.deleteListener(ctx, nqn, gatewayName, af, addr, port)
		}
		l, ok := statemap.DecodeListener(rec)
		if !ok {
			return nil
		}
		return r.applyListener(ctx, l)

	case strings.HasPrefix(key, statemap.PrefixHost):
		if deleted {
			nqn, hostNQN, ok := parseHostKey(key)
			if !ok {
				return nil
			}
			return r.deleteHost(ctx, nqn, hostNQN)
		}
		h, ok := statemap.DecodeHost(rec)
		if !ok {
			return nil
		}
		return r.applyHost(ctx, h)

	case strings.HasPrefix(key, statemap.PrefixKey):
		if deleted {
			nqn, hostNQN, kind, ok := parseCredentialKey(key)
			if !ok {
				return nil
			}
			return r.deleteKeyMaterial(ctx, nqn, hostNQN, kind)
		}
		meta, ciphertext, ok := statemap.DecodeKey(rec)
		if !ok {
			return nil
		}
		return r.applyKeyMaterial(ctx, meta, ciphertext)
	}

	return nil
}

// parseNamespaceKey splits a ns/<nqn>/<nsid> key back into its parts,
// mirroring statemap.NamespaceKey.
func parseNamespaceKey(key string) (nqn string, nsid uint32, ok bool) {
	rest := strings.TrimPrefix(key, statemap.PrefixNamespace)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 {
		return "", 0, false
	}
	n, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return "", 0, false
	}
	return parts[0], uint32(n), true
}

// parseListenerKey splits a lst/<nqn>/<gateway>/<af>/<addr>/<port> key
// back into its parts, mirroring statemap.ListenerKey.
func parseListenerKey(key string) (nqn, gatewayName, af, addr, port string, ok bool) {
	rest := strings.TrimPrefix(key, statemap.PrefixListener)
	parts := strings.Split(rest, "/")
	if len(parts) != 5 {
		return "", "", "", "", "", false
	}
	return parts[0], parts[1], parts[2], parts[3], parts[4], true
}

// parseHostKey splits a hst/<nqn>/<hostNQN> key back into its parts,
// mirroring statemap.HostKey.
func parseHostKey(key string) (nqn, hostNQN string, ok bool) {
	rest := strings.TrimPrefix(key, statemap.PrefixHost)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// parseCredentialKey splits a key/<nqn>/<hostNQN>/<kind> key back into
// its parts, mirroring statemap.CredentialKey.
func parseCredentialKey(key string) (nqn, hostNQN, kind string, ok bool) {
	rest := strings.TrimPrefix(key, statemap.PrefixKey)
	parts := strings.SplitN(rest, "/", 3)
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func (r *Reconciler) applySubsystem(ctx context.Context, sub gwtypes.Subsystem) error {
	release := r.subsystems.Acquire(sub.NQN)
	defer release()

	r.engineLock.Lock()
	defer r.engineLock.Unlock()

	return r.engine.CreateSubsystem(ctx, tgt.CreateSubsystemParams{
		NQN:           sub.NQN,
		Serial:        sub.Serial,
		MaxNamespaces: sub.MaxNamespaces,
		AllowAnyHost:  sub.AllowAnyHost,
	})
}

func (r *Reconciler) deleteSubsystem(ctx context.Context, nqn string) error {
	release := r.subsystems.Acquire(nqn)
	defer release()

	r.engineLock.Lock()
	defer r.engineLock.Unlock()

	return r.engine.DeleteSubsystem(ctx, nqn)
}

func (r *Reconciler) applyNamespace(ctx context.Context, ns gwtypes.Namespace) error {
	release := r.subsystems.Acquire(ns.SubsystemNQN)
	defer release()

	r.engineLock.Lock()
	defer r.engineLock.Unlock()

	_, err := r.engine.CreateNamespace(ctx, tgt.CreateNamespaceParams{
		NQN:      ns.SubsystemNQN,
		NSID:     ns.NSID,
		BdevName: ns.ImagePool + "/" + ns.ImageName,
		UUID:     ns.UUID,
	})
	return err
}

func (r *Reconciler) deleteNamespace(ctx context.Context, nqn string, nsid uint32) error {
	release := r.subsystems.Acquire(nqn)
	defer release()

	r.engineLock.Lock()
	defer r.engineLock.Unlock()

	err := r.engine.DeleteNamespace(ctx, nqn, nsid)
	if err != nil && gwerr.KindOf(err) == gwerr.NotFound {
		return nil
	}
	return err
}

// applyListener realizes l in local TGT only if this gateway owns it;
// on other gateways the listener lives in the state map only, since
// each listener has affinity to exactly one gateway's data path.
func (r *Reconciler) applyListener(ctx context.Context, l gwtypes.Listener) error {
	if l.GatewayName != r.gatewayName {
		return nil
	}

	release := r.subsystems.Acquire(l.SubsystemNQN)
	defer release()

	r.engineLock.Lock()
	defer r.engineLock.Unlock()

	return r.engine.AddListener(ctx, tgt.ListenerParams{
		NQN:           l.SubsystemNQN,
		Transport:     l.Transport,
		AddressFamily: l.AddressFamily,
		Address:       l.Address,
		Port:          l.Port,
		Secure:        l.Secure,
	})
}

// deleteListener mirrors applyListener's ownership check: a listener
// is only ever realized in local TGT on the gateway that owns it, so
// only that gateway has anything to remove.
func (r *Reconciler) deleteListener(ctx context.Context, nqn, gatewayName, af, addr, port string) error {
	if gatewayName != r.gatewayName {
		return nil
	}

	release := r.subsystems.Acquire(nqn)
	defer release()

	r.engineLock.Lock()
	defer r.engineLock.Unlock()

	err := r.engine.RemoveListener(ctx, tgt.ListenerParams{
		NQN: nqn, Transport: "tcp", AddressFamily: af, Address: addr, Port: port,
	})
	if err != nil && gwerr.KindOf(err) == gwerr.NotFound {
		return nil
	}
	return err
}

func (r *Reconciler) applyHost(ctx context.Context, h gwtypes.Host) error {
	release := r.subsystems.Acquire(h.SubsystemNQN)
	defer release()

	r.engineLock.Lock()
	defer r.engineLock.Unlock()

	if h.HostNQN == "*" {
		return r.engine.AllowAnyHost(ctx, h.SubsystemNQN, true)
	}
	return r.engine.AddHost(ctx, h.SubsystemNQN, h.HostNQN)
}

func (r *Reconciler) deleteHost(ctx context.Context, nqn, hostNQN string) error {
	release := r.subsystems.Acquire(nqn)
	defer release()

	r.engineLock.Lock()
	defer r.engineLock.Unlock()

	var err error
	if hostNQN == "*" {
		err = r.engine.AllowAnyHost(ctx, nqn, false)
	} else {
		err = r.engine.RemoveHost(ctx, nqn, hostNQN)
	}
	if err != nil && gwerr.KindOf(err) == gwerr.NotFound {
		return nil
	}
	return err
}

func (r *Reconciler) applyKeyMaterial(ctx context.Context, meta gwtypes.Key, ciphertext []byte) error {
	plaintext, err := r.creds.DecryptFromStateMap(ciphertext)
	if err != nil {
		return err
	}
	meta.Bytes = plaintext

	release := r.subsystems.Acquire(meta.OwnerSubsystemNQN)
	defer release()

	_, err = r.creds.Materialize(ctx, meta)
	return err
}

// deleteKeyMaterial revokes the keyring entry a peer gateway's CAS
// delete of a key/ record implies. The state map only ever carries
// ciphertext, but the keyring entry name is a pure function of
// owner/host/kind, so it is derivable without decrypting anything.
func (r *Reconciler) deleteKeyMaterial(ctx context.Context, nqn, hostNQN, kind string) error {
	release := r.subsystems.Acquire(nqn)
	defer release()

	keyKind := gwtypes.KeyKind(kind)
	name := r.creds.KeyringName(nqn, hostNQN, keyKind)
	return r.creds.Revoke(ctx, keyKind, nqn, name)
}
