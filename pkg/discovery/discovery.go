// Package discovery implements the Discovery Responder: it answers
// host discovery probes with one record per (subsystem, listener)
// reachable from the cluster, filtered by the requesting host's ACL,
// read from a state-map snapshot. Embedding the NVMe-TCP discovery
// log page wire format itself is data-path code and out of scope;
// this package produces the records an embedding process serves.
package discovery

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"

	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/log"
	"github.com/nvmeof/gateway/pkg/statemap"
)

// LogPageEntry is one row of a discovery log page response.
type LogPageEntry struct {
	SubsystemNQN  string
	Transport     string
	AddressFamily string
	Address       string
	Port          string
	Secure        bool
}

// Snapshot is the state-map view this package needs: subsystems,
// their listeners, and their host ACLs.
type Snapshot struct {
	Subsystems []gwtypes.Subsystem
	Listeners  []gwtypes.Listener
	Hosts      []gwtypes.Host
}

// Responder answers each probe from a fresh state-map snapshot taken
// when the probe arrives.
type Responder struct {
	store *statemap.Store
}

func New(store *statemap.Store) *Responder {
	return &Responder{store: store}
}

// RecordsFor returns the discovery log page entries hostNQN is
// entitled to see: every listener of every subsystem whose ACL either
// allows any host or explicitly lists hostNQN.
func (r *Responder) RecordsFor(ctx context.Context, hostNQN string) ([]LogPageEntry, error) {
	_, records, err := r.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	snap := decode(records)
	allowed := make(map[string]bool, len(snap.Subsystems))
	for _, sub := range snap.Subsystems {
		if sub.AllowAnyHost {
			allowed[sub.NQN] = true
		}
	}
	for _, h := range snap.Hosts {
		if h.HostNQN == hostNQN || h.HostNQN == "*" {
			allowed[h.SubsystemNQN] = true
		}
	}

	var out []LogPageEntry
	for _, l := range snap.Listeners {
		if !allowed[l.SubsystemNQN] {
			continue
		}
		out = append(out, LogPageEntry{
			SubsystemNQN:  l.SubsystemNQN,
			Transport:     l.Transport,
			AddressFamily: l.AddressFamily,
			Address:       l.Address,
			Port:          l.Port,
			Secure:        l.Secure,
		})
	}
	return out, nil
}

// Serve listens on addr and answers discovery probes until ctx is
// done or the listener fails. Each connection is a simple
// newline-delimited request/response: the client writes one host NQN
// per line and reads back the matching records as one JSON array per
// line. This stands in for the real NVMe-TCP discovery log page wire
// format, which is data-path code and out of scope here; anything
// that needs the genuine wire format fronts this with its own
// transport and calls RecordsFor directly.
func (r *Responder) Serve(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("discovery: listen: %w", err)
	}
	go func() {
		<-ctx.Done()
		lis.Close()
	}()

	logger := log.WithComponent("discovery")
	logger.Info().Str("addr", addr).Msg("discovery responder listening")

	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("discovery: accept: %w", err)
		}
		go r.handleConn(ctx, conn)
	}
}

func (r *Responder) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		hostNQN := strings.TrimSpace(scanner.Text())
		if hostNQN == "" {
			continue
		}

		entries, err := r.RecordsFor(ctx, hostNQN)
		if err != nil {
			log.WithComponent("discovery").Error().Err(err).Str("host_nqn", hostNQN).Msg("discovery probe failed")
			continue
		}

		payload, err := json.Marshal(entries)
		if err != nil {
			continue
		}
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			return
		}
	}
}

// decode turns raw state-map records into the typed entities
// Responder needs, skipping anything not under the relevant prefixes.
func decode(records []statemap.Record) Snapshot {
	var snap Snapshot
	for _, rec := range records {
		switch {
		case strings.HasPrefix(rec.Key, statemap.PrefixSubsystem):
			if sub, ok := statemap.DecodeSubsystem(rec); ok {
				snap.Subsystems = append(snap.Subsystems, sub)
			}
		case strings.HasPrefix(rec.Key, statemap.PrefixListener):
			if l, ok := statemap.DecodeListener(rec); ok {
				snap.Listeners = append(snap.Listeners, l)
			}
		case strings.HasPrefix(rec.Key, statemap.PrefixHost):
			if h, ok := statemap.DecodeHost(rec); ok {
				snap.Hosts = append(snap.Hosts, h)
			}
		}
	}
	return snap
}
