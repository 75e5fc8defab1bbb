package service

import (
	"context"
	"strings"

	"github.com/nvmeof/gateway/api/proto"
	"github.com/nvmeof/gateway/pkg/gwerr"
	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/log"
	"github.com/nvmeof/gateway/pkg/statemap"
)

func applyLogLevel(level string) error {
	if err := log.SetLevel(log.Level(level)); err != nil {
		return gwerr.Wrap(gwerr.InvalidArgument, err, "invalid log level %q", level)
	}
	return nil
}

// ConnectionList joins TGT-reported controller state with the
// state-map host ACL, producing one row per allowed host including
// disconnected rows for hosts not currently connected.
func (s *Server) ConnectionList(ctx context.Context, req *proto.ConnectionListRequest) (*proto.ConnectionListResponse, error) {
	if err := validateNQN(req.Nqn); err != nil {
		return &proto.ConnectionListResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	unlockEngine := s.lockEngine()
	connected, err := s.engine.ListConnectedHosts(ctx, req.Nqn)
	unlockEngine()
	if err != nil {
		return &proto.ConnectionListResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	byHost := make(map[string]gwtypes.ConnectionRow, len(connected))
	for _, c := range connected {
		byHost[c.HostNQN] = gwtypes.ConnectionRow{
			HostNQN: c.HostNQN, Connected: true, ControllerID: c.ControllerID,
			QPairCount: c.QPairCount, Secure: c.Secure, UsePSK: c.UsePSK, UseDHCHAP: c.UseDHCHAP,
		}
	}

	hosts := s.hostsOf(ctx, req.Nqn)
	var out []gwtypes.ConnectionRow
	seen := make(map[string]bool)
	for _, h := range hosts {
		if h.HostNQN == "*" {
			continue // no per-host row for an allow-any-host marker
		}
		if row, ok := byHost[h.HostNQN]; ok {
			out = append(out, row)
		} else {
			out = append(out, gwtypes.ConnectionRow{HostNQN: h.HostNQN, Connected: false})
		}
		seen[h.HostNQN] = true
	}
	// Hosts connected under allow-any-host have no ACL entry of their
	// own; report them too since they are genuinely attached.
	for nqn, row := range byHost {
		if !seen[nqn] {
			out = append(out, row)
		}
	}

	resp := &proto.ConnectionListResponse{Status: statusOf(nil)}
	for _, row := range out {
		resp.Connections = append(resp.Connections, connectionToProto(row))
	}
	return resp, nil
}

// GetSubsystems returns the cluster's declared configuration from the
// state map, not a local TGT query, so it reflects the full cluster
// view regardless of which gateway answers.
func (s *Server) GetSubsystems(ctx context.Context, req *proto.GetSubsystemsRequest) (*proto.GetSubsystemsResponse, error) {
	_, records, err := s.store.Snapshot(ctx)
	if err != nil {
		return &proto.GetSubsystemsResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	subs := make(map[string]gwtypes.Subsystem)
	namespaces := make(map[string][]gwtypes.Namespace)
	listeners := make(map[string][]gwtypes.Listener)
	hosts := make(map[string][]gwtypes.Host)

	for _, r := range records {
		switch {
		case strings.HasPrefix(r.Key, statemap.PrefixSubsystem):
			if sub, ok := statemap.DecodeSubsystem(r); ok {
				subs[sub.NQN] = sub
			}
		case strings.HasPrefix(r.Key, statemap.PrefixNamespace):
			if ns, ok := statemap.DecodeNamespace(r); ok {
				namespaces[ns.SubsystemNQN] = append(namespaces[ns.SubsystemNQN], ns)
			}
		case strings.HasPrefix(r.Key, statemap.PrefixListener):
			if l, ok := statemap.DecodeListener(r); ok {
				listeners[l.SubsystemNQN] = append(listeners[l.SubsystemNQN], l)
			}
		case strings.HasPrefix(r.Key, statemap.PrefixHost):
			if h, ok := statemap.DecodeHost(r); ok {
				hosts[h.SubsystemNQN] = append(hosts[h.SubsystemNQN], h)
			}
		}
	}

	resp := &proto.GetSubsystemsResponse{Status: statusOf(nil)}
	for nqn, sub := range subs {
		resp.Subsystems = append(resp.Subsystems, subsystemToProto(sub, namespaces[nqn], listeners[nqn], hosts[nqn]))
	}
	return resp, nil
}

// LogLevel sets this process's own logger level; SpdkLogLevel forwards
// to the engine so its own verbosity can be tuned independently.
func (s *Server) LogLevel(ctx context.Context, req *proto.LogLevelRequest) (*proto.LogLevelResponse, error) {
	if err := applyLogLevel(req.Level); err != nil {
		return &proto.LogLevelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	return &proto.LogLevelResponse{Status: statusOf(nil)}, nil
}

func (s *Server) SpdkLogLevel(ctx context.Context, req *proto.SpdkLogLevelRequest) (*proto.SpdkLogLevelResponse, error) {
	unlockEngine := s.lockEngine()
	err := s.engine.SetLogLevel(ctx, req.Level)
	unlockEngine()
	if err != nil {
		return &proto.SpdkLogLevelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	return &proto.SpdkLogLevelResponse{Status: statusOf(nil)}, nil
}
