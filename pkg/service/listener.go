package service

import (
	"context"
	"net"
	"strings"

	"github.com/nvmeof/gateway/api/proto"
	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/gwerr"
	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/statemap"
	"github.com/nvmeof/gateway/pkg/tgt"
)

// validateAddressFamily rejects an address that does not parse as the
// declared family.
func validateAddressFamily(adrfam, addr string) error {
	ip := net.ParseIP(addr)
	if ip == nil {
		return gwerr.New(gwerr.InvalidArgument, "malformed address %q", addr)
	}
	isV4 := ip.To4() != nil
	switch strings.ToLower(adrfam) {
	case "ipv4":
		if !isV4 {
			return gwerr.New(gwerr.InvalidArgument, "address %q is not ipv4", addr)
		}
	case "ipv6":
		if isV4 {
			return gwerr.New(gwerr.InvalidArgument, "address %q is not ipv6", addr)
		}
	default:
		return gwerr.New(gwerr.InvalidArgument, "unknown address family %q", adrfam)
	}
	return nil
}

// ListenerAdd realizes the listener in local TGT first, before the
// state-map CAS, exactly when this gateway owns it; on any other
// gateway-name it is recorded state-map-only.
func (s *Server) ListenerAdd(ctx context.Context, req *proto.ListenerAddRequest) (*proto.ListenerAddResponse, error) {
	if err := validateNQN(req.Nqn); err != nil {
		return &proto.ListenerAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	if err := validateAddressFamily(req.Adrfam, req.Traddr); err != nil {
		return &proto.ListenerAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.ListenerKey(req.Nqn, req.GatewayName, req.Adrfam, req.Traddr, req.Trsvcid)
	if _, ok := s.store.Get(key); ok {
		err := gwerr.New(gwerr.AlreadyExists, "listener %s/%s:%s already exists on %q", req.Adrfam, req.Traddr, req.Trsvcid, req.Nqn)
		return &proto.ListenerAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	l := gwtypes.Listener{
		SubsystemNQN:  req.Nqn,
		GatewayName:   req.GatewayName,
		Transport:     req.Transport,
		AddressFamily: req.Adrfam,
		Address:       req.Traddr,
		Port:          req.Trsvcid,
		Secure:        req.Secure,
	}

	local := req.GatewayName == s.gatewayName
	if local {
		unlockEngine := s.lockEngine()
		err := s.engine.AddListener(ctx, tgt.ListenerParams{
			NQN: req.Nqn, Transport: l.Transport, AddressFamily: l.AddressFamily,
			Address: l.Address, Port: l.Port, Secure: l.Secure,
		})
		unlockEngine()
		if err != nil {
			return &proto.ListenerAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
		}
	}

	value, _ := statemap.EncodeListener(l)
	if _, err := s.store.CAS(ctx, key, 0, value, s.gatewayName); err != nil {
		if local {
			unlockEngine := s.lockEngine()
			_ = s.engine.RemoveListener(ctx, tgt.ListenerParams{
				NQN: req.Nqn, Transport: l.Transport, AddressFamily: l.AddressFamily,
				Address: l.Address, Port: l.Port,
			})
			unlockEngine()
		}
		return &proto.ListenerAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	s.broker.Publish(&events.Event{Type: events.EventListenerRealized, Message: key})
	return &proto.ListenerAddResponse{Status: statusOf(nil)}, nil
}

// ListenerDel is idempotent when the listener was never realized
// locally: the state-map delete proceeds regardless of local state.
func (s *Server) ListenerDel(ctx context.Context, req *proto.ListenerDelRequest) (*proto.ListenerDelResponse, error) {
	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.ListenerKey(req.Nqn, req.GatewayName, req.Adrfam, req.Traddr, req.Trsvcid)
	rec, ok := s.store.Get(key)
	if !ok {
		return &proto.ListenerDelResponse{Status: statusOf(nil)}, nil
	}
	l, _ := statemap.DecodeListener(rec)

	if l.GatewayName == s.gatewayName {
		unlockEngine := s.lockEngine()
		err := s.engine.RemoveListener(ctx, tgt.ListenerParams{
			NQN: req.Nqn, Transport: l.Transport, AddressFamily: l.AddressFamily,
			Address: l.Address, Port: l.Port,
		})
		unlockEngine()
		if err != nil && gwerr.KindOf(err) != gwerr.NotFound {
			return &proto.ListenerDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
		}
	}

	if err := s.store.Delete(ctx, key, rec.Version); err != nil {
		return &proto.ListenerDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	s.broker.Publish(&events.Event{Type: events.EventListenerRemoved, Message: key})
	return &proto.ListenerDelResponse{Status: statusOf(nil)}, nil
}
