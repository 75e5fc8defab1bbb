package service

import (
	"github.com/nvmeof/gateway/api/proto"
	"github.com/nvmeof/gateway/pkg/gwtypes"
)

// The functions below convert gwtypes domain values into the
// generated protobuf messages the handlers put in their responses.

func namespaceToProto(n gwtypes.Namespace) *proto.Namespace {
	return &proto.Namespace{
		Nsid:        n.NSID,
		Pool:        n.ImagePool,
		Image:       n.ImageName,
		Size:        n.SizeBytes,
		Uuid:        n.UUID,
		LbGroup:     int32(n.LoadBalancingGroup),
		AutoVisible: n.AutoVisible,
	}
}

func listenerToProto(l gwtypes.Listener) *proto.Listener {
	return &proto.Listener{
		GatewayName: l.GatewayName,
		Transport:   l.Transport,
		Adrfam:      l.AddressFamily,
		Traddr:      l.Address,
		Trsvcid:     l.Port,
		Secure:      l.Secure,
	}
}

func subsystemToProto(sub gwtypes.Subsystem, namespaces []gwtypes.Namespace, listeners []gwtypes.Listener, hosts []gwtypes.Host) *proto.Subsystem {
	out := &proto.Subsystem{
		Nqn:          sub.NQN,
		Serial:       sub.Serial,
		AllowAnyHost: sub.AllowAnyHost,
	}
	for _, n := range namespaces {
		out.Namespaces = append(out.Namespaces, namespaceToProto(n))
	}
	for _, l := range listeners {
		out.Listeners = append(out.Listeners, listenerToProto(l))
	}
	for _, h := range hosts {
		out.Hosts = append(out.Hosts, h.HostNQN)
	}
	return out
}

func connectionToProto(c gwtypes.ConnectionRow) *proto.Connection {
	return &proto.Connection{
		HostNqn:      c.HostNQN,
		Connected:    c.Connected,
		ControllerId: c.ControllerID,
		QpairCount:   c.QPairCount,
		Secure:       c.Secure,
		UsePsk:       c.UsePSK,
		UseDhchap:    c.UseDHCHAP,
	}
}
