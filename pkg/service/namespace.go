package service

import (
	"context"

	"github.com/nvmeof/gateway/api/proto"
	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/gwerr"
	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/statemap"
	"github.com/nvmeof/gateway/pkg/tgt"
)

const maxNSIDSearch = 1 << 16

// lowestFreeNSID scans used ascending from 1 and returns the first
// nsid not present, matching the engine's own nsid allocation scheme.
func lowestFreeNSID(used map[uint32]bool) uint32 {
	for nsid := uint32(1); nsid < maxNSIDSearch; nsid++ {
		if !used[nsid] {
			return nsid
		}
	}
	return 0
}

func (s *Server) namespacesOf(ctx context.Context, nqn string) (map[uint32]bool, []gwtypes.Namespace) {
	_, records, err := s.store.Snapshot(ctx)
	used := make(map[uint32]bool)
	var out []gwtypes.Namespace
	if err != nil {
		return used, out
	}
	prefix := statemap.PrefixNamespace + nqn + "/"
	for _, r := range records {
		if len(r.Key) > len(prefix) && r.Key[:len(prefix)] == prefix {
			if ns, ok := statemap.DecodeNamespace(r); ok {
				used[ns.NSID] = true
				out = append(out, ns)
			}
		}
	}
	return used, out
}

// NamespaceAdd assigns the lowest free nsid when none is requested,
// or fails AlreadyExists when the requested nsid collides with one
// already in use.
func (s *Server) NamespaceAdd(ctx context.Context, req *proto.NamespaceAddRequest) (*proto.NamespaceAddResponse, error) {
	if err := validateNQN(req.Nqn); err != nil {
		return &proto.NamespaceAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	if req.Pool == "" || req.Image == "" {
		err := gwerr.New(gwerr.InvalidArgument, "pool and image are required")
		return &proto.NamespaceAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	release := s.acquire(req.Nqn)
	defer release()

	subKey := statemap.SubsystemKey(req.Nqn)
	subRec, ok := s.store.Get(subKey)
	if !ok {
		err := gwerr.New(gwerr.NotFound, "subsystem %q not found", req.Nqn)
		return &proto.NamespaceAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	sub, _ := statemap.DecodeSubsystem(subRec)

	used, _ := s.namespacesOf(ctx, req.Nqn)
	if sub.MaxNamespaces > 0 && len(used) >= sub.MaxNamespaces {
		err := gwerr.New(gwerr.ResourceExhausted, "subsystem %q at max-namespaces %d", req.Nqn, sub.MaxNamespaces)
		return &proto.NamespaceAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	nsid := req.Nsid
	if nsid == 0 {
		nsid = lowestFreeNSID(used)
	} else if used[nsid] {
		err := gwerr.New(gwerr.AlreadyExists, "nsid %d already exists on %q", nsid, req.Nqn)
		return &proto.NamespaceAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	ns := gwtypes.Namespace{
		SubsystemNQN:       req.Nqn,
		NSID:               nsid,
		ImagePool:          req.Pool,
		ImageName:          req.Image,
		SizeBytes:          req.Size,
		BlockSize:          req.BlockSize,
		UUID:               req.Uuid,
		LoadBalancingGroup: int(req.LbGroup),
		AutoVisible:        req.AutoVisible,
	}

	unlockEngine := s.lockEngine()
	_, err := s.engine.CreateNamespace(ctx, tgt.CreateNamespaceParams{
		NQN:      req.Nqn,
		NSID:     nsid,
		BdevName: ns.ImagePool + "/" + ns.ImageName,
		UUID:     ns.UUID,
	})
	unlockEngine()
	if err != nil {
		return &proto.NamespaceAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	key := statemap.NamespaceKey(req.Nqn, nsid)
	value, _ := statemap.EncodeNamespace(ns)
	if _, err := s.store.CAS(ctx, key, 0, value, s.gatewayName); err != nil {
		unlockEngine := s.lockEngine()
		_ = s.engine.DeleteNamespace(ctx, req.Nqn, nsid)
		unlockEngine()
		return &proto.NamespaceAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	s.broker.Publish(&events.Event{Type: events.EventNamespaceCreated, Message: key})
	return &proto.NamespaceAddResponse{Status: statusOf(nil), Nsid: nsid}, nil
}

// NamespaceDel is idempotent: deleting an already-absent namespace
// succeeds.
func (s *Server) NamespaceDel(ctx context.Context, req *proto.NamespaceDelRequest) (*proto.NamespaceDelResponse, error) {
	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.NamespaceKey(req.Nqn, req.Nsid)
	rec, ok := s.store.Get(key)
	if !ok {
		return &proto.NamespaceDelResponse{Status: statusOf(nil)}, nil
	}

	unlockEngine := s.lockEngine()
	err := s.engine.DeleteNamespace(ctx, req.Nqn, req.Nsid)
	unlockEngine()
	if err != nil && gwerr.KindOf(err) != gwerr.NotFound {
		return &proto.NamespaceDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	if err := s.store.Delete(ctx, key, rec.Version); err != nil {
		return &proto.NamespaceDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	s.broker.Publish(&events.Event{Type: events.EventNamespaceDeleted, Message: key})
	return &proto.NamespaceDelResponse{Status: statusOf(nil)}, nil
}

// NamespaceResize never renumbers the namespace's nsid; it only
// changes SizeBytes.
func (s *Server) NamespaceResize(ctx context.Context, req *proto.NamespaceResizeRequest) (*proto.NamespaceResizeResponse, error) {
	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.NamespaceKey(req.Nqn, req.Nsid)
	rec, ok := s.store.Get(key)
	if !ok {
		err := gwerr.New(gwerr.NotFound, "namespace %d on %q not found", req.Nsid, req.Nqn)
		return &proto.NamespaceResizeResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	ns, _ := statemap.DecodeNamespace(rec)
	if req.NewSize < ns.SizeBytes {
		err := gwerr.New(gwerr.InvalidArgument, "namespace %d: shrink not permitted", req.Nsid)
		return &proto.NamespaceResizeResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	unlockEngine := s.lockEngine()
	err := s.engine.ResizeNamespace(ctx, req.Nqn, req.Nsid, req.NewSize)
	unlockEngine()
	if err != nil {
		return &proto.NamespaceResizeResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	ns.SizeBytes = req.NewSize
	value, _ := statemap.EncodeNamespace(ns)
	if _, err := s.store.CAS(ctx, key, rec.Version, value, s.gatewayName); err != nil {
		return &proto.NamespaceResizeResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	return &proto.NamespaceResizeResponse{Status: statusOf(nil)}, nil
}

func (s *Server) NamespaceChangeLoadBalancingGroup(ctx context.Context, req *proto.NamespaceChangeLoadBalancingGroupRequest) (*proto.NamespaceChangeLoadBalancingGroupResponse, error) {
	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.NamespaceKey(req.Nqn, req.Nsid)
	rec, ok := s.store.Get(key)
	if !ok {
		err := gwerr.New(gwerr.NotFound, "namespace %d on %q not found", req.Nsid, req.Nqn)
		return &proto.NamespaceChangeLoadBalancingGroupResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	ns, _ := statemap.DecodeNamespace(rec)

	unlockEngine := s.lockEngine()
	err := s.engine.ChangeNamespaceLoadBalancingGroup(ctx, req.Nqn, req.Nsid, int(req.Group))
	unlockEngine()
	if err != nil {
		return &proto.NamespaceChangeLoadBalancingGroupResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	ns.LoadBalancingGroup = int(req.Group)
	value, _ := statemap.EncodeNamespace(ns)
	if _, err := s.store.CAS(ctx, key, rec.Version, value, s.gatewayName); err != nil {
		return &proto.NamespaceChangeLoadBalancingGroupResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	return &proto.NamespaceChangeLoadBalancingGroupResponse{Status: statusOf(nil)}, nil
}

// NamespaceAddHost and NamespaceDelHost are only meaningful when the
// namespace is not auto-visible: they edit its
// host-visibility set without touching the subsystem-wide ACL.
func (s *Server) NamespaceAddHost(ctx context.Context, req *proto.NamespaceAddHostRequest) (*proto.NamespaceAddHostResponse, error) {
	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.NamespaceKey(req.Nqn, req.Nsid)
	rec, ok := s.store.Get(key)
	if !ok {
		err := gwerr.New(gwerr.NotFound, "namespace %d on %q not found", req.Nsid, req.Nqn)
		return &proto.NamespaceAddHostResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	ns, _ := statemap.DecodeNamespace(rec)
	if ns.AutoVisible {
		err := gwerr.New(gwerr.FailedPrecondition, "namespace %d is auto-visible", req.Nsid)
		return &proto.NamespaceAddHostResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	if ns.HostVisibility == nil {
		ns.HostVisibility = make(map[string]bool)
	}
	ns.HostVisibility[req.HostNqn] = true

	value, _ := statemap.EncodeNamespace(ns)
	if _, err := s.store.CAS(ctx, key, rec.Version, value, s.gatewayName); err != nil {
		return &proto.NamespaceAddHostResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	return &proto.NamespaceAddHostResponse{Status: statusOf(nil)}, nil
}

func (s *Server) NamespaceDelHost(ctx context.Context, req *proto.NamespaceDelHostRequest) (*proto.NamespaceDelHostResponse, error) {
	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.NamespaceKey(req.Nqn, req.Nsid)
	rec, ok := s.store.Get(key)
	if !ok {
		return &proto.NamespaceDelHostResponse{Status: statusOf(nil)}, nil // idempotent
	}
	ns, _ := statemap.DecodeNamespace(rec)
	if ns.AutoVisible {
		err := gwerr.New(gwerr.FailedPrecondition, "namespace %d is auto-visible", req.Nsid)
		return &proto.NamespaceDelHostResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	delete(ns.HostVisibility, req.HostNqn)

	value, _ := statemap.EncodeNamespace(ns)
	if _, err := s.store.CAS(ctx, key, rec.Version, value, s.gatewayName); err != nil {
		return &proto.NamespaceDelHostResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	return &proto.NamespaceDelHostResponse{Status: statusOf(nil)}, nil
}
