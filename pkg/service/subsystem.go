package service

import (
	"context"
	"strings"
	"time"

	"github.com/nvmeof/gateway/api/proto"
	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/gwerr"
	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/statemap"
	"github.com/nvmeof/gateway/pkg/tgt"
)

func validateNQN(nqn string) error {
	if nqn == "" || !strings.HasPrefix(nqn, "nqn.") {
		return gwerr.New(gwerr.InvalidArgument, "malformed nqn %q", nqn)
	}
	return nil
}

// SubsystemAdd implements steps 1-6 of the mutation contract for a
// new subsystem. Identical repeated adds succeed-then-noop rather
// than erroring.
func (s *Server) SubsystemAdd(ctx context.Context, req *proto.SubsystemAddRequest) (*proto.SubsystemAddResponse, error) {
	if err := validateNQN(req.Nqn); err != nil {
		return &proto.SubsystemAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.SubsystemKey(req.Nqn)
	sub := gwtypes.Subsystem{
		NQN:                       req.Nqn,
		Serial:                    req.Serial,
		MaxNamespaces:             int(req.MaxNamespaces),
		CreatedWithoutGroupAppend: req.NoGroupAppend,
	}

	existingVersion := uint64(0)
	if rec, ok := s.store.Get(key); ok {
		existing, decOK := statemap.DecodeSubsystem(rec)
		if decOK && existing == sub {
			return &proto.SubsystemAddResponse{Status: statusOf(nil)}, nil // idempotent noop
		}
		err := gwerr.New(gwerr.AlreadyExists, "subsystem %q already exists with different parameters", req.Nqn)
		return &proto.SubsystemAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	unlockEngine := s.lockEngine()
	err := s.engine.CreateSubsystem(ctx, tgt.CreateSubsystemParams{
		NQN:           sub.NQN,
		Serial:        sub.Serial,
		MaxNamespaces: sub.MaxNamespaces,
	})
	unlockEngine()
	if err != nil {
		return &proto.SubsystemAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	value, _ := statemap.EncodeSubsystem(sub)
	if _, err := s.store.CAS(ctx, key, existingVersion, value, s.gatewayName); err != nil {
		unlockEngine := s.lockEngine()
		_ = s.engine.DeleteSubsystem(ctx, sub.NQN)
		unlockEngine()
		return &proto.SubsystemAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	s.broker.Publish(&events.Event{Type: events.EventSubsystemCreated, Message: req.Nqn})
	return &proto.SubsystemAddResponse{Status: statusOf(nil)}, nil
}

// SubsystemDel implements subsystem deletion. Without force it
// refuses unless the subsystem has zero namespaces and zero
// non-wildcard hosts, treating "*" as empty.
// It then takes the advisory cluster lock, with or without force, and
// while holding it deletes every dependent key and finally the
// subsystem key with one versioned Delete per key. The deletes are not
// one atomic write: a failure part-way returns the error and leaves
// the keys already deleted removed.
func (s *Server) SubsystemDel(ctx context.Context, req *proto.SubsystemDelRequest) (*proto.SubsystemDelResponse, error) {
	if err := validateNQN(req.Nqn); err != nil {
		return &proto.SubsystemDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.SubsystemKey(req.Nqn)
	rec, ok := s.store.Get(key)
	if !ok {
		err := gwerr.New(gwerr.NotFound, "subsystem %q not found", req.Nqn)
		return &proto.SubsystemDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	_, records, err := s.store.Snapshot(ctx)
	if err != nil {
		return &proto.SubsystemDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	var nsKeys, hostKeys, credKeys []statemap.Record
	explicitHosts := 0
	for _, r := range records {
		switch {
		case strings.HasPrefix(r.Key, statemap.PrefixNamespace+req.Nqn+"/"):
			nsKeys = append(nsKeys, r)
		case strings.HasPrefix(r.Key, statemap.PrefixHost+req.Nqn+"/"):
			hostKeys = append(hostKeys, r)
			if h, ok := statemap.DecodeHost(r); ok && h.HostNQN != "*" {
				explicitHosts++
			}
		case strings.HasPrefix(r.Key, statemap.PrefixKey+req.Nqn+"/"):
			credKeys = append(credKeys, r)
		}
	}

	if !req.Force && (len(nsKeys) > 0 || explicitHosts > 0) {
		err := gwerr.New(gwerr.FailedPrecondition, "subsystem %q has dependents; use force", req.Nqn)
		return &proto.SubsystemDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	lock, err := s.store.AcquireLock(ctx, 30*time.Second)
	if err != nil {
		return &proto.SubsystemDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}
	defer lock.Release(ctx)

	for _, r := range append(append(nsKeys, hostKeys...), credKeys...) {
		if err := s.store.Delete(ctx, r.Key, r.Version); err != nil {
			return &proto.SubsystemDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
		}
	}
	for _, r := range credKeys {
		if meta, _, ok := statemap.DecodeKey(r); ok {
			_ = s.creds.Revoke(ctx, meta.Kind, req.Nqn, s.creds.KeyringName(meta.OwnerSubsystemNQN, meta.HostNQN, meta.Kind))
		}
	}

	unlockEngine := s.lockEngine()
	err = s.engine.DeleteSubsystem(ctx, req.Nqn)
	unlockEngine()
	if err != nil && gwerr.KindOf(err) != gwerr.NotFound {
		return &proto.SubsystemDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	if err := s.store.Delete(ctx, key, rec.Version); err != nil {
		return &proto.SubsystemDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	s.broker.Publish(&events.Event{Type: events.EventSubsystemDeleted, Message: req.Nqn})
	return &proto.SubsystemDelResponse{Status: statusOf(nil)}, nil
}
