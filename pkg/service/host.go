package service

import (
	"context"
	"strings"

	"github.com/nvmeof/gateway/api/proto"
	"github.com/nvmeof/gateway/pkg/gwerr"
	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/statemap"
)

func (s *Server) hostsOf(ctx context.Context, nqn string) []gwtypes.Host {
	_, records, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil
	}
	prefix := statemap.PrefixHost + nqn + "/"
	var out []gwtypes.Host
	for _, r := range records {
		if strings.HasPrefix(r.Key, prefix) {
			if h, ok := statemap.DecodeHost(r); ok {
				out = append(out, h)
			}
		}
	}
	return out
}

// HostAdd enforces the mutual exclusion between the "*" wildcard and
// explicit host entries: adding "*" rejects if any
// explicit host exists, and vice versa.
func (s *Server) HostAdd(ctx context.Context, req *proto.HostAddRequest) (*proto.HostAddResponse, error) {
	if err := validateNQN(req.Nqn); err != nil {
		return &proto.HostAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	release := s.acquire(req.Nqn)
	defer release()

	existing := s.hostsOf(ctx, req.Nqn)
	wildcard := req.HostNqn == "*"
	for _, h := range existing {
		if wildcard && h.HostNQN != "*" {
			err := gwerr.New(gwerr.FailedPrecondition, "subsystem %q has explicit hosts; cannot add wildcard", req.Nqn)
			return &proto.HostAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
		}
		if !wildcard && h.HostNQN == "*" {
			err := gwerr.New(gwerr.FailedPrecondition, "subsystem %q allows any host; cannot add explicit host", req.Nqn)
			return &proto.HostAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
		}
	}

	h := gwtypes.Host{SubsystemNQN: req.Nqn, HostNQN: req.HostNqn}

	unlockEngine := s.lockEngine()
	var err error
	if wildcard {
		err = s.engine.AllowAnyHost(ctx, req.Nqn, true)
	} else {
		err = s.engine.AddHost(ctx, req.Nqn, req.HostNqn)
	}
	unlockEngine()
	if err != nil {
		return &proto.HostAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	if err := s.materializeHostKeys(ctx, &h, req); err != nil {
		return &proto.HostAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	key := statemap.HostKey(req.Nqn, req.HostNqn)
	value, _ := statemap.EncodeHost(h)
	if _, err := s.store.CAS(ctx, key, 0, value, s.gatewayName); err != nil {
		return &proto.HostAddResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	if wildcard {
		s.setSubsystemAllowAnyHost(ctx, req.Nqn, true)
	}
	return &proto.HostAddResponse{Status: statusOf(nil)}, nil
}

// materializeHostKeys writes and registers any of psk/dhchap/dhchap-ctrlr
// the request carried, and encrypts each for state-map storage.
func (s *Server) materializeHostKeys(ctx context.Context, h *gwtypes.Host, req *proto.HostAddRequest) error {
	type kv struct {
		bytes []byte
		kind  gwtypes.KeyKind
		ref   *string
	}
	entries := []kv{
		{[]byte(req.Psk), gwtypes.KeyKindPSK, &h.PSKKeyRef},
		{[]byte(req.Dhchap), gwtypes.KeyKindDHCHAP, &h.DHCHAPKeyRef},
		{[]byte(req.DhchapCtrlr), gwtypes.KeyKindDHCHAPCtrlr, &h.DHCHAPCtrlrKeyRef},
	}
	for _, e := range entries {
		if len(e.bytes) == 0 {
			continue
		}
		key := gwtypes.Key{OwnerSubsystemNQN: h.SubsystemNQN, HostNQN: h.HostNQN, Kind: e.kind, Bytes: e.bytes}
		name, err := s.creds.Materialize(ctx, key)
		if err != nil {
			return err
		}
		*e.ref = name

		ciphertext, err := s.creds.EncryptForStateMap(key)
		if err != nil {
			return err
		}
		recKey := statemap.CredentialKey(h.SubsystemNQN, h.HostNQN, string(e.kind))
		value, _ := statemap.EncodeKey(key, ciphertext)
		if _, err := s.store.CAS(ctx, recKey, 0, value, s.gatewayName); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) setSubsystemAllowAnyHost(ctx context.Context, nqn string, allow bool) {
	key := statemap.SubsystemKey(nqn)
	rec, ok := s.store.Get(key)
	if !ok {
		return
	}
	sub, ok := statemap.DecodeSubsystem(rec)
	if !ok {
		return
	}
	sub.AllowAnyHost = allow
	value, _ := statemap.EncodeSubsystem(sub)
	_, _ = s.store.CAS(ctx, key, rec.Version, value, s.gatewayName)
}

// HostDel revokes the host's keyring entries and removes its ACL
// entry; keys are removed from the engine keyring and from disk
// as part of the same call.
func (s *Server) HostDel(ctx context.Context, req *proto.HostDelRequest) (*proto.HostDelResponse, error) {
	release := s.acquire(req.Nqn)
	defer release()

	key := statemap.HostKey(req.Nqn, req.HostNqn)
	rec, ok := s.store.Get(key)
	if !ok {
		return &proto.HostDelResponse{Status: statusOf(nil)}, nil
	}
	h, _ := statemap.DecodeHost(rec)

	unlockEngine := s.lockEngine()
	var err error
	if req.HostNqn == "*" {
		err = s.engine.AllowAnyHost(ctx, req.Nqn, false)
	} else {
		err = s.engine.RemoveHost(ctx, req.Nqn, req.HostNqn)
	}
	unlockEngine()
	if err != nil && gwerr.KindOf(err) != gwerr.NotFound {
		return &proto.HostDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	for _, kind := range []gwtypes.KeyKind{gwtypes.KeyKindPSK, gwtypes.KeyKindDHCHAP, gwtypes.KeyKindDHCHAPCtrlr} {
		name := s.creds.KeyringName(req.Nqn, req.HostNqn, kind)
		_ = s.creds.Revoke(ctx, kind, req.Nqn, name)
		credKey := statemap.CredentialKey(req.Nqn, req.HostNqn, string(kind))
		if credRec, ok := s.store.Get(credKey); ok {
			_ = s.store.Delete(ctx, credKey, credRec.Version)
		}
	}

	if err := s.store.Delete(ctx, key, rec.Version); err != nil {
		return &proto.HostDelResponse{Status: statusOf(err)}, gwerr.ToStatus(err)
	}

	if h.HostNQN == "*" {
		s.setSubsystemAllowAnyHost(ctx, req.Nqn, false)
	}
	return &proto.HostDelResponse{Status: statusOf(nil)}, nil
}
