// Package service implements the Gateway Service: the administrative
// gRPC surface defined in api/proto/gateway.proto. Every handler
// follows the same mutation contract: validate, acquire
// per-subsystem locks in NQN lexicographic order, read and check the
// current state-map record, apply the change to the local TGT, then
// write the state map. Every handler that touches TGT does so before
// the state-map write, whether or not the mutation is gateway-local
// (listener handlers touch TGT only for this gateway's listeners).
// Subsystem, namespace and listener adds undo their TGT change if the
// CAS fails; the other handlers leave TGT as it is.
package service

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/nvmeof/gateway/api/proto"
	"github.com/nvmeof/gateway/pkg/creds"
	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/locks"
	"github.com/nvmeof/gateway/pkg/log"
	"github.com/nvmeof/gateway/pkg/statemap"
	"github.com/nvmeof/gateway/pkg/tgt"
)

// Server implements proto.GatewayAPIServer against a local TGT, the
// cluster state map, and the credential manager.
type Server struct {
	proto.UnimplementedGatewayAPIServer

	gatewayName string
	store       *statemap.Store
	engine      *tgt.Adapter
	engineLock  *locks.Engine
	subsystems  *locks.Subsystems
	creds       *creds.Manager
	broker      *events.Broker

	grpc *grpc.Server
}

func NewServer(gatewayName string, store *statemap.Store, engine *tgt.Adapter, engineLock *locks.Engine, subsystems *locks.Subsystems, credsMgr *creds.Manager, broker *events.Broker) *Server {
	s := &Server{
		gatewayName: gatewayName,
		store:       store,
		engine:      engine,
		engineLock:  engineLock,
		subsystems:  subsystems,
		creds:       credsMgr,
		broker:      broker,
	}
	s.grpc = grpc.NewServer(chainedUnaryInterceptor())
	proto.RegisterGatewayAPIServer(s.grpc, s)
	return s
}

// Start listens on addr and serves until the listener or server is
// stopped. It blocks; callers run it in its own goroutine.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("service: listen: %w", err)
	}
	log.WithComponent("service").Info().Str("addr", addr).Msg("gateway API listening")
	return s.grpc.Serve(lis)
}

// Stop drains in-flight RPCs and stops accepting new ones.
func (s *Server) Stop() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
}

// statusOf renders err into the proto Status every response embeds.
// nil becomes status 0 with no message; any error becomes status 1
// with err.Error() as the message. The gRPC status code attached to the RPC's own error
// return is computed separately via gwerr.ToStatus, so gwctl gets both
// a machine-checkable gRPC code and a human string in the payload.
func statusOf(err error) *proto.Status {
	if err == nil {
		return &proto.Status{Status: 0}
	}
	return &proto.Status{Status: 1, ErrorMessage: err.Error()}
}

// acquire locks nqns in NQN order and returns the release closure; it
// is the single call site every handler uses for step 2 of the
// mutation contract.
func (s *Server) acquire(nqns ...string) locks.Release {
	return s.subsystems.Acquire(nqns...)
}

// lockEngine is the single call site for step 4's local-TGT mutation.
func (s *Server) lockEngine() func() {
	s.engineLock.Lock()
	return s.engineLock.Unlock
}
