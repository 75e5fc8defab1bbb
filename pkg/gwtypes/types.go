// Package gwtypes holds the domain model shared by every gateway
// component. Nothing in this package knows about gRPC or the wire
// format; translation to and from the generated protobuf types
// happens at the edge, in pkg/service.
package gwtypes

import "time"

// Gateway is one running instance of this system on one host.
type Gateway struct {
	Name          string
	Group         string
	NodeIP        string
	GRPCPort      int
	IOPort        int
	DiscoveryPort int
	DeregisterAt  time.Time // zero unless a clean shutdown is in progress
}

// Subsystem is the logical NVMe target hosts attach to.
type Subsystem struct {
	NQN                     string
	Serial                  string
	MaxNamespaces           int
	AllowAnyHost            bool
	CreatedWithoutGroupAppend bool
}

// Namespace is a unit of storage inside a Subsystem, backed by a
// block image in the cluster object store.
type Namespace struct {
	SubsystemNQN      string
	NSID              uint32
	ImagePool         string
	ImageName         string
	SizeBytes         uint64
	BlockSize         uint32
	UUID              string
	LoadBalancingGroup int
	AutoVisible       bool
	HostVisibility    map[string]bool // host-nqn -> visible, only meaningful when !AutoVisible
}

// Listener is a (transport, address, port) endpoint on which a
// subsystem accepts connections. It is owned by exactly one gateway.
type Listener struct {
	SubsystemNQN   string
	GatewayName    string
	Transport      string // "tcp"
	AddressFamily  string // "ipv4" | "ipv6"
	Address        string
	Port           string
	Secure         bool
}

// Host is either an explicit ACL entry or, when HostNQN is "*", a
// wildcard allow-any-host marker.
type Host struct {
	SubsystemNQN     string
	HostNQN          string // "*" for allow-any-host
	PSKKeyRef        string
	DHCHAPKeyRef     string
	DHCHAPCtrlrKeyRef string
}

// KeyKind enumerates the three credential flavors NVMe-oF supports.
type KeyKind string

const (
	KeyKindPSK          KeyKind = "psk"
	KeyKindDHCHAP       KeyKind = "dhchap"
	KeyKindDHCHAPCtrlr  KeyKind = "dhchap-ctrlr"
)

// Key is raw credential material. Bytes are never logged and the
// struct's String()/GoString() are overridden to guarantee that.
type Key struct {
	OwnerSubsystemNQN string
	HostNQN           string
	Name              string
	Kind              KeyKind
	Bytes             []byte
}

// String deliberately omits Bytes — see pkg/creds for the secrecy
// invariant this enforces.
func (k Key) String() string {
	return "Key{subsystem=" + k.OwnerSubsystemNQN + " host=" + k.HostNQN + " kind=" + string(k.Kind) + "}"
}

// GoString mirrors String so that %#v in a log statement is just as
// safe as %v.
func (k Key) GoString() string { return k.String() }

// ANAState is the access state a gateway advertises for a group.
type ANAState string

const (
	ANAOptimized    ANAState = "optimized"
	ANAInaccessible ANAState = "inaccessible"
)

// ANAGroupAssignment records which ANA groups a gateway currently
// serves as optimized. Assignment is per-gateway-global, not
// per-subsystem.
type ANAGroupAssignment struct {
	Gateway string
	Groups  map[int]bool
}

// ConnectionRow is one row of connection_list output: a host's
// current TGT-reported controller state joined with its ACL entry.
type ConnectionRow struct {
	HostNQN       string
	Connected     bool
	ControllerID  int32
	QPairCount    int32
	Secure        bool
	UsePSK        bool
	UseDHCHAP     bool
}
