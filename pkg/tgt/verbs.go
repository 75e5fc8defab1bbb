package tgt

import "context"

// The verbs below are abstract, one-to-one with the engine's own
// RPCs; each just builds a typed params struct and
// round-trips it through Call, mirroring the SPDK JSON-RPC client
// pattern (one method per engine verb, typed request, typed result).

type CreateSubsystemParams struct {
	NQN                     string `json:"nqn"`
	Serial                  string `json:"serial_number,omitempty"`
	MaxNamespaces           int    `json:"max_namespaces,omitempty"`
	AllowAnyHost            bool   `json:"allow_any_host,omitempty"`
}

func (a *Adapter) CreateSubsystem(ctx context.Context, p CreateSubsystemParams) error {
	return a.Call(ctx, "nvmf_create_subsystem", p, nil)
}

func (a *Adapter) DeleteSubsystem(ctx context.Context, nqn string) error {
	return a.Call(ctx, "nvmf_delete_subsystem", map[string]string{"nqn": nqn}, nil)
}

type SubsystemInfo struct {
	NQN           string            `json:"nqn"`
	Serial        string            `json:"serial_number"`
	AllowAnyHost  bool              `json:"allow_any_host"`
	Namespaces    []NamespaceInfo   `json:"namespaces"`
	Listeners     []ListenerInfo    `json:"listen_addresses"`
	Hosts         []string          `json:"hosts"`
}

type NamespaceInfo struct {
	NSID      uint32 `json:"nsid"`
	BdevName  string `json:"bdev_name"`
	UUID      string `json:"uuid"`
}

type ListenerInfo struct {
	Transport     string `json:"trtype"`
	AddressFamily string `json:"adrfam"`
	Address       string `json:"traddr"`
	Port          string `json:"trsvcid"`
}

// GetSubsystems enumerates every subsystem currently realized in the
// local engine, used by the Peer Reconciler's startup diff.
func (a *Adapter) GetSubsystems(ctx context.Context) ([]SubsystemInfo, error) {
	var out []SubsystemInfo
	if err := a.Call(ctx, "nvmf_get_subsystems", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateNamespaceParams struct {
	NQN       string `json:"nqn"`
	NSID      uint32 `json:"nsid,omitempty"`
	BdevName  string `json:"bdev_name"`
	UUID      string `json:"uuid,omitempty"`
}

func (a *Adapter) CreateNamespace(ctx context.Context, p CreateNamespaceParams) (uint32, error) {
	var nsid uint32
	if err := a.Call(ctx, "nvmf_subsystem_add_ns", p, &nsid); err != nil {
		return 0, err
	}
	return nsid, nil
}

func (a *Adapter) DeleteNamespace(ctx context.Context, nqn string, nsid uint32) error {
	return a.Call(ctx, "nvmf_subsystem_remove_ns", map[string]interface{}{"nqn": nqn, "nsid": nsid}, nil)
}

func (a *Adapter) ResizeNamespace(ctx context.Context, nqn string, nsid uint32, newSizeBytes uint64) error {
	return a.Call(ctx, "bdev_rbd_resize", map[string]interface{}{
		"nqn": nqn, "nsid": nsid, "new_size_in_bytes": newSizeBytes,
	}, nil)
}

func (a *Adapter) ChangeNamespaceLoadBalancingGroup(ctx context.Context, nqn string, nsid uint32, group int) error {
	return a.Call(ctx, "nvmf_subsystem_set_ns_ana_group", map[string]interface{}{
		"nqn": nqn, "nsid": nsid, "anagrpid": group,
	}, nil)
}

type ListenerParams struct {
	NQN           string `json:"nqn"`
	Transport     string `json:"trtype"`
	AddressFamily string `json:"adrfam"`
	Address       string `json:"traddr"`
	Port          string `json:"trsvcid"`
	Secure        bool   `json:"secure,omitempty"`
}

func (a *Adapter) AddListener(ctx context.Context, p ListenerParams) error {
	return a.Call(ctx, "nvmf_subsystem_add_listener", p, nil)
}

func (a *Adapter) RemoveListener(ctx context.Context, p ListenerParams) error {
	return a.Call(ctx, "nvmf_subsystem_remove_listener", p, nil)
}

func (a *Adapter) AddHost(ctx context.Context, nqn, hostNQN string) error {
	return a.Call(ctx, "nvmf_subsystem_add_host", map[string]string{"nqn": nqn, "host": hostNQN}, nil)
}

func (a *Adapter) RemoveHost(ctx context.Context, nqn, hostNQN string) error {
	return a.Call(ctx, "nvmf_subsystem_remove_host", map[string]string{"nqn": nqn, "host": hostNQN}, nil)
}

func (a *Adapter) AllowAnyHost(ctx context.Context, nqn string, allow bool) error {
	return a.Call(ctx, "nvmf_subsystem_allow_any_host", map[string]interface{}{"nqn": nqn, "allow_any_host": allow}, nil)
}

// SetANAState switches the given subsystem's listeners on this
// gateway to advertise state for an ANA group.
func (a *Adapter) SetANAState(ctx context.Context, nqn string, group int, state string) error {
	return a.Call(ctx, "nvmf_subsystem_listener_set_ana_state", map[string]interface{}{
		"nqn": nqn, "anagrpid": group, "ana_state": state,
	}, nil)
}

type KeyringEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (a *Adapter) AddKeyringEntry(ctx context.Context, e KeyringEntry) error {
	return a.Call(ctx, "keyring_file_add_key", e, nil)
}

func (a *Adapter) RemoveKeyringEntry(ctx context.Context, name string) error {
	return a.Call(ctx, "keyring_file_remove_key", map[string]string{"name": name}, nil)
}

func (a *Adapter) SetLogLevel(ctx context.Context, level string) error {
	return a.Call(ctx, "log_set_level", map[string]string{"level": level}, nil)
}

type ConnectedHost struct {
	HostNQN      string `json:"hostnqn"`
	ControllerID int32  `json:"cntlid"`
	QPairCount   int32  `json:"num_io_qpairs"`
	Secure       bool   `json:"secure"`
	UsePSK       bool   `json:"psk"`
	UseDHCHAP    bool   `json:"dhchap"`
}

func (a *Adapter) ListConnectedHosts(ctx context.Context, nqn string) ([]ConnectedHost, error) {
	var out []ConnectedHost
	if err := a.Call(ctx, "nvmf_subsystem_get_controllers", map[string]string{"nqn": nqn}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
