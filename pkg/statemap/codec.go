package statemap

import (
	"encoding/json"

	"github.com/nvmeof/gateway/pkg/gwtypes"
)

// The codec functions below are the only place domain entities are
// turned into the bytes a Record carries and back. Every component
// that reads or writes a given entity kind goes through these so the
// wire shape of a value never drifts between writers and readers.

func EncodeSubsystem(s gwtypes.Subsystem) ([]byte, error) { return json.Marshal(s) }

func DecodeSubsystem(rec Record) (gwtypes.Subsystem, bool) {
	var s gwtypes.Subsystem
	if json.Unmarshal(rec.Value, &s) != nil {
		return gwtypes.Subsystem{}, false
	}
	return s, true
}

func EncodeNamespace(n gwtypes.Namespace) ([]byte, error) { return json.Marshal(n) }

func DecodeNamespace(rec Record) (gwtypes.Namespace, bool) {
	var n gwtypes.Namespace
	if json.Unmarshal(rec.Value, &n) != nil {
		return gwtypes.Namespace{}, false
	}
	return n, true
}

func EncodeListener(l gwtypes.Listener) ([]byte, error) { return json.Marshal(l) }

func DecodeListener(rec Record) (gwtypes.Listener, bool) {
	var l gwtypes.Listener
	if json.Unmarshal(rec.Value, &l) != nil {
		return gwtypes.Listener{}, false
	}
	return l, true
}

func EncodeHost(h gwtypes.Host) ([]byte, error) { return json.Marshal(h) }

func DecodeHost(rec Record) (gwtypes.Host, bool) {
	var h gwtypes.Host
	if json.Unmarshal(rec.Value, &h) != nil {
		return gwtypes.Host{}, false
	}
	return h, true
}

// keyRecord is the state-map payload for a key/ record: everything
// about the key except its raw bytes, which travel separately as
// ciphertext so a plain json.Unmarshal of a key record can never
// produce plaintext key material.
type keyRecord struct {
	OwnerSubsystemNQN string         `json:"owner_subsystem_nqn"`
	HostNQN           string         `json:"host_nqn"`
	Name              string         `json:"name"`
	Kind              gwtypes.KeyKind `json:"kind"`
	Ciphertext        []byte         `json:"ciphertext"`
}

// EncodeKey accepts already-encrypted bytes (see pkg/creds.Cipher) —
// this package never sees plaintext key material.
func EncodeKey(k gwtypes.Key, ciphertext []byte) ([]byte, error) {
	return json.Marshal(keyRecord{
		OwnerSubsystemNQN: k.OwnerSubsystemNQN,
		HostNQN:           k.HostNQN,
		Name:              k.Name,
		Kind:              k.Kind,
		Ciphertext:        ciphertext,
	})
}

// DecodeKey returns the key metadata and its ciphertext; the caller
// decrypts via pkg/creds.Cipher before handing bytes to the engine.
func DecodeKey(rec Record) (meta gwtypes.Key, ciphertext []byte, ok bool) {
	var kr keyRecord
	if json.Unmarshal(rec.Value, &kr) != nil {
		return gwtypes.Key{}, nil, false
	}
	return gwtypes.Key{
		OwnerSubsystemNQN: kr.OwnerSubsystemNQN,
		HostNQN:           kr.HostNQN,
		Name:              kr.Name,
		Kind:              kr.Kind,
	}, kr.Ciphertext, true
}
