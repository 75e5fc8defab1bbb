package creds

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvmeof/gateway/pkg/gwerr"
	"github.com/nvmeof/gateway/pkg/gwtypes"
	"github.com/nvmeof/gateway/pkg/tgt"
)

// Manager materializes PSK/DHCHAP/DHCHAP-ctrlr keys on disk in
// per-subsystem directories with 0600 permission and registers them
// in the engine's keyring under a deterministic name.
type Manager struct {
	baseDir string // e.g. /var/tmp
	engine  *tgt.Adapter
	cipher  *Cipher
}

func NewManager(baseDir string, engine *tgt.Adapter, cipher *Cipher) *Manager {
	return &Manager{baseDir: baseDir, engine: engine, cipher: cipher}
}

// keyDir lays out one directory per (kind, subsystem nqn) pair:
// /var/tmp/<kind>_<nqn>_*. Every host's key for that kind under the
// same subsystem lands in the same directory.
func (m *Manager) keyDir(kind gwtypes.KeyKind, nqn string) string {
	return filepath.Join(m.baseDir, fmt.Sprintf("%s_%s", kind, sanitizeNQN(nqn)))
}

func keyringName(nqn, hostNQN string, kind gwtypes.KeyKind) string {
	return fmt.Sprintf("%s_%s_%s", sanitizeNQN(nqn), sanitizeNQN(hostNQN), kind)
}

// KeyringName exposes the deterministic keyring-entry name Materialize
// would assign to a key with the given owner/host/kind, so a caller
// that only has the metadata (not the plaintext bytes) can still
// address the entry to revoke it.
func (m *Manager) KeyringName(nqn, hostNQN string, kind gwtypes.KeyKind) string {
	return keyringName(nqn, hostNQN, kind)
}

func sanitizeNQN(nqn string) string {
	out := make([]byte, len(nqn))
	for i := 0; i < len(nqn); i++ {
		c := nqn[i]
		if c == '/' || c == ' ' {
			c = '_'
		}
		out[i] = c
	}
	return string(out)
}

// Materialize writes key.Bytes to a 0600 file under the subsystem's
// directory and registers it in the engine keyring. It returns the
// keyring name the caller should store as the host's key reference.
func (m *Manager) Materialize(ctx context.Context, key gwtypes.Key) (string, error) {
	dir := m.keyDir(key.Kind, key.OwnerSubsystemNQN)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", gwerr.Wrap(gwerr.Internal, err, "creds: creating subsystem dir")
	}

	name := keyringName(key.OwnerSubsystemNQN, key.HostNQN, key.Kind)
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, key.Bytes, 0600); err != nil {
		return "", gwerr.Wrap(gwerr.Internal, err, "creds: writing key file")
	}

	if err := m.engine.AddKeyringEntry(ctx, tgt.KeyringEntry{Name: name, Path: path}); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return name, nil
}

// Revoke removes name from the engine keyring, unlinks its file, and
// removes the kind/subsystem directory if it is now empty — the
// three steps host or subsystem deletion requires.
func (m *Manager) Revoke(ctx context.Context, kind gwtypes.KeyKind, nqn, keyringEntryName string) error {
	if keyringEntryName == "" {
		return nil
	}

	if err := m.engine.RemoveKeyringEntry(ctx, keyringEntryName); err != nil {
		return err
	}

	dir := m.keyDir(kind, nqn)
	path := filepath.Join(dir, keyringEntryName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return gwerr.Wrap(gwerr.Internal, err, "creds: unlinking key file")
	}

	entries, err := os.ReadDir(dir)
	if err == nil && len(entries) == 0 {
		_ = os.Remove(dir)
	}

	return nil
}

// EncryptForStateMap prepares key.Bytes for storage in the state map:
// encrypted under the cluster secret, never in the clear.
func (m *Manager) EncryptForStateMap(key gwtypes.Key) ([]byte, error) {
	return m.cipher.Encrypt(key.Bytes)
}

// DecryptFromStateMap reverses EncryptForStateMap, for a peer
// reconciling a key it did not originate.
func (m *Manager) DecryptFromStateMap(ciphertext []byte) ([]byte, error) {
	return m.cipher.Decrypt(ciphertext)
}
