package statemap

import "context"

// WatchEvent is one notification out of a Backend's change stream:
// the epoch after the change, and the keys that moved.
type WatchEvent struct {
	Epoch       uint64
	ChangedKeys []string
}

// Backend is the abstract cluster object store collaborator: a named
// object carrying an omap (sorted key→value map), exposing
// read/write, per-object watch, and compare-and-set. It is out of
// scope for this repo — the real implementation talks to the
// distributed object store's client library — so Backend is the seam
// a concrete adapter plugs into.
type Backend interface {
	// Snapshot returns the current global epoch and the full ordered
	// contents of the object.
	Snapshot(ctx context.Context) (epoch uint64, records []Record, err error)

	// CAS atomically writes key with the given value if key's current
	// version equals expectedVersion (0 means "must not exist"). It
	// returns the key's new version and bumps the global epoch.
	CAS(ctx context.Context, key string, expectedVersion uint64, value []byte, author string) (newVersion uint64, err error)

	// Delete removes key if its current version equals expectedVersion.
	Delete(ctx context.Context, key string, expectedVersion uint64) error

	// Watch returns a channel of WatchEvent. The channel is closed if
	// the subscription cannot be maintained; callers must resnapshot
	// and re-watch in that case.
	Watch(ctx context.Context) (<-chan WatchEvent, error)
}
