// Package statemap implements the cluster-wide replicated state
// store: a sorted key→value map persisted on a named object in the
// cluster store, with versioned compare-and-set, a watch
// stream, and an advisory cluster lock for compound mutations.
package statemap

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
	bolt "go.etcd.io/bbolt"

	"github.com/nvmeof/gateway/pkg/gwerr"
)

var mirrorBucket = []byte("statemap_mirror")

// Store is the gateway-facing handle onto the state map. It fronts a
// Backend with an in-memory read cache (so handlers don't round-trip
// to the cluster store for a read they just wrote) and a local bbolt
// mirror a restarting gateway can diff TGT against before its watch
// reconnects.
type Store struct {
	backend Backend
	mirror  *bolt.DB
	cache   *xsync.MapOf[string, Record]
}

// Open wires backend to a bbolt mirror file at mirrorPath.
func Open(backend Backend, mirrorPath string) (*Store, error) {
	db, err := bolt.Open(mirrorPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("statemap: opening mirror: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(mirrorBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("statemap: creating mirror bucket: %w", err)
	}

	return &Store{
		backend: backend,
		mirror:  db,
		cache:   xsync.NewMapOf[string, Record](),
	}, nil
}

func (s *Store) Close() error { return s.mirror.Close() }

// Snapshot refreshes the local cache and mirror from the backend and
// returns the epoch and records observed.
func (s *Store) Snapshot(ctx context.Context) (uint64, []Record, error) {
	epoch, records, err := s.backend.Snapshot(ctx)
	if err != nil {
		return 0, nil, gwerr.Wrap(gwerr.Unavailable, err, "statemap: snapshot")
	}

	s.cache.Clear()
	if err := s.mirror.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(mirrorBucket)
		if err := b.ForEach(func(k, _ []byte) error { return b.Delete(k) }); err != nil {
			return err
		}
		for _, r := range records {
			s.cache.Store(r.Key, r)
			if err := b.Put([]byte(r.Key), encodeRecord(r)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return 0, nil, gwerr.Wrap(gwerr.Internal, err, "statemap: mirroring snapshot")
	}

	return epoch, records, nil
}

// Get returns the cached record for key, refreshing from the mirror
// if this process has not snapshotted yet.
func (s *Store) Get(key string) (Record, bool) {
	if r, ok := s.cache.Load(key); ok {
		return r, true
	}

	var r Record
	var found bool
	_ = s.mirror.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(mirrorBucket).Get([]byte(key))
		if data == nil {
			return nil
		}
		decoded, err := decodeRecord(key, data)
		if err != nil {
			return nil
		}
		r, found = decoded, true
		return nil
	})
	return r, found
}

// CAS writes key through the backend and, on success, updates the
// local cache and mirror to match.
func (s *Store) CAS(ctx context.Context, key string, expectedVersion uint64, value []byte, author string) (Record, error) {
	newVersion, err := s.backend.CAS(ctx, key, expectedVersion, value, author)
	if err != nil {
		return Record{}, err
	}

	rec := Record{Key: key, Value: value, Version: newVersion, Author: author}
	s.cache.Store(key, rec)
	_ = s.mirror.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(mirrorBucket).Put([]byte(key), encodeRecord(rec))
	})
	return rec, nil
}

// Delete removes key through the backend and drops it from the local
// cache and mirror.
func (s *Store) Delete(ctx context.Context, key string, expectedVersion uint64) error {
	if err := s.backend.Delete(ctx, key, expectedVersion); err != nil {
		return err
	}

	s.cache.Delete(key)
	_ = s.mirror.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(mirrorBucket).Delete([]byte(key))
	})
	return nil
}

// Watch returns the backend's raw change stream. Callers generally
// want pkg/statemap's Subscription (see watch.go) rather than this.
func (s *Store) Watch(ctx context.Context) (<-chan WatchEvent, error) {
	return s.backend.Watch(ctx)
}

func encodeRecord(r Record) []byte {
	buf := make([]byte, 8+4+len(r.Author)+len(r.Value))
	putUint64(buf, r.Version)
	putUint32(buf[8:], uint32(len(r.Author)))
	copy(buf[12:], r.Author)
	copy(buf[12+len(r.Author):], r.Value)
	return buf
}

func decodeRecord(key string, data []byte) (Record, error) {
	if len(data) < 12 {
		return Record{}, fmt.Errorf("statemap: corrupt mirror record for %q", key)
	}
	version := getUint64(data)
	authorLen := int(getUint32(data[8:]))
	if len(data) < 12+authorLen {
		return Record{}, fmt.Errorf("statemap: corrupt mirror record for %q", key)
	}
	author := string(data[12 : 12+authorLen])
	value := data[12+authorLen:]
	return Record{Key: key, Value: value, Version: version, Author: author}, nil
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func getUint64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func putUint32(b []byte, v uint32) {
	for i := 0; i < 4; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func getUint32(b []byte) uint32 {
	var v uint32
	for i := 0; i < 4; i++ {
		v |= uint32(b[i]) << (8 * i)
	}
	return v
}
