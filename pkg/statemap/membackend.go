package statemap

import (
	"context"
	"sort"
	"sync"

	"github.com/nvmeof/gateway/pkg/gwerr"
)

// MemBackend is an in-process Backend. It models the same epoch +
// per-key-version CAS discipline the real omap object uses
// (control/state.py's single OMAP_VERSION_KEY bumped on every write),
// and doubles as the default backend for single-gateway deployments
// and for tests.
type MemBackend struct {
	mu      sync.Mutex
	epoch   uint64
	records map[string]Record
	subs    []chan WatchEvent
}

// NewMemBackend returns an empty backend at epoch 0.
func NewMemBackend() *MemBackend {
	return &MemBackend{records: make(map[string]Record)}
}

func (b *MemBackend) Snapshot(_ context.Context) (uint64, []Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Record, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return b.epoch, out, nil
}

func (b *MemBackend) CAS(_ context.Context, key string, expectedVersion uint64, value []byte, author string) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, exists := b.records[key]
	switch {
	case !exists && expectedVersion != 0:
		return 0, gwerr.New(gwerr.Aborted, "cas: key %q does not exist, expected version %d", key, expectedVersion)
	case exists && cur.Version != expectedVersion:
		return 0, gwerr.New(gwerr.Aborted, "cas: key %q version conflict: have %d, expected %d", key, cur.Version, expectedVersion)
	}

	newVersion := expectedVersion + 1
	b.records[key] = Record{Key: key, Value: value, Version: newVersion, Author: author}
	b.epoch++
	b.notify(WatchEvent{Epoch: b.epoch, ChangedKeys: []string{key}})
	return newVersion, nil
}

func (b *MemBackend) Delete(_ context.Context, key string, expectedVersion uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, exists := b.records[key]
	if !exists {
		return gwerr.New(gwerr.NotFound, "delete: key %q not found", key)
	}
	if cur.Version != expectedVersion {
		return gwerr.New(gwerr.Aborted, "delete: key %q version conflict: have %d, expected %d", key, cur.Version, expectedVersion)
	}

	delete(b.records, key)
	b.epoch++
	b.notify(WatchEvent{Epoch: b.epoch, ChangedKeys: []string{key}})
	return nil
}

// watchBuffer bounds each subscriber's channel; the watch package
// drops the oldest event and resnapshots on overflow rather than
// blocking this backend's writers.
const watchBuffer = 256

func (b *MemBackend) Watch(ctx context.Context) (<-chan WatchEvent, error) {
	ch := make(chan WatchEvent, watchBuffer)

	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subs {
			if sub == ch {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				break
			}
		}
		close(ch)
	}()

	return ch, nil
}

// notify must be called with b.mu held. A full subscriber channel
// drops the oldest pending event rather than block the writer that
// holds the lock.
func (b *MemBackend) notify(ev WatchEvent) {
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}
}
