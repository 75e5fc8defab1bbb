package statemap

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/nvmeof/gateway/pkg/gwerr"
)

const advisoryLockKey = "lock/advisory"

// lockPayload is the value stored under advisoryLockKey: an owner
// token and the deadline after which the lock is considered
// abandoned, so a crashed holder does not wedge the cluster forever.
type lockPayload struct {
	Owner    string    `json:"owner"`
	Deadline time.Time `json:"deadline"`
}

// Lock is a held advisory cluster lock. Release gives it up; it is
// safe to let one expire by TTL instead.
type Lock struct {
	store   *Store
	owner   string
	version uint64
}

// AcquireLock takes the state map's single advisory cluster lock,
// used for compound mutations spanning multiple keys (e.g.
// force-deleting a subsystem with dependents). It retries until ttl
// elapses, treating an expired prior holder's lock as free.
//
// Modeled on ValentinKolb-dKV's lib/lockmgr: a random owner token
// written via CAS, read back to confirm ownership.
func (s *Store) AcquireLock(ctx context.Context, ttl time.Duration) (*Lock, error) {
	owner, err := randomOwnerToken()
	if err != nil {
		return nil, gwerr.Wrap(gwerr.Internal, err, "statemap: generating lock owner token")
	}

	deadline := time.Now().Add(ttl)
	for {
		rec, ok := s.Get(advisoryLockKey)
		expectedVersion := uint64(0)
		if ok {
			var held lockPayload
			if json.Unmarshal(rec.Value, &held) == nil && time.Now().Before(held.Deadline) {
				if time.Now().After(deadline) {
					return nil, gwerr.New(gwerr.Aborted, "statemap: advisory lock held by %q", held.Owner)
				}
				select {
				case <-ctx.Done():
					return nil, gwerr.Wrap(gwerr.DeadlineExceeded, ctx.Err(), "statemap: acquiring advisory lock")
				case <-time.After(50 * time.Millisecond):
				}
				continue
			}
			// Previous holder's lock expired; CAS over it.
			expectedVersion = rec.Version
		}

		payload, _ := json.Marshal(lockPayload{Owner: owner, Deadline: time.Now().Add(ttl)})
		newRec, err := s.CAS(ctx, advisoryLockKey, expectedVersion, payload, owner)
		if err != nil {
			if gwerr.KindOf(err) == gwerr.Aborted {
				continue // lost the race, retry
			}
			return nil, err
		}
		return &Lock{store: s, owner: owner, version: newRec.Version}, nil
	}
}

// Release gives up the lock if it is still held by this owner.
func (l *Lock) Release(ctx context.Context) error {
	rec, ok := l.store.Get(advisoryLockKey)
	if !ok {
		return nil
	}
	var held lockPayload
	if json.Unmarshal(rec.Value, &held) != nil || held.Owner != l.owner {
		return nil // already lost to expiry and reacquired by someone else
	}
	return l.store.Delete(ctx, advisoryLockKey, rec.Version)
}

func randomOwnerToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
