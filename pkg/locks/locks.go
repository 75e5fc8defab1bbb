// Package locks implements the two in-process locks of the
// concurrency model: a single engine lock serializing every TGT
// mutation, and a per-subsystem lock manager acquired in NQN
// lexicographic order so a multi-subsystem operation never deadlocks
// against one proceeding in the opposite order.
package locks

import (
	"sort"
	"sync"
)

// Engine is the single mutex held for the duration of any TGT
// mutation, and while reading TGT snapshots to avoid torn views.
type Engine struct {
	mu sync.Mutex
}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) Lock()   { e.mu.Lock() }
func (e *Engine) Unlock() { e.mu.Unlock() }

// Subsystems hands out per-subsystem locks keyed by NQN, created
// lazily and never removed — subsystem churn is low relative to the
// cost of a map keyed on a pointer.
type Subsystems struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSubsystems() *Subsystems {
	return &Subsystems{locks: make(map[string]*sync.Mutex)}
}

func (s *Subsystems) lockFor(nqn string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[nqn]
	if !ok {
		l = &sync.Mutex{}
		s.locks[nqn] = l
	}
	return l
}

// Release unlocks the per-subsystem locks acquired by a matching
// Acquire call, in the reverse of acquisition order.
type Release func()

// Acquire takes the locks for nqns in NQN lexicographic order,
// regardless of the order they were passed in, so that an operation
// touching subsystems {b, a} and a concurrent operation touching
// {a, b} can never deadlock against each other.
func (s *Subsystems) Acquire(nqns ...string) Release {
	seen := make(map[string]bool, len(nqns))
	sorted := make([]string, 0, len(nqns))
	for _, nqn := range nqns {
		if !seen[nqn] {
			seen[nqn] = true
			sorted = append(sorted, nqn)
		}
	}
	sort.Strings(sorted)

	locked := make([]*sync.Mutex, 0, len(sorted))
	for _, nqn := range sorted {
		l := s.lockFor(nqn)
		l.Lock()
		locked = append(locked, l)
	}

	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}
