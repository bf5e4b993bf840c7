// Package grouplock provides per-group mutual exclusion for the
// check-then-act membership mutations in internal/policy (join, invite,
// kick, role change). A single process owns all group state behind the
// Mongo repository, so a process-local lock keyed by group ID is enough to
// serialize conflicting mutations on the same group without a distributed
// lock service; none of the group's concurrent requests span processes.
package grouplock

import "sync"

type Locker struct {
	mu     sync.Mutex
	groups map[uint64]*sync.Mutex
}

func New() *Locker {
	return &Locker{groups: make(map[uint64]*sync.Mutex)}
}

func (l *Locker) lockFor(groupID uint64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.groups[groupID]
	if !ok {
		m = &sync.Mutex{}
		l.groups[groupID] = m
	}
	return m
}

// Lock acquires the exclusive lock for groupID, returning the unlock func.
func (l *Locker) Lock(groupID uint64) (unlock func()) {
	m := l.lockFor(groupID)
	m.Lock()
	return m.Unlock
}
