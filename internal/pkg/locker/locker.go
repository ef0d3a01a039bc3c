// Package locker provides per-key mutual exclusion. It serializes writes that
// share a logical key (for the rate engine: shipment id + rate type) without
// forcing unrelated keys to contend on a single lock.
package locker

import "sync"

// KeyedLocker hands out one mutex per key. Locks are created lazily on first
// use and kept for the lifetime of the locker; the expected key cardinality
// (active shipments under concurrent edit) is small.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedLocker creates an empty KeyedLocker.
func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for key, blocking until it is available.
func (l *KeyedLocker) Lock(key string) {
	l.lockFor(key).Lock()
}

// Unlock releases the mutex for key. Unlocking a key that was never locked
// panics, matching sync.Mutex semantics.
func (l *KeyedLocker) Unlock(key string) {
	l.lockFor(key).Unlock()
}

func (l *KeyedLocker) lockFor(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
