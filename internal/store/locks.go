package store

import "sync"

// keyedMutex serializes work per key while letting different keys proceed in
// parallel. Entries are never removed; the set of keys is the set of users.
type keyedMutex struct {
	locks sync.Map // string -> *sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
