package resolver

import (
	"sync"
	"time"
)

// entry is one cached name-or-key -> identifier mapping (spec §4.4).
type entry struct {
	value      string
	insertedAt time.Time
}

// index is one of the seven independent caches of spec §4.4's cache-shape
// table. Keys are already-composed composite strings (e.g.
// "<space_id>\x00<name>"); the index itself knows nothing about what the
// key is made of. Expiry is lazy: an entry is only checked against ttl
// when it is read, never swept in the background.
type index struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]entry
}

func newIndex(ttl time.Duration) *index {
	return &index{ttl: ttl, m: make(map[string]entry)}
}

// get returns the cached value and true if present and unexpired.
func (i *index) get(key string) (string, bool) {
	i.mu.RLock()
	e, ok := i.m[key]
	i.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Since(e.insertedAt) > i.ttl {
		return "", false
	}
	return e.value, true
}

// put inserts or refreshes a single entry.
func (i *index) put(key, value string) {
	i.mu.Lock()
	i.m[key] = entry{value: value, insertedAt: time.Now()}
	i.mu.Unlock()
}

// deletePrefix drops every key sharing the given prefix, used for cascade
// invalidation where the composite key begins with the invalidated
// parent's identifier.
func (i *index) deletePrefix(prefix string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.m {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(i.m, k)
		}
	}
}

// valuesWithPrefix returns the values of every entry whose key shares the
// given prefix, before those entries are dropped. Cascade invalidation
// uses this to discover the child identifiers (e.g. the type ids scoped
// to a space) that must themselves be invalidated one level down.
func (i *index) valuesWithPrefix(prefix string) []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	var values []string
	for k, e := range i.m {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			values = append(values, e.value)
		}
	}
	return values
}

// clear empties the index entirely.
func (i *index) clear() {
	i.mu.Lock()
	i.m = make(map[string]entry)
	i.mu.Unlock()
}
