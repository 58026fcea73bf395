package labelcache

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 64

// Cache is an LRU cache with a fixed capacity.
type Cache[K comparable, V any] struct {
	entries  map[K]*node[K, V]
	lru      list[K, V]
	capacity int

	hits      uint64
	misses    uint64
	evictions uint64
}

// Stats holds cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// New creates a cache holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*node[K, V], capacity),
		capacity: capacity,
	}
}

// Get retrieves a cached value and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.lru.moveToFront(n)
	return n.value, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *Cache[K, V]) Set(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.lru.moveToFront(n)
		return
	}
	for c.lru.len >= c.capacity {
		old, ok := c.lru.removeOldest()
		if !ok {
			break
		}
		delete(c.entries, old.key)
		c.evictions++
	}
	n := &node[K, V]{key: key, value: value}
	c.lru.pushFront(n)
	c.entries[key] = n
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// The second result reports whether create was called.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) (V, bool) {
	if v, ok := c.Get(key); ok {
		return v, false
	}
	v := create()
	c.Set(key, v)
	return v, true
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Clear removes all entries. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*node[K, V], c.capacity)
	c.lru = list[K, V]{}
}

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
