// Package cache provides a bounded LRU cache for processed expressions.
// The cache is a pure optimization: a hit returns a value byte-identical to
// what a fresh computation would produce for the same key, and any failure
// path degrades to recomputation. Both entry count and estimated memory are
// bounded, with least-recently-used eviction when either bound is exceeded.
package cache

import (
	"hash/fnv"
	"sync"
	"time"

	"mathspeak/pkg/mathtypes"
)

const (
	// DefaultMaxEntries bounds the resident entry count.
	DefaultMaxEntries = 1024
	// DefaultMaxBytes bounds the total estimated memory of resident entries.
	DefaultMaxBytes = 8 * 1024 * 1024

	// Fixed per-entry overhead added to the string sizes in the estimate.
	entryOverhead = 128
)

// Key identifies one cached computation: the same (original, context,
// audience) triple always hashes to the same key across processes.
type Key uint64

// MakeKey hashes the cache key fields with FNV-1a. A NUL separator keeps
// ("ab","c") and ("a","bc") distinct.
func MakeKey(original string, context mathtypes.Context, audience mathtypes.AudienceLevel) Key {
	h := fnv.New64a()
	_, _ = h.Write([]byte(original))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(context))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(audience.String()))
	return Key(h.Sum64())
}

// node is an entry in the doubly-linked LRU list.
type node struct {
	key          Key
	value        mathtypes.ProcessedExpression
	sizeEstimate int
	hitCount     int
	lastAccessed time.Time
	prev         *node
	next         *node
}

// ExpressionCache is a thread-safe bounded LRU cache of processed
// expressions. A single coarse mutex guards all bookkeeping; contention is
// low for a text-rewrite workload.
type ExpressionCache struct {
	maxEntries int
	maxBytes   int

	mutex      sync.Mutex
	entries    map[Key]*node
	head       *node
	tail       *node
	totalBytes int
	hits       int
	misses     int
}

// New creates a cache with the given bounds. Non-positive bounds fall back
// to the defaults.
func New(maxEntries, maxBytes int) *ExpressionCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	head := &node{}
	tail := &node{}
	head.next = tail
	tail.prev = head

	return &ExpressionCache{
		maxEntries: maxEntries,
		maxBytes:   maxBytes,
		entries:    make(map[Key]*node),
		head:       head,
		tail:       tail,
	}
}

// Get retrieves a cached result and marks it as recently used.
func (c *ExpressionCache) Get(key Key) (mathtypes.ProcessedExpression, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses++
		return mathtypes.ProcessedExpression{}, false
	}
	n.hitCount++
	n.lastAccessed = time.Now()
	c.moveToHead(n)
	c.hits++
	return copyValue(n.value), true
}

// Put stores a result, evicting least-recently-used entries until both the
// entry-count and byte bounds hold again.
func (c *ExpressionCache) Put(key Key, value mathtypes.ProcessedExpression) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	size := estimateSize(&value)

	if n, ok := c.entries[key]; ok {
		c.totalBytes += size - n.sizeEstimate
		n.value = copyValue(value)
		n.sizeEstimate = size
		n.lastAccessed = time.Now()
		c.moveToHead(n)
		c.evictOverage()
		return
	}

	n := &node{
		key:          key,
		value:        copyValue(value),
		sizeEstimate: size,
		lastAccessed: time.Now(),
	}
	c.entries[key] = n
	c.addToHead(n)
	c.totalBytes += size
	c.evictOverage()
}

// Len returns the resident entry count.
func (c *ExpressionCache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *ExpressionCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[Key]*node)
	c.head.next = c.tail
	c.tail.prev = c.head
	c.totalBytes = 0
}

// Stats reports cache occupancy and hit-rate counters.
type Stats struct {
	Entries    int
	MaxEntries int
	Bytes      int
	MaxBytes   int
	Hits       int
	Misses     int
}

// Stats returns a snapshot of the cache counters.
func (c *ExpressionCache) Stats() Stats {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return Stats{
		Entries:    len(c.entries),
		MaxEntries: c.maxEntries,
		Bytes:      c.totalBytes,
		MaxBytes:   c.maxBytes,
		Hits:       c.hits,
		Misses:     c.misses,
	}
}

// evictOverage drops tail entries until both bounds hold. Must be called
// with the mutex held.
func (c *ExpressionCache) evictOverage() {
	for len(c.entries) > c.maxEntries || c.totalBytes > c.maxBytes {
		victim := c.tail.prev
		if victim == c.head {
			return
		}
		c.removeNode(victim)
		delete(c.entries, victim.key)
		c.totalBytes -= victim.sizeEstimate
	}
}

// moveToHead marks a node most recently used. Must be called with the mutex held.
func (c *ExpressionCache) moveToHead(n *node) {
	c.removeNode(n)
	c.addToHead(n)
}

// addToHead inserts a node right after the head sentinel. Must be called
// with the mutex held.
func (c *ExpressionCache) addToHead(n *node) {
	n.prev = c.head
	n.next = c.head.next
	c.head.next.prev = n
	c.head.next = n
}

// removeNode unlinks a node. Must be called with the mutex held.
func (c *ExpressionCache) removeNode(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// copyValue deep-copies the result so callers can never alias cache-internal
// state through the UnknownCommands slice.
func copyValue(v mathtypes.ProcessedExpression) mathtypes.ProcessedExpression {
	out := v
	if v.UnknownCommands != nil {
		out.UnknownCommands = make([]string, len(v.UnknownCommands))
		copy(out.UnknownCommands, v.UnknownCommands)
	}
	return out
}

func estimateSize(v *mathtypes.ProcessedExpression) int {
	size := entryOverhead + len(v.Original) + len(v.Processed) + len(v.Context)
	for _, cmd := range v.UnknownCommands {
		size += len(cmd) + 16
	}
	return size
}
