package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathspeak/pkg/mathtypes"
)

func makeResult(text string) mathtypes.ProcessedExpression {
	return mathtypes.ProcessedExpression{
		Original:  text,
		Processed: "spoken " + text,
		Context:   mathtypes.ContextGeneral,
	}
}

func TestKeyDeterminism(t *testing.T) {
	k1 := MakeKey("x+y", mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate)
	k2 := MakeKey("x+y", mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate)
	assert.Equal(t, k1, k2)
}

func TestKeyFieldsAreSeparated(t *testing.T) {
	// Same concatenation, different field split.
	k1 := MakeKey("ab", mathtypes.Context("c"), mathtypes.AudienceUndergraduate)
	k2 := MakeKey("a", mathtypes.Context("bc"), mathtypes.AudienceUndergraduate)
	assert.NotEqual(t, k1, k2)
}

func TestKeyVariesByContextAndAudience(t *testing.T) {
	base := MakeKey("x", mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate)
	assert.NotEqual(t, base, MakeKey("x", mathtypes.ContextArithmetic, mathtypes.AudienceUndergraduate))
	assert.NotEqual(t, base, MakeKey("x", mathtypes.ContextGeneral, mathtypes.AudienceResearch))
}

func TestGetMissThenHit(t *testing.T) {
	c := New(4, 0)
	key := MakeKey("x", mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate)

	_, ok := c.Get(key)
	assert.False(t, ok)

	want := makeResult("x")
	c.Put(key, want)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestHitReturnsByteIdenticalCopy(t *testing.T) {
	c := New(4, 0)
	key := MakeKey("y", mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate)

	stored := makeResult("y")
	stored.UnknownCommands = []string{`\foo`}
	c.Put(key, stored)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, stored, got)

	// Mutating the returned slice must not corrupt the cached value.
	got.UnknownCommands[0] = `\mutated`
	again, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, `\foo`, again.UnknownCommands[0])
}

func TestEntryCountBound(t *testing.T) {
	const capacity = 3
	c := New(capacity, 0)

	for i := 0; i < 10; i++ {
		text := fmt.Sprintf("expr-%d", i)
		c.Put(MakeKey(text, mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate), makeResult(text))
		assert.LessOrEqual(t, c.Len(), capacity)
	}
	assert.Equal(t, capacity, c.Len())
}

func TestEvictionIsLeastRecentlyUsed(t *testing.T) {
	c := New(3, 0)
	keys := make([]Key, 4)
	for i := 0; i < 4; i++ {
		keys[i] = MakeKey(fmt.Sprintf("e%d", i), mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate)
	}

	c.Put(keys[0], makeResult("e0"))
	c.Put(keys[1], makeResult("e1"))
	c.Put(keys[2], makeResult("e2"))

	// Touch e0 so e1 becomes least recently used.
	_, ok := c.Get(keys[0])
	require.True(t, ok)

	c.Put(keys[3], makeResult("e3"))

	_, ok = c.Get(keys[1])
	assert.False(t, ok, "least recently used entry must be evicted")
	for _, i := range []int{0, 2, 3} {
		_, ok = c.Get(keys[i])
		assert.True(t, ok, "entry %d should still be resident", i)
	}
}

func TestByteBoundEviction(t *testing.T) {
	// Each entry estimates at well over 100 bytes, so a tight byte bound
	// keeps no more than one resident.
	c := New(100, 300)

	for i := 0; i < 5; i++ {
		text := fmt.Sprintf("long-expression-%d", i)
		c.Put(MakeKey(text, mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate), makeResult(text))
	}

	stats := c.Stats()
	assert.LessOrEqual(t, stats.Bytes, 300)
	assert.LessOrEqual(t, stats.Entries, 2)
}

func TestStatsCounters(t *testing.T) {
	c := New(4, 0)
	key := MakeKey("x", mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate)

	_, _ = c.Get(key)
	c.Put(key, makeResult("x"))
	_, _ = c.Get(key)
	_, _ = c.Get(key)

	stats := c.Stats()
	assert.Equal(t, 2, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
	assert.Equal(t, 1, stats.Entries)
}

func TestClear(t *testing.T) {
	c := New(4, 0)
	key := MakeKey("x", mathtypes.ContextGeneral, mathtypes.AudienceUndergraduate)
	c.Put(key, makeResult("x"))
	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get(key)
	assert.False(t, ok)
}
