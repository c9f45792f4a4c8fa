package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*LRUCache, *clock) {
	clk := &clock{t: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := NewLRUCache(capacity, ttl)
	c.now = clk.now
	return c, clk
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name    string
		actions func(t *testing.T, c *LRUCache, clk *clock)
	}{
		{
			name: "set and get within TTL",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("order:1", []byte("1"))
				clk.advance(59 * time.Second)

				v, ok := c.Get("order:1")
				require.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name: "get after expiration",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("order:1", []byte("1"))
				clk.advance(61 * time.Second)

				_, ok := c.Get("order:1")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name: "evict least recently used over capacity",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
			},
		},
		{
			name: "update value resets TTL",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				clk.advance(40 * time.Second)
				c.Set("a", []byte("2"))
				clk.advance(40 * time.Second)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "2", string(v))
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name: "delete removes key",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				c.Delete("missing")

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name: "cleanup removes only expired",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("old", []byte("1"))
				clk.advance(45 * time.Second)
				c.Set("new", []byte("2"))
				clk.advance(30 * time.Second)

				assert.Equal(t, 1, c.cleanup())
				_, ok := c.Get("new")
				assert.True(t, ok)
				assert.Equal(t, 1, c.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clk := newTestCache(2, time.Minute)
			tt.actions(t, c, clk)
		})
	}
}

func TestLRUCache_Stats(t *testing.T) {
	c, clk := newTestCache(2, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Set("c", []byte("3"))
	c.Get("c")
	c.Get("a")
	clk.advance(2 * time.Minute)
	c.Get("b")

	assert.Equal(t, Stats{Hits: 1, Misses: 2, Evictions: 1, Size: 1}, c.Stats())
}
