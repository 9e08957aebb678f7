package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func put(c *LRUCache, key, value string) {
	c.SetFunc(key, func([]byte, bool) ([]byte, bool) { return []byte(value), true })
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				put(c, "a", "1")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				put(c, "a", "1")
				time.Sleep(time.Millisecond * 60)
				_, ok := c.Get("a")
				assert.False(t, ok, "expected key to be expired")
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				put(c, "a", "1")
				put(c, "b", "2")
				c.Get("a")
				put(c, "c", "3")

				_, ok := c.Get("b")
				assert.False(t, ok, "expected key 'b' to be evicted")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "1", string(v))
				assert.Equal(t, 2, c.Size())
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				put(c, "a", "1")
				time.Sleep(time.Millisecond * 30)
				put(c, "a", "2")
				time.Sleep(time.Millisecond * 30)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name:     "set func sees current value",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.SetFunc("a", func(current []byte, ok bool) ([]byte, bool) {
					assert.False(t, ok)
					assert.Nil(t, current)
					return []byte("1"), true
				})
				c.SetFunc("a", func(current []byte, ok bool) ([]byte, bool) {
					assert.True(t, ok)
					assert.Equal(t, "1", string(current))
					return []byte("2"), false
				})
				v, _ := c.Get("a")
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "set func ignores expired value",
			capacity: 2,
			ttl:      time.Millisecond * 20,
			actions: func(c *LRUCache, t *testing.T) {
				put(c, "a", "1")
				time.Sleep(time.Millisecond * 30)
				c.SetFunc("a", func(current []byte, ok bool) ([]byte, bool) {
					assert.False(t, ok)
					return []byte("2"), true
				})
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 20,
			actions: func(c *LRUCache, t *testing.T) {
				c.interval = time.Millisecond * 10
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				assert.NoError(t, c.Start(ctx))

				put(c, "a", "1")
				assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, time.Millisecond*10)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache(tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}
