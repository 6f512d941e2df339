package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestTTLCache_GetSetExpire(t *testing.T) {
	clk := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	c := NewTTLCache[string, int]().WithClock(clk.Now)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, 0)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	clk.Advance(2 * time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry should expire")

	v, ok = c.Get("b")
	require.True(t, ok, "zero ttl never expires")
	assert.Equal(t, 2, v)
}

func TestTTLCache_Update(t *testing.T) {
	c := NewTTLCache[string, int]()

	got := c.Update("n", 0, func(cur int, found bool) (int, bool) {
		assert.False(t, found)
		return cur + 1, true
	})
	assert.Equal(t, 1, got)

	c.Update("n", 0, func(cur int, found bool) (int, bool) {
		assert.True(t, found)
		return 0, false
	})
	_, ok := c.Get("n")
	assert.False(t, ok, "keep=false deletes")
}

func TestTTLCache_UpdateConcurrent(t *testing.T) {
	c := NewTTLCache[string, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update("n", 0, func(cur int, _ bool) (int, bool) { return cur + 1, true })
		}()
	}
	wg.Wait()

	v, _ := c.Get("n")
	assert.Equal(t, 50, v)
}

func TestTTLCache_Sweep(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	c := NewTTLCache[string, string]().WithClock(clk.Now)
	c.Set("old", "x", time.Second)
	c.Set("keep", "y", 0)

	clk.Advance(time.Minute)
	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 1, c.Len())
}

func TestTTLCache_NilSafe(t *testing.T) {
	var c *TTLCache[string, int]
	c.Set("a", 1, 0)
	_, ok := c.Get("a")
	assert.False(t, ok)
}
