package cache

import (
	"testing"
	"time"

	"github.com/ppiankov/typechart/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	key := Key("abc")
	assert.Equal(t, "typechart:v1:abc", key)

	_, ok := c.Get(key)
	assert.False(t, ok)

	report := &model.Report{Table: "t"}
	c.Set(key, report, 0)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Same(t, report, got)
	assert.Equal(t, 1, c.Len())

	c.Set(key, &model.Report{Table: "u"}, 0)
	assert.Equal(t, 1, c.Len())
	c.Set(Key("def"), report, 0)
	assert.Equal(t, 2, c.Len())
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set(Key("short"), &model.Report{}, time.Millisecond)

	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get(Key("short"))
	assert.False(t, ok)
}
