package listview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerFetchLifecycle(t *testing.T) {
	var c Container[string]

	items, loading, err := c.Snapshot()
	assert.Empty(t, items)
	assert.False(t, loading)
	assert.NoError(t, err)
	assert.False(t, c.Loaded())

	gen := c.Begin()
	_, loading, _ = c.Snapshot()
	assert.True(t, loading)

	require.True(t, c.Complete(gen, []string{"a", "b"}, nil))
	items, loading, err = c.Snapshot()
	assert.Equal(t, []string{"a", "b"}, items)
	assert.False(t, loading)
	assert.NoError(t, err)
	assert.True(t, c.Loaded())
}

func TestContainerFailureResetsItems(t *testing.T) {
	var c Container[string]
	gen := c.Begin()
	require.True(t, c.Complete(gen, []string{"a"}, nil))

	gen = c.Begin()
	boom := errors.New("upstream down")
	require.True(t, c.Complete(gen, nil, boom))

	items, _, err := c.Snapshot()
	assert.Empty(t, items)
	assert.Equal(t, boom, err)
}

func TestContainerDiscardsStaleGeneration(t *testing.T) {
	var c Container[string]

	stale := c.Begin()
	fresh := c.Begin()

	require.True(t, c.Complete(fresh, []string{"new"}, nil))
	// the slower, superseded fetch resolves afterwards and must not win
	assert.False(t, c.Complete(stale, []string{"old"}, nil))

	items, _, _ := c.Snapshot()
	assert.Equal(t, []string{"new"}, items)
}

func TestContainerSnapshotIsIsolated(t *testing.T) {
	var c Container[string]
	gen := c.Begin()
	require.True(t, c.Complete(gen, []string{"a", "b"}, nil))

	items, _, _ := c.Snapshot()
	items[0] = "mutated"

	kept, _, _ := c.Snapshot()
	assert.Equal(t, "a", kept[0])
}

func TestContainerPatch(t *testing.T) {
	var c Container[string]
	gen := c.Begin()
	require.True(t, c.Complete(gen, []string{"a", "b"}, nil))

	c.Patch(func(items []string) []string {
		items[1] = "patched"
		return items
	})
	items, _, _ := c.Snapshot()
	assert.Equal(t, []string{"a", "patched"}, items)
}
