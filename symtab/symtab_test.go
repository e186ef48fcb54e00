package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndLookup(t *testing.T) {
	tab := New()
	tab.Insert("loop", 4)
	tab.Insert("done", 12)

	v, ok := tab.Lookup("loop")
	require.True(t, ok)
	assert.Equal(t, uint32(4), v)

	v, ok = tab.Lookup("done")
	require.True(t, ok)
	assert.Equal(t, uint32(12), v)
}

func TestLookupMissing(t *testing.T) {
	tab := New()
	_, ok := tab.Lookup("nope")
	assert.False(t, ok, "expected Lookup of unknown label to fail")
}

func TestMustLookupMissingIsError(t *testing.T) {
	tab := New()
	_, err := tab.MustLookup("nope")
	assert.Error(t, err)
}

func TestInsertLastWins(t *testing.T) {
	tab := New()
	tab.Insert("x", 4)
	tab.Insert("x", 8)

	v, ok := tab.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, uint32(8), v, "last insertion should win")
	assert.Equal(t, 1, tab.Len(), "duplicate insert must not grow the table")
}

func TestNamesPreservesInsertionOrder(t *testing.T) {
	tab := New()
	tab.Insert("b", 0)
	tab.Insert("a", 4)
	assert.Equal(t, []string{"b", "a"}, tab.Names())
}

func TestZeroValueTableIsReady(t *testing.T) {
	var tab Table
	tab.Insert("x", 1)
	v, ok := tab.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, uint32(1), v)
}
