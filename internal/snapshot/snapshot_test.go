package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestTakeAndLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	entries := []Entry{{Path: "a.b", Value: "1"}, {Path: "c", Value: "two"}}

	id, err := store.Take(entries, time.Unix(1000, 0))
	require.NoError(t, err)

	loaded, err := store.Load(id)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "a.b", loaded[0].Path)
	assert.Equal(t, "1", loaded[0].Value)
}

func TestListReturnsMostRecentFirst(t *testing.T) {
	store := openTestStore(t)
	id1, err := store.Take([]Entry{{Path: "a", Value: "1"}}, time.Unix(1, 0))
	require.NoError(t, err)
	id2, err := store.Take([]Entry{{Path: "a", Value: "2"}}, time.Unix(2, 0))
	require.NoError(t, err)

	ids, _, err := store.List()
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, id2, ids[0])
	assert.Equal(t, id1, ids[1])
}

func TestLoadUnknownSnapshotReturnsEmpty(t *testing.T) {
	store := openTestStore(t)
	entries, err := store.Load(999)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
