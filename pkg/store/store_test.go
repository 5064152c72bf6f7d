package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(context.Background(), Config{DSN: ":memory:", HistoryDepth: 5, MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, s.Close()) })
	return s
}

func TestStore_AppendMenuBound(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		s.AppendMenu(ctx, fmt.Sprintf("menu-%d", i))
	}

	history := s.History()
	require.Len(t, history, 5, "history must stay bounded")
	assert.Equal(t, []string{"menu-7", "menu-6", "menu-5", "menu-4", "menu-3"}, history, "newest first, oldest evicted")
}

func TestStore_AppendMenuOrder(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	s.AppendMenu(ctx, "first")
	s.AppendMenu(ctx, "second")

	assert.Equal(t, []string{"second", "first"}, s.History())
}

func TestStore_ClearHistory(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	s.AppendMenu(ctx, "menu-1")
	s.AppendMenu(ctx, "menu-2")
	s.ClearHistory(ctx)
	assert.Empty(t, s.History())

	// stays empty until the next append
	history, _ := s.Load(ctx)
	assert.Empty(t, history)

	s.AppendMenu(ctx, "menu-3")
	assert.Equal(t, []string{"menu-3"}, s.History())
}

func TestStore_SetPreferences(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	s.SetPreferences(ctx, "No broccoli, Low spice")
	assert.Equal(t, "No broccoli, Low spice", s.Preferences())

	// stored verbatim, caller formats
	s.SetPreferences(ctx, "  raw,unformatted , text ")
	assert.Equal(t, "  raw,unformatted , text ", s.Preferences())
}

func TestStore_MergeConstraints(t *testing.T) {
	t.Run("union with dedup", func(t *testing.T) {
		s := testStore(t)
		ctx := context.Background()

		s.SetPreferences(ctx, "No broccoli")
		merged := s.MergeConstraints(ctx, []string{"No broccoli", "Low spice"})
		assert.Equal(t, "No broccoli, Low spice", merged)
	})

	t.Run("empty merge is a no-op", func(t *testing.T) {
		s := testStore(t)
		ctx := context.Background()

		s.SetPreferences(ctx, "No broccoli, Low spice")
		merged := s.MergeConstraints(ctx, nil)
		assert.Equal(t, "No broccoli, Low spice", merged)
		assert.Equal(t, "No broccoli, Low spice", s.Preferences())
	})

	t.Run("idempotent", func(t *testing.T) {
		s := testStore(t)
		ctx := context.Background()

		first := s.MergeConstraints(ctx, []string{"No mushrooms"})
		second := s.MergeConstraints(ctx, []string{"No mushrooms"})
		assert.Equal(t, first, second)
		assert.Equal(t, "No mushrooms", second)
	})

	t.Run("case sensitive dedup", func(t *testing.T) {
		// exact-match comparison only, "no broccoli" and "No broccoli" are distinct
		s := testStore(t)
		ctx := context.Background()

		s.SetPreferences(ctx, "No broccoli")
		merged := s.MergeConstraints(ctx, []string{"no broccoli"})
		assert.Equal(t, "No broccoli, no broccoli", merged)
	})

	t.Run("tokens trimmed and empties dropped", func(t *testing.T) {
		s := testStore(t)
		ctx := context.Background()

		s.SetPreferences(ctx, " No broccoli ,, Low spice , ")
		merged := s.MergeConstraints(ctx, []string{" No okra "})
		assert.Equal(t, "No broccoli, Low spice, No okra", merged)
	})
}

func TestStore_LoadDefaults(t *testing.T) {
	s := testStore(t)

	history, preferences := s.Load(context.Background())
	assert.Empty(t, history)
	assert.Empty(t, preferences)
}

func TestStore_LoadMalformedHistory(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// corrupt the persisted history directly
	require.NoError(t, s.setSetting(ctx, keyMenuHistory, "not a json list"))

	history, _ := s.Load(ctx)
	assert.Empty(t, history, "malformed history degrades to empty, no crash")
}

func TestStore_RoundTrip(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s1, err := New(ctx, Config{DSN: dsn, HistoryDepth: 5, MaxOpenConns: 1})
	require.NoError(t, err)
	s1.AppendMenu(ctx, "menu-1")
	s1.AppendMenu(ctx, "menu-2")
	s1.SetPreferences(ctx, "No broccoli")
	require.NoError(t, s1.Close())

	// reopen and verify state survived
	s2, err := New(ctx, Config{DSN: dsn, HistoryDepth: 5, MaxOpenConns: 1})
	require.NoError(t, err)
	defer func() { assert.NoError(t, s2.Close()) }()

	assert.Equal(t, []string{"menu-2", "menu-1"}, s2.History())
	assert.Equal(t, "No broccoli", s2.Preferences())
}

func TestStore_MemoryOnlyDegradation(t *testing.T) {
	// unwritable database path degrades to memory-only, operations keep working
	s, err := New(context.Background(), Config{DSN: "file:/nonexistent-dir/sub/test.db?mode=rwc"})
	require.NoError(t, err, "broken storage must not fail store construction")
	defer func() { assert.NoError(t, s.Close()) }()

	ctx := context.Background()
	s.AppendMenu(ctx, "menu-1")
	assert.Equal(t, []string{"menu-1"}, s.History())

	merged := s.MergeConstraints(ctx, []string{"No broccoli"})
	assert.Equal(t, "No broccoli", merged)
}

func TestStore_HistoryDepthConfigurable(t *testing.T) {
	s, err := New(context.Background(), Config{DSN: ":memory:", HistoryDepth: 2, MaxOpenConns: 1})
	require.NoError(t, err)
	defer func() { assert.NoError(t, s.Close()) }()

	ctx := context.Background()
	s.AppendMenu(ctx, "a")
	s.AppendMenu(ctx, "b")
	s.AppendMenu(ctx, "c")
	assert.Equal(t, []string{"c", "b"}, s.History())
}
