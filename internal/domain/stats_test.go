package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatNames_CoverEveryField(t *testing.T) {
	names := StatNames()
	assert.Len(t, names, 46)
	assert.IsNonDecreasing(t, names)

	var s Stats
	for i, name := range names {
		require.NoError(t, s.Set(name, float64(i+1)), name)
	}
	// every name must map to its own field
	snapshot := s.Snapshot()
	seen := make(map[float64]string, len(snapshot))
	for name, v := range snapshot {
		if other, dup := seen[v]; dup {
			t.Fatalf("stats %s and %s share a field", name, other)
		}
		seen[v] = name
	}
}

func TestStats_GetSetAdd(t *testing.T) {
	s := DefaultStats()

	v, err := s.Get(StatMaxHealth)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)

	require.NoError(t, s.Set(StatDefense, 12.5))
	assert.Equal(t, 12.5, s.Defense)

	total, err := s.Add(StatBlocksMined, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	total, err = s.Add(StatBlocksMined, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
}

func TestStats_UnknownName(t *testing.T) {
	var s Stats
	_, err := s.Get("luck_of_the_sea")
	assert.ErrorIs(t, err, ErrUnknownStat)
	assert.ErrorIs(t, s.Set("nope", 1), ErrUnknownStat)
	_, err = s.Add("", 1)
	assert.ErrorIs(t, err, ErrUnknownStat)
}
