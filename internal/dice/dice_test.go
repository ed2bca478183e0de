package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(7), b.IntN(7), "draw %d", i)
	}
}

func TestNew_CoversAllFaces(t *testing.T) {
	t.Parallel()

	src := New(7)
	seen := make(map[int]int)
	for i := 0; i < 7000; i++ {
		v := src.IntN(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
		seen[v]++
	}
	assert.Len(t, seen, 7)
	for face, n := range seen {
		// Loose bound; the expectation is 1000 per face.
		assert.InDelta(t, 1000, n, 200, "face %d", face)
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	s := NewSequence(0, 3, 6)
	got := []int{s.IntN(7), s.IntN(7), s.IntN(7), s.IntN(7)}
	assert.Equal(t, []int{0, 3, 6, 0}, got)
	assert.Equal(t, 4, s.Drawn())
}

func TestSequence_Panics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "dice: empty sequence", func() { NewSequence() })

	s := NewSequence(7)
	assert.Panics(t, func() { s.IntN(7) })
}
