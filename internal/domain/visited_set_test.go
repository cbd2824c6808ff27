package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisitedSetWithDoesNotMutate(t *testing.T) {
	base := NewVisitedSet(0)
	next := base.With(3)

	require.True(t, next.Contains(0))
	require.True(t, next.Contains(3))
	require.False(t, base.Contains(3))
	require.Equal(t, 1, base.Len())
	require.Equal(t, 2, next.Len())
	require.Equal(t, []int{0, 3}, next.IDs())
	require.Equal(t, "0,3", next.Key())
}

func TestVisitedSetZeroValue(t *testing.T) {
	var v VisitedSet

	require.Zero(t, v.Len())
	require.False(t, v.Contains(0))
	require.Empty(t, v.IDs())
	require.True(t, v.With(2).Contains(2))
}

func TestVisitedSetCompareMatchesBitmaskOrder(t *testing.T) {
	mask := func(ids ...int) int {
		m := 0
		for _, id := range ids {
			m |= 1 << id
		}
		return m
	}
	sets := [][]int{{0}, {0, 1}, {0, 6}, {0, 1, 6}, {0, 2, 5}, {0, 3}, {0, 1, 2, 3}}

	for _, a := range sets {
		for _, b := range sets {
			want := 0
			switch ma, mb := mask(a...), mask(b...); {
			case ma < mb:
				want = -1
			case ma > mb:
				want = 1
			}
			require.Equal(t, want, NewVisitedSet(a...).Compare(NewVisitedSet(b...)), "%v vs %v", a, b)
		}
	}
}
