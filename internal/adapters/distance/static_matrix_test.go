package distance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStaticMatrix(t *testing.T) {
	m, err := NewStaticMatrix([][]int{
		{0, 3, 4},
		{3, 0, 9},
		{5, 9, 0},
	})
	require.NoError(t, err)

	require.Equal(t, 3, m.Size())
	require.Equal(t, 4*time.Minute, m.TravelTime(0, 2))
	require.Equal(t, 5*time.Minute, m.TravelTime(2, 0))
}

func TestStaticMatrixRejectsBadInput(t *testing.T) {
	tests := map[string][][]int{
		"ragged":   {{0, 1}, {1}},
		"negative": {{0, -1}, {1, 0}},
		"diagonal": {{1, 1}, {1, 0}},
	}

	for name, minutes := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewStaticMatrix(minutes)
			require.Error(t, err)
		})
	}
}
