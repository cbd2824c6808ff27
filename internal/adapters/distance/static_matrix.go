package distance

import (
	"fmt"
	"time"
)

// StaticMatrix serves an explicitly supplied travel-time table in minutes.
type StaticMatrix struct {
	rows [][]time.Duration
}

// NewStaticMatrix validates that minutes is square with a zero diagonal and
// no negative entries. Asymmetric tables are accepted.
func NewStaticMatrix(minutes [][]int) (*StaticMatrix, error) {
	n := len(minutes)
	rows := make([][]time.Duration, n)

	for i, row := range minutes {
		if len(row) != n {
			return nil, fmt.Errorf("new static matrix: row %d has %d columns, want %d", i, len(row), n)
		}

		rows[i] = make([]time.Duration, n)
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("new static matrix: negative travel time at [%d][%d]", i, j)
			}
			if i == j && v != 0 {
				return nil, fmt.Errorf("new static matrix: non-zero diagonal at [%d][%d]", i, j)
			}
			rows[i][j] = time.Duration(v) * time.Minute
		}
	}

	return &StaticMatrix{rows: rows}, nil
}

func (m *StaticMatrix) TravelTime(from, to int) time.Duration { return m.rows[from][to] }

func (m *StaticMatrix) Size() int { return len(m.rows) }
