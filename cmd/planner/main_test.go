package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBothStrategies(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-start", "08:00", "-hours", "9", "-trace=false"}, &out))

	s := out.String()
	assert.Contains(t, s, "Start at Hoan Kiem Lake at 08:00")
	assert.Contains(t, s, "RESULT (best_first)")
	assert.Contains(t, s, "RESULT (greedy)")
	assert.Contains(t, s, "Locations visited: 7/7")
	assert.Contains(t, s, "best_first visits 7, greedy visits 6, dominates: true")
	assert.NotContains(t, s, "better route")
}

func TestRunTraceSingleStrategy(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-strategy", "best_first"}, &out))

	s := out.String()
	assert.Contains(t, s, "[best_first] better route with 5 locations:")
	assert.Contains(t, s, "Total time: 330 min")
	assert.Contains(t, s, "Finish at: 13:30")
	assert.NotContains(t, s, "RESULT (greedy)")
}

func TestRunZeroPenalty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-strategy", "greedy", "-penalty", "0"}, &out))

	// Old Quarter is reached from One Pillar Pagoda in |10-5| minutes.
	assert.Contains(t, out.String(), "-> Old Quarter\n   Travel: 5 min")
}

func TestRunRejectsBadInput(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(context.Background(), []string{"-start", "noon"}, &out))
	assert.Error(t, run(context.Background(), []string{"-strategy", "dfs"}, &out))
}
