package dayscheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseTaskName(t *testing.T) {
	tests := []struct {
		name           string
		taskName       string
		expectedResult string
	}{
		{"1. prefix", "Build: Widget", "Widget"},
		{"2. prefix and suffix", "QC execution: Widget (part 2)", "Widget"},
		{"3. no prefix", "Widget (v2)", "Widget"},
		{"4. plain", "Widget", "Widget"},
		{"5. colon inside name kept", "Build: Widget: Mk2", "Widget: Mk2"},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				require.Equal(t, tt.expectedResult, BaseTaskName(tt.taskName))
			},
		)
	}
}

func TestRoundWork(t *testing.T) {
	require.Equal(t, 0.3, roundWork(0.1+0.2))
	require.Equal(t, 0.5000004, roundWork(0.5000004))
	require.True(t, atLeast(0.49999999999, MinimumUsableCapacity))
	require.False(t, atLeast(0.49, MinimumUsableCapacity))
	require.True(t, isSpent(1e-12))
}
