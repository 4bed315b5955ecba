package dayscheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindAvailableDays(t *testing.T) {
	tests := []struct {
		name           string
		availability   map[int]float64
		params         paramsFindAvailableDays
		expectedResult []int
	}{
		{
			name:         "1. Empty ledger - whole days",
			availability: map[int]float64{},
			params: paramsFindAvailableDays{
				StartDay:   1,
				MaximumDay: DefaultMaximumDay,
				Duration:   2.5,
			},

			expectedResult: []int{1, 2, 3},
		},
		{
			name: "2. Day under half capacity resets the run",
			availability: map[int]float64{
				1: 0.3,
			},
			params: paramsFindAvailableDays{
				StartDay:   1,
				MaximumDay: DefaultMaximumDay,
				Duration:   1,
			},

			expectedResult: []int{2},
		},
		{
			name: "3. Exactly half capacity is usable",
			availability: map[int]float64{
				1: 0.5,
			},
			params: paramsFindAvailableDays{
				StartDay:   1,
				MaximumDay: DefaultMaximumDay,
				Duration:   1,
			},

			expectedResult: []int{1, 2},
		},
		{
			name: "4. Reset in the middle of a run",
			availability: map[int]float64{
				2: 0.4,
			},
			params: paramsFindAvailableDays{
				StartDay:   1,
				MaximumDay: DefaultMaximumDay,
				Duration:   2,
			},

			expectedResult: []int{3, 4},
		},
		{
			name: "5. Start day honoured",
			availability: map[int]float64{
				1: 0,
			},
			params: paramsFindAvailableDays{
				StartDay:   4,
				MaximumDay: DefaultMaximumDay,
				Duration:   0.5,
			},

			expectedResult: []int{4},
		},
		{
			name: "6. Horizon reached",
			availability: map[int]float64{
				2: 0,
			},
			params: paramsFindAvailableDays{
				StartDay:   1,
				MaximumDay: 3,
				Duration:   2,
			},

			expectedResult: nil,
		},
		{
			name:         "7. Zero duration takes the first usable day",
			availability: map[int]float64{1: 0.2},
			params: paramsFindAvailableDays{
				StartDay:   1,
				MaximumDay: DefaultMaximumDay,
			},

			expectedResult: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				res := Resource{
					availability: tt.availability,
				}

				require.Equal(t,
					tt.expectedResult,
					res.findAvailableDays(&tt.params),
				)
			},
		)
	}
}

func TestEarliestAvailableDay(t *testing.T) {
	res := Resource{
		availability: map[int]float64{
			1: 0,
			2: 0.6,
			3: 0.2,
			4: 0.5,
		},
	}

	require.Equal(t, 4, res.earliestAvailableDay(1, DefaultMaximumDay))
	require.Equal(t, 5, res.earliestAvailableDay(5, DefaultMaximumDay))
	require.Equal(t, _NoAvailability, res.earliestAvailableDay(1, 3))
}
