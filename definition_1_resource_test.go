package dayscheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsResource(t *testing.T) {
	t.Run(
		"1. empty params",
		func(t *testing.T) {
			res, errCr := NewResource(
				&ParamsNewResource{},
			)
			require.Error(t, errCr)
			require.Nil(t, res)
		},
	)

	t.Run(
		"2. empty department",
		func(t *testing.T) {
			res, errCr := NewResource(
				&ParamsNewResource{
					Name: "res 1",
				},
			)
			require.Error(t, errCr)
			require.Nil(t, res)
		},
	)
}

func TestCapacityResource(t *testing.T) {
	res, errCr := NewResource(
		&ParamsNewResource{
			Name:       "res",
			Department: "Build",
		},
	)
	require.NoError(t, errCr)
	require.NotNil(t, res)

	t.Run(
		"1. unset day is full",
		func(t *testing.T) {
			require.Equal(t, FullDayCapacity, res.Capacity(1))
			require.Equal(t, FullDayCapacity, res.Capacity(1000))
		},
	)

	t.Run(
		"2. preset day",
		func(t *testing.T) {
			require.NoError(t, res.SetCapacity(3, 0.3))
			require.Equal(t, 0.3, res.Capacity(3))
		},
	)

	t.Run(
		"3. invalid presets",
		func(t *testing.T) {
			require.Error(t, res.SetCapacity(0, 0.5))
			require.Error(t, res.SetCapacity(2, -0.1))
			require.Error(t, res.SetCapacity(2, 1.5))
			require.Equal(t, FullDayCapacity, res.Capacity(2))
		},
	)

	t.Run(
		"4. consume",
		func(t *testing.T) {
			res.consume(5, 0.7)
			require.Equal(t, 0.3, res.Capacity(5))

			res.consume(5, 0.3)
			require.Zero(t, res.Capacity(5))
		},
	)

	t.Run(
		"5. drift is rounded",
		func(t *testing.T) {
			res.consume(6, 0.1)
			res.consume(6, 0.2)
			require.Equal(t, 0.7, res.Capacity(6))
		},
	)

	require.Contains(t, res.GetAvailability(), "day 3 → 0.30")
}
