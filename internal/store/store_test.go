package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/TudorHulban/dayscheduler"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testLedger(t *testing.T) *dayscheduler.Ledger {
	t.Helper()

	resource, errRes := dayscheduler.NewResource(
		&dayscheduler.ParamsNewResource{
			Name:       "Ann",
			Department: "Build",
		},
	)
	require.NoError(t, errRes)

	task, errTask := dayscheduler.NewTask(
		&dayscheduler.ParamsNewTask{
			Name:      "Build: Widget",
			Durations: map[string]float64{"Build": 1.5},
		},
	)
	require.NoError(t, errTask)

	ledger, errSchedule := dayscheduler.Schedule(
		t.Context(),
		&dayscheduler.ParamsSchedule{
			Tasks:     []*dayscheduler.Task{task},
			Resources: []*dayscheduler.Resource{resource},
		},
	)
	require.NoError(t, errSchedule)

	return ledger
}

func TestStore(t *testing.T) {
	ctx := t.Context()

	store, errOpen := Open(ctx, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, errOpen)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	ledger := testLedger(t)

	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	first, errFirst := store.SaveRun(
		ctx,
		&ParamsSaveRun{
			Ledger:    ledger,
			PlanFile:  "plan.yaml",
			CreatedAt: start,
		},
	)
	require.NoError(t, errFirst)

	second, errSecond := store.SaveRun(
		ctx,
		&ParamsSaveRun{
			Ledger:    ledger,
			PlanFile:  "plan_v2.yaml",
			CreatedAt: start.Add(time.Hour),
		},
	)
	require.NoError(t, errSecond)
	require.NotEqual(t, first, second)

	t.Run(
		"1. runs newest first",
		func(t *testing.T) {
			runs, errRuns := store.Runs(ctx)
			require.NoError(t, errRuns)
			require.Len(t, runs, 2)

			require.Equal(t, second, runs[0].ID)
			require.Equal(t, "plan_v2.yaml", runs[0].PlanFile)
			require.True(t, runs[0].CreatedAt.Equal(start.Add(time.Hour)))

			require.Equal(t, first, runs[1].ID)
			require.Equal(t, 2, runs[1].LastDay)
			require.Equal(t, 1, runs[1].Tasks)
		},
	)

	t.Run(
		"2. assignments in record order",
		func(t *testing.T) {
			assignments, errAssignments := store.Assignments(ctx, first)
			require.NoError(t, errAssignments)
			require.Equal(t,
				[]Assignment{
					{Resource: "Ann", Task: "Build: Widget", Day: 1, WorkTime: 1},
					{Resource: "Ann", Task: "Build: Widget", Day: 2, WorkTime: 0.5},
				},
				assignments,
			)
		},
	)

	t.Run(
		"3. unknown run",
		func(t *testing.T) {
			assignments, errAssignments := store.Assignments(ctx, uuid.New())
			require.NoError(t, errAssignments)
			require.Empty(t, assignments)
		},
	)

	t.Run(
		"4. ledger required",
		func(t *testing.T) {
			runID, errSave := store.SaveRun(ctx, &ParamsSaveRun{})
			require.Error(t, errSave)
			require.Equal(t, uuid.Nil, runID)
		},
	)
}

func TestStoreReopen(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "runs.db")

	store, errOpen := Open(ctx, path)
	require.NoError(t, errOpen)

	runID, errSave := store.SaveRun(
		ctx,
		&ParamsSaveRun{
			Ledger: testLedger(t),
		},
	)
	require.NoError(t, errSave)
	require.NoError(t, store.Close())

	reopened, errReopen := Open(ctx, path)
	require.NoError(t, errReopen)
	defer reopened.Close()

	runs, errRuns := reopened.Runs(ctx)
	require.NoError(t, errRuns)
	require.Len(t, runs, 1)
	require.Equal(t, runID, runs[0].ID)
}
