package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/TudorHulban/dayscheduler"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testSchedule(t *testing.T) (*dayscheduler.Ledger, []*dayscheduler.Resource) {
	t.Helper()

	var resources []*dayscheduler.Resource

	for _, params := range []dayscheduler.ParamsNewResource{
		{Name: "Ann", Department: "Build"},
		{Name: "Ben", Department: "Build"},
		{Name: "Cy", Department: dayscheduler.QCDepartment},
	} {
		resource, errCr := dayscheduler.NewResource(&params)
		require.NoError(t, errCr)

		resources = append(resources, resource)
	}

	var tasks []*dayscheduler.Task

	for _, params := range []dayscheduler.ParamsNewTask{
		{
			Name:      "Build: Widget",
			Durations: map[string]float64{"Build": 1.5},
		},
		{
			Name:      "Build: Gadget",
			Durations: map[string]float64{"Build": 1},
		},
		{
			Name:            "QC execution: Widget",
			Durations:       map[string]float64{dayscheduler.QCDepartment: 0.5},
			DependencyNames: []string{"Build: Widget"},
		},
	} {
		task, errCr := dayscheduler.NewTask(&params)
		require.NoError(t, errCr)

		tasks = append(tasks, task)
	}

	ledger, errSchedule := dayscheduler.Schedule(
		t.Context(),
		&dayscheduler.ParamsSchedule{
			Tasks:     tasks,
			Resources: resources,
		},
	)
	require.NoError(t, errSchedule)

	return ledger, resources
}

func TestGrid(t *testing.T) {
	ledger, resources := testSchedule(t)

	grid := Grid(ledger, resources)
	require.Equal(t, 3, grid.Days())

	expected := [][]string{
		{"Build: Widget (1.0)", "Build: Gadget (1.0)", ""},
		{"Build: Widget (0.5)", "", ""},
		{"", "", "QC execution: Widget (0.5)"},
	}

	if diff := cmp.Diff(expected, grid.Cells); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t,
		[]string{"", "Build", "", "QC"},
		grid.DepartmentRow(),
	)
	require.Equal(t,
		[]string{"Days", "Ann", "Ben", "Cy"},
		grid.ResourceRow(),
	)
	require.Equal(t,
		[]string{"2", "Build: Widget (0.5)", "", ""},
		grid.DayRows()[1],
	)

	t.Run(
		"1. shared day keeps record order",
		func(t *testing.T) {
			resource, errCr := dayscheduler.NewResource(
				&dayscheduler.ParamsNewResource{
					Name:       "Ann",
					Department: "Build",
				},
			)
			require.NoError(t, errCr)

			var tasks []*dayscheduler.Task

			for _, name := range []string{"Build: A", "Build: B"} {
				task, errTask := dayscheduler.NewTask(
					&dayscheduler.ParamsNewTask{
						Name:      name,
						Durations: map[string]float64{"Build": 0.5},
					},
				)
				require.NoError(t, errTask)

				tasks = append(tasks, task)
			}

			halves, errSchedule := dayscheduler.Schedule(
				t.Context(),
				&dayscheduler.ParamsSchedule{
					Tasks:     tasks,
					Resources: []*dayscheduler.Resource{resource},
				},
			)
			require.NoError(t, errSchedule)

			shared := Grid(halves, []*dayscheduler.Resource{resource})
			require.Equal(t,
				"Build: A (0.5)\nBuild: B (0.5)",
				shared.Cells[0][0],
			)
			require.Equal(t, "A", baseNameOf(shared.Cells[0][0]))
		},
	)

	t.Run(
		"2. empty ledger",
		func(t *testing.T) {
			empty := Grid(dayscheduler.NewLedger(resources), resources)
			require.Zero(t, empty.Days())
			require.Empty(t, empty.DayRows())
		},
	)
}

func TestWriteCSV(t *testing.T) {
	ledger, resources := testSchedule(t)

	var buf bytes.Buffer

	require.NoError(t,
		WriteCSV(&buf, Grid(ledger, resources)),
	)

	expected := strings.Join(
		[]string{
			",Build,,QC",
			"Days,Ann,Ben,Cy",
			"1,Build: Widget (1.0),Build: Gadget (1.0),",
			"2,Build: Widget (0.5),,",
			"3,,,QC execution: Widget (0.5)",
		},
		"\n",
	) + "\n"

	require.Equal(t, expected, buf.String())
}

func TestRenderTable(t *testing.T) {
	ledger, resources := testSchedule(t)

	var buf bytes.Buffer

	require.NoError(t,
		RenderTable(&buf, Grid(ledger, resources)),
	)

	output := buf.String()

	for _, expected := range []string{
		"Days", "Build", "QC", "Ann", "Ben", "Cy",
		"Build: Widget (1.0)",
		"QC execution: Widget (0.5)",
	} {
		require.Contains(t, output, expected)
	}

	require.Equal(t,
		colorOf("Widget"),
		colorOf(baseNameOf("QC execution: Widget (0.5)")),
	)
}

func TestSummary(t *testing.T) {
	ledger, _ := testSchedule(t)

	expected := []TaskSummary{
		{
			Task:     "Build: Gadget",
			Resource: "Ben",
			StartDay: 1,
			EndDay:   1,
			WorkTime: 1,
		},
		{
			Task:     "Build: Widget",
			Resource: "Ann",
			StartDay: 1,
			EndDay:   2,
			WorkTime: 1.5,
		},
		{
			Task:     "QC execution: Widget",
			Resource: "Cy",
			StartDay: 3,
			EndDay:   3,
			WorkTime: 0.5,
		},
	}

	summaries := Summary(ledger)

	if diff := cmp.Diff(expected, summaries); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer

	require.NoError(t, RenderSummary(&buf, summaries))
	require.Contains(t, buf.String(), "Build: Gadget")
	require.Contains(t, buf.String(), "1.5")
}
