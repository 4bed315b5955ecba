package dayscheduler

import (
	"fmt"
	"strings"
)

type Assignment struct {
	Task     *Task
	Day      int
	WorkTime float64
}

// Ledger accumulates what the allocator committed during a run.
type Ledger struct {
	resourceNames []string // resources in the order they were given

	assignments  map[string][]Assignment // resource name | records in commit order
	workloads    map[string]float64      // resource name | sum of assigned durations
	taskResource map[string]string       // task name | resource name
	qcResource   map[string]string       // base task name | resource name
}

func NewLedger(resources []*Resource) *Ledger {
	names := make([]string, len(resources))
	for ix, resource := range resources {
		names[ix] = resource.Name
	}

	return &Ledger{
		resourceNames: names,

		assignments:  make(map[string][]Assignment),
		workloads:    make(map[string]float64),
		taskResource: make(map[string]string),
		qcResource:   make(map[string]string),
	}
}

func (l *Ledger) record(resourceName string, assignment Assignment) {
	l.assignments[resourceName] = append(
		l.assignments[resourceName],
		assignment,
	)
}

func (l *Ledger) addWorkload(resourceName string, duration float64) {
	l.workloads[resourceName] = l.workloads[resourceName] + duration
}

func (l *Ledger) ResourceNames() []string {
	return l.resourceNames
}

// Assignments returns the records of a resource in commit order.
func (l *Ledger) Assignments(resourceName string) []Assignment {
	return l.assignments[resourceName]
}

func (l *Ledger) Workload(resourceName string) float64 {
	return l.workloads[resourceName]
}

// ResourceFor returns the resource the task ended up on.
func (l *Ledger) ResourceFor(taskName string) (string, bool) {
	resourceName, exists := l.taskResource[taskName]

	return resourceName, exists
}

// QCResourceFor returns the resource paired with a base task name.
func (l *Ledger) QCResourceFor(baseTaskName string) (string, bool) {
	resourceName, exists := l.qcResource[baseTaskName]

	return resourceName, exists
}

// WorkTimeOn sums the work committed to a resource on a day.
func (l *Ledger) WorkTimeOn(resourceName string, day int) float64 {
	var result float64

	for _, assignment := range l.assignments[resourceName] {
		if assignment.Day == day {
			result = result + assignment.WorkTime
		}
	}

	return roundWork(result)
}

// WorkTimePerTask sums the work recorded per task name across resources.
func (l *Ledger) WorkTimePerTask() map[string]float64 {
	result := make(map[string]float64)

	for _, assignments := range l.assignments {
		for _, assignment := range assignments {
			result[assignment.Task.Name] = roundWork(
				result[assignment.Task.Name] + assignment.WorkTime,
			)
		}
	}

	return result
}

// LastDay is the latest day holding a record, 0 for an empty ledger.
func (l *Ledger) LastDay() int {
	var result int

	for _, assignments := range l.assignments {
		for _, assignment := range assignments {
			result = max(result, assignment.Day)
		}
	}

	return result
}

func (l *Ledger) String() string {
	var sb strings.Builder

	sb.WriteString("Schedule:\n")

	totals := l.WorkTimePerTask()

	for _, resourceName := range l.resourceNames {
		assignments := l.assignments[resourceName]
		if len(assignments) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("\nResource: %s\n", resourceName))

		for _, assignment := range assignments {
			sb.WriteString(
				fmt.Sprintf(
					"  Task: %s, Day: %d, Work Time: %.2f, Duration: %.1f\n",

					assignment.Task.Name,
					assignment.Day,
					assignment.WorkTime,
					totals[assignment.Task.Name],
				),
			)
		}
	}

	return sb.String()
}
