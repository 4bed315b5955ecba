package dayscheduler

import (
	"fmt"
	"slices"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// QCDepartment is the duration key of merged quality-control tasks.
const QCDepartment = "QC"

type Task struct {
	Name            string
	Durations       map[string]float64 // department | work needed, in day units
	DependencyNames []string

	dependencies []*Task // resolved by TaskGraph, unknown names dropped
	isResolved   bool

	Priority int

	// 0 while unscheduled, days start at 1.
	startDay int
	endDay   int
}

type ParamsNewTask struct {
	Name            string             `valid:"required"`
	Durations       map[string]float64 `valid:"-"`
	DependencyNames []string           `valid:"-"`

	Priority int
}

func (params *ParamsNewTask) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Scheduler",
			Caller:      "NewTask",
			Issue:       errValidation,
		}
	}

	if len(params.Durations) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrNilInput{
				InputName: "Durations",
			},
		}
	}

	for department, duration := range params.Durations {
		if len(department) == 0 {
			return goerrors.ErrValidation{
				Caller: "IsValid - ParamsNewTask",
				Issue: goerrors.ErrInvalidInput{
					InputName: "Durations - empty department",
				},
			}
		}

		if duration < 0 {
			return goerrors.ErrValidation{
				Caller: "IsValid - ParamsNewTask",
				Issue: goerrors.ErrNegativeInput{
					InputName: "Durations - " + department,
				},
			}
		}
	}

	return nil
}

func NewTask(params *ParamsNewTask) (*Task, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	durations := make(map[string]float64, len(params.Durations))
	for department, duration := range params.Durations {
		durations[department] = duration
	}

	return &Task{
			Name:            params.Name,
			Durations:       durations,
			DependencyNames: slices.Clone(params.DependencyNames),
			Priority:        params.Priority,
		},
		nil
}

func (t *Task) StartDay() int {
	return t.startDay
}

func (t *Task) EndDay() int {
	return t.endDay
}

func (t *Task) IsScheduled() bool {
	return t.endDay > 0
}

// Dependencies returns the dependencies resolved against the task set.
func (t *Task) Dependencies() []*Task {
	return t.dependencies
}

func (t *Task) IsQC() bool {
	_, isQC := t.Durations[QCDepartment]

	return isQC
}

// unscheduledDependencies returns names of dependencies still without an end day.
func (t *Task) unscheduledDependencies() []string {
	var result []string

	for _, dependency := range t.dependencies {
		if !dependency.IsScheduled() {
			result = append(result, dependency.Name)
		}
	}

	return result
}

// earliestStartDay is the day after the latest dependency ends, day 1 without dependencies.
func (t *Task) earliestStartDay() int {
	var latestEnd int

	for _, dependency := range t.dependencies {
		latestEnd = max(latestEnd, dependency.endDay)
	}

	return latestEnd + 1
}

func (t *Task) setDays(startDay, endDay int) {
	t.startDay = startDay
	t.endDay = endDay
}

func (t *Task) String() string {
	departments := make([]string, 0, len(t.Durations))
	for department := range t.Durations {
		departments = append(departments, department)
	}

	slices.Sort(departments)

	durations := make([]string, len(departments))
	for ix, department := range departments {
		durations[ix] = fmt.Sprintf("%s: %.1f", department, t.Durations[department])
	}

	dependencies := make([]string, len(t.dependencies))
	for ix, dependency := range t.dependencies {
		dependencies[ix] = dependency.Name
	}

	return fmt.Sprintf(
		"Task{Name: %q, Durations: {%s}, Priority: %d, Dependencies: [%s]}",

		t.Name,
		strings.Join(durations, ", "),
		t.Priority,
		strings.Join(dependencies, ", "),
	)
}
