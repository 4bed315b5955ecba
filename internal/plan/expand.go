package plan

import (
	"fmt"
	"slices"

	"github.com/TudorHulban/dayscheduler"
)

// DefaultQCMergeDepartments are the two quality control steps
// scheduled as one QC duration.
var DefaultQCMergeDepartments = []string{"QC Creation", "QC execution"}

type ParamsExpand struct {
	Plan  *Plan
	Rules Rules // merged with the rules embedded in the plan

	// QCMergeDepartments default to DefaultQCMergeDepartments.
	// Pass an empty, non nil slice to disable the merge.
	QCMergeDepartments []string
}

type expandedTask struct {
	name       string
	department string
	baseName   string
	durations  map[string]float64
	priority   int

	dependencyNames []string
}

// TaskName is how a row's work for one department is named.
func TaskName(department, rowName string) string {
	return department + ": " + rowName
}

// Expand turns each (row, department with a duration) into a task,
// wires dependencies from the rules and folds the QC departments.
// Tasks come out in row order, then department column order.
func Expand(params *ParamsExpand) ([]*dayscheduler.Task, error) {
	if params.Plan == nil {
		return nil,
			fmt.Errorf("expand: plan is required")
	}

	mergeDepartments := params.QCMergeDepartments
	if mergeDepartments == nil {
		mergeDepartments = DefaultQCMergeDepartments
	}

	expanded := expandRows(params.Plan)

	applyRules(
		expanded,
		params.Plan.Rules.Merge(params.Rules),
	)

	mergeQC(expanded, mergeDepartments)

	result := make([]*dayscheduler.Task, len(expanded))

	for ix, task := range expanded {
		created, errCr := dayscheduler.NewTask(
			&dayscheduler.ParamsNewTask{
				Name:            task.name,
				Durations:       task.durations,
				DependencyNames: task.dependencyNames,
				Priority:        task.priority,
			},
		)
		if errCr != nil {
			return nil,
				fmt.Errorf("expand %s: %w", task.name, errCr)
		}

		result[ix] = created
	}

	return result,
		nil
}

func expandRows(plan *Plan) []*expandedTask {
	var result []*expandedTask

	for _, row := range plan.Tasks {
		for _, department := range plan.Departments {
			duration, isNeeded := row.Durations[department]
			if !isNeeded {
				continue
			}

			name := TaskName(department, row.Name)

			result = append(
				result,

				&expandedTask{
					name:       name,
					department: department,
					baseName:   dayscheduler.BaseTaskName(name),
					durations:  map[string]float64{department: duration},
					priority:   row.Priority,
				},
			)
		}
	}

	return result
}

// applyRules makes every task of a successor department depend on the
// task of the preceding department with the same base name.
func applyRules(tasks []*expandedTask, rules Rules) {
	for _, predecessor := range tasks {
		successors, hasRule := rules[predecessor.department]
		if !hasRule {
			continue
		}

		for _, task := range tasks {
			if task == predecessor || task.baseName != predecessor.baseName {
				continue
			}

			if !slices.Contains(successors, task.department) {
				continue
			}

			task.dependencyNames = append(task.dependencyNames, predecessor.name)
		}
	}
}

// mergeQC replaces the duration of the QC steps with a single QC duration.
// Dependencies are wired before, by the department names of the rows.
func mergeQC(tasks []*expandedTask, mergeDepartments []string) {
	for _, task := range tasks {
		var (
			total   float64
			isMerge bool
		)

		for department, duration := range task.durations {
			if slices.Contains(mergeDepartments, department) {
				total = total + duration
				isMerge = true
			}
		}

		if isMerge {
			task.durations = map[string]float64{
				dayscheduler.QCDepartment: total,
			}
		}
	}
}

// Resources creates the scheduler resources in roster order with their preset capacities.
func Resources(plan *Plan) ([]*dayscheduler.Resource, error) {
	result := make([]*dayscheduler.Resource, len(plan.Resources))

	for ix, row := range plan.Resources {
		resource, errCr := dayscheduler.NewResource(
			&dayscheduler.ParamsNewResource{
				Name:       row.Name,
				Department: row.Department,
			},
		)
		if errCr != nil {
			return nil,
				fmt.Errorf("resource %d: %w", ix, errCr)
		}

		days := make([]int, 0, len(row.Capacity))
		for day := range row.Capacity {
			days = append(days, day)
		}

		slices.Sort(days)

		for _, day := range days {
			if errSet := resource.SetCapacity(day, row.Capacity[day]); errSet != nil {
				return nil,
					fmt.Errorf("resource %s: %w", row.Name, errSet)
			}
		}

		result[ix] = resource
	}

	return result,
		nil
}
