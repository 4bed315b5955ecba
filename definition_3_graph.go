package dayscheduler

import (
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

// TaskGraph resolves dependency names once into indices over the task set.
// Names outside the set are dropped, not reported.
type TaskGraph struct {
	tasks   []*Task
	indexOf map[string]int

	dependencies [][]int // task index | indexes of its dependencies
	dependents   [][]int // task index | indexes of tasks depending on it
}

func NewTaskGraph(tasks []*Task) (*TaskGraph, error) {
	indexOf := make(map[string]int, len(tasks))

	for ix, task := range tasks {
		if task == nil {
			return nil,
				goerrors.ErrValidation{
					Caller: "NewTaskGraph",
					Issue: goerrors.ErrNilInput{
						InputName: fmt.Sprintf("tasks[%d]", ix),
					},
				}
		}

		if _, duplicate := indexOf[task.Name]; duplicate {
			return nil,
				goerrors.ErrValidation{
					Caller: "NewTaskGraph",
					Issue: goerrors.ErrInvalidInput{
						InputName:  "tasks - duplicate name",
						InputValue: task.Name,
					},
				}
		}

		indexOf[task.Name] = ix
	}

	graph := TaskGraph{
		tasks:   tasks,
		indexOf: indexOf,

		dependencies: make([][]int, len(tasks)),
		dependents:   make([][]int, len(tasks)),
	}

	for ix, task := range tasks {
		task.dependencies = task.dependencies[:0]

		for _, dependencyName := range task.DependencyNames {
			dependencyIx, exists := indexOf[dependencyName]
			if !exists {
				continue
			}

			graph.dependencies[ix] = append(graph.dependencies[ix], dependencyIx)
			graph.dependents[dependencyIx] = append(graph.dependents[dependencyIx], ix)

			task.dependencies = append(task.dependencies, tasks[dependencyIx])
		}

		task.isResolved = true
	}

	return &graph,
		nil
}

// resolveDependencies links the tasks never passed to NewTaskGraph to the
// tasks of the list they name. Unknown names are dropped, first name wins.
func resolveDependencies(tasks []*Task) {
	byName := make(map[string]*Task, len(tasks))

	for _, task := range tasks {
		if _, exists := byName[task.Name]; !exists {
			byName[task.Name] = task
		}
	}

	for _, task := range tasks {
		if task.isResolved {
			continue
		}

		task.dependencies = task.dependencies[:0]

		for _, dependencyName := range task.DependencyNames {
			if dependency, exists := byName[dependencyName]; exists && dependency != task {
				task.dependencies = append(task.dependencies, dependency)
			}
		}

		task.isResolved = true
	}
}

func (g *TaskGraph) Tasks() []*Task {
	return g.tasks
}

func (g *TaskGraph) Task(name string) (*Task, bool) {
	ix, exists := g.indexOf[name]
	if !exists {
		return nil, false
	}

	return g.tasks[ix], true
}

// TopologicalOrder eliminates zero in-degree tasks first in, first out.
// Ties keep discovery order, priority is not considered here.
func (g *TaskGraph) TopologicalOrder() ([]*Task, error) {
	inDegree := make([]int, len(g.tasks))
	queue := make([]int, 0, len(g.tasks))

	for ix := range g.tasks {
		inDegree[ix] = len(g.dependencies[ix])

		if inDegree[ix] == 0 {
			queue = append(queue, ix)
		}
	}

	result := make([]*Task, 0, len(g.tasks))

	for len(queue) > 0 {
		ix := queue[0]
		queue = queue[1:]

		result = append(result, g.tasks[ix])

		for _, dependentIx := range g.dependents[ix] {
			inDegree[dependentIx]--

			if inDegree[dependentIx] == 0 {
				queue = append(queue, dependentIx)
			}
		}
	}

	if len(result) != len(g.tasks) {
		var blocked []string

		for ix, degree := range inDegree {
			if degree > 0 {
				blocked = append(blocked, g.tasks[ix].Name)
			}
		}

		return nil,
			fmt.Errorf(
				"%w: %s",

				ErrCycleDetected,
				strings.Join(blocked, ", "),
			)
	}

	return result,
		nil
}
