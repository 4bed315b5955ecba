package dayscheduler

import (
	"cmp"
	"slices"
)

// totalDurations computes, per task index, the largest duration found
// on the task itself or along any of its dependency chains.
// The task's own part is looked up under its own name, which only
// contributes when a department carries the task's name.
func (g *TaskGraph) totalDurations() []float64 {
	memo := make(map[int]float64, len(g.tasks))

	var totalDuration func(ix int) float64

	totalDuration = func(ix int) float64 {
		if cached, exists := memo[ix]; exists {
			return cached
		}

		// guards against re-entry on a cycle, the topological pass reports it
		memo[ix] = 0

		result := g.tasks[ix].Durations[g.tasks[ix].Name]

		for _, dependencyIx := range g.dependencies[ix] {
			result = max(result, totalDuration(dependencyIx))
		}

		memo[ix] = result

		return result
	}

	result := make([]float64, len(g.tasks))

	for ix := range g.tasks {
		result[ix] = totalDuration(ix)
	}

	return result
}

// TotalDuration exposes the ranking key for a task of the graph.
func (g *TaskGraph) TotalDuration(name string) (float64, bool) {
	ix, exists := g.indexOf[name]
	if !exists {
		return 0, false
	}

	return g.totalDurations()[ix], true
}

// RankTasks orders the tasks topologically, then stable sorts the whole
// result by priority ascending and total duration descending.
// The sort crosses topological levels, the allocator checks readiness again.
func (g *TaskGraph) RankTasks() ([]*Task, error) {
	ordered, errOrder := g.TopologicalOrder()
	if errOrder != nil {
		return nil,
			errOrder
	}

	durations := g.totalDurations()

	slices.SortStableFunc(
		ordered,
		func(a, b *Task) int {
			if byPriority := cmp.Compare(a.Priority, b.Priority); byPriority != 0 {
				return byPriority
			}

			return cmp.Compare(
				durations[g.indexOf[b.Name]],
				durations[g.indexOf[a.Name]],
			)
		},
	)

	return ordered,
		nil
}
