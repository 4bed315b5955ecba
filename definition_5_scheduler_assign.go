package dayscheduler

import (
	"math"
	"slices"

	"go.uber.org/zap"
)

type rankedResource struct {
	resource *Resource

	earliestDay int     // math.MaxInt when nothing is free before the horizon
	workload    float64 // sum of durations already assigned
}

// rankResources orders all resources by earliest availability from startDay,
// then by lighter workload. Ties keep the given resource order.
func (s *Scheduler) rankResources(startDay int) []rankedResource {
	result := make([]rankedResource, len(s.resources))

	for ix, resource := range s.resources {
		earliest := resource.earliestAvailableDay(startDay, s.maximumDay)

		result[ix] = rankedResource{
			resource:    resource,
			earliestDay: ternary(earliest == _NoAvailability, math.MaxInt, earliest),
			workload:    s.ledger.Workload(resource.Name),
		}
	}

	slices.SortStableFunc(
		result,
		func(a, b rankedResource) int {
			if a.earliestDay != b.earliestDay {
				return ternary(a.earliestDay < b.earliestDay, -1, 1)
			}

			switch {
			case a.workload < b.workload:
				return -1
			case a.workload > b.workload:
				return 1
			}

			return 0
		},
	)

	return result
}

// assignTask commits the task on the first ranked resource of a needed department,
// allowed by QC pairing, with a run of capacity covering the duration.
func (s *Scheduler) assignTask(task *Task, startDay int) bool {
	for _, candidate := range s.rankResources(startDay) {
		resource := candidate.resource

		duration, isNeeded := task.Durations[resource.Department]
		if !isNeeded {
			continue
		}

		if !s.ledger.allowsQC(task, resource.Name) {
			continue
		}

		days := resource.findAvailableDays(
			&paramsFindAvailableDays{
				StartDay:   startDay,
				MaximumDay: s.maximumDay,
				Duration:   duration,
			},
		)
		if len(days) == 0 {
			continue
		}

		s.commit(task, resource, duration, days)

		return true
	}

	return false
}

func (s *Scheduler) commit(task *Task, resource *Resource, duration float64, days []int) {
	if isSpent(duration) {
		s.ledger.record(
			resource.Name,
			Assignment{
				Task: task,
				Day:  days[0],
			},
		)

		task.setDays(days[0], days[0])
	} else {
		remaining := duration

		for ix, day := range days {
			if isSpent(remaining) {
				break
			}

			workTime := roundWork(
				ternary(
					ix == len(days)-1,
					remaining, // the last run day takes what is left
					min(resource.Capacity(day), remaining),
				),
			)

			s.ledger.record(
				resource.Name,
				Assignment{
					Task:     task,
					Day:      day,
					WorkTime: workTime,
				},
			)

			resource.consume(day, workTime)

			remaining = remaining - workTime
		}

		task.setDays(days[0], days[len(days)-1])
	}

	s.ledger.addWorkload(resource.Name, duration)
	s.ledger.taskResource[task.Name] = resource.Name
	s.ledger.pairQC(task, resource.Name)

	s.log.Debug(
		"task assigned",

		zap.String("task", task.Name),
		zap.String("resource", resource.Name),
		zap.Int("startDay", task.StartDay()),
		zap.Int("endDay", task.EndDay()),
		zap.Float64("duration", duration),
	)
}
