package dayscheduler

// _NoAvailability marks a resource without a usable run before the horizon.
const _NoAvailability = -1

// _ProbeDuration is the work used to rank resources by how soon they free up.
const _ProbeDuration = 1.0

type paramsFindAvailableDays struct {
	StartDay   int
	MaximumDay int
	Duration   float64
}

// findAvailableDays returns the first run of consecutive days, starting at StartDay,
// whose capacities add up to Duration.
// Days under MinimumUsableCapacity break the run and the search restarts after them.
// Returns nil when no such run ends on or before MaximumDay.
func (res *Resource) findAvailableDays(params *paramsFindAvailableDays) []int {
	var (
		days        []int
		accumulated float64
	)

	for day := max(params.StartDay, 1); day <= params.MaximumDay; day++ {
		capacity := res.Capacity(day)

		if !atLeast(capacity, MinimumUsableCapacity) {
			accumulated = 0
			days = days[:0]

			continue
		}

		accumulated = accumulated + capacity
		days = append(days, day)

		if atLeast(accumulated, params.Duration) {
			return days
		}
	}

	return nil
}

// earliestAvailableDay returns the first day of a run able to take the probe duration.
func (res *Resource) earliestAvailableDay(startDay, maximumDay int) int {
	days := res.findAvailableDays(
		&paramsFindAvailableDays{
			StartDay:   startDay,
			MaximumDay: maximumDay,
			Duration:   _ProbeDuration,
		},
	)

	if len(days) == 0 {
		return _NoAvailability
	}

	return days[0]
}
