package dayscheduler

import (
	"math"
	"strings"
)

// _epsilon absorbs float drift from repeated capacity decrements (1 - 0.1 - 0.2 ...).
const _epsilon = 1e-9

// _workScale is 1/_epsilon, exact as a float64.
const _workScale = 1e9

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}

func atLeast(value, threshold float64) bool {
	return value+_epsilon >= threshold
}

func isSpent(value float64) bool {
	return value <= _epsilon
}

// roundWork removes float drift at the _epsilon scale, 0.30000000000000004 becomes 0.3.
// Anything coarser, 0.5000004 included, is kept.
func roundWork(value float64) float64 {
	return math.Round(value*_workScale) / _workScale
}

// BaseTaskName strips the department prefix ("Build: ") and any
// parenthetical suffix (" (part 2)") from a task name.
// Only the first ": " is a separator, "Build: Widget: Mk2" gives "Widget: Mk2".
func BaseTaskName(taskName string) string {
	base := taskName

	if _, afterPrefix, found := strings.Cut(base, ": "); found {
		base = afterPrefix
	}

	if beforeSuffix, _, found := strings.Cut(base, " ("); found {
		base = beforeSuffix
	}

	return base
}
