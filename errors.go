package dayscheduler

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCycleDetected    = errors.New("circular dependency detected")
	ErrUnschedulableSet = errors.New("unable to schedule all tasks, resource constraints or circular dependencies may exist")
)

// StalledTask describes a task left in the working set after a pass without progress.
type StalledTask struct {
	Name string

	// WaitingOn holds the dependencies without an end day.
	// Empty means the task was ready but no resource could host it.
	WaitingOn []string
}

func (s StalledTask) String() string {
	if len(s.WaitingOn) == 0 {
		return s.Name + " (no resource available)"
	}

	return fmt.Sprintf(
		"%s (waiting on %s)",

		s.Name,
		strings.Join(s.WaitingOn, ", "),
	)
}

// UnschedulableError is returned when a full pass over the remaining tasks
// assigns nothing. errors.Is(err, ErrUnschedulableSet) holds.
type UnschedulableError struct {
	Stalled []StalledTask
}

func (e *UnschedulableError) Error() string {
	stalled := make([]string, len(e.Stalled))

	for ix, task := range e.Stalled {
		stalled[ix] = task.String()
	}

	return fmt.Sprintf(
		"%s: %s",

		ErrUnschedulableSet.Error(),
		strings.Join(stalled, "; "),
	)
}

func (e *UnschedulableError) Unwrap() error {
	return ErrUnschedulableSet
}

// OnlyResourceShortage reports whether every stalled task was ready,
// meaning the stall comes from resources and not from unmet dependencies.
func (e *UnschedulableError) OnlyResourceShortage() bool {
	for _, task := range e.Stalled {
		if len(task.WaitingOn) > 0 {
			return false
		}
	}

	return true
}
