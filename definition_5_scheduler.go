package dayscheduler

import (
	"context"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"go.uber.org/zap"
)

// DefaultMaximumDay bounds every capacity search, about ten years of days.
const DefaultMaximumDay = 3650

// Scheduler owns the resources and the ledger for the duration of a run.
// It is not safe for concurrent use.
type Scheduler struct {
	resources []*Resource
	ledger    *Ledger
	log       *zap.Logger

	maximumDay int
}

type ParamsNewScheduler struct {
	Resources []*Resource `valid:"required"`
	Logger    *zap.Logger `valid:"-"`

	MaximumDay int // defaults to DefaultMaximumDay
}

func NewScheduler(params *ParamsNewScheduler) (*Scheduler, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Scheduler",
				Caller:      "NewScheduler",
				Issue:       errValidation,
			}
	}

	names := make(map[string]bool, len(params.Resources))

	for ix, resource := range params.Resources {
		if resource == nil {
			return nil,
				goerrors.ErrValidation{
					Caller: "NewScheduler",
					Issue: goerrors.ErrNilInput{
						InputName: fmt.Sprintf("Resources[%d]", ix),
					},
				}
		}

		if names[resource.Name] {
			return nil,
				goerrors.ErrValidation{
					Caller: "NewScheduler",
					Issue: goerrors.ErrInvalidInput{
						InputName:  "Resources - duplicate name",
						InputValue: resource.Name,
					},
				}
		}

		names[resource.Name] = true
	}

	if params.MaximumDay < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewScheduler",
				Issue: goerrors.ErrNegativeInput{
					InputName: "MaximumDay",
				},
			}
	}

	return &Scheduler{
			resources: params.Resources,
			ledger:    NewLedger(params.Resources),
			log:       ternary(params.Logger == nil, zap.NewNop(), params.Logger),

			maximumDay: ternary(params.MaximumDay == 0, DefaultMaximumDay, params.MaximumDay),
		},
		nil
}

func (s *Scheduler) Ledger() *Ledger {
	return s.ledger
}

func (s *Scheduler) Resources() []*Resource {
	return s.resources
}

// ScheduleTasks assigns the tasks in passes, in list order, until all are placed.
// Tasks ranked by TaskGraph.RankTasks keep their resolved dependencies,
// others are resolved here against the given list.
// A task is considered only once all its dependencies have an end day.
// A pass assigning nothing ends the run with an *UnschedulableError.
func (s *Scheduler) ScheduleTasks(ctx context.Context, tasks []*Task) error {
	resolveDependencies(tasks)

	unassigned := make([]*Task, 0, len(tasks))

	for _, task := range tasks {
		if !task.IsScheduled() {
			unassigned = append(unassigned, task)
		}
	}

	var pass int

	for len(unassigned) > 0 {
		if errCtx := ctx.Err(); errCtx != nil {
			return errCtx
		}

		pass++

		var (
			progressMade bool
			next         = make([]*Task, 0, len(unassigned))
		)

		for _, task := range unassigned {
			if len(task.unscheduledDependencies()) > 0 {
				next = append(next, task)

				continue
			}

			if s.assignTask(task, task.earliestStartDay()) {
				progressMade = true

				continue
			}

			next = append(next, task)
		}

		s.log.Debug(
			"scheduling pass done",

			zap.Int("pass", pass),
			zap.Int("assigned", len(unassigned)-len(next)),
			zap.Int("remaining", len(next)),
		)

		if !progressMade {
			return s.stalled(next)
		}

		unassigned = next
	}

	return nil
}

func (s *Scheduler) stalled(tasks []*Task) *UnschedulableError {
	result := UnschedulableError{
		Stalled: make([]StalledTask, len(tasks)),
	}

	for ix, task := range tasks {
		result.Stalled[ix] = StalledTask{
			Name:      task.Name,
			WaitingOn: task.unscheduledDependencies(),
		}
	}

	s.log.Warn(
		"scheduling stalled",

		zap.Int("stalled", len(tasks)),
		zap.Bool("resourceShortage", result.OnlyResourceShortage()),
	)

	return &result
}
