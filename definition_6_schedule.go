package dayscheduler

import (
	"context"

	goerrors "github.com/TudorHulban/go-errors"
	"go.uber.org/zap"
)

type ParamsSchedule struct {
	Tasks     []*Task
	Resources []*Resource
	Logger    *zap.Logger

	MaximumDay int
}

// Schedule runs the whole pipeline: dependency resolution, ranking and allocation.
// Task start and end days are updated in place.
func Schedule(ctx context.Context, params *ParamsSchedule) (*Ledger, error) {
	if len(params.Tasks) == 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "Schedule",
				Issue: goerrors.ErrNilInput{
					InputName: "Tasks",
				},
			}
	}

	graph, errGraph := NewTaskGraph(params.Tasks)
	if errGraph != nil {
		return nil,
			errGraph
	}

	ranked, errRank := graph.RankTasks()
	if errRank != nil {
		return nil,
			errRank
	}

	scheduler, errCr := NewScheduler(
		&ParamsNewScheduler{
			Resources:  params.Resources,
			Logger:     params.Logger,
			MaximumDay: params.MaximumDay,
		},
	)
	if errCr != nil {
		return nil,
			errCr
	}

	if errSchedule := scheduler.ScheduleTasks(ctx, ranked); errSchedule != nil {
		return nil,
			errSchedule
	}

	return scheduler.Ledger(),
		nil
}
