package dayscheduler

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

const (
	// FullDayCapacity is what a resource offers on a day nothing was booked or preset.
	FullDayCapacity = 1.0

	// MinimumUsableCapacity is the least remaining capacity a day needs
	// to start or continue a run. Exactly 0.5 is usable.
	MinimumUsableCapacity = 0.5
)

type Resource struct {
	Name       string
	Department string

	availability map[int]float64 // day | remaining capacity, sparse
}

type ParamsNewResource struct {
	Name       string
	Department string
}

func (param *ParamsNewResource) IsValid() error {
	if len(param.Name) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewResource",
			Issue: goerrors.ErrNilInput{
				InputName: "Name",
			},
		}
	}

	if len(param.Department) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewResource",
			Issue: goerrors.ErrNilInput{
				InputName: "Department",
			},
		}
	}

	return nil
}

func NewResource(params *ParamsNewResource) (*Resource, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &Resource{
			Name:       params.Name,
			Department: params.Department,

			availability: make(map[int]float64),
		},
		nil
}

// Capacity returns the remaining capacity for the day.
// Days never touched report FullDayCapacity.
func (res *Resource) Capacity(day int) float64 {
	if capacity, exists := res.availability[day]; exists {
		return capacity
	}

	return FullDayCapacity
}

// SetCapacity presets the remaining capacity of a day, for holidays or part time.
func (res *Resource) SetCapacity(day int, capacity float64) error {
	if day < 1 {
		return goerrors.ErrInvalidInput{
			Caller:     "SetCapacity",
			InputName:  "day",
			InputValue: day,
			Issue: errors.New(
				"days start at 1",
			),
		}
	}

	if capacity < 0 || capacity > FullDayCapacity {
		return goerrors.ErrInvalidInput{
			Caller:     "SetCapacity",
			InputName:  "capacity",
			InputValue: capacity,
			Issue: fmt.Errorf(
				"capacity must be within [0, %.1f]",
				FullDayCapacity,
			),
		}
	}

	if res.availability == nil {
		res.availability = make(map[int]float64)
	}

	res.availability[day] = capacity

	return nil
}

func (res *Resource) consume(day int, workTime float64) {
	if res.availability == nil {
		res.availability = make(map[int]float64)
	}

	res.availability[day] = roundWork(
		max(res.Capacity(day)-workTime, 0),
	)
}

// GetAvailability lists the days that are not at full capacity, in order.
func (res *Resource) GetAvailability() string {
	if len(res.availability) == 0 {
		return "Availability: (full)"
	}

	days := make([]int, 0, len(res.availability))
	for day := range res.availability {
		days = append(days, day)
	}

	slices.Sort(days)

	var sb strings.Builder
	sb.WriteString("Availability:\n")

	for _, day := range days {
		sb.WriteString(
			fmt.Sprintf(
				"- day %d → %.2f\n",

				day,
				res.availability[day],
			),
		)
	}

	return sb.String()
}

func (res *Resource) String() string {
	return fmt.Sprintf(
		"Resource{Name: %q, Department: %q}",

		res.Name,
		res.Department,
	)
}
