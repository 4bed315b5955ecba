// Package plan reads the planning input: task rows with per department
// durations, the resource roster and the department dependency rules.
// It replaces the spreadsheet the planners used to fill in.
package plan

import (
	"fmt"
	"os"
	"slices"

	"github.com/TudorHulban/dayscheduler"
	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v3"
)

// Row is one line of work, needing time from one or more departments.
type Row struct {
	Name      string             `yaml:"name" valid:"required"`
	Durations map[string]float64 `yaml:"durations" valid:"-"`

	Priority int `yaml:"priority"`
}

type ResourceRow struct {
	Name       string `yaml:"name" valid:"required"`
	Department string `yaml:"department" valid:"required"`

	// day | remaining capacity, for days not fully available
	Capacity map[int]float64 `yaml:"capacity" valid:"-"`
}

type Plan struct {
	Departments []string      `yaml:"departments" valid:"required"`
	Tasks       []Row         `yaml:"tasks" valid:"required"`
	Resources   []ResourceRow `yaml:"resources" valid:"required"`

	Rules Rules `yaml:"rules" valid:"-"`
}

func (p *Plan) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(p); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Plan",
			Caller:      "IsValid",
			Issue:       errValidation,
		}
	}

	departments := make(map[string]bool, len(p.Departments))

	for _, department := range p.Departments {
		if departments[department] {
			return goerrors.ErrValidation{
				Caller: "IsValid - Plan",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "departments - duplicate",
					InputValue: department,
				},
			}
		}

		departments[department] = true
	}

	rowNames := make(map[string]bool, len(p.Tasks))

	for _, row := range p.Tasks {
		if rowNames[row.Name] {
			return goerrors.ErrValidation{
				Caller: "IsValid - Plan",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "tasks - duplicate name",
					InputValue: row.Name,
				},
			}
		}

		rowNames[row.Name] = true

		if len(row.Durations) == 0 {
			return goerrors.ErrValidation{
				Caller: "IsValid - Plan",
				Issue: goerrors.ErrNilInput{
					InputName: "tasks - durations of " + row.Name,
				},
			}
		}

		for department, duration := range row.Durations {
			if !departments[department] {
				return goerrors.ErrValidation{
					Caller: "IsValid - Plan",
					Issue: goerrors.ErrInvalidInput{
						InputName:  "tasks - undeclared department in " + row.Name,
						InputValue: department,
					},
				}
			}

			if duration < 0 {
				return goerrors.ErrValidation{
					Caller: "IsValid - Plan",
					Issue: goerrors.ErrNegativeInput{
						InputName: fmt.Sprintf("tasks - %s duration of %s", department, row.Name),
					},
				}
			}
		}
	}

	for _, resource := range p.Resources {
		// QC staff serve the merged department, never declared as a column
		if !departments[resource.Department] && resource.Department != dayscheduler.QCDepartment {
			return goerrors.ErrValidation{
				Caller: "IsValid - Plan",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "resources - undeclared department of " + resource.Name,
					InputValue: resource.Department,
				},
			}
		}
	}

	return nil
}

// ResourceDepartments returns the department of each resource, by resource name.
func (p *Plan) ResourceDepartments() map[string]string {
	result := make(map[string]string, len(p.Resources))

	for _, resource := range p.Resources {
		result[resource.Name] = resource.Department
	}

	return result
}

// DepartmentIndex tells the column position of a department, -1 if unknown.
func (p *Plan) DepartmentIndex(department string) int {
	return slices.Index(p.Departments, department)
}

// Parse decodes a YAML or JSON plan and validates it.
func Parse(data []byte) (*Plan, error) {
	var result Plan

	if errUnmarshal := yaml.Unmarshal(data, &result); errUnmarshal != nil {
		return nil,
			fmt.Errorf("decode plan: %w", errUnmarshal)
	}

	if errValidation := result.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &result,
		nil
}

func Load(path string) (*Plan, error) {
	data, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil,
			fmt.Errorf("read plan: %w", errRead)
	}

	result, errParse := Parse(data)
	if errParse != nil {
		return nil,
			fmt.Errorf("plan %s: %w", path, errParse)
	}

	return result,
		nil
}
