package plan

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Rules maps a department to the departments it must be completed before,
// for tasks sharing a base name.
// The file form is the JSON object the planners already keep:
//
//	{"Design": ["Build", "QC Creation"]}
type Rules map[string][]string

func ParseRules(data []byte) (Rules, error) {
	var result Rules

	if errUnmarshal := yaml.Unmarshal(data, &result); errUnmarshal != nil {
		return nil,
			fmt.Errorf("decode rules: %w", errUnmarshal)
	}

	if result == nil {
		result = Rules{}
	}

	return result,
		nil
}

func LoadRules(path string) (Rules, error) {
	data, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil,
			fmt.Errorf("read rules: %w", errRead)
	}

	return ParseRules(data)
}

// Merge returns the union of both rule sets, keeping first seen order.
func (r Rules) Merge(other Rules) Rules {
	result := make(Rules, len(r)+len(other))

	for _, rules := range []Rules{r, other} {
		for department, successors := range rules {
			for _, successor := range successors {
				if slices.Contains(result[department], successor) {
					continue
				}

				result[department] = append(result[department], successor)
			}
		}
	}

	return result
}

// Precedes tells if work of department must be done before work of successor.
func (r Rules) Precedes(department, successor string) bool {
	return slices.Contains(r[department], successor)
}
