package output

import (
	"github.com/lifeplan/planner/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the scenario comparison as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return yaml.Marshal(results)
}
