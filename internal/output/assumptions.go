package output

import "github.com/lifeplan/planner/internal/domain"

// DefaultAssumptions lists the standard modeling assumptions rendered when a
// comparison carries none of its own.
var DefaultAssumptions = domain.DefaultAssumptions().Describe()

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return DefaultAssumptions
}
