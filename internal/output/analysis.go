package output

import (
	"sort"

	"github.com/lifeplan/planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	Grade            domain.Grade
	ReadinessPercent int
	FinalNetWorth    decimal.Decimal
	LeadOverNext     decimal.Decimal // final net worth ahead of the runner-up
	RunnerUp         string
}

// AnalyzeScenarios picks the scenario with the best retirement readiness,
// breaking ties on final net worth and then on input order.
// Extracted from embedded console logic for testability.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri := ranked[i].Metrics.RetirementReadiness.ReadinessPercent
		rj := ranked[j].Metrics.RetirementReadiness.ReadinessPercent
		if ri != rj {
			return ri > rj
		}
		return ranked[i].FinalNetWorth.GreaterThan(ranked[j].FinalNetWorth)
	})

	best := ranked[0]
	rec := Recommendation{
		ScenarioName:     best.Name,
		Grade:            best.Metrics.RetirementReadiness.Grade,
		ReadinessPercent: best.Metrics.RetirementReadiness.ReadinessPercent,
		FinalNetWorth:    best.FinalNetWorth,
	}
	if len(ranked) > 1 {
		rec.RunnerUp = ranked[1].Name
		rec.LeadOverNext = best.FinalNetWorth.Sub(ranked[1].FinalNetWorth)
	}
	return rec
}
