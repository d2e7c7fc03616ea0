package calculation

import (
	"github.com/lifeplan/planner/internal/domain"
)

// summarize builds the headline figures for one scenario run.
func summarize(scenario *domain.Scenario, projection []domain.YearSnapshot, metrics *domain.EnhancedMetrics) *domain.ScenarioSummary {
	summary := &domain.ScenarioSummary{
		Name:       scenario.Name,
		ScenarioID: scenario.ID,
		Projection: projection,
		Metrics:    *metrics,
	}

	final := projection[len(projection)-1]
	summary.FinalAge = final.Age
	summary.FinalNetWorth = final.NetWorth

	peak := projection[0]
	for _, year := range projection[1:] {
		// Strictly greater keeps the earliest age on ties.
		if year.NetWorth.GreaterThan(peak.NetWorth) {
			peak = year
		}
	}
	summary.PeakNetWorth = peak.NetWorth
	summary.PeakNetWorthAge = peak.Age

	if scenario.HousingStatus == domain.HousingRenting {
		for _, year := range projection {
			if year.HomeOwner {
				summary.HomePurchaseAge = year.Age
				break
			}
		}
	}

	for i := range projection {
		if projection[i].IsShortfall() {
			summary.ShortfallYears++
		}
	}

	return summary
}

// rankScenarios names the scenario with the highest final net worth and the
// one with the highest readiness percent, by name and by ID. Earlier
// scenarios win ties.
func rankScenarios(comparison *domain.ScenarioComparison) {
	if len(comparison.Scenarios) == 0 {
		return
	}
	bestWorth := comparison.Scenarios[0]
	bestReady := comparison.Scenarios[0]
	for _, s := range comparison.Scenarios[1:] {
		if s.FinalNetWorth.GreaterThan(bestWorth.FinalNetWorth) {
			bestWorth = s
		}
		if s.Metrics.RetirementReadiness.ReadinessPercent > bestReady.Metrics.RetirementReadiness.ReadinessPercent {
			bestReady = s
		}
	}
	comparison.BestForNetWorth = bestWorth.Name
	comparison.BestForNetWorthID = bestWorth.ScenarioID
	comparison.BestForReadiness = bestReady.Name
	comparison.BestForReadinessID = bestReady.ScenarioID
}
