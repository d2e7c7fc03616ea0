package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/lifeplan/planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "FinalAge", "FinalNetWorth", "PeakNetWorth", "PeakNetWorthAge", "ReadinessPercent", "Grade", "RecommendedAmount", "AvgSavingsRate", "MonthsEmergencyFund", "YearsToRetirement", "HomePurchaseAge", "ShortfallYears"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		rr := sc.Metrics.RetirementReadiness
		row := []string{
			sc.Name,
			intToString(sc.FinalAge),
			wholeString(sc.FinalNetWorth),
			wholeString(sc.PeakNetWorth),
			intToString(sc.PeakNetWorthAge),
			intToString(rr.ReadinessPercent),
			string(rr.Grade),
			wholeString(rr.RecommendedAmount),
			intToString(rr.AvgSavingsRate),
			intToString(rr.MonthsEmergencyFund),
			intToString(rr.YearsToRetirement),
			intToString(sc.HomePurchaseAge),
			intToString(sc.ShortfallYears),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
