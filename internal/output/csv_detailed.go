package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/lifeplan/planner/internal/domain"
)

// CSVDetailedExporter provides the annual projection and its metrics per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "Year", "Age", "Income", "Expenses", "HousingExpenses", "LivingExpenses", "ChildExpenses",
		"Savings", "NetWorth", "Children", "HomeOwner", "Married", "Partnered",
		"MonthlyCashFlow", "EmergencyFundMonths", "EmergencyFundAdequate",
		"HousingRatio", "LivingRatio", "SavingsRatio", "TotalExpenseRatio",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		m := sc.Metrics
		if len(m.CashFlowAnalysis) != len(sc.Projection) || len(m.EmergencyFundStatus) != len(sc.Projection) || len(m.ExpenseRatios) != len(sc.Projection) {
			return nil, fmt.Errorf("scenario %q: metrics do not align with projection", sc.Name)
		}
		for i, yr := range sc.Projection {
			cf, ef, er := m.CashFlowAnalysis[i], m.EmergencyFundStatus[i], m.ExpenseRatios[i]
			row := []string{
				sc.Name,
				intToString(yr.Year),
				intToString(yr.Age),
				wholeString(yr.Income),
				wholeString(yr.Expenses),
				wholeString(yr.HousingExpenses),
				wholeString(yr.LivingExpenses),
				wholeString(yr.ChildExpenses),
				wholeString(yr.Savings),
				wholeString(yr.NetWorth),
				intToString(yr.Children),
				boolToString(yr.HomeOwner),
				boolToString(yr.Married),
				boolToString(yr.Partnered),
				wholeString(cf.MonthlyCashFlow),
				intToString(ef.MonthsCovered),
				boolToString(ef.IsAdequate),
				intToString(er.HousingRatio),
				intToString(er.LivingRatio),
				intToString(er.SavingsRatio),
				intToString(er.TotalExpenseRatio),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
