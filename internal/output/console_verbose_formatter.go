package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lifeplan/planner/internal/domain"
)

// ConsoleVerboseFormatter prints every projection year for each scenario
// together with its cash-flow, emergency fund and expense ratio metrics.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

var verboseHeaders = []string{
	"Age", "Income", "Housing", "Living", "Children", "Savings", "Net Worth",
	"Cash/mo", "EF Months", "Housing %", "Living %", "Savings %",
}

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, results)

	for _, sc := range results.Scenarios {
		m := sc.Metrics
		if len(m.CashFlowAnalysis) != len(sc.Projection) ||
			len(m.EmergencyFundStatus) != len(sc.Projection) ||
			len(m.ExpenseRatios) != len(sc.Projection) {
			return nil, fmt.Errorf("scenario %q: metrics do not align with projection", sc.Name)
		}

		rr := m.RetirementReadiness
		fmt.Fprintln(&buf, sectionStyle.Render(strings.ToUpper(sc.Name)))
		fmt.Fprintf(&buf, "Retirement readiness: %s of %s target (%s), grade %s\n",
			FormatPercentage(rr.ReadinessPercent), FormatCurrency(rr.RecommendedAmount),
			FormatCurrency(rr.ProjectedNetWorth), gradeStyle(string(rr.Grade)).Render(string(rr.Grade)))
		fmt.Fprintf(&buf, "Years to retirement: %d · Average savings rate: %s · Emergency fund today: %d months\n",
			rr.YearsToRetirement, FormatPercentage(rr.AvgSavingsRate), rr.MonthsEmergencyFund)

		rows := make([][]string, 0, len(sc.Projection))
		for i, y := range sc.Projection {
			cf, ef, er := m.CashFlowAnalysis[i], m.EmergencyFundStatus[i], m.ExpenseRatios[i]
			efCell := intToString(ef.MonthsCovered)
			if !ef.IsAdequate {
				efCell += "!"
			}
			rows = append(rows, []string{
				intToString(y.Age),
				FormatCurrency(y.Income),
				FormatCurrency(y.HousingExpenses),
				FormatCurrency(y.LivingExpenses),
				intToString(y.Children),
				FormatCurrency(y.Savings),
				FormatCurrency(y.NetWorth),
				FormatCurrency(cf.MonthlyCashFlow),
				efCell,
				FormatPercentage(er.HousingRatio),
				FormatPercentage(er.LivingRatio),
				FormatPercentage(er.SavingsRatio),
			})
		}
		fmt.Fprintln(&buf, renderTable(verboseHeaders, rows))
		fmt.Fprintln(&buf, mutedStyle.Render("! emergency fund below target"))
		fmt.Fprintln(&buf)
	}

	writeHighlights(&buf, results)
	writeAssumptions(&buf, results)
	return buf.Bytes(), nil
}
