package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lifeplan/planner/internal/domain"
)

// ConsoleFormatter provides a concise console summary: one row per scenario
// followed by five-year milestones.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

// milestoneStep is the spacing between rows in the milestone tables.
const milestoneStep = 5

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, results)

	fmt.Fprintln(&buf, renderTable(summaryHeaders, summaryRows(results)))
	writeHighlights(&buf, results)

	for _, sc := range results.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, sectionStyle.Render(strings.ToUpper(sc.Name)+" MILESTONES"))
		var rows [][]string
		for i, y := range sc.Projection {
			if i%milestoneStep == 0 || i == len(sc.Projection)-1 {
				rows = append(rows, []string{
					intToString(y.Age),
					FormatCurrency(y.Income),
					FormatCurrency(y.Expenses),
					FormatCurrency(y.Savings),
					FormatCurrency(y.NetWorth),
					lifeEvents(y),
				})
			}
		}
		fmt.Fprintln(&buf, renderTable([]string{"Age", "Income", "Expenses", "Savings", "Net Worth", "Household"}, rows))
	}

	writeAssumptions(&buf, results)
	return buf.Bytes(), nil
}

var summaryHeaders = []string{"Scenario", "Final Net Worth", "Peak Net Worth", "Readiness", "Grade", "Avg Savings", "Home Bought", "Shortfall Yrs"}

func summaryRows(results *domain.ScenarioComparison) [][]string {
	rows := make([][]string, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		rr := sc.Metrics.RetirementReadiness
		home := "-"
		if sc.HomePurchaseAge > 0 {
			home = "age " + intToString(sc.HomePurchaseAge)
		}
		rows = append(rows, []string{
			sc.Name,
			fmt.Sprintf("%s (%d)", FormatCurrency(sc.FinalNetWorth), sc.FinalAge),
			fmt.Sprintf("%s (%d)", FormatCurrency(sc.PeakNetWorth), sc.PeakNetWorthAge),
			FormatPercentage(rr.ReadinessPercent),
			gradeStyle(string(rr.Grade)).Render(string(rr.Grade)),
			FormatPercentage(rr.AvgSavingsRate),
			home,
			intToString(sc.ShortfallYears),
		})
	}
	return rows
}

// writeHeader writes the plain report title and the profile line.
func writeHeader(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	fmt.Fprintln(buf, "LIFE PROJECTION REPORT")
	p := results.Profile
	line := fmt.Sprintf("%s, age %d", p.Name, p.Age)
	if p.LifeStage != "" {
		line += " · " + strings.ReplaceAll(string(p.LifeStage), "_", " ")
	}
	fmt.Fprintln(buf, titleStyle.Render(line))
	fmt.Fprintln(buf)
}

func writeHighlights(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	if results.BestForNetWorth != "" {
		fmt.Fprintf(buf, "Best final net worth: %s\n", results.BestForNetWorth)
	}
	if results.BestForReadiness != "" {
		fmt.Fprintf(buf, "Best retirement readiness: %s\n", results.BestForReadiness)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		line := fmt.Sprintf("Recommended: %s (grade %s, %s ready)", rec.ScenarioName, rec.Grade, FormatPercentage(rec.ReadinessPercent))
		if rec.RunnerUp != "" {
			line += fmt.Sprintf(", %s ahead of %s", FormatCurrency(rec.LeadOverNext), rec.RunnerUp)
		}
		fmt.Fprintln(buf, line)
	}
}

func writeAssumptions(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, sectionStyle.Render("KEY ASSUMPTIONS"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintln(buf, mutedStyle.Render("  • "+a))
	}
}

// lifeEvents summarizes the household state of a year.
func lifeEvents(y domain.YearSnapshot) string {
	var parts []string
	switch {
	case y.Married:
		parts = append(parts, "married")
	case y.Partnered:
		parts = append(parts, "partnered")
	}
	if y.Children > 0 {
		parts = append(parts, fmt.Sprintf("%d kid(s)", y.Children))
	}
	if y.HomeOwner {
		parts = append(parts, "owner")
	} else {
		parts = append(parts, "renter")
	}
	return strings.Join(parts, ", ")
}
