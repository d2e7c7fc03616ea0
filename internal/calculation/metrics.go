package calculation

import (
	"github.com/lifeplan/planner/internal/domain"
	pkgdecimal "github.com/lifeplan/planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DeriveMetrics computes the enhanced metrics for a projection under the
// standard assumptions.
func DeriveMetrics(projection []domain.YearSnapshot, scenario *domain.Scenario) (*domain.EnhancedMetrics, error) {
	return DeriveMetricsWith(domain.DefaultAssumptions(), projection, scenario)
}

// DeriveMetricsWith computes the per-year cash flow, emergency fund and
// expense ratio series plus the retirement readiness summary. The scenario is
// only used for labeling and may be nil.
func DeriveMetricsWith(assumptions domain.Assumptions, projection []domain.YearSnapshot, scenario *domain.Scenario) (*domain.EnhancedMetrics, error) {
	if len(projection) == 0 {
		return nil, domain.ErrEmptyProjection
	}

	metrics := &domain.EnhancedMetrics{
		CashFlowAnalysis:    make([]domain.CashFlowEntry, 0, len(projection)),
		EmergencyFundStatus: make([]domain.EmergencyFundEntry, 0, len(projection)),
		ExpenseRatios:       make([]domain.ExpenseRatioEntry, 0, len(projection)),
	}
	if scenario != nil {
		metrics.ScenarioName = scenario.Name
	}

	savingsRateSum := decimal.Zero
	for _, year := range projection {
		metrics.CashFlowAnalysis = append(metrics.CashFlowAnalysis, cashFlowEntry(year))
		metrics.EmergencyFundStatus = append(metrics.EmergencyFundStatus, emergencyFundEntry(year, assumptions))
		metrics.ExpenseRatios = append(metrics.ExpenseRatios, expenseRatioEntry(year))
		savingsRateSum = savingsRateSum.Add(pkgdecimal.Percent(year.Savings, year.Income))
	}

	metrics.RetirementReadiness = retirementReadiness(projection, assumptions, savingsRateSum)
	metrics.RetirementReadiness.MonthsEmergencyFund = metrics.EmergencyFundStatus[0].MonthsCovered
	return metrics, nil
}

func cashFlowEntry(year domain.YearSnapshot) domain.CashFlowEntry {
	annual := year.CashFlow()
	monthly := pkgdecimal.NewMoneyFromDecimal(annual).Monthly().Decimal
	return domain.CashFlowEntry{
		Year:            year.Year,
		Age:             year.Age,
		MonthlyCashFlow: pkgdecimal.RoundWhole(monthly),
		AnnualCashFlow:  pkgdecimal.RoundWhole(annual),
		Income:          year.Income,
		Expenses:        year.Expenses,
		IsPositive:      monthly.IsPositive(),
	}
}

func emergencyFundEntry(year domain.YearSnapshot, assumptions domain.Assumptions) domain.EmergencyFundEntry {
	monthlyExpenses := pkgdecimal.NewMoneyFromDecimal(year.Expenses).Monthly().Decimal
	months := decimal.Zero
	if year.NetWorth.IsPositive() && monthlyExpenses.IsPositive() {
		months = year.NetWorth.Div(monthlyExpenses)
	}

	covered := int(pkgdecimal.RoundWhole(months).IntPart())
	covered = min(covered, assumptions.EmergencyFundCapMonths)

	return domain.EmergencyFundEntry{
		Year:            year.Year,
		Age:             year.Age,
		MonthsCovered:   covered,
		IsAdequate:      months.GreaterThanOrEqual(decimal.NewFromInt(int64(assumptions.EmergencyFundTargetMonths))),
		NetWorth:        year.NetWorth,
		MonthlyExpenses: monthlyExpenses,
	}
}

func expenseRatioEntry(year domain.YearSnapshot) domain.ExpenseRatioEntry {
	housing := pkgdecimal.Percent(year.HousingExpenses, year.Income)
	living := pkgdecimal.Percent(year.LivingExpenses, year.Income)
	return domain.ExpenseRatioEntry{
		Year:              year.Year,
		Age:               year.Age,
		HousingRatio:      wholePercent(housing),
		LivingRatio:       wholePercent(living),
		SavingsRatio:      pkgdecimal.RoundPercent(year.Savings, year.Income),
		TotalExpenseRatio: wholePercent(housing.Add(living)),
	}
}

func retirementReadiness(projection []domain.YearSnapshot, assumptions domain.Assumptions, savingsRateSum decimal.Decimal) domain.RetirementReadiness {
	first := projection[0]
	final := projection[len(projection)-1]
	target := final.Expenses.Mul(assumptions.RetirementMultiple)

	var percent int
	switch {
	case target.IsPositive():
		percent = wholePercent(final.NetWorth.Div(target).Mul(hundred))
	case final.NetWorth.IsPositive():
		percent = 100
	}

	avgSavingsRate := savingsRateSum.Div(decimal.NewFromInt(int64(len(projection))))

	return domain.RetirementReadiness{
		CurrentAge:        first.Age,
		RetirementAge:     assumptions.RetirementAge,
		YearsToRetirement: max(0, assumptions.RetirementAge-first.Age),
		ProjectedNetWorth: final.NetWorth,
		RecommendedAmount: target,
		ReadinessPercent:  percent,
		AvgSavingsRate:    wholePercent(avgSavingsRate),
		Grade:             GradeFor(percent),
	}
}

func wholePercent(d decimal.Decimal) int {
	return int(pkgdecimal.RoundWhole(d).IntPart())
}
