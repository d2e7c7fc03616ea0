package domain

import (
	"github.com/shopspring/decimal"
)

// YearSnapshot is one simulated year. Currency fields are rounded to whole units.
type YearSnapshot struct {
	Year int `json:"year" yaml:"year"` // 0-based index into the projection
	Age  int `json:"age" yaml:"age"`

	NetWorth decimal.Decimal `json:"net_worth" yaml:"net_worth"`
	Income   decimal.Decimal `json:"income" yaml:"income"`
	Expenses decimal.Decimal `json:"expenses" yaml:"expenses"`
	Savings  decimal.Decimal `json:"savings" yaml:"savings"`

	Married   bool `json:"married" yaml:"married"`
	Partnered bool `json:"partnered" yaml:"partnered"`
	Children  int  `json:"children" yaml:"children"`
	HomeOwner bool `json:"home_owner" yaml:"home_owner"`

	HousingExpenses decimal.Decimal `json:"housing_expenses" yaml:"housing_expenses"`
	LivingExpenses  decimal.Decimal `json:"living_expenses" yaml:"living_expenses"`
	ChildExpenses   decimal.Decimal `json:"child_expenses" yaml:"child_expenses"` // included in LivingExpenses
}

// CashFlow returns income minus expenses for the year.
func (y *YearSnapshot) CashFlow() decimal.Decimal {
	return y.Income.Sub(y.Expenses)
}

// IsShortfall reports whether expenses exceeded income.
func (y *YearSnapshot) IsShortfall() bool {
	return y.Expenses.GreaterThan(y.Income)
}

// Grade is the retirement readiness letter grade.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// CashFlowEntry is the cash-flow view of one projection year.
type CashFlowEntry struct {
	Year            int             `json:"year" yaml:"year"`
	Age             int             `json:"age" yaml:"age"`
	MonthlyCashFlow decimal.Decimal `json:"monthly_cash_flow" yaml:"monthly_cash_flow"`
	AnnualCashFlow  decimal.Decimal `json:"annual_cash_flow" yaml:"annual_cash_flow"`
	Income          decimal.Decimal `json:"income" yaml:"income"`
	Expenses        decimal.Decimal `json:"expenses" yaml:"expenses"`
	IsPositive      bool            `json:"is_positive" yaml:"is_positive"`
}

// EmergencyFundEntry expresses net worth as months of that year's expenses.
type EmergencyFundEntry struct {
	Year            int             `json:"year" yaml:"year"`
	Age             int             `json:"age" yaml:"age"`
	MonthsCovered   int             `json:"months_covered" yaml:"months_covered"` // capped for display
	IsAdequate      bool            `json:"is_adequate" yaml:"is_adequate"`       // judged on the uncapped value
	NetWorth        decimal.Decimal `json:"net_worth" yaml:"net_worth"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses" yaml:"monthly_expenses"`
}

// ExpenseRatioEntry holds whole-percent shares of income for one year.
type ExpenseRatioEntry struct {
	Year              int `json:"year" yaml:"year"`
	Age               int `json:"age" yaml:"age"`
	HousingRatio      int `json:"housing_ratio" yaml:"housing_ratio"`
	LivingRatio       int `json:"living_ratio" yaml:"living_ratio"`
	SavingsRatio      int `json:"savings_ratio" yaml:"savings_ratio"`
	TotalExpenseRatio int `json:"total_expense_ratio" yaml:"total_expense_ratio"`
}

// RetirementReadiness compares the final projected net worth with the
// retirement target.
type RetirementReadiness struct {
	CurrentAge          int             `json:"current_age" yaml:"current_age"`
	RetirementAge       int             `json:"retirement_age" yaml:"retirement_age"`
	YearsToRetirement   int             `json:"years_to_retirement" yaml:"years_to_retirement"`
	ProjectedNetWorth   decimal.Decimal `json:"projected_net_worth" yaml:"projected_net_worth"`
	RecommendedAmount   decimal.Decimal `json:"recommended_amount" yaml:"recommended_amount"`
	ReadinessPercent    int             `json:"readiness_percent" yaml:"readiness_percent"`
	AvgSavingsRate      int             `json:"avg_savings_rate" yaml:"avg_savings_rate"`
	Grade               Grade           `json:"grade" yaml:"grade"`
	MonthsEmergencyFund int             `json:"months_emergency_fund" yaml:"months_emergency_fund"`
}

// EnhancedMetrics is everything derived from one projection. The three series
// align 1:1 with the projection years.
type EnhancedMetrics struct {
	ScenarioName        string               `json:"scenario_name" yaml:"scenario_name"`
	CashFlowAnalysis    []CashFlowEntry      `json:"cash_flow_analysis" yaml:"cash_flow_analysis"`
	EmergencyFundStatus []EmergencyFundEntry `json:"emergency_fund_status" yaml:"emergency_fund_status"`
	ExpenseRatios       []ExpenseRatioEntry  `json:"expense_ratios" yaml:"expense_ratios"`
	RetirementReadiness RetirementReadiness  `json:"retirement_readiness" yaml:"retirement_readiness"`
}

// ScenarioSummary provides the projection, its metrics and headline figures
// for one scenario.
type ScenarioSummary struct {
	Name       string          `json:"name" yaml:"name"`
	ScenarioID string          `json:"scenario_id,omitempty" yaml:"scenario_id,omitempty"`
	Projection []YearSnapshot  `json:"projection" yaml:"projection"`
	Metrics    EnhancedMetrics `json:"metrics" yaml:"metrics"`

	FinalAge        int             `json:"final_age" yaml:"final_age"`
	FinalNetWorth   decimal.Decimal `json:"final_net_worth" yaml:"final_net_worth"`
	PeakNetWorth    decimal.Decimal `json:"peak_net_worth" yaml:"peak_net_worth"`
	PeakNetWorthAge int             `json:"peak_net_worth_age" yaml:"peak_net_worth_age"`
	HomePurchaseAge int             `json:"home_purchase_age,omitempty" yaml:"home_purchase_age,omitempty"` // 0 when no purchase occurs
	ShortfallYears  int             `json:"shortfall_years" yaml:"shortfall_years"`
}

// ScenarioComparison collects the summaries of several scenarios run for the
// same profile.
type ScenarioComparison struct {
	Profile          Profile           `json:"profile" yaml:"profile"`
	Scenarios        []ScenarioSummary `json:"scenarios" yaml:"scenarios"`
	BestForNetWorth  string            `json:"best_for_net_worth" yaml:"best_for_net_worth"`
	BestForReadiness string            `json:"best_for_readiness" yaml:"best_for_readiness"`
	Assumptions      []string          `json:"assumptions" yaml:"assumptions"`

	// Set when the scenarios carry IDs; names alone may repeat in a session.
	BestForNetWorthID  string `json:"best_for_net_worth_id,omitempty" yaml:"best_for_net_worth_id,omitempty"`
	BestForReadinessID string `json:"best_for_readiness_id,omitempty" yaml:"best_for_readiness_id,omitempty"`
}
