package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Assumptions collects the fixed rates and rules of the projection model.
// The engine uses every field as given; start from DefaultAssumptions.
type Assumptions struct {
	ProjectionYears      int             `yaml:"projection_years" json:"projection_years"`
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	InvestmentReturn     decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	AnnualCostPerChild   decimal.Decimal `yaml:"annual_cost_per_child" json:"annual_cost_per_child"`
	MortgageRate         decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`                     // annual, on the financed amount
	OwnerMonthlyCostRate decimal.Decimal `yaml:"owner_monthly_cost_rate" json:"owner_monthly_cost_rate"` // monthly, on the home price

	RetirementAge             int             `yaml:"retirement_age" json:"retirement_age"`
	RetirementMultiple        decimal.Decimal `yaml:"retirement_multiple" json:"retirement_multiple"`
	EmergencyFundTargetMonths int             `yaml:"emergency_fund_target_months" json:"emergency_fund_target_months"`
	EmergencyFundCapMonths    int             `yaml:"emergency_fund_cap_months" json:"emergency_fund_cap_months"`
}

// DefaultAssumptions returns the standard model: 45 years, 2.5% inflation,
// 7% return on positive net worth, $12,000 per child per year, 5.5% mortgage
// payment rate, 0.4% monthly ownership cost, retirement at 65 with a 25x
// expenses target, 6 months adequate emergency fund, 24 months display cap.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ProjectionYears:           45,
		InflationRate:             decimal.NewFromFloat(0.025),
		InvestmentReturn:          decimal.NewFromFloat(0.07),
		AnnualCostPerChild:        decimal.NewFromInt(12000),
		MortgageRate:              decimal.NewFromFloat(0.055),
		OwnerMonthlyCostRate:      decimal.NewFromFloat(0.004),
		RetirementAge:             65,
		RetirementMultiple:        decimal.NewFromInt(25),
		EmergencyFundTargetMonths: 6,
		EmergencyFundCapMonths:    24,
	}
}

// AssumptionOverrides is the user-facing form of Assumptions read from YAML
// and API requests. A nil field keeps the base value, so an explicit zero
// (e.g. investment_return: 0) is honored.
type AssumptionOverrides struct {
	ProjectionYears      *int             `yaml:"projection_years,omitempty" json:"projection_years,omitempty"`
	InflationRate        *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	InvestmentReturn     *decimal.Decimal `yaml:"investment_return,omitempty" json:"investment_return,omitempty"`
	AnnualCostPerChild   *decimal.Decimal `yaml:"annual_cost_per_child,omitempty" json:"annual_cost_per_child,omitempty"`
	MortgageRate         *decimal.Decimal `yaml:"mortgage_rate,omitempty" json:"mortgage_rate,omitempty"`
	OwnerMonthlyCostRate *decimal.Decimal `yaml:"owner_monthly_cost_rate,omitempty" json:"owner_monthly_cost_rate,omitempty"`

	RetirementAge             *int             `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty"`
	RetirementMultiple        *decimal.Decimal `yaml:"retirement_multiple,omitempty" json:"retirement_multiple,omitempty"`
	EmergencyFundTargetMonths *int             `yaml:"emergency_fund_target_months,omitempty" json:"emergency_fund_target_months,omitempty"`
	EmergencyFundCapMonths    *int             `yaml:"emergency_fund_cap_months,omitempty" json:"emergency_fund_cap_months,omitempty"`
}

// Apply returns base with every set field replaced. A nil receiver returns base.
func (o *AssumptionOverrides) Apply(base Assumptions) Assumptions {
	if o == nil {
		return base
	}
	setInt(&base.ProjectionYears, o.ProjectionYears)
	setDecimal(&base.InflationRate, o.InflationRate)
	setDecimal(&base.InvestmentReturn, o.InvestmentReturn)
	setDecimal(&base.AnnualCostPerChild, o.AnnualCostPerChild)
	setDecimal(&base.MortgageRate, o.MortgageRate)
	setDecimal(&base.OwnerMonthlyCostRate, o.OwnerMonthlyCostRate)
	setInt(&base.RetirementAge, o.RetirementAge)
	setDecimal(&base.RetirementMultiple, o.RetirementMultiple)
	setInt(&base.EmergencyFundTargetMonths, o.EmergencyFundTargetMonths)
	setInt(&base.EmergencyFundCapMonths, o.EmergencyFundCapMonths)
	return base
}

// Resolve applies the overrides to DefaultAssumptions.
func (o *AssumptionOverrides) Resolve() Assumptions {
	return o.Apply(DefaultAssumptions())
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDecimal(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}

var hundred = decimal.NewFromInt(100)

// Describe renders the assumptions as report bullet points.
func (a Assumptions) Describe() []string {
	return []string{
		fmt.Sprintf("Projection horizon: %d years", a.ProjectionYears),
		fmt.Sprintf("Inflation on living and housing costs: %s%% annually", a.InflationRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Investment return on positive net worth: %s%% annually", a.InvestmentReturn.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Cost per child: $%s per year before location and inflation", a.AnnualCostPerChild.StringFixed(0)),
		fmt.Sprintf("Home payment after purchase: %s%% of financed amount per year", a.MortgageRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Existing home ownership cost: %s%% of home price per month", a.OwnerMonthlyCostRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Retirement target: %sx final-year expenses at age %d", a.RetirementMultiple.StringFixed(0), a.RetirementAge),
		"Shortfall years record zero savings and do not draw down net worth",
	}
}
