package calculation

import (
	"fmt"

	"github.com/lifeplan/planner/internal/domain"
	pkgdecimal "github.com/lifeplan/planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// projectionState is the running state carried from one year to the next.
// Values stay unrounded; rounding happens only when a snapshot is emitted.
type projectionState struct {
	netWorth       decimal.Decimal
	monthlyHousing decimal.Decimal
	childrenBorn   int
	ownsHome       bool
}

// projectionInputs is everything resolved once before the yearly loop.
type projectionInputs struct {
	scenario    *domain.Scenario
	assumptions domain.Assumptions
	multipliers domain.LocationMultipliers
	startAge    int

	baseIncome      decimal.Decimal // combined income at year 0, location adjusted
	salaryGrowth    decimal.Decimal // 1 + growth rate
	inflation       decimal.Decimal // 1 + inflation rate
	baseLivingCosts decimal.Decimal // annual, before children, location and inflation
	married         bool
	partnered       bool
}

// Project runs the standard model for a scenario and profile and returns one
// snapshot per year.
func Project(scenario *domain.Scenario, profile *domain.Profile) ([]domain.YearSnapshot, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: profile is required", domain.ErrInvalidConfiguration)
	}
	return ProjectWith(domain.DefaultAssumptions(), scenario, profile.Age)
}

// ProjectWith runs the projection under the given assumptions starting at
// startAge. It is a pure function of its arguments: identical inputs always
// give identical output and nothing is shared between calls.
func ProjectWith(assumptions domain.Assumptions, scenario *domain.Scenario, startAge int) ([]domain.YearSnapshot, error) {
	if assumptions.ProjectionYears <= 0 {
		return nil, fmt.Errorf("%w: projection years must be positive, got %d", domain.ErrInvalidConfiguration, assumptions.ProjectionYears)
	}
	in, state, err := newProjectionInputs(assumptions, scenario, startAge)
	if err != nil {
		return nil, err
	}

	projection := make([]domain.YearSnapshot, 0, in.assumptions.ProjectionYears)
	for year := 0; year < in.assumptions.ProjectionYears; year++ {
		var snapshot domain.YearSnapshot
		state, snapshot = in.step(state, year)
		projection = append(projection, snapshot)
	}
	return projection, nil
}

func newProjectionInputs(assumptions domain.Assumptions, scenario *domain.Scenario, startAge int) (*projectionInputs, projectionState, error) {
	if scenario == nil {
		return nil, projectionState{}, fmt.Errorf("%w: scenario is required", domain.ErrInvalidConfiguration)
	}
	multipliers, err := scenario.LocationCost.Multipliers()
	if err != nil {
		return nil, projectionState{}, err
	}
	if !scenario.RelationshipStatus.Valid() {
		return nil, projectionState{}, fmt.Errorf("%w: unknown relationship status %q", domain.ErrInvalidConfiguration, string(scenario.RelationshipStatus))
	}

	in := &projectionInputs{
		scenario:        scenario,
		assumptions:     assumptions,
		multipliers:     multipliers,
		startAge:        startAge,
		baseIncome:      scenario.CurrentIncome.Mul(multipliers.Salary),
		salaryGrowth:    one.Add(scenario.SalaryGrowthRate.Div(hundred)),
		inflation:       one.Add(assumptions.InflationRate),
		baseLivingCosts: scenario.MonthlyExpenses.Mul(twelve),
		married:         scenario.RelationshipStatus == domain.RelationshipMarried,
		partnered:       scenario.RelationshipStatus.HasPartner(),
	}
	if in.partnered {
		in.baseIncome = in.baseIncome.Add(scenario.PartnerIncome.Mul(multipliers.Salary))
	}

	state := projectionState{
		netWorth: scenario.CurrentSavings.Sub(scenario.CurrentDebt),
	}
	switch scenario.HousingStatus {
	case domain.HousingLivingWithFamily:
		state.monthlyHousing = decimal.Zero
	case domain.HousingOwns:
		state.ownsHome = true
		state.monthlyHousing = scenario.HomePrice.Mul(multipliers.Housing).Mul(assumptions.OwnerMonthlyCostRate)
	case domain.HousingRenting:
		state.monthlyHousing = scenario.MonthlyRent.Mul(multipliers.Housing)
	default:
		return nil, projectionState{}, fmt.Errorf("%w: unknown housing status %q", domain.ErrInvalidConfiguration, string(scenario.HousingStatus))
	}

	return in, state, nil
}

// step advances the state by one year. Life events are applied before the
// year's income and expenses so that they already affect that year.
func (in *projectionInputs) step(s projectionState, year int) (projectionState, domain.YearSnapshot) {
	sc := in.scenario
	age := in.startAge + year

	// House purchase: fires once, the first renting year at or past the plan.
	if !s.ownsHome && sc.HousingStatus == domain.HousingRenting && year >= sc.YearsUntilBuying {
		housePrice := sc.HomePrice.Mul(in.multipliers.Housing)
		downPayment := housePrice.Mul(sc.DownPaymentPercent.Div(hundred))
		s.ownsHome = true
		s.netWorth = s.netWorth.Sub(downPayment)
		s.monthlyHousing = housePrice.Sub(downPayment).Mul(in.assumptions.MortgageRate).Div(twelve)
	}

	// Children arrive one every two years from AgeFirstChild.
	if sc.PlanToHaveChildren && age >= sc.AgeFirstChild && s.childrenBorn < sc.NumberOfChildren {
		target := min((age-sc.AgeFirstChild)/2+1, sc.NumberOfChildren)
		if target > s.childrenBorn {
			s.childrenBorn = target
		}
	}

	exponent := decimal.NewFromInt(int64(year))
	inflationFactor := in.inflation.Pow(exponent)
	income := in.baseIncome.Mul(in.salaryGrowth.Pow(exponent))

	childCosts := in.assumptions.AnnualCostPerChild.Mul(decimal.NewFromInt(int64(s.childrenBorn)))
	livingScale := in.multipliers.Living.Mul(inflationFactor)
	livingExpenses := in.baseLivingCosts.Add(childCosts).Mul(livingScale)
	housingExpenses := s.monthlyHousing.Mul(twelve).Mul(inflationFactor)
	totalExpenses := livingExpenses.Add(housingExpenses)

	savings := decimal.Max(decimal.Zero, income.Sub(totalExpenses))
	gains := decimal.Zero
	if s.netWorth.IsPositive() {
		gains = s.netWorth.Mul(in.assumptions.InvestmentReturn)
	}
	s.netWorth = s.netWorth.Add(savings).Add(gains)

	return s, domain.YearSnapshot{
		Year:            year,
		Age:             age,
		NetWorth:        pkgdecimal.RoundWhole(s.netWorth),
		Income:          pkgdecimal.RoundWhole(income),
		Expenses:        pkgdecimal.RoundWhole(totalExpenses),
		Savings:         pkgdecimal.RoundWhole(savings),
		Married:         in.married,
		Partnered:       in.partnered,
		Children:        s.childrenBorn,
		HomeOwner:       s.ownsHome,
		HousingExpenses: pkgdecimal.RoundWhole(housingExpenses),
		LivingExpenses:  pkgdecimal.RoundWhole(livingExpenses),
		ChildExpenses:   pkgdecimal.RoundWhole(childCosts.Mul(livingScale)),
	}
}
