package calculation

import (
	"testing"

	"github.com/lifeplan/planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// baseScenario mirrors the planner's default form values.
func baseScenario() *domain.Scenario {
	return &domain.Scenario{
		Name:               "Base",
		CurrentIncome:      dec(50000),
		CurrentDebt:        dec(0),
		CurrentSavings:     dec(5000),
		MonthlyExpenses:    dec(3000),
		SalaryGrowthRate:   dec(3),
		HousingStatus:      domain.HousingRenting,
		MonthlyRent:        dec(1500),
		HomePrice:          dec(300000),
		DownPaymentPercent: dec(20),
		YearsUntilBuying:   3,
		RelationshipStatus: domain.RelationshipSingle,
		PartnerIncome:      dec(0),
		AgeFirstChild:      30,
		LocationCost:       domain.LocationAverage,
	}
}

func assertDecimal(t *testing.T, expected int64, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, actual.Equal(dec(expected)), "expected %d, got %s %v", expected, actual.String(), msgAndArgs)
}

func TestProject_FirstYearOfBaseScenario(t *testing.T) {
	projection, err := Project(baseScenario(), &domain.Profile{Name: "Sam", Age: 25})
	require.NoError(t, err)
	require.Len(t, projection, 45)

	y0 := projection[0]
	assert.Equal(t, 0, y0.Year)
	assert.Equal(t, 25, y0.Age)
	assertDecimal(t, 50000, y0.Income)
	assertDecimal(t, 18000, y0.HousingExpenses)
	assertDecimal(t, 36000, y0.LivingExpenses)
	assertDecimal(t, 54000, y0.Expenses)
	assertDecimal(t, 0, y0.Savings)
	assertDecimal(t, 5350, y0.NetWorth)
	assert.False(t, y0.HomeOwner)
	assert.Equal(t, 69, projection[44].Age)
}

func TestProject_CompoundingAndRounding(t *testing.T) {
	projection, err := Project(baseScenario(), &domain.Profile{Age: 25})
	require.NoError(t, err)

	// 5350 * 1.07 = 5724.5 rounds half up
	assertDecimal(t, 5725, projection[1].NetWorth)
	assertDecimal(t, 51500, projection[1].Income)
	assertDecimal(t, 55350, projection[1].Expenses)

	// Running state is not rounded between years: 5724.5 * 1.07 = 6125.215
	assertDecimal(t, 6125, projection[2].NetWorth)
}

func TestProject_HousePurchase(t *testing.T) {
	projection, err := Project(baseScenario(), &domain.Profile{Age: 25})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.False(t, projection[i].HomeOwner, "year %d", i)
	}
	y3 := projection[3]
	assert.True(t, y3.HomeOwner)
	// (300000 - 60000) * 0.055 = 13200 a year, inflated three years
	assertDecimal(t, 14215, y3.HousingExpenses)
	assertDecimal(t, 38768, y3.LivingExpenses)
	assertDecimal(t, 52983, y3.Expenses)
	assertDecimal(t, 54636, y3.Income)
	assertDecimal(t, 1653, y3.Savings)
	// Down payment pushes net worth negative and stops investment gains.
	assertDecimal(t, -52221, y3.NetWorth)

	transitions := 0
	for i := 1; i < len(projection); i++ {
		assert.True(t, projection[i].HomeOwner || !projection[i-1].HomeOwner, "ownership never reverts")
		if projection[i].HomeOwner && !projection[i-1].HomeOwner {
			transitions++
		}
	}
	assert.Equal(t, 1, transitions)
}

func TestProject_BuyImmediately(t *testing.T) {
	scenario := baseScenario()
	scenario.YearsUntilBuying = 0
	scenario.DownPaymentPercent = dec(100)
	scenario.CurrentSavings = dec(400000)

	projection, err := Project(scenario, &domain.Profile{Age: 30})
	require.NoError(t, err)
	assert.True(t, projection[0].HomeOwner)
	assertDecimal(t, 0, projection[0].HousingExpenses)
	// 100000 after the down payment, plus 14000 saved and 7000 gains
	assertDecimal(t, 121000, projection[0].NetWorth)
}

func TestProject_HousingStatuses(t *testing.T) {
	t.Run("owns", func(t *testing.T) {
		scenario := baseScenario()
		scenario.HousingStatus = domain.HousingOwns
		projection, err := Project(scenario, &domain.Profile{Age: 40})
		require.NoError(t, err)
		// 300000 * 0.004 monthly
		assertDecimal(t, 14400, projection[0].HousingExpenses)
		for _, y := range projection {
			assert.True(t, y.HomeOwner)
		}
	})

	t.Run("living with family never buys", func(t *testing.T) {
		scenario := baseScenario()
		scenario.HousingStatus = domain.HousingLivingWithFamily
		projection, err := Project(scenario, &domain.Profile{Age: 18})
		require.NoError(t, err)
		for _, y := range projection {
			assert.False(t, y.HomeOwner)
			assertDecimal(t, 0, y.HousingExpenses)
		}
	})
}

func TestProject_PartnerAndLocation(t *testing.T) {
	scenario := baseScenario()
	scenario.RelationshipStatus = domain.RelationshipMarried
	scenario.PartnerIncome = dec(40000)
	scenario.LocationCost = domain.LocationHigh

	projection, err := Project(scenario, &domain.Profile{Age: 35})
	require.NoError(t, err)
	y0 := projection[0]
	assertDecimal(t, 117000, y0.Income)
	assertDecimal(t, 32400, y0.HousingExpenses) // 1500 * 1.8 * 12
	assertDecimal(t, 46800, y0.LivingExpenses)  // 36000 * 1.3
	assert.True(t, y0.Married)
	assert.True(t, y0.Partnered)

	// Partner income is ignored when single.
	scenario.RelationshipStatus = domain.RelationshipSingle
	projection, err = Project(scenario, &domain.Profile{Age: 35})
	require.NoError(t, err)
	assertDecimal(t, 65000, projection[0].Income)
	assert.False(t, projection[0].Partnered)
}

func TestProject_ChildrenArriveEveryTwoYears(t *testing.T) {
	scenario := baseScenario()
	scenario.PlanToHaveChildren = true
	scenario.NumberOfChildren = 3
	scenario.AgeFirstChild = 30

	projection, err := Project(scenario, &domain.Profile{Age: 28})
	require.NoError(t, err)

	expected := map[int]int{28: 0, 29: 0, 30: 1, 31: 1, 32: 2, 33: 2, 34: 3, 40: 3, 72: 3}
	for _, y := range projection {
		if want, ok := expected[y.Age]; ok {
			assert.Equal(t, want, y.Children, "age %d", y.Age)
		}
	}
	for i := 1; i < len(projection); i++ {
		assert.GreaterOrEqual(t, projection[i].Children, projection[i-1].Children)
		assert.LessOrEqual(t, projection[i].Children, 3)
	}

	// Child costs are part of living expenses: year 2 is age 30, one child.
	y2 := projection[2]
	inflation := decimal.NewFromFloat(1.025).Pow(dec(2))
	assert.True(t, y2.ChildExpenses.Equal(dec(12000).Mul(inflation).Add(decimal.NewFromFloat(0.5)).Floor()))
	assert.True(t, y2.LivingExpenses.GreaterThan(y2.ChildExpenses))
}

func TestProject_StartingPastFirstChildAge(t *testing.T) {
	scenario := baseScenario()
	scenario.PlanToHaveChildren = true
	scenario.NumberOfChildren = 2
	scenario.AgeFirstChild = 20

	projection, err := Project(scenario, &domain.Profile{Age: 40})
	require.NoError(t, err)
	assert.Equal(t, 2, projection[0].Children)
}

func TestProject_Invariants(t *testing.T) {
	scenario := baseScenario()
	scenario.CurrentDebt = dec(80000)
	scenario.MonthlyExpenses = dec(6000)

	projection, err := Project(scenario, &domain.Profile{Age: 22})
	require.NoError(t, err)
	require.Len(t, projection, 45)
	for i, y := range projection {
		assert.Equal(t, i, y.Year)
		assert.Equal(t, 22+i, y.Age)
		assert.False(t, y.Savings.IsNegative(), "savings never negative")
		assert.True(t, y.Expenses.Sub(y.HousingExpenses.Add(y.LivingExpenses)).Abs().LessThanOrEqual(dec(1)))
	}
}

func TestProject_Deterministic(t *testing.T) {
	scenario := baseScenario()
	scenario.PlanToHaveChildren = true
	scenario.NumberOfChildren = 2
	first, err := Project(scenario, &domain.Profile{Age: 27})
	require.NoError(t, err)
	second, err := Project(scenario, &domain.Profile{Age: 27})
	require.NoError(t, err)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].NetWorth.Equal(second[i].NetWorth))
		assert.True(t, first[i].Expenses.Equal(second[i].Expenses))
	}
}

func TestProjectWith_CustomAssumptions(t *testing.T) {
	a := domain.DefaultAssumptions()
	a.ProjectionYears = 10
	projection, err := ProjectWith(a, baseScenario(), 30)
	require.NoError(t, err)
	assert.Len(t, projection, 10)
	assertDecimal(t, 5350, projection[0].NetWorth)

	a.ProjectionYears = 0
	_, err = ProjectWith(a, baseScenario(), 30)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestProjectWith_ZeroReturnAndInflation(t *testing.T) {
	a := domain.DefaultAssumptions()
	a.ProjectionYears = 3
	a.InvestmentReturn = decimal.Zero
	a.InflationRate = decimal.Zero

	projection, err := ProjectWith(a, baseScenario(), 30)
	require.NoError(t, err)
	// No gains and shortfall years: net worth stays at the starting savings.
	assertDecimal(t, 5000, projection[0].NetWorth)
	// No inflation: year 1 costs equal year 0 costs.
	assertDecimal(t, 18000, projection[1].HousingExpenses)
	assertDecimal(t, 36000, projection[1].LivingExpenses)
}

func TestProject_RejectsUnknownEnums(t *testing.T) {
	profile := &domain.Profile{Age: 30}

	scenario := baseScenario()
	scenario.LocationCost = "moon"
	_, err := Project(scenario, profile)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	scenario = baseScenario()
	scenario.HousingStatus = "boat"
	_, err = Project(scenario, profile)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	scenario = baseScenario()
	scenario.RelationshipStatus = "complicated"
	_, err = Project(scenario, profile)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = Project(nil, profile)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	_, err = Project(baseScenario(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
