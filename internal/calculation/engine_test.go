package calculation

import (
	"context"
	"fmt"
	"testing"

	"github.com/lifeplan/planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	debug []string
	info  []string
}

func (r *recordingLogger) Debugf(format string, args ...any) {
	r.debug = append(r.debug, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Infof(format string, args ...any) {
	r.info = append(r.info, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Warnf(format string, args ...any)  {}
func (r *recordingLogger) Errorf(format string, args ...any) {}

func comparisonConfig() *domain.Configuration {
	renter := *baseScenario()
	renter.Name = "Keep Renting"
	renter.YearsUntilBuying = 100

	buyer := *baseScenario()
	buyer.Name = "Buy Soon"
	buyer.ID = "buy-soon"
	buyer.CurrentIncome = dec(90000)

	family := *baseScenario()
	family.Name = "Family"
	family.PlanToHaveChildren = true
	family.NumberOfChildren = 2

	return &domain.Configuration{
		Profile:   domain.Profile{Name: "Sam", Age: 28},
		Scenarios: []domain.Scenario{renter, buyer, family},
	}
}

func TestRunScenario_Summary(t *testing.T) {
	engine := NewCalculationEngine()
	scenario := baseScenario()
	summary, err := engine.RunScenario(context.Background(), &domain.Profile{Age: 25}, scenario)
	require.NoError(t, err)

	assert.Equal(t, "Base", summary.Name)
	assert.Len(t, summary.Projection, 45)
	assert.Len(t, summary.Metrics.CashFlowAnalysis, 45)
	assert.Equal(t, 69, summary.FinalAge)
	assert.True(t, summary.FinalNetWorth.Equal(summary.Projection[44].NetWorth))
	assert.Equal(t, 28, summary.HomePurchaseAge)
	assert.Equal(t, 3, summary.ShortfallYears)

	for _, y := range summary.Projection {
		assert.True(t, summary.PeakNetWorth.GreaterThanOrEqual(y.NetWorth))
	}
}

func TestRunScenario_PeakKeepsEarliestAge(t *testing.T) {
	scenario := baseScenario()
	projection := []domain.YearSnapshot{
		snapshot(30, 1, 1, 0, 100),
		snapshot(31, 1, 1, 0, 300),
		snapshot(32, 1, 1, 0, 300),
		snapshot(33, 1, 1, 0, 200),
	}
	metrics, err := DeriveMetrics(projection, scenario)
	require.NoError(t, err)
	summary := summarize(scenario, projection, metrics)
	assert.Equal(t, 31, summary.PeakNetWorthAge)
	assertDecimal(t, 300, summary.PeakNetWorth)
	assert.Equal(t, 0, summary.HomePurchaseAge)
}

func TestRunScenario_Errors(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.RunScenario(context.Background(), nil, baseScenario())
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	bad := baseScenario()
	bad.LocationCost = "nowhere"
	_, err = engine.RunScenario(context.Background(), &domain.Profile{Age: 30}, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.RunScenario(ctx, &domain.Profile{Age: 30}, baseScenario())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunScenarios_Comparison(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := comparisonConfig()

	comparison, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, comparison.Scenarios, 3)
	assert.Equal(t, "Sam", comparison.Profile.Name)
	assert.Equal(t, "Buy Soon", comparison.BestForNetWorth)
	assert.Equal(t, "Buy Soon", comparison.BestForReadiness)
	assert.Equal(t, "buy-soon", comparison.BestForNetWorthID)
	assert.Equal(t, "buy-soon", comparison.BestForReadinessID)
	assert.Equal(t, "buy-soon", comparison.Scenarios[1].ScenarioID)
	assert.Equal(t, 0, comparison.Scenarios[0].HomePurchaseAge)
	assert.NotEmpty(t, comparison.Assumptions)

	// Each scenario's result is the same as running it alone.
	for i := range cfg.Scenarios {
		alone, err := engine.RunScenario(context.Background(), &cfg.Profile, &cfg.Scenarios[i])
		require.NoError(t, err)
		in := comparison.Scenarios[i]
		assert.True(t, alone.FinalNetWorth.Equal(in.FinalNetWorth), cfg.Scenarios[i].Name)
		assert.Equal(t, alone.Metrics.RetirementReadiness, in.Metrics.RetirementReadiness)
	}
}

func TestRunScenarios_SameNameRankedByID(t *testing.T) {
	cfg := comparisonConfig()
	cfg.Scenarios[0].ID = "renter"
	cfg.Scenarios[2].ID = "family"
	for i := range cfg.Scenarios {
		cfg.Scenarios[i].Name = "Plan"
	}

	comparison, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "Plan", comparison.BestForNetWorth)
	assert.Equal(t, "buy-soon", comparison.BestForNetWorthID)
	assert.Equal(t, "buy-soon", comparison.BestForReadinessID)
}

func TestRunScenarios_RequiresScenarios(t *testing.T) {
	_, err := NewCalculationEngine().RunScenarios(context.Background(), &domain.Configuration{})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestRunScenarios_StopsOnFirstError(t *testing.T) {
	cfg := comparisonConfig()
	cfg.Scenarios[1].HousingStatus = "tent"
	_, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Buy Soon")
}

func TestCalculationEngine_DebugLogging(t *testing.T) {
	engine := NewCalculationEngine()
	log := &recordingLogger{}
	engine.SetLogger(log)
	engine.Debug = true

	scenario := baseScenario()
	scenario.PlanToHaveChildren = true
	scenario.NumberOfChildren = 1
	_, err := engine.RunScenario(context.Background(), &domain.Profile{Age: 28}, scenario)
	require.NoError(t, err)

	assert.Len(t, log.info, 1)
	joined := fmt.Sprint(log.debug)
	assert.Contains(t, joined, "age 31: home purchased")
	assert.Contains(t, joined, "age 30: children 0 -> 1")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestNewCalculationEngineWithAssumptions(t *testing.T) {
	a := domain.DefaultAssumptions()
	a.ProjectionYears = 5
	engine := NewCalculationEngineWithAssumptions(a)
	summary, err := engine.RunScenario(context.Background(), &domain.Profile{Age: 50}, baseScenario())
	require.NoError(t, err)
	assert.Len(t, summary.Projection, 5)
	assert.Equal(t, 54, summary.FinalAge)
	assert.Equal(t, 65, summary.Metrics.RetirementReadiness.RetirementAge)
}
