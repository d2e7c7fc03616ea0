package calculation

import (
	"context"
	"fmt"

	"github.com/lifeplan/planner/internal/domain"
)

// CalculationEngine runs projections and metrics for scenarios under one set
// of assumptions. It holds no per-run state, so a single engine may serve
// concurrent callers.
type CalculationEngine struct {
	Assumptions domain.Assumptions
	Debug       bool // log life events and yearly figures
	Logger      Logger
}

// NewCalculationEngine creates an engine using the standard assumptions.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewCalculationEngineWithAssumptions creates an engine with custom assumptions,
// typically DefaultAssumptions with overrides applied.
func NewCalculationEngineWithAssumptions(assumptions domain.Assumptions) *CalculationEngine {
	return &CalculationEngine{
		Assumptions: assumptions,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// RunScenario projects a single scenario for the profile and derives its metrics.
func (ce *CalculationEngine) RunScenario(ctx context.Context, profile *domain.Profile, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if profile == nil || scenario == nil {
		return nil, fmt.Errorf("%w: profile and scenario are required", domain.ErrInvalidConfiguration)
	}

	projection, err := ProjectWith(ce.Assumptions, scenario, profile.Age)
	if err != nil {
		return nil, fmt.Errorf("projection for %q failed: %w", scenario.Name, err)
	}
	metrics, err := DeriveMetricsWith(ce.Assumptions, projection, scenario)
	if err != nil {
		return nil, fmt.Errorf("metrics for %q failed: %w", scenario.Name, err)
	}

	summary := summarize(scenario, projection, metrics)
	if ce.Debug {
		ce.logLifeEvents(scenario, projection)
	}
	ce.logger().Infof("scenario %q: final net worth %s at age %d, readiness %d%% (%s)",
		summary.Name, summary.FinalNetWorth.StringFixed(0), summary.FinalAge,
		metrics.RetirementReadiness.ReadinessPercent, metrics.RetirementReadiness.Grade)
	return summary, nil
}

// RunScenarios runs every scenario of the configuration for its profile and
// returns a comparison. Scenarios are independent of one another.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if config == nil || len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: at least one scenario is required", domain.ErrInvalidConfiguration)
	}

	comparison := &domain.ScenarioComparison{
		Profile:     config.Profile,
		Scenarios:   make([]domain.ScenarioSummary, 0, len(config.Scenarios)),
		Assumptions: ce.Assumptions.Describe(),
	}
	for i := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, &config.Profile, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		comparison.Scenarios = append(comparison.Scenarios, *summary)
	}

	rankScenarios(comparison)
	return comparison, nil
}

func (ce *CalculationEngine) logLifeEvents(scenario *domain.Scenario, projection []domain.YearSnapshot) {
	log := ce.logger()
	log.Debugf("PROJECTION %q (%d years)", scenario.Name, len(projection))
	prevChildren := 0
	prevOwner := scenario.HousingStatus == domain.HousingOwns
	for _, year := range projection {
		if year.HomeOwner && !prevOwner {
			log.Debugf("  age %d: home purchased, housing now $%s/yr", year.Age, year.HousingExpenses.StringFixed(0))
		}
		if year.Children > prevChildren {
			log.Debugf("  age %d: children %d -> %d", year.Age, prevChildren, year.Children)
		}
		if year.IsShortfall() {
			log.Debugf("  age %d: shortfall of $%s", year.Age, year.Expenses.Sub(year.Income).StringFixed(0))
		}
		prevChildren = year.Children
		prevOwner = year.HomeOwner
	}
}
