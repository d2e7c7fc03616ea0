package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/lifeplan/planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Accepted input ranges.
const (
	MinAge              = 16
	MaxAge              = 75
	MaxSalaryGrowthRate = 15
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML configuration document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// SaveConfiguration writes the configuration back as YAML.
func (ip *InputParser) SaveConfiguration(filename string, config *domain.Configuration) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateConfiguration validates a configuration file. Scenario names
// label rows in reports, so a file may not repeat one.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateComparison(config); err != nil {
		return err
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for _, scenario := range config.Scenarios {
		if seen[scenario.Name] {
			return fmt.Errorf("%w: duplicate scenario name %q", domain.ErrInvalidConfiguration, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// ValidateComparison validates the profile, the overrides and every
// scenario. Session scenarios are keyed by ID and may share a name.
func (ip *InputParser) ValidateComparison(config *domain.Configuration) error {
	if err := ip.ValidateProfile(&config.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if config.Assumptions != nil {
		if err := ip.ValidateAssumptions(config.Assumptions); err != nil {
			return fmt.Errorf("assumptions validation failed: %w", err)
		}
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios provided", domain.ErrInvalidConfiguration)
	}

	for i := range config.Scenarios {
		if err := ip.ValidateScenario(&config.Scenarios[i]); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// ValidateProfile checks the demographic details. Gender and life stage are
// optional; when present they must be known values.
func (ip *InputParser) ValidateProfile(profile *domain.Profile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return invalid("name is required")
	}
	if profile.Age < MinAge || profile.Age > MaxAge {
		return invalid("age must be between %d and %d, got %d", MinAge, MaxAge, profile.Age)
	}
	if profile.Gender != "" && !profile.Gender.Valid() {
		return invalid("unknown gender %q", string(profile.Gender))
	}
	if profile.LifeStage != "" && !profile.LifeStage.Valid() {
		return invalid("unknown life stage %q", string(profile.LifeStage))
	}
	return nil
}

// ValidateScenario checks a scenario at the input boundary. The engine
// assumes inputs that passed here.
func (ip *InputParser) ValidateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return invalid("scenario name is required")
	}

	money := []struct {
		label string
		value decimal.Decimal
	}{
		{"current income", scenario.CurrentIncome},
		{"current debt", scenario.CurrentDebt},
		{"current savings", scenario.CurrentSavings},
		{"monthly expenses", scenario.MonthlyExpenses},
		{"monthly rent", scenario.MonthlyRent},
		{"home price", scenario.HomePrice},
		{"partner income", scenario.PartnerIncome},
	}
	for _, m := range money {
		if m.value.IsNegative() {
			return invalid("%s cannot be negative", m.label)
		}
	}

	if scenario.SalaryGrowthRate.IsNegative() || scenario.SalaryGrowthRate.GreaterThan(decimal.NewFromInt(MaxSalaryGrowthRate)) {
		return invalid("salary growth rate must be between 0 and %d percent", MaxSalaryGrowthRate)
	}
	if scenario.DownPaymentPercent.IsNegative() || scenario.DownPaymentPercent.GreaterThan(decimal.NewFromInt(100)) {
		return invalid("down payment percent must be between 0 and 100")
	}
	if scenario.YearsUntilBuying < 0 {
		return invalid("years until buying cannot be negative")
	}
	if scenario.NumberOfChildren < 0 {
		return invalid("number of children cannot be negative")
	}
	if scenario.PlanToHaveChildren && (scenario.AgeFirstChild < MinAge || scenario.AgeFirstChild > MaxAge) {
		return invalid("age at first child must be between %d and %d", MinAge, MaxAge)
	}

	if !scenario.HousingStatus.Valid() {
		return invalid("unknown housing status %q", string(scenario.HousingStatus))
	}
	if !scenario.RelationshipStatus.Valid() {
		return invalid("unknown relationship status %q", string(scenario.RelationshipStatus))
	}
	if !scenario.LocationCost.Valid() {
		return invalid("unknown location cost %q", string(scenario.LocationCost))
	}

	return nil
}

// ValidateAssumptions rejects overrides the model cannot use. Unset fields
// keep their defaults and are not checked; an explicit zero is a real value.
func (ip *InputParser) ValidateAssumptions(o *domain.AssumptionOverrides) error {
	if o.ProjectionYears != nil && (*o.ProjectionYears < 1 || *o.ProjectionYears > 100) {
		return invalid("projection years must be between 1 and 100, got %d", *o.ProjectionYears)
	}
	if r := o.InflationRate; r != nil && (r.LessThan(decimal.NewFromFloat(-0.10)) || r.GreaterThan(decimal.NewFromFloat(0.20))) {
		return invalid("inflation rate must be between -10%% and 20%%, got %s%%",
			r.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}
	if r := o.InvestmentReturn; r != nil && (r.LessThan(decimal.NewFromFloat(-0.50)) || r.GreaterThan(decimal.NewFromFloat(0.50))) {
		return invalid("investment return must be between -50%% and 50%%")
	}
	for _, d := range []*decimal.Decimal{o.AnnualCostPerChild, o.MortgageRate, o.OwnerMonthlyCostRate, o.RetirementMultiple} {
		if d != nil && d.IsNegative() {
			return invalid("cost and rate assumptions cannot be negative")
		}
	}
	for _, n := range []*int{o.RetirementAge, o.EmergencyFundTargetMonths, o.EmergencyFundCapMonths} {
		if n != nil && *n < 0 {
			return invalid("retirement age and emergency fund months cannot be negative")
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// DefaultScenario returns the planner's starting form values.
func DefaultScenario() domain.Scenario {
	return domain.Scenario{
		Name:               "My Plan",
		CurrentIncome:      decimal.NewFromInt(50000),
		CurrentDebt:        decimal.Zero,
		CurrentSavings:     decimal.NewFromInt(5000),
		MonthlyExpenses:    decimal.NewFromInt(3000),
		SalaryGrowthRate:   decimal.NewFromInt(3),
		HousingStatus:      domain.HousingRenting,
		MonthlyRent:        decimal.NewFromInt(1500),
		HomePrice:          decimal.NewFromInt(300000),
		DownPaymentPercent: decimal.NewFromInt(20),
		YearsUntilBuying:   3,
		RelationshipStatus: domain.RelationshipSingle,
		PartnerIncome:      decimal.Zero,
		PlanToHaveChildren: false,
		NumberOfChildren:   0,
		AgeFirstChild:      30,
		LocationCost:       domain.LocationAverage,
	}
}

// CreateExampleConfiguration creates an example configuration for testing
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	base := DefaultScenario()
	base.Name = "Rent Then Buy"
	base.Description = "Keep renting for three years, then buy with 20% down"

	renter := DefaultScenario()
	renter.Name = "Keep Renting"
	renter.Description = "Never buy; invest the difference"
	renter.YearsUntilBuying = 100

	family := DefaultScenario()
	family.Name = "Married With Kids"
	family.Description = "Married with a working partner and two children"
	family.RelationshipStatus = domain.RelationshipMarried
	family.PartnerIncome = decimal.NewFromInt(45000)
	family.PlanToHaveChildren = true
	family.NumberOfChildren = 2
	family.AgeFirstChild = 31
	family.MonthlyExpenses = decimal.NewFromInt(4000)
	family.HomePrice = decimal.NewFromInt(400000)

	return &domain.Configuration{
		Profile: domain.Profile{
			Name:      "Alex Example",
			Age:       28,
			Gender:    domain.GenderPreferNotToSay,
			LifeStage: domain.LifeStageEarlyCareer,
		},
		Scenarios: []domain.Scenario{base, renter, family},
	}
}
