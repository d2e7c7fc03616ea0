package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile holds the basic demographic details of the planner's user. Only Age
// takes part in the projection.
type Profile struct {
	Name      string    `yaml:"name" json:"name"`
	Age       int       `yaml:"age" json:"age"`
	Gender    Gender    `yaml:"gender" json:"gender"`
	LifeStage LifeStage `yaml:"life_stage" json:"life_stage"`
}

// Scenario is one set of financial assumptions fed into the projection.
// The engine never mutates a Scenario.
type Scenario struct {
	ID          string    `yaml:"id,omitempty" json:"id,omitempty"`
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `yaml:"created_at,omitempty" json:"created_at,omitempty"`

	CurrentIncome    decimal.Decimal `yaml:"current_income" json:"current_income"` // annual gross
	CurrentDebt      decimal.Decimal `yaml:"current_debt" json:"current_debt"`
	CurrentSavings   decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	MonthlyExpenses  decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"` // excludes housing
	SalaryGrowthRate decimal.Decimal `yaml:"salary_growth_rate" json:"salary_growth_rate"` // percent per year

	HousingStatus      HousingStatus   `yaml:"housing_status" json:"housing_status"`
	MonthlyRent        decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	HomePrice          decimal.Decimal `yaml:"home_price" json:"home_price"`
	DownPaymentPercent decimal.Decimal `yaml:"down_payment_percent" json:"down_payment_percent"`
	YearsUntilBuying   int             `yaml:"years_until_buying" json:"years_until_buying"`

	RelationshipStatus RelationshipStatus `yaml:"relationship_status" json:"relationship_status"`
	PartnerIncome      decimal.Decimal    `yaml:"partner_income" json:"partner_income"`

	PlanToHaveChildren bool `yaml:"plan_to_have_children" json:"plan_to_have_children"`
	NumberOfChildren   int  `yaml:"number_of_children" json:"number_of_children"`
	AgeFirstChild      int  `yaml:"age_first_child" json:"age_first_child"`

	LocationCost LocationCost `yaml:"location_cost" json:"location_cost"`
}

// Configuration is the top-level input file: one profile and the scenarios
// to project for it.
type Configuration struct {
	Profile     Profile              `yaml:"profile" json:"profile"`
	Assumptions *AssumptionOverrides `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
	Scenarios   []Scenario           `yaml:"scenarios" json:"scenarios"`
}

// EffectiveAssumptions returns the defaults with the configured overrides applied.
func (c *Configuration) EffectiveAssumptions() Assumptions {
	return c.Assumptions.Resolve()
}

// FindScenario returns the scenario with the given name or ID.
func (c *Configuration) FindScenario(nameOrID string) (*Scenario, error) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == nameOrID || (c.Scenarios[i].ID != "" && c.Scenarios[i].ID == nameOrID) {
			return &c.Scenarios[i], nil
		}
	}
	return nil, ErrScenarioNotFound
}
