package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lifeplan/planner/internal/config"
	"github.com/lifeplan/planner/internal/domain"
)

var newCmd = &cobra.Command{
	Use:   "new <config.yaml>",
	Short: "Add a scenario to a configuration with an interactive form",
	Long: "Walk through the planner form and append the scenario to the file.\n" +
		"The file is created, with a profile, when it does not exist yet.",
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

// scenarioForm holds the raw form values; money fields are parsed on submit.
type scenarioForm struct {
	name, income, debt, savings, expenses, growth string
	housing, rent, price, downPayment, yearsToBuy string
	relationship, partnerIncome                   string
	children                                      bool
	numChildren, firstChildAge                    string
	location                                      string
}

func newScenarioForm() *scenarioForm {
	d := config.DefaultScenario()
	return &scenarioForm{
		name:          d.Name,
		income:        d.CurrentIncome.String(),
		debt:          d.CurrentDebt.String(),
		savings:       d.CurrentSavings.String(),
		expenses:      d.MonthlyExpenses.String(),
		growth:        d.SalaryGrowthRate.String(),
		housing:       string(d.HousingStatus),
		rent:          d.MonthlyRent.String(),
		price:         d.HomePrice.String(),
		downPayment:   d.DownPaymentPercent.String(),
		yearsToBuy:    strconv.Itoa(d.YearsUntilBuying),
		relationship:  string(d.RelationshipStatus),
		partnerIncome: d.PartnerIncome.String(),
		numChildren:   strconv.Itoa(d.NumberOfChildren),
		firstChildAge: strconv.Itoa(d.AgeFirstChild),
		location:      string(d.LocationCost),
	}
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		cfg = &domain.Configuration{}
		if err := askProfile(&cfg.Profile); err != nil {
			return err
		}
	}

	f := newScenarioForm()
	if err := runForm(f.groups()...); err != nil {
		return err
	}
	scenario, err := f.scenario()
	if err != nil {
		return err
	}

	cfg.Scenarios = append(cfg.Scenarios, scenario)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return err
	}
	if err := parser.SaveConfiguration(path, cfg); err != nil {
		return err
	}
	printf(cmd, "Added %q to %s (%d scenarios)\n", scenario.Name, path, len(cfg.Scenarios))
	return nil
}

func runForm(groups ...*huh.Group) error {
	return huh.NewForm(groups...).
		WithTheme(huh.ThemeCharm()).
		WithAccessible(os.Getenv("ACCESSIBLE") != "").
		Run()
}

func askProfile(p *domain.Profile) error {
	age := "25"
	gender := string(domain.GenderPreferNotToSay)
	stage := string(domain.LifeStageEarlyCareer)
	err := runForm(huh.NewGroup(
		huh.NewInput().Title("Your name").Value(&p.Name).Validate(required),
		huh.NewInput().Title("Current age").Value(&age).Validate(intBetween(config.MinAge, config.MaxAge)),
		huh.NewSelect[string]().Title("Gender").Options(enumOptions(domain.Genders)...).Value(&gender),
		huh.NewSelect[string]().Title("Life stage").Options(enumOptions(domain.LifeStages)...).Value(&stage),
	).Title("About you"))
	if err != nil {
		return err
	}
	p.Age, _ = strconv.Atoi(strings.TrimSpace(age))
	p.Gender = domain.Gender(gender)
	p.LifeStage = domain.LifeStage(stage)
	return nil
}

func (f *scenarioForm) groups() []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Scenario name").Value(&f.name).Validate(required),
			huh.NewInput().Title("Annual income").Value(&f.income).Validate(money),
			huh.NewInput().Title("Current debt").Value(&f.debt).Validate(money),
			huh.NewInput().Title("Current savings").Value(&f.savings).Validate(money),
			huh.NewInput().Title("Monthly expenses (excluding housing)").Value(&f.expenses).Validate(money),
			huh.NewInput().Title("Salary growth, % per year").Value(&f.growth).Validate(percentUpTo(config.MaxSalaryGrowthRate)),
		).Title("Finances"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Housing").Options(enumOptions(domain.HousingStatuses)...).Value(&f.housing),
			huh.NewInput().Title("Monthly rent").Value(&f.rent).Validate(money),
			huh.NewInput().Title("Home price").Value(&f.price).Validate(money),
			huh.NewInput().Title("Down payment, %").Value(&f.downPayment).Validate(percentUpTo(100)),
			huh.NewInput().Title("Years until buying").Value(&f.yearsToBuy).Validate(intBetween(0, 100)),
		).Title("Housing"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Relationship").Options(enumOptions(domain.RelationshipStatuses)...).Value(&f.relationship),
			huh.NewInput().Title("Partner income").Value(&f.partnerIncome).Validate(money),
			huh.NewConfirm().Title("Plan to have children?").Value(&f.children),
			huh.NewInput().Title("Number of children").Value(&f.numChildren).Validate(intBetween(0, 20)),
			huh.NewInput().Title("Your age at first child").Value(&f.firstChildAge).Validate(intBetween(config.MinAge, config.MaxAge)),
			huh.NewSelect[string]().Title("Cost of living").Options(enumOptions(domain.LocationCosts)...).Value(&f.location),
		).Title("Life"),
	}
}

// scenario converts the validated form values.
func (f *scenarioForm) scenario() (domain.Scenario, error) {
	var errs []error
	dec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		errs = append(errs, err)
		return d
	}
	atoi := func(s string) int {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		errs = append(errs, err)
		return n
	}

	sc := domain.Scenario{
		Name:               strings.TrimSpace(f.name),
		CurrentIncome:      dec(f.income),
		CurrentDebt:        dec(f.debt),
		CurrentSavings:     dec(f.savings),
		MonthlyExpenses:    dec(f.expenses),
		SalaryGrowthRate:   dec(f.growth),
		HousingStatus:      domain.HousingStatus(f.housing),
		MonthlyRent:        dec(f.rent),
		HomePrice:          dec(f.price),
		DownPaymentPercent: dec(f.downPayment),
		YearsUntilBuying:   atoi(f.yearsToBuy),
		RelationshipStatus: domain.RelationshipStatus(f.relationship),
		PartnerIncome:      dec(f.partnerIncome),
		PlanToHaveChildren: f.children,
		NumberOfChildren:   atoi(f.numChildren),
		AgeFirstChild:      atoi(f.firstChildAge),
		LocationCost:       domain.LocationCost(f.location),
	}
	if err := errors.Join(errs...); err != nil {
		return sc, fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	return sc, nil
}

func enumOptions[T ~string](values []T) []huh.Option[string] {
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(strings.ReplaceAll(string(v), "_", " "), string(v))
	}
	return opts
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func money(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a number")
	}
	if d.IsNegative() {
		return errors.New("cannot be negative")
	}
	return nil
}

func percentUpTo(limit int) func(string) error {
	return func(s string) error {
		if err := money(s); err != nil {
			return err
		}
		d, _ := decimal.NewFromString(strings.TrimSpace(s))
		if d.GreaterThan(decimal.NewFromInt(int64(limit))) {
			return fmt.Errorf("at most %d%%", limit)
		}
		return nil
	}
}

func intBetween(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < lo || n > hi {
			return fmt.Errorf("enter a whole number between %d and %d", lo, hi)
		}
		return nil
	}
}
