package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/lifeplan/planner/internal/calculation"
	"github.com/lifeplan/planner/internal/config"
)

// Prints every scenario's net worth, savings and housing cost side by side,
// one CSV row per projection year.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_projection <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngineWithAssumptions(cfg.EffectiveAssumptions())
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	// All scenarios share the projection length
	years := len(res.Scenarios[0].Projection)

	header := "Year,Age"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_NetWorth,S%d_Savings,S%d_Housing,S%d_Owner", i+1, i+1, i+1, i+1)
	}
	fmt.Println(header)

	for idx := 0; idx < years; idx++ {
		row := fmt.Sprintf("%d,%d", idx, res.Scenarios[0].Projection[idx].Age)
		for sidx := range res.Scenarios {
			y := res.Scenarios[sidx].Projection[idx]
			row += fmt.Sprintf(",%s,%s,%s,%t", y.NetWorth.StringFixed(0), y.Savings.StringFixed(0), y.HousingExpenses.StringFixed(0), y.HomeOwner)
		}
		fmt.Println(row)
	}

	for i, s := range res.Scenarios {
		fmt.Printf("# S%d %s: final %s, peak %s at %d, readiness %d%% (%s)\n", i+1, s.Name,
			s.FinalNetWorth.StringFixed(0), s.PeakNetWorth.StringFixed(0), s.PeakNetWorthAge,
			s.Metrics.RetirementReadiness.ReadinessPercent, s.Metrics.RetirementReadiness.Grade)
	}
}
