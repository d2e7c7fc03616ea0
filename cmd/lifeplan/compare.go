package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifeplan/planner/internal/domain"
	"github.com/lifeplan/planner/internal/output"
)

var (
	flagFormat    string
	flagOutputDir string
	flagScenario  string
)

var compareCmd = &cobra.Command{
	Use:   "compare <config.yaml>",
	Short: "Project every scenario in a configuration and compare them",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompare,
}

var projectCmd = &cobra.Command{
	Use:   "project <config.yaml>",
	Short: "Show the year-by-year projection for one scenario",
	Long: "Project a single scenario and print every year with its metrics.\n" +
		"Without --scenario the first scenario in the file is used.",
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

func init() {
	for _, c := range []*cobra.Command{compareCmd, projectCmd} {
		c.Flags().StringVarP(&flagFormat, "format", "f", "", fmt.Sprintf("Report format %v or \"all\"", output.AvailableFormatterNames()))
		c.Flags().StringVarP(&flagOutputDir, "output", "o", "", "Directory for file reports (default from settings)")
		rootCmd.AddCommand(c)
	}
	projectCmd.Flags().StringVarP(&flagScenario, "scenario", "s", "", "Scenario name or ID")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(args[0])
	if err != nil {
		return err
	}
	return report(cmd, cfg, flagFormat)
}

func runProject(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(args[0])
	if err != nil {
		return err
	}
	scenario := &cfg.Scenarios[0]
	if flagScenario != "" {
		if scenario, err = cfg.FindScenario(flagScenario); err != nil {
			return fmt.Errorf("%w: %q in %s", err, flagScenario, args[0])
		}
	}
	cfg.Scenarios = []domain.Scenario{*scenario}

	format := flagFormat
	if format == "" {
		format = "console-verbose"
	}
	return report(cmd, cfg, format)
}

// report runs the configuration and either prints the console formats or
// writes a file report into the output directory.
func report(cmd *cobra.Command, cfg *domain.Configuration, format string) error {
	results, err := newEngine(cfg).RunScenarios(context.Background(), cfg)
	if err != nil {
		return err
	}

	if format == "" {
		format = settings.Report.Format
	}
	switch output.NormalizeFormatName(format) {
	case "console", "console-verbose":
		out, err := output.Render(results, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	dir := flagOutputDir
	if dir == "" {
		dir = settings.Report.OutputDir
	}
	path, err := output.GenerateReport(results, format, dir)
	if err != nil {
		return err
	}
	rec := output.AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		logger.Infof("best plan: %s (grade %s, %d%% ready)", rec.ScenarioName, rec.Grade, rec.ReadinessPercent)
	}
	printf(cmd, "Report written to %s\n", path)
	return nil
}
