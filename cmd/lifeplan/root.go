package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifeplan/planner/internal/calculation"
	"github.com/lifeplan/planner/internal/cli"
	"github.com/lifeplan/planner/internal/config"
	"github.com/lifeplan/planner/internal/domain"
)

var (
	flagDebug    bool
	flagSettings string
	flagEnvFile  string

	settings config.Settings
	logger   *cli.ConsoleLogger
)

var rootCmd = &cobra.Command{
	Use:   "lifeplan",
	Short: "Personal financial projection planner",
	Long: "Project income, expenses, savings and net worth year by year across\n" +
		"life scenarios (renting vs buying, partners, children, location) and\n" +
		"compare them with cash flow, emergency fund and retirement metrics.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log life events and request details")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Settings file (default "+config.SettingsPath()+")")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file with LIFEPLAN_* overrides")
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return err
	}
	s, err := config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}
	if flagDebug {
		s.Debug = true
	}
	settings = s
	logger = cli.NewWriterLogger(cmd.ErrOrStderr(), s.Debug)
	return nil
}

// newEngine returns an engine wired to the command logger. Assumptions set
// in the configuration file override the defaults field by field.
func newEngine(cfg *domain.Configuration) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if cfg != nil && cfg.Assumptions != nil {
		engine = calculation.NewCalculationEngineWithAssumptions(cfg.EffectiveAssumptions())
	}
	engine.Debug = settings.Debug
	engine.SetLogger(logger)
	return engine
}

// loadConfiguration reads and validates a YAML configuration file.
func loadConfiguration(path string) (*domain.Configuration, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("loaded %s: %d scenarios for %s (age %d)", path, len(cfg.Scenarios), cfg.Profile.Name, cfg.Profile.Age)
	return cfg, nil
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
