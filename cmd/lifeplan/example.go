package main

import (
	"github.com/spf13/cobra"

	"github.com/lifeplan/planner/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example [config.yaml]",
	Short: "Write an example configuration with three scenarios",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

var validateCmd = &cobra.Command{
	Use:   "validate <config.yaml>",
	Short: "Check a configuration file without running it",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(validateCmd)
}

func runExample(cmd *cobra.Command, args []string) error {
	path := "example_config.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	parser := config.NewInputParser()
	if err := parser.SaveConfiguration(path, parser.CreateExampleConfiguration()); err != nil {
		return err
	}
	printf(cmd, "Example configuration written to %s\n", path)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(args[0])
	if err != nil {
		return err
	}
	printf(cmd, "%s is valid: %d scenarios for %s\n", args[0], len(cfg.Scenarios), cfg.Profile.Name)
	return nil
}
