package main

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/lifeplan/planner/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE:  runSettingsInit,
}

func init() {
	settingsCmd.AddCommand(settingsInitCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	path := flagSettings
	if path == "" {
		path = config.SettingsPath()
	}
	printf(cmd, "# %s\n", path)
	return toml.NewEncoder(cmd.OutOrStdout()).Encode(settings)
}

func runSettingsInit(cmd *cobra.Command, _ []string) error {
	path := flagSettings
	if path == "" {
		path = config.SettingsPath()
	}
	if err := config.SaveSettings(path, config.DefaultSettings()); err != nil {
		return err
	}
	printf(cmd, "Settings written to %s\n", path)
	return nil
}
