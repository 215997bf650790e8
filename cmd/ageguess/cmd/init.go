package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/ageguess/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ageguess configuration",
	Long: `Write a default config.yaml to your config directory.

The file sets:
  - endpoint     (age prediction API base URL)
  - type_delay   (pause before the result starts typing)
  - type_speed   (time per revealed character)

Every setting can also be overridden with AGEGUESS_<NAME> environment variables.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.Save(configDir, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
