// Package cmd contains all CLI commands for ageguess.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/ageguess/internal/agify"
	"github.com/f3rmion/ageguess/internal/config"
	"github.com/f3rmion/ageguess/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ageguess",
	Short: "Guess someone's age from their first name",
	Long: `ageguess asks the agify.io API how old people with a given first name
usually are.

Type a first name and press Enter. Only the first word is used.

Running 'ageguess' without arguments launches the interactive TUI.`,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/ageguess)")
	rootCmd.PersistentFlags().Bool("verbose", false, "write a debug log")
	rootCmd.PersistentFlags().String("endpoint", "", "age prediction API endpoint (default "+agify.DefaultEndpoint+")")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("AGEGUESS")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig reads config.yaml and applies environment and flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return config.Config{}, err
	}

	if endpoint := viper.GetString("endpoint"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if d := viper.GetDuration("type_delay"); d > 0 {
		cfg.TypeDelay = d
	}
	if d := viper.GetDuration("type_speed"); d > 0 {
		cfg.TypeSpeed = d
	}
	return cfg, nil
}

// runTUI launches the interactive TUI.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := setupTUILog()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	client := agify.NewClient(cfg.Endpoint)
	p := tea.NewProgram(
		tui.NewApp(client, cfg),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// setupTUILog sends the standard logger to a file in the config directory
// when --verbose is set. The terminal belongs to the TUI, so otherwise log
// output is discarded.
func setupTUILog() (io.Closer, error) {
	if !viper.GetBool("verbose") {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	dir := getConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, "ageguess.log"), "ageguess")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
