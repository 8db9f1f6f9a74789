package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/newsdeck/newsdeck/internal/config"
	"github.com/newsdeck/newsdeck/internal/debuglog"
	"github.com/newsdeck/newsdeck/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

func main() {
	var (
		configPath     string
		environment    string
		endpoint       string
		quiet          bool
		generateConfig bool
	)

	root := &cobra.Command{
		Use:     "newsdeck",
		Short:   "Terminal news dashboard",
		Long:    "newsdeck fetches pre-processed news articles and presents them as a searchable, filterable dashboard with sentiment and topic breakdowns.",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generateConfig {
				home, _ := os.UserHomeDir()
				configFile := filepath.Join(home, ".config", "newsdeck", "config.toml")
				if err := config.GenerateDefaultConfig(configFile); err != nil {
					return fmt.Errorf("generating config: %w", err)
				}
				fmt.Printf("Generated default configuration at: %s\n", configFile)
				return nil
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if environment != "" {
				cfg.API.Environment = environment
			}
			if endpoint != "" {
				cfg.API.Endpoints[cfg.API.Environment] = endpoint
			}

			if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.Path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			}
			defer debuglog.Close()

			if !quiet {
				tui.ShowBanner(Version)
			}

			app, err := tui.NewApp(cfg)
			if err != nil {
				return err
			}

			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "Path to configuration file")
	root.Flags().StringVar(&environment, "env", "", "API environment (development or production)")
	root.Flags().StringVar(&endpoint, "endpoint", "", "News endpoint URL (overrides config)")
	root.Flags().BoolVar(&quiet, "quiet", false, "Skip startup banner")
	root.Flags().BoolVar(&generateConfig, "generate-config", false, "Generate default config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
