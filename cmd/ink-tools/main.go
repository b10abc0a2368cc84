// Package main is the entry point for the ink-tools CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/ink-tools/internal/config"
	"github.com/ironsheep/ink-tools/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	settings = config.NewViper()

	// appLogger is built from the resolved config before any command runs.
	appLogger *logger.Logger
)

// rootCmd is the base command for the ink-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "ink-tools",
	Short: "Turn scans and photos into line sketches and trim PDF page borders",
	Long: `ink-tools prepares scanned artwork for print.

convert turns every image in a directory into a black-and-white line sketch
using Canny edge detection. trim shrinks the visible area of every page of a
PDF to hide scanner borders. serve exposes both as MCP tools over stdio.

Logs are written to stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(settings, cfgFile)
		if err != nil {
			return err
		}

		appLogger = cfg.Logger()
		if cfg.File != "" {
			appLogger.Debug("Using config file: %s", cfg.File)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./ink-tools.yaml or ~/.config/ink-tools/ink-tools.yaml)")
	flags.String("log-level", "info", "log verbosity: info, debug, or trace")
	flags.Bool("no-color", false, "disable colored log output")

	_ = settings.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = settings.BindPFlag(config.KeyNoColor, flags.Lookup("no-color"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
