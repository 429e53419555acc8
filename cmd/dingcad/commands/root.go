package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacineMTB/dingcad-sub001/cmd/dingcad/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Global configuration (loaded at init time)
	globalConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dingcad",
	Short: "Script-driven solid modeling",
	Long: `dingcad - evaluate solid-modeling scene scripts.

A scene script is a Lua module that builds geometry with the bound kernel
operations (cube, union, translate, extrude, ...) and returns a table with
a 'scene' field. Scripts import helper modules with require(); modules are
resolved from the configured root directories and the local library.

Configuration is read from ./dingcad.yaml (override with --config):

  roots:
    - ./lib
  library: ./dingcad.db
  meshDir: ./meshes

Examples:
  # Evaluate a scene and print a summary
  dingcad eval scene.lua

  # Export the result as binary STL
  dingcad eval scene.lua --out model.stl

  # Query the evaluation stats with a jq expression
  dingcad eval scene.lua --query '.volume'

  # Manage the shared module library
  dingcad lib add lib/gears.lua
  dingcad lib list`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default dingcad.yaml)")
}

// configLoadErr stores the error from config.Load() for deferred reporting.
var configLoadErr error

func initConfig() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(configPath)
	if err != nil {
		// Deferred: commands that need config report it via getConfig(),
		// so config-free commands like 'dingcad version' still work.
		configLoadErr = err
		return
	}
	globalConfig = cfg
}

// getConfig returns the global configuration, or the error deferred from
// initConfig.
func getConfig() (*config.Config, error) {
	if globalConfig == nil {
		return nil, configLoadErr
	}
	return globalConfig, nil
}
