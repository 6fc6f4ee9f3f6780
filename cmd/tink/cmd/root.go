package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tink-dev/tink/internal/adapter"
	"github.com/tink-dev/tink/internal/config"
	"github.com/tink-dev/tink/internal/dispatch"
	tinkerr "github.com/tink-dev/tink/internal/errors"
	"github.com/tink-dev/tink/internal/logging"
	"github.com/tink-dev/tink/internal/types"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose    bool
	workDir    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "tink",
	Short: "Generate debugger launch profiles for Zed and VS Code",
	Long: `tink writes debugger launch entries into an editor's project configuration.

It describes a program once (language, program, arguments) and renders it into
either editor's format:

  zed      .zed/debug.json
  vscode   .vscode/launch.json

Existing entries are kept; add refuses to overwrite a label, replace updates it in place.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&workDir, "workdir", "C", "", "project directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.tink/config.toml then .tink/config.toml)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("tink {{.Version}}\n")
}

// getWorkDir returns the effective project directory.
func getWorkDir() (string, error) {
	if workDir != "" {
		return workDir, nil
	}
	return os.Getwd()
}

// env is the per-invocation state shared by subcommands.
type env struct {
	dir        string
	cfg        *config.Config
	logger     *slog.Logger
	closer     io.Closer
	registry   *adapter.Registry
	dispatcher *dispatch.Dispatcher
}

// loadEnv reads config and builds the logger and dispatcher.
func loadEnv() (*env, error) {
	dir, err := getWorkDir()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromDir(dir)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var logger *slog.Logger
	var closer io.Closer
	if verbose {
		logger, closer, err = logging.NewVerbose(cfg, dir)
	} else {
		logger, closer, err = logging.NewFromConfig(cfg, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}

	registry := adapter.NewRegistryFromConfig(cfg)
	return &env{
		dir:        dir,
		cfg:        cfg,
		logger:     logger,
		closer:     closer,
		registry:   registry,
		dispatcher: dispatch.New(dir, registry, logger),
	}, nil
}

// Close releases the log file, if any.
func (e *env) Close() error {
	if e.closer == nil {
		return nil
	}
	if err := e.closer.Close(); err != nil {
		return tinkerr.IOWriteError(e.cfg.LogFile(e.dir), err)
	}
	return nil
}

// closeInto closes e and stores a close failure in *errp unless it already
// holds an error.
func (e *env) closeInto(errp *error) {
	if err := e.Close(); err != nil && *errp == nil {
		*errp = err
	}
}

// resolveTarget parses a --target value, falling back to the configured default.
func (e *env) resolveTarget(flag string) (types.Target, error) {
	if flag == "" {
		return e.cfg.DefaultTarget(), nil
	}
	target, err := types.ParseTarget(flag)
	if err != nil {
		return "", tinkerr.InvalidTarget(flag, []string{string(types.TargetZed), string(types.TargetVSCode)})
	}
	return target, nil
}
