package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	tinkerr "github.com/tink-dev/tink/internal/errors"
	"github.com/tink-dev/tink/internal/types"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// DirName is the per-project and per-user directory holding config.toml.
const DirName = ".tink"

// DefaultsConfig holds default values for command flags.
type DefaultsConfig struct {
	// Target is the editor used when --target is not given.
	Target string `toml:"target"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
	File   string    `toml:"file"`
}

// AdapterOverride maps one language to debugger identifiers.
// A blank field keeps the built-in value for that editor.
type AdapterOverride struct {
	Zed    string `toml:"zed"`
	VSCode string `toml:"vscode"`
}

// Config is the main configuration struct for tink.
type Config struct {
	Defaults DefaultsConfig             `toml:"defaults"`
	Logging  LoggingConfig              `toml:"logging"`
	Adapters map[string]AdapterOverride `toml:"adapters"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Target: string(types.TargetZed),
		},
		Logging: LoggingConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
			File:   "",
		},
		Adapters: make(map[string]AdapterOverride),
	}
}

// Load loads configuration from file, merging with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, tinkerr.IOReadError(path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, tinkerr.ParseError(path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from the standard locations in a directory.
// Applies in order: defaults -> ~/.tink/config.toml -> .tink/config.toml
// Later configs override earlier ones (project-level takes precedence).
func LoadFromDir(dir string) (*Config, error) {
	cfg := Default()

	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, DirName, "config.toml"))
	}
	paths = append(paths, filepath.Join(dir, DirName, "config.toml"))

	for _, path := range paths {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// decodeFile overlays the TOML file at path onto cfg. A missing file is skipped.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return tinkerr.IOReadError(path, err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return tinkerr.ParseError(path, err)
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Defaults.Target == "" {
		return tinkerr.ConfigMissingField("defaults.target")
	}
	if _, err := types.ParseTarget(c.Defaults.Target); err != nil {
		return tinkerr.ConfigInvalidValue("defaults.target", c.Defaults.Target, "must be zed or vscode")
	}
	switch c.Logging.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return tinkerr.ConfigInvalidValue("logging.level", c.Logging.Level, "must be debug, info, warn or error")
	}
	switch c.Logging.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return tinkerr.ConfigInvalidValue("logging.format", c.Logging.Format, "must be json or text")
	}
	for lang := range c.Adapters {
		if lang == "" {
			return tinkerr.ConfigInvalidValue("adapters", lang, "empty language name")
		}
	}
	return nil
}

// DefaultTarget returns the parsed default editor target.
func (c *Config) DefaultTarget() types.Target {
	target, err := types.ParseTarget(c.Defaults.Target)
	if err != nil {
		return types.TargetZed
	}
	return target
}

// LogFile returns the absolute log file path, or "" when file logging is off.
func (c *Config) LogFile(baseDir string) string {
	if c.Logging.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Logging.File) {
		return c.Logging.File
	}
	return filepath.Join(baseDir, c.Logging.File)
}
