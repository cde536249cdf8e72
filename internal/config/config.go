package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const envPrefix = "PLUGARGS_"

// Config holds the settings of the plugargs command.
type Config struct {
	ConfigFile  string   `yaml:"-"`
	SiteDir     string   `yaml:"site_dir"`
	Readme      string   `yaml:"readme"`
	Locales     []string `yaml:"locales"`
	LogLevel    string   `yaml:"log_level"`
	MetricsFile string   `yaml:"metrics_file"`
	Plugins     []string `yaml:"plugins"`
}

// SetDefaults resets c to the built-in defaults.
func (c *Config) SetDefaults() {
	*c = Config{
		ConfigFile: DefaultConfigPath("plugargs.yaml"),
		SiteDir:    "src/site/markdown",
		Readme:     "README.md",
		Locales:    []string{"", "de"},
		LogLevel:   "info",
		Plugins:    []string{"*"},
	}
}

// ApplyEnv overrides fields from PLUGARGS_* environment variables. Lists are
// comma separated.
func (c *Config) ApplyEnv() {
	c.ConfigFile = GetEnv(envPrefix+"CONFIG_FILE", c.ConfigFile)
	c.SiteDir = GetEnv(envPrefix+"SITE_DIR", c.SiteDir)
	c.Readme = GetEnv(envPrefix+"README", c.Readme)
	c.LogLevel = GetEnv(envPrefix+"LOG_LEVEL", c.LogLevel)
	c.MetricsFile = GetEnv(envPrefix+"METRICS_FILE", c.MetricsFile)
	if v, ok := os.LookupEnv(envPrefix + "LOCALES"); ok {
		c.Locales = splitList(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "PLUGINS"); ok {
		c.Plugins = splitList(v)
	}
}

// BindFlags populates the struct with defaults and environment values and
// binds the command line flags to its fields.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	c.SetDefaults()
	c.ApplyEnv()
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "config file path")
	fs.StringVar(&c.SiteDir, "site-dir", c.SiteDir, "directory holding the markdown site sources")
	fs.StringVar(&c.Readme, "readme", c.Readme, "README file of the root locale; other locales get README_<locale>.md")
	fs.StringSliceVar(&c.Locales, "locales", c.Locales, "locales to generate documentation for; empty is the root locale")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log verbosity (all, debug, info, warn, error, fatal, none)")
	fs.StringVar(&c.MetricsFile, "metrics-file", c.MetricsFile, "write parse statistics to this Prometheus textfile (disabled when empty)")
	fs.StringSliceVar(&c.Plugins, "plugins", c.Plugins, "plugin IDs to load; * loads all built-in plugins")
}

// LoadFile populates the config from a YAML file. Fields already set remain
// unless overwritten by corresponding entries in the file.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// flagFields copies a flag-bound field from src to dst.
var flagFields = map[string]func(dst, src *Config){
	"config":       func(dst, src *Config) { dst.ConfigFile = src.ConfigFile },
	"site-dir":     func(dst, src *Config) { dst.SiteDir = src.SiteDir },
	"readme":       func(dst, src *Config) { dst.Readme = src.Readme },
	"locales":      func(dst, src *Config) { dst.Locales = src.Locales },
	"log-level":    func(dst, src *Config) { dst.LogLevel = src.LogLevel },
	"metrics-file": func(dst, src *Config) { dst.MetricsFile = src.MetricsFile },
	"plugins":      func(dst, src *Config) { dst.Plugins = src.Plugins },
}

// Resolve layers the config file under the environment and the flags changed
// on fs: defaults < file < environment < flags. A missing config file is not
// an error.
func (c *Config) Resolve(fs *pflag.FlagSet) error {
	var out Config
	out.SetDefaults()
	out.ConfigFile = c.ConfigFile
	if out.ConfigFile != "" {
		if err := out.LoadFile(out.ConfigFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	out.ApplyEnv()
	fs.Visit(func(f *pflag.Flag) {
		if cp, ok := flagFields[f.Name]; ok {
			cp(&out, c)
		}
	})
	*c = out
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
