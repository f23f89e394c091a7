// Package config carries the runtime settings shared by the command-line
// drivers: data paths, logging, and solver toggles. Settings come from
// flags or XWFILL_* environment variables, flags winning.
package config

import (
	"path/filepath"
	"runtime"

	"github.com/namsral/flag"
	"github.com/spf13/viper"
)

type Config struct {
	v    *viper.Viper
	args []string
}

func defaults(v *viper.Viper) {
	v.SetDefault("data-path", "./data")
	v.SetDefault("log-level", "info")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("random-tie-break", false)
	v.SetDefault("batch", "")
}

// DefaultConfig returns a config with every setting at its default.
func DefaultConfig() Config {
	v := viper.New()
	defaults(v)
	return Config{v: v}
}

// Load parses command-line arguments (and XWFILL_* env vars, via the
// env-aware flag set) into the config.
func (c *Config) Load(args []string) error {
	if c.v == nil {
		c.v = viper.New()
		defaults(c.v)
	}
	fs := flag.NewFlagSetWithEnvPrefix("xwfill", "XWFILL", flag.ContinueOnError)
	dataPath := fs.String("data-path", c.v.GetString("data-path"), "directory holding structure and word-list files")
	logLevel := fs.String("log-level", c.v.GetString("log-level"), "log level: debug, info, or disabled")
	workers := fs.Int("workers", c.v.GetInt("workers"), "worker count for batch solving")
	randomTB := fs.Bool("random-tie-break", c.v.GetBool("random-tie-break"), "break exact variable-selection ties at random")
	batch := fs.String("batch", c.v.GetString("batch"), "directory of structure files to batch-solve")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.v.Set("data-path", *dataPath)
	c.v.Set("log-level", *logLevel)
	c.v.Set("workers", *workers)
	c.v.Set("random-tie-break", *randomTB)
	c.v.Set("batch", *batch)
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }

// AllSettings returns every setting, for logging at startup.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}

// AdjustRelativePaths anchors relative path settings at the executable's
// directory instead of the working directory.
func (c *Config) AdjustRelativePaths(exPath string) {
	dp := c.v.GetString("data-path")
	if !filepath.IsAbs(dp) {
		c.v.Set("data-path", filepath.Join(exPath, dp))
	}
}
