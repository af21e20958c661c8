// Package config loads the run configuration from cobra flags merged
// with environment variables and an optional config file through
// viper, following the flags-plus-AutomaticEnv idiom, then applies the
// invalid-configuration checks that must run before any processing
// begins.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "LOGIDENT"

// Config is the complete enumeration of run options.
type Config struct {
	FilePath     string
	Limit        int64
	Sample       int64
	Exclude      []string
	Categories   []string
	MergeTypes   []string
	MaxFrequency float64
	Fast         bool
	Threads      int
	Output       string
}

// Load binds flags through viper (flags take precedence, then
// LOGIDENT_-prefixed environment variables, then an optional config
// file set via the "config" flag) and validates the result.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %q", configFile)
		}
	}

	v.SetDefault("sample", int64(1))
	v.SetDefault("max_frequency", 10.0)

	cfg := &Config{
		FilePath:     v.GetString("file_path"),
		Limit:        v.GetInt64("limit"),
		Sample:       v.GetInt64("sample"),
		Exclude:      splitTags(v.GetString("exclude")),
		Categories:   splitTags(v.GetString("categories")),
		MergeTypes:   splitTags(v.GetString("merge_types")),
		MaxFrequency: v.GetFloat64("max_frequency"),
		Fast:         v.GetBool("fast"),
		Threads:      v.GetInt("threads"),
		Output:       v.GetString("output"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate applies the invalid-configuration checks: max_frequency must
// lie in [0,100]; limit and sample, when set, must be positive.
func (c *Config) Validate() error {
	if c.MaxFrequency < 0 || c.MaxFrequency > 100 {
		return errors.Errorf("invalid configuration: max_frequency %.2f outside [0,100]", c.MaxFrequency)
	}

	if c.Limit < 0 {
		return errors.Errorf("invalid configuration: limit %d must be a non-negative integer", c.Limit)
	}

	if c.Sample <= 0 {
		return errors.Errorf("invalid configuration: sample %d must be a positive integer", c.Sample)
	}

	if c.Threads < 0 {
		return errors.Errorf("invalid configuration: threads %d must be a non-negative integer", c.Threads)
	}

	return nil
}

// ExcludeSet returns Exclude as a lookup set for the extraction stage.
func (c *Config) ExcludeSet() map[string]bool {
	return toSet(c.Exclude)
}

// CategoriesSet returns Categories as a lookup set for output filtering.
func (c *Config) CategoriesSet() map[string]bool {
	return toSet(c.Categories)
}

// MergeTypesSet returns MergeTypes as a lookup set for the resolver.
func (c *Config) MergeTypesSet() map[string]bool {
	return toSet(c.MergeTypes)
}

func toSet(tags []string) map[string]bool {
	if len(tags) == 0 {
		return nil
	}

	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}

	return set
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
