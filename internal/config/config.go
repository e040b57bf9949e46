// Package config defines the planissue configuration, loaded through viper
// from a config file, environment variables (PLANISSUE_ prefix), and command
// line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dylan-mccarthy/planissue/internal/logging"
)

// Config represents the complete planissue configuration.
type Config struct {
	// PlanFile is the path to the planning document to extract.
	PlanFile string `mapstructure:"plan_file"`
	// SummaryFile is the path the run summary is written to.
	SummaryFile string `mapstructure:"summary_file"`
	// Repo is the target GitHub repository as "OWNER/REPO". When empty, gh
	// resolves the repository from the current directory.
	Repo string `mapstructure:"repo"`
	// DryRun formats and reports records without creating issues.
	DryRun bool `mapstructure:"dry_run"`

	Logging LoggingConfig `mapstructure:"logging"`
	Labels  LabelsConfig  `mapstructure:"labels"`
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR.
	Level string `mapstructure:"level"`
}

// LabelsConfig carries user-defined label rules applied to phase names no
// built-in epic marker matched.
type LabelsConfig struct {
	Rules []LabelRule `mapstructure:"rules"`
}

// LabelRule maps a glob pattern over phase names to an extra label set.
type LabelRule struct {
	Pattern string   `mapstructure:"pattern"`
	Labels  []string `mapstructure:"labels"`
}

// SetDefaults registers the default configuration values with viper.
func SetDefaults() {
	viper.SetDefault("plan_file", "tasks.yaml")
	viper.SetDefault("summary_file", "github_issues_summary.json")
	viper.SetDefault("repo", "")
	viper.SetDefault("dry_run", false)
	viper.SetDefault("logging.level", logging.LevelInfo)
}

// Load reads the configuration from viper's current state.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration with all defaults applied and nothing
// else. Intended for tests and programmatic use.
func Default() *Config {
	SetDefaults()
	cfg, err := Load()
	if err != nil {
		// Defaults always unmarshal; reaching this means the struct and the
		// registered defaults disagree.
		panic(err)
	}
	return cfg
}

// Validate checks the configuration for problems that would make a run
// meaningless, returning the first one found.
func (c *Config) Validate() error {
	if c.PlanFile == "" {
		return fmt.Errorf("plan_file must not be empty")
	}
	if c.SummaryFile == "" {
		return fmt.Errorf("summary_file must not be empty")
	}

	level := strings.ToUpper(c.Logging.Level)
	valid := false
	for _, l := range logging.ValidLevels() {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid logging.level %q (valid: %s)",
			c.Logging.Level, strings.Join(logging.ValidLevels(), ", "))
	}

	for _, rule := range c.Labels.Rules {
		if rule.Pattern == "" {
			return fmt.Errorf("label rule with empty pattern")
		}
		if len(rule.Labels) == 0 {
			return fmt.Errorf("label rule %q has no labels", rule.Pattern)
		}
	}

	return nil
}
