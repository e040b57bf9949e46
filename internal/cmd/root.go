// Package cmd defines the planissue command line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dylan-mccarthy/planissue/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "planissue",
	Short: "Create GitHub tracking issues from a project planning document",
	Long: `Planissue reads a structured planning document (phases, tasks,
milestones) and creates a tracking issue for each record through the gh CLI,
recording the created issue URLs in a summary file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("file", "f", "", `path to the planning document (default "tasks.yaml")`)
	rootCmd.PersistentFlags().String("summary", "", `path to the summary file (default "github_issues_summary.json")`)
	rootCmd.PersistentFlags().StringP("repo", "R", "", "target GitHub repository as OWNER/REPO (default: resolved from cwd)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().Bool("dry-run", false, "report what would be created without calling gh")

	_ = viper.BindPFlag("plan_file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("summary_file", rootCmd.PersistentFlags().Lookup("summary"))
	_ = viper.BindPFlag("repo", rootCmd.PersistentFlags().Lookup("repo"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	viper.SetConfigName("planissue")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/planissue")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PLANISSUE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., PLANISSUE_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
