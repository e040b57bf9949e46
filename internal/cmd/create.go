package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dylan-mccarthy/planissue/internal/config"
	"github.com/dylan-mccarthy/planissue/internal/logging"
	"github.com/dylan-mccarthy/planissue/internal/plan"
	"github.com/dylan-mccarthy/planissue/internal/runner"
	"github.com/dylan-mccarthy/planissue/internal/tracker"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an issue for every task and milestone in the plan",
	Long: `Create extracts the planning document and creates a GitHub issue for
every task of every phase, then for every milestone, in document order.
Individual submission failures are logged and skipped; the command only
fails when the document cannot be read or the summary cannot be written.

Re-running creates a full duplicate set of issues: create performs no
duplicate detection. Use "planissue missing" to create only the tasks not
yet recorded in the summary file.`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Logging.Level)

	doc, err := plan.ParseDocumentFile(cfg.PlanFile)
	if err != nil {
		return fmt.Errorf("error loading tasks file: %w", err)
	}

	labeler, err := newLabeler(cfg)
	if err != nil {
		return err
	}

	r := runner.New(tracker.NewGitHubTracker(cfg.Repo), logger, runner.Options{
		Labeler: labeler,
		DryRun:  cfg.DryRun,
		Out:     cmd.OutOrStdout(),
	})

	summary := r.Run(doc)

	if cfg.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "\nDry run: no summary written")
		return nil
	}

	if err := summary.Save(cfg.SummaryFile); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nSummary saved to: %s\n", cfg.SummaryFile)
	return nil
}

func newLabeler(cfg *config.Config) (*plan.Labeler, error) {
	rules := make([]plan.ExtraRule, 0, len(cfg.Labels.Rules))
	for _, r := range cfg.Labels.Rules {
		rules = append(rules, plan.ExtraRule{Pattern: r.Pattern, Labels: r.Labels})
	}
	return plan.NewLabeler(rules)
}
