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

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Create issues only for tasks not yet recorded in the summary",
	Long: `Missing compares the planning document against the existing summary
file and creates issues only for tasks whose id is not recorded there. Newly
created issues are appended to the summary. The summary file must exist;
run "planissue create" first.`,
	RunE: runMissing,
}

func init() {
	rootCmd.AddCommand(missingCmd)
}

func runMissing(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Logging.Level)

	prior, err := runner.LoadSummary(cfg.SummaryFile)
	if err != nil {
		return fmt.Errorf("no usable summary at %s (run 'planissue create' first): %w", cfg.SummaryFile, err)
	}

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

	merged := r.RunMissing(doc, prior)

	if cfg.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "\nDry run: summary not updated")
		return nil
	}

	if err := merged.Save(cfg.SummaryFile); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", cfg.SummaryFile)
	return nil
}
