package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dylan-mccarthy/planissue/internal/config"
	"github.com/dylan-mccarthy/planissue/internal/plan"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Extract the planning document and show what would be created",
	Long: `Validate extracts the planning document and prints the resulting
plan breakdown (phases, tasks, milestones, and the labels each phase's tasks
would receive) without creating any issues.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := plan.ParseDocumentFile(cfg.PlanFile)
	if err != nil {
		return fmt.Errorf("error loading tasks file: %w", err)
	}

	labeler, err := newLabeler(cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), plan.FormatDocumentForDisplay(doc, labeler))
	return nil
}
