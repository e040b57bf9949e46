// Package runner drives the batch: it walks the extracted document in order,
// formats and submits each record, and accumulates the successes into a
// summary. Execution is strictly sequential; a failed submission is logged
// and skipped, never retried.
package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/dylan-mccarthy/planissue/internal/logging"
	"github.com/dylan-mccarthy/planissue/internal/plan"
	"github.com/dylan-mccarthy/planissue/internal/tracker"
)

const separator = "=================================================="

// Options configures optional runner behavior.
type Options struct {
	// Labeler resolves label sets. Defaults to the built-in epic table.
	Labeler *plan.Labeler

	// DryRun formats and reports records without submitting anything.
	DryRun bool

	// Out receives human-readable progress output. Defaults to io.Discard.
	Out io.Writer
}

// Runner submits the records of a planning document to an issue tracker.
type Runner struct {
	tracker tracker.IssueTracker
	labeler *plan.Labeler
	logger  *logging.Logger
	out     io.Writer
	dryRun  bool
}

// New creates a Runner submitting via t.
func New(t tracker.IssueTracker, logger *logging.Logger, opts Options) *Runner {
	labeler := opts.Labeler
	if labeler == nil {
		labeler = plan.DefaultLabeler()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		tracker: t,
		labeler: labeler,
		logger:  logger,
		out:     out,
		dryRun:  opts.DryRun,
	}
}

// Run processes the full document: every task of every phase in document
// order, then every milestone. Submission failures are logged and the record
// is skipped; the returned summary holds only the successes, in submission
// order. Run never fails: the caller decides what to do with an empty
// summary.
func (r *Runner) Run(doc *plan.Document) *Summary {
	summary := NewSummary(doc.Context)

	fmt.Fprintf(r.out, "Creating GitHub issues for: %s\n", doc.Context.Project)
	fmt.Fprintf(r.out, "Owner: %s\n", doc.Context.Owner)
	fmt.Fprintln(r.out, separator)

	for _, phase := range doc.Phases {
		fmt.Fprintf(r.out, "\nProcessing phase: %s\n", phase.Name)
		fmt.Fprintf(r.out, "Goal: %s\n", phase.Goal)

		for _, task := range phase.Tasks {
			r.submitTask(task, phase, doc.Context, summary)
		}
	}

	if len(doc.Milestones) > 0 {
		fmt.Fprintf(r.out, "\nCreating milestone issues...\n")
		for _, m := range doc.Milestones {
			r.submitMilestone(m, doc.Context, summary)
		}
	}

	fmt.Fprintf(r.out, "\n%s\n", separator)
	fmt.Fprintf(r.out, "Summary: Created %d task issues\n", len(summary.CreatedIssues))
	fmt.Fprintf(r.out, "Created %d milestone issues\n", len(summary.MilestoneURLs))

	return summary
}

// RunMissing processes only the tasks not already recorded in prior. It
// returns a new summary holding the prior records followed by the newly
// created ones, preserving prior order. Milestones are not re-examined: the
// summary records milestone URLs without ids, so they cannot be correlated
// back to document records.
func (r *Runner) RunMissing(doc *plan.Document, prior *Summary) *Summary {
	fmt.Fprintln(r.out, "Creating missing GitHub issues...")
	fmt.Fprintln(r.out, separator)

	fresh := NewSummary(doc.Context)
	for _, phase := range doc.Phases {
		for _, task := range phase.Tasks {
			if prior.Contains(task.ID) {
				continue
			}
			r.submitTask(task, phase, doc.Context, fresh)
		}
	}

	fmt.Fprintf(r.out, "\n%s\n", separator)
	fmt.Fprintf(r.out, "Created %d missing issues\n", len(fresh.CreatedIssues))

	merged := &Summary{
		Project:       prior.Project,
		CreatedIssues: make([]CreatedIssue, 0, len(prior.CreatedIssues)+len(fresh.CreatedIssues)),
		MilestoneURLs: append([]string{}, prior.MilestoneURLs...),
	}
	merged.CreatedIssues = append(merged.CreatedIssues, prior.CreatedIssues...)
	merged.CreatedIssues = append(merged.CreatedIssues, fresh.CreatedIssues...)
	return merged
}

func (r *Runner) submitTask(task plan.Task, phase plan.Phase, ctx plan.ProjectContext, summary *Summary) {
	title := plan.TaskTitle(task)
	body, err := plan.RenderTaskBody(task, phase.Name, ctx)
	if err != nil {
		r.logger.Error("failed to render task body", "task_id", task.ID, "error", err)
		return
	}
	labels := r.labeler.TaskLabels(phase.Name)

	url, ok := r.submit(title, body, labels)
	if !ok {
		return
	}

	fmt.Fprintf(r.out, "Created issue: %s\n", title)
	fmt.Fprintf(r.out, "  URL: %s\n", url)
	summary.CreatedIssues = append(summary.CreatedIssues, CreatedIssue{
		TaskID: task.ID,
		Title:  task.Title,
		URL:    url,
	})
}

func (r *Runner) submitMilestone(m plan.Milestone, ctx plan.ProjectContext, summary *Summary) {
	title := plan.MilestoneTitle(m)
	body, err := plan.RenderMilestoneBody(m, ctx)
	if err != nil {
		r.logger.Error("failed to render milestone body", "milestone_id", m.ID, "error", err)
		return
	}

	url, ok := r.submit(title, body, r.labeler.MilestoneLabels())
	if !ok {
		return
	}

	fmt.Fprintf(r.out, "Created milestone: %s\n", title)
	fmt.Fprintf(r.out, "  URL: %s\n", url)
	summary.MilestoneURLs = append(summary.MilestoneURLs, url)
}

// submit sends one record to the tracker. A failed submission is reported
// and logged but never aborts the batch.
func (r *Runner) submit(title, body string, labels []string) (string, bool) {
	if r.dryRun {
		fmt.Fprintf(r.out, "Would create issue: %s\n", title)
		fmt.Fprintf(r.out, "  Labels: %s\n", strings.Join(labels, ","))
		r.logger.Info("dry run, skipping submission", "title", title)
		return "", false
	}

	ref, err := r.tracker.CreateIssue(tracker.IssueOptions{
		Title:  title,
		Body:   body,
		Labels: labels,
	})
	if err != nil {
		fmt.Fprintf(r.out, "Error creating issue '%s': %v\n", title, err)
		r.logger.Error("issue creation failed", "title", title, "error", err)
		return "", false
	}

	r.logger.Info("issue created", "title", title, "url", ref.URL)
	return ref.URL, true
}
