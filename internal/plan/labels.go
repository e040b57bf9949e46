package plan

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// baseTaskLabel is applied to every task issue regardless of phase.
const baseTaskLabel = "task"

// epicLabelRule maps a phase-name marker substring to the labels applied in
// addition to the base task label.
type epicLabelRule struct {
	Marker string
	Labels []string
}

// epicLabelTable is the fixed mapping from epic markers to label sets.
// Rules are tested in order against the phase name and the first match wins;
// a phase matching no marker gets only the base label. This is an explicit,
// enumerable table on purpose: labels are derived from the phase a task
// belongs to, never inferred from task content.
var epicLabelTable = []epicLabelRule{
	{"Epic 1", []string{"epic-1", "control-plane", "api"}},
	{"Epic 2", []string{"epic-2", "node-runtime", "connectors"}},
	{"Epic 3", []string{"epic-3", "agent-definition", "deployment"}},
	{"Epic 4", []string{"epic-4", "observability", "monitoring"}},
	{"Epic 5", []string{"epic-5", "ui", "frontend"}},
	{"Epic 6", []string{"epic-6", "infrastructure", "ci-cd"}},
	{"Epic 7", []string{"epic-7", "testing", "validation"}},
	{"Epic 8", []string{"epic-8", "documentation", "demo"}},
}

// milestoneLabelSet is applied to every milestone issue.
var milestoneLabelSet = []string{"milestone", "epic"}

// ExtraRule is a user-configured label rule. Pattern is a glob matched
// against the full phase name.
type ExtraRule struct {
	Pattern string
	Labels  []string
}

type compiledRule struct {
	pattern glob.Glob
	labels  []string
}

// Labeler resolves the label set for each record. The built-in epic table is
// always consulted first; extra rules only apply to phase names no built-in
// marker matched, so configuration cannot change the labels of a recognized
// epic.
type Labeler struct {
	extra []compiledRule
}

// DefaultLabeler returns a Labeler using only the built-in epic table.
func DefaultLabeler() *Labeler {
	return &Labeler{}
}

// NewLabeler compiles the given extra rules into a Labeler. Returns an error
// if a rule has an invalid glob pattern or an empty label set.
func NewLabeler(rules []ExtraRule) (*Labeler, error) {
	l := &Labeler{}
	for _, r := range rules {
		if len(r.Labels) == 0 {
			return nil, fmt.Errorf("label rule %q has no labels", r.Pattern)
		}
		g, err := glob.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid label rule pattern %q: %w", r.Pattern, err)
		}
		l.extra = append(l.extra, compiledRule{pattern: g, labels: r.Labels})
	}
	return l, nil
}

// TaskLabels returns the label set for a task in the named phase.
func (l *Labeler) TaskLabels(phaseName string) []string {
	labels := []string{baseTaskLabel}

	for _, rule := range epicLabelTable {
		if strings.Contains(phaseName, rule.Marker) {
			return append(labels, rule.Labels...)
		}
	}

	for _, rule := range l.extra {
		if rule.pattern.Match(phaseName) {
			return append(labels, rule.labels...)
		}
	}

	return labels
}

// MilestoneLabels returns the label set for a milestone issue.
func (l *Labeler) MilestoneLabels() []string {
	labels := make([]string, len(milestoneLabelSet))
	copy(labels, milestoneLabelSet)
	return labels
}
