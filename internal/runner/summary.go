package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dylan-mccarthy/planissue/internal/plan"
)

// CreatedIssue records one successfully created task issue.
type CreatedIssue struct {
	TaskID string `json:"task_id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// Summary is the persisted result of a run: the project context plus the
// ordered successes. Records whose submission failed are simply absent.
type Summary struct {
	Project       plan.ProjectContext `json:"project"`
	CreatedIssues []CreatedIssue      `json:"created_issues"`
	MilestoneURLs []string            `json:"milestone_urls"`
}

// NewSummary returns an empty summary for the given project context.
// Slices are non-nil so an empty summary serializes as [] rather than null.
func NewSummary(ctx plan.ProjectContext) *Summary {
	return &Summary{
		Project:       ctx,
		CreatedIssues: []CreatedIssue{},
		MilestoneURLs: []string{},
	}
}

// Contains reports whether a task with the given id is already recorded.
func (s *Summary) Contains(taskID string) bool {
	for _, ci := range s.CreatedIssues {
		if ci.TaskID == taskID {
			return true
		}
	}
	return false
}

// Save writes the summary as indented JSON to path, overwriting any prior
// summary. The write is atomic: data goes to a temp file in the same
// directory which is then renamed over the target.
func (s *Summary) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".summary-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close summary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace summary file: %w", err)
	}
	return nil
}

// LoadSummary reads a previously saved summary from path.
func LoadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary file: %w", err)
	}

	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse summary file: %w", err)
	}
	if s.CreatedIssues == nil {
		s.CreatedIssues = []CreatedIssue{}
	}
	if s.MilestoneURLs == nil {
		s.MilestoneURLs = []string{}
	}
	return &s, nil
}
