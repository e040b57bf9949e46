package plan

import (
	"bytes"
	"fmt"
	"text/template"
)

// taskIssueData holds data for rendering a task issue body.
type taskIssueData struct {
	ID          string
	Description string
	PhaseName   string
	Project     string
	Owner       string
}

// milestoneIssueData holds data for rendering a milestone issue body.
type milestoneIssueData struct {
	ID           string
	Deliverables string
	Date         string
	Project      string
	Owner        string
}

const taskIssueBodyTemplate = `## Task Description
{{.Description}}

## Epic/Phase
**{{.PhaseName}}**

## Project Context
- **Project:** {{.Project}}
- **Owner:** {{.Owner}}
- **Task ID:** {{.ID}}

## Acceptance Criteria
- [ ] Implementation complete
- [ ] Unit tests written
- [ ] Integration tests passing
- [ ] Documentation updated
- [ ] Code reviewed and approved

---
*This issue was auto-generated from tasks.yaml*
`

const milestoneIssueBodyTemplate = `## Milestone Overview
Milestone for project phase completion

## Deliverables
{{.Deliverables}}

## Target Date
**{{.Date}}**

## Project Context
- **Project:** {{.Project}}
- **Owner:** {{.Owner}}
- **Milestone ID:** {{.ID}}

## Completion Criteria
- [ ] All related tasks completed
- [ ] Deliverables validated
- [ ] Documentation updated
- [ ] Demo/review completed

---
*This milestone was auto-generated from tasks.yaml*
`

// TaskTitle formats the issue title for a task: "[<id>] <title>".
func TaskTitle(t Task) string {
	return fmt.Sprintf("[%s] %s", t.ID, t.Title)
}

// MilestoneTitle formats the issue title for a milestone: "[MILESTONE] <title>".
func MilestoneTitle(m Milestone) string {
	return fmt.Sprintf("[MILESTONE] %s", m.Title)
}

// RenderTaskBody renders the issue body for a task, embedding its phase name
// and the shared project context.
func RenderTaskBody(t Task, phaseName string, ctx ProjectContext) (string, error) {
	return render("task-issue", taskIssueBodyTemplate, taskIssueData{
		ID:          t.ID,
		Description: t.Description,
		PhaseName:   phaseName,
		Project:     ctx.Project,
		Owner:       ctx.Owner,
	})
}

// RenderMilestoneBody renders the issue body for a milestone.
func RenderMilestoneBody(m Milestone, ctx ProjectContext) (string, error) {
	return render("milestone-issue", milestoneIssueBodyTemplate, milestoneIssueData{
		ID:           m.ID,
		Deliverables: m.Deliverables,
		Date:         m.Date,
		Project:      ctx.Project,
		Owner:        ctx.Owner,
	})
}

func render(name, tmplStr string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}

	return buf.String(), nil
}
