package plan

import (
	"strings"
	"testing"
)

func TestTaskTitle(t *testing.T) {
	got := TaskTitle(Task{ID: "E2-T4", Title: "Build connector"})
	if got != "[E2-T4] Build connector" {
		t.Errorf("TaskTitle() = %q, want %q", got, "[E2-T4] Build connector")
	}
}

func TestMilestoneTitle(t *testing.T) {
	got := MilestoneTitle(Milestone{ID: "M1", Title: "Phase 1 complete"})
	if got != "[MILESTONE] Phase 1 complete" {
		t.Errorf("MilestoneTitle() = %q, want %q", got, "[MILESTONE] Phase 1 complete")
	}
}

func TestRenderTaskBody(t *testing.T) {
	task := Task{
		ID:          "E2-T4",
		Title:       "Build connector",
		Description: "Build the HTTP connector.",
	}
	ctx := ProjectContext{Project: "Business Process Agents MVP", Owner: "Platform Engineering"}

	got, err := RenderTaskBody(task, "Epic 2 – Node Runtime & Connectors", ctx)
	if err != nil {
		t.Fatalf("RenderTaskBody() error = %v", err)
	}

	want := `## Task Description
Build the HTTP connector.

## Epic/Phase
**Epic 2 – Node Runtime & Connectors**

## Project Context
- **Project:** Business Process Agents MVP
- **Owner:** Platform Engineering
- **Task ID:** E2-T4

## Acceptance Criteria
- [ ] Implementation complete
- [ ] Unit tests written
- [ ] Integration tests passing
- [ ] Documentation updated
- [ ] Code reviewed and approved

---
*This issue was auto-generated from tasks.yaml*
`
	if got != want {
		t.Errorf("RenderTaskBody() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMilestoneBody(t *testing.T) {
	m := Milestone{
		ID:           "M2",
		Title:        "First agent deployed",
		Deliverables: "End-to-end deployment",
		Date:         "2025-12-01",
	}
	ctx := ProjectContext{Project: "Demo", Owner: "Platform"}

	got, err := RenderMilestoneBody(m, ctx)
	if err != nil {
		t.Fatalf("RenderMilestoneBody() error = %v", err)
	}

	want := `## Milestone Overview
Milestone for project phase completion

## Deliverables
End-to-end deployment

## Target Date
**2025-12-01**

## Project Context
- **Project:** Demo
- **Owner:** Platform
- **Milestone ID:** M2

## Completion Criteria
- [ ] All related tasks completed
- [ ] Deliverables validated
- [ ] Documentation updated
- [ ] Demo/review completed

---
*This milestone was auto-generated from tasks.yaml*
`
	if got != want {
		t.Errorf("RenderMilestoneBody() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTaskBodyEmptyOptionalFields(t *testing.T) {
	// A task retained with only id and title still renders every section.
	got, err := RenderTaskBody(Task{ID: "E1-T1", Title: "t"}, "", ProjectContext{})
	if err != nil {
		t.Fatalf("RenderTaskBody() error = %v", err)
	}
	for _, section := range []string{"## Task Description", "## Epic/Phase", "## Project Context", "## Acceptance Criteria"} {
		if !strings.Contains(got, section) {
			t.Errorf("body missing section %q", section)
		}
	}
}

func TestFormatDocumentForDisplay(t *testing.T) {
	doc := ParseDocument(sampleDocument)
	out := FormatDocumentForDisplay(doc, DefaultLabeler())

	for _, want := range []string{
		"Project: Business Process Agents MVP",
		"Phases: 2, tasks: 3, milestones: 2",
		"Epic 1 – Control Plane Foundations",
		"Labels: task, epic-1, control-plane, api",
		"- [E1-T2] Database setup",
		"- [M2] First agent deployed (2025-12-01)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("display output missing %q:\n%s", want, out)
		}
	}
}
