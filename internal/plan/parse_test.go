package plan

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDocument = `project: Business Process Agents MVP
owner: Platform Engineering

phases:
  - name: Epic 1 – Control Plane Foundations
    goal: Stand up the control plane services
    tasks:
      - id: E1-T1
        title: Repo scaffolding
        description: Create solution layout and shared tooling.
      - id: E1-T2
        title: Database setup
        description: Create Postgres schema for agents, versions,
          deployments, nodes, runs.
  - name: Epic 2 – Node Runtime & Connectors
    goal: Build the node runtime
    tasks:
      - id: E2-T1
        title: Node runtime skeleton
        description: Create worker service with gRPC client.

milestones:
  - id: M1
    title: Control plane online
    deliverables: API, scheduler, lease service
    date: 2025-11-01
  - id: M2
    title: First agent deployed
    deliverables: End-to-end deployment
    date: 2025-12-01
`

func TestParseDocumentCounts(t *testing.T) {
	doc := ParseDocument(sampleDocument)

	if doc.Context.Project != "Business Process Agents MVP" {
		t.Errorf("Project = %q, want %q", doc.Context.Project, "Business Process Agents MVP")
	}
	if doc.Context.Owner != "Platform Engineering" {
		t.Errorf("Owner = %q, want %q", doc.Context.Owner, "Platform Engineering")
	}

	if len(doc.Phases) != 2 {
		t.Fatalf("len(Phases) = %d, want 2", len(doc.Phases))
	}
	if got := len(doc.Phases[0].Tasks); got != 2 {
		t.Errorf("phase 0 tasks = %d, want 2", got)
	}
	if got := len(doc.Phases[1].Tasks); got != 1 {
		t.Errorf("phase 1 tasks = %d, want 1", got)
	}
	if len(doc.Milestones) != 2 {
		t.Fatalf("len(Milestones) = %d, want 2", len(doc.Milestones))
	}

	// Document order is preserved
	if doc.Phases[0].Name != "Epic 1 – Control Plane Foundations" {
		t.Errorf("phase 0 name = %q", doc.Phases[0].Name)
	}
	if doc.Phases[0].Goal != "Stand up the control plane services" {
		t.Errorf("phase 0 goal = %q", doc.Phases[0].Goal)
	}
	if doc.Phases[0].Tasks[0].ID != "E1-T1" || doc.Phases[0].Tasks[1].ID != "E1-T2" {
		t.Errorf("phase 0 task ids = %q, %q", doc.Phases[0].Tasks[0].ID, doc.Phases[0].Tasks[1].ID)
	}
	if doc.Milestones[0].ID != "M1" || doc.Milestones[1].ID != "M2" {
		t.Errorf("milestone ids = %q, %q", doc.Milestones[0].ID, doc.Milestones[1].ID)
	}
	if doc.Milestones[1].Deliverables != "End-to-end deployment" {
		t.Errorf("milestone 1 deliverables = %q", doc.Milestones[1].Deliverables)
	}
	if doc.Milestones[1].Date != "2025-12-01" {
		t.Errorf("milestone 1 date = %q", doc.Milestones[1].Date)
	}

	if doc.TaskCount() != 3 {
		t.Errorf("TaskCount() = %d, want 3", doc.TaskCount())
	}
}

func TestParseDocumentMultilineDescription(t *testing.T) {
	doc := ParseDocument(sampleDocument)

	want := "Create Postgres schema for agents, versions,\n          deployments, nodes, runs."
	got := doc.Phases[0].Tasks[1].Description
	if got != want {
		t.Errorf("description = %q, want %q", got, want)
	}

	// The single-line description is unaffected
	if doc.Phases[0].Tasks[0].Description != "Create solution layout and shared tooling." {
		t.Errorf("description = %q", doc.Phases[0].Tasks[0].Description)
	}
}

func TestParseDocumentRequiredFieldFiltering(t *testing.T) {
	text := `project: P
owner: O
phases:
  - name: Epic 1 – Foundations
    goal: g
    tasks:
      - id: E1-T1
        title: Kept with empty description
      - id: E1-T2
      - id:
        title: Dropped, no id
      - id: E1-T4
        title: Also kept
milestones:
  - id: M1
    title: Kept milestone
  - id: M2
  - id:
    title: Dropped milestone
`
	doc := ParseDocument(text)

	if len(doc.Phases) != 1 {
		t.Fatalf("len(Phases) = %d, want 1", len(doc.Phases))
	}
	tasks := doc.Phases[0].Tasks
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2 (records missing id or title must be dropped)", len(tasks))
	}
	if tasks[0].ID != "E1-T1" || tasks[1].ID != "E1-T4" {
		t.Errorf("kept task ids = %q, %q", tasks[0].ID, tasks[1].ID)
	}
	if tasks[0].Description != "" {
		t.Errorf("missing description should default to empty, got %q", tasks[0].Description)
	}

	if len(doc.Milestones) != 1 {
		t.Fatalf("len(Milestones) = %d, want 1", len(doc.Milestones))
	}
	m := doc.Milestones[0]
	if m.ID != "M1" {
		t.Errorf("kept milestone id = %q, want M1", m.ID)
	}
	if m.Deliverables != "" || m.Date != "" {
		t.Errorf("missing optional fields should default to empty, got %q, %q", m.Deliverables, m.Date)
	}
}

func TestParseDocumentPhaseFiltering(t *testing.T) {
	text := `project: P
owner: O
phases:
  - name:
    goal: nameless phases are dropped
    tasks:
      - id: X-T1
        title: Orphaned task
  - name: Epic 9 – Empty but named
    goal: phases with zero tasks survive
`
	doc := ParseDocument(text)

	if len(doc.Phases) != 1 {
		t.Fatalf("len(Phases) = %d, want 1", len(doc.Phases))
	}
	if doc.Phases[0].Name != "Epic 9 – Empty but named" {
		t.Errorf("phase name = %q", doc.Phases[0].Name)
	}
	if len(doc.Phases[0].Tasks) != 0 {
		t.Errorf("tasks = %d, want 0", len(doc.Phases[0].Tasks))
	}
}

func TestParseDocumentMissingSections(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantPhases     int
		wantMilestones int
	}{
		{
			name: "no milestones section",
			text: `project: P
owner: O
phases:
  - name: Epic 1 – Only Phase
    goal: g
    tasks:
      - id: T1
        title: t
`,
			wantPhases:     1,
			wantMilestones: 0,
		},
		{
			name: "no phases section",
			text: `project: P
owner: O
milestones:
  - id: M1
    title: m
`,
			wantPhases:     0,
			wantMilestones: 1,
		},
		{
			name:           "empty document",
			text:           "",
			wantPhases:     0,
			wantMilestones: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseDocument(tt.text)
			if len(doc.Phases) != tt.wantPhases {
				t.Errorf("len(Phases) = %d, want %d", len(doc.Phases), tt.wantPhases)
			}
			if len(doc.Milestones) != tt.wantMilestones {
				t.Errorf("len(Milestones) = %d, want %d", len(doc.Milestones), tt.wantMilestones)
			}
		})
	}
}

func TestParseDocumentToleratesNoise(t *testing.T) {
	text := "project: P\r\nowner: O\r\n" + `
# a stray comment
phases:

  - name: Epic 1 – Noisy
    %%% malformed line %%%
    goal: still found

    tasks:

      - id: E1-T1

        title: survives blank lines
        garbage without a colon separator here is skipped
        description: fields tolerate noise between them
milestones:
  - id: M1
    ???
    title: found anyway
`
	doc := ParseDocument(text)

	if doc.Context.Project != "P" || doc.Context.Owner != "O" {
		t.Errorf("context = %+v", doc.Context)
	}
	if len(doc.Phases) != 1 {
		t.Fatalf("len(Phases) = %d, want 1", len(doc.Phases))
	}
	p := doc.Phases[0]
	if p.Goal != "still found" {
		t.Errorf("goal = %q", p.Goal)
	}
	if len(p.Tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(p.Tasks))
	}
	if p.Tasks[0].Title != "survives blank lines" {
		t.Errorf("title = %q", p.Tasks[0].Title)
	}
	if len(doc.Milestones) != 1 || doc.Milestones[0].Title != "found anyway" {
		t.Errorf("milestones = %+v", doc.Milestones)
	}
}

func TestParseDocumentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")
	if err := os.WriteFile(path, []byte(sampleDocument), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := ParseDocumentFile(path)
	if err != nil {
		t.Fatalf("ParseDocumentFile() error = %v", err)
	}
	if len(doc.Phases) != 2 || len(doc.Milestones) != 2 {
		t.Errorf("phases = %d, milestones = %d", len(doc.Phases), len(doc.Milestones))
	}
}

func TestParseDocumentFileMissing(t *testing.T) {
	_, err := ParseDocumentFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing document")
	}
}
