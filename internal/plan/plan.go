// Package plan provides the in-memory model of a project planning document
// and the extraction, formatting, and labeling logic that turns its records
// into GitHub issue content.
package plan

// ProjectContext holds the shared project metadata embedded into every
// generated issue body.
type ProjectContext struct {
	Project string `json:"project"`
	Owner   string `json:"owner"`
}

// Task is a unit of work belonging to exactly one phase.
// A task is only retained by the extractor if both ID and Title are non-empty.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Phase is a named grouping of tasks corresponding to a project epic.
type Phase struct {
	Name  string `json:"name"`
	Goal  string `json:"goal"`
	Tasks []Task `json:"tasks"`
}

// Milestone is a dated deliverable checkpoint, independent of phases.
// Like Task, it is only retained if both ID and Title are non-empty.
type Milestone struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Deliverables string `json:"deliverables"`
	Date         string `json:"date"`
}

// Document is the extracted planning document. It is built once per run and
// never mutated afterwards.
type Document struct {
	Context    ProjectContext `json:"context"`
	Phases     []Phase        `json:"phases"`
	Milestones []Milestone    `json:"milestones"`
}

// TaskCount returns the total number of tasks across all phases.
func (d *Document) TaskCount() int {
	n := 0
	for _, p := range d.Phases {
		n += len(p.Tasks)
	}
	return n
}
