package plan

import (
	"fmt"
	"strings"
)

// FormatDocumentForDisplay formats an extracted document for terminal
// display, including the label set each phase's tasks would receive.
func FormatDocumentForDisplay(doc *Document, labeler *Labeler) string {
	var sb strings.Builder

	sb.WriteString("Plan Summary\n")
	sb.WriteString("============\n\n")
	sb.WriteString(fmt.Sprintf("Project: %s\n", doc.Context.Project))
	sb.WriteString(fmt.Sprintf("Owner: %s\n\n", doc.Context.Owner))

	sb.WriteString(fmt.Sprintf("Phases: %d, tasks: %d, milestones: %d\n\n",
		len(doc.Phases), doc.TaskCount(), len(doc.Milestones)))

	for _, phase := range doc.Phases {
		sb.WriteString(fmt.Sprintf("%s\n", phase.Name))
		if phase.Goal != "" {
			sb.WriteString(fmt.Sprintf("  Goal: %s\n", phase.Goal))
		}
		sb.WriteString(fmt.Sprintf("  Labels: %s\n", strings.Join(labeler.TaskLabels(phase.Name), ", ")))
		for _, task := range phase.Tasks {
			sb.WriteString(fmt.Sprintf("  - [%s] %s\n", task.ID, task.Title))
		}
		sb.WriteString("\n")
	}

	if len(doc.Milestones) > 0 {
		sb.WriteString("Milestones:\n")
		for _, m := range doc.Milestones {
			if m.Date != "" {
				sb.WriteString(fmt.Sprintf("  - [%s] %s (%s)\n", m.ID, m.Title, m.Date))
			} else {
				sb.WriteString(fmt.Sprintf("  - [%s] %s\n", m.ID, m.Title))
			}
		}
	}

	return sb.String()
}
