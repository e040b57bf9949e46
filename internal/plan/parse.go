package plan

import (
	"fmt"
	"os"
	"strings"
)

// Record boundary markers. The document uses a fixed indentation scheme:
// phases and milestones are list items at two spaces, tasks are nested list
// items at six. Matching on the full marker keeps task ids from being
// mistaken for milestone ids and vice versa.
const (
	phasesHeader     = "phases:"
	milestonesHeader = "milestones:"
	phaseMarker      = "  - name:"
	milestoneMarker  = "  - id:"
	taskMarker       = "      - id:"
	tasksHeader      = "tasks:"
)

// ParseDocumentFile reads the planning document at path and extracts its
// model. A read error (missing file, permissions) is the only failure mode;
// malformed content degrades to empty fields and dropped records instead.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan document: %w", err)
	}
	return ParseDocument(string(data)), nil
}

// ParseDocument extracts the project context, phases with their tasks, and
// milestones from the document text.
//
// Extraction is pattern-based rather than grammar-based: single-line fields
// are located by scanning for the first "key:" line, multi-line fields
// capture everything up to the next record marker, and any number of blank
// or malformed lines between fields is tolerated. A missing optional field
// defaults to the empty string. Tasks and milestones missing their id or
// title are dropped entirely; phases missing their name are dropped with
// all their tasks. A document without a phases or milestones section yields
// empty slices for those parts.
func ParseDocument(text string) *Document {
	lines := splitLines(text)

	doc := &Document{
		Context: ProjectContext{
			Project: scanField(lines, "project:"),
			Owner:   scanField(lines, "owner:"),
		},
	}

	for _, block := range recordBlocks(sectionLines(lines, phasesHeader, milestonesHeader), phaseMarker) {
		if p := parsePhase(block); p.Name != "" {
			doc.Phases = append(doc.Phases, p)
		}
	}

	for _, block := range recordBlocks(sectionLines(lines, milestonesHeader), milestoneMarker) {
		if m := parseMilestone(block); m.ID != "" && m.Title != "" {
			doc.Milestones = append(doc.Milestones, m)
		}
	}

	return doc
}

func parsePhase(block []string) Phase {
	p := Phase{
		Name: markerValue(block[0], phaseMarker),
		Goal: scanField(block[1:], "goal:"),
	}

	// Tasks are the nested records after the phase's "tasks:" line.
	var taskLines []string
	for i, line := range block {
		if strings.TrimSpace(line) == tasksHeader {
			taskLines = block[i+1:]
			break
		}
	}

	for _, tb := range recordBlocks(taskLines, taskMarker) {
		t := parseTask(tb)
		if t.ID != "" && t.Title != "" {
			p.Tasks = append(p.Tasks, t)
		}
	}

	return p
}

func parseTask(block []string) Task {
	return Task{
		ID:          markerValue(block[0], taskMarker),
		Title:       scanField(block[1:], "title:"),
		Description: scanMultiline(block[1:], "description:"),
	}
}

func parseMilestone(block []string) Milestone {
	return Milestone{
		ID:           markerValue(block[0], milestoneMarker),
		Title:        scanField(block[1:], "title:"),
		Deliverables: scanField(block[1:], "deliverables:"),
		Date:         scanField(block[1:], "date:"),
	}
}

// splitLines splits text into lines, stripping carriage returns so CRLF
// documents parse identically.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// sectionLines returns the lines following the unindented header line, up to
// the first of the given terminator headers or end of document. Returns nil
// when the section is absent.
func sectionLines(lines []string, header string, terminators ...string) []string {
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, header) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	for i := start; i < len(lines); i++ {
		for _, term := range terminators {
			if strings.HasPrefix(lines[i], term) {
				return lines[start:i]
			}
		}
	}
	return lines[start:]
}

// recordBlocks splits a section into per-record line groups at the given
// marker. Each block starts with its marker line. Lines before the first
// marker do not belong to any record and are discarded.
func recordBlocks(lines []string, marker string) [][]string {
	var blocks [][]string
	for _, line := range lines {
		if strings.HasPrefix(line, marker) {
			blocks = append(blocks, []string{line})
			continue
		}
		if len(blocks) > 0 {
			last := len(blocks) - 1
			blocks[last] = append(blocks[last], line)
		}
	}
	return blocks
}

// markerValue extracts the value from a record marker line, e.g. the task id
// from "      - id: E1-T1".
func markerValue(line, marker string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, marker))
}

// scanField returns the trimmed remainder of the first line whose content
// starts with key, or the empty string when no line matches.
func scanField(lines []string, key string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, key) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, key))
		}
	}
	return ""
}

// scanMultiline returns the value of the first line matching key plus all
// following lines in the block, joined and trimmed. Used for description
// fields that may span multiple lines up to the next record marker.
func scanMultiline(lines []string, key string) string {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, key) {
			continue
		}
		parts := []string{strings.TrimPrefix(trimmed, key)}
		for _, rest := range lines[i+1:] {
			parts = append(parts, rest)
		}
		return strings.TrimSpace(strings.Join(parts, "\n"))
	}
	return ""
}
