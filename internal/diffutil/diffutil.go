// internal/diffutil/diffutil.go
package diffutil

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one line that was removed or added between two settings
// summaries of the form "name: value".
type Change struct {
	Type diffmatchpatch.Operation // DiffInsert or DiffDelete
	Text string
}

// LineChanges diffs original and modified line by line. Equal lines are
// dropped.
func LineChanges(original, modified string) []Change {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, modified)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var changes []Change
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if line == "" {
				continue
			}
			changes = append(changes, Change{Type: d.Type, Text: line})
		}
	}
	return changes
}

// GenerateDiffAndSummary returns the changed lines and a one-line summary
// such as "key: space → f6, mode: toggle → hold".
func GenerateDiffAndSummary(original, modified string) (changes []Change, summary string) {
	changes = LineChanges(original, modified)
	if len(changes) == 0 {
		return nil, "No changes."
	}

	var (
		order  []string
		before = map[string]string{}
		after  = map[string]string{}
	)
	for _, c := range changes {
		name, value := splitSetting(c.Text)
		if _, seen := before[name]; !seen {
			if _, seen := after[name]; !seen {
				order = append(order, name)
			}
		}
		if c.Type == diffmatchpatch.DiffDelete {
			before[name] = value
		} else {
			after[name] = value
		}
	}

	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, fmt.Sprintf("%s: %s → %s", name, orNone(before[name]), orNone(after[name])))
	}
	return changes, strings.Join(parts, ", ")
}

// FormatChanges renders changes as unified-diff style lines for logs.
func FormatChanges(changes []Change) string {
	var b strings.Builder
	for _, c := range changes {
		switch c.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("- ")
		case diffmatchpatch.DiffInsert:
			b.WriteString("+ ")
		}
		b.WriteString(c.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func splitSetting(line string) (name, value string) {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return line, ""
	}
	return strings.TrimSpace(name), strings.TrimSpace(value)
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}
