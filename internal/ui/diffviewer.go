// internal/ui/diffviewer.go
package ui

import (
	"fmt"
	"html"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TanaroSch/dictation-hotkey/internal/diffutil"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const changePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif;
            margin: 15px;
            background-color: #f8f9fa;
            color: #212529;
        }
        h1, h2 { border-bottom: 1px solid #dee2e6; padding-bottom: 8px; color: #0d6efd; }
        pre {
            font-family: SFMono-Regular, Menlo, Consolas, "Liberation Mono", monospace;
            border: 1px solid #dee2e6;
            background-color: #fff;
            padding: 10px;
            border-radius: 4px;
        }
        .line { display: flex; min-height: 1.4em; }
        .line-op { width: 15px; margin-right: 10px; font-weight: bold; user-select: none; }
        .diff-insert { background-color: #e6ffed; color: #198754; }
        .diff-delete { background-color: #ffeef0; color: #dc3545; text-decoration: line-through; }
    </style>
</head>
<body>
    <h1>%s</h1>
    <h2>Summary</h2>
    <pre class="summary">%s</pre>
    <h2>Changed Settings</h2>
    %s
</body>
</html>
`

// renderChangesHTML renders the changed setting lines as a page body.
func renderChangesHTML(title, summary string, changes []diffutil.Change) string {
	var b strings.Builder
	b.WriteString(`<pre class="diff-output">`)
	for _, c := range changes {
		writeChangeLine(&b, c)
	}
	b.WriteString(`</pre>`)
	return fmt.Sprintf(changePageTemplate,
		html.EscapeString(title),
		html.EscapeString(title),
		html.EscapeString(summary),
		b.String(),
	)
}

func writeChangeLine(b *strings.Builder, c diffutil.Change) {
	class, op := "diff-insert", "+"
	if c.Type == diffmatchpatch.DiffDelete {
		class, op = "diff-delete", "-"
	}
	fmt.Fprintf(b,
		"<div class=\"line %s\"><span class=\"line-op\">%s</span><span class=\"line-content\">%s</span></div>",
		class, op, html.EscapeString(c.Text))
}

// ShowChangeDetails writes the difference between two settings summaries
// to a temporary HTML page and opens it in the default browser. The page
// is removed after a minute.
func ShowChangeDetails(title, before, after string) error {
	changes, summary := diffutil.GenerateDiffAndSummary(before, after)
	page := renderChangesHTML(title, summary, changes)

	tmpFile, err := os.CreateTemp("", "dictkey-changes-*.html")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	if _, err := tmpFile.WriteString(page); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return fmt.Errorf("could not write change details: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		log.Printf("Error closing temp file after write: %v", err)
	}

	absPath, err := filepath.Abs(tmpFile.Name())
	if err != nil {
		absPath = tmpFile.Name()
	}
	log.Printf("Change details saved to: %s", absPath)

	time.AfterFunc(time.Minute, func() {
		if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
			log.Printf("Error deleting temporary change file %s: %v", absPath, err)
		}
	})

	if err := OpenFileInDefaultApp(absPath); err != nil {
		return fmt.Errorf("could not open change details (saved at %s): %w", absPath, err)
	}
	return nil
}
