package ui

import (
	"strings"
	"testing"

	"github.com/TanaroSch/dictation-hotkey/internal/diffutil"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestRenderChangesHTML(t *testing.T) {
	page := renderChangesHTML("Hotkey <changes>", "key: space → /", []diffutil.Change{
		{Type: diffmatchpatch.DiffDelete, Text: "key: space"},
		{Type: diffmatchpatch.DiffInsert, Text: "key: <"},
	})

	for _, want := range []string{
		"<title>Hotkey &lt;changes&gt;</title>",
		`<div class="line diff-delete"><span class="line-op">-</span><span class="line-content">key: space</span></div>`,
		`<div class="line diff-insert"><span class="line-op">+</span><span class="line-content">key: &lt;</span></div>`,
		"key: space → /",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
