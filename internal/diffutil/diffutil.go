// Package diffutil renders the difference between the original
// clipboard text and the reformatted citation for the last-change view.
package diffutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Inline renders a character-level diff of original against modified
// as a single string, with deletions wrapped in [-...-] and insertions
// in {+...+}. Citations are single-line, so an inline rendering reads
// better than a unified line diff.
func Inline(original, modified string) string {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 5 * time.Second

	diffs := dmp.DiffMain(original, modified, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(d.Text)
			b.WriteString("+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Summary returns a short one-line account of how much text the
// rewrite removed and added.
func Summary(original, modified string) string {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 5 * time.Second

	diffs := dmp.DiffMain(original, modified, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var removed, added int
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			removed += n
		case diffmatchpatch.DiffInsert:
			added += n
		}
	}
	return fmt.Sprintf("%d characters removed, %d added (%d -> %d)",
		removed, added, len([]rune(original)), len([]rune(modified)))
}
