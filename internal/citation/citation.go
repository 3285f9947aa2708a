// Package citation matches Zotero quick-copy citation exports and
// reformats them for the clipboard.
package citation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zotclip/zotclip/internal/config"
)

// Record holds the fields extracted from a single citation export.
// A Record only exists for input that matched the full citation
// grammar; PDFLink may be empty, the other fields never are.
type Record struct {
	Title       string // quoted title with the surrounding quotes stripped
	LocatorLink string // link to the item in the Zotero library
	PDFLink     string // link that opens the PDF at a page/annotation, if present
}

// citationPattern recognizes the quick-copy export shape:
//
//	"<title>" ([<author/year/page>](<locator link>)) ([pdf](<pdf link>))
//
// The title may be unquoted, spacing between segments is free, and the
// trailing pdf segment is optional. The pattern is anchored at the
// start of the payload but not the end, so when several citations are
// concatenated only the first one is extracted.
var citationPattern = regexp.MustCompile(
	`^\s*([^\n]+?)\s*\(\[[^\]\n]+\]\(([^()\n]+)\)\)(?:\s*\(\[pdf\]\(([^()\n]+)\)\))?`)

// quotedTitle strips one layer of surrounding quotes. The leading class
// holds the opening variants (straight double, straight single, curly
// double, curly single), the trailing class the closing variants; the
// two sides do not have to be the same variant.
var quotedTitle = regexp.MustCompile(`^["'“‘](.+)["'”’]$`)

// Match parses text against the citation grammar. It returns the
// extracted Record and true on success, or a zero Record and false for
// anything that is not a citation. Matching is all or nothing; a
// missing pdf segment is still a match, with an empty PDFLink.
func Match(text string) (Record, bool) {
	m := citationPattern.FindStringSubmatch(text)
	if m == nil {
		return Record{}, false
	}

	title := stripQuotes(strings.TrimSpace(m[1]))
	if title == "" {
		return Record{}, false
	}

	return Record{
		Title:       title,
		LocatorLink: strings.TrimSpace(m[2]),
		PDFLink:     strings.TrimSpace(m[3]),
	}, true
}

// Format renders a matched citation in the given output mode.
// Markdown references point at the PDF link when the export carried
// one, otherwise at the item locator; a reference with no destination
// is worse than one pointing at the item page.
func Format(rec Record, mode config.Mode) string {
	switch mode {
	case config.ModeMarkdown:
		link := rec.PDFLink
		if link == "" {
			link = rec.LocatorLink
		}
		return fmt.Sprintf("[%s](%s)", rec.Title, link)
	default:
		return rec.Title
	}
}

func stripQuotes(s string) string {
	if m := quotedTitle.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
