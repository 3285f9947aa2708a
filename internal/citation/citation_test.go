package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zotclip/zotclip/internal/config"
)

const (
	locatorLink = "zotero://select/library/items/UVG6GBGT"
	pdfLink     = "zotero://open-pdf/library/items/NUG9I57I?page=2&annotation=FIFCZW5L"

	fullExport = `"loss-free balance routing" ([Team et al., 2025, p. 2](zotero://select/library/items/UVG6GBGT)) ([pdf](zotero://open-pdf/library/items/NUG9I57I?page=2&annotation=FIFCZW5L))`
	noPDF      = `"loss-free balance routing" ([Team et al., 2025, p. 2](zotero://select/library/items/UVG6GBGT))`
)

func TestMatchFullExport(t *testing.T) {
	rec, ok := Match(fullExport)
	require.True(t, ok)
	assert.Equal(t, "loss-free balance routing", rec.Title)
	assert.Equal(t, locatorLink, rec.LocatorLink)
	assert.Equal(t, pdfLink, rec.PDFLink)
}

func TestMatchQuoteVariants(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"straight double", `"loss-free balance routing"`},
		{"straight single", `'loss-free balance routing'`},
		{"curly double", "“loss-free balance routing”"},
		{"curly single", "‘loss-free balance routing’"},
		{"unquoted", `loss-free balance routing`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.title + ` ([Team et al., 2025, p. 2](` + locatorLink + `)) ([pdf](` + pdfLink + `))`
			rec, ok := Match(input)
			require.True(t, ok)
			assert.Equal(t, "loss-free balance routing", rec.Title,
				"all quote variants must yield the identical de-quoted title")
		})
	}
}

func TestMatchSpacingVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no spaces between segments", `"title"([A](` + locatorLink + `))([pdf](` + pdfLink + `))`},
		{"leading whitespace", "  \t" + fullExport},
		{"trailing whitespace", fullExport + " \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Match(tt.input)
			assert.True(t, ok)
		})
	}
}

func TestMatchWithoutPDFSegment(t *testing.T) {
	rec, ok := Match(noPDF)
	require.True(t, ok)
	assert.Equal(t, "loss-free balance routing", rec.Title)
	assert.Equal(t, locatorLink, rec.LocatorLink)
	assert.Empty(t, rec.PDFLink)
}

func TestMatchIgnoresNonPDFSecondSegment(t *testing.T) {
	input := `"title" ([A](` + locatorLink + `)) ([html](https://example.com/view))`
	rec, ok := Match(input)
	require.True(t, ok)
	assert.Empty(t, rec.PDFLink, "only a segment labeled pdf provides the PDF link")
}

func TestMatchFirstOfConcatenatedCitations(t *testing.T) {
	second := ` "second title" ([B](zotero://select/library/items/SECOND))`
	rec, ok := Match(fullExport + second)
	require.True(t, ok)
	assert.Equal(t, "loss-free balance routing", rec.Title)
	assert.Equal(t, locatorLink, rec.LocatorLink)
}

func TestMatchRejectsNonCitations(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"plain text", "This is just plain text"},
		{"markdown link", "Another [link](https://example.com)"},
		{"own markdown output", "[loss-free balance routing](" + pdfLink + ")"},
		{"bare quoted title", `"loss-free balance routing"`},
		{"parenthetical without link", `"title" (Team et al., 2025)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Match(tt.input)
			assert.False(t, ok)
		})
	}
}

func TestFormatPlain(t *testing.T) {
	rec, ok := Match(fullExport)
	require.True(t, ok)
	assert.Equal(t, "loss-free balance routing", Format(rec, config.ModePlain))
}

func TestFormatMarkdownPrefersPDFLink(t *testing.T) {
	rec, ok := Match(fullExport)
	require.True(t, ok)
	assert.Equal(t,
		"[loss-free balance routing]("+pdfLink+")",
		Format(rec, config.ModeMarkdown))
}

func TestFormatMarkdownFallsBackToLocator(t *testing.T) {
	rec, ok := Match(noPDF)
	require.True(t, ok)
	assert.Equal(t,
		"[loss-free balance routing]("+locatorLink+")",
		Format(rec, config.ModeMarkdown))
}

func TestFormatDeterministic(t *testing.T) {
	rec, ok := Match(fullExport)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		assert.Equal(t, Format(rec, config.ModeMarkdown), Format(rec, config.ModeMarkdown))
		assert.Equal(t, Format(rec, config.ModePlain), Format(rec, config.ModePlain))
	}
}
