package md2dox

import (
	"strings"

	"github.com/alnah/go-md2dox/internal/pipeline"
)

// Page file layout.
const (
	PageExtension    = "dox"
	DefaultOutputDir = "pages/generated"

	commentOpen  = "/*!"
	commentClose = "*/"

	// Sub-pages are declared inside a hidden block so Doxygen builds the
	// navigation hierarchy without rendering the references.
	hiddenOpen  = "<div style=display:none;>"
	hiddenClose = "</div>"
)

// RenderPage wraps already transformed lines in a Doxygen comment block.
// The output starts with the two-line preamble and ends with "*/".
func RenderPage(p Page, lines []string) string {
	var sb strings.Builder

	sb.WriteString(commentOpen + "\n")
	// The trailing space after the title is part of the page format.
	sb.WriteString("@page " + p.ID + " " + p.Title + " \n")

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if len(p.SubPages) > 0 {
		sb.WriteString(hiddenOpen + "\n")
		for _, sub := range p.SubPages {
			sb.WriteString("@subpage " + sub + "\n")
		}
		sb.WriteString(hiddenClose + "\n")
	}

	sb.WriteString(commentClose)
	return sb.String()
}

// TransformPage runs markdown lines through the default rule pipeline and
// renders the page.
func TransformPage(p Page, lines []string) string {
	return RenderPage(p, pipeline.Default().Lines(lines))
}
