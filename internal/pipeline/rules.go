package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled patterns for the line rules.
var (
	// In-page navigation aids such as "[back to top](#top)".
	navigationLinkPattern = regexp.MustCompile(`\[back to.+?\]`)

	// Numbered, bold-linked list items: "1. **[Intro](#intro)**".
	tocEntryPattern = regexp.MustCompile(`\d+.+?\*\*\[.+?\]\(.+?\)\*\*`)
)

// tocPhrase is matched case-insensitively.
const tocPhrase = "table of contents"

// Horizontal rule emitted in place of a document's own top-level heading.
const HorizontalRule = "<hr>"

// Rule rewrites one line. It returns false when the line must be dropped.
type Rule func(line string) (string, bool)

// Pipeline is an ordered list of rules. Each rule sees the output of the
// previous one, so order matters.
type Pipeline []Rule

// Default returns the rule pipeline used for every manifest page.
func Default() Pipeline {
	return Pipeline{
		ShiftHeadings,
		NormalizeCallouts,
		StripNavigationLinks,
		StripTableOfContents,
		RewriteImages,
		EscapeCode,
	}
}

// Line folds a single line through every rule. A dropped line stops the fold.
func (p Pipeline) Line(line string) (string, bool) {
	for _, rule := range p {
		var keep bool
		line, keep = rule(line)
		if !keep {
			return "", false
		}
	}
	return line, true
}

// Lines applies the pipeline to every line and returns the survivors in order.
// The result never has more lines than the input.
func (p Pipeline) Lines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if rewritten, keep := p.Line(line); keep {
			out = append(out, rewritten)
		}
	}
	return out
}

// ShiftHeadings lifts headings by one level so the page title generated by
// Doxygen stays the only top-level heading. Every "##" in a line starting
// with "##" collapses to "#"; a "# " heading turns into a horizontal rule.
func ShiftHeadings(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "##"):
		return strings.ReplaceAll(line, "##", "#"), true
	case strings.HasPrefix(line, "# "):
		return HorizontalRule, true
	}
	return line, true
}

// replacements are applied one after another, each over the whole line, so
// a later pair can match text produced by an earlier one.
type replacements [][2]string

func (r replacements) apply(line string) string {
	for _, pair := range r {
		line = strings.ReplaceAll(line, pair[0], pair[1])
	}
	return line
}

// calloutReplacements map bold callout tokens to Doxygen commands.
// TIP stays visible inside a note.
var calloutReplacements = replacements{
	{"**NOTE:**", "@note"},
	{"**WARNING:**", "@warning"},
	{"**TIP:**", "@note **TIP:**"},
	{"**Example:**", "<b>Example:</b>"},
	{"**Exception:**", "@exception"},
}

// NormalizeCallouts rewrites bold NOTE/WARNING/TIP/Example/Exception markers.
func NormalizeCallouts(line string) (string, bool) {
	return calloutReplacements.apply(line), true
}

// StripNavigationLinks drops "[back to ...]" lines.
func StripNavigationLinks(line string) (string, bool) {
	if navigationLinkPattern.MatchString(line) {
		return "", false
	}
	return line, true
}

// StripTableOfContents drops TOC headings and numbered bold-link TOC entries.
// Doxygen builds its own navigation.
func StripTableOfContents(line string) (string, bool) {
	if strings.Contains(strings.ToLower(line), tocPhrase) {
		return "", false
	}
	if tocEntryPattern.MatchString(line) {
		return "", false
	}
	return line, true
}

// imageReplacements fix image paths for pages generated one directory deeper
// than their sources. The logo is matched first and in full.
var imageReplacements = replacements{
	{"![Kodi Logo](../docs/resources/banner_slim.png)", "![Kodi Logo](../resources/banner_slim.png)"},
	{"](resources/", "](../resources/"},
}

// RewriteImages corrects the logo reference and resources/ image paths.
func RewriteImages(line string) (string, bool) {
	return imageReplacements.apply(line), true
}

// codeReplacements keep preprocessor lines and comment markers from being
// read as Doxygen commands.
var codeReplacements = replacements{
	{"```cpp", "```"},
	{"#pragma", `\#pragma`},
	{"#ifndef", `\#ifndef`},
	{"#endif", `\#endif`},
	{"`/*! */`", `<code>\/\*! \*\/</code>`},
}

// EscapeCode strips cpp fence tags and escapes directive-like tokens.
func EscapeCode(line string) (string, bool) {
	return codeReplacements.apply(line), true
}
