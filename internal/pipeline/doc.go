// Package pipeline implements the line rewrite rules that turn repository
// markdown into Doxygen page markup.
//
// Rules are pure functions over a single line. They never look at
// neighbouring lines, and a rule may drop a line but never split it:
//   - heading level shift (the page title owns the top level)
//   - callout normalization (NOTE, WARNING, TIP, Example, Exception)
//   - navigation link stripping ("[back to ...]")
//   - table of contents stripping
//   - image path correction for pages generated one directory deeper
//   - code fence and preprocessor directive escaping
//
// Writing pages, running Doxygen and filtering its output are handled by the
// root md2dox package.
package pipeline
