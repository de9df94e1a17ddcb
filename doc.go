// Package md2dox builds Doxygen pages from repository markdown files.
//
// # Quick Start
//
// Run from the directory holding Doxyfile.doxy:
//
//	b := md2dox.NewBuilder()
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Pages), "pages")
//
// # Build Steps
//
// Build runs these steps in order and stops at the first fatal error:
//
//  1. For each manifest page: delete the old output, read the markdown
//     source, rewrite it line by line, write pages/generated/<id>.dox
//  2. Run "doxygen Doxyfile.doxy" (a failure is logged, not fatal, unless
//     WithStrict is set)
//  3. Remove the Bug List, Todo List and Deprecated List entries from
//     ../html/navtreedata.js
//
// The line rules live in internal/pipeline. They are plain text
// substitutions applied in a fixed order; nothing parses markdown.
//
// # Page Format
//
//	/*!
//	@page contributing 3: Contributing
//	...transformed markdown...
//	<div style=display:none;>
//	@subpage git_fu
//	@subpage code_guidelines
//	</div>
//	*/
//
// # Configuration
//
// Use functional options to change paths or the generator:
//
//	b := md2dox.NewBuilder(
//	    md2dox.WithWorkDir("docs/doxygen"),
//	    md2dox.WithGenerator(md2dox.NewDoxygenGenerator("/opt/bin/doxygen", "Doxyfile.doxy")),
//	    md2dox.WithPagesOnly(true),
//	)
//
// The manifest itself is compiled in (DefaultManifest). Sub-page references
// are not checked while building; Manifest.Dangling reports them.
//
// # Watching
//
// Builder.Watch rewrites pages whenever their sources change, using fsnotify
// on the source directories.
package md2dox
