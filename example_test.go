package md2dox_test

import (
	"fmt"
	"strings"

	md2dox "github.com/alnah/go-md2dox"
)

// Example renders a page from markdown lines without touching the filesystem.
func Example() {
	page := md2dox.Page{ID: "build_linux", Title: "Linux build guide"}

	out := md2dox.TransformPage(page, []string{
		"# Linux build guide",
		"## Table of Contents",
		"### Prerequisites",
		"**NOTE:** run as a regular user",
	})

	// The @page line ends with a space; trim it so the listing stays readable.
	for _, line := range strings.Split(out, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	// Output:
	// /*!
	// @page build_linux Linux build guide
	// <hr>
	// ## Prerequisites
	// @note run as a regular user
	// */
}

// ExampleManifest_Dangling lists sub-page references without a page.
func ExampleManifest_Dangling() {
	m := md2dox.Manifest{
		{ID: "contributing", SubPages: []string{"git_fu", "style"}},
		{ID: "git_fu"},
	}

	for _, ref := range m.Dangling() {
		fmt.Printf("%s -> %s\n", ref.Page, ref.SubPage)
	}
	// Output: contributing -> style
}

// ExampleDefaultManifest prints the pages declaring sub-pages.
func ExampleDefaultManifest() {
	for _, p := range md2dox.DefaultManifest() {
		if len(p.SubPages) > 0 {
			fmt.Printf("%s: %s\n", p.ID, strings.Join(p.SubPages, ", "))
		}
	}
	// Output: contributing: git_fu, code_guidelines
}
