package md2dox

// Page is one manifest entry: a markdown source rendered as a Doxygen page.
type Page struct {
	ID       string   // output file name and @page anchor
	Source   string   // markdown path, relative to the work directory
	Title    string   // display title
	SubPages []string // IDs declared with @subpage, in order
}

// OutputName returns the page's file name, e.g. "contributing.dox".
func (p Page) OutputName() string {
	return p.ID + "." + PageExtension
}

// Manifest is the ordered list of pages to build.
type Manifest []Page

// defaultManifest is never handed out directly; see DefaultManifest.
var defaultManifest = Manifest{
	{ID: "cmake_build_system", Source: "../../cmake/README.md", Title: "CMake build system"},
	{ID: "build_fedora", Source: "../README.Fedora.md", Title: "Fedora build guide"},
	{ID: "build_android", Source: "../README.Android.md", Title: "Android build guide"},
	{ID: "build_freebsd", Source: "../README.FreeBSD.md", Title: "FreeBSD build guide"},
	{ID: "build_ios", Source: "../README.iOS.md", Title: "iOS build guide"},
	{ID: "build_linux", Source: "../README.Linux.md", Title: "Linux build guide"},
	{ID: "build_macos", Source: "../README.macOS.md", Title: "macOS build guide"},
	{ID: "build_opensuse", Source: "../README.openSUSE.md", Title: "openSUSE build guide"},
	{ID: "build_tvos", Source: "../README.tvOS.md", Title: "tvOS build guide"},
	{ID: "build_ubuntu", Source: "../README.Ubuntu.md", Title: "Debian/Ubuntu build guide"},
	{ID: "build_windows", Source: "../README.Windows.md", Title: "Windows build guide"},
	{ID: "code_guidelines", Source: "../CODE_GUIDELINES.md", Title: "Code Guidelines"},
	{ID: "git_fu", Source: "../GIT-FU.md", Title: "Git tutorial"},
	{ID: "contributing", Source: "../CONTRIBUTING.md", Title: "3: Contributing", SubPages: []string{"git_fu", "code_guidelines"}},
}

// DefaultManifest returns a copy of the built-in page list. Paths are
// relative to docs/doxygen, where Doxyfile.doxy lives.
func DefaultManifest() Manifest {
	return defaultManifest.Clone()
}

// Clone returns a deep copy of m.
func (m Manifest) Clone() Manifest {
	if m == nil {
		return nil
	}
	out := make(Manifest, len(m))
	for i, p := range m {
		out[i] = p
		if p.SubPages != nil {
			out[i].SubPages = append([]string(nil), p.SubPages...)
		}
	}
	return out
}

// Lookup returns the page with the given ID.
func (m Manifest) Lookup(id string) (Page, bool) {
	for _, p := range m {
		if p.ID == id {
			return p, true
		}
	}
	return Page{}, false
}

// DanglingRef is a sub-page reference with no matching manifest entry.
type DanglingRef struct {
	Page    string
	SubPage string
}

// Dangling lists sub-page references that do not resolve. Building never
// calls it: a dangling reference only yields a broken link in the output.
func (m Manifest) Dangling() []DanglingRef {
	var refs []DanglingRef
	for _, p := range m {
		for _, sub := range p.SubPages {
			if _, ok := m.Lookup(sub); !ok {
				refs = append(refs, DanglingRef{Page: p.ID, SubPage: sub})
			}
		}
	}
	return refs
}
