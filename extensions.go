// Package pathext lists the dot-separated extensions of a path, outermost
// first.
//
//	pathext.Lossy("file.tar.gz") // ["gz", "tar"]
//
// Paths are treated as plain text: nothing touches the filesystem, and an
// extension is only what follows a dot in the final path component. Bytes
// that are not valid UTF-8 come out as U+FFFD.
package pathext

import (
	"iter"
	"strings"

	extensions "github.com/mholt/pathext/internal"
)

// Extensions iterates over the extensions of a path, lossily converted
// to UTF-8. Each step reads the extension of the final path component
// and then strips it, so "file.tar.gz" yields "gz" and then "tar".
//
// The zero value is an exhausted iterator.
type Extensions struct {
	path string
}

// Of returns an iterator over the extensions of path. A byte slice is
// copied, so the caller may reuse it.
func Of[P ~string | ~[]byte](path P) *Extensions {
	return &Extensions{path: string(path)}
}

// Next returns the next extension. It reports false once the path has no
// extension left, and keeps reporting false on every later call.
func (e *Extensions) Next() (string, bool) {
	name, start, ok := extensions.FileName(e.path)
	if !ok {
		return "", false
	}
	stem, ext, ok := extensions.SplitExt(name)
	if !ok {
		return "", false
	}
	e.path = e.path[:start+len(stem)]
	return extensions.Lossy(ext), true
}

// All returns the extensions not yet consumed by Next. Ranging over it
// advances e.
func (e *Extensions) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			ext, ok := e.Next()
			if !ok || !yield(ext) {
				return
			}
		}
	}
}

// Remaining returns the path with every extension returned so far removed.
func (e *Extensions) Remaining() string { return e.path }

// Lossy collects the extensions of path, outermost first.
func Lossy[P ~string | ~[]byte](path P) []string {
	var exts []string
	for ext := range Of(path).All() {
		exts = append(exts, ext)
	}
	return exts
}

// EndsWith reports whether the outermost extension of path is extension,
// ignoring case and surrounding dots.
func EndsWith(path string, extension string) bool {
	ext, ok := Of(path).Next()
	return ok && strings.EqualFold(ext, strings.Trim(extension, "."))
}

// Contains reports whether extension is any of the extensions of path,
// ignoring case and surrounding dots.
func Contains(path string, extension string) bool {
	want := strings.Trim(extension, ".")
	for ext := range Of(path).All() {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
