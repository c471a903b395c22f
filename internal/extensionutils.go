package extensions

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// FileName returns the final named component of path along with its byte
// offset in path. Trailing separators are skipped, as are "." components
// that do not lead the path, so "a/b/." names "b". ok is false when the
// path is empty, consists only of separators, is a lone leading ".", or
// ends in "..".
func FileName(path string) (name string, start int, ok bool) {
	end := len(path)
	for {
		for end > 0 && isSep(path[end-1]) {
			end--
		}
		if end == 0 {
			return "", 0, false
		}

		i := end - 1
		for i >= 0 && !isSep(path[i]) {
			i--
		}
		name = path[i+1 : end]

		switch name {
		case ".":
			if i < 0 {
				return "", 0, false
			}
			end = i
			continue
		case "..":
			return "", 0, false
		}
		return name, i + 1, true
	}
}

// SplitExt splits a file name at its last dot. A name with nothing before
// that dot (".profile") or the name ".." has no extension. The extension
// may be empty, as in "file.".
func SplitExt(name string) (stem, ext string, ok bool) {
	if name == ".." {
		return name, "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}

// Lossy returns s with every byte that is not part of valid UTF-8 replaced
// by U+FFFD. Valid input is returned unchanged.
func Lossy(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, err := unicode.UTF8.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return out
}

func isSep(c byte) bool {
	return os.IsPathSeparator(c)
}
