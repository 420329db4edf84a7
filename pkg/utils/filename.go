package utils

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename strips path components from a client-supplied file name and
// replaces characters that are unsafe in object keys.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}

		return '_'
	}, name)

	if name == "" || name == "." || name == ".." {
		return "file"
	}

	return name
}
