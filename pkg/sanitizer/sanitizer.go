// Package sanitizer normalizes untrusted values before they reach storage.
//
// All functions are idempotent and handle hostile input by stripping rather
// than erroring: a filename that sanitizes to nothing comes back as "file".
package sanitizer

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Filename reduces a client-supplied filename to a safe base name: directory
// components, control characters and path separators are removed so the value
// can be embedded in an on-disk stored name.
func Filename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsControl(r):
			continue
		case r == '/' || r == '\x00':
			continue
		default:
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "file"
	}
	return cleaned
}

// Extension returns the lower-cased extension of name without the leading dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
