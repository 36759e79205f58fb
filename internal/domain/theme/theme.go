// Package theme defines the color-scheme preference and how it resolves
// against the client's own dark-mode preference.
package theme

import "strings"

// Theme is a persisted color-scheme preference.
type Theme string

const (
	System Theme = "system"
	Light  Theme = "light"
	Dark   Theme = "dark"
)

// Valid returns true if t is one of the known themes.
func (t Theme) Valid() bool {
	return t == System || t == Light || t == Dark
}

// Parse reads a stored preference. Empty or unknown values fall back to System.
func Parse(s string) Theme {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return System
	}
	return t
}

// Resolve reports whether the dark scheme should be applied.
// System follows the client's prefers-color-scheme signal.
func Resolve(t Theme, prefersDark bool) bool {
	switch t {
	case Dark:
		return true
	case Light:
		return false
	default:
		return prefersDark
	}
}

// ClassName returns the root element class for the resolved scheme.
func ClassName(t Theme, prefersDark bool) string {
	if Resolve(t, prefersDark) {
		return "dark"
	}
	return ""
}
