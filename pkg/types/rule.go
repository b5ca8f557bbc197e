package types

import "strings"

// MatchSpec holds the criteria half of a rule. Every criterion that is
// present must hold for the rule to match (AND logic); absent criteria are
// not applied. A spec with no criteria at all is vacuous and rejected at
// validation time.
type MatchSpec struct {
	Contains   []string `yaml:"contains,omitempty"`   // Case-insensitive substrings of the base name (any one suffices).
	Extensions []string `yaml:"extensions,omitempty"` // File extensions including the leading dot (e.g. ".pdf").
	Pattern    string   `yaml:"pattern,omitempty"`    // Glob matched against the base name (e.g. "report_*.docx").
}

// Empty reports whether the spec carries no criteria at all.
func (m MatchSpec) Empty() bool {
	return len(m.Contains) == 0 && len(m.Extensions) == 0 && m.Pattern == ""
}

// Rule pairs match criteria with a destination folder. Rules live in an
// ordered store; the first rule that matches a file wins.
type Rule struct {
	Name        string    `yaml:"name"`
	Match       MatchSpec `yaml:"match"`
	Destination string    `yaml:"destination"` // Folder path relative to the scanned root (e.g. "Images/Screenshots").
}

// NormalizeExt lowercases an extension and ensures the leading dot, so
// "PDF", "pdf" and ".pdf" all compare equal.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
