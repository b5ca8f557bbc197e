// Package classify decides which rule, if any, claims each scanned file.
// It is pure: no filesystem access, no shared state, so the same inputs
// always produce the same plan.
package classify

import (
	"strings"

	"cleanify/internal/log"
	"cleanify/pkg/types"

	"github.com/gobwas/glob"
)

// Matches reports whether a file satisfies a rule. Every criterion present
// on the rule must hold; absent criteria are not applied. A rule with no
// criteria matches nothing (the store rejects those at load time, this is
// the backstop).
func Matches(file types.FileRecord, rule types.Rule) bool {
	if rule.Match.Empty() {
		return false
	}

	if len(rule.Match.Contains) > 0 && !containsAny(file.Name, rule.Match.Contains) {
		return false
	}

	if len(rule.Match.Extensions) > 0 && !extensionIn(file.Ext, rule.Match.Extensions) {
		return false
	}

	if rule.Match.Pattern != "" {
		matcher, err := glob.Compile(rule.Match.Pattern)
		if err != nil {
			// Validation catches bad patterns at load; a rule that slips
			// through simply never matches.
			log.Warn("rule %s has invalid pattern %q: %v", rule.Name, rule.Match.Pattern, err)
			return false
		}
		if !matcher.Match(file.Name) {
			return false
		}
	}

	return true
}

// containsAny reports whether the base name holds any of the tokens,
// case-insensitively.
func containsAny(name string, tokens []string) bool {
	lower := strings.ToLower(name)
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(token)) {
			return true
		}
	}
	return false
}

// extensionIn reports set membership after normalizing both sides.
func extensionIn(ext string, extensions []string) bool {
	ext = types.NormalizeExt(ext)
	for _, candidate := range extensions {
		if ext == types.NormalizeExt(candidate) {
			return true
		}
	}
	return false
}
