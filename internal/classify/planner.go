package classify

import "cleanify/pkg/types"

// Plan evaluates every file against the rules in store order and returns
// one decision per file, preserving input order. The first matching rule
// wins and later rules are never consulted for that file — rule order is
// user-controlled and the tie-break must stay predictable, not "most
// specific".
func Plan(files []types.FileRecord, rules []types.Rule) []types.Decision {
	decisions := make([]types.Decision, 0, len(files))
	for _, file := range files {
		decisions = append(decisions, Classify(file, rules))
	}
	return decisions
}

// Classify evaluates a single file against the rules in order.
func Classify(file types.FileRecord, rules []types.Rule) types.Decision {
	for i := range rules {
		if Matches(file, rules[i]) {
			return types.Decision{
				File:        file,
				Rule:        &rules[i],
				Destination: rules[i].Destination,
			}
		}
	}
	return types.Decision{File: file}
}
