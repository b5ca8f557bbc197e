package organize

import (
	"cleanify/internal/classify"
	"cleanify/internal/errors"
	"cleanify/internal/scan"
	"cleanify/pkg/types"
)

// Result bundles everything one organize pass produced: the per-file plan,
// the per-move outcomes, and the aggregate counts.
type Result struct {
	Decisions []types.Decision
	Outcomes  []types.MoveOutcome
	Summary   types.Summary
}

// Organize scans root, plans every top-level file against the rules, and
// executes (or simulates) the resulting moves. Per-file failures land in
// the summary; only the scan itself can fail the whole pass.
func (e *Engine) Organize(root string, rules []types.Rule) (*Result, error) {
	files, err := scan.Directory(root)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot scan %s", root)
	}

	decisions := classify.Plan(files, rules)
	outcomes := e.Execute(root, decisions)

	return &Result{
		Decisions: decisions,
		Outcomes:  outcomes,
		Summary:   Summarize(decisions, outcomes),
	}, nil
}

// Summarize derives the session counts from a plan and its outcomes.
func Summarize(decisions []types.Decision, outcomes []types.MoveOutcome) types.Summary {
	var summary types.Summary
	for _, decision := range decisions {
		if decision.Matched() {
			summary.Classified++
		} else {
			summary.Skipped++
		}
	}
	for _, outcome := range outcomes {
		switch {
		case outcome.Err != nil:
			summary.Failed++
		case outcome.Moved:
			summary.Moved++
		}
	}
	return summary
}
