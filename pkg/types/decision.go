package types

// Decision is the planner's verdict for one scanned file: either the first
// rule in store order that matched, or nothing. Decisions are consumed once,
// by the mover or by a preview renderer.
type Decision struct {
	File        FileRecord
	Rule        *Rule  // nil when no rule matched
	Destination string // Rule.Destination, "" when unmatched
}

// Matched reports whether a rule claimed this file.
func (d Decision) Matched() bool {
	return d.Rule != nil
}

// MoveOutcome holds the result of one executed or simulated move.
type MoveOutcome struct {
	Source    string `json:"source"`
	FinalPath string `json:"final_path"`
	Renamed   bool   `json:"renamed"` // True when a collision forced a numeric suffix.
	Moved     bool   `json:"moved"`   // False in dry-run mode and on error.
	Err       error  `json:"error,omitempty"`
}

// Summary aggregates a whole organize session.
type Summary struct {
	Classified int // Files claimed by some rule.
	Skipped    int // Files no rule matched.
	Moved      int // Moves that actually happened (always 0 in dry-run).
	Failed     int // Moves that errored; the batch continues past these.
}
