package enrich

// State is where a single album is in its enrichment pass.
type State int

const (
	StatePending State = iota
	StatePrimaryQueried
	StateFallbackQueried
	StateMerged
	StateSkipped
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StatePrimaryQueried:
		return "primary_queried"
	case StateFallbackQueried:
		return "fallback_queried"
	case StateMerged:
		return "merged"
	case StateSkipped:
		return "skipped"
	}
	return "unknown"
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeNone        Outcome = ""
	OutcomeNothingToDo Outcome = "nothing_to_do"
	OutcomeCompleted   Outcome = "completed"
	OutcomeCancelled   Outcome = "cancelled"
)
