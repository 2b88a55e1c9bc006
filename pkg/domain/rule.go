package domain

// Rule is a single guarded transition. Rules are data: each state owns an
// ordered list, evaluated top-down, first match wins.
type Rule struct {
	// Keywords guard the rule. A rule matches when any entry is present in
	// the message (token sequence containment, see pkg/matcher). An empty
	// guard marks the state's default rule and always matches.
	Keywords []string

	// Next is the state to transition to. Empty means stay put.
	Next StateID

	// DataPatch is merged into Session.UserData on match.
	DataPatch map[string]string

	// ContextPatch is merged into Session.Context on match.
	ContextPatch map[string]string

	// ContentKey selects the response text from the content provider.
	ContentKey string

	// Options are the quick replies offered alongside the response.
	Options []string
}

// Default reports whether the rule is a state's unconditional fallback.
func (r Rule) Default() bool {
	return len(r.Keywords) == 0
}

// Outcome is the engine's verdict for one turn: a pure value, no I/O.
// The caller applies it to the session and renders the content key.
type Outcome struct {
	Next         StateID
	DataPatch    map[string]string
	ContextPatch map[string]string

	// Reset asks the caller to clear the session before applying Next.
	Reset bool

	// Fallback marks that no guard matched and the state's default rule
	// (or the global fallback) produced this outcome.
	Fallback bool

	// GlobalCommand names the override that produced this outcome
	// ("restart" or "help"), empty for ordinary transitions.
	GlobalCommand string

	ContentKey string

	// ContentData is the full merged view of user data for this turn
	// (accumulated values plus this turn's patch), passed to the renderer.
	ContentData map[string]string

	Options []string
}

// Reply is what a turn returns to the caller: rendered text, quick replies
// and the state the session landed on.
type Reply struct {
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
	State   StateID  `json:"state"`
}
