package engine

import (
	"github.com/aretw0/sahaj/pkg/domain"
	"github.com/aretw0/sahaj/pkg/matcher"
)

// Global override commands, evaluated before any per-state rule, for every
// state including terminal ones.
var (
	restartKeywords = []string{"start over", "restart", "reset"}
	helpKeywords    = []string{"help", "support", "assistance"}

	restartOptions = []string{"yes", "help", "which itr form"}
	helpOptions    = []string{"start filing", "which itr form", "document checklist", "tax calculation"}
)

// fallbackRule is the single global default applied when the session carries
// a state the table does not know. It never errors: the user gets a re-prompt
// and the state is left untouched.
var fallbackRule = domain.Rule{
	ContentKey: "fallback",
	Options:    []string{"start filing", "help", "which itr form", "start over"},
}

// Engine evaluates one dialogue turn against the transition table.
// Evaluation is a pure function of (state, userData, message): no I/O, no
// side effects beyond the returned outcome.
type Engine struct {
	table map[domain.StateID][]domain.Rule
}

// New creates an engine backed by the built-in filing dialogue table.
func New() *Engine {
	return &Engine{table: dialogueTable}
}

// Table exposes the transition table for introspection (graph export, tests).
func (e *Engine) Table() map[domain.StateID][]domain.Rule {
	return e.table
}

// Evaluate resolves the outcome for a single turn. Precedence:
//
//  1. Global overrides (restart, help), irrespective of state.
//  2. The state's ordered guard list; first match wins.
//  3. The state's default rule, or the global fallback for unknown states.
//
// No path errors; every (state, message) pair yields an outcome.
func (e *Engine) Evaluate(state domain.StateID, userData map[string]string, message string) domain.Outcome {
	if matcher.Matches(message, restartKeywords) {
		return domain.Outcome{
			Next:          domain.StateStart,
			Reset:         true,
			GlobalCommand: "restart",
			ContentKey:    "restart",
			ContentData:   map[string]string{},
			Options:       restartOptions,
		}
	}

	if matcher.Matches(message, helpKeywords) {
		return domain.Outcome{
			Next:          state,
			GlobalCommand: "help",
			ContentKey:    "help",
			ContentData:   mergeData(userData, nil),
			Options:       helpOptions,
		}
	}

	if state == domain.StateEnterPersonalDetails {
		if out, ok := e.evaluatePAN(state, userData, message); ok {
			return out
		}
	}

	rules, known := e.table[state]
	if !known {
		out := e.apply(state, fallbackRule, userData)
		out.Fallback = true
		return out
	}

	for _, rule := range rules {
		if rule.Default() {
			out := e.apply(state, rule, userData)
			out.Fallback = true
			return out
		}
		if matcher.Matches(message, rule.Keywords) {
			return e.apply(state, rule, userData)
		}
	}

	// A state without a default rule is a table construction error; degrade
	// to the global fallback rather than failing the turn.
	out := e.apply(state, fallbackRule, userData)
	out.Fallback = true
	return out
}

// evaluatePAN handles the structured-input special case of the personal
// details step: a PAN pattern is recognized anywhere in the raw text, not
// just as a token. A malformed attempt re-prompts without advancing; any
// other input falls through to the state's ordinary rules.
func (e *Engine) evaluatePAN(state domain.StateID, userData map[string]string, message string) (domain.Outcome, bool) {
	if pan, ok := matcher.ExtractPAN(message); ok {
		patch := map[string]string{"pan": pan}
		return domain.Outcome{
			Next:        domain.StateResidentialStatus,
			DataPatch:   patch,
			ContentKey:  "pan_recorded",
			ContentData: mergeData(userData, patch),
			Options:     []string{"resident", "non-resident", "not sure"},
		}, true
	}

	if matcher.Matches(message, []string{"pan", "enter pan"}) {
		return domain.Outcome{
			Next:        state,
			ContentKey:  "pan_invalid",
			ContentData: mergeData(userData, nil),
			Options:     []string{"need help", "what is PAN format"},
		}, true
	}

	return domain.Outcome{}, false
}

func (e *Engine) apply(state domain.StateID, rule domain.Rule, userData map[string]string) domain.Outcome {
	next := rule.Next
	if next == "" {
		next = state
	}
	return domain.Outcome{
		Next:         next,
		DataPatch:    rule.DataPatch,
		ContextPatch: rule.ContextPatch,
		ContentKey:   rule.ContentKey,
		ContentData:  mergeData(userData, rule.DataPatch),
		Options:      rule.Options,
	}
}

// mergeData builds the full user-data view for content rendering: the
// accumulated values overlaid with this turn's patch. The inputs are never
// mutated.
func mergeData(userData, patch map[string]string) map[string]string {
	merged := make(map[string]string, len(userData)+len(patch))
	for k, v := range userData {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
