package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sahaj/pkg/domain"
)

// Exporter renders the dialogue table as a Mermaid state diagram. Output is
// deterministic: states appear in flow order, rules in guard order.
type Exporter struct {
	table map[domain.StateID][]domain.Rule
}

// NewExporter creates an exporter over the given transition table.
func NewExporter(table map[domain.StateID][]domain.Rule) *Exporter {
	return &Exporter{table: table}
}

// Mermaid produces the full diagram.
func (e *Exporter) Mermaid() string {
	return e.render("")
}

// MermaidWithCurrent produces the diagram with one state highlighted,
// for live session views.
func (e *Exporter) MermaidWithCurrent(current domain.StateID) string {
	return e.render(current)
}

func (e *Exporter) render(current domain.StateID) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeID(domain.StateStart)))

	for _, state := range domain.AllStates {
		rules, ok := e.table[state]
		if !ok {
			continue
		}
		from := sanitizeID(state)

		for _, rule := range rules {
			// Self loops from default rules are noise at this scale;
			// only real transitions are drawn.
			if rule.Next == "" || rule.Next == state {
				continue
			}
			label := guardLabel(rule.Keywords)
			sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n", from, sanitizeID(rule.Next), label))
		}
	}

	// Global restart back-edges from every state would hide the flow;
	// a single note documents them instead.
	sb.WriteString(fmt.Sprintf("    note right of %s\n", sanitizeID(domain.StateStart)))
	sb.WriteString("        restart/reset returns here from any state\n")
	sb.WriteString("    end note\n")

	if current != "" {
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")
		sb.WriteString(fmt.Sprintf("    class %s current\n", sanitizeID(current)))
	}

	return sb.String()
}

// guardLabel picks the first keyword as the edge label; the full guard list
// would not fit on a diagram.
func guardLabel(keywords []string) string {
	if len(keywords) == 0 {
		return "otherwise"
	}
	return strings.ReplaceAll(keywords[0], "\"", "'")
}

func sanitizeID(id domain.StateID) string {
	s := strings.ReplaceAll(string(id), ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
