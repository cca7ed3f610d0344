package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/transducer/pkg/domain"
)

// Overlay marks states to highlight on the chart, e.g. states named by validation issues.
type Overlay struct {
	Flagged []string
}

// GenerateMermaid produces a Mermaid flowchart of a transition table.
// Shapes:
// - Accepting: (((Double circle)))
// - Other states: ((Circle))
// The start state gets the "start" class. Each arc is one edge labelled input:output,
// with the epsilon marker drawn as ε.
func GenerateMermaid(table *domain.Table, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, state := range table.States() {
		opener, closer := "((", "))"
		if table.IsAccepting(state) {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(state), opener, escapeLabel(state), closer)
	}

	for _, t := range table.Transitions() {
		arrow := "-->"
		if t.IsEpsilon() {
			arrow = "-.->"
		}
		label := escapeLabel(symbol(t.Input) + ":" + symbol(t.Output))
		fmt.Fprintf(&sb, "    %s %s|\"%s\"| %s\n", sanitizeMermaidID(t.From), arrow, label, sanitizeMermaidID(t.To))
	}

	if table.HasStart() {
		sb.WriteString("\n    classDef start stroke:#01579b,stroke-width:4px;\n")
		fmt.Fprintf(&sb, "    class %s start;\n", sanitizeMermaidID(table.Start()))
	}

	if overlay != nil && len(overlay.Flagged) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef flagged fill:#ffcdd2,stroke:#b71c1c,stroke-width:2px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Flagged {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s flagged;\n", safeID)
			}
		}
	}

	return sb.String()
}

func symbol(s string) string {
	if s == "" || s == domain.Epsilon {
		return "ε"
	}
	return s
}

// escapeLabel uses Mermaid entity codes for characters that break quoted labels.
func escapeLabel(s string) string {
	r := strings.NewReplacer(
		"\"", "#quot;",
		"<", "#lt;",
		">", "#gt;",
	)
	return r.Replace(s)
}

// sanitizeMermaidID prefixes the ID so numeric states stay valid and replaces
// anything outside [A-Za-z0-9_].
func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	sb.WriteString("s_")
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
