package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/transducer/pkg/domain"
)

// SummaryMarkdown formats a table summary as a markdown document.
func SummaryMarkdown(name string, s domain.Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)
	sb.WriteString("| Property | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Start state | `%s` |\n", s.Start)
	fmt.Fprintf(&sb, "| States | %d |\n", s.States)
	fmt.Fprintf(&sb, "| Keys | %d |\n", s.Keys)
	fmt.Fprintf(&sb, "| Transitions | %d |\n", s.Transitions)
	fmt.Fprintf(&sb, "| Epsilon arcs | %d |\n", s.EpsilonArcs)

	section(&sb, "Accepting states", s.Accepting)
	section(&sb, "Input alphabet", s.InputAlphabet)
	section(&sb, "Output alphabet", s.OutputAlphabet)
	return sb.String()
}

func section(sb *strings.Builder, title string, symbols []string) {
	fmt.Fprintf(sb, "\n## %s (%d)\n\n", title, len(symbols))
	if len(symbols) == 0 {
		sb.WriteString("_none_\n")
		return
	}
	quoted := make([]string, len(symbols))
	for i, s := range symbols {
		quoted[i] = "`" + s + "`"
	}
	sb.WriteString(strings.Join(quoted, " ") + "\n")
}
