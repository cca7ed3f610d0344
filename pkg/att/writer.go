package att

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/transducer/pkg/domain"
)

// Write serializes table as AT&T rows: transitions first, then accepting states.
//
// Transitions leaving the start state are written before all others so that
// reading the output back yields the same start state. Within that constraint
// the table's key order and arc order are preserved.
func Write(w io.Writer, table *domain.Table) error {
	start := table.Start()
	transitions := table.Transitions()

	rows := make([]domain.Transition, 0, len(transitions))
	var rest []domain.Transition
	for _, t := range transitions {
		if t.From == start {
			rows = append(rows, t)
		} else {
			rest = append(rest, t)
		}
	}
	rows = append(rows, rest...)

	accepting := table.Accepting()
	leadsWithStart := len(rows) > 0 && rows[0].From == start
	if table.HasStart() && !leadsWithStart && !table.IsAccepting(start) {
		return fmt.Errorf("start state %q has no outgoing transition and is not accepting", start)
	}

	bw := bufio.NewWriter(w)
	if table.HasStart() && !leadsWithStart {
		// the start state can only lead the file as an accepting row
		fmt.Fprintln(bw, start)
		accepting = without(accepting, start)
	}
	for _, t := range rows {
		fmt.Fprintln(bw, strings.Join([]string{t.From, t.To, field(t.Input), field(t.Output)}, "\t"))
	}
	for _, s := range accepting {
		fmt.Fprintln(bw, s)
	}
	return bw.Flush()
}

// String renders table in AT&T form, ignoring errors.
func String(table *domain.Table) string {
	var sb strings.Builder
	_ = Write(&sb, table)
	return sb.String()
}

// field writes an empty symbol as epsilon, which is the only way to keep the row at four columns.
func field(symbol string) string {
	if symbol == "" {
		return domain.Epsilon
	}
	return symbol
}

func without(list []string, s string) []string {
	out := list[:0:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
