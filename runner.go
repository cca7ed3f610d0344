package transducer

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/transducer/pkg/domain"
)

// Format selects how the Runner prints results.
type Format string

const (
	// FormatText prints the quoted result list, one line per input.
	FormatText Format = "text"
	// FormatJSON prints one JSON object per input (NDJSON).
	FormatJSON Format = "json"
)

// Record is the NDJSON shape of one processed line.
type Record struct {
	Line    int      `json:"line"`
	Input   string   `json:"input"`
	Outputs []string `json:"outputs"`
}

// LineError reports the input line on which a batch stopped.
type LineError struct {
	Line  int
	Input string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Input, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Runner feeds an engine line by line.
// Each input line is trimmed of surrounding whitespace and produces exactly one output line.
type Runner struct {
	Input     io.Reader
	Output    io.Writer
	Direction domain.Direction
	Format    Format
}

// NewRunner creates a Runner in the given direction with text output.
// Input and Output must be set before Run.
func NewRunner(dir domain.Direction) *Runner {
	return &Runner{
		Direction: dir,
		Format:    FormatText,
	}
}

// Run processes every line until EOF. It halts on the first error, which is
// returned as a *LineError; lines processed before it have already been written.
func (r *Runner) Run(ctx context.Context, engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	scanner := bufio.NewScanner(r.Input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	writer := bufio.NewWriter(r.Output)
	defer writer.Flush()

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}

		input := strings.TrimSpace(scanner.Text())
		outputs, err := engine.Transduce(ctx, r.Direction, input)
		if err != nil {
			return &LineError{Line: line, Input: input, Err: err}
		}
		if err := r.write(writer, line, input, outputs); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}
	return nil
}

func (r *Runner) write(w io.Writer, line int, input string, outputs []string) error {
	if outputs == nil {
		outputs = []string{}
	}
	if r.Format == FormatJSON {
		data, err := json.Marshal(Record{Line: line, Input: input, Outputs: outputs})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	_, err := fmt.Fprintf(w, "%q\n", outputs)
	return err
}
