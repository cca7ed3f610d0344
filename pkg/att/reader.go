package att

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/transducer/pkg/domain"
)

// maxLineSize bounds a single row; lexicon tables can carry long multi-character symbols.
const maxLineSize = 1 << 20

// Parse reads an AT&T table from r.
// It fails with a *domain.FormatError on the first row that has neither 1 nor 4 fields.
func Parse(r io.Reader) (*domain.Table, error) {
	table := domain.NewTable()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())

		switch len(fields) {
		case 1:
			table.Accept(fields[0])
		case 4:
			// source target input output
			table.Add(fields[0], fields[1], fields[2], fields[3])
		default:
			return nil, &domain.FormatError{Line: line, Fields: len(fields), Text: scanner.Text()}
		}

		if line == 1 {
			table.SetStart(fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	return table, nil
}

// ParseString reads an AT&T table from a string.
func ParseString(s string) (*domain.Table, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile reads an AT&T table from a local file.
func ParseFile(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
