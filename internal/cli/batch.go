package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/pkg/domain"
)

// BatchOptions configures RunBatch.
type BatchOptions struct {
	Direction domain.Direction
	InputPath string // "-" reads stdin
	JSON      bool
	Stdin     io.Reader
	Stdout    io.Writer
}

// RunBatch transduces every line of the input file and writes one result line per input line.
func RunBatch(ctx context.Context, engine *transducer.Engine, opts BatchOptions) error {
	var input io.Reader = opts.Stdin
	if opts.InputPath != "-" {
		f, err := os.Open(opts.InputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		input = f
	}
	if input == nil {
		input = os.Stdin
	}

	output := opts.Stdout
	if output == nil {
		output = os.Stdout
	}

	r := transducer.NewRunner(opts.Direction)
	r.Input = input
	r.Output = output
	if opts.JSON {
		r.Format = transducer.FormatJSON
	}
	return r.Run(ctx, engine)
}
