package main

import (
	"github.com/aretw0/transducer/internal/cli"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/spf13/cobra"
)

func newTransduceCmd(a *app, direction string) *cobra.Command {
	dir, _ := domain.ParseDirection(direction)

	short := "Map surface forms to analyses using the inverted table"
	if dir == domain.DirectionGenerate {
		short = "Map analyses to surface forms"
	}

	cmd := &cobra.Command{
		Use:   direction + " <table> <input-file>",
		Short: short,
		Long: `Reads <input-file> ("-" for stdin) line by line and prints one result line
per input line: the quoted list of outputs, or an NDJSON object with --json.
Processing stops at the first error.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, rest, err := a.tableArg(args, 2)
			if err != nil {
				return err
			}
			jsonMode, _ := cmd.Flags().GetBool("json")

			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()

			stack, err := cli.NewStack(ctx, a.cfg, table, a.logger)
			if err != nil {
				return err
			}
			defer stack.Close()

			return cli.RunBatch(ctx, stack.Engine, cli.BatchOptions{
				Direction: dir,
				InputPath: rest[0],
				JSON:      jsonMode,
				Stdin:     cmd.InOrStdin(),
				Stdout:    cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print NDJSON records instead of quoted lists")
	return cmd
}
