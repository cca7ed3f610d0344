package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/transducer/internal/cli"
	"github.com/aretw0/transducer/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [table]",
		Short: "Summarize a table",
		Long: `Prints the start state, accepting states, alphabets and sizes of a table.
Output is rendered markdown on a terminal, plain markdown otherwise, or JSON with --json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := a.tableArg(args, 1)
			if err != nil {
				return err
			}
			stack, err := cli.NewStack(cmd.Context(), a.cfg, table, a.logger)
			if err != nil {
				return err
			}
			defer stack.Close()

			summary := stack.Engine.Describe()
			out := cmd.OutOrStdout()

			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			md := tui.SummaryMarkdown(stack.Engine.Name(), summary)
			if f, ok := out.(*os.File); ok && tui.IsTerminal(f) {
				if rendered, err := tui.NewRenderer()(md); err == nil {
					md = rendered
				}
			}
			_, err = fmt.Fprint(out, md)
			return err
		},
	}
	cmd.Flags().Bool("json", false, "Print the summary as JSON")
	return cmd
}
