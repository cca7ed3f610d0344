package main

import (
	"fmt"

	"github.com/aretw0/transducer/internal/cli"
	"github.com/aretw0/transducer/internal/presentation/graph"
	"github.com/aretw0/transducer/internal/validator"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/spf13/cobra"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [table]",
		Short: "Export the table as a Mermaid diagram",
		Long:  `Outputs a Mermaid flowchart of the table's states and input:output arcs.`,
		Args:  cobra.MaximumNArgs(1),
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

			dir := domain.DirectionGenerate
			if inverted, _ := cmd.Flags().GetBool("inverted"); inverted {
				dir = domain.DirectionAnalyze
			}
			t := stack.Engine.Table(dir)

			var overlay *graph.Overlay
			if flag, _ := cmd.Flags().GetBool("issues"); flag {
				overlay = &graph.Overlay{}
				for _, issue := range validator.Issues(validator.ValidateTable(t)) {
					overlay.Flagged = append(overlay.Flagged, issue.States...)
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(t, overlay))
			return err
		},
	}
	cmd.Flags().Bool("inverted", false, "Draw the inverted (analysis) table")
	cmd.Flags().Bool("issues", false, "Highlight states named by validation issues")
	return cmd
}
