package main

import (
	"github.com/aretw0/transducer/internal/cli"
	"github.com/aretw0/transducer/pkg/att"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/spf13/cobra"
)

func newInvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invert [table]",
		Short: "Print the inverted table in AT&T format",
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

			return att.Write(cmd.OutOrStdout(), stack.Engine.Table(domain.DirectionAnalyze))
		},
	}
}
