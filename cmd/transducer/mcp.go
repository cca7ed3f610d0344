package main

import (
	"github.com/aretw0/transducer/internal/cli"
	"github.com/aretw0/transducer/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp [table]",
		Short: "Serve the table as MCP tools over stdio",
		Long:  `Starts a Model Context Protocol server on stdin/stdout with the tools generate, analyze and describe_table.`,
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

			return mcp.NewServer(stack.Engine, a.logger).ServeStdio()
		},
	}
}
