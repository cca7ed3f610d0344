package main

import (
	"github.com/aretw0/transducer/internal/cli"
	"github.com/aretw0/transducer/internal/presentation/tui"
	httpAdapter "github.com/aretw0/transducer/pkg/adapters/http"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [table]",
		Short: "Serve the table over HTTP",
		Long: `Exposes POST /generate, POST /analyze, GET /table, GET /healthz and GET /metrics.
The listen address comes from --addr, then http.addr in the configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := a.tableArg(args, 1)
			if err != nil {
				return err
			}
			addr := a.cfg.HTTP.Addr
			if cmd.Flags().Changed("addr") {
				addr, _ = cmd.Flags().GetString("addr")
			}

			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()

			stack, err := cli.NewStack(ctx, a.cfg, table, a.logger)
			if err != nil {
				return err
			}
			defer stack.Close()

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				tui.PrintBanner(cmd.ErrOrStderr())
			}

			handler := httpAdapter.NewHandler(stack.Engine,
				httpAdapter.WithMetricsHandler(stack.Metrics.Handler()),
				httpAdapter.WithLogger(a.logger),
			)
			return cli.Serve(ctx, addr, handler, a.logger)
		},
	}
	cmd.Flags().String("addr", "", "Address to listen on (default :8080)")
	cmd.Flags().BoolP("quiet", "q", false, "Skip the startup banner")
	return cmd
}
