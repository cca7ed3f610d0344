package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/transducer/internal/cli"
	"github.com/aretw0/transducer/internal/config"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration to every subcommand.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "transducer",
		Short: "Run finite-state transducers stored as AT&T tables",
		Long: `transducer loads a non-deterministic finite-state transducer from an AT&T
transition table and maps strings through it, in either direction.

Generation maps analyses (cat<N><PL>) to surface forms (cats); analysis maps
surface forms back to every analysis that could have produced them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", fmt.Sprintf("Configuration file (default %s when present)", config.DefaultFile))
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.Int("step-budget", 0, "Abort a transduction after this many search steps (0 = unbounded)")
	flags.String("cache", "", "Result cache backend: none, memory, redis")

	rootCmd.AddCommand(
		newTransduceCmd(a, "analyze"),
		newTransduceCmd(a, "generate"),
		newInspectCmd(a),
		newGraphCmd(a),
		newInvertCmd(a),
		newValidateCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// load reads the config file and lets explicitly set flags override it.
func (a *app) load(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("step-budget") {
		cfg.StepBudget, _ = cmd.Flags().GetInt("step-budget")
	}
	if cmd.Flags().Changed("cache") {
		cfg.Cache.Backend, _ = cmd.Flags().GetString("cache")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cli.NewLogger(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// tableArg takes the table path from the first argument, falling back to the
// configured table when the command received only want-1 arguments.
func (a *app) tableArg(args []string, want int) (string, []string, error) {
	if len(args) == want {
		return args[0], args[1:], nil
	}
	if len(args) == want-1 && a.cfg.Table != "" {
		return a.cfg.Table, args, nil
	}
	return "", nil, fmt.Errorf("expected a table argument (or 'table' in the configuration)")
}
