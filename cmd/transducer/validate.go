package main

import (
	"fmt"

	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/internal/cli"
	"github.com/aretw0/transducer/internal/validator"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [table]",
		Short: "Check the table for consistency",
		Long: `Reports a missing start state, missing or unreachable accepting states, and
epsilon cycles that keep the search from terminating.`,
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

			if err := validateBoth(stack.Engine); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Table is valid! ✅")
			return nil
		},
	}
}

// validateBoth checks the table as loaded and as inverted, tagging each issue with its direction.
// Inversion keeps every arc's endpoints, so only epsilon cycles can differ on the analyze side.
func validateBoth(eng *transducer.Engine) error {
	var errs []error
	for _, dir := range []domain.Direction{domain.DirectionGenerate, domain.DirectionAnalyze} {
		for _, issue := range validator.Issues(validator.ValidateTable(eng.Table(dir))) {
			if dir == domain.DirectionAnalyze && issue.Kind != validator.KindEpsilonCycle {
				continue
			}
			errs = append(errs, fmt.Errorf("%s: %w", dir, issue))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &validator.AggregateError{Errors: errs}
}
