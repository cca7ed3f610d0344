package main

import (
	"fmt"

	"github.com/aretw0/transducer"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of transducer",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "transducer version %s\n", transducer.Version)
		},
	}
}
