package main

import (
	"github.com/spf13/cobra"
)

func serveCmd(flags *appFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Long: `Run the web server until interrupted.

The server listens on HOST:PORT, localhost:3000 by default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := flags.newRanger()
			if err != nil {
				return err
			}

			return rng.Guide()
		},
	}
}
