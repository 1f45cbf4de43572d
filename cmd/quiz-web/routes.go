package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/quiz/ranger"
)

func routesCmd(flags *appFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Long:  `Print the route table in the order paths are matched against it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := flags.newRanger(ranger.WithLogger(quietLogger(cmd.ErrOrStderr())))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPATTERN\tTITLE")
			for _, def := range rng.EmitTable().Routes() {
				title, _ := def.Meta.Title()
				fmt.Fprintf(tw, "%s\t%s\t%s\n", def.Name, def.Pattern, title)
			}

			return tw.Flush()
		},
	}
}
