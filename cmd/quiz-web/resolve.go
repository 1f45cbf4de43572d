package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/quiz/ranger"
	"github.com/xy-planning-network/quiz/route"
)

func resolveCmd(flags *appFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Print the route a path navigates to",
		Long: `Print the route a path navigates to, the params it binds
and the title displayed once there.`,
		Example: "  quiz-web resolve /quiz/iq",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := flags.newRanger(ranger.WithLogger(quietLogger(cmd.ErrOrStderr())))
			if err != nil {
				return err
			}

			doc := route.NewDocument("")
			ev, _ := rng.EmitResolver().
				With(route.TitleHook(rng.EmitTitlePrefix(), doc.SetTitle)).
				Navigate(args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "route:   %s\n", ev.Route.Name)
			fmt.Fprintf(out, "pattern: %s\n", ev.Route.Pattern)
			fmt.Fprintf(out, "title:   %s\n", doc.Title())

			keys := make([]string, 0, len(ev.Params))
			for k := range ev.Params {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				fmt.Fprintf(out, "param:   %s=%s\n", k, ev.Params[k])
			}

			return nil
		},
	}
}
