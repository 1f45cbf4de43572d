// Command quiz-web serves the quiz web app and inspects its route table.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/quiz/logger"
	"github.com/xy-planning-network/quiz/ranger"
)

// Version information set at build time.
var version = "dev"

// appFlags are the flags every command shares.
type appFlags struct {
	env        string
	routesFile string
	viewsDir   string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	flags := new(appFlags)

	cmd := &cobra.Command{
		Use:     "quiz-web",
		Short:   "Serve the quiz web app",
		Version: version,
		Long: `quiz-web serves the quiz web app.

Every path resolves to exactly one route of its route table;
paths matching nothing else land on the not-found page.
Configuration is read from the environment and a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.env, "env", "", "environment to run in; overrides ENVIRONMENT")
	pf.StringVar(&flags.routesFile, "routes-file", "", "YAML manifest of routes; overrides ROUTES_FILE")
	pf.StringVar(&flags.viewsDir, "views-dir", "", "directory of templates replacing those embedded; overrides VIEWS_DIR")

	cmd.AddCommand(
		serveCmd(flags),
		routesCmd(flags),
		resolveCmd(flags),
	)

	return cmd
}

// newRanger constructs the web app from the environment and flags.
func (f *appFlags) newRanger(opts ...ranger.RangerOption) (*ranger.Ranger, error) {
	all := []ranger.RangerOption{ranger.WithEnv(f.env)}
	if f.routesFile != "" {
		all = append(all, ranger.WithRoutesFile(f.routesFile))
	}

	if f.viewsDir != "" {
		all = append(all, ranger.WithViewsDir(f.viewsDir))
	}

	return ranger.New(append(all, opts...)...)
}

// quietLogger only reports warnings and worse, to w.
func quietLogger(w io.Writer) logger.Logger {
	return logger.New(logger.WithLogger(log.New(w, "", log.LstdFlags)), logger.WithLevel(logger.LogLevelWarn))
}
