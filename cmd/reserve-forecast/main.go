package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/iwvelando/reserve-forecast/pkg/constants"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cliOptions holds the persistent flags shared by every command.
type cliOptions struct {
	configPath   string
	logLevel     string
	outputFormat string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:          "reserve-forecast",
		Short:        "Reserve fund projection and funding scenario solver",
		Long:         "Projects a replacement reserve fund over a multi-year horizon and solves for the contributions that keep it solvent.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv")

	root.AddCommand(projectCmd(opts))
	root.AddCommand(solveCmd(opts))
	root.AddCommand(serveCmd(opts))
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reserve-forecast %s (commit %s, built %s)\n", version, commit, date)
			if verbose, _ := cmd.Flags().GetBool("build-info"); verbose {
				if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
					fmt.Fprintln(cmd.OutOrStdout(), bi.String())
				}
			}
		},
	}
	cmd.Flags().Bool("build-info", false, "also print the module build information")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
