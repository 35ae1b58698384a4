// Command scribe highlights and completes source files, and serves editing
// sessions over WebSocket.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/odvcencio/scribe/logging"
)

var log = logging.Log

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbosity string
	cmd := &cobra.Command{
		Use:           "scribe",
		Short:         "Syntax highlighting and completion for source text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(verbosity)
		},
	}
	cmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", "warning", "log level (debug, info, notice, warning, error)")

	cmd.AddCommand(
		newHighlightCommand(),
		newCompleteCommand(),
		newLanguagesCommand(),
		newServeCommand(),
	)
	return cmd
}
