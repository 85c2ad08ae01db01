package main

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	zaplog "github.com/manifold/attach/pkg/logging/zap"
)

type rootOptions struct {
	debug  bool
	logger *zap.SugaredLogger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "attachctl",
		Short:         "Attachment set tools",
		Long:          "Exercise and measure attachment sets of named, typed values.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = zaplog.NewLogger(opts.debug)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(newDemoCommand(opts))
	cmd.AddCommand(newBenchCommand(opts))
	return cmd
}

func main() {
	fatal(newRootCommand().Execute())
}

func fatal(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
