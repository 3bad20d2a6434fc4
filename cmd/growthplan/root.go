package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"basegraph.app/growthplan/common/logger"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "growthplan",
		Short:         "Growth plans for small local businesses",
		Long:          `growthplan turns a shop's budget, time and team into a costed, scheduled growth plan.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			// stdout carries the plan, logs go to stderr.
			slog.SetDefault(slog.New(logger.NewTraceHandler(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
			)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSchemaCmd())
	return root
}
