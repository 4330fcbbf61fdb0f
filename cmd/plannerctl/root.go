package main

import (
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

const defaultTimezone = "Europe/Paris"

func newRootCommand() *cobra.Command {
	return newRoot(clockwork.NewRealClock())
}

func newRoot(clock clockwork.Clock) *cobra.Command {
	var configFlag, tzFlag string
	ctx := newCommandContext(&configFlag, &tzFlag, clock)

	root := &cobra.Command{
		Use:           "plannerctl",
		Short:         "Inspect and maintain the content planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (defaults to CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&tzFlag, "tz", "", "Planner timezone (defaults to the configured one, then "+defaultTimezone+")")

	root.AddCommand(
		newCalendarCommand(ctx),
		newWindowCommand(ctx),
		newBucketsCommand(ctx),
		newNotesCommand(ctx),
		newTokenCommand(ctx),
	)
	return root
}
