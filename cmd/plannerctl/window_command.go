package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/schedule"
)

func newWindowCommand(ctx *commandContext) *cobra.Command {
	var month, nowFlag string

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the scheduling window of a post attributed to a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc := ctx.location(false)
			now := ctx.clock.Now()
			if s := strings.TrimSpace(nowFlag); s != "" {
				parsed, err := time.Parse(time.RFC3339, s)
				if err != nil {
					return fmt.Errorf("invalid --now %q: %w", nowFlag, err)
				}
				now = parsed
			}

			w := schedule.Compute(domain.Post{AttributedMonth: month}, now, loc)
			fmt.Fprintln(cmd.OutOrStdout(), renderWindow(w, loc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Attributed month of the post (octobre_2025 or 2025-10)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Reference instant in RFC3339 (defaults to the current time)")
	return cmd
}

func renderWindow(w schedule.Window, loc *time.Location) string {
	rows := [][]string{
		{"Month", w.Month.String()},
		{"Label", w.Month.Label()},
		{"Fallback", strconv.FormatBool(w.Fallback)},
		{"Earliest", formatInstant(w.Min, loc)},
		{"Latest", formatInstant(w.Max, loc)},
		{"Empty", strconv.FormatBool(w.Empty())},
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}
