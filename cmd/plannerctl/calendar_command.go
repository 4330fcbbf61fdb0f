package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres/post"
	"github.com/heartmarshall/contentplanner-backend/internal/service/calendar"
	"github.com/heartmarshall/contentplanner-backend/pkg/ctxutil"
)

var weekdayHeaders = []string{"lun", "mar", "mer", "jeu", "ven", "sam", "dim"}

func newCalendarCommand(ctx *commandContext) *cobra.Command {
	var month, user string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Render the six-week grid of a month",
		Long: `Render the Monday-first calendar grid of a month.

Without --user only the empty grid is printed and no database connection is
made. With --user the user's scheduled posts are placed on their days.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if user == "" {
				loc := ctx.location(false)
				now := ctx.clock.Now().In(loc)
				anchor, err := monthOrCurrent(month, now)
				if err != nil {
					return err
				}
				grid := &calendar.Grid{
					Month: anchor,
					Label: anchor.Label(),
					Days:  calendar.Layout(nil, anchor, loc, now),
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderGrid(grid))
				return nil
			}

			userID, err := parseUser(user)
			if err != nil {
				return err
			}
			return ctx.withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				loc := ctx.location(true)
				svc := calendar.NewService(ctx.logger(), post.New(pool, ctx.clock), ctx.clock, loc)
				grid, err := svc.Month(ctxutil.WithUserID(cmd.Context(), userID), month)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderGrid(grid))
				if listing := renderGridPosts(grid); listing != "" {
					fmt.Fprintln(out, listing)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to render (octobre_2025 or 2025-10, defaults to the current month)")
	cmd.Flags().StringVarP(&user, "user", "u", "", "User ID whose scheduled posts are placed on the grid")
	return cmd
}

// renderGrid prints the grid label followed by one row per week. Days of the
// neighbouring months are parenthesised, today carries a '*' and days with
// posts show the count in brackets.
func renderGrid(grid *calendar.Grid) string {
	rows := make([][]string, 0, len(grid.Days)/7)
	for week := 0; week+7 <= len(grid.Days); week += 7 {
		row := make([]string, 7)
		for i, day := range grid.Days[week : week+7] {
			row[i] = gridCell(day)
		}
		rows = append(rows, row)
	}
	aligns := make([]columnAlignment, len(weekdayHeaders))
	for i := range aligns {
		aligns[i] = alignRight
	}
	return grid.Label + "\n" + renderTable(weekdayHeaders, rows, aligns)
}

func gridCell(day calendar.Day) string {
	var b strings.Builder
	n := strconv.Itoa(day.Date.Day())
	if day.InMonth {
		b.WriteString(n)
	} else {
		b.WriteString("(" + n + ")")
	}
	if day.IsToday {
		b.WriteByte('*')
	}
	if len(day.Posts) > 0 {
		b.WriteString(" [" + strconv.Itoa(len(day.Posts)) + "]")
	}
	return b.String()
}

func renderGridPosts(grid *calendar.Grid) string {
	var rows [][]string
	for _, day := range grid.Days {
		for _, p := range day.Posts {
			at := ""
			if p.ScheduledDate != nil {
				at = p.ScheduledDate.In(day.Date.Location()).Format("15:04")
			}
			rows = append(rows, []string{day.Key(), at, p.Title, p.Status.String()})
		}
	}
	if len(rows) == 0 {
		return ""
	}
	return renderTable([]string{"Date", "Time", "Title", "Status"}, rows, nil)
}
