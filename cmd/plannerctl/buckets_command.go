package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/timeline"
)

func newBucketsCommand(ctx *commandContext) *cobra.Command {
	var refFlag, user string

	cmd := &cobra.Command{
		Use:   "buckets",
		Short: "List the twelve month buckets around a reference date",
		Long: `List the current, future and archive month buckets for a reference date.

With --user the user's content library is loaded and each bucket shows how
many library entries (single items or carousels) it holds.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc := ctx.location(user != "")
			ref := ctx.clock.Now().In(loc)
			if s := strings.TrimSpace(refFlag); s != "" {
				parsed, err := time.ParseInLocation(time.DateOnly, s, loc)
				if err != nil {
					return fmt.Errorf("invalid --ref %q: %w", refFlag, err)
				}
				ref = parsed
			}

			if user == "" {
				set := timeline.Bucket[domain.ContentItem](nil, domain.ContentItem.Attribution, ref)
				fmt.Fprintln(cmd.OutOrStdout(), renderBuckets(set))
				return nil
			}

			userID, err := parseUser(user)
			if err != nil {
				return err
			}
			return ctx.withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				items, err := content.New(pool, ctx.clock).ListByUser(cmd.Context(), userID)
				if err != nil {
					return fmt.Errorf("list content: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderBuckets(timeline.BucketLibrary(items, ref)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&refFlag, "ref", "", "Reference date as YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVarP(&user, "user", "u", "", "User ID whose library is bucketed")
	return cmd
}

func renderBuckets[T any](set domain.BucketSet[T]) string {
	rows := make([][]string, 0, len(set.CurrentAndFuture)+len(set.Archive))
	for _, b := range set.All() {
		rows = append(rows, []string{
			strconv.Itoa(b.Order),
			b.Key.String(),
			b.Label,
			bucketKind(b.IsCurrent, b.IsFuture),
			strconv.Itoa(len(b.Members)),
		})
	}
	return renderTable(
		[]string{"Order", "Key", "Label", "Kind", "Entries"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

func bucketKind(current, future bool) string {
	switch {
	case current:
		return "current"
	case future:
		return "future"
	default:
		return "archive"
	}
}
