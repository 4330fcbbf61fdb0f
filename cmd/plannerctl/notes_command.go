package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/contentplanner-backend/internal/service/notes"
)

func newNotesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Maintain planning notes",
	}
	cmd.AddCommand(newNotesPurgeCommand(ctx))
	return cmd
}

func newNotesPurgeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete month-specific notes whose month is over",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				loc := ctx.location(true)
				svc := notes.NewService(ctx.logger(), note.New(pool), postgres.NewTxManager(pool), ctx.clock, loc)
				deleted, err := svc.PurgeElapsed(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d elapsed note(s)\n", deleted)
				return nil
			})
		},
	}
}
