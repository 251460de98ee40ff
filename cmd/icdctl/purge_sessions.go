package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kruttikastudy/icd-website/internal/adapter/postgres/session"
	"github.com/kruttikastudy/icd-website/internal/adapter/postgres/user"
	"github.com/kruttikastudy/icd-website/internal/auth"
	authsvc "github.com/kruttikastudy/icd-website/internal/service/auth"
)

func newPurgeSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete expired and revoked sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmdContext(cmd)

			e, err := connect(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			svc := authsvc.NewService(
				e.log,
				user.New(e.pool),
				session.New(e.pool),
				auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer),
				e.cfg.Auth,
			)

			deleted, err := svc.CleanupExpiredSessions(ctx)
			if err != nil {
				return fmt.Errorf("purge sessions: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired/revoked sessions.\n", deleted)
			return nil
		},
	}
}
