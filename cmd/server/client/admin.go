package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	sheetsv1alpha1 "github.com/KirkDiggler/rpg-sheets/internal/handlers/sheets/v1alpha1"
)

var (
	targetUserID int64
	grantAdmin   bool
)

var listUsersCmd = &cobra.Command{
	Use:   "list-users",
	Short: "List every account (admin only)",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.accounts.ListUsers(ctx, &sheetsv1alpha1.ListUsersRequest{})
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			for _, u := range resp.Users {
				role := "player"
				if u.IsAdmin {
					role = "admin"
				}
				fmt.Printf("%4d  %-20s %s\n", u.ID, u.Username, role)
			}
			return nil
		})
	},
}

var setAdminCmd = &cobra.Command{
	Use:   "set-admin",
	Short: "Grant or revoke admin rights (admin only)",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.accounts.SetAdmin(ctx, &sheetsv1alpha1.SetAdminRequest{
				UserID:  targetUserID,
				IsAdmin: grantAdmin,
			})
			if err != nil {
				return fmt.Errorf("failed to set admin flag: %w", err)
			}
			fmt.Printf("%s admin: %v\n", resp.User.Username, resp.User.IsAdmin)
			return nil
		})
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user",
	Short: "Delete an account and everything it owns (admin only)",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.accounts.DeleteUser(ctx, &sheetsv1alpha1.DeleteUserRequest{UserID: targetUserID})
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}
			fmt.Printf("User %d deleted, %d session(s) revoked\n", targetUserID, resp.RevokedSessions)
			return nil
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{setAdminCmd, deleteUserCmd} {
		cmd.Flags().Int64Var(&targetUserID, "user-id", 0, "User ID (required)")
		_ = cmd.MarkFlagRequired("user-id") // nolint:errcheck // safe to ignore in init
	}
	setAdminCmd.Flags().BoolVar(&grantAdmin, "admin", true, "Grant (true) or revoke (false) admin rights")
}
