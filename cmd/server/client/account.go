package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	sheetsv1alpha1 "github.com/KirkDiggler/rpg-sheets/internal/handlers/sheets/v1alpha1"
)

var (
	username   string
	password   string
	preference string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.accounts.Register(ctx, &sheetsv1alpha1.RegisterRequest{
				Username:        username,
				Password:        password,
				ConfirmPassword: password,
			})
			if err != nil {
				return fmt.Errorf("failed to register: %w", err)
			}

			fmt.Printf("✅ Registered %s (id %d)\n", resp.User.Username, resp.User.ID)
			if resp.User.IsAdmin {
				fmt.Println("First account: admin rights granted")
			}
			return nil
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Open a session and print its token",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.accounts.Login(ctx, &sheetsv1alpha1.LoginRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("failed to log in: %w", err)
			}

			fmt.Printf("✅ Logged in as %s\n", resp.User.Username)
			fmt.Printf("Expires At: %s\n\n", time.Unix(resp.ExpiresAt, 0).Format(time.RFC3339))
			fmt.Printf("export %s=%s\n", TokenEnv, resp.Token)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the current session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			if _, err := c.accounts.Logout(ctx, &sheetsv1alpha1.LogoutRequest{}); err != nil {
				return fmt.Errorf("failed to log out: %w", err)
			}
			fmt.Println("Session revoked")
			return nil
		})
	},
}

var whoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the current session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.accounts.WhoAmI(ctx, &sheetsv1alpha1.WhoAmIRequest{})
			if err != nil {
				return fmt.Errorf("failed to get current user: %w", err)
			}
			return printJSON(resp.Actor)
		})
	},
}

var setPreferenceCmd = &cobra.Command{
	Use:   "set-preference",
	Short: "Set the display preference (light or dark)",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.accounts.SetDisplayPreference(ctx, &sheetsv1alpha1.SetDisplayPreferenceRequest{
				Preference: preference,
			})
			if err != nil {
				return fmt.Errorf("failed to set preference: %w", err)
			}
			fmt.Printf("Display preference: %s\n", resp.User.DisplayPreference)
			return nil
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{registerCmd, loginCmd} {
		cmd.Flags().StringVar(&username, "username", "", "Username (required)")
		cmd.Flags().StringVar(&password, "password", "", "Password (required)")
		_ = cmd.MarkFlagRequired("username") // nolint:errcheck // safe to ignore in init
		_ = cmd.MarkFlagRequired("password") // nolint:errcheck // safe to ignore in init
	}

	setPreferenceCmd.Flags().StringVar(&preference, "preference", "", "light or dark (required)")
	_ = setPreferenceCmd.MarkFlagRequired("preference") // nolint:errcheck // safe to ignore in init
}
