// Package client provides commands that call a running rpg-sheets server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	sheetsv1alpha1 "github.com/KirkDiggler/rpg-sheets/internal/handlers/sheets/v1alpha1"
)

// TokenEnv holds the session token when --token is not given
const TokenEnv = "RPG_SHEETS_TOKEN"

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	token      string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running rpg-sheets server",
	Long: `Client commands make real gRPC requests against an rpg-sheets server.
Log in first and export the printed token as ` + TokenEnv + `.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&token, "token", os.Getenv(TokenEnv), "Session token")

	// Account commands
	ClientCmd.AddCommand(registerCmd)
	ClientCmd.AddCommand(loginCmd)
	ClientCmd.AddCommand(logoutCmd)
	ClientCmd.AddCommand(whoAmICmd)
	ClientCmd.AddCommand(setPreferenceCmd)

	// Admin commands
	ClientCmd.AddCommand(listUsersCmd)
	ClientCmd.AddCommand(setAdminCmd)
	ClientCmd.AddCommand(deleteUserCmd)

	// Character commands
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(getSheetCmd)
	ClientCmd.AddCommand(updateCharacterCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)
	ClientCmd.AddCommand(bonusesCmd)
	ClientCmd.AddCommand(statOptionsCmd)

	// Currency commands
	ClientCmd.AddCommand(addCurrencyCmd)
	ClientCmd.AddCommand(adjustCurrencyCmd)

	// Attachment commands
	ClientCmd.AddCommand(addItemCmd)
	ClientCmd.AddCommand(addFeatureCmd)
	ClientCmd.AddCommand(addSpellCmd)
	ClientCmd.AddCommand(toggleEquippedCmd)
	ClientCmd.AddCommand(toggleModifierCmd)
}

type clients struct {
	accounts    *sheetsv1alpha1.AccountServiceClient
	characters  *sheetsv1alpha1.CharacterServiceClient
	attachments *sheetsv1alpha1.AttachmentServiceClient
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// withClients dials the server and runs fn with a request context that
// carries the session token, if any
func withClients(fn func(ctx context.Context, c *clients) error) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if token != "" {
		ctx = sheetsv1alpha1.WithToken(ctx, token)
	}

	return fn(ctx, &clients{
		accounts:    sheetsv1alpha1.NewAccountServiceClient(conn),
		characters:  sheetsv1alpha1.NewCharacterServiceClient(conn),
		attachments: sheetsv1alpha1.NewAttachmentServiceClient(conn),
	})
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseModifiers turns stat=value flags into modifier rows. Rows the server
// cannot parse are dropped there, not here.
func parseModifiers(raw []string) []entities.ModifierInput {
	mods := make([]entities.ModifierInput, 0, len(raw))
	for _, r := range raw {
		stat, value, _ := strings.Cut(r, "=")
		mods = append(mods, entities.ModifierInput{Stat: stat, Value: value})
	}
	return mods
}
