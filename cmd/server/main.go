// Package main is the entry point for the rpg-sheets gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheets/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheets",
	Short: "RPG character sheet server",
	Long: `rpg-sheets stores D&D character sheets for many users and serves them over gRPC:
characters, inventory, features, spells, currencies and the stat bonuses they grant.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
