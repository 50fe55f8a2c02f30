package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	sheetsv1alpha1 "github.com/KirkDiggler/rpg-sheets/internal/handlers/sheets/v1alpha1"
)

var (
	currencyID   int64
	currencyName string
	abbreviation string
	delta        int64
)

var addCurrencyCmd = &cobra.Command{
	Use:   "add-currency",
	Short: "Add a coin type to a character",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.characters.AddCurrency(ctx, &sheetsv1alpha1.AddCurrencyRequest{
				CharacterID:  characterID,
				Name:         currencyName,
				Abbreviation: abbreviation,
			})
			if err != nil {
				return fmt.Errorf("failed to add currency: %w", err)
			}
			fmt.Printf("Currency %d: %s (%s)\n", resp.Currency.ID, resp.Currency.Name, resp.Currency.Abbreviation)
			return nil
		})
	},
}

var adjustCurrencyCmd = &cobra.Command{
	Use:   "adjust-currency",
	Short: "Add or spend coins; the amount never drops below zero",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.characters.AdjustCurrency(ctx, &sheetsv1alpha1.AdjustCurrencyRequest{
				CharacterID: characterID,
				CurrencyID:  currencyID,
				Delta:       delta,
			})
			if err != nil {
				return fmt.Errorf("failed to adjust currency: %w", err)
			}
			fmt.Printf("New amount: %d\n", resp.Amount)
			return nil
		})
	},
}

func init() {
	addCurrencyCmd.Flags().StringVar(&currencyName, "name", "", "Currency name (required)")
	addCurrencyCmd.Flags().StringVar(&abbreviation, "abbreviation", "", "Short form, e.g. pp")
	_ = addCurrencyCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	adjustCurrencyCmd.Flags().Int64Var(&currencyID, "currency-id", 0, "Currency ID (required)")
	adjustCurrencyCmd.Flags().Int64Var(&delta, "delta", 0, "Signed amount to apply")
	_ = adjustCurrencyCmd.MarkFlagRequired("currency-id") // nolint:errcheck // safe to ignore in init
}
