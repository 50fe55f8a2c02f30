package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	sheetsv1alpha1 "github.com/KirkDiggler/rpg-sheets/internal/handlers/sheets/v1alpha1"
)

var (
	characterID int64
	fieldValues map[string]string
)

var createCharacterCmd = &cobra.Command{
	Use:   "create-character",
	Short: "Create a blank character sheet",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.characters.CreateCharacter(ctx, &sheetsv1alpha1.CreateCharacterRequest{})
			if err != nil {
				return fmt.Errorf("failed to create character: %w", err)
			}

			fmt.Printf("✅ Character created!\n\n")
			fmt.Printf("Character ID: %d\n", resp.Character.ID)
			fmt.Printf("Name: %s\n", resp.Character.Name)
			for _, cur := range resp.Currencies {
				fmt.Printf("  - %s (%s): %d\n", cur.Name, cur.Abbreviation, cur.Amount)
			}

			fmt.Printf("\n💡 Next steps:\n")
			fmt.Printf("1. Name it: rpg-sheets client update-character --character-id %d --set name=\"Your Hero\"\n",
				resp.Character.ID)
			fmt.Printf("2. Add gear: rpg-sheets client add-item --character-id %d --name Shield --equipped --modifier ac=2\n",
				resp.Character.ID)
			return nil
		})
	},
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List your characters",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.characters.ListCharacters(ctx, &sheetsv1alpha1.ListCharactersRequest{})
			if err != nil {
				return fmt.Errorf("failed to list characters: %w", err)
			}

			if len(resp.Characters) == 0 {
				fmt.Println("No characters yet")
				return nil
			}
			for _, ch := range resp.Characters {
				fmt.Printf("%4d  %-24s level %d %s\n", ch.ID, ch.Name, ch.Level, ch.Class)
			}
			return nil
		})
	},
}

var getSheetCmd = &cobra.Command{
	Use:   "get-sheet",
	Short: "Print a full character sheet as JSON",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.characters.GetSheet(ctx, &sheetsv1alpha1.GetSheetRequest{CharacterID: characterID})
			if err != nil {
				return fmt.Errorf("failed to get sheet: %w", err)
			}
			return printJSON(resp.Sheet)
		})
	},
}

var updateCharacterCmd = &cobra.Command{
	Use:   "update-character",
	Short: "Set sheet fields, e.g. --set name=Tordek --set level=3",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.characters.UpdateCharacter(ctx, &sheetsv1alpha1.UpdateCharacterRequest{
				CharacterID: characterID,
				Values:      fieldValues,
			})
			if err != nil {
				return fmt.Errorf("failed to update character: %w", err)
			}
			return printJSON(resp.Character)
		})
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete-character",
	Short: "Delete a character and everything attached to it",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			_, err := c.characters.DeleteCharacter(ctx, &sheetsv1alpha1.DeleteCharacterRequest{CharacterID: characterID})
			if err != nil {
				return fmt.Errorf("failed to delete character: %w", err)
			}
			fmt.Printf("Character %d deleted\n", characterID)
			return nil
		})
	},
}

var bonusesCmd = &cobra.Command{
	Use:   "bonuses",
	Short: "Show a character's aggregated stat bonuses",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.characters.GetBonuses(ctx, &sheetsv1alpha1.GetBonusesRequest{CharacterID: characterID})
			if err != nil {
				return fmt.Errorf("failed to get bonuses: %w", err)
			}

			if len(resp.Bonuses) == 0 {
				fmt.Println("No active bonuses")
				return nil
			}
			for _, stat := range resp.Bonuses.Stats() {
				fmt.Printf("  %-20s %+d\n", stat, resp.Bonuses.Get(stat))
			}
			return nil
		})
	},
}

var statOptionsCmd = &cobra.Command{
	Use:   "stat-options",
	Short: "List the stat keys modifiers can target",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.characters.ListStatOptions(ctx, &sheetsv1alpha1.ListStatOptionsRequest{})
			if err != nil {
				return fmt.Errorf("failed to list stat options: %w", err)
			}
			for _, opt := range resp.Options {
				fmt.Printf("  %-20s %s\n", opt.Key, opt.Label)
			}
			return nil
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{
		getSheetCmd, updateCharacterCmd, deleteCharacterCmd, bonusesCmd,
		addCurrencyCmd, adjustCurrencyCmd,
		addItemCmd, addFeatureCmd, addSpellCmd, toggleEquippedCmd, toggleModifierCmd,
	} {
		cmd.Flags().Int64Var(&characterID, "character-id", 0, "Character ID (required)")
		_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	}

	updateCharacterCmd.Flags().StringToStringVar(&fieldValues, "set", nil, "field=value pairs to set")
}
