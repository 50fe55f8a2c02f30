package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	sheetsv1alpha1 "github.com/KirkDiggler/rpg-sheets/internal/handlers/sheets/v1alpha1"
)

var (
	attachmentName string
	description    string
	location       string
	quantity       string
	equipped       bool
	source         string
	spellLevel     string
	modifiers      []string

	itemID     int64
	kind       string
	modifierID int64
)

var addItemCmd = &cobra.Command{
	Use:   "add-item",
	Short: "Add an inventory item, e.g. --modifier ac=2",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.attachments.CreateItem(ctx, &sheetsv1alpha1.ItemRequest{
				CharacterID: characterID,
				Name:        attachmentName,
				Description: description,
				Location:    location,
				Quantity:    quantity,
				Equipped:    equipped,
				Modifiers:   parseModifiers(modifiers),
			})
			if err != nil {
				return fmt.Errorf("failed to add item: %w", err)
			}
			return printJSON(resp.Item)
		})
	},
}

var addFeatureCmd = &cobra.Command{
	Use:   "add-feature",
	Short: "Add a feature or trait",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.attachments.CreateFeature(ctx, &sheetsv1alpha1.FeatureRequest{
				CharacterID: characterID,
				Name:        attachmentName,
				Description: description,
				Source:      source,
				Modifiers:   parseModifiers(modifiers),
			})
			if err != nil {
				return fmt.Errorf("failed to add feature: %w", err)
			}
			return printJSON(resp.Feature)
		})
	},
}

var addSpellCmd = &cobra.Command{
	Use:   "add-spell",
	Short: "Add a known spell",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.attachments.CreateSpell(ctx, &sheetsv1alpha1.SpellRequest{
				CharacterID: characterID,
				Name:        attachmentName,
				Description: description,
				Level:       spellLevel,
				Modifiers:   parseModifiers(modifiers),
			})
			if err != nil {
				return fmt.Errorf("failed to add spell: %w", err)
			}
			return printJSON(resp.Spell)
		})
	},
}

var toggleEquippedCmd = &cobra.Command{
	Use:   "toggle-equipped",
	Short: "Equip or unequip an item",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.attachments.ToggleEquipped(ctx, &sheetsv1alpha1.AttachmentRef{
				CharacterID: characterID,
				ID:          itemID,
			})
			if err != nil {
				return fmt.Errorf("failed to toggle item: %w", err)
			}
			fmt.Printf("Equipped: %v\n", resp.Equipped)
			return nil
		})
	},
}

var toggleModifierCmd = &cobra.Command{
	Use:   "toggle-modifier",
	Short: "Enable or disable one modifier of an item, feature or spell",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClients(func(ctx context.Context, c *clients) error {
			resp, err := c.attachments.ToggleModifier(ctx, &sheetsv1alpha1.ToggleModifierRequest{
				CharacterID: characterID,
				Kind:        kind,
				ModifierID:  modifierID,
			})
			if err != nil {
				return fmt.Errorf("failed to toggle modifier: %w", err)
			}
			fmt.Printf("Enabled: %v\n", resp.Enabled)
			return nil
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{addItemCmd, addFeatureCmd, addSpellCmd} {
		cmd.Flags().StringVar(&attachmentName, "name", "", "Name (required)")
		cmd.Flags().StringVar(&description, "description", "", "Description")
		cmd.Flags().StringArrayVar(&modifiers, "modifier", nil, "stat=value, repeatable")
		_ = cmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
	}

	addItemCmd.Flags().StringVar(&location, "location", "", "Where the item is carried")
	addItemCmd.Flags().StringVar(&quantity, "quantity", "", "Quantity; blank leaves it untracked")
	addItemCmd.Flags().BoolVar(&equipped, "equipped", false, "Equip the item")
	addFeatureCmd.Flags().StringVar(&source, "source", "", "Where the feature comes from")
	addSpellCmd.Flags().StringVar(&spellLevel, "level", "0", "Spell level 0-9")

	toggleEquippedCmd.Flags().Int64Var(&itemID, "item-id", 0, "Item ID (required)")
	_ = toggleEquippedCmd.MarkFlagRequired("item-id") // nolint:errcheck // safe to ignore in init

	toggleModifierCmd.Flags().StringVar(&kind, "kind", "", "item, feature or spell (required)")
	toggleModifierCmd.Flags().Int64Var(&modifierID, "modifier-id", 0, "Modifier ID (required)")
	_ = toggleModifierCmd.MarkFlagRequired("kind")        // nolint:errcheck // safe to ignore in init
	_ = toggleModifierCmd.MarkFlagRequired("modifier-id") // nolint:errcheck // safe to ignore in init
}
