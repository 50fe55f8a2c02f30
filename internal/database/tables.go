package database

import (
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

// AttachmentTables names the storage of one attachment kind
type AttachmentTables struct {
	// Attachments is the table holding the attachment rows
	Attachments string
	// Modifiers is the table holding the attachment's stat modifiers
	Modifiers string
	// ForeignKey is the column in Modifiers referencing Attachments
	ForeignKey string
}

var attachmentTables = map[entities.AttachmentKind]AttachmentTables{
	entities.KindItem: {
		Attachments: "inventory_items",
		Modifiers:   "item_properties",
		ForeignKey:  "item_id",
	},
	entities.KindFeature: {
		Attachments: "features",
		Modifiers:   "feature_properties",
		ForeignKey:  "feature_id",
	},
	entities.KindSpell: {
		Attachments: "spells",
		Modifiers:   "spell_properties",
		ForeignKey:  "spell_id",
	},
}

// TablesFor returns the tables backing kind
func TablesFor(kind entities.AttachmentKind) (AttachmentTables, error) {
	tables, ok := attachmentTables[kind]
	if !ok {
		return AttachmentTables{}, errors.InvalidArgumentf("unknown attachment kind %q", kind)
	}
	return tables, nil
}
