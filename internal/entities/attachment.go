package entities

import (
	"strconv"
	"strings"
)

// AttachmentKind identifies which collection an attachment lives in
type AttachmentKind string

// Attachment kinds
const (
	KindItem    AttachmentKind = "item"
	KindFeature AttachmentKind = "feature"
	KindSpell   AttachmentKind = "spell"
)

// Spell level bounds
const (
	MinSpellLevel = 0
	MaxSpellLevel = 9
)

// AttachmentBase holds the fields every attachment has
type AttachmentBase struct {
	ID          int64          `json:"id"`
	CharacterID int64          `json:"character_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Modifiers   []StatModifier `json:"modifiers"`
}

// InventoryItem is something the character carries
type InventoryItem struct {
	AttachmentBase
	Location  string `json:"location"`
	Quantity  *int   `json:"quantity,omitempty"`
	Equipped  bool   `json:"equipped"`
	SortOrder int    `json:"sort_order"`
}

// Feature is a class, race or background feature
type Feature struct {
	AttachmentBase
	Source    string `json:"source"`
	SortOrder int    `json:"sort_order"`
}

// Spell is a known spell
type Spell struct {
	AttachmentBase
	Level     int `json:"level"`
	SortOrder int `json:"sort_order"`
}

// ParseSpellLevel reads a submitted spell level. Non-numeric input becomes 0
// and numbers are clamped to [MinSpellLevel, MaxSpellLevel].
func ParseSpellLevel(raw string) int {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return MinSpellLevel
	}
	return ClampSpellLevel(level)
}

// ClampSpellLevel bounds level to the valid spell range
func ClampSpellLevel(level int) int {
	if level < MinSpellLevel {
		return MinSpellLevel
	}
	if level > MaxSpellLevel {
		return MaxSpellLevel
	}
	return level
}

// ParseQuantity reads an optional item quantity; blank or non-numeric
// input means no quantity is tracked.
func ParseQuantity(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}
