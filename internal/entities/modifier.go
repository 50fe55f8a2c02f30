package entities

import (
	"strconv"
	"strings"
)

// StatModifier is one (stat, value, enabled) entry on an attachment.
// Disabled modifiers stay stored so they can be switched back on.
type StatModifier struct {
	ID           int64  `json:"id"`
	AttachmentID int64  `json:"attachment_id"`
	Stat         string `json:"stat"`
	Value        int    `json:"value"`
	Enabled      bool   `json:"enabled"`
}

// ModifierInput is an unvalidated modifier row as submitted by a form
type ModifierInput struct {
	Stat    string `json:"stat"`
	Value   string `json:"value"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// ParseModifiers keeps the rows with a non-empty stat and an integer value
// and silently drops the rest. Rows without an explicit enabled flag are
// enabled.
func ParseModifiers(inputs []ModifierInput) []StatModifier {
	mods := make([]StatModifier, 0, len(inputs))
	for _, in := range inputs {
		stat := strings.TrimSpace(in.Stat)
		if stat == "" {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(in.Value))
		if err != nil {
			continue
		}
		enabled := true
		if in.Enabled != nil {
			enabled = *in.Enabled
		}
		mods = append(mods, StatModifier{
			Stat:    stat,
			Value:   value,
			Enabled: enabled,
		})
	}
	return mods
}
