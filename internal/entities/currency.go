package entities

import "math"

// Currency is one coin type in a character's purse
type Currency struct {
	ID           int64  `json:"id"`
	CharacterID  int64  `json:"character_id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Amount       int64  `json:"amount"`
	SortOrder    int    `json:"sort_order"`
}

// StarterCurrencies are created with every new character
func StarterCurrencies() []Currency {
	return []Currency{
		{Name: "Gold", Abbreviation: "gp", SortOrder: 0},
		{Name: "Silver", Abbreviation: "sp", SortOrder: 1},
		{Name: "Copper", Abbreviation: "cp", SortOrder: 2},
	}
}

// AdjustAmount applies delta to amount with a floor of zero. Sums past the
// int64 range saturate.
func AdjustAmount(amount, delta int64) int64 {
	next := amount + delta
	switch {
	case delta > 0 && next < amount:
		return math.MaxInt64
	case delta < 0 && next > amount:
		return 0
	case next < 0:
		return 0
	}
	return next
}
