package entities

import "sort"

// Bonuses maps a stat key to its net additive bonus. A missing key is a
// bonus of zero.
type Bonuses map[string]int

// Get returns the bonus for stat
func (b Bonuses) Get(stat string) int {
	return b[stat]
}

// Add accumulates value onto stat
func (b Bonuses) Add(stat string, value int) {
	b[stat] += value
}

// Stats returns the keys in sorted order
func (b Bonuses) Stats() []string {
	stats := make([]string, 0, len(b))
	for stat := range b {
		stats = append(stats, stat)
	}
	sort.Strings(stats)
	return stats
}

// MergeBonuses sums any number of partial bonus maps. Keys present in more
// than one source accumulate.
func MergeBonuses(sources ...Bonuses) Bonuses {
	total := make(Bonuses)
	for _, src := range sources {
		for stat, value := range src {
			total.Add(stat, value)
		}
	}
	return total
}
