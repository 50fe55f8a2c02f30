package entities_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
)

func TestMergeBonusesAccumulatesOverlappingKeys(t *testing.T) {
	items := entities.Bonuses{"ac": 2, "str_score": 1}
	features := entities.Bonuses{"ac": 1}
	spells := entities.Bonuses{"ac": -1, "arcana": 2}

	got := entities.MergeBonuses(items, features, spells)
	want := entities.Bonuses{"ac": 2, "str_score": 1, "arcana": 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeBonuses() mismatch (-want +got):\n%s", diff)
	}

	// merge order does not matter
	assert.Equal(t, got, entities.MergeBonuses(spells, items, features))
	// inputs are untouched
	assert.Equal(t, entities.Bonuses{"ac": 2, "str_score": 1}, items)
}

func TestBonusesGetAndStats(t *testing.T) {
	b := make(entities.Bonuses)
	b.Add("str_score", 2)
	b.Add("ac", 1)
	b.Add("str_score", -1)

	assert.Equal(t, 1, b.Get("str_score"))
	assert.Equal(t, 0, b.Get("dex_score"))
	assert.Equal(t, []string{"ac", "str_score"}, b.Stats())
}
