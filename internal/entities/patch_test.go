package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
)

func TestParseCharacterPatch(t *testing.T) {
	patch := entities.ParseCharacterPatch(map[string]string{
		"name":          "Elara",
		"level":         "3",
		"hp_max":        "abc",
		"ac":            "",
		"arcana_prof":   "on",
		"stealth_prof":  "0",
		"user_id":       "99",
		"password_hash": "nope",
	})

	name, ok := patch.Text(entities.FieldName)
	assert.True(t, ok)
	assert.Equal(t, "Elara", name)

	level, _ := patch.Number(entities.FieldLevel)
	assert.Equal(t, 3, level)

	hpMax, ok := patch.Number(entities.FieldHPMax)
	assert.True(t, ok, "non-numeric input is kept as zero, not dropped")
	assert.Equal(t, 0, hpMax)

	ac, ok := patch.Number(entities.FieldAC)
	assert.True(t, ok)
	assert.Equal(t, 0, ac)

	arcana, _ := patch.Flag("arcana_prof")
	assert.True(t, arcana)
	stealth, _ := patch.Flag("stealth_prof")
	assert.False(t, stealth)

	for _, f := range patch.Fields() {
		assert.NotEqual(t, entities.CharacterField("user_id"), f)
		assert.NotEqual(t, entities.CharacterField("password_hash"), f)
	}
}

func TestCharacterPatchSettersRejectUnknownOrMistypedFields(t *testing.T) {
	patch := entities.NewCharacterPatch()

	assert.Error(t, patch.SetText("owner_id", "2"))
	assert.Error(t, patch.SetNumber(entities.FieldName, 4))
	assert.Error(t, patch.SetFlag(entities.FieldLevel, true))
	assert.True(t, patch.IsEmpty())

	require.NoError(t, patch.SetNumber(entities.FieldLevel, 5))
	require.NoError(t, patch.SetFlag(entities.FieldIsSpellcaster, true))
	assert.False(t, patch.IsEmpty())
	assert.Equal(t, []entities.CharacterField{entities.FieldIsSpellcaster, entities.FieldLevel}, patch.Fields())
}

func TestCharacterPatchApplyTouchesOnlySetFields(t *testing.T) {
	c := entities.NewCharacter(1)
	c.Class = "Wizard"

	patch := entities.NewCharacterPatch()
	require.NoError(t, patch.SetText(entities.FieldName, "Merric"))
	require.NoError(t, patch.SetNumber("int_score", 17))
	require.NoError(t, patch.SetFlag("arcana_prof", true))

	patch.Apply(c)

	assert.Equal(t, "Merric", c.Name)
	assert.Equal(t, 17, c.Scores.Intelligence)
	assert.True(t, c.Skills.Arcana)
	assert.Equal(t, "Wizard", c.Class)
	assert.Equal(t, 10, c.AC)
}

func TestCharacterFieldPointerCoversEveryField(t *testing.T) {
	c := entities.NewCharacter(1)
	seen := make(map[any]bool)
	for _, f := range entities.CharacterFields() {
		ptr := c.FieldPointer(f)
		require.NotNil(t, ptr, f)
		assert.False(t, seen[ptr], "field %s shares storage with another field", f)
		seen[ptr] = true
	}
	assert.Nil(t, c.FieldPointer("owner_id"))
}

func TestParseLenientInt(t *testing.T) {
	assert.Equal(t, 12, entities.ParseLenientInt(" 12 "))
	assert.Equal(t, -4, entities.ParseLenientInt("-4"))
	assert.Equal(t, 0, entities.ParseLenientInt("twelve"))
	assert.Equal(t, 0, entities.ParseLenientInt(""))
}
