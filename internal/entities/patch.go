package entities

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CharacterField names one editable column of a character sheet
type CharacterField string

// Frequently referenced fields. The full allow-list is characterFieldSpecs.
const (
	FieldName          CharacterField = "name"
	FieldLevel         CharacterField = "level"
	FieldClass         CharacterField = "class"
	FieldHPCurrent     CharacterField = "hp_current"
	FieldHPMax         CharacterField = "hp_max"
	FieldAC            CharacterField = "ac"
	FieldManaMax       CharacterField = "mana_max"
	FieldIsSpellcaster CharacterField = "is_spellcaster"
	FieldNotes         CharacterField = "notes"
)

type fieldKind int

const (
	textField fieldKind = iota
	numberField
	flagField
)

type fieldSpec struct {
	field CharacterField
	kind  fieldKind
	ptr   func(c *Character) any
}

// characterFieldSpecs is the allow-list of editable fields, in column order.
var characterFieldSpecs = []fieldSpec{
	{FieldName, textField, func(c *Character) any { return &c.Name }},
	{FieldLevel, numberField, func(c *Character) any { return &c.Level }},
	{FieldClass, textField, func(c *Character) any { return &c.Class }},
	{"race", textField, func(c *Character) any { return &c.Race }},
	{"background", textField, func(c *Character) any { return &c.Background }},
	{"alignment", textField, func(c *Character) any { return &c.Alignment }},

	{FieldHPCurrent, numberField, func(c *Character) any { return &c.HPCurrent }},
	{FieldHPMax, numberField, func(c *Character) any { return &c.HPMax }},
	{"temp_hp", numberField, func(c *Character) any { return &c.TempHP }},
	{FieldAC, numberField, func(c *Character) any { return &c.AC }},
	{"initiative", numberField, func(c *Character) any { return &c.Initiative }},
	{"speed", numberField, func(c *Character) any { return &c.Speed }},
	{"death_save_successes", numberField, func(c *Character) any { return &c.DeathSaveSuccesses }},
	{"death_save_failures", numberField, func(c *Character) any { return &c.DeathSaveFailures }},
	{"proficiency_bonus", numberField, func(c *Character) any { return &c.ProficiencyBonus }},

	{"str_score", numberField, func(c *Character) any { return &c.Scores.Strength }},
	{"dex_score", numberField, func(c *Character) any { return &c.Scores.Dexterity }},
	{"con_score", numberField, func(c *Character) any { return &c.Scores.Constitution }},
	{"int_score", numberField, func(c *Character) any { return &c.Scores.Intelligence }},
	{"wis_score", numberField, func(c *Character) any { return &c.Scores.Wisdom }},
	{"cha_score", numberField, func(c *Character) any { return &c.Scores.Charisma }},

	{"str_save_prof", flagField, func(c *Character) any { return &c.Saves.Strength }},
	{"dex_save_prof", flagField, func(c *Character) any { return &c.Saves.Dexterity }},
	{"con_save_prof", flagField, func(c *Character) any { return &c.Saves.Constitution }},
	{"int_save_prof", flagField, func(c *Character) any { return &c.Saves.Intelligence }},
	{"wis_save_prof", flagField, func(c *Character) any { return &c.Saves.Wisdom }},
	{"cha_save_prof", flagField, func(c *Character) any { return &c.Saves.Charisma }},

	{"acrobatics_prof", flagField, func(c *Character) any { return &c.Skills.Acrobatics }},
	{"animal_handling_prof", flagField, func(c *Character) any { return &c.Skills.AnimalHandling }},
	{"arcana_prof", flagField, func(c *Character) any { return &c.Skills.Arcana }},
	{"athletics_prof", flagField, func(c *Character) any { return &c.Skills.Athletics }},
	{"deception_prof", flagField, func(c *Character) any { return &c.Skills.Deception }},
	{"history_prof", flagField, func(c *Character) any { return &c.Skills.History }},
	{"insight_prof", flagField, func(c *Character) any { return &c.Skills.Insight }},
	{"intimidation_prof", flagField, func(c *Character) any { return &c.Skills.Intimidation }},
	{"investigation_prof", flagField, func(c *Character) any { return &c.Skills.Investigation }},
	{"medicine_prof", flagField, func(c *Character) any { return &c.Skills.Medicine }},
	{"nature_prof", flagField, func(c *Character) any { return &c.Skills.Nature }},
	{"perception_prof", flagField, func(c *Character) any { return &c.Skills.Perception }},
	{"performance_prof", flagField, func(c *Character) any { return &c.Skills.Performance }},
	{"persuasion_prof", flagField, func(c *Character) any { return &c.Skills.Persuasion }},
	{"religion_prof", flagField, func(c *Character) any { return &c.Skills.Religion }},
	{"sleight_of_hand_prof", flagField, func(c *Character) any { return &c.Skills.SleightOfHand }},
	{"stealth_prof", flagField, func(c *Character) any { return &c.Skills.Stealth }},
	{"survival_prof", flagField, func(c *Character) any { return &c.Skills.Survival }},

	{"mana_current", numberField, func(c *Character) any { return &c.ManaCurrent }},
	{FieldManaMax, numberField, func(c *Character) any { return &c.ManaMax }},
	{FieldIsSpellcaster, flagField, func(c *Character) any { return &c.IsSpellcaster }},

	{"custom_abilities", textField, func(c *Character) any { return &c.CustomAbilities }},
	{FieldNotes, textField, func(c *Character) any { return &c.Notes }},
}

var characterFieldIndex = func() map[CharacterField]fieldSpec {
	index := make(map[CharacterField]fieldSpec, len(characterFieldSpecs))
	for _, spec := range characterFieldSpecs {
		index[spec.field] = spec
	}
	return index
}()

// CharacterFields returns every editable field in storage column order
func CharacterFields() []CharacterField {
	fields := make([]CharacterField, len(characterFieldSpecs))
	for i, spec := range characterFieldSpecs {
		fields[i] = spec.field
	}
	return fields
}

// FieldPointer returns a pointer to the struct member backing field, or nil
// if field is not on the allow-list. Repositories use it as a scan target.
func (c *Character) FieldPointer(field CharacterField) any {
	spec, ok := characterFieldIndex[field]
	if !ok {
		return nil
	}
	return spec.ptr(c)
}

// CharacterPatch is a partial update of a character sheet. Only fields on the
// allow-list can be set, and each setter checks the field's type.
type CharacterPatch struct {
	texts   map[CharacterField]string
	numbers map[CharacterField]int
	flags   map[CharacterField]bool
}

// NewCharacterPatch returns an empty patch
func NewCharacterPatch() *CharacterPatch {
	return &CharacterPatch{
		texts:   make(map[CharacterField]string),
		numbers: make(map[CharacterField]int),
		flags:   make(map[CharacterField]bool),
	}
}

func (p *CharacterPatch) check(field CharacterField, kind fieldKind) error {
	spec, ok := characterFieldIndex[field]
	if !ok {
		return fmt.Errorf("field %q is not editable", field)
	}
	if spec.kind != kind {
		return fmt.Errorf("field %q has a different type", field)
	}
	return nil
}

// SetText sets a text field
func (p *CharacterPatch) SetText(field CharacterField, value string) error {
	if err := p.check(field, textField); err != nil {
		return err
	}
	p.texts[field] = value
	return nil
}

// SetNumber sets a numeric field
func (p *CharacterPatch) SetNumber(field CharacterField, value int) error {
	if err := p.check(field, numberField); err != nil {
		return err
	}
	p.numbers[field] = value
	return nil
}

// SetFlag sets a boolean field
func (p *CharacterPatch) SetFlag(field CharacterField, value bool) error {
	if err := p.check(field, flagField); err != nil {
		return err
	}
	p.flags[field] = value
	return nil
}

// Text returns the pending value of a text field
func (p *CharacterPatch) Text(field CharacterField) (string, bool) {
	v, ok := p.texts[field]
	return v, ok
}

// Number returns the pending value of a numeric field
func (p *CharacterPatch) Number(field CharacterField) (int, bool) {
	v, ok := p.numbers[field]
	return v, ok
}

// Flag returns the pending value of a boolean field
func (p *CharacterPatch) Flag(field CharacterField) (bool, bool) {
	v, ok := p.flags[field]
	return v, ok
}

// IsEmpty reports whether the patch sets nothing
func (p *CharacterPatch) IsEmpty() bool {
	return len(p.texts)+len(p.numbers)+len(p.flags) == 0
}

// Fields lists the fields the patch sets, sorted by name
func (p *CharacterPatch) Fields() []CharacterField {
	fields := make([]CharacterField, 0, len(p.texts)+len(p.numbers)+len(p.flags))
	for f := range p.texts {
		fields = append(fields, f)
	}
	for f := range p.numbers {
		fields = append(fields, f)
	}
	for f := range p.flags {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// Apply writes the patch onto c
func (p *CharacterPatch) Apply(c *Character) {
	for field, v := range p.texts {
		*(characterFieldIndex[field].ptr(c).(*string)) = v
	}
	for field, v := range p.numbers {
		*(characterFieldIndex[field].ptr(c).(*int)) = v
	}
	for field, v := range p.flags {
		*(characterFieldIndex[field].ptr(c).(*bool)) = v
	}
}

// ParseCharacterPatch builds a patch from raw form values. Keys outside the
// allow-list are ignored. Numbers that are blank or do not parse become 0 and
// flags accept 1/true/on/yes.
func ParseCharacterPatch(values map[string]string) *CharacterPatch {
	p := NewCharacterPatch()
	for key, raw := range values {
		spec, ok := characterFieldIndex[CharacterField(key)]
		if !ok {
			continue
		}
		switch spec.kind {
		case textField:
			p.texts[spec.field] = raw
		case numberField:
			p.numbers[spec.field] = ParseLenientInt(raw)
		case flagField:
			p.flags[spec.field] = parseFlag(raw)
		}
	}
	return p
}

// ParseLenientInt parses a form integer, returning 0 for blank or bad input
func ParseLenientInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}
