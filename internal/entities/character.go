// Package entities holds the plain data records of the sheet domain.
// Nothing here talks to storage; repositories scan into these types and
// orchestrators return them to the transport untouched.
package entities

import "time"

// DefaultCharacterName is given to every newly created character
const DefaultCharacterName = "New Character"

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int `json:"str"`
	Dexterity    int `json:"dex"`
	Constitution int `json:"con"`
	Intelligence int `json:"int"`
	Wisdom       int `json:"wis"`
	Charisma     int `json:"cha"`
}

// SaveProficiencies flags proficiency in each saving throw
type SaveProficiencies struct {
	Strength     bool `json:"str"`
	Dexterity    bool `json:"dex"`
	Constitution bool `json:"con"`
	Intelligence bool `json:"int"`
	Wisdom       bool `json:"wis"`
	Charisma     bool `json:"cha"`
}

// SkillProficiencies flags proficiency in each of the eighteen skills
type SkillProficiencies struct {
	Acrobatics     bool `json:"acrobatics"`
	AnimalHandling bool `json:"animal_handling"`
	Arcana         bool `json:"arcana"`
	Athletics      bool `json:"athletics"`
	Deception      bool `json:"deception"`
	History        bool `json:"history"`
	Insight        bool `json:"insight"`
	Intimidation   bool `json:"intimidation"`
	Investigation  bool `json:"investigation"`
	Medicine       bool `json:"medicine"`
	Nature         bool `json:"nature"`
	Perception     bool `json:"perception"`
	Performance    bool `json:"performance"`
	Persuasion     bool `json:"persuasion"`
	Religion       bool `json:"religion"`
	SleightOfHand  bool `json:"sleight_of_hand"`
	Stealth        bool `json:"stealth"`
	Survival       bool `json:"survival"`
}

// Character is the core sheet record. It is owned by exactly one user.
type Character struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"owner_id"`

	Name       string `json:"name"`
	Level      int    `json:"level"`
	Class      string `json:"class"`
	Race       string `json:"race"`
	Background string `json:"background"`
	Alignment  string `json:"alignment"`

	HPCurrent          int `json:"hp_current"`
	HPMax              int `json:"hp_max"`
	TempHP             int `json:"temp_hp"`
	AC                 int `json:"ac"`
	Initiative         int `json:"initiative"`
	Speed              int `json:"speed"`
	DeathSaveSuccesses int `json:"death_save_successes"`
	DeathSaveFailures  int `json:"death_save_failures"`
	ProficiencyBonus   int `json:"proficiency_bonus"`

	Scores AbilityScores      `json:"scores"`
	Saves  SaveProficiencies  `json:"saves"`
	Skills SkillProficiencies `json:"skills"`

	ManaCurrent   int  `json:"mana_current"`
	ManaMax       int  `json:"mana_max"`
	IsSpellcaster bool `json:"is_spellcaster"`

	CustomAbilities string `json:"custom_abilities"`
	Notes           string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCharacter returns a blank sheet for owner with the table defaults
func NewCharacter(ownerID int64) *Character {
	return &Character{
		OwnerID:          ownerID,
		Name:             DefaultCharacterName,
		Level:            1,
		AC:               10,
		Speed:            30,
		ProficiencyBonus: 2,
		Scores: AbilityScores{
			Strength:     10,
			Dexterity:    10,
			Constitution: 10,
			Intelligence: 10,
			Wisdom:       10,
			Charisma:     10,
		},
	}
}
