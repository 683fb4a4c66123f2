package domain

import (
	"fmt"
	"time"
)

// Profession is the closed set of merchant professions.
type Profession string

const (
	ProfessionBlacksmith      Profession = "Blacksmith"
	ProfessionAlchemist       Profession = "Alchemist"
	ProfessionGeneralMerchant Profession = "General Merchant"
	ProfessionButcher         Profession = "Butcher"
	ProfessionDruid           Profession = "Druid"
	ProfessionSmuggler        Profession = "Smuggler"
)

var Professions = []Profession{
	ProfessionBlacksmith,
	ProfessionAlchemist,
	ProfessionGeneralMerchant,
	ProfessionButcher,
	ProfessionDruid,
	ProfessionSmuggler,
}

func (p Profession) IsValid() bool {
	for _, profession := range Professions {
		if p == profession {
			return true
		}
	}

	return false
}

// Merchant supplies goods to the trading post.
type Merchant struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Profession Profession `json:"profession"`
	Location   string     `json:"location"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewMerchant(id, name string, profession Profession, location string) (Merchant, error) {
	if !profession.IsValid() {
		return Merchant{}, fmt.Errorf("invalid profession: %v", profession)
	}

	return Merchant{
		ID:         id,
		Name:       name,
		Profession: profession,
		Location:   location,
	}, nil
}
