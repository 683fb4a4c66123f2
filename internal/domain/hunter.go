package domain

import (
	"fmt"
	"time"
)

// Race is the closed set of hunter races.
type Race string

const (
	RaceHuman        Race = "Human"
	RaceElf          Race = "Elf"
	RaceDwarf        Race = "Dwarf"
	RaceHalfling     Race = "Halfling"
	RaceWarlock      Race = "Warlock"
	RaceLycanthropic Race = "Lycanthropic"
	RaceVran         Race = "Vran"
	RaceDryad        Race = "Dryad"
	RaceSpectralCat  Race = "Spectral Cat"
	RaceHalfElf      Race = "Half-Elf"
)

var Races = []Race{
	RaceHuman,
	RaceElf,
	RaceDwarf,
	RaceHalfling,
	RaceWarlock,
	RaceLycanthropic,
	RaceVran,
	RaceDryad,
	RaceSpectralCat,
	RaceHalfElf,
}

func (r Race) IsValid() bool {
	for _, race := range Races {
		if r == race {
			return true
		}
	}

	return false
}

// Hunter is a client of the trading post.
type Hunter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Race      Race      `json:"race"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewHunter(id, name string, race Race, location string) (Hunter, error) {
	if !race.IsValid() {
		return Hunter{}, fmt.Errorf("invalid race: %v", race)
	}

	return Hunter{
		ID:       id,
		Name:     name,
		Race:     race,
		Location: location,
	}, nil
}
