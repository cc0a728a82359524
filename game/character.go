package game

import (
	"strings"

	"github.com/pkg/errors"
)

// CharacterKind is the player's immutable character tag, set at creation.
type CharacterKind int

const (
	CharacterPilot CharacterKind = iota
	CharacterSoldier
	CharacterNinja
	CharacterRobot
	CharacterDragon
	CharacterSecret
)

// Special is a character's special ability.
type Special int

const (
	SpecialNone Special = iota
	SpecialStealth
	SpecialTurret
	SpecialFlight
	SpecialDivine
)

var specialNames = [...]string{"none", "stealth", "turret", "flight", "divine"}

func (s Special) String() string {
	if int(s) >= 0 && int(s) < len(specialNames) {
		return specialNames[s]
	}
	return "unknown"
}

// Character is the stat block read at session start.
type Character struct {
	Name    string
	Health  int
	Speed   float64
	Damage  int
	Special Special
}

// ErrUnknownCharacter is returned by ParseCharacter for unrecognized names.
var ErrUnknownCharacter = errors.New("unknown character")

var characters = map[CharacterKind]Character{
	CharacterPilot:   {Name: "pilot", Health: 100, Speed: 5, Damage: 20, Special: SpecialNone},
	CharacterSoldier: {Name: "soldier", Health: 100, Speed: 4, Damage: 20, Special: SpecialNone},
	CharacterNinja:   {Name: "ninja", Health: 80, Speed: 6, Damage: 15, Special: SpecialStealth},
	CharacterRobot:   {Name: "robot", Health: 150, Speed: 3, Damage: 25, Special: SpecialTurret},
	CharacterDragon:  {Name: "dragon", Health: 200, Speed: 5, Damage: 30, Special: SpecialFlight},
	CharacterSecret:  {Name: "secret", Health: 999999, Speed: 10, Damage: 999, Special: SpecialDivine},
}

// Stats returns the character's stat block.
func (k CharacterKind) Stats() Character {
	if c, ok := characters[k]; ok {
		return c
	}
	return characters[CharacterPilot]
}

func (k CharacterKind) String() string {
	return k.Stats().Name
}

// ParseCharacter converts a stored character name to its kind.
func ParseCharacter(name string) (CharacterKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, c := range characters {
		if c.Name == name {
			return k, nil
		}
	}
	return CharacterPilot, errors.Wrapf(ErrUnknownCharacter, "character %q", name)
}
