package web

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/simukka/arena-blaster/game"
)

// Storage keys read at session start.
const (
	KeySelectedCharacter = "selectedCharacter"
	KeyInfiniteAmmo      = "infiniteAmmo"
)

// Profile is the persisted player choice applied to new sessions.
type Profile struct {
	Character    game.CharacterKind
	InfiniteAmmo bool
}

// storedCharacter is the stat block the character picker saves.
type storedCharacter struct {
	Name           string  `json:"name,omitempty"`
	Health         int     `json:"health"`
	Speed          float64 `json:"speed"`
	Damage         int     `json:"damage"`
	SpecialAbility string  `json:"specialAbility"`
}

var abilityCharacters = map[string]game.CharacterKind{
	"none":    game.CharacterSoldier,
	"stealth": game.CharacterNinja,
	"turret":  game.CharacterRobot,
	"flight":  game.CharacterDragon,
	"divine":  game.CharacterSecret,
}

// ParseProfile interprets raw storage values. A missing character is the
// soldier; an unreadable one is reported along with the soldier default.
func ParseProfile(selected, infinite string) (Profile, error) {
	p := Profile{
		Character:    game.CharacterSoldier,
		InfiniteAmmo: infinite == "true",
	}
	selected = strings.TrimSpace(selected)
	if selected == "" {
		return p, nil
	}

	kind, err := parseStoredCharacter(selected)
	if err != nil {
		return p, err
	}
	p.Character = kind
	return p, nil
}

func parseStoredCharacter(raw string) (game.CharacterKind, error) {
	if !strings.HasPrefix(raw, "{") && !strings.HasPrefix(raw, `"`) {
		return game.ParseCharacter(raw)
	}

	var name string
	if err := json.Unmarshal([]byte(raw), &name); err == nil {
		return game.ParseCharacter(name)
	}

	var sc storedCharacter
	if err := json.Unmarshal([]byte(raw), &sc); err != nil {
		return game.CharacterSoldier, errors.Wrap(err, "decode stored character")
	}
	if sc.Name != "" {
		return game.ParseCharacter(sc.Name)
	}
	if kind, ok := abilityCharacters[sc.SpecialAbility]; ok {
		return kind, nil
	}
	return game.CharacterSoldier, errors.Wrapf(game.ErrUnknownCharacter, "special ability %q", sc.SpecialAbility)
}

// EncodeCharacter returns the storage value for kind.
func EncodeCharacter(kind game.CharacterKind) string {
	st := kind.Stats()
	b, _ := json.Marshal(storedCharacter{
		Name:           st.Name,
		Health:         st.Health,
		Speed:          st.Speed,
		Damage:         st.Damage,
		SpecialAbility: abilityName(st.Special),
	})
	return string(b)
}

func abilityName(s game.Special) string {
	if s == game.SpecialNone {
		return "none"
	}
	return s.String()
}
