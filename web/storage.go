//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/arena-blaster/game"
)

func localStorage() *js.Object {
	ls := js.Global.Get("localStorage")
	if ls == nil || ls == js.Undefined {
		return nil
	}
	return ls
}

func storageItem(ls *js.Object, key string) string {
	v := ls.Call("getItem", key)
	if v == nil || v == js.Undefined {
		return ""
	}
	return v.String()
}

// LoadProfile reads the stored character and infinite ammo flag. Read
// failures are logged and the defaults used.
func LoadProfile(log game.Logger) Profile {
	ls := localStorage()
	if ls == nil {
		return Profile{Character: game.CharacterSoldier}
	}
	p, err := ParseProfile(storageItem(ls, KeySelectedCharacter), storageItem(ls, KeyInfiniteAmmo))
	if err != nil {
		log.Warn("stored character ignored", "err", err)
	}
	return p
}

// SaveCharacter stores kind as the selected character.
func SaveCharacter(kind game.CharacterKind) {
	if ls := localStorage(); ls != nil {
		ls.Call("setItem", KeySelectedCharacter, EncodeCharacter(kind))
	}
}
