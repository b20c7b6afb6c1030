//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"

	"playkeys/internal/accel"
)

// modifierMap маппинг accel.Modifier -> hotkey.Modifier для Linux
var modifierMap = map[accel.Modifier]hotkey.Modifier{
	accel.ModCmdOrCtrl: hotkey.ModCtrl,
	accel.ModCtrl:      hotkey.ModCtrl,
	accel.ModShift:     hotkey.ModShift,
	accel.ModAlt:       hotkey.Mod1, // Alt = Mod1 на X11
	accel.ModSuper:     hotkey.Mod4, // Super/Win = Mod4 на X11
	accel.ModCmd:       hotkey.Mod4,
}

// mediaKeyMap пуст: XF86Audio* не помещаются в hotkey.Key,
// медиаклавиши на Linux приходят через MPRIS.
var mediaKeyMap = map[accel.Key]hotkey.Key{}

// punctKeyMap keysym знаков препинания совпадает с кодом ASCII.
var punctKeyMap = map[accel.Key]hotkey.Key{
	accel.KeyPlus:         hotkey.Key(0x2b),
	accel.KeyComma:        hotkey.Key(0x2c),
	accel.KeyMinus:        hotkey.Key(0x2d),
	accel.KeyPeriod:       hotkey.Key(0x2e),
	accel.KeySlash:        hotkey.Key(0x2f),
	accel.KeySemicolon:    hotkey.Key(0x3b),
	accel.KeyEqual:        hotkey.Key(0x3d),
	accel.KeyBracketLeft:  hotkey.Key(0x5b),
	accel.KeyBackslash:    hotkey.Key(0x5c),
	accel.KeyBracketRight: hotkey.Key(0x5d),
	accel.KeyApostrophe:   hotkey.Key(0x27),
	accel.KeyGrave:        hotkey.Key(0x60),
}
