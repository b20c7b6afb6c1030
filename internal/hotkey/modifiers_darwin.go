//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"

	"playkeys/internal/accel"
)

// modifierMap маппинг accel.Modifier -> hotkey.Modifier для macOS
var modifierMap = map[accel.Modifier]hotkey.Modifier{
	accel.ModCmdOrCtrl: hotkey.ModCmd,
	accel.ModCtrl:      hotkey.ModCtrl,
	accel.ModShift:     hotkey.ModShift,
	accel.ModAlt:       hotkey.ModOption,
	accel.ModSuper:     hotkey.ModCmd,
	accel.ModCmd:       hotkey.ModCmd,
}

// mediaKeyMap медиаклавиши на macOS не перехватываются через Carbon,
// вместо них используются F7/F8/F9 с теми же значками на клавиатуре.
var mediaKeyMap = map[accel.Key]hotkey.Key{
	accel.KeyMediaPreviousTrack: hotkey.KeyF7,
	accel.KeyMediaPlayPause:     hotkey.KeyF8,
	accel.KeyMediaNextTrack:     hotkey.KeyF9,
}

// punctKeyMap коды kVK_ANSI_*. Plus и = одна физическая клавиша.
var punctKeyMap = map[accel.Key]hotkey.Key{
	accel.KeyPlus:         hotkey.Key(0x18),
	accel.KeyEqual:        hotkey.Key(0x18),
	accel.KeyMinus:        hotkey.Key(0x1B),
	accel.KeyBracketRight: hotkey.Key(0x1E),
	accel.KeyBracketLeft:  hotkey.Key(0x21),
	accel.KeyApostrophe:   hotkey.Key(0x27),
	accel.KeySemicolon:    hotkey.Key(0x29),
	accel.KeyBackslash:    hotkey.Key(0x2A),
	accel.KeyComma:        hotkey.Key(0x2B),
	accel.KeySlash:        hotkey.Key(0x2C),
	accel.KeyPeriod:       hotkey.Key(0x2F),
	accel.KeyGrave:        hotkey.Key(0x32),
}
