//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"playkeys/internal/accel"
)

// modifierMap маппинг accel.Modifier -> hotkey.Modifier для Windows
var modifierMap = map[accel.Modifier]hotkey.Modifier{
	accel.ModCmdOrCtrl: hotkey.ModCtrl,
	accel.ModCtrl:      hotkey.ModCtrl,
	accel.ModShift:     hotkey.ModShift,
	accel.ModAlt:       hotkey.ModAlt,
	accel.ModSuper:     hotkey.ModWin,
	accel.ModCmd:       hotkey.ModWin,
}

// mediaKeyMap виртуальные коды VK_MEDIA_*
var mediaKeyMap = map[accel.Key]hotkey.Key{
	accel.KeyMediaNextTrack:     hotkey.Key(0xB0),
	accel.KeyMediaPreviousTrack: hotkey.Key(0xB1),
	accel.KeyMediaStop:          hotkey.Key(0xB2),
	accel.KeyMediaPlayPause:     hotkey.Key(0xB3),
	accel.KeyVolumeMute:         hotkey.Key(0xAD),
	accel.KeyVolumeDown:         hotkey.Key(0xAE),
	accel.KeyVolumeUp:           hotkey.Key(0xAF),
}

// punctKeyMap виртуальные коды VK_OEM_*. Plus и = одна физическая клавиша.
var punctKeyMap = map[accel.Key]hotkey.Key{
	accel.KeySemicolon:    hotkey.Key(0xBA),
	accel.KeyPlus:         hotkey.Key(0xBB),
	accel.KeyEqual:        hotkey.Key(0xBB),
	accel.KeyComma:        hotkey.Key(0xBC),
	accel.KeyMinus:        hotkey.Key(0xBD),
	accel.KeyPeriod:       hotkey.Key(0xBE),
	accel.KeySlash:        hotkey.Key(0xBF),
	accel.KeyGrave:        hotkey.Key(0xC0),
	accel.KeyBracketLeft:  hotkey.Key(0xDB),
	accel.KeyBackslash:    hotkey.Key(0xDC),
	accel.KeyBracketRight: hotkey.Key(0xDD),
	accel.KeyApostrophe:   hotkey.Key(0xDE),
}
