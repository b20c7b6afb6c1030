package accel

import (
	"strings"
)

// Key представляет клавишу в канонической записи.
type Key string

const (
	KeySpace     Key = "Space"
	KeyTab       Key = "Tab"
	KeyReturn    Key = "Return"
	KeyEscape    Key = "Escape"
	KeyBackspace Key = "Backspace"
	KeyDelete    Key = "Delete"
	KeyInsert    Key = "Insert"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
	KeyPageUp    Key = "PageUp"
	KeyPageDown  Key = "PageDown"
	KeyUp        Key = "Up"
	KeyDown      Key = "Down"
	KeyLeft      Key = "Left"
	KeyRight     Key = "Right"
	KeyPlus      Key = "Plus"

	// Знаки препинания записываются самим символом
	KeyComma        Key = ","
	KeyPeriod       Key = "."
	KeySlash        Key = "/"
	KeyBackslash    Key = "\\"
	KeyMinus        Key = "-"
	KeyEqual        Key = "="
	KeySemicolon    Key = ";"
	KeyApostrophe   Key = "'"
	KeyGrave        Key = "`"
	KeyBracketLeft  Key = "["
	KeyBracketRight Key = "]"

	// Мультимедийные клавиши
	KeyMediaPlayPause     Key = "MediaPlayPause"
	KeyMediaNextTrack     Key = "MediaNextTrack"
	KeyMediaPreviousTrack Key = "MediaPreviousTrack"
	KeyMediaStop          Key = "MediaStop"
	KeyVolumeUp           Key = "VolumeUp"
	KeyVolumeDown         Key = "VolumeDown"
	KeyVolumeMute         Key = "VolumeMute"
)

// IsMedia возвращает true для мультимедийных клавиш.
func (k Key) IsMedia() bool {
	switch k {
	case KeyMediaPlayPause, KeyMediaNextTrack, KeyMediaPreviousTrack, KeyMediaStop,
		KeyVolumeUp, KeyVolumeDown, KeyVolumeMute:
		return true
	}
	return false
}

// FunctionNumber возвращает номер функциональной клавиши F1..F24 или 0.
func (k Key) FunctionNumber() int {
	s := string(k)
	if len(s) < 2 || s[0] != 'F' || s[1] == '0' {
		return 0
	}
	n := 0
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 || n > 24 {
		return 0
	}
	return n
}

// punctuation допустимые односимвольные клавиши-знаки. Плюс служит
// разделителем и записывается как Plus.
const punctuation = ",./\\-=;'`[]"

var namedKeys = map[string]Key{
	"space":              KeySpace,
	"tab":                KeyTab,
	"return":             KeyReturn,
	"enter":              KeyReturn,
	"escape":             KeyEscape,
	"esc":                KeyEscape,
	"backspace":          KeyBackspace,
	"delete":             KeyDelete,
	"del":                KeyDelete,
	"insert":             KeyInsert,
	"home":               KeyHome,
	"end":                KeyEnd,
	"pageup":             KeyPageUp,
	"pagedown":           KeyPageDown,
	"up":                 KeyUp,
	"down":               KeyDown,
	"left":               KeyLeft,
	"right":              KeyRight,
	"plus":               KeyPlus,
	"mediaplaypause":     KeyMediaPlayPause,
	"medianexttrack":     KeyMediaNextTrack,
	"mediaprevioustrack": KeyMediaPreviousTrack,
	"mediastop":          KeyMediaStop,
	"volumeup":           KeyVolumeUp,
	"volumedown":         KeyVolumeDown,
	"volumemute":         KeyVolumeMute,
}

func lookupKey(s string) (Key, bool) {
	// Буквы, цифры и знаки препинания
	if len(s) == 1 {
		c := s[0]
		switch {
		case c >= 'a' && c <= 'z':
			return Key(strings.ToUpper(s)), true
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return Key(s), true
		case strings.IndexByte(punctuation, c) >= 0:
			return Key(s), true
		}
		return "", false
	}

	if k, ok := namedKeys[strings.ToLower(s)]; ok {
		return k, true
	}

	// F1..F24
	if k := Key(strings.ToUpper(s)); k.FunctionNumber() > 0 {
		return k, true
	}
	return "", false
}
