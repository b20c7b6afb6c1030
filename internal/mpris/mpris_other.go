//go:build !linux

package mpris

import "playkeys/internal/shortcuts"

// New возвращает nil: системной медиасессии MPRIS на этой платформе нет.
func New(p Player) shortcuts.MediaSession {
	return nil
}
