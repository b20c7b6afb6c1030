// Package mpris публикует плеер на сессионной шине D-Bus по протоколу
// MPRIS2, чтобы медиаклавиши и апплеты рабочего стола управляли им.
// Доступно только на Linux: на остальных платформах New возвращает nil.
package mpris

import (
	"playkeys/internal/player"
	"playkeys/internal/shortcuts"
)

const (
	busName     = "org.mpris.MediaPlayer2.playkeys"
	objectPath  = "/org/mpris/MediaPlayer2"
	rootIface   = "org.mpris.MediaPlayer2"
	playerIface = "org.mpris.MediaPlayer2.Player"
	identity    = "playkeys"
)

// Player то, чем управляет медиасессия.
type Player interface {
	shortcuts.Controls
	Play()
	Pause()
	Stop()
	State() player.State
	OnChange(fn func(player.State))
}
