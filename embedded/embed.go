// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// IconIdle - иконка на паузе (серая).
//
//go:embed icon_idle.png
var IconIdle []byte

// IconPlaying - иконка во время воспроизведения (синяя).
//
//go:embed icon_playing.png
var IconPlaying []byte
