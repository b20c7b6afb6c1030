package tray

import (
	"testing"

	"playkeys/internal/player"
	"playkeys/internal/shortcuts"
)

func TestSetStateBeforeRun(t *testing.T) {
	tr := New(&shortcuts.Trace{}, true, Callbacks{})
	// Меню ещё не создано: обновление состояния ничего не делает
	tr.SetState(player.State{Count: 1, Title: "a", Playing: true})
	tr.RefreshUI()
}
