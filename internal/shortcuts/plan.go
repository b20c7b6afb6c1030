package shortcuts

import (
	"slices"

	"playkeys/internal/config"
)

// Binding итоговая привязка: сочетание, область и действие.
type Binding struct {
	Scope  Scope
	Accel  string
	Action Action
}

// Plan выполняет пробный запуск движка без обращения к ОС и возвращает
// привязки в порядке регистрации. Конфликты и недоступные клавиши
// определяются по ids. Действие каждой привязки определяется
// срабатыванием её обработчика.
func Plan(cfg config.Shortcuts, ids Identities) []Binding {
	rec := NewRecorder(ids)
	trace := &Trace{}

	e := New(trace, noWindow{}, Options{Global: rec.Global(), Local: rec})
	e.Start(cfg)

	claims := rec.Claims()
	out := make([]Binding, 0, len(claims))
	for _, c := range claims {
		trace.Reset()
		c.Fire()
		call, ok := trace.Last()
		if !ok {
			continue
		}
		out = append(out, Binding{Scope: c.Scope, Accel: c.Accel, Action: call.Action})
	}
	return out
}

// OnlyClaimed оставляет привязки, которые регистраторы действительно
// заняли: global и local списки занятых сочетаний в исходной записи.
func OnlyClaimed(plan []Binding, global, local []string) []Binding {
	out := make([]Binding, 0, len(plan))
	for _, b := range plan {
		if b.claimedIn(global, local) {
			out = append(out, b)
		}
	}
	return out
}

// Missing возвращает сочетания из plan, которых нет среди занятых.
func Missing(plan []Binding, global, local []string) []string {
	var out []string
	for _, b := range plan {
		if !b.claimedIn(global, local) {
			out = append(out, b.Accel)
		}
	}
	return out
}

func (b Binding) claimedIn(global, local []string) bool {
	if b.Scope == ScopeGlobal {
		return slices.Contains(global, b.Accel)
	}
	return slices.Contains(local, b.Accel)
}

// noWindow окно-заглушка для пробного запуска: Recorder в окно не пишет.
type noWindow struct{}

func (noWindow) Bind(string, func()) error { return nil }
func (noWindow) ResetKeys()                {}
func (noWindow) Raise()                    {}
