package shortcuts

import (
	"log"
	"slices"

	"playkeys/internal/config"
)

// Walker обходит таблицу "действие -> сочетание" одной области и передаёт
// каждую запись нужному регистратору.
type Walker struct {
	Global GlobalRegistrar
	Local  LocalRegistrar
	Window Window
}

// Walk регистрирует все назначенные действия mapping в области scope.
// Пустые сочетания пропускаются молча, неизвестные действия и отказы
// регистраторов пишутся в лог и тоже пропускаются. Возвращает число
// успешно занятых сочетаний.
func (w Walker) Walk(mapping config.Mapping, scope Scope, ctl Controls) int {
	// Сортируем имена, чтобы порядок регистрации и логи были воспроизводимы
	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	slices.Sort(names)

	claimed := 0
	for _, name := range names {
		accel := mapping[name]
		if accel == "" {
			continue // Действие не назначено
		}

		action, ok := ParseAction(name)
		if !ok {
			log.Printf("Неизвестное действие %q (%s), пропускаем", name, scope)
			continue
		}

		fn := Bind(action, ctl)
		if fn == nil {
			log.Printf("Нет обработчика для действия %s (%s), пропускаем", action, scope)
			continue
		}

		log.Printf("Регистрация %s сочетания %s: %s", scope, accel, action)

		switch scope {
		case ScopeGlobal:
			claimed += w.registerGlobal(accel, action, fn)
		case ScopeLocal:
			claimed += w.registerLocal(accel, fn)
		default:
			log.Printf("Неизвестная область %q, пропускаем %s", scope, action)
		}
	}
	return claimed
}

func (w Walker) registerGlobal(accel string, action Action, fn func()) int {
	if w.Global == nil {
		return 0
	}

	claimed := 0
	for _, a := range Expand(accel, action) {
		if err := w.Global.Register(a, fn); err != nil {
			log.Printf("Глобальное сочетание %s не зарегистрировано: %v", a, err)
			continue
		}
		claimed++
	}
	return claimed
}

func (w Walker) registerLocal(accel string, fn func()) int {
	if w.Local == nil || w.Window == nil {
		return 0
	}

	if err := w.Local.Register(w.Window, accel, fn); err != nil {
		log.Printf("Локальное сочетание %s не зарегистрировано: %v", accel, err)
		return 0
	}
	return 1
}
