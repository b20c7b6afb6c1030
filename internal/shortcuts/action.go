package shortcuts

// SeekSeconds шаг перемотки для goForward/goBack.
const SeekSeconds = 10

// Action именованное действие воспроизведения.
type Action int

const (
	PlayPause Action = iota + 1
	Next
	Previous
	GoForward
	GoBack
	Search
	Like
	Dislike
)

var actionNames = [...]string{
	PlayPause: "playPause",
	Next:      "next",
	Previous:  "previous",
	GoForward: "goForward",
	GoBack:    "goBack",
	Search:    "search",
	Like:      "like",
	Dislike:   "dislike",
}

// Actions возвращает все действия в порядке объявления.
func Actions() []Action {
	return []Action{PlayPause, Next, Previous, GoForward, GoBack, Search, Like, Dislike}
}

// Valid возвращает true для объявленных действий.
func (a Action) Valid() bool {
	return a >= PlayPause && a <= Dislike
}

func (a Action) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction находит действие по имени из конфигурации.
func ParseAction(name string) (Action, bool) {
	for _, a := range Actions() {
		if actionNames[a] == name {
			return a, true
		}
	}
	return 0, false
}

// Controls источник команд управления воспроизведением.
// Что именно делает каждое действие, решает реализация.
type Controls interface {
	PlayPause()
	Next()
	Previous()
	GoForward(seconds int)
	GoBack(seconds int)
	Search()
	Like()
	Dislike()
}

// Bind возвращает обработчик без аргументов для действия.
// Перемотка получает фиксированный шаг SeekSeconds.
// Для неизвестного действия или nil Controls возвращает nil.
func Bind(a Action, ctl Controls) func() {
	if ctl == nil {
		return nil
	}

	switch a {
	case PlayPause:
		return ctl.PlayPause
	case Next:
		return ctl.Next
	case Previous:
		return ctl.Previous
	case GoForward:
		return func() { ctl.GoForward(SeekSeconds) }
	case GoBack:
		return func() { ctl.GoBack(SeekSeconds) }
	case Search:
		return ctl.Search
	case Like:
		return ctl.Like
	case Dislike:
		return ctl.Dislike
	}
	return nil
}
