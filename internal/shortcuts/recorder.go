package shortcuts

import (
	"errors"
	"fmt"
	"sync"

	"playkeys/internal/accel"
)

// ErrAlreadyClaimed сочетание уже занято в этой области.
var ErrAlreadyClaimed = errors.New("сочетание уже занято")

// Claim одна занятая регистратором комбинация.
type Claim struct {
	Scope Scope
	Accel string
	Fire  func()
}

// IdentityFunc возвращает физическую идентичность сочетания: сочетания
// с одной идентичностью занимают одну клавишу. Ошибка означает, что
// сочетание не может быть зарегистрировано.
type IdentityFunc func(accel string) (string, error)

// Identities правила идентичности для каждой области. Пустое поле
// означает каноническую запись accel.Normalize.
type Identities struct {
	Global IdentityFunc
	Local  IdentityFunc
}

func (ids Identities) of(scope Scope) IdentityFunc {
	fn := ids.Local
	if scope == ScopeGlobal {
		fn = ids.Global
	}
	if fn == nil {
		return accel.Normalize
	}
	return fn
}

// Recorder регистратор без побочных эффектов: запоминает занятые сочетания
// обеих областей. Используется для пробного прогона и в тестах.
// Физически одинаковые сочетания одной области не занимаются повторно.
type Recorder struct {
	mu      sync.Mutex
	ids     Identities
	claims  []Claim
	claimed map[Scope]map[string]bool
}

// NewRecorder создаёт пустой Recorder с правилами идентичности ids.
func NewRecorder(ids Identities) *Recorder {
	return &Recorder{ids: ids, claimed: make(map[Scope]map[string]bool)}
}

// Global возвращает Recorder как глобальный регистратор.
func (r *Recorder) Global() GlobalRegistrar {
	return recorderScope{r}
}

type recorderScope struct{ r *Recorder }

func (s recorderScope) Register(a string, fn func()) error {
	return s.r.claim(ScopeGlobal, a, fn)
}

// Register реализует LocalRegistrar.
func (r *Recorder) Register(_ Window, a string, fn func()) error {
	return r.claim(ScopeLocal, a, fn)
}

func (r *Recorder) claim(scope Scope, s string, fn func()) error {
	id, err := r.ids.of(scope)(s)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.claimed[scope] == nil {
		r.claimed[scope] = make(map[string]bool)
	}
	if r.claimed[scope][id] {
		return fmt.Errorf("%s: %w", s, ErrAlreadyClaimed)
	}
	r.claimed[scope][id] = true
	r.claims = append(r.claims, Claim{Scope: scope, Accel: s, Fire: fn})
	return nil
}

// Claims возвращает занятые сочетания в порядке регистрации.
func (r *Recorder) Claims() []Claim {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Claim(nil), r.claims...)
}

// Reset освобождает все сочетания.
func (r *Recorder) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims = nil
	r.claimed = make(map[Scope]map[string]bool)
	return nil
}
