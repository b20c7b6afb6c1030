package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"playkeys/internal/accel"
	"playkeys/internal/app"
	"playkeys/internal/config"
	"playkeys/internal/shortcuts"
)

func newBindCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bind <global|local> <action> [accelerator]",
		Short: "Set or clear the shortcut of an action",
		Long: `Write an accelerator for an action into the config file. Without an
accelerator the action is left unbound. A running playkeys picks up the
change and re-registers its shortcuts.

Actions: playPause, next, previous, goForward, goBack, search, like, dislike.
  playkeys bind global like "CmdOrCtrl+Shift+L"
  playkeys bind local next N
  playkeys bind global dislike`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := shortcuts.Scope(args[0])
			if scope != shortcuts.ScopeGlobal && scope != shortcuts.ScopeLocal {
				return fmt.Errorf("неизвестная область %q: ожидается global или local", args[0])
			}
			action, ok := shortcuts.ParseAction(args[1])
			if !ok {
				return fmt.Errorf("неизвестное действие %q", args[1])
			}
			var a string
			if len(args) == 3 {
				a = args[2]
				if _, err := accel.Parse(a); err != nil {
					return err
				}
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			s := setBinding(cfg.Shortcuts(), scope, action, a)
			if err := cfg.SetShortcuts(s); err != nil {
				return fmt.Errorf("сохранение %s: %w", cfg.Path(), err)
			}

			out := cmd.OutOrStdout()
			if a == "" {
				fmt.Fprintf(out, "%s %s: unbound\n", scope, action)
				return nil
			}
			fmt.Fprintf(out, "%s %s: %s\n", scope, action, a)

			// Сочетание может уступить более раннему или быть недоступным
			planned := shortcuts.Plan(s, app.Identities())
			if !slices.ContainsFunc(planned, func(b shortcuts.Binding) bool {
				return b.Scope == scope && b.Accel == a && b.Action == action
			}) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s will not be registered (conflict or unsupported key), see playkeys bindings\n", a)
			}
			return nil
		},
	}
}

// setBinding возвращает копию s с новым сочетанием действия.
func setBinding(s config.Shortcuts, scope shortcuts.Scope, action shortcuts.Action, a string) config.Shortcuts {
	s = s.Clone()
	m := &s.Local
	if scope == shortcuts.ScopeGlobal {
		m = &s.Global
	}
	if *m == nil {
		*m = config.Mapping{}
	}
	(*m)[action.String()] = a
	return s
}
