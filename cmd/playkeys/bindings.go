package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"playkeys/internal/app"
	"playkeys/internal/shortcuts"
)

type bindingJSON struct {
	Scope  string `json:"scope"`
	Accel  string `json:"accelerator"`
	Action string `json:"action"`
}

func newBindingsCmd(configPath *string) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Print the shortcuts that would be registered",
		Long: `Run the shortcut engine against a recorder instead of the OS and print
every claimed accelerator with its scope and action, in registration order.
Conflicts and unsupported keys are decided by the same per-platform rules
the running app uses.

Nothing is registered with the operating system:
  playkeys bindings
  playkeys bindings --config keys.json --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			bindings := shortcuts.Plan(cfg.Shortcuts(), app.Identities())
			if jsonOutput {
				return renderJSON(cmd.OutOrStdout(), bindings)
			}
			return renderTable(cmd.OutOrStdout(), bindings)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func renderTable(w io.Writer, bindings []shortcuts.Binding) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCOPE\tACCELERATOR\tACTION")
	for _, b := range bindings {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Scope, b.Accel, b.Action)
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, bindings []shortcuts.Binding) error {
	out := make([]bindingJSON, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, bindingJSON{
			Scope:  string(b.Scope),
			Accel:  b.Accel,
			Action: b.Action.String(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
