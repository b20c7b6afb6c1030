package shortcuts

import (
	"slices"
	"testing"
)

func TestExpandTrulyGlobal(t *testing.T) {
	for _, a := range []Action{GoBack, GoForward, Like, Dislike} {
		t.Run(a.String(), func(t *testing.T) {
			got := Expand("K", a)

			if len(got) != 1+len(ModifierCombinations()) {
				t.Fatalf("len = %d, want %d", len(got), 1+len(ModifierCombinations()))
			}
			if got[0] != "K" {
				t.Errorf("first = %q, want base", got[0])
			}
			for _, p := range ModifierCombinations() {
				if !slices.Contains(got, p+"+K") {
					t.Errorf("missing %q", p+"+K")
				}
			}

			seen := make(map[string]bool)
			for _, s := range got {
				if seen[s] {
					t.Errorf("duplicate %q", s)
				}
				seen[s] = true
			}
		})
	}
}

func TestExpandOtherActions(t *testing.T) {
	for _, a := range []Action{PlayPause, Next, Previous, Search} {
		got := Expand("Ctrl+K", a)
		if !slices.Equal(got, []string{"Ctrl+K"}) {
			t.Errorf("Expand(%s) = %v", a, got)
		}
	}
}

func TestExpandOrder(t *testing.T) {
	want := []string{
		"L",
		"CmdOrCtrl+Shift+Alt+L",
		"CmdOrCtrl+Shift+L",
		"CmdOrCtrl+Alt+L",
		"Shift+Alt+L",
		"CmdOrCtrl+L",
		"Shift+L",
		"Alt+L",
	}
	if got := Expand("L", Like); !slices.Equal(got, want) {
		t.Errorf("Expand = %v\nwant %v", got, want)
	}
}

func TestModifierCombinationsIsCopy(t *testing.T) {
	c := ModifierCombinations()
	c[0] = "Hyper"
	if ModifierCombinations()[0] == "Hyper" {
		t.Error("policy list mutated through copy")
	}
}
