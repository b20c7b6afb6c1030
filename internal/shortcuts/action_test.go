package shortcuts

import "testing"

func TestParseActionRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
}

func TestParseActionUnknown(t *testing.T) {
	for _, name := range []string{"", "PlayPause", "volumeUp", "unknown"} {
		if a, ok := ParseAction(name); ok {
			t.Errorf("ParseAction(%q) = %v, want not found", name, a)
		}
	}
	if Action(0).Valid() || Action(99).Valid() {
		t.Error("out of range actions must be invalid")
	}
	if Action(99).String() != "unknown" {
		t.Errorf("String() = %q", Action(99).String())
	}
}

func TestBindCallsMatchingControl(t *testing.T) {
	for _, a := range Actions() {
		t.Run(a.String(), func(t *testing.T) {
			var tr Trace
			fn := Bind(a, &tr)
			if fn == nil {
				t.Fatal("nil callback")
			}
			fn()

			calls := tr.Calls()
			if len(calls) != 1 || calls[0].Action != a {
				t.Fatalf("calls = %+v", calls)
			}

			wantSeconds := 0
			if a == GoForward || a == GoBack {
				wantSeconds = SeekSeconds
			}
			if calls[0].Seconds != wantSeconds {
				t.Errorf("seconds = %d, want %d", calls[0].Seconds, wantSeconds)
			}
		})
	}
}

func TestBindSeekIsTen(t *testing.T) {
	if SeekSeconds != 10 {
		t.Fatalf("SeekSeconds = %d", SeekSeconds)
	}
}

func TestBindInvalid(t *testing.T) {
	if Bind(Action(42), &Trace{}) != nil {
		t.Error("invalid action must not bind")
	}
	if Bind(PlayPause, nil) != nil {
		t.Error("nil controls must not bind")
	}
}
