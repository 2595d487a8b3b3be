package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit"},
		{ActionPlayPause, []string{" "}, "Play/pause"},
		{ActionMoveUp, []string{"k", "up"}, "Move up"},
	}
	r := NewResolver(bindings)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q"}, "Quit"},
		{ActionQuit, []string{"ctrl+c", "q"}, "Quit"},
	}
	r := NewResolver(bindings)

	got := r.KeysFor(ActionQuit)
	want := []string{"q", "ctrl+c"}
	if !slices.Equal(got, want) {
		t.Errorf("KeysFor(ActionQuit) = %v, want %v (deduplicated, in order)", got, want)
	}

	if got := r.KeysFor(ActionHelp); len(got) != 0 {
		t.Errorf("KeysFor(unbound action) = %v, want empty", got)
	}
}

func TestResolver_LastBindingWins(t *testing.T) {
	bindings := []Binding{
		{ActionMoveUp, []string{"x"}, "Move up"},
		{ActionMoveDown, []string{"x"}, "Move down"},
	}
	r := NewResolver(bindings)

	if got := r.Resolve("x"); got != ActionMoveDown {
		t.Errorf("Resolve(x) = %q, want the later binding %q", got, ActionMoveDown)
	}
}
