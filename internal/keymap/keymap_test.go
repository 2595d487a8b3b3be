package keymap

import "testing"

// Every key in All must resolve back to its own action; a key bound to
// two actions would silently shadow one of them.
func TestAll_NoShadowedKeys(t *testing.T) {
	owner := make(map[string]Action)
	for _, b := range All {
		for _, key := range b.Keys {
			if prev, taken := owner[key]; taken {
				t.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			owner[key] = b.Action
		}
	}

	r := NewResolver(All)
	for _, b := range All {
		for _, key := range b.Keys {
			if got := r.Resolve(key); got != b.Action {
				t.Errorf("Resolve(%q) = %q, want %q", key, got, b.Action)
			}
		}
	}
}

func TestAll_CoversEveryAction(t *testing.T) {
	actions := []Action{
		ActionQuit, ActionRefresh, ActionHelp,
		ActionPlaySelected, ActionPlayPause,
		ActionJumpForward, ActionJumpBackward,
		ActionSpeedUp, ActionSpeedDown,
		ActionMoveUp, ActionMoveDown,
	}

	r := NewResolver(All)
	for _, action := range actions {
		if len(r.KeysFor(action)) == 0 {
			t.Errorf("action %q has no binding", action)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(" "); got != "space" {
		t.Errorf("Label(space key) = %q, want space", got)
	}
	if got := Label("ctrl+c"); got != "ctrl+c" {
		t.Errorf("Label(ctrl+c) = %q, want ctrl+c", got)
	}
}
