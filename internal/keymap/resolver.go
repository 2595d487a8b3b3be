package keymap

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action
	byAction map[Action][]string // action -> keys, for help display
}

// NewResolver creates a resolver from bindings. When a key appears in
// several bindings the last one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = dedupe(append(r.byAction[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

func dedupe(s []string) []string {
	seen := make(map[string]bool, len(s))
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
