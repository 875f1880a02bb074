package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

const (
	actionSubmit    Action = "submit"
	actionNextField Action = "next_field"
	actionPrevField Action = "prev_field"
	actionQuit      Action = "quit"
)

type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

// KeyRegistry maps key names to the form's actions. Bindings keep their
// registration order, which is also the footer order.
type KeyRegistry struct {
	bindings []*Binding
	index    map[string]*Binding
}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{index: make(map[string]*Binding)}
	r.Register(Binding{Action: actionSubmit, Keys: []string{"enter"}, Help: "submit"})
	r.Register(Binding{Action: actionNextField, Keys: []string{"tab", "down"}, Help: "next field"})
	r.Register(Binding{Action: actionPrevField, Keys: []string{"shift+tab", "up"}, Help: "prev field"})
	r.Register(Binding{Action: actionQuit, Keys: []string{"esc", "ctrl+c"}, Help: "quit"})
	return r
}

// Register adds b unless it has no usable keys or one of its keys is
// already taken.
func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	keys := normalizeKeyList(b.Keys)
	if len(keys) == 0 {
		return
	}
	for _, k := range keys {
		if _, taken := r.index[k]; taken {
			return
		}
	}
	b.Keys = keys
	r.bindings = append(r.bindings, &b)
	for _, k := range keys {
		r.index[k] = &b
	}
}

func (r *KeyRegistry) Bindings() []Binding {
	if r == nil {
		return nil
	}
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, *b)
	}
	return out
}

// Lookup returns the binding for keyName, or nil when the key should reach
// the focused input.
func (r *KeyRegistry) Lookup(keyName string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	return r.index[normalizeKeyName(keyName)]
}

// HelpBindings lists the bindings for the footer, first key shown.
func (r *KeyRegistry) HelpBindings() []key.Binding {
	items := r.Bindings()
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// ApplyOverrides replaces the keys of each action named in overrides.
// Unknown actions, empty key lists, and keys claimed by two actions are
// errors; the registry is left unchanged when an error is returned.
func (r *KeyRegistry) ApplyOverrides(overrides map[string][]string) error {
	if r == nil || len(overrides) == 0 {
		return nil
	}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	next := make(map[*Binding][]string, len(overrides))
	for _, name := range names {
		action := Action(strings.ToLower(strings.TrimSpace(name)))
		if action == "" {
			return fmt.Errorf("key override: action is required")
		}
		keys := normalizeKeyList(overrides[name])
		if len(keys) == 0 {
			return fmt.Errorf("key override action=%q: keys are required", action)
		}
		b := r.binding(action)
		if b == nil {
			return fmt.Errorf("key override action=%q: unknown action", action)
		}
		next[b] = keys
	}

	index := make(map[string]*Binding)
	for _, b := range r.bindings {
		keys, ok := next[b]
		if !ok {
			keys = b.Keys
		}
		for _, k := range keys {
			if prev, taken := index[k]; taken {
				return fmt.Errorf("key override conflict: key %q used by both %q and %q", k, prev.Action, b.Action)
			}
			index[k] = b
		}
	}

	for b, keys := range next {
		b.Keys = keys
	}
	r.index = index
	return nil
}

func (r *KeyRegistry) binding(action Action) *Binding {
	for _, b := range r.bindings {
		if b.Action == action {
			return b
		}
	}
	return nil
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

var keyAliases = strings.NewReplacer(
	"control+", "ctrl+",
	"ctl+", "ctrl+",
	"return", "enter",
	"spacebar", "space",
)

// normalizeKeyName maps config spellings onto tea.KeyMsg.String() names.
// A single rune is kept as is so "Q" and "q" stay distinct.
func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	k = strings.TrimSpace(k)
	if k == "" || len([]rune(k)) == 1 {
		return k
	}
	return keyAliases.Replace(strings.ToLower(strings.ReplaceAll(k, " ", "")))
}
