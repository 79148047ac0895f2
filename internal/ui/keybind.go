package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to application commands.
// Keys use tea.KeyMsg.String() notation: "q", "esc", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[k]
}

// Hints returns all bound keys with descriptions for display.
// Values are descriptions (or the key itself if none set).
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for k, cmd := range r.bindings {
		if cmd == nil {
			continue
		}
		if d, ok := r.descriptions[k]; ok && d != "" {
			out[k] = d
		} else {
			out[k] = k
		}
	}
	return out
}

// KeyHandler dispatches key messages to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// Unbound keys are not consumed and should be passed on to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap over a KeybindRegistry.
type KeyMap struct {
	registry *KeybindRegistry
}

// NewKeyMap creates a KeyMap for the given registry.
func NewKeyMap(registry *KeybindRegistry) help.KeyMap {
	return &KeyMap{registry: registry}
}

// ShortHelp returns one binding per bound key, sorted by key.
// Keys sharing a description are grouped into one binding.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.Hints()
	if len(hints) == 0 {
		return nil
	}

	byDesc := make(map[string][]string)
	for k, desc := range hints {
		byDesc[desc] = append(byDesc[desc], k)
	}
	descs := make([]string, 0, len(byDesc))
	for d := range byDesc {
		sort.Strings(byDesc[d])
		descs = append(descs, d)
	}
	sort.Slice(descs, func(i, j int) bool {
		return byDesc[descs[i]][0] < byDesc[descs[j]][0]
	})

	bindings := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		keys := byDesc[d]
		label := keys[0]
		for _, k := range keys[1:] {
			label += "/" + k
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(label, d),
		))
	}
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
