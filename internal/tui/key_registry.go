package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler applies one user intent.
type KeyHandler func(m MainModel) (MainModel, tea.Cmd)

// Help groups, in the order they appear in the full help view.
const (
	GroupTimer = iota
	GroupModes
	GroupApp
)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Group    int
	Priority int
	// FullOnly hides the binding from the short help line.
	FullOnly bool
}

// HandlerRegistry dispatches key presses and doubles as the help.KeyMap.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, msg tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Binding.Enabled() && key.Matches(msg, b.Binding) {
			next, cmd := b.Handler(m)
			return next, cmd, true
		}
	}
	return m, nil, false
}

// ShortHelp implements help.KeyMap.
func (r *HandlerRegistry) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range r.ordered() {
		if !b.FullOnly {
			out = append(out, b.Binding)
		}
	}
	return out
}

// FullHelp implements help.KeyMap.
func (r *HandlerRegistry) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	current := -1
	for _, b := range r.ordered() {
		if b.Group != current {
			groups = append(groups, nil)
			current = b.Group
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], b.Binding)
	}
	return groups
}

// ordered returns bindings by help group, keeping dispatch order within a
// group.
func (r *HandlerRegistry) ordered() []KeyBinding {
	out := append([]KeyBinding(nil), r.bindings...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Group < out[j].Group
	})
	return out
}
