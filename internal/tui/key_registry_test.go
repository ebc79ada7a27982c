package tui

import (
	"testing"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerRegistryPriority(t *testing.T) {
	r := NewHandlerRegistry()
	var hit string
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("x")),
		Handler: func(m MainModel) (MainModel, tea.Cmd) {
			hit = "low"
			return m, nil
		},
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("x")),
		Priority: 5,
		Handler: func(m MainModel) (MainModel, tea.Cmd) {
			hit = "high"
			return m, nil
		},
	})

	_, _, handled := r.Handle(MainModel{}, runeKey("x"))
	if !handled || hit != "high" {
		t.Fatalf("expected high priority handler, handled=%v hit=%q", handled, hit)
	}

	_, _, handled = r.Handle(MainModel{}, runeKey("y"))
	if handled {
		t.Fatalf("expected unbound key to be unhandled")
	}
}

func TestHandlerRegistrySkipsDisabledBindings(t *testing.T) {
	r := NewHandlerRegistry()
	b := key.NewBinding(key.WithKeys("x"))
	b.SetEnabled(false)
	r.Register(KeyBinding{
		Binding: b,
		Handler: func(m MainModel) (MainModel, tea.Cmd) {
			t.Fatalf("disabled binding ran")
			return m, nil
		},
	})
	if _, _, handled := r.Handle(MainModel{}, runeKey("x")); handled {
		t.Fatalf("expected disabled binding to be skipped")
	}
}

func TestHelpKeyMap(t *testing.T) {
	m := newTestModel(t, nil, config.DefaultSettings())

	for _, b := range m.keys.ShortHelp() {
		if b.Help().Key == "e" || b.Help().Key == "tab" {
			t.Fatalf("expected %q to be full-help only", b.Help().Key)
		}
	}

	groups := m.keys.FullHelp()
	if len(groups) != 3 {
		t.Fatalf("expected 3 help groups, got %d", len(groups))
	}
	if got := groups[0][0].Help().Desc; got != "start/pause" {
		t.Fatalf("expected timer group first, got %q", got)
	}
	last := groups[2]
	if got := last[len(last)-1].Help().Key; got == "" {
		t.Fatalf("expected app group bindings to carry help")
	}

	m, _ = send(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Fatalf("expected ? to expand help")
	}
}
