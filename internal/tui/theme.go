package tui

import (
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Panel         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Clock         lipgloss.Style
	StartButton   lipgloss.Style
	PauseButton   lipgloss.Style
	ResetButton   lipgloss.Style
	Counter       lipgloss.Style
	CounterStrong lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Error         lipgloss.Style
	// ModeBackground tints the timer panel per mode.
	ModeBackground map[models.Mode]lipgloss.Color
	ModeBorder     map[models.Mode]lipgloss.Color
	GradientStart  string
	GradientEnd    string
}

// PanelFor returns the panel style tinted for mode.
func (t Theme) PanelFor(mode models.Mode) lipgloss.Style {
	style := t.Panel
	if bg, ok := t.ModeBackground[mode]; ok {
		style = style.Background(bg)
	}
	if border, ok := t.ModeBorder[mode]; ok {
		style = style.BorderForeground(border).BorderBackground(t.ModeBackground[mode])
	}
	return style
}

func button(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0b0b0b")).
		Background(lipgloss.Color(bg)).
		Bold(true).
		Padding(0, 2)
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Title:         lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		Subtitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ActiveTab:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("238")).Bold(true).Padding(0, 1),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Padding(1, 0),
		StartButton:   button("#89b4fa"),
		PauseButton:   button("#f9a825"),
		ResetButton:   button("#f38ba8"),
		Counter:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		CounterStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		ModeBackground: map[models.Mode]lipgloss.Color{
			models.ModeFocus: lipgloss.Color("#1e1e2e"),
			models.ModeShort: lipgloss.Color("#163b2a"),
			models.ModeLong:  lipgloss.Color("#0f2a3a"),
		},
		ModeBorder: map[models.Mode]lipgloss.Color{
			models.ModeFocus: lipgloss.Color("#89b4fa"),
			models.ModeShort: lipgloss.Color("#a6e3a1"),
			models.ModeLong:  lipgloss.Color("#74c7ec"),
		},
		GradientStart: "#89b4fa",
		GradientEnd:   "#f38ba8",
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Title:         lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Subtitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),            // Comment
		Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 0),
		StartButton:   button("#bd93f9"),
		PauseButton:   button("#ffb86c"),
		ResetButton:   button("#ff5555"),
		Counter:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		CounterStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("215")), // Orange
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		ModeBackground: map[models.Mode]lipgloss.Color{
			models.ModeFocus: lipgloss.Color("#282a36"),
			models.ModeShort: lipgloss.Color("#1f3b2d"),
			models.ModeLong:  lipgloss.Color("#1d2b45"),
		},
		ModeBorder: map[models.Mode]lipgloss.Color{
			models.ModeFocus: lipgloss.Color("#bd93f9"),
			models.ModeShort: lipgloss.Color("#50fa7b"),
			models.ModeLong:  lipgloss.Color("#8be9fd"),
		},
		GradientStart: "#bd93f9",
		GradientEnd:   "#ff79c6",
	},
}

// ThemeFor returns the named theme, falling back to the default.
func ThemeFor(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
