package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one beat of the periodic source. ID names the source
// generation that armed it; ticks from a cancelled generation are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
}

// PhaseEndMsg carries the deferred phase-end step after a tick drains the
// countdown.
type PhaseEndMsg struct{}

// ReportMsg reports the outcome of a PDF export.
type ReportMsg struct {
	Path string
	Err  error
}

func tickCmd(id int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{ID: id, Time: t} })
}

func phaseEndCmd() tea.Cmd {
	return func() tea.Msg { return PhaseEndMsg{} }
}

func exportCmd(ctx context.Context, src report.Source, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := report.Export(ctx, src, dir, now)
		return ReportMsg{Path: path, Err: err}
	}
}
