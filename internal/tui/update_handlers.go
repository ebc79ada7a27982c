package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		m.progress.Width = util.Clamp(m.width-12, 10, config.ProgressWidth)
		m.help.Width = m.width
	}
	return m, nil
}

func (m MainModel) handleTick(msg TickMsg) (MainModel, tea.Cmd) {
	if !m.ticking || msg.ID != m.tickID {
		// Cancelled source.
		return m, nil
	}
	if m.controller.Tick() {
		m.stopTicking()
		return m, phaseEndCmd()
	}
	return m, tickCmd(m.tickID)
}

func (m MainModel) handlePhaseEnd() (MainModel, tea.Cmd) {
	from := m.controller.State().Mode
	next, ok := m.controller.PhaseEnd()
	if !ok {
		return m, nil
	}
	m.refreshHistory()
	if !m.statusIsError {
		m.setStatus(fmt.Sprintf(m.labels.PhaseDone, m.labels.ModeName(from), m.labels.ModeName(next)))
	}
	m.checkRecorder()
	return m, nil
}

func (m MainModel) handleToggle() (MainModel, tea.Cmd) {
	m.clearStatus()
	if m.controller.State().Running {
		m.controller.Pause()
		m.stopTicking()
		return m, nil
	}
	if !m.controller.Start() {
		return m, nil
	}
	return m, m.startTicking()
}

func (m MainModel) handleReset() (MainModel, tea.Cmd) {
	m.clearStatus()
	m.stopTicking()
	m.controller.Reset()
	m.refreshHistory()
	m.checkRecorder()
	return m, nil
}

func (m MainModel) handleSelectMode(mode models.Mode) (MainModel, tea.Cmd) {
	m.clearStatus()
	m.stopTicking()
	m.controller.SelectMode(mode)
	m.refreshHistory()
	m.checkRecorder()
	return m, nil
}

func (m MainModel) handleCycleMode(delta int) (MainModel, tea.Cmd) {
	return m.handleSelectMode(m.controller.State().Mode.Offset(delta))
}

func (m MainModel) handleExport() (MainModel, tea.Cmd) {
	if m.log == nil {
		m.setStatusError(m.labels.NoLog)
		return m, nil
	}
	return m, exportCmd(m.ctx, m.log, m.reportDir(), m.now())
}

func (m MainModel) handleReportResult(msg ReportMsg) (MainModel, tea.Cmd) {
	switch {
	case errors.Is(msg.Err, report.ErrEmptySession):
		m.setStatus(m.labels.NoSession)
	case msg.Err != nil:
		util.LogError("export report", msg.Err)
		m.setStatusError(fmt.Sprintf("Export failed: %v", msg.Err))
	default:
		m.setStatus(fmt.Sprintf(m.labels.Exported, msg.Path))
	}
	return m, nil
}

func (m MainModel) handleHelpToggle() (MainModel, tea.Cmd) {
	m.help.ShowAll = !m.help.ShowAll
	return m, nil
}

func (m MainModel) handleQuit() (MainModel, tea.Cmd) {
	m.stopTicking()
	if m.controller.State().Running {
		m.controller.Pause()
	}
	m.quitting = true
	return m, tea.Quit
}
