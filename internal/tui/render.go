package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}
	state := m.controller.State()
	compact := m.width > 0 && m.width < config.CompactModeThreshold

	var sections []string
	sections = append(sections, m.renderHeader(compact))
	sections = append(sections, m.renderPanel(state, compact))
	sections = append(sections, m.renderCounter(state))
	if !compact {
		if hist := m.renderHistory(); hist != "" {
			sections = append(sections, hist)
		}
	}
	sections = append(sections, m.renderFooter())

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 {
		body = lipgloss.PlaceHorizontal(m.width-4, lipgloss.Center, body)
	}
	return m.theme.Base.Render(fitWidth(body, m.width))
}

func (m MainModel) renderHeader(compact bool) string {
	title := m.theme.Title.Render(m.labels.Title)
	if compact {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Center, title, m.theme.Subtitle.Render(m.labels.Subtitle), "")
}

func (m MainModel) renderTabs(active models.Mode) string {
	tabs := make([]string, 0, len(models.Modes))
	for _, mode := range models.Modes {
		style := m.theme.Tab
		if mode == active {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(m.labels.ModeName(mode)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m MainModel) renderPanel(state models.TimerState, compact bool) string {
	clock := util.FormatClock(state.Remaining)
	if !compact {
		clock = spaced(clock)
	}

	primary := m.theme.StartButton.Render(m.labels.Start)
	if state.Running {
		primary = m.theme.PauseButton.Render(m.labels.Pause)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, primary, "  ", m.theme.ResetButton.Render(m.labels.Reset))

	status := m.labels.Idle
	if state.Running {
		status = m.labels.Running
	}

	lines := []string{
		m.renderTabs(state.Mode),
		m.theme.Clock.Render(clock),
		m.progress.ViewAs(state.Progress()),
		m.theme.Dim.Render(status),
		"",
		buttons,
	}
	width := config.PanelWidth
	if m.width > 0 {
		width = util.Clamp(m.width-8, config.MinPanelWidth, config.PanelWidth)
	}
	inner := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return m.theme.PanelFor(state.Mode).Width(width).Align(lipgloss.Center).Render(inner)
}

func (m MainModel) renderCounter(state models.TimerState) string {
	count := m.theme.CounterStrong.Render(fmt.Sprintf("%d", state.CompletedFocusCycles))
	return "\n" + m.theme.Counter.Render(m.labels.Completed+" ") + count
}

func (m MainModel) renderHistory() string {
	if len(m.history) == 0 {
		return ""
	}
	lines := []string{"", m.theme.Dim.Render(m.labels.History)}
	for _, rec := range m.history {
		lines = append(lines, m.theme.Dim.Render(m.formatHistoryRow(rec)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m MainModel) formatHistoryRow(rec models.PhaseRecord) string {
	mark := "✓"
	outcome := ""
	if rec.Outcome == models.OutcomeDiscarded {
		mark = "✗"
		outcome = " " + m.labels.Discarded
	}
	return fmt.Sprintf("%s %-12s %s  %s%s",
		mark,
		m.labels.ModeName(rec.Mode),
		util.FormatClock(rec.Seconds),
		rec.EndedAt.Local().Format("15:04"),
		outcome)
}

func (m MainModel) renderFooter() string {
	var lines []string
	if m.statusMessage != "" {
		style := m.theme.Status
		if m.statusIsError {
			style = m.theme.Error
		}
		lines = append(lines, style.Render(m.statusMessage))
	}
	lines = append(lines, m.help.View(m.keys))
	return "\n" + lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// spaced widens the clock the way a large display font would.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func fitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	max := width - 4
	if max < 1 {
		max = 1
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > max {
			lines[i] = ansi.Truncate(line, max, config.TruncationSuffix)
		}
	}
	return strings.Join(lines, "\n")
}
