package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/session"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionLog is the session journal the screen writes to and reads from.
// A nil SessionLog disables history and export.
type SessionLog interface {
	session.Store
	report.Source
	RecentPhases(ctx context.Context, limit int) ([]models.PhaseRecord, error)
}

// MainModel is the root bubbletea model of the timer screen. It renders the
// controller's state and owns the single periodic tick source.
type MainModel struct {
	ctx        context.Context
	controller *timer.Controller
	recorder   *session.Recorder
	log        SessionLog
	settings   config.Settings
	theme      Theme
	labels     Labels
	keys       *HandlerRegistry
	help       help.Model
	progress   progress.Model
	now        func() time.Time

	// tickID is the generation of the live tick source. Bumping it
	// cancels any tick already in flight.
	tickID  int
	ticking bool

	history       []models.PhaseRecord
	statusMessage string
	statusIsError bool
	quitting      bool
	width         int
	height        int
}

func NewMainModel(ctx context.Context, log SessionLog, settings config.Settings) MainModel {
	if ctx == nil {
		ctx = context.Background()
	}
	theme := ThemeFor(settings.Theme)
	m := MainModel{
		ctx:        ctx,
		controller: timer.NewController(),
		log:        log,
		settings:   settings,
		theme:      theme,
		labels:     LabelsFor(settings.Locale),
		keys:       newKeyRegistry(),
		help:       help.New(),
		progress:   progress.New(progress.WithGradient(theme.GradientStart, theme.GradientEnd), progress.WithoutPercentage()),
		now:        time.Now,
	}
	m.progress.Width = config.ProgressWidth
	if mode, err := models.ParseMode(settings.StartMode); err == nil {
		m.controller.SelectMode(mode)
	}
	if log != nil {
		m.recorder = session.NewRecorder(ctx, log)
		m.recorder.Attach(m.controller)
	}
	return m
}

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause")),
		Handler:  MainModel.handleToggle,
		Group:    GroupTimer,
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Handler:  MainModel.handleReset,
		Group:    GroupTimer,
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("1", "f"), key.WithHelp("1/f", "focus")),
		Handler: func(m MainModel) (MainModel, tea.Cmd) { return m.handleSelectMode(models.ModeFocus) },
		Group:   GroupModes,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("2", "s"), key.WithHelp("2/s", "short break")),
		Handler: func(m MainModel) (MainModel, tea.Cmd) { return m.handleSelectMode(models.ModeShort) },
		Group:   GroupModes,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("3", "l"), key.WithHelp("3/l", "long break")),
		Handler: func(m MainModel) (MainModel, tea.Cmd) { return m.handleSelectMode(models.ModeLong) },
		Group:   GroupModes,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next mode")),
		Handler:  func(m MainModel) (MainModel, tea.Cmd) { return m.handleCycleMode(1) },
		Group:    GroupModes,
		FullOnly: true,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous mode")),
		Handler:  func(m MainModel) (MainModel, tea.Cmd) { return m.handleCycleMode(-1) },
		Group:    GroupModes,
		FullOnly: true,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export report")),
		Handler:  MainModel.handleExport,
		Group:    GroupApp,
		FullOnly: true,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Handler: MainModel.handleHelpToggle,
		Group:   GroupApp,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Handler:  MainModel.handleQuit,
		Group:    GroupApp,
		Priority: 100,
	})
	return r
}

func (m MainModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.labels.Title)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case PhaseEndMsg:
		return m.handlePhaseEnd()
	case ReportMsg:
		return m.handleReportResult(msg)
	case tea.KeyMsg:
		next, cmd, _ := m.keys.Handle(m, msg)
		return next, cmd
	}
	return m, nil
}

// State exposes the controller snapshot the view renders.
func (m MainModel) State() models.TimerState {
	return m.controller.State()
}

// Ticking reports whether the periodic tick source is live.
func (m MainModel) Ticking() bool {
	return m.ticking
}

func (m *MainModel) startTicking() tea.Cmd {
	m.tickID++
	m.ticking = true
	return tickCmd(m.tickID)
}

func (m *MainModel) stopTicking() {
	if !m.ticking {
		return
	}
	m.tickID++
	m.ticking = false
}

func (m *MainModel) refreshHistory() {
	if m.log == nil {
		return
	}
	recent, err := m.log.RecentPhases(m.ctx, config.MaxHistoryRows)
	if err != nil {
		util.LogError("load session history", err)
		m.setStatusError(err.Error())
		return
	}
	m.history = recent
}

// checkRecorder surfaces a failed session log write from the last transition.
func (m *MainModel) checkRecorder() {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Err(); err != nil {
		m.setStatusError(fmt.Sprintf(m.labels.RecordFailed, err))
	}
}

func (m *MainModel) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *MainModel) setStatusError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m *MainModel) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}

func (m MainModel) reportDir() string {
	if m.settings.ReportDir != "" {
		return util.ExpandPath(m.settings.ReportDir)
	}
	return util.ReportsDir(config.AppName)
}
