package tui

import "github.com/akyairhashvil/pomo/internal/models"

// Labels holds every user visible string of the timer screen.
type Labels struct {
	Title     string
	Subtitle  string
	Focus     string
	Short     string
	Long      string
	Start     string
	Pause     string
	Reset     string
	Completed string
	Running   string
	Idle      string
	History   string
	Discarded string
	PhaseDone string // from, to
	Exported  string // path
	NoSession string
	NoLog     string

	// RecordFailed reports a session log write error.
	RecordFailed string
}

var labelSets = map[string]Labels{
	"en": {
		Title:     "Pomodoro Timer",
		Subtitle:  "Put on some LoFi and focus in your learning",
		Focus:     "Focus",
		Short:     "Short Break",
		Long:      "Long Break",
		Start:     "Start",
		Pause:     "Pause",
		Reset:     "Reset",
		Completed: "Pomodoros completed:",
		Running:   "running",
		Idle:      "paused",
		History:   "This session",
		Discarded: "discarded",
		PhaseDone: "%s complete. Next up: %s",
		Exported:  "Report saved: %s",
		NoSession: "Nothing to export yet",
		NoLog:     "Session log unavailable",

		RecordFailed: "Could not record phase: %v",
	},
	"pt": {
		Title:     "Pomodoro Timer",
		Subtitle:  "Put on some LoFi and focus in your learning",
		Focus:     "Foco",
		Short:     "Pausa Curta",
		Long:      "Pausa Longa",
		Start:     "Iniciar",
		Pause:     "Pausar",
		Reset:     "Resetar",
		Completed: "Pomodoros concluídos:",
		Running:   "em andamento",
		Idle:      "pausado",
		History:   "Nesta sessão",
		Discarded: "descartado",
		PhaseDone: "%s concluído. Próximo: %s",
		Exported:  "Relatório salvo: %s",
		NoSession: "Nada para exportar ainda",
		NoLog:     "Registro da sessão indisponível",

		RecordFailed: "Não foi possível registrar a fase: %v",
	},
}

// LabelsFor returns the label set for locale, falling back to English.
func LabelsFor(locale string) Labels {
	if l, ok := labelSets[locale]; ok {
		return l
	}
	return labelSets["en"]
}

// ModeName returns the tab caption of m.
func (l Labels) ModeName(m models.Mode) string {
	switch m {
	case models.ModeShort:
		return l.Short
	case models.ModeLong:
		return l.Long
	default:
		return l.Focus
	}
}
