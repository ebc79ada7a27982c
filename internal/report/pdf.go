// Package report renders the session log as a PDF.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/go-pdf/fpdf"
)

var ErrEmptySession = errors.New("session log is empty")

// Source is the read side of the session log.
type Source interface {
	ListPhases(ctx context.Context) ([]models.PhaseRecord, error)
	Summary(ctx context.Context) (models.SessionSummary, error)
}

// Filename returns the report file name for a report generated at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("%s%s.pdf", config.ReportPrefix, now.Format("20060102_150405"))
}

// Export writes the session report into dir and returns its absolute path.
func Export(ctx context.Context, src Source, dir string, now time.Time) (string, error) {
	phases, err := src.ListPhases(ctx)
	if err != nil {
		return "", fmt.Errorf("load session log: %w", err)
	}
	if len(phases) == 0 {
		return "", ErrEmptySession
	}
	summary, err := src.Summary(ctx)
	if err != nil {
		return "", fmt.Errorf("summarise session log: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := filepath.Join(dir, Filename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	if err := Render(f, phases, summary, now); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}

// Render writes a PDF for the given phases to w.
func Render(w io.Writer, phases []models.PhaseRecord, summary models.SessionSummary, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pomodoro Session Report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Pomodoro Session Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated "+now.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	// Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	lines := []string{
		fmt.Sprintf("Pomodoros completed: %d", summary.CompletedFocus),
		fmt.Sprintf("Short breaks: %d   Long breaks: %d", summary.CompletedShort, summary.CompletedLong),
		fmt.Sprintf("Discarded phases: %d", summary.Discarded),
		fmt.Sprintf("Focus time: %s   Break time: %s",
			util.FormatDuration(time.Duration(summary.FocusSeconds)*time.Second),
			util.FormatDuration(time.Duration(summary.BreakSeconds)*time.Second)),
	}
	if summary.FirstStartedAt != nil && summary.LastEndedAt != nil {
		lines = append(lines, fmt.Sprintf("Session span: %s - %s",
			summary.FirstStartedAt.Local().Format("15:04"), summary.LastEndedAt.Local().Format("15:04")))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// Phase table
	widths := []float64{12, 34, 30, 26, 26, 26}
	headers := []string{"#", "Mode", "Outcome", "Counted", "Started", "Ended"}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for i, p := range phases {
		row := []string{
			fmt.Sprintf("%d", i+1),
			modeTitle(p.Mode),
			string(p.Outcome),
			util.FormatClock(p.Seconds),
			p.StartedAt.Local().Format("15:04:05"),
			p.EndedAt.Local().Format("15:04:05"),
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func modeTitle(m models.Mode) string {
	switch m {
	case models.ModeShort:
		return "Short Break"
	case models.ModeLong:
		return "Long Break"
	default:
		return "Focus"
	}
}
