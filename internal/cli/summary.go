package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/yeargrid/internal/calendar"
	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

type summary struct {
	Year        int
	Stats       calendar.YearStats
	Productive  int
	Reflection  *calendar.Reflection
	Checkpoints []models.Checkpoint
	Today       time.Time
	Output      string
}

func printSummary(w io.Writer, s summary) {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}

	next := "none upcoming"
	if u, ok := calendar.NearestCheckpoint(s.Checkpoints, s.Today); ok {
		next = fmt.Sprintf("%s (%s, %s)", u.Name, utils.FormatDate(u.Date), u.Label())
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Year %d", s.Year)),
		row("Days passed", fmt.Sprintf("%d", s.Stats.Passed)),
		row("Days remaining", fmt.Sprintf("%d", s.Stats.Remaining)),
		row("Productive days", fmt.Sprintf("%d", s.Productive)),
		row("Yesterday", reflectionText(s.Reflection)),
		row("Next checkpoint", next),
		row("Saved to", s.Output),
	}
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func reflectionText(r *calendar.Reflection) string {
	if r == nil {
		return "-"
	}
	switch r.State {
	case calendar.ReflectionRecorded:
		return "marked productive"
	case calendar.ReflectionUnsaved:
		return "marked productive (not saved)"
	case calendar.ReflectionSkipped:
		return "skipped"
	case calendar.ReflectionUnasked:
		return "already recorded"
	default:
		return r.State.String()
	}
}
