package prompt

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/yeargrid/internal/logger"
	"github.com/julianstephens/yeargrid/internal/models"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// HuhPrompter shows modal terminal forms.
type HuhPrompter struct {
	// run is swapped in tests
	run func(*huh.Form) error
}

func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{run: func(f *huh.Form) error { return f.Run() }}
}

// PromptYesNo asks question. Aborting the form (esc or ctrl+c) answers no.
func (p *HuhPrompter) PromptYesNo(question string) (bool, error) {
	var yes bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&yes),
		),
	).WithTheme(huh.ThemeDracula())

	if err := p.run(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return yes, nil
}

// EditCheckpoints shows constants.MaxCheckpoints name/date rows pre-filled
// from current. An invalid submission re-opens the form with the error shown
// above the rows. The returned list replaces the stored one.
func (p *HuhPrompter) EditCheckpoints(current []models.Checkpoint) ([]models.Checkpoint, error) {
	rows := RowsFromCheckpoints(current)
	var formErr string
	for {
		if err := p.run(newCheckpointForm(rows, formErr)); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCanceled
			}
			return nil, err
		}

		cps, err := CheckpointsFromRows(rows)
		if err == nil {
			return cps, nil
		}
		logger.Debug("Checkpoint submission rejected", "error", err)
		formErr = err.Error()
	}
}

func newCheckpointForm(rows []CheckpointRow, formErr string) *huh.Form {
	intro := huh.NewNote().
		Title("Edit Checkpoints").
		Description("Name and date (YYYY-MM-DD). Clear a row to remove it.")
	if formErr != "" {
		intro = intro.Description(errorStyle.Render(formErr))
	}

	fields := []huh.Field{intro}
	for i := range rows {
		fields = append(fields,
			huh.NewInput().
				Title(fmt.Sprintf("Checkpoint %d", i+1)).
				Placeholder("Name").
				Value(&rows[i].Name),
			huh.NewInput().
				Placeholder("YYYY-MM-DD").
				Value(&rows[i].Date).
				Validate(validateDateField),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huh.ThemeDracula()).
		WithProgramOptions(tea.WithAltScreen())
}
